// Package session holds the state of one interactive run: the current
// generation settings and the last password, plus the actions that read them.
package session

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/atinyakov/passgen/internal/clipboard"
	"github.com/atinyakov/passgen/internal/models"
	"github.com/atinyakov/passgen/internal/password"
	"github.com/atinyakov/passgen/internal/strength"
)

// ErrNoPassword is returned by Copy and Save before anything was generated.
var ErrNoPassword = errors.New("generate a password first")

const (
	// MinLength and MaxLength bound the length a front end lets the user pick.
	MinLength     = 4
	MaxLength     = 64
	DefaultLength = 12
)

// DefaultOptions matches the initial state of a new session.
var DefaultOptions = password.Options{
	Length: DefaultLength,
	Upper:  true,
	Lower:  true,
	Digits: true,
}

// Generator is the part of the generation service a session needs.
type Generator interface {
	Generate(ctx context.Context, opts password.Options) (models.Generated, error)
}

// Appender persists a password.
type Appender interface {
	Append(pw string) error
}

// Session is not safe for concurrent use; front ends drive it from one goroutine.
type Session struct {
	Options password.Options

	last   string
	result strength.Result

	gen   Generator
	store Appender
	clip  clipboard.Writer
	log   *zap.Logger
}

// New returns a session starting from opts. A nil log discards output.
func New(opts password.Options, gen Generator, store Appender, clip clipboard.Writer, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{Options: opts, gen: gen, store: store, clip: clip, log: log}
}

// Last returns the most recently generated password, or "".
func (s *Session) Last() string { return s.last }

// Strength returns the assessment of the last password.
func (s *Session) Strength() strength.Result { return s.result }

// SetLength sets the requested length, clamped to MinLength..MaxLength.
func (s *Session) SetLength(n int) {
	s.Options.Length = ClampLength(n)
}

// Toggle flips a character class.
func (s *Session) Toggle(c password.Class) {
	s.Options = s.Options.Toggle(c)
}

// Generate replaces the last password. On error the session is unchanged.
func (s *Session) Generate(ctx context.Context) (string, error) {
	g, err := s.gen.Generate(ctx, s.Options)
	if err != nil {
		s.log.Info("generation refused", zap.Error(err))
		return "", err
	}
	s.last = g.Password
	s.result = strength.Result{Score: g.Score, Label: g.Strength}
	return s.last, nil
}

// Copy puts the last password on the clipboard.
func (s *Session) Copy() error {
	if s.last == "" {
		return ErrNoPassword
	}
	if err := s.clip.WriteAll(s.last); err != nil {
		s.log.Warn("copy failed", zap.Error(err))
		return err
	}
	s.log.Debug("password copied")
	return nil
}

// Save appends the last password to the store.
func (s *Session) Save() error {
	if s.last == "" {
		return ErrNoPassword
	}
	if err := s.store.Append(s.last); err != nil {
		s.log.Error("save failed", zap.Error(err))
		return err
	}
	s.log.Debug("password saved")
	return nil
}

// ClampLength bounds n to MinLength..MaxLength.
func ClampLength(n int) int {
	return min(max(n, MinLength), MaxLength)
}
