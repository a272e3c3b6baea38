// Package service provides the generation business logic shared by the
// terminal front ends and the HTTP API, delegating history persistence to a
// repository interface.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/atinyakov/passgen/internal/models"
	"github.com/atinyakov/passgen/internal/password"
	"github.com/atinyakov/passgen/internal/strength"
)

// ErrHistoryDisabled is returned by History when no repository is configured.
var ErrHistoryDisabled = errors.New("history is not enabled")

// DefaultHistoryLimit caps History when the caller passes a non-positive limit.
const DefaultHistoryLimit = 20

// PasswordGenerator produces a password for the given options.
type PasswordGenerator interface {
	Generate(opts password.Options) (string, error)
}

// HistoryRepository defines the persistence operations needed by the GeneratorService.
type HistoryRepository interface {
	// Record stores a single generation entry.
	Record(ctx context.Context, entry models.HistoryEntry) error
	// List returns up to limit entries, newest first.
	List(ctx context.Context, limit int) ([]models.HistoryEntry, error)
}

// GeneratorService generates and rates passwords and optionally records
// what was generated (never the password itself).
type GeneratorService struct {
	gen  PasswordGenerator
	repo HistoryRepository
	log  *zap.Logger
	now  func() time.Time
}

// NewGeneratorService constructs a GeneratorService. repo may be nil, in which
// case nothing is recorded.
func NewGeneratorService(gen PasswordGenerator, repo HistoryRepository, log *zap.Logger) *GeneratorService {
	if log == nil {
		log = zap.NewNop()
	}
	return &GeneratorService{gen: gen, repo: repo, log: log, now: time.Now}
}

// Generate builds a password for opts and assesses it. Validation errors from
// the password package are returned unchanged. A failure to record history
// is logged and does not fail the call.
func (s *GeneratorService) Generate(ctx context.Context, opts password.Options) (models.Generated, error) {
	pw, err := s.gen.Generate(opts)
	if err != nil {
		return models.Generated{}, err
	}
	res := strength.Assess(pw)

	if s.repo != nil {
		entry := models.HistoryEntry{
			ID:        uuid.NewString(),
			Length:    len(pw),
			Classes:   classNames(opts.Classes()),
			Score:     res.Score,
			Strength:  res.Label,
			CreatedAt: s.now().UTC(),
		}
		if err := s.repo.Record(ctx, entry); err != nil {
			s.log.Warn("failed to record history", zap.Error(err))
		}
	}

	s.log.Debug("password generated",
		zap.Int("length", len(pw)),
		zap.Int("score", res.Score),
		zap.String("strength", string(res.Label)),
	)
	return models.Generated{Password: pw, Score: res.Score, Strength: res.Label}, nil
}

// HistoryEnabled reports whether generations are being recorded.
func (s *GeneratorService) HistoryEnabled() bool {
	return s.repo != nil
}

// History returns up to limit recorded generations, newest first.
func (s *GeneratorService) History(ctx context.Context, limit int) ([]models.HistoryEntry, error) {
	if s.repo == nil {
		return nil, ErrHistoryDisabled
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return s.repo.List(ctx, limit)
}

func classNames(classes []password.Class) []string {
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = c.String()
	}
	return names
}
