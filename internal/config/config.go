// Package config provides functionality for managing configuration options
// for the application using command-line flags, a JSON config file and
// environment variables.
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/atinyakov/passgen/internal/client/storage"
	"github.com/atinyakov/passgen/internal/password"
	"github.com/atinyakov/passgen/internal/session"
)

// Options holds the configuration values for the application.
type Options struct {
	// Cmd selects the front end: generate, shell, tui, serve or history.
	Cmd string `json:"cmd"`

	// Password holds the initial generation settings.
	Password password.Options `json:"password"`

	// SaveFile is the path passwords are appended to.
	SaveFile string `json:"save_file"`

	// Copy and Save make the generate command copy or save its result.
	Copy bool `json:"copy"`
	Save bool `json:"save"`

	// Addr defines the API server's listening address (ip:port).
	Addr string `json:"addr"`

	// TLSCert and TLSKey enable HTTPS when both are set.
	TLSCert string `json:"tls_cert"`
	TLSKey  string `json:"tls_key"`

	// DatabaseDSN holds the PostgreSQL connection string. History is
	// disabled when it is empty.
	DatabaseDSN string `json:"database_dsn"`

	// RetentionDays is how long history entries are kept.
	RetentionDays int `json:"retention_days"`

	// HistoryLimit is how many entries the history command prints.
	HistoryLimit int `json:"history_limit"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level"`

	// Config is the path to the Config file.
	Config string `json:"-"`

	// ShowVersion prints build metadata and exits.
	ShowVersion bool `json:"-"`
}

// Default returns the options used when nothing is configured.
func Default() *Options {
	return &Options{
		Cmd:           "generate",
		Password:      session.DefaultOptions,
		SaveFile:      storage.DefaultFile,
		Addr:          "localhost:8080",
		RetentionDays: 30,
		HistoryLimit:  20,
		LogLevel:      "warn",
		Config:        "passgen.json",
	}
}

func newFlagSet(o *Options, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("passgen", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&o.Cmd, "cmd", o.Cmd, "command: generate | shell | tui | serve | history")
	fs.IntVar(&o.Password.Length, "length", o.Password.Length, "password length")
	fs.IntVar(&o.Password.Length, "l", o.Password.Length, "password length (shorthand)")
	fs.BoolVar(&o.Password.Upper, "upper", o.Password.Upper, "include uppercase letters")
	fs.BoolVar(&o.Password.Lower, "lower", o.Password.Lower, "include lowercase letters")
	fs.BoolVar(&o.Password.Digits, "digits", o.Password.Digits, "include digits")
	fs.BoolVar(&o.Password.Symbols, "symbols", o.Password.Symbols, "include symbols")
	fs.StringVar(&o.SaveFile, "out", o.SaveFile, "file passwords are appended to")
	fs.BoolVar(&o.Copy, "copy", o.Copy, "copy the generated password to the clipboard")
	fs.BoolVar(&o.Save, "save", o.Save, "append the generated password to the save file")
	fs.StringVar(&o.Addr, "a", o.Addr, "run API server on ip:port")
	fs.StringVar(&o.TLSCert, "tls-cert", o.TLSCert, "TLS certificate for the API server")
	fs.StringVar(&o.TLSKey, "tls-key", o.TLSKey, "TLS key for the API server")
	fs.StringVar(&o.DatabaseDSN, "d", o.DatabaseDSN, "history database address")
	fs.IntVar(&o.RetentionDays, "retention", o.RetentionDays, "days to keep history entries")
	fs.IntVar(&o.HistoryLimit, "n", o.HistoryLimit, "number of history entries to print")
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "log level: debug | info | warn | error")
	fs.StringVar(&o.Config, "config", o.Config, "path to config file")
	fs.StringVar(&o.Config, "c", o.Config, "path to config file (shorthand)")
	fs.BoolVar(&o.ShowVersion, "version", false, "show build version and date")
	return fs
}

// Parse builds Options from defaults, then the JSON config file, then the
// command-line flags, then environment variables. Flags given explicitly on
// the command line win over the config file.
func Parse(args []string, output io.Writer) (*Options, error) {
	o := Default()
	fs := newFlagSet(o, output)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	explicitConfig := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "c" || f.Name == "config" {
			explicitConfig = true
		}
	})
	if configPath := os.Getenv("CONFIG"); configPath != "" && !explicitConfig {
		o.Config = configPath
	}

	if o.Config != "" {
		if _, err := os.Stat(o.Config); err == nil {
			data, err := os.ReadFile(o.Config)
			if err != nil {
				return nil, fmt.Errorf("error while reading config file: %w", err)
			}
			if err := json.Unmarshal(data, o); err != nil {
				return nil, fmt.Errorf("error while parsing config file: %w", err)
			}
			// re-apply explicit flags over the file
			if err := fs.Parse(args); err != nil {
				return nil, err
			}
		}
	}

	if err := applyEnv(o); err != nil {
		return nil, err
	}
	return o, nil
}

func applyEnv(o *Options) error {
	if v := os.Getenv("PASSGEN_LENGTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PASSGEN_LENGTH: %w", err)
		}
		o.Password.Length = n
	}
	if v := os.Getenv("PASSGEN_SAVE_FILE"); v != "" {
		o.SaveFile = v
	}
	if v := os.Getenv("PASSGEN_LOG_LEVEL"); v != "" {
		o.LogLevel = v
	}
	if v := os.Getenv("SERVER_ADDRESS"); v != "" {
		o.Addr = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		o.DatabaseDSN = v
	}
	return nil
}

// Validate checks the options a front end cannot recover from.
// Character-class rules are left to the generator so they are reported
// at the moment a password is requested.
func (o *Options) Validate() error {
	if o.Password.Length < session.MinLength || o.Password.Length > session.MaxLength {
		return fmt.Errorf("length must be between %d and %d", session.MinLength, session.MaxLength)
	}
	if o.SaveFile == "" {
		return errors.New("save file must not be empty")
	}
	if o.RetentionDays <= 0 {
		return errors.New("retention must be positive")
	}
	switch o.Cmd {
	case "generate", "shell", "tui", "serve", "history":
	default:
		return fmt.Errorf("unknown command: %s", o.Cmd)
	}
	return nil
}
