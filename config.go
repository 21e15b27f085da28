// SPDX-License-Identifier: MIT
package ordery

import (
	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/ordery/lexer"
)

type (
	// Config defines configuration options for parsing operations.
	Config struct {
		// Logger for parser messages.
		//
		// Preferring a public field to allow for sharing.
		Logger logrus.FieldLogger
		Debug  bool

		// PoolSize caps the goroutines used by ParseAll.
		PoolSize int
	}

	// Option defines the Config functional option type.
	Option func(*Config)
)

// DefaultPoolSize is the ParseAll worker pool capacity used when none is configured.
const DefaultPoolSize = 100

var fLogger logrus.FieldLogger = logrus.NewEntry(logrus.New())

// SetLogger configures a logrus.FieldLogger for the package.
func SetLogger(l logrus.FieldLogger) { fLogger = l }

// DefConfig obtains the package's default options.
func DefConfig() *Config {
	return &Config{
		Logger:   fLogger,
		PoolSize: DefaultPoolSize,
	}
}

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(c *Config) { c.Logger = logger } }

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(c *Config) { c.Debug = debug } }

// WithPoolSize configures the ParseAll worker pool size.
func WithPoolSize(size int) Option { return func(c *Config) { c.PoolSize = size } }

func newConfig(opts ...Option) *Config {
	c := DefConfig()
	for _, opt := range opts {
		opt(c)
	}
	c.Validate()

	return c
}

// Validate populates missing Config entries with defaults.
func (c *Config) Validate() {
	if c.Logger == nil {
		c.Logger = fLogger
	}
	if c.PoolSize < 1 {
		c.PoolSize = DefaultPoolSize
	}
}

func (c *Config) lexerOptions() []lexer.Option {
	return []lexer.Option{lexer.WithLogger(c.Logger), lexer.WithDebug(c.Debug)}
}
