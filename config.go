// SPDX-License-Identifier: MIT
package agd

import (
	"github.com/sirupsen/logrus"
)

type (
	// Config defines configuration options for the diagnostics & evaluation
	// operations.
	Config struct {
		Logger logrus.FieldLogger

		// LineWidthLimit is the number of characters a line may hold, the
		// terminating line feed excluded.
		LineWidthLimit int

		Debug bool
	}
)

const (
	// DefaultLineWidthLimit allows 80 characters & a line feed per line.
	DefaultLineWidthLimit = 80
)

var fLogger logrus.FieldLogger = logrus.NewEntry(logrus.New())

// SetLogger configures a logrus.FieldLogger for the package.
func SetLogger(l logrus.FieldLogger) { fLogger = l }

// DefaultConfig configures the evaluation's Config.
func DefaultConfig() *Config {
	return &Config{
		LineWidthLimit: DefaultLineWidthLimit,
		Logger:         fLogger,
	}
}

// Validate populates missing Config entries with defaults.
func (c *Config) Validate() {
	if c.LineWidthLimit < 1 {
		c.LineWidthLimit = DefaultLineWidthLimit
	}
	if c.Logger == nil {
		c.Logger = fLogger
	}
}
