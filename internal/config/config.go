// Package config provides configuration for the pawns-only game driver.
package config

import (
	"io"
	"os"
)

// Config holds the driver's settings and I/O streams.
type Config struct {
	// Player names. Empty names are prompted for interactively.
	WhiteName string
	BlackName string

	// Verbosity: 0=results only, 1=running commentary to LogFile.
	Verbosity int

	// I/O streams. Input is read line by line; Output receives the board
	// and prompts; LogFile receives commentary when Verbosity > 0.
	Input   io.Reader
	Output  io.Writer
	LogFile io.Writer
}

// NewConfig creates a configuration with the standard streams.
func NewConfig() *Config {
	return &Config{
		Input:   os.Stdin,
		Output:  os.Stdout,
		LogFile: os.Stderr,
	}
}
