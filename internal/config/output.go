package config

import (
	"io"
	"os"
)

// OutputFormat selects how boards are written.
type OutputFormat int

const (
	Diagram OutputFormat = iota // Text diagram followed by the snapshot
	JSON                        // JSON document
)

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	if f == JSON {
		return "json"
	}
	return "diagram"
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format selects diagram or JSON output.
	Format OutputFormat

	// Writer receives command output.
	Writer io.Writer

	// ShowCoordinates adds file letters and rank numbers around diagrams.
	ShowCoordinates bool

	// ShowSnapshot appends the snapshot string to diagrams.
	ShowSnapshot bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:          Diagram,
		Writer:          os.Stdout,
		ShowCoordinates: true,
		ShowSnapshot:    true,
	}
}
