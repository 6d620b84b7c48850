package model

import (
	"fmt"
	"io"
)

// Reporter receives progress output such as per-token traces
type Reporter interface {
	Printf(format string, args ...interface{})
}

// SilentReporter does not output anything
type SilentReporter struct{}

func (r *SilentReporter) Printf(format string, args ...interface{}) {}

// ColorReporter writes already colorized output to a writer
type ColorReporter struct {
	Writer io.Writer
}

func (r *ColorReporter) Printf(format string, args ...interface{}) {
	fmt.Fprintf(r.Writer, format, args...)
}
