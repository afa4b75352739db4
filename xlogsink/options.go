package xlogsink

import "time"

// Format selects the line encoding.
type Format uint8

const (
	FormatText Format = iota + 1 // ts=... level=INFO msg=... key=value
	FormatJSON                   // {"ts":"...","level":"INFO","msg":"...","key":value}
)

// Options configure an Adapter. Zero values take the defaults noted below.
type Options struct {
	// Format defaults to FormatText.
	Format Format
	// TimeFormat is a time layout for the ts field and time values.
	// Defaults to time.RFC3339Nano.
	TimeFormat string
	// BufferSize is the initial capacity of pooled line buffers.
	// Defaults to 512.
	BufferSize int
}

func (o Options) withDefaults() Options {
	if o.Format == 0 {
		o.Format = FormatText
	}
	if o.TimeFormat == "" {
		o.TimeFormat = time.RFC3339Nano
	}
	if o.BufferSize <= 0 {
		o.BufferSize = 512
	}
	return o
}
