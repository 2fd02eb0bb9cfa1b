// Package output serializes extraction results. The extract command uses
// it to dump what the parser pulled out of an order mail without running
// document generation, which is the fastest way to debug a mail the
// patterns do not fully match.
package output

import (
	"fmt"
	"io"

	"github.com/orderdesk/invoicer/pkg/order"
)

// Format selects the serialization of extraction records.
type Format string

const (
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
	FormatYAML  Format = "yaml"
)

// Record is one extraction result: the order pulled out of a mail plus the
// fields the patterns could not find.
type Record struct {
	Source  string       `json:"source" yaml:"source"`
	Subject string       `json:"subject,omitempty" yaml:"subject,omitempty"`
	Order   *order.Order `json:"order" yaml:"order"`
	Failed  []string     `json:"failed,omitempty" yaml:"failed,omitempty"`
}

// Writer serializes extraction records.
type Writer interface {
	// Write adds one record.
	Write(r Record) error

	// Flush renders everything written so far.
	Flush() error
}

// WriterOption configures a writer.
type WriterOption func(*writerConfig)

type writerConfig struct {
	pretty bool
	indent string
}

// WithPretty toggles pretty-printing for formats that support it.
func WithPretty(enabled bool) WriterOption {
	return func(c *writerConfig) {
		c.pretty = enabled
	}
}

// NewWriter creates a writer for the given format.
func NewWriter(w io.Writer, format Format, opts ...WriterOption) (Writer, error) {
	cfg := &writerConfig{
		pretty: true,
		indent: "  ",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	switch format {
	case FormatJSON:
		return newJSONWriter(w, cfg.pretty, cfg.indent), nil
	case FormatJSONL:
		return newJSONLWriter(w), nil
	case FormatYAML:
		return newYAMLWriter(w), nil
	default:
		return nil, fmt.Errorf("output: unsupported format %q", format)
	}
}
