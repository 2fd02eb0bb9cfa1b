package output

import (
	"bufio"
	"io"

	"gopkg.in/yaml.v3"
)

// yamlWriter buffers records and renders them on Flush: a single record as
// one document, several as a sequence.
type yamlWriter struct {
	w       *bufio.Writer
	records []Record
}

func newYAMLWriter(w io.Writer) *yamlWriter {
	return &yamlWriter{w: bufio.NewWriter(w)}
}

func (w *yamlWriter) Write(r Record) error {
	w.records = append(w.records, r)
	return nil
}

func (w *yamlWriter) Flush() error {
	enc := yaml.NewEncoder(w.w)
	enc.SetIndent(2)

	var err error
	if len(w.records) == 1 {
		err = enc.Encode(w.records[0])
	} else {
		err = enc.Encode(w.records)
	}
	if err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return w.w.Flush()
}
