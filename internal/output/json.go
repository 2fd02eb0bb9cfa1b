package output

import (
	"bufio"
	"encoding/json"
	"io"
)

// jsonWriter buffers records and renders them on Flush: a single record is
// emitted as an object, several as an array.
type jsonWriter struct {
	w       *bufio.Writer
	pretty  bool
	indent  string
	records []Record
}

func newJSONWriter(w io.Writer, pretty bool, indent string) *jsonWriter {
	return &jsonWriter{w: bufio.NewWriter(w), pretty: pretty, indent: indent}
}

func (w *jsonWriter) Write(r Record) error {
	w.records = append(w.records, r)
	return nil
}

func (w *jsonWriter) Flush() error {
	var payload any = w.records
	if len(w.records) == 1 {
		payload = w.records[0]
	}

	var data []byte
	var err error
	if w.pretty {
		data, err = json.MarshalIndent(payload, "", w.indent)
	} else {
		data, err = json.Marshal(payload)
	}
	if err != nil {
		return err
	}

	if _, err := w.w.Write(data); err != nil {
		return err
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return err
	}
	return w.w.Flush()
}

// jsonlWriter emits one JSON object per record per line, flushed as each
// record arrives.
type jsonlWriter struct {
	w *bufio.Writer
}

func newJSONLWriter(w io.Writer) *jsonlWriter {
	return &jsonlWriter{w: bufio.NewWriter(w)}
}

func (w *jsonlWriter) Write(r Record) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	if _, err := w.w.Write(data); err != nil {
		return err
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return err
	}
	return w.w.Flush()
}

func (w *jsonlWriter) Flush() error {
	return w.w.Flush()
}
