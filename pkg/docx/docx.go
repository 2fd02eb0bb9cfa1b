// Package docx reads and mutates Word documents in place. It models the
// main document part as ordered paragraphs of formatting-homogeneous runs
// and as tables with (row, column)-addressable cells, which is the contract
// the invoice composer substitutes tokens against. Every archive entry
// other than word/document.xml is carried through untouched.
package docx

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

const documentPart = "word/document.xml"

var (
	errMalformed = errors.New("docx: malformed document XML")

	// ErrNoDocumentPart is returned when the archive is not a Word document.
	ErrNoDocumentPart = errors.New("docx: archive has no word/document.xml part")
)

type archiveEntry struct {
	name string
	data []byte
}

// Document is one loaded .docx file. It is exclusively owned by the caller;
// concurrent mutation of a single Document is not supported.
type Document struct {
	entries []archiveEntry
	header  string
	root    *node
	body    *node

	paragraphs []*Paragraph
	tables     []*Table
}

// Load opens a .docx file and parses its main document part.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadBytes(data)
}

// LoadBytes parses a .docx archive held in memory.
func LoadBytes(data []byte) (*Document, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("docx: open archive: %w", err)
	}

	doc := &Document{}
	found := false
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("docx: open %s: %w", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("docx: read %s: %w", f.Name, err)
		}
		doc.entries = append(doc.entries, archiveEntry{name: f.Name, data: content})
		if f.Name == documentPart {
			found = true
		}
	}
	if !found {
		return nil, ErrNoDocumentPart
	}

	if err := doc.parse(); err != nil {
		return nil, err
	}
	return doc, nil
}

func (d *Document) parse() error {
	var part []byte
	for _, e := range d.entries {
		if e.name == documentPart {
			part = e.data
			break
		}
	}

	root, header, err := parseXML(part)
	if err != nil {
		return fmt.Errorf("docx: parse %s: %w", documentPart, err)
	}
	body := root.find("w:body")
	if body == nil {
		return errMalformed
	}

	d.header = header
	d.root = root
	d.body = body
	d.paragraphs = nil
	d.tables = nil
	for _, c := range body.children {
		switch {
		case c.is("w:p"):
			d.paragraphs = append(d.paragraphs, &Paragraph{node: c})
		case c.is("w:tbl"):
			d.tables = append(d.tables, &Table{node: c})
		}
	}
	return nil
}

// Paragraphs returns the body-level paragraphs in document order. Paragraphs
// inside table cells are reached through their cell.
func (d *Document) Paragraphs() []*Paragraph {
	return d.paragraphs
}

// Tables returns the document's tables in document order.
func (d *Document) Tables() []*Table {
	return d.tables
}

// Table returns the table at the given index.
func (d *Document) Table(index int) (*Table, error) {
	if index < 0 || index >= len(d.tables) {
		return nil, fmt.Errorf("docx: table index %d out of range (document has %d)", index, len(d.tables))
	}
	return d.tables[index], nil
}

// Bytes re-serializes the document into a .docx archive.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, e := range d.entries {
		w, err := zw.Create(e.name)
		if err != nil {
			return nil, fmt.Errorf("docx: write %s: %w", e.name, err)
		}
		data := e.data
		if e.name == documentPart {
			data = serialize(d.root, d.header)
		}
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("docx: write %s: %w", e.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes the document to path.
func (d *Document) Save(path string) error {
	data, err := d.Bytes()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
