package docx

import (
	"archive/zip"
	"bytes"
	"regexp"
	"strings"
	"testing"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/></Types>`

// buildArchive assembles a minimal .docx holding the given document body
// XML (the content of w:body).
func buildArchive(t *testing.T, bodyXML string) []byte {
	t.Helper()
	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` + bodyXML + `</w:body></w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, entry := range []struct{ name, data string }{
		{"[Content_Types].xml", contentTypesXML},
		{"word/document.xml", document},
	} {
		w, err := zw.Create(entry.name)
		if err != nil {
			t.Fatalf("create %s: %v", entry.name, err)
		}
		if _, err := w.Write([]byte(entry.data)); err != nil {
			t.Fatalf("write %s: %v", entry.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close archive: %v", err)
	}
	return buf.Bytes()
}

func loadBody(t *testing.T, bodyXML string) *Document {
	t.Helper()
	doc, err := LoadBytes(buildArchive(t, bodyXML))
	if err != nil {
		t.Fatalf("LoadBytes() error = %v", err)
	}
	return doc
}

func run(text string) string {
	return `<w:r><w:t>` + text + `</w:t></w:r>`
}

func para(runs ...string) string {
	return `<w:p>` + strings.Join(runs, "") + `</w:p>`
}

// --- Loading ---

func TestLoadBytes_ParagraphText(t *testing.T) {
	doc := loadBody(t, para(run("Hello "), run("World")))

	ps := doc.Paragraphs()
	if len(ps) != 1 {
		t.Fatalf("len(paragraphs) = %d, want 1", len(ps))
	}
	if got := ps[0].Text(); got != "Hello World" {
		t.Errorf("Text() = %q, want %q", got, "Hello World")
	}
	if got := len(ps[0].Runs()); got != 2 {
		t.Errorf("len(runs) = %d, want 2", got)
	}
}

func TestLoadBytes_NoDocumentPart(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, _ := zw.Create("other.txt")
	_, _ = w.Write([]byte("x"))
	_ = zw.Close()

	if _, err := LoadBytes(buf.Bytes()); err != ErrNoDocumentPart {
		t.Errorf("err = %v, want ErrNoDocumentPart", err)
	}
}

func TestDocument_TableOutOfRange(t *testing.T) {
	doc := loadBody(t, para(run("x")))
	if _, err := doc.Table(0); err == nil {
		t.Error("expected error for missing table")
	}
}

// --- Token substitution ---

func TestReplaceText_SingleRun(t *testing.T) {
	body := `<w:p><w:r><w:rPr><w:b/></w:rPr><w:t>Datum: {{date}} Uhr</w:t></w:r></w:p>`
	doc := loadBody(t, body)
	p := doc.Paragraphs()[0]

	n := p.ReplaceText(regexp.MustCompile(regexp.QuoteMeta("{{date}}")), "15.04.2024")
	if n != 1 {
		t.Fatalf("replaced = %d, want 1", n)
	}
	if got := p.Text(); got != "Datum: 15.04.2024 Uhr" {
		t.Errorf("Text() = %q", got)
	}

	runs := p.Runs()
	if len(runs) != 1 {
		t.Fatalf("len(runs) = %d, want 1", len(runs))
	}
	// The run keeps its formatting properties.
	if runs[0].node.find("w:rPr") == nil {
		t.Error("run lost its w:rPr")
	}
}

func TestReplaceText_StraddlesTwoRuns(t *testing.T) {
	doc := loadBody(t, para(run("Nr: {{invoice"), run("_nr}} Ende")))
	p := doc.Paragraphs()[0]

	n := p.ReplaceText(regexp.MustCompile(regexp.QuoteMeta("{{invoice_nr}}")), "2024008")
	if n != 1 {
		t.Fatalf("replaced = %d, want 1", n)
	}
	if got := p.Text(); got != "Nr: 2024008 Ende" {
		t.Errorf("Text() = %q", got)
	}

	runs := p.Runs()
	if len(runs) != 2 {
		t.Fatalf("len(runs) = %d, want 2", len(runs))
	}
	if runs[0].Text() != "Nr: 2024008" {
		t.Errorf("runs[0] = %q", runs[0].Text())
	}
	if runs[1].Text() != " Ende" {
		t.Errorf("runs[1] = %q", runs[1].Text())
	}
}

func TestReplaceText_SpansManyRuns(t *testing.T) {
	doc := loadBody(t, para(run("A{{"), run("da"), run("te}}"), run("B")))
	p := doc.Paragraphs()[0]

	n := p.ReplaceText(regexp.MustCompile(regexp.QuoteMeta("{{date}}")), "heute")
	if n != 1 {
		t.Fatalf("replaced = %d, want 1", n)
	}
	if got := p.Text(); got != "AheuteB" {
		t.Errorf("Text() = %q", got)
	}

	// Spanned runs are emptied but left in place.
	runs := p.Runs()
	if len(runs) != 4 {
		t.Fatalf("len(runs) = %d, want 4", len(runs))
	}
	wantTexts := []string{"Aheute", "", "", "B"}
	for i, want := range wantTexts {
		if runs[i].Text() != want {
			t.Errorf("runs[%d] = %q, want %q", i, runs[i].Text(), want)
		}
	}
}

func TestReplaceText_MultipleTokens(t *testing.T) {
	doc := loadBody(t, para(run("{{x}} und {{x}}")))
	p := doc.Paragraphs()[0]

	n := p.ReplaceText(regexp.MustCompile(regexp.QuoteMeta("{{x}}")), "Y")
	if n != 2 {
		t.Fatalf("replaced = %d, want 2", n)
	}
	if got := p.Text(); got != "Y und Y" {
		t.Errorf("Text() = %q", got)
	}
}

func TestReplaceText_NoMatch(t *testing.T) {
	doc := loadBody(t, para(run("nothing here")))
	p := doc.Paragraphs()[0]
	if n := p.ReplaceText(regexp.MustCompile(regexp.QuoteMeta("{{date}}")), "x"); n != 0 {
		t.Errorf("replaced = %d, want 0", n)
	}
	if got := p.Text(); got != "nothing here" {
		t.Errorf("Text() = %q", got)
	}
}

func TestReplaceText_MultilineReplacement(t *testing.T) {
	doc := loadBody(t, para(run("{{address}}")))
	p := doc.Paragraphs()[0]

	p.ReplaceText(regexp.MustCompile(regexp.QuoteMeta("{{address}}")), "Max Mustermann\nMusterweg 1")
	if got := p.Text(); got != "Max Mustermann\nMusterweg 1" {
		t.Errorf("Text() = %q", got)
	}
	// The newline is encoded as an explicit break element.
	if p.Runs()[0].node.find("w:br") == nil {
		t.Error("expected a w:br inside the run")
	}
}

func TestReplaceTextFont(t *testing.T) {
	doc := loadBody(t, para(run("{{salutation}}")))
	p := doc.Paragraphs()[0]

	p.ReplaceTextFont(regexp.MustCompile(regexp.QuoteMeta("{{salutation}}")), "Hallo", &Font{Name: "Arial", Size: 32})

	r := p.Runs()[0]
	pr := r.node.find("w:rPr")
	if pr == nil {
		t.Fatal("run has no w:rPr")
	}
	fonts := pr.find("w:rFonts")
	if fonts == nil {
		t.Fatal("run has no w:rFonts")
	}
	if v, _ := fonts.attr("w:ascii"); v != "Arial" {
		t.Errorf("w:ascii = %q, want Arial", v)
	}
	if sz := pr.find("w:sz"); sz == nil {
		t.Error("run has no w:sz")
	} else if v, _ := sz.attr("w:val"); v != "64" {
		t.Errorf("w:sz = %q, want 64 half-points", v)
	}
}

// --- Tables ---

func cell(paragraphs ...string) string {
	return `<w:tc><w:tcPr/>` + strings.Join(paragraphs, "") + `</w:tc>`
}

func tableRow(cells ...string) string {
	return `<w:tr>` + strings.Join(cells, "") + `</w:tr>`
}

func table(rows ...string) string {
	return `<w:tbl><w:tblPr/><w:tblGrid/>` + strings.Join(rows, "") + `</w:tbl>`
}

func TestTable_CellAddressing(t *testing.T) {
	doc := loadBody(t, table(
		tableRow(cell(para(run("a"))), cell(para(run("b")))),
		tableRow(cell(para(run("c"))), cell(para(run("d")))),
	))

	tbl, err := doc.Table(0)
	if err != nil {
		t.Fatalf("Table(0) error = %v", err)
	}
	c, err := tbl.Cell(1, 0)
	if err != nil {
		t.Fatalf("Cell(1,0) error = %v", err)
	}
	if got := c.Text(); got != "c" {
		t.Errorf("Text() = %q, want c", got)
	}

	if _, err := tbl.Cell(2, 0); err == nil {
		t.Error("expected row range error")
	}
	if _, err := tbl.Cell(0, 5); err == nil {
		t.Error("expected column range error")
	}
}

func TestCell_SetTextAndMultiParagraphText(t *testing.T) {
	doc := loadBody(t, table(tableRow(cell(para(run("one")), para(run("two"))))))
	tbl, _ := doc.Table(0)
	c, _ := tbl.Cell(0, 0)

	if got := c.Text(); got != "one\ntwo" {
		t.Errorf("Text() = %q, want one\\ntwo", got)
	}

	c.SetText("rewritten")
	if got := c.Text(); got != "rewritten" {
		t.Errorf("Text() = %q", got)
	}
	if got := len(c.Paragraphs()); got != 1 {
		t.Errorf("len(paragraphs) = %d, want 1", got)
	}
}

func TestTable_AddRow(t *testing.T) {
	doc := loadBody(t, table(tableRow(cell(para(run("h1"))), cell(para(run("h2"))))))
	tbl, _ := doc.Table(0)

	row, err := tbl.AddRow()
	if err != nil {
		t.Fatalf("AddRow() error = %v", err)
	}
	cells := row.Cells()
	if len(cells) != 2 {
		t.Fatalf("new row has %d cells, want 2", len(cells))
	}
	for i, c := range cells {
		if c.Text() != "" {
			t.Errorf("cell %d text = %q, want empty", i, c.Text())
		}
		// Cloned structure keeps cell properties.
		if c.node.find("w:tcPr") == nil {
			t.Errorf("cell %d lost its w:tcPr", i)
		}
	}
	if got := len(tbl.Rows()); got != 2 {
		t.Errorf("len(rows) = %d, want 2", got)
	}

	// The header row is untouched.
	h, _ := tbl.Cell(0, 0)
	if h.Text() != "h1" {
		t.Errorf("header text = %q, want h1", h.Text())
	}
}

func TestTable_AddRowEmptyTable(t *testing.T) {
	doc := loadBody(t, table())
	tbl, _ := doc.Table(0)
	if _, err := tbl.AddRow(); err != ErrEmptyTable {
		t.Errorf("err = %v, want ErrEmptyTable", err)
	}
}

func TestTable_AlignColumn(t *testing.T) {
	doc := loadBody(t, table(
		tableRow(cell(para(run("a"))), cell(para(run("b")))),
		tableRow(cell(para(run("c"))), cell(para(run("d")))),
	))
	tbl, _ := doc.Table(0)
	tbl.AlignColumn(1, AlignRight)

	for _, c := range tbl.ColumnCells(1) {
		for _, p := range c.Paragraphs() {
			pr := p.node.find("w:pPr")
			if pr == nil {
				t.Fatal("paragraph has no w:pPr")
			}
			jc := pr.find("w:jc")
			if jc == nil {
				t.Fatal("paragraph has no w:jc")
			}
			if v, _ := jc.attr("w:val"); v != "right" {
				t.Errorf("w:jc = %q, want right", v)
			}
		}
	}

	// Column 0 is untouched.
	for _, c := range tbl.ColumnCells(0) {
		for _, p := range c.Paragraphs() {
			if p.node.find("w:pPr") != nil {
				t.Error("column 0 should not gain alignment")
			}
		}
	}
}

func TestTable_SetFont(t *testing.T) {
	doc := loadBody(t, table(tableRow(cell(para(run("a"), run("b"))))))
	tbl, _ := doc.Table(0)
	tbl.SetFont(Font{Name: "Calibri", Size: 10})

	c, _ := tbl.Cell(0, 0)
	for _, p := range c.Paragraphs() {
		for _, r := range p.Runs() {
			pr := r.node.find("w:rPr")
			if pr == nil {
				t.Fatal("run has no w:rPr after SetFont")
			}
			fonts := pr.find("w:rFonts")
			if v, _ := fonts.attr("w:ascii"); v != "Calibri" {
				t.Errorf("w:ascii = %q, want Calibri", v)
			}
			if v, _ := pr.find("w:sz").attr("w:val"); v != "20" {
				t.Errorf("w:sz = %q, want 20", v)
			}
		}
	}
}

// --- Round trip ---

func TestRoundTrip_PreservesOtherEntries(t *testing.T) {
	data := buildArchive(t, para(run("unchanged")))
	doc, err := LoadBytes(data)
	if err != nil {
		t.Fatalf("LoadBytes() error = %v", err)
	}

	out, err := doc.Bytes()
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(out), int64(len(out)))
	if err != nil {
		t.Fatalf("reopen archive: %v", err)
	}
	found := false
	for _, f := range zr.File {
		if f.Name != "[Content_Types].xml" {
			continue
		}
		found = true
		rc, _ := f.Open()
		var b bytes.Buffer
		_, _ = b.ReadFrom(rc)
		rc.Close()
		if b.String() != contentTypesXML {
			t.Error("[Content_Types].xml changed across round trip")
		}
	}
	if !found {
		t.Error("[Content_Types].xml missing after round trip")
	}
}

func TestRoundTrip_MutationSurvivesReload(t *testing.T) {
	doc := loadBody(t, para(run("Hallo {{name}}")))
	doc.Paragraphs()[0].ReplaceText(regexp.MustCompile(regexp.QuoteMeta("{{name}}")), "Welt")

	out, err := doc.Bytes()
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}
	reloaded, err := LoadBytes(out)
	if err != nil {
		t.Fatalf("reload error = %v", err)
	}
	if got := reloaded.Paragraphs()[0].Text(); got != "Hallo Welt" {
		t.Errorf("reloaded text = %q, want Hallo Welt", got)
	}
}

func TestRun_PreservesSpaceAttribute(t *testing.T) {
	doc := loadBody(t, para(run("x")))
	r := doc.Paragraphs()[0].Runs()[0]
	r.SetText(" leading and trailing ")

	if got := r.Text(); got != " leading and trailing " {
		t.Errorf("Text() = %q", got)
	}
	tElem := r.node.find("w:t")
	if v, _ := tElem.attr("xml:space"); v != "preserve" {
		t.Errorf("xml:space = %q, want preserve", v)
	}
}
