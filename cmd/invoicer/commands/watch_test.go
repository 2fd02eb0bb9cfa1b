package commands

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/orderdesk/invoicer/internal/compose"
	"github.com/orderdesk/invoicer/internal/config"
	"github.com/orderdesk/invoicer/internal/logger"
)

func TestHandleInboxFile_SkipsVanishedFile(t *testing.T) {
	// Moving a handled mail into processed/ fires a rename event for its
	// old inbox path; handling that event must not log a failure.
	var buf bytes.Buffer
	logger.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() {
		logger.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	})

	outputDir := t.TempDir()
	cfg := &config.Config{
		TemplatePath: filepath.Join(t.TempDir(), "template.docx"),
		OutputDir:    outputDir,
		CounterPath:  filepath.Join(t.TempDir(), "count"),
		HomeCountry:  "Deutschland",
	}
	inbox := t.TempDir()

	handleInboxFile(cfg, compose.New(cfg), inbox, filepath.Join(inbox, "gone.eml"))

	if buf.Len() != 0 {
		t.Errorf("unexpected log output: %s", buf.String())
	}
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("output dir not empty: %v", entries)
	}
}
