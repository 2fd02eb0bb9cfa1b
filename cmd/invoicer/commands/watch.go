package commands

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/orderdesk/invoicer/internal/compose"
	"github.com/orderdesk/invoicer/internal/config"
	"github.com/orderdesk/invoicer/internal/logger"
)

const processedDir = "processed"

var watchCmd = &cobra.Command{
	Use:   "watch <inbox-dir>",
	Short: "Watch a directory for new order mails",
	Long: `Watch an inbox directory and run every new .eml file through the
pipeline. Files present at startup are processed first; handled files are
moved into a processed/ subdirectory so a restart does not invoice them
twice. A periodic sweep catches files the watcher missed.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
		File:  ".invoicer.log",
	})

	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		logError("%v", err)
		return err
	}

	inbox := args[0]
	if err := os.MkdirAll(filepath.Join(inbox, processedDir), 0o755); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(inbox); err != nil {
		return err
	}

	composer := compose.New(cfg)
	sweep := func() {
		entries, err := os.ReadDir(inbox)
		if err != nil {
			logger.Error("read inbox", "error", err)
			return
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".eml") {
				continue
			}
			handleInboxFile(cfg, composer, inbox, filepath.Join(inbox, entry.Name()))
		}
	}

	logInfo("Watching %s", inbox)
	sweep()

	ticker := time.NewTicker(cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logInfo("Shutting down")
			return nil
		case <-ticker.C:
			sweep()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !strings.HasSuffix(event.Name, ".eml") {
				continue
			}
			// Mail exporters write then rename; the file may still be
			// growing when the event fires.
			time.Sleep(100 * time.Millisecond)
			handleInboxFile(cfg, composer, inbox, event.Name)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", "error", err)
		}
	}
}

// handleInboxFile processes one mail and moves it out of the inbox. A
// failed mail stays in place for a later retry; the error is logged and the
// watch loop keeps running. Moving a handled mail into processed/ fires a
// rename event for its old inbox path, so a path that no longer exists is
// skipped silently.
func handleInboxFile(cfg *config.Config, composer *compose.Composer, inbox, path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := processFile(cfg, composer, path); err != nil {
		logger.Error("order failed", "mail", path, "error", err)
		return
	}
	dest := filepath.Join(inbox, processedDir, filepath.Base(path))
	if err := os.Rename(path, dest); err != nil {
		logger.Error("move processed mail", "mail", path, "error", err)
	}
}
