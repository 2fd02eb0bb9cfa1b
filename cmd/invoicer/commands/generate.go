package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/orderdesk/invoicer/internal/compose"
	"github.com/orderdesk/invoicer/internal/config"
	"github.com/orderdesk/invoicer/internal/logger"
	"github.com/orderdesk/invoicer/internal/mail"
	"github.com/orderdesk/invoicer/internal/parser"
)

var generateCmd = &cobra.Command{
	Use:   "generate <mail.eml> [more.eml ...]",
	Short: "Generate invoices from exported order mails",
	Long: `Parse each exported mail file, extract the order and fill the invoice
template. Every mail is processed independently; a mail that fails does not
stop the batch.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	flags := generateCmd.Flags()
	flags.StringP("template", "t", "", "invoice template .docx (overrides config)")
	flags.StringP("output-dir", "o", "", "output directory (overrides config)")

	_ = viper.BindPFlag("template_path", flags.Lookup("template"))
	_ = viper.BindPFlag("output_dir", flags.Lookup("output-dir"))
}

func runGenerate(cmd *cobra.Command, args []string) error {
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

	composer := compose.New(cfg)
	failures := 0
	for _, path := range args {
		if err := processFile(cfg, composer, path); err != nil {
			logger.Error("order failed", "mail", path, "error", err)
			failures++
		}
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d mails failed", failures, len(args))
	}
	return nil
}

// processFile runs one mail file through the pipeline: load, extract,
// compose. Extraction failures are tolerated (the composer defaults the
// missing fields); only structural failures return an error.
func processFile(cfg *config.Config, composer *compose.Composer, path string) error {
	msg, err := mail.ReadFile(path)
	if err != nil {
		return err
	}

	if cfg.SubjectHas != "" && !strings.Contains(msg.Subject, cfg.SubjectHas) {
		logger.Debug("skipping mail, subject does not match", "mail", path, "subject", msg.Subject)
		return nil
	}

	o, missing := parser.OrderFromMail(msg)
	if len(missing) > 0 {
		logger.Warn("extraction incomplete", "mail", path, "fields", strings.Join(missing, ","))
	}

	result, err := composer.Generate(o)
	if err != nil {
		return err
	}

	logInfo("Invoice created at %s", result.DocxPath)
	if result.ErrorsPath != "" {
		logInfo("Defaulted fields written to %s", result.ErrorsPath)
	}
	return nil
}
