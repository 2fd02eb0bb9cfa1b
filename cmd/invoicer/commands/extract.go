package commands

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/orderdesk/invoicer/internal/logger"
	"github.com/orderdesk/invoicer/internal/mail"
	"github.com/orderdesk/invoicer/internal/output"
	"github.com/orderdesk/invoicer/internal/parser"
)

var extractCmd = &cobra.Command{
	Use:   "extract <mail.eml> [more.eml ...]",
	Short: "Extract order data from mails without generating invoices",
	Long: `Parse each exported mail file and print the extracted order as JSON,
JSONL or YAML. Fields the patterns could not find are listed per mail, which
makes this the quickest way to check why an invoice came out incomplete.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	flags := extractCmd.Flags()
	flags.StringP("format", "f", "json", "output format: json, jsonl or yaml")
	flags.Bool("compact", false, "compact JSON output")
}

func runExtract(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	format, _ := cmd.Flags().GetString("format")
	compact, _ := cmd.Flags().GetBool("compact")

	w, err := output.NewWriter(os.Stdout, output.Format(format), output.WithPretty(!compact))
	if err != nil {
		logError("%v", err)
		return err
	}

	for _, path := range args {
		msg, err := mail.ReadFile(path)
		if err != nil {
			logger.Error("mail unreadable", "mail", path, "error", err)
			continue
		}

		o, missing := parser.OrderFromMail(msg)
		record := output.Record{
			Source:  path,
			Subject: msg.Subject,
			Order:   o,
			Failed:  missing,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return w.Flush()
}
