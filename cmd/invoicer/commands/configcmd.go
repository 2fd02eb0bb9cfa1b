package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/orderdesk/invoicer/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration helpers",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter .invoicer.yaml to the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		const path = ".invoicer.yaml"
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
		example, err := config.Example()
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, example, 0o644); err != nil {
			return err
		}
		logInfo("Wrote %s", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
