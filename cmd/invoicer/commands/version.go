package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orderdesk/invoicer/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Get()
		fmt.Printf("invoicer %s\n", version.String())
		fmt.Printf("  commit:     %s\n", info.Commit)
		fmt.Printf("  built:      %s\n", info.BuildDate)
		fmt.Printf("  go version: %s\n", info.GoVersion)
		fmt.Printf("  platform:   %s\n", info.Platform)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
