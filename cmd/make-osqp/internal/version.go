package internal

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set via -ldflags at release time.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the make-osqp version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
