package cli

import (
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the tablediff version",
	Run: func(cmd *cobra.Command, args []string) {
		d := getDisplayFromContext(cmd.Context())
		d.Println("tablediff %s", rootCmd.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
