// Version command for the acctrack CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kridsada-n/acctrack/pkg/acctrack"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the acctrack version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("acctrack", acctrack.Version)
	},
}
