// Probe command: inspect a folder for existing bookkeeping data.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kridsada-n/acctrack/internal/sqlite"
)

var probeCmd = &cobra.Command{
	Use:   "probe <folder>",
	Short: "Check a folder for an existing record store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := sqlite.ProbeFolder(args[0])
		if err != nil {
			return err
		}
		if !res.HasData {
			fmt.Println("no existing data")
			return nil
		}
		fmt.Printf("existing store with %d tables\n", res.TableCount)
		return nil
	},
}
