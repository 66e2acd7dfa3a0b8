package main

import (
	"fmt"
	"os"
	"trainer-market-service/internal/adapters/export"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the full city table to an XLSX workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		explorer, err := openExplorer(cmd.Context())
		if err != nil {
			return err
		}

		f, err := os.Create(exportOut)
		if err != nil {
			return eris.Wrapf(err, "export: create %q", exportOut)
		}

		cities := explorer.Cities()
		if err := export.WriteXLSX(f, cities); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return eris.Wrapf(err, "export: close %q", exportOut)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d cities to %s\n", len(cities), exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "cities.xlsx", "output workbook path")
	rootCmd.AddCommand(exportCmd)
}
