package main

import (
	"github.com/philipparndt/gobounds/internal/loader"
	"github.com/philipparndt/gobounds/pkg/analysis"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display the bounding box of an STL or OpenSCAD file",
	Long:  "Bound every facet, merge the facet boxes and show the resulting box with its center, extent and surface area.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]

	res, err := loader.Load(cmd.Context(), filename, loader.Options{OpenSCAD: cfg.OpenSCAD, Logger: logger})
	if err != nil {
		return err
	}

	report, err := analysis.AnalyzeModel(cmd.Context(), res.Model, cfg.Workers)
	if err != nil {
		return err
	}

	printReport(cmd.OutOrStdout(), filename, report)
	return nil
}
