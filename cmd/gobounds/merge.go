package main

import (
	"fmt"

	"github.com/philipparndt/gobounds/internal/loader"
	"github.com/philipparndt/gobounds/pkg/analysis"
	"github.com/spf13/cobra"
)

var mergeCmd = &cobra.Command{
	Use:   "merge [file...]",
	Short: "Compute one bounding box over several models",
	Long:  "Bound each model and expand a single box by every model box, as when placing several parts into one scene.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runMerge,
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	reports := make([]*analysis.Report, 0, len(args))

	printTitle(w, "Merged Bounding Box")
	for _, filename := range args {
		res, err := loader.Load(cmd.Context(), filename, loader.Options{OpenSCAD: cfg.OpenSCAD, Logger: logger})
		if err != nil {
			return err
		}
		report, err := analysis.AnalyzeModel(cmd.Context(), res.Model, cfg.Workers)
		if err != nil {
			return err
		}
		if report.Empty {
			logger.Warn("model has no triangles", "path", filename)
		}
		reports = append(reports, report)
		fmt.Fprintf(w, "%s: %s\n", filename, analysis.FormatBox(report.Bounds))
	}
	fmt.Fprintln(w)

	printSection(w, "Combined")
	printBox(w, analysis.MergeReports(reports...))
	return nil
}
