package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"genomekit/internal/chart"
)

var (
	plotOut      string
	plotTitle    string
	plotXLabel   string
	plotYLabel   string
	plotCols     []int
	plotSkipRows int
)

// plotCmd renders a line chart from a run's CSV output
var plotCmd = &cobra.Command{
	Use:   "plot [csv-file]",
	Short: "Render a line chart from an evolution run's CSV output",
	Long: `Reads a run output CSV (update number in the first selected
column, score columns after it) and renders one line per score column.
A leading header row is detected automatically and supplies the legend
labels.

Example:
  genomekit plot output.csv --cols 0,1,2,4 --out Fitness.png`,
	Args: cobra.ExactArgs(1),
	RunE: runPlot,
}

func init() {
	plotCmd.Flags().StringVar(&plotOut, "out", "", "Output image path (default from config)")
	plotCmd.Flags().StringVar(&plotTitle, "title", "", "Chart title (default from config)")
	plotCmd.Flags().StringVar(&plotXLabel, "x-label", "", "X axis label (default from config)")
	plotCmd.Flags().StringVar(&plotYLabel, "y-label", "", "Y axis label (default from config)")
	plotCmd.Flags().IntSliceVar(&plotCols, "cols", nil, "Columns to plot, x column first (default all)")
	plotCmd.Flags().IntVar(&plotSkipRows, "skip-rows", 0, "Rows to drop before parsing")
}

// runPlot loads the CSV and writes the chart image
func runPlot(cmd *cobra.Command, args []string) error {
	path := args[0]
	logger.Debug("loading run output", zap.String("path", path))

	f, err := chart.LoadCSV(path, chart.LoadOptions{SkipRows: plotSkipRows, Cols: plotCols})
	if err != nil {
		return err
	}
	logger.Debug("run output loaded",
		zap.Int("rows", f.Rows()),
		zap.Int("columns", len(f.Cols)))

	ccfg := chart.Config{Title: plotTitle, XLabel: plotXLabel, YLabel: plotYLabel}
	if ccfg.Title == "" {
		ccfg.Title = cfg.Plot.Title
	}
	if ccfg.XLabel == "" {
		ccfg.XLabel = cfg.Plot.XLabel
	}
	if ccfg.YLabel == "" {
		ccfg.YLabel = cfg.Plot.YLabel
	}
	out := plotOut
	if out == "" {
		out = cfg.Plot.Out
	}

	if err := chart.Render(f, ccfg, out); err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, successStyle.Render("Wrote "+out))
	return nil
}
