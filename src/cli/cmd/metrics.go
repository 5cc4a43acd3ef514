package cmd

import (
	"github.com/sofmeright/badgemaker/src/metrics"
	"github.com/spf13/cobra"
)

var (
	mFont string
	mSize float64
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Dump a glyph width table",
	Long: `Print per-character advance widths. Without --font the built-in
11px Verdana table is shown; with --font the widths are measured from
the given TrueType/OpenType file.`,
	Args: cobra.NoArgs,
	RunE: runMetrics,
}

func init() {
	metricsCmd.Flags().StringVar(&mFont, "font", "", "font file (.ttf/.otf)")
	metricsCmd.Flags().Float64Var(&mSize, "size", 11, "font size in pixels")

	rootCmd.AddCommand(metricsCmd)
}

func runMetrics(cmd *cobra.Command, args []string) error {
	table := metrics.Verdana11
	if mFont != "" {
		var err error
		table, err = metrics.LoadFontFile(mFont, mSize)
		if err != nil {
			return err
		}
	}
	return table.Dump(cmd.OutOrStdout())
}
