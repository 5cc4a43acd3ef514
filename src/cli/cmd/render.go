package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sofmeright/badgemaker/src/badge"
	"github.com/spf13/cobra"
)

var (
	rLabel      string
	rMessage    string
	rColor      string
	rLabelColor string
	rStyle      string
	rOutput     string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a single badge from flags",
	Long: `Render one badge and write the SVG to stdout or --output.

Unset colors and style fall back to the config defaults, then to the
built-in defaults (label #555, message #4c1, flat).`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&rLabel, "label", "", "left side text (empty for a label-less badge)")
	renderCmd.Flags().StringVar(&rMessage, "message", "", "right side text")
	renderCmd.Flags().StringVar(&rColor, "color", "", "message color: palette name, hex, rgb()/hsl() or CSS name")
	renderCmd.Flags().StringVar(&rLabelColor, "label-color", "", "label color")
	renderCmd.Flags().StringVar(&rStyle, "style", "", "flat, flat-square or plastic")
	renderCmd.Flags().StringVarP(&rOutput, "output", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	d := cfg.Defaults

	b, err := badge.NewBuilder().
		Label(rLabel).
		Message(rMessage).
		LabelColorParse(firstNonEmpty(rLabelColor, d.LabelColor)).
		ColorParse(firstNonEmpty(rColor, d.Color)).
		StyleParse(firstNonEmpty(rStyle, d.Style)).
		Build()
	if err != nil {
		return err
	}

	if rOutput == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), b.SVG())
		return err
	}
	if err := writeBadge(rOutput, b); err != nil {
		return err
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "  badge %s → %s\n", b.ID(), rOutput)
	}
	return nil
}

// writeBadge writes the badge SVG, creating parent directories as needed.
func writeBadge(path string, b *badge.Badge) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating badge directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(b.SVG()), 0o644); err != nil {
		return fmt.Errorf("writing badge: %w", err)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
