package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/sofmeright/badgemaker/src/badge"
	"github.com/sofmeright/badgemaker/src/config"
	"github.com/sofmeright/badgemaker/src/gitver"
	"github.com/sofmeright/badgemaker/src/output"
	"github.com/spf13/cobra"
)

var (
	gStatus string
	gRepo   string
)

var generateCmd = &cobra.Command{
	Use:   "generate [name...]",
	Short: "Generate the badges defined in config",
	Long: `Generate every badge listed under "badges" in the config, or only the
named ones. Messages may reference git version placeholders such as
{version} or {sha:7}; a color of "auto" follows --status.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&gStatus, "status", "", "status for auto colors: passed, warning, critical")
	generateCmd.Flags().StringVar(&gRepo, "repo", ".", "git repository used for version placeholders")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	items, err := selectBadges(cfg.Badges, args)
	if err != nil {
		return err
	}

	var info *gitver.VersionInfo
	for _, item := range items {
		if gitver.HasTemplate(item.Message) {
			info, err = gitver.DetectVersion(gRepo)
			if err != nil {
				fmt.Fprintf(os.Stderr, "  warning: version detection failed: %v\n", err)
			}
			break
		}
	}

	start := time.Now()
	color := output.UseColor()
	w := cmd.OutOrStdout()

	var failed []string
	rows := make([][3]string, 0, len(items))
	for _, item := range items {
		item = item.Resolved(cfg.Defaults)

		msgColor := item.Color
		if msgColor == "auto" {
			msgColor = badge.StatusColor(gStatus)
		}

		b, err := badge.NewBuilder().
			Label(item.Label).
			Message(gitver.ResolveTemplate(item.Message, info)).
			LabelColorParse(item.LabelColor).
			ColorParse(msgColor).
			StyleParse(item.Style).
			Build()
		if err == nil {
			err = writeBadge(item.Output, b)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "  badge %s: %v\n", item.Name, err)
			failed = append(failed, item.Name)
			rows = append(rows, [3]string{item.Name, item.Output, "failed"})
			continue
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "  badge %s id=%s\n", item.Name, b.ID())
		}
		rows = append(rows, [3]string{item.Name, item.Output, "success"})
	}

	sec := output.NewSection(w, "Badges", time.Since(start), color)
	for _, r := range rows {
		output.BadgeRow(sec, r[0], r[1], r[2], color)
	}
	sec.Close()

	if len(failed) > 0 {
		return fmt.Errorf("%d of %d badges failed", len(failed), len(items))
	}
	return nil
}

// selectBadges returns the configured badges, filtered to names when given.
func selectBadges(all []config.BadgeItem, names []string) ([]config.BadgeItem, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("no badges configured")
	}
	if len(names) == 0 {
		return all, nil
	}

	byName := make(map[string]config.BadgeItem, len(all))
	for _, item := range all {
		byName[item.Name] = item
	}
	selected := make([]config.BadgeItem, 0, len(names))
	for _, n := range names {
		item, ok := byName[n]
		if !ok {
			return nil, fmt.Errorf("unknown badge %q", n)
		}
		selected = append(selected, item)
	}
	return selected, nil
}
