package cmd

import (
	"fmt"
	"os"

	"github.com/sofmeright/badgemaker/src/output"
	"github.com/sofmeright/badgemaker/src/verify"
	"github.com/spf13/cobra"
)

var (
	vCorpus     string
	vNoCache    bool
	vClearCache bool
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Compare rendered badges against the reference renderer",
	Long: `Render every case in the corpus locally and through the reference
renderer command, then compare the markup byte for byte.

Reference output is cached under .badgemaker/cache/oracle. Exits non-zero
when any case differs or fails.`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().StringVar(&vCorpus, "corpus", "", "case list file (default: verify.corpus from config)")
	verifyCmd.Flags().BoolVar(&vNoCache, "no-cache", false, "always call the reference renderer")
	verifyCmd.Flags().BoolVar(&vClearCache, "clear-cache", false, "remove cached reference output before running")

	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	vc := cfg.Verify

	path := firstNonEmpty(vCorpus, vc.Corpus)
	cases, err := verify.LoadCorpus(path)
	if err != nil {
		return err
	}

	cache := &verify.Cache{
		RootDir: firstNonEmpty(vc.CacheDir, "."),
		Enabled: vc.CacheEnabled() && !vNoCache,
	}
	if vClearCache {
		if err := cache.Clear(); err != nil {
			return fmt.Errorf("clearing cache: %w", err)
		}
	}

	runner := &verify.Runner{
		Oracle:      &verify.NodeOracle{Command: vc.Command, Dir: vc.Dir},
		Cache:       cache,
		Concurrency: vc.Concurrency,
		Verbose:     verbose,
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "  verifying %d cases from %s\n", len(cases), path)
	}

	results, err := runner.Run(cmd.Context(), cases)
	if err != nil {
		return err
	}

	p := &output.Printer{Writer: cmd.OutOrStdout(), Color: output.UseColor()}
	failed := p.Print(results)
	stats := verify.Summarize(results)
	p.Summary(stats, runner.CacheHits.Load(), runner.CacheMisses.Load())

	if failed {
		return fmt.Errorf("%d of %d cases differ from the reference renderer", stats.Mismatched+stats.Errors, stats.Total)
	}
	return nil
}
