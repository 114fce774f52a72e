package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jwhitfield/dmerge/internal/config"
	"github.com/jwhitfield/dmerge/internal/diff"
	"github.com/jwhitfield/dmerge/internal/ui"
)

var (
	diffContext          int
	diffSummary          bool
	diffIgnoreWhitespace bool
	diffIgnoreTrailing   bool
)

var diffCmd = &cobra.Command{
	Use:   "diff <old-file> <new-file>",
	Short: "Print a unified diff of two files",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		engine := diff.NewEngine(diffOptions(cmd, cfg))

		oldText := readFileOrExit(args[0])
		newText := readFileOrExit(args[1])

		result := engine.Compute(oldText, newText)

		if diffSummary {
			fmt.Println(result.Summary())
		} else {
			fmt.Print(engine.Unified(result, args[0], args[1]))
		}

		// diff(1) convention: exit 1 when the files differ.
		if !result.IsIdentical() {
			os.Exit(1)
		}
	},
}

var viewCmd = &cobra.Command{
	Use:   "view <old-file> <new-file>",
	Short: "Open an interactive diff viewer with collapsible regions",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		cfg.Diff = diffConfigWithFlags(cmd, cfg.Diff)

		oldText := readFileOrExit(args[0])
		newText := readFileOrExit(args[1])

		if err := ui.ShowDiff(cfg, args[0], args[1], oldText, newText); err != nil {
			fmt.Fprintf(os.Stderr, "Error running diff viewer: %v\n", err)
			os.Exit(2)
		}
	},
}

func init() {
	for _, c := range []*cobra.Command{diffCmd, viewCmd} {
		c.Flags().IntVar(&diffContext, "context", 3, "unchanged lines of context around changes")
		c.Flags().BoolVarP(&diffIgnoreWhitespace, "ignore-whitespace", "w", false, "ignore all whitespace differences")
		c.Flags().BoolVar(&diffIgnoreTrailing, "ignore-trailing-whitespace", false, "ignore trailing whitespace differences")
	}
	diffCmd.Flags().BoolVar(&diffSummary, "summary", false, "print only the change counts")
}

// diffConfigWithFlags overlays any explicitly set command-line flags on the
// configured diff settings.
func diffConfigWithFlags(cmd *cobra.Command, dc config.DiffConfig) config.DiffConfig {
	if cmd.Flags().Changed("context") {
		dc.ContextLines = diffContext
	}
	if cmd.Flags().Changed("ignore-whitespace") {
		dc.IgnoreWhitespace = diffIgnoreWhitespace
	}
	if cmd.Flags().Changed("ignore-trailing-whitespace") {
		dc.IgnoreTrailingWhitespace = diffIgnoreTrailing
	}
	return dc
}

func diffOptions(cmd *cobra.Command, cfg config.Config) diff.Options {
	dc := diffConfigWithFlags(cmd, cfg.Diff)
	return diff.Options{
		ContextLines:             dc.ContextLines,
		CollapseThreshold:        dc.CollapseThreshold,
		IgnoreWhitespace:         dc.IgnoreWhitespace,
		IgnoreTrailingWhitespace: dc.IgnoreTrailingWhitespace,
	}
}
