package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jwhitfield/dmerge/internal/merge"
	"github.com/jwhitfield/dmerge/internal/ui"
)

var resolveYes bool

var conflictsCmd = &cobra.Command{
	Use:   "conflicts <file>...",
	Short: "List merge conflicts in files",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		resolver := merge.NewResolver()

		total := 0
		for _, path := range args {
			file := resolver.Detect(path, readFileOrExit(path))
			if file.Total() == 0 {
				fmt.Printf("%s: no conflicts\n", path)
				continue
			}
			total += file.Total()
			fmt.Printf("%s: %d conflict(s)\n", path, file.Total())
			for i, c := range file.Conflicts {
				fmt.Printf("  #%d lines %d-%d (%s vs %s)\n",
					i+1, c.StartLine+1, c.EndLine+1, c.OursLabel, c.TheirsLabel)
			}
		}

		if total > 0 {
			os.Exit(1)
		}
	},
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <file>...",
	Short: "Interactively resolve merge conflicts and rewrite the files",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		resolver := merge.NewResolver()

		contents := make(map[string]string, len(args))
		counts := make(map[string]int, len(args))
		for _, path := range args {
			content := readFileOrExit(path)
			contents[path] = content
			counts[path] = resolver.Detect(path, content).Total()
		}

		pending := resolver.FilesWithConflicts()
		if len(pending) == 0 {
			fmt.Println("No conflicts to resolve.")
			return
		}

		// With a single conflicted file there is nothing to pick.
		selected := pending
		if len(pending) > 1 {
			var err error
			selected, err = ui.SelectConflictFiles(pending, counts)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error selecting files: %v\n", err)
				os.Exit(2)
			}
			if len(selected) == 0 {
				fmt.Println("No files selected.")
				return
			}
		}

		for _, path := range selected {
			resolved, applied, err := ui.ResolveFile(cfg, resolver, path, contents[path])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error resolving %s: %v\n", path, err)
				os.Exit(2)
			}
			if !applied {
				fmt.Printf("%s: left unresolved\n", path)
				continue
			}

			if !resolveYes {
				ok, err := ui.ConfirmWrite(path)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error confirming write: %v\n", err)
					os.Exit(2)
				}
				if !ok {
					fmt.Printf("%s: resolution discarded\n", path)
					continue
				}
			}

			if err := os.WriteFile(path, []byte(resolved), 0o644); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
				os.Exit(2)
			}
			fmt.Printf("%s: resolved %d conflict(s)\n", path, counts[path])
		}
	},
}

func init() {
	resolveCmd.Flags().BoolVarP(&resolveYes, "yes", "y", false, "write resolved files without confirmation")
}
