package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jwhitfield/dmerge/internal/config"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "dmerge",
	Short: "Line diffs and merge-conflict resolution for text files",
	Long:  "Computes minimal line-level diffs between file versions and interactively resolves three-way merge conflicts",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default is ~/.config/dmerge/config.toml)")

	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(conflictsCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(shellCmd)
}

func loadConfig() config.Config {
	var cfg config.Config
	var err error

	if cfgPath != "" {
		cfg, err = config.LoadFrom(cfgPath)
	} else {
		cfg, err = config.Load()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

func readFileOrExit(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
		os.Exit(2)
	}
	return string(data)
}
