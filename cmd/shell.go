package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive dmerge shell",
	Long:  "Launch an interactive shell for running dmerge commands without repeating the 'dmerge' prefix",
	Run: func(cmd *cobra.Command, args []string) {
		runInteractiveShell()
	},
}

func runInteractiveShell() {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)

	historyFile := getHistoryFilePath()
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	// Tab completion over command names, then file paths for arguments.
	line.SetCompleter(func(input string) (c []string) {
		if strings.Contains(input, " ") {
			return completeFileArg(input)
		}
		for _, name := range getCommandNames() {
			if strings.HasPrefix(name, strings.ToLower(input)) {
				c = append(c, name)
			}
		}
		return
	})

	fmt.Println("dmerge interactive shell. Type 'exit' or press Ctrl+D to quit.")
	fmt.Println("Type 'help' to see available commands.")

	for {
		cwd, err := os.Getwd()
		if err != nil {
			cwd = "?"
		}

		prompt := fmt.Sprintf("[%s]> ", filepath.Base(cwd))
		input, err := line.Prompt(prompt)
		if err != nil {
			// EOF or Ctrl+D
			fmt.Println()
			break
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		line.AppendHistory(input)

		if handleSpecialCommand(input) {
			continue
		}

		if strings.ToLower(input) == "help" {
			rootCmd.Help()
			continue
		}

		executeCommand(input)
	}

	if f, err := os.Create(historyFile); err == nil {
		line.WriteHistory(f)
		f.Close()
	}
}

func handleSpecialCommand(input string) bool {
	switch strings.ToLower(input) {
	case "exit", "quit":
		fmt.Println("Goodbye!")
		os.Exit(0)
		return true
	case "clear", "cls":
		fmt.Print("\033[H\033[2J")
		return true
	}
	return false
}

func executeCommand(input string) {
	parts := parseCommandLine(input)
	if len(parts) == 0 {
		return
	}

	rootCmd.SetArgs(parts)

	// Shell mode keeps running on command errors instead of exiting.
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	rootCmd.SetArgs([]string{})
}

func parseCommandLine(input string) []string {
	// Split on spaces but respect quotes
	var parts []string
	var current strings.Builder
	inQuotes := false
	quoteChar := rune(0)

	for _, char := range input {
		switch {
		case (char == '"' || char == '\'') && !inQuotes:
			inQuotes = true
			quoteChar = char
		case char == quoteChar && inQuotes:
			inQuotes = false
			quoteChar = 0
		case char == ' ' && !inQuotes:
			if current.Len() > 0 {
				parts = append(parts, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(char)
		}
	}

	if current.Len() > 0 {
		parts = append(parts, current.String())
	}

	return parts
}

// completeFileArg completes the last word of the input as a file path.
func completeFileArg(input string) []string {
	idx := strings.LastIndex(input, " ")
	prefix, partial := input[:idx+1], input[idx+1:]

	matches, err := filepath.Glob(partial + "*")
	if err != nil {
		return nil
	}

	var completions []string
	for _, match := range matches {
		completions = append(completions, prefix+match)
	}
	return completions
}

func getCommandNames() []string {
	var names []string
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "shell" {
			continue
		}
		names = append(names, cmd.Name())
	}
	return names
}

func getHistoryFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".dmerge_history"
	}
	return filepath.Join(homeDir, ".dmerge_history")
}
