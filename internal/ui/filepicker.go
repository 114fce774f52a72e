package ui

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// SelectConflictFiles asks the user which of the conflicted files to
// resolve. counts maps each path to its number of conflicts.
func SelectConflictFiles(paths []string, counts map[string]int) ([]string, error) {
	var selected []string
	var options []huh.Option[string]

	for _, path := range paths {
		label := fmt.Sprintf("%s (%d conflicts)", path, counts[path])
		options = append(options, huh.NewOption(label, path))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select files to resolve:").
				Options(options...).
				Value(&selected),
		),
	)

	err := form.Run()
	if err != nil {
		return nil, err
	}

	return selected, nil
}

// ConfirmWrite asks before overwriting path with resolved content.
func ConfirmWrite(path string) (bool, error) {
	confirmed := false

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Write resolved content to %s?", path)).
				Value(&confirmed),
		),
	)

	err := form.Run()
	if err != nil {
		return false, err
	}

	return confirmed, nil
}
