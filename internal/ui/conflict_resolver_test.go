package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwhitfield/dmerge/internal/config"
	"github.com/jwhitfield/dmerge/internal/merge"
)

const conflictedDoc = `intro
<<<<<<< HEAD
ours A
=======
theirs A
>>>>>>> branch
middle
<<<<<<< HEAD
ours B
=======
theirs B
>>>>>>> branch
outro
`

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func updateConflict(t *testing.T, m ConflictResolverModel, msg tea.Msg) ConflictResolverModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(ConflictResolverModel)
}

func newConflictModel(t *testing.T) ConflictResolverModel {
	t.Helper()
	m := NewConflictResolverModel(config.Default(), merge.NewResolver(), "file.go", conflictedDoc)
	require.Equal(t, 2, m.file.Total())
	return updateConflict(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
}

func TestConflictResolver_AcceptAdvances(t *testing.T) {
	m := newConflictModel(t)

	m = updateConflict(t, m, keyMsg('o'))
	assert.Equal(t, 1, m.file.ResolvedCount())
	assert.Equal(t, merge.Ours, m.file.Conflicts[0].Resolution)
	// Accepting jumps to the next unresolved conflict.
	assert.Equal(t, 1, m.current)

	m = updateConflict(t, m, keyMsg('t'))
	assert.Equal(t, merge.Theirs, m.file.Conflicts[1].Resolution)
	assert.True(t, m.file.FullyResolved())
}

func TestConflictResolver_ApplyRequiresFullResolution(t *testing.T) {
	m := newConflictModel(t)

	m = updateConflict(t, m, keyMsg('a'))
	assert.False(t, m.applied)
	assert.Contains(t, m.message, "unresolved")

	m = updateConflict(t, m, keyMsg('o'))
	m = updateConflict(t, m, keyMsg('b'))
	m = updateConflict(t, m, keyMsg('a'))

	require.True(t, m.applied)
	assert.Equal(t, "intro\nours A\nmiddle\nours B\ntheirs B\noutro\n", m.resolved)
}

func TestConflictResolver_Navigation(t *testing.T) {
	m := newConflictModel(t)

	m = updateConflict(t, m, keyMsg('n'))
	assert.Equal(t, 1, m.current)
	m = updateConflict(t, m, keyMsg('n'))
	assert.Equal(t, 0, m.current)
	m = updateConflict(t, m, keyMsg('p'))
	assert.Equal(t, 1, m.current)
}

func TestConflictResolver_AbortKeepsFileUntouched(t *testing.T) {
	m := newConflictModel(t)

	m = updateConflict(t, m, keyMsg('o'))
	m = updateConflict(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, m.applied)
	assert.Empty(t, m.resolved)
}

func TestConflictResolver_ViewShowsProgress(t *testing.T) {
	m := newConflictModel(t)

	view := m.View()
	assert.Contains(t, view, "file.go")
	assert.Contains(t, view, "0/2 resolved")

	m = updateConflict(t, m, keyMsg('o'))
	assert.Contains(t, m.View(), "1/2 resolved")
}

func TestConflictResolver_NoConflicts(t *testing.T) {
	m := NewConflictResolverModel(config.Default(), merge.NewResolver(), "clean.go", "plain\ntext\n")
	m = updateConflict(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	// Zero conflicts is trivially fully resolved; apply returns the
	// document unchanged.
	m = updateConflict(t, m, keyMsg('a'))
	assert.True(t, m.applied)
	assert.Equal(t, "plain\ntext\n", m.resolved)
}
