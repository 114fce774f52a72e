package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jwhitfield/dmerge/internal/config"
	"github.com/jwhitfield/dmerge/internal/merge"
)

// contextAround is the number of surrounding document lines shown above
// and below the current conflict block.
const contextAround = 3

// ConflictResolverModel steps through the conflicts of one file and
// records a resolution for each. When every conflict is resolved the user
// can apply, which reassembles the document and quits.
type ConflictResolverModel struct {
	resolver *merge.Resolver
	file     *merge.ConflictFile
	path     string
	original string
	lines    []string

	current  int
	resolved string
	applied  bool
	message  string

	viewport viewport.Model
	ready    bool

	styles Styles
}

func NewConflictResolverModel(cfg config.Config, resolver *merge.Resolver, path, original string) ConflictResolverModel {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle()

	file := resolver.File(path)
	if file == nil {
		file = resolver.Detect(path, original)
	}

	return ConflictResolverModel{
		resolver: resolver,
		file:     file,
		path:     path,
		original: original,
		lines:    splitContentLines(original),
		viewport: vp,
		styles:   NewStyles(cfg.UI.Theme),
	}
}

func (m ConflictResolverModel) Init() tea.Cmd {
	return nil
}

func (m ConflictResolverModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 6 // Title + progress + conflict list + message + help
		if !m.ready {
			m.viewport = viewport.New(msg.Width-2, msg.Height-headerHeight)
			m.viewport.Style = lipgloss.NewStyle()
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 2
			m.viewport.Height = msg.Height - headerHeight
		}
		m.viewport.SetContent(m.renderConflict())

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit

		case "j", "down":
			m.viewport.ScrollDown(1)

		case "k", "up":
			m.viewport.ScrollUp(1)

		case "o":
			m.accept(m.resolver.AcceptOurs, "kept ours")

		case "t":
			m.accept(m.resolver.AcceptTheirs, "kept theirs")

		case "b":
			m.accept(m.resolver.AcceptBoth, "kept both")

		case "n":
			m.moveNext()

		case "p":
			m.movePrev()

		case "a":
			if !m.file.FullyResolved() {
				remaining := m.file.Total() - m.file.ResolvedCount()
				m.message = fmt.Sprintf("%d conflict(s) still unresolved", remaining)
				break
			}
			resolved, ok := m.resolver.Apply(m.path, m.original)
			if !ok {
				m.message = "apply failed"
				break
			}
			m.resolved = resolved
			m.applied = true
			return m, tea.Quit
		}
		if m.ready {
			m.viewport.SetContent(m.renderConflict())
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// accept records a resolution for the current conflict and jumps to the
// next unresolved one.
func (m *ConflictResolverModel) accept(fn func(string, int) bool, note string) {
	if m.file.Total() == 0 {
		return
	}
	conflict := m.file.Conflicts[m.current]
	if !fn(m.path, conflict.ID) {
		m.message = "conflict not found"
		return
	}
	m.message = fmt.Sprintf("conflict %d: %s", m.current+1, note)

	if next := m.resolver.NextUnresolved(m.path, conflict.StartLine); next != nil {
		m.current = m.indexOf(next)
	}
}

func (m *ConflictResolverModel) moveNext() {
	if m.file.Total() > 0 {
		m.current = (m.current + 1) % m.file.Total()
	}
}

func (m *ConflictResolverModel) movePrev() {
	if m.file.Total() > 0 {
		m.current = (m.current + m.file.Total() - 1) % m.file.Total()
	}
}

func (m *ConflictResolverModel) indexOf(c *merge.Conflict) int {
	for i, candidate := range m.file.Conflicts {
		if candidate.ID == c.ID {
			return i
		}
	}
	return m.current
}

func (m ConflictResolverModel) View() string {
	if !m.ready {
		return "Loading conflicts..."
	}

	var sections []string

	title := m.styles.Title.Render("Resolve conflicts - " + m.path)
	sections = append(sections, title)

	progress := fmt.Sprintf("%d/%d resolved", m.file.ResolvedCount(), m.file.Total())
	if m.file.FullyResolved() {
		progress += " - press a to apply"
	}
	sections = append(sections, m.styles.Message.Render(progress))

	sections = append(sections, m.renderConflictList())
	sections = append(sections, m.viewport.View())

	if m.message != "" {
		sections = append(sections, m.styles.Message.Render(m.message))
	} else {
		sections = append(sections, "")
	}

	help := m.styles.Help.Render("o: ours | t: theirs | b: both | n/p: next/prev | j/k: scroll | a: apply | q: abort")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderConflictList shows one badge per conflict with its state.
func (m ConflictResolverModel) renderConflictList() string {
	var badges []string
	for i, c := range m.file.Conflicts {
		badge := fmt.Sprintf("#%d %s", i+1, c.Resolution)
		switch {
		case i == m.current:
			badge = m.styles.Selected.Render(badge)
		case c.Resolved():
			badge = m.styles.Resolved.Render(badge)
		default:
			badge = m.styles.Unresolved.Render(badge)
		}
		badges = append(badges, badge)
	}
	return strings.Join(badges, "  ")
}

func (m ConflictResolverModel) renderConflict() string {
	if m.file.Total() == 0 {
		return m.styles.Context.Render("No conflicts in this file.")
	}

	c := m.file.Conflicts[m.current]
	var sb strings.Builder

	for i := max(0, c.StartLine-contextAround); i < c.StartLine; i++ {
		sb.WriteString(m.styles.Context.Render("  " + m.lines[i]))
		sb.WriteString("\n")
	}

	sb.WriteString(m.styles.Marker.Render("<<<<<<< " + c.OursLabel + " (ours)"))
	sb.WriteString("\n")
	for _, line := range c.OursContent {
		sb.WriteString(m.styles.OursBlock.Render("  " + line))
		sb.WriteString("\n")
	}

	sb.WriteString(m.styles.Marker.Render("======="))
	sb.WriteString("\n")
	for _, line := range c.TheirsContent {
		sb.WriteString(m.styles.TheirsBlock.Render("  " + line))
		sb.WriteString("\n")
	}

	sb.WriteString(m.styles.Marker.Render(">>>>>>> " + c.TheirsLabel + " (theirs)"))
	sb.WriteString("\n")

	for i := c.EndLine + 1; i < min(len(m.lines), c.EndLine+1+contextAround); i++ {
		sb.WriteString(m.styles.Context.Render("  " + m.lines[i]))
		sb.WriteString("\n")
	}

	if c.Resolved() {
		sb.WriteString("\n")
		sb.WriteString(m.styles.Resolved.Render("resolves to:"))
		sb.WriteString("\n")
		for _, line := range c.ResolvedContent() {
			sb.WriteString(m.styles.Context.Render("  " + line))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// splitContentLines mirrors the engine's line splitting: no phantom final
// empty line after a trailing newline.
func splitContentLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// ResolveFile runs the conflict resolver screen for one file. It returns
// the reassembled document and true when the user applied a full
// resolution, or false when they aborted.
func ResolveFile(cfg config.Config, resolver *merge.Resolver, path, original string) (string, bool, error) {
	m := NewConflictResolverModel(cfg, resolver, path, original)
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return "", false, err
	}
	result := final.(ConflictResolverModel)
	return result.resolved, result.applied, nil
}
