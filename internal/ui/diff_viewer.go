package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/jwhitfield/dmerge/internal/config"
	"github.com/jwhitfield/dmerge/internal/diff"
)

// DiffViewerModel is the interactive diff screen. It owns a diff engine so
// that collapsible-region state and whitespace toggling stay local to this
// viewing session.
type DiffViewerModel struct {
	engine  *diff.Engine
	oldPath string
	newPath string
	oldText string
	newText string

	result      *diff.Result
	regions     []diff.Region
	selected    int
	highlighter *highlighter

	viewport viewport.Model
	ready    bool
	width    int

	styles Styles
}

type diffComputedMsg struct {
	result  *diff.Result
	regions []diff.Region
}

func NewDiffViewerModel(cfg config.Config, oldPath, newPath, oldText, newText string) DiffViewerModel {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle()

	opts := diff.Options{
		ContextLines:             cfg.Diff.ContextLines,
		CollapseThreshold:        cfg.Diff.CollapseThreshold,
		IgnoreWhitespace:         cfg.Diff.IgnoreWhitespace,
		IgnoreTrailingWhitespace: cfg.Diff.IgnoreTrailingWhitespace,
	}

	var hl *highlighter
	if cfg.UI.SyntaxHighlight {
		hl = newHighlighter(newPath)
	}

	return DiffViewerModel{
		engine:      diff.NewEngine(opts),
		oldPath:     oldPath,
		newPath:     newPath,
		oldText:     oldText,
		newText:     newText,
		highlighter: hl,
		viewport:    vp,
		width:       80,
		styles:      NewStyles(cfg.UI.Theme),
	}
}

func (m DiffViewerModel) Init() tea.Cmd {
	return m.computeDiff()
}

func (m DiffViewerModel) computeDiff() tea.Cmd {
	engine := m.engine
	oldText, newText := m.oldText, m.newText
	return func() tea.Msg {
		result := engine.Compute(oldText, newText)
		regions := engine.FindCollapsibleRegions(result)
		return diffComputedMsg{result: result, regions: regions}
	}
}

func (m DiffViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 5 // Title + stats + region status + help
		m.width = msg.Width
		if !m.ready {
			m.viewport = viewport.New(msg.Width-2, msg.Height-headerHeight)
			m.viewport.Style = lipgloss.NewStyle()
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 2
			m.viewport.Height = msg.Height - headerHeight
		}
		if m.result != nil {
			m.viewport.SetContent(m.renderDiff())
		}

	case diffComputedMsg:
		m.result = msg.result
		m.regions = msg.regions
		m.selected = 0
		if m.ready {
			m.viewport.SetContent(m.renderDiff())
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit

		case "j", "down":
			m.viewport.ScrollDown(1)

		case "k", "up":
			m.viewport.ScrollUp(1)

		case "d", "ctrl+d":
			m.viewport.HalfPageDown()

		case "u", "ctrl+u":
			m.viewport.HalfPageUp()

		case "f", "pgdn":
			m.viewport.PageDown()

		case "b", "pgup":
			m.viewport.PageUp()

		case "g", "home":
			m.viewport.GotoTop()

		case "G", "end":
			m.viewport.GotoBottom()

		case "tab":
			if len(m.regions) > 0 {
				m.selected = (m.selected + 1) % len(m.regions)
				m.viewport.SetContent(m.renderDiff())
			}

		case "shift+tab":
			if len(m.regions) > 0 {
				m.selected = (m.selected + len(m.regions) - 1) % len(m.regions)
				m.viewport.SetContent(m.renderDiff())
			}

		case "z":
			if m.engine.ToggleRegion(m.selected) {
				m.regions = m.engine.Regions()
				m.viewport.SetContent(m.renderDiff())
			}

		case "c":
			m.engine.CollapseAll()
			m.regions = m.engine.Regions()
			m.viewport.SetContent(m.renderDiff())

		case "e":
			m.engine.ExpandAll()
			m.regions = m.engine.Regions()
			m.viewport.SetContent(m.renderDiff())

		case "w":
			m.engine = diff.NewEngine(nextWhitespaceMode(m.engine.Options()))
			m.result = nil
			return m, m.computeDiff()
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// nextWhitespaceMode cycles exact -> ignore trailing -> ignore all -> exact.
func nextWhitespaceMode(opts diff.Options) diff.Options {
	switch {
	case opts.IgnoreWhitespace:
		opts.IgnoreWhitespace = false
	case opts.IgnoreTrailingWhitespace:
		opts.IgnoreTrailingWhitespace = false
		opts.IgnoreWhitespace = true
	default:
		opts.IgnoreTrailingWhitespace = true
	}
	return opts
}

func whitespaceModeName(opts diff.Options) string {
	switch {
	case opts.IgnoreWhitespace:
		return "ignore all"
	case opts.IgnoreTrailingWhitespace:
		return "ignore trailing"
	default:
		return "exact"
	}
}

func (m DiffViewerModel) View() string {
	if !m.ready || m.result == nil {
		return "Computing diff..."
	}

	var sections []string

	title := m.styles.Title.Render(fmt.Sprintf("Diff: %s -> %s", m.oldPath, m.newPath))
	sections = append(sections, title)

	stats := fmt.Sprintf("%s | %d unchanged | whitespace: %s",
		m.result.Summary(), m.result.Unchanged, whitespaceModeName(m.engine.Options()))
	sections = append(sections, m.styles.Context.Render(stats))

	sections = append(sections, m.regionStatus())
	sections = append(sections, m.viewport.View())

	help := m.styles.Help.Render("j/k: scroll | d/u: half page | g/G: top/bottom | tab: next region | z: fold | c/e: fold/unfold all | w: whitespace | q: quit")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m DiffViewerModel) regionStatus() string {
	if len(m.regions) == 0 {
		return m.styles.Help.Render("no collapsible regions")
	}
	region := m.regions[m.selected]
	state := "expanded"
	if region.Collapsed {
		state = "collapsed"
	}
	return m.styles.FoldBar.Render(fmt.Sprintf("region %d/%d: %d unchanged lines, %s",
		m.selected+1, len(m.regions), region.LineCount, state))
}

func (m DiffViewerModel) renderDiff() string {
	lines := m.result.Lines()
	if len(lines) == 0 {
		return m.styles.Context.Render("Both files are empty.")
	}

	regionAt := make(map[int]int, len(m.regions))
	for i, region := range m.regions {
		regionAt[region.StartLine] = i
	}

	var sb strings.Builder
	for i := 0; i < len(lines); {
		if ri, ok := regionAt[i]; ok && m.regions[ri].Collapsed {
			sb.WriteString(m.renderFoldBar(ri))
			sb.WriteString("\n")
			i = m.regions[ri].EndLine + 1
			continue
		}
		sb.WriteString(m.renderLine(lines[i]))
		sb.WriteString("\n")
		i++
	}
	return sb.String()
}

func (m DiffViewerModel) renderFoldBar(index int) string {
	region := m.regions[index]
	bar := fmt.Sprintf("... %d unchanged lines ...", region.LineCount)
	if index == m.selected {
		return m.styles.Selected.Render(bar)
	}
	return m.styles.FoldBar.Render(bar)
}

func (m DiffViewerModel) renderLine(line diff.Line) string {
	var gutter string
	var style lipgloss.Style

	switch line.Kind {
	case diff.Added:
		gutter = fmt.Sprintf("     %4d", line.NewLine)
		style = m.styles.Added
	case diff.Removed:
		gutter = fmt.Sprintf("%4d     ", line.OldLine)
		style = m.styles.Removed
	default:
		gutter = fmt.Sprintf("%4d %4d", line.OldLine, line.NewLine)
		style = m.styles.Context
	}

	maxWidth := m.viewport.Width - 12
	if maxWidth < 10 {
		maxWidth = 10
	}
	content := runewidth.Truncate(line.Content, maxWidth, "...")

	// Unchanged lines get syntax colors; changed lines keep the diff
	// colors so additions and removals stay visible.
	if line.Kind == diff.Unchanged && m.highlighter != nil {
		return m.styles.Gutter.Render(gutter) + " " + line.Kind.Prefix() + m.highlighter.Line(content)
	}
	return m.styles.Gutter.Render(gutter) + " " + style.Render(line.Kind.Prefix()+content)
}

// ShowDiff runs the diff viewer until the user exits.
func ShowDiff(cfg config.Config, oldPath, newPath, oldText, newText string) error {
	m := NewDiffViewerModel(cfg, oldPath, newPath, oldText, newText)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
