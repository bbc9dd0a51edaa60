// Package tui is an interactive level picker: toggle canonical levels,
// preview the resulting value ramp live, then apply to the staged files.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/okaneco/posterust/internal/domain"
)

type screen int

const (
	screenPicker screen = iota
	screenPresets
)

// Result is what the picker hands back to the CLI when the program exits.
type Result struct {
	Selection domain.Selection
	Colors    domain.ColorTable
	Apply     bool
}

type presetItem struct {
	preset domain.Preset
}

func (p presetItem) Title() string { return p.preset.Name }
func (p presetItem) Description() string {
	if p.preset.Split > 0 {
		return fmt.Sprintf("even split, %d steps", p.preset.Split)
	}
	desc := fmt.Sprintf("levels %v", p.preset.Levels)
	if p.preset.Keep {
		desc += ", keep"
	}
	if len(p.preset.Colors) > 0 {
		desc += fmt.Sprintf(", %d colors", len(p.preset.Colors))
	}
	return desc
}
func (p presetItem) FilterValue() string { return p.preset.Name }

type model struct {
	theme Theme
	deps  Deps

	scr     screen
	presets list.Model

	selected [domain.GridSteps]bool
	keep     bool
	colors   domain.ColorTable
	errMsg   string

	result Result
}

// Run blocks until the user applies or quits, and returns the final choice.
func Run(deps Deps) (Result, error) {
	p := tea.NewProgram(newModel(deps), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return Result{}, err
	}
	m, ok := final.(model)
	if !ok {
		return Result{}, fmt.Errorf("tui: unexpected final model %T", final)
	}
	return m.result, nil
}

func newModel(deps Deps) model {
	items := make([]list.Item, 0, len(deps.Presets))
	for _, p := range deps.Presets {
		items = append(items, presetItem{preset: p})
	}
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Presets"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	m := model{
		theme:   DefaultTheme(),
		deps:    deps,
		scr:     screenPicker,
		presets: l,
	}
	for i := range m.selected {
		m.selected[i] = true
	}
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.presets.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case tea.KeyMsg:
		if m.scr == screenPresets {
			return m.updatePresets(msg)
		}
		return m.updatePicker(msg)
	}

	return m, nil
}

func (m model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "k":
		m.keep = !m.keep
		m.errMsg = ""
		return m, nil

	case "p":
		if len(m.deps.Presets) > 0 {
			m.scr = screenPresets
		}
		return m, nil

	case "enter":
		sel, err := m.selection()
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		if err := domain.ValidateColors(sel, m.colors); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.result = Result{Selection: sel, Colors: m.colors, Apply: true}
		return m, tea.Quit
	}

	if lvl, ok := levelForKey(key); ok {
		m.selected[lvl] = !m.selected[lvl]
		// Toggling levels invalidates preset colors of a different size.
		if len(m.colors) > 0 && len(m.colors) != m.levelCount() {
			m.colors = nil
		}
		m.errMsg = ""
	}
	return m, nil
}

func (m model) updatePresets(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc", "b", "q":
		m.scr = screenPicker
		return m, nil

	case "enter":
		it, ok := m.presets.SelectedItem().(presetItem)
		if !ok {
			return m, nil
		}
		sel, colors, err := it.preset.Resolve()
		if err != nil {
			m.errMsg = err.Error()
			m.scr = screenPicker
			return m, nil
		}
		for i := range m.selected {
			m.selected[i] = false
		}
		if sel.Mode == domain.ModeEvenSplit {
			// An even-split preset has no level toggles; approximate it
			// with the matching explicit grid so the picker stays editable.
			for i := 0; i < sel.Split; i++ {
				m.selected[i*domain.MaxLevel/(sel.Split-1)] = true
			}
		} else {
			for _, lvl := range sel.Levels {
				m.selected[lvl] = true
			}
		}
		m.keep = sel.Keep
		m.colors = colors
		m.errMsg = ""
		m.scr = screenPicker
		return m, nil
	}

	var cmd tea.Cmd
	m.presets, cmd = m.presets.Update(msg)
	return m, cmd
}

func (m model) levelCount() int {
	n := 0
	for _, on := range m.selected {
		if on {
			n++
		}
	}
	return n
}

func (m model) selection() (domain.Selection, error) {
	levels := make([]int, 0, domain.GridSteps)
	for lvl, on := range m.selected {
		if on {
			levels = append(levels, lvl)
		}
	}
	if len(levels) == 0 {
		return domain.Selection{}, fmt.Errorf("select at least one level")
	}
	set, err := domain.NewLevelSet(levels)
	if err != nil {
		return domain.Selection{}, err
	}
	return domain.Selection{Mode: domain.ModeExplicit, Levels: set, Keep: m.keep}, nil
}

// levelForKey maps digit keys to levels 0-9 and "a" to level 10.
func levelForKey(key string) (int, bool) {
	if key == "a" {
		return domain.MaxLevel, true
	}
	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		return int(key[0] - '0'), true
	}
	return 0, false
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("posterust") + "\n" +
		m.theme.Subtitle.Render(fmt.Sprintf("%d file(s) staged", len(m.deps.Files))) + "\n"

	if m.scr == screenPresets {
		help := m.theme.Help.Render("↑/↓ navigate • enter load • esc back")
		return wrap.Render(header + "\n" + m.theme.Card.Render(m.presets.View()) + "\n" + help)
	}

	var rows []string
	rows = append(rows, m.viewToggles())
	if sel, err := m.selection(); err == nil {
		rows = append(rows, "", m.viewRamp(sel))
	}
	if m.errMsg != "" {
		rows = append(rows, "", m.theme.Warning.Render(m.errMsg))
	}

	keepState := "off"
	if m.keep {
		keepState = "on"
	}
	help := m.theme.Help.Render(fmt.Sprintf(
		"0-9/a toggle level • k keep (%s) • p presets • enter apply • q quit", keepState))

	card := m.theme.Card.Render(strings.Join(rows, "\n"))
	return wrap.Render(header + "\n" + card + "\n" + help)
}

func (m model) viewToggles() string {
	var b strings.Builder
	for lvl, on := range m.selected {
		if lvl > 0 {
			b.WriteString(" ")
		}
		label := fmt.Sprintf("%2d", lvl)
		if on {
			b.WriteString(m.theme.Active.Render(label))
		} else {
			b.WriteString(m.theme.Inactive.Render(label))
		}
	}
	return b.String()
}

func (m model) viewRamp(sel domain.Selection) string {
	stops, err := domain.Stops(sel, m.colors)
	if err != nil {
		return m.theme.Warning.Render(err.Error())
	}
	var b strings.Builder
	for i, s := range stops {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(lipgloss.NewStyle().
			Background(lipgloss.Color(s.Color.Hex())).
			Render("    "))
		b.WriteString(fmt.Sprintf(" %d", s.Boundary))
	}
	return b.String()
}
