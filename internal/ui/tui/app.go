package tui

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/blanc86/PDF-Merger/internal/domain"
)

type screen int

const (
	screenPicker screen = iota
	screenMerging
	screenResult
)

type pickItem struct {
	doc   domain.SourceDocument
	order int // 1-based position in the merge set; 0 = unselected
}

func (it pickItem) Title() string {
	base := filepath.Base(it.doc.Path)
	switch {
	case it.doc.Invalid:
		return base + "  (unreadable)"
	case it.order > 0:
		return fmt.Sprintf("[%d] %s", it.order, base)
	default:
		return base
	}
}

func (it pickItem) Description() string {
	if it.doc.Invalid {
		return "cannot be merged"
	}
	return fmt.Sprintf("%d page(s), %d bytes", it.doc.Pages, it.doc.SizeBytes)
}

func (it pickItem) FilterValue() string { return filepath.Base(it.doc.Path) }

type model struct {
	theme Theme
	deps  Deps

	scr   screen
	files list.Model

	// selected holds input paths in the order they were picked; that
	// order becomes the merge order.
	selected []string

	report   domain.MergeReport
	reportID string
	err      error
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "pdfmerge"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return model{
		theme: DefaultTheme(),
		deps:  deps,
		scr:   screenPicker,
		files: l,
	}
}

func (m model) Init() tea.Cmd { return cmdScanInputs(m.deps) }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.files.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case scanDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			m.scr = screenResult
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.docs))
		for _, d := range msg.docs {
			items = append(items, pickItem{doc: d})
		}
		m.selected = nil
		m.files.SetItems(items)
		return m, nil

	case mergeDoneMsg:
		m.report = msg.report
		m.reportID = msg.reportID
		m.err = msg.err
		m.scr = screenResult
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.scr != screenMerging && !m.files.SettingFilter() {
				return m, tea.Quit
			}

		case " ":
			if m.scr == screenPicker {
				m = m.toggleSelected()
				return m, nil
			}

		case "enter":
			if m.scr == screenPicker && len(m.selected) > 0 {
				m.scr = screenMerging
				return m, cmdMerge(m.deps, m.selected)
			}

		case "r":
			if m.scr == screenPicker && !m.files.SettingFilter() {
				return m, cmdScanInputs(m.deps)
			}

		case "esc", "b":
			if m.scr == screenResult {
				m.scr = screenPicker
				m.err = nil
				return m, cmdScanInputs(m.deps)
			}
		}
	}

	if m.scr == screenPicker {
		var cmd tea.Cmd
		m.files, cmd = m.files.Update(msg)
		return m, cmd
	}
	return m, nil
}

// toggleSelected adds the highlighted file to the merge set, or removes
// it and renumbers the rest.
func (m model) toggleSelected() model {
	it, ok := m.files.SelectedItem().(pickItem)
	if !ok || it.doc.Invalid {
		return m
	}

	if it.order > 0 {
		kept := make([]string, 0, len(m.selected)-1)
		for _, p := range m.selected {
			if p != it.doc.Path {
				kept = append(kept, p)
			}
		}
		m.selected = kept
	} else {
		m.selected = append(m.selected, it.doc.Path)
	}

	order := make(map[string]int, len(m.selected))
	for i, p := range m.selected {
		order[p] = i + 1
	}
	for i, li := range m.files.Items() {
		pi, ok := li.(pickItem)
		if !ok {
			continue
		}
		pi.order = order[pi.doc.Path]
		m.files.SetItem(i, pi)
	}

	return m
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("pdfmerge") + "\n" +
		m.theme.Subtitle.Render("Pick files in merge order. space: select, enter: merge, r: rescan, q: quit") + "\n"

	switch m.scr {
	case screenMerging:
		return wrap.Render(header + "\n" + m.theme.Card.Render(
			fmt.Sprintf("Merging %d file(s)…", len(m.selected)),
		))

	case screenResult:
		if m.err != nil {
			return wrap.Render(header + "\n" + m.theme.Card.Render(
				m.theme.Error.Render("Merge failed")+"\n\n"+m.err.Error(),
			) + "\n" + m.theme.Help.Render("esc: back"))
		}

		body := fmt.Sprintf(
			"Merged %d file(s), %d page(s)\n\nOutput: %s",
			m.report.TotalFiles, m.report.TotalPages, m.report.Output,
		)
		if m.reportID != "" {
			body += fmt.Sprintf("\nReport: %s", m.reportID)
		}
		return wrap.Render(header + "\n" + m.theme.Card.Render(
			m.theme.Selected.Render("✓ Done")+"\n\n"+body,
		) + "\n" + m.theme.Help.Render("esc: back, q: quit"))

	default:
		sel := m.theme.Help.Render(fmt.Sprintf("Selected: %d", len(m.selected)))
		return wrap.Render(header + "\n" + m.files.View() + "\n" + sel)
	}
}
