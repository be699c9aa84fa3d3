package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/poematic/internal/model"
)

// previewChrome is the number of screen rows used around the list.
const previewChrome = 6

type lineItem struct {
	row m.PreviewRow
}

func (i lineItem) FilterValue() string {
	return string(i.row.Display)
}

type previewDelegate struct{}

func (d previewDelegate) Height() int  { return 1 }
func (d previewDelegate) Spacing() int { return 0 }
func (d previewDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d previewDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	li, ok := item.(lineItem)
	if !ok {
		return
	}

	numberStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Width(5).Align(lipgloss.Right)
	countStyle := mutedStyle.Width(7).Align(lipgloss.Center)
	textStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	if index == lm.Index() {
		selected := lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")).Bold(true)
		numberStyle = numberStyle.Inherit(selected)
		countStyle = countStyle.Inherit(selected)
		textStyle = selected
	}

	_, _ = fmt.Fprint(w, renderPreviewRow(li.row, lm.Width(), numberStyle, countStyle, textStyle))
}

func renderPreviewRow(row m.PreviewRow, width int, numberStyle, countStyle, textStyle lipgloss.Style) string {
	counts := fmt.Sprintf("%d/%d", row.Hidden, row.Eligible)

	return fmt.Sprintf("%s  %s  %s",
		numberStyle.Render(fmt.Sprintf("%d", row.Number)),
		countStyle.Render(counts),
		textStyle.Render(truncateToWidth(string(row.Display), width-16)),
	)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return text
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// previewModel pages through corpus lines that do not fit on one screen.
type previewModel struct {
	rows     []m.PreviewRow
	lines    list.Model
	width    int
	height   int
	words    int
	eligible int
}

func newPreviewModel(rows []m.PreviewRow) previewModel {
	items := make([]list.Item, 0, len(rows))
	words, eligible := 0, 0

	for _, row := range rows {
		items = append(items, lineItem{row: row})
		words += row.Words
		eligible += row.Eligible
	}

	lines := list.New(items, previewDelegate{}, 80, 20)
	lines.SetShowPagination(false)
	lines.SetShowFilter(true)
	lines.SetShowHelp(false)
	lines.SetShowTitle(false)
	lines.SetShowStatusBar(false)
	lines.FilterInput.Placeholder = "Filter lines…"

	return previewModel{
		rows:     rows,
		lines:    lines,
		words:    words,
		eligible: eligible,
	}
}

func (pm previewModel) needsPagination() bool {
	return pm.height > 0 && len(pm.rows)+previewChrome > pm.height
}

func (pm previewModel) Init() tea.Cmd {
	return nil
}

func (pm previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.width = msg.Width
		pm.height = msg.Height
		pm.lines.SetSize(max(pm.width-2, 10), max(pm.height-previewChrome, 3))

		return pm, nil

	case tea.KeyMsg:
		if pm.lines.FilterState() != list.Filtering {
			switch msg.String() {
			case "q", "esc", "ctrl+c":
				return pm, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	pm.lines, cmd = pm.lines.Update(msg)

	return pm, cmd
}

func (pm previewModel) View() string {
	footerStyle := mutedStyle.Align(lipgloss.Center).Width(pm.width)

	return lipgloss.JoinVertical(lipgloss.Left,
		pm.title(),
		pm.columns(),
		pm.lines.View(),
		footerStyle.Render("↑/k up • ↓/j down • / filter • q quit"),
	)
}

// staticView renders every row at once, for output that fits the screen or is not a terminal.
func (pm previewModel) staticView() string {
	if len(pm.rows) == 0 {
		return "No lines found\n"
	}

	var b strings.Builder

	b.WriteString(pm.title())
	b.WriteString("\n")
	b.WriteString(pm.columns())
	b.WriteString("\n")

	numberStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Width(5).Align(lipgloss.Right)
	countStyle := mutedStyle.Width(7).Align(lipgloss.Center)
	textStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	for _, row := range pm.rows {
		b.WriteString(renderPreviewRow(row, pm.width, numberStyle, countStyle, textStyle))
		b.WriteString("\n")
	}

	return b.String()
}

func (pm previewModel) title() string {
	return headerStyle.Render(fmt.Sprintf("Corpus: %d lines, %d words, %d to hide", len(pm.rows), pm.words, pm.eligible))
}

func (pm previewModel) columns() string {
	return mutedStyle.Render(fmt.Sprintf("%5s  %7s  %s", "#", "Hidden", "Line"))
}
