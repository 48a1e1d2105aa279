package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// ResultListModel is the bubbletea model for browsing fetched repositories.
// The list view shows a summary table; enter opens the detail card for the
// highlighted repository, esc returns to the list.
type ResultListModel struct {
	Results []fetchResult
	Cursor  int
	Detail  bool
}

// NewResultListModel creates a new result browser model.
func NewResultListModel(results []fetchResult) ResultListModel {
	return ResultListModel{Results: results}
}

func (m ResultListModel) Init() tea.Cmd {
	return nil
}

func (m ResultListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.Detail {
				m.Detail = false
				return m, nil
			}
			return m, tea.Quit
		case "up", "k":
			if !m.Detail && m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if !m.Detail && m.Cursor < len(m.Results)-1 {
				m.Cursor++
			}
		case "enter":
			if m.Results[m.Cursor].Err == nil {
				m.Detail = true
			}
		}
	}
	return m, nil
}

func (m ResultListModel) View() string {
	if m.Detail {
		return m.detailView()
	}
	return m.listView()
}

func (m ResultListModel) listView() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Repositories"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ details  q quit"))
	b.WriteString("\n\n")

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, 0, len(m.Results))
	for i, res := range m.Results {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		if res.Err != nil {
			rows = append(rows, []string{cursor, res.Ref.String(), "—", "—", "fetch failed"})
			continue
		}
		rows = append(rows, []string{
			cursor,
			res.Info.FullName,
			formatCount(res.Info.Stargazers),
			formatCount(res.Info.Forks),
			res.Info.Language,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Repository", "Stars", "Forks", "Language").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row >= len(m.Results) {
				return lipgloss.NewStyle()
			}
			res := m.Results[row]
			isCurrent := row == m.Cursor

			base := lipgloss.NewStyle()
			switch {
			case res.Err != nil:
				return base.Foreground(colorDim)
			case isCurrent:
				return base.Foreground(colorCyan).Bold(true)
			}
			return base.Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Results))))

	return b.String()
}

func (m ResultListModel) detailView() string {
	var b strings.Builder

	b.WriteString(renderCard(m.Results[m.Cursor].Info))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("esc back  q quit"))

	return b.String()
}
