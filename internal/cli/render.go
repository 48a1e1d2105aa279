package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/ghinfo/pkg/ghrepo"
)

var cardBorderStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorDim).
	Padding(0, 2)

// renderCard renders a single repository as a bordered detail card.
func renderCard(info *ghrepo.RepoInfo) string {
	var b strings.Builder

	title := StyleTitle.Render(info.FullName)
	if info.IsArchived {
		title += " " + StyleWarning.Render("[archived]")
	}
	if info.IsFork {
		title += " " + StyleDim.Render("[fork]")
	}
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(StyleLink.Render(info.URL))
	b.WriteString("\n\n")

	if info.Description != "" {
		b.WriteString(StyleValue.Render(info.Description))
		b.WriteString("\n\n")
	}

	rows := []struct{ label, value string }{
		{"Owner", fmt.Sprintf("%s (%s)", info.Owner.Name, info.Owner.Kind)},
		{"Stars", formatCount(info.Stargazers)},
		{"Watchers", formatCount(info.Subscribers)},
		{"Forks", formatCount(info.Forks)},
		{"Open issues", formatCount(info.OpenIssues)},
		{"Branch", info.DefaultBranch},
		{"Language", info.Language},
		{"License", info.License.Name},
	}
	if info.Homepage != "" {
		rows = append(rows, struct{ label, value string }{"Homepage", info.Homepage})
	}
	if len(info.Topics) > 0 {
		rows = append(rows, struct{ label, value string }{"Topics", strings.Join(info.Topics, ", ")})
	}

	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%s  %s\n",
			StyleDim.Render(fmt.Sprintf("%-12s", row.label)),
			StyleValue.Render(row.value)))
	}

	return cardBorderStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// renderTable renders multi-repository results as a summary table.
// Failed fetches get a dimmed error row.
func renderTable(results []fetchResult) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, 0, len(results))
	for _, res := range results {
		if res.Err != nil {
			rows = append(rows, []string{res.Ref.String(), "—", "—", "—", "—", "fetch failed"})
			continue
		}
		info := res.Info
		license := info.License.Key
		if info.IsArchived {
			license += " (archived)"
		}
		rows = append(rows, []string{
			info.FullName,
			formatCount(info.Stargazers),
			formatCount(info.Forks),
			formatCount(info.OpenIssues),
			info.Language,
			license,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Repository", "Stars", "Forks", "Issues", "Language", "License").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row < len(results) && results[row].Err != nil {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	return t.Render()
}

// printJSON writes one value as indented JSON to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// resultJSON is the machine-readable shape for multi-repository output.
type resultJSON struct {
	Repository string           `json:"repository"`
	Info       *ghrepo.RepoInfo `json:"info,omitempty"`
	Error      string           `json:"error,omitempty"`
}

func printResultsJSON(results []fetchResult) error {
	out := make([]resultJSON, 0, len(results))
	for _, res := range results {
		entry := resultJSON{Repository: res.Ref.String(), Info: res.Info}
		if res.Err != nil {
			entry.Error = res.Err.Error()
		}
		out = append(out, entry)
	}
	return printJSON(out)
}

// formatCount renders n with thousands separators ("82127" -> "82,127").
func formatCount(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
