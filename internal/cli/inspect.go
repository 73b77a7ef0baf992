package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	pkgio "github.com/m0370/pedigree-drawer/pkg/io"
	"github.com/m0370/pedigree-drawer/pkg/pedigree"
	"github.com/m0370/pedigree-drawer/pkg/pedigree/transform"
)

// inspectCommand creates the inspect command for browsing records in the
// terminal.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [record.json]",
		Short: "Browse a record's individuals and relationships interactively",
		Long: `Browse a record's individuals and relationships interactively.

The record is normalized first, so the browser shows the same canonical view
the renderer works from: display-ready ages, resolved status tags, and
1-based generation numbers.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0])
		},
	}
}

// runInspect loads the record and starts the terminal browser.
func (c *CLI) runInspect(ctx context.Context, input string) error {
	rec, _, err := pkgio.ImportRecord(input, pedigree.Limits{})
	if err != nil {
		return err
	}
	gens, err := transform.AssignGenerations(rec)
	if err != nil {
		return err
	}

	p := tea.NewProgram(newInspectModel(rec, gens), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("inspect: %w", err)
	}
	return nil
}

// Browser tabs.
const (
	tabIndividuals = iota
	tabRelationships
	tabCount
)

// inspectModel is the bubbletea model for the record browser. It shows one
// table per tab and windows long tables with Offset/Height.
type inspectModel struct {
	rec  *pedigree.Record
	gens map[string]int

	tab    int
	cursor int
	offset int
	height int
}

// newInspectModel creates a browser model positioned at the first individual.
func newInspectModel(rec *pedigree.Record, gens map[string]int) inspectModel {
	return inspectModel{
		rec:    rec,
		gens:   gens,
		height: 15,
	}
}

func (m inspectModel) Init() tea.Cmd {
	return nil
}

// rowCount returns the number of rows on the active tab.
func (m inspectModel) rowCount() int {
	if m.tab == tabIndividuals {
		return len(m.rec.Individuals)
	}
	return len(m.rec.Relationships)
}

func (m inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "right", "l":
			m.tab = (m.tab + 1) % tabCount
			m.cursor = 0
			m.offset = 0
		case "shift+tab", "left", "h":
			m.tab = (m.tab + tabCount - 1) % tabCount
			m.cursor = 0
			m.offset = 0
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < m.rowCount()-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 8
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m inspectModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Record Browser"))
	b.WriteString("  ")
	b.WriteString(m.tabLine())
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ navigate  tab switch  q quit"))
	b.WriteString("\n\n")

	if m.tab == tabIndividuals {
		b.WriteString(m.individualsTable())
	} else {
		b.WriteString(m.relationshipsTable())
	}

	total := m.rowCount()
	pos := 0
	if total > 0 {
		pos = m.cursor + 1
	}
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d]", pos, total)))

	return b.String()
}

// tabLine renders the tab names with the active one highlighted.
func (m inspectModel) tabLine() string {
	names := []string{"Individuals", "Relationships"}
	parts := make([]string, len(names))
	for i, name := range names {
		if i == m.tab {
			parts[i] = StyleHighlight.Render(name)
		} else {
			parts[i] = StyleDim.Render(name)
		}
	}
	return strings.Join(parts, StyleDim.Render(" | "))
}

// window returns the first and one-past-last row indices of the visible
// slice of the active tab.
func (m inspectModel) window() (int, int) {
	end := m.offset + m.height
	if end > m.rowCount() {
		end = m.rowCount()
	}
	return m.offset, end
}

func (m inspectModel) individualsTable() string {
	start, end := m.window()

	rows := [][]string{}
	for i := start; i < end; i++ {
		in := m.rec.Individuals[i]

		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}

		rows = append(rows, []string{
			cursor,
			in.ID,
			strconv.Itoa(m.gens[in.ID]),
			in.Gender.String(),
			in.Age,
			statusText(in),
			diagnosisText(in),
		})
	}

	return m.renderTable([]string{"", "ID", "Gen", "Gender", "Age", "Status", "Diagnoses"}, rows)
}

func (m inspectModel) relationshipsTable() string {
	start, end := m.window()

	rows := [][]string{}
	for i := start; i < end; i++ {
		rel := m.rec.Relationships[i]

		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}

		rows = append(rows, []string{
			cursor,
			rel.Type.String(),
			strings.Join(rel.Partners, " + "),
			childrenText(rel),
		})
	}

	return m.renderTable([]string{"", "Type", "Partners", "Children / Siblings"}, rows)
}

// renderTable draws one windowed table with the cursor row highlighted.
func (m inspectModel) renderTable(headers []string, rows [][]string) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.offset+row == m.cursor {
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			return StyleValue
		})

	return t.Render()
}

// statusText joins an individual's status tags for table display.
func statusText(in *pedigree.Individual) string {
	tags := in.Statuses.Slice()
	if len(tags) == 0 {
		return "—"
	}
	parts := make([]string, len(tags))
	for i, tag := range tags {
		parts[i] = tag.String()
	}
	return strings.Join(parts, ", ")
}

// diagnosisText joins an individual's diagnoses for table display, each with
// its age at diagnosis when known.
func diagnosisText(in *pedigree.Individual) string {
	if len(in.Diagnoses) == 0 {
		return "—"
	}
	parts := make([]string, len(in.Diagnoses))
	for i, dx := range in.Diagnoses {
		if dx.Age != "" {
			parts[i] = fmt.Sprintf("%s (%s)", dx.Condition, dx.Age)
		} else {
			parts[i] = dx.Condition
		}
	}
	return strings.Join(parts, ", ")
}

// childrenText renders the child list of a family or the member list of a
// sibling group.
func childrenText(rel pedigree.Relationship) string {
	if !rel.IsFamily() {
		return strings.Join(rel.Siblings, ", ")
	}
	if len(rel.Children) == 0 {
		return "—"
	}
	parts := make([]string, len(rel.Children))
	for i, ch := range rel.Children {
		if ch.Adopted {
			parts[i] = ch.ID + " (adopted)"
		} else {
			parts[i] = ch.ID
		}
	}
	return strings.Join(parts, ", ")
}
