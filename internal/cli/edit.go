package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rackworks/rackplan/pkg/layout"
	"github.com/rackworks/rackplan/pkg/params"
)

// List styles
var (
	editSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	editNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	editDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// editCommand creates the edit command for interactive parameter editing.
func (c *CLI) editCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit [params.toml]",
		Short: "Interactively edit parameters with live re-resolution",
		Long: `Interactively edit parameters with live re-resolution.

The edit command opens a terminal UI over the parameter file. Every change
immediately re-runs constraint propagation, so the footer always shows the
resolved frame height and how many values the solver had to clamp. Changes
are written back to the file on save.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := params.Load(args[0])
			if err != nil {
				return fmt.Errorf("load params %s: %w", args[0], err)
			}

			model := newEditModel(args[0], a)
			final, err := tea.NewProgram(model).Run()
			if err != nil {
				return fmt.Errorf("edit: %w", err)
			}

			if m, ok := final.(EditModel); ok && m.Saved {
				printSuccess("Saved %s", args[0])
				printNextStep("Build", "rackplan build "+args[0])
			}
			return nil
		},
	}
}

// editField is one adjustable row in the editor.
type editField struct {
	label string
	unit  string
	step  float64
	min   float64
	get   func() float64
	set   func(float64)
}

// EditModel is the bubbletea model for interactive parameter editing.
type EditModel struct {
	Path   string
	Agg    *params.Aggregate
	Saved  bool
	Err    error
	cursor int
	fields []editField

	// Derived summary, refreshed after every change.
	totalHeight float64
	clamps      int
}

// newEditModel creates an editor over the given aggregate.
func newEditModel(path string, a *params.Aggregate) EditModel {
	a.Normalize()
	m := EditModel{Path: path, Agg: a}
	m.rebuildFields()
	m.refresh()
	return m
}

// rebuildFields regenerates the field list. Called when the tier count
// changes, since each tier contributes its own height row.
func (m *EditModel) rebuildFields() {
	a := m.Agg
	m.fields = []editField{
		{label: "corridor width", unit: "ft", step: 0.5, min: 0, get: func() float64 { return a.Corridor.Width }, set: func(v float64) { a.Corridor.Width = v }},
		{label: "corridor height", unit: "ft", step: 0.5, min: 0, get: func() float64 { return a.Corridor.Height }, set: func(v float64) { a.Corridor.Height = v }},
		{label: "ceiling height", unit: "ft", step: 0.5, min: 0, get: func() float64 { return a.Corridor.CeilingHeight }, set: func(v float64) { a.Corridor.CeilingHeight = v }},
		{label: "bay count", unit: "", step: 1, min: 1, get: func() float64 { return float64(a.Rack.BayCount) }, set: func(v float64) { a.Rack.BayCount = int(v) }},
		{label: "bay width", unit: "ft", step: 0.5, min: 0.1, get: func() float64 { return a.Rack.BayWidth }, set: func(v float64) { a.Rack.BayWidth = v }},
		{label: "depth", unit: "ft", step: 0.5, min: 0.1, get: func() float64 { return a.Rack.Depth }, set: func(v float64) { a.Rack.Depth = v }},
		{label: "post size", unit: "in", step: 0.5, min: 0.5, get: func() float64 { return a.Rack.PostSize }, set: func(v float64) { a.Rack.PostSize = v }},
		{label: "beam size", unit: "in", step: 0.5, min: 0.5, get: func() float64 { return a.Rack.BeamSize }, set: func(v float64) { a.Rack.BeamSize = v }},
		{label: "top clearance", unit: "ft", step: 0.5, min: 0, get: func() float64 { return a.Rack.TopClearance }, set: func(v float64) { a.Rack.TopClearance = v }},
		{label: "tier count", unit: "", step: 1, min: 0, get: func() float64 { return float64(a.TierCount) }, set: func(v float64) { a.TierCount = int(v); a.Resize(int(v)) }},
	}
	for i := range a.Tiers {
		i := i
		m.fields = append(m.fields, editField{
			label: fmt.Sprintf("tier[%d] height", i+1),
			unit:  "ft", step: 0.25, min: 0,
			get: func() float64 { return a.Tiers[i].Height },
			set: func(v float64) { a.Tiers[i].Height = v },
		})
	}
}

// refresh re-propagates a working copy and updates the summary.
// Editing works on raw values; the clamped copy is discarded so
// the user sees what the solver would change without losing input.
func (m *EditModel) refresh() {
	work := m.Agg.Clone()
	rep := layout.Propagate(work)
	m.totalHeight = rep.Levels.TotalHeight
	m.clamps = len(rep.Warnings) + len(rep.Suppressed)
}

func (m EditModel) Init() tea.Cmd {
	return nil
}

func (m EditModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.fields)-1 {
			m.cursor++
		}
	case "left", "h":
		m.adjust(-1)
	case "right", "l":
		m.adjust(+1)
	case "s":
		if err := params.Save(m.Agg, m.Path); err != nil {
			m.Err = err
			return m, nil
		}
		m.Saved = true
		return m, tea.Quit
	}
	return m, nil
}

// adjust moves the selected field by dir steps, clamped at the field minimum.
func (m *EditModel) adjust(dir float64) {
	f := m.fields[m.cursor]
	v := f.get() + dir*f.step
	if v < f.min {
		v = f.min
	}
	f.set(v)

	// Tier count changes add or remove height rows.
	m.rebuildFields()
	if m.cursor >= len(m.fields) {
		m.cursor = len(m.fields) - 1
	}
	m.refresh()
}

func (m EditModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Edit " + m.Path))
	b.WriteString("\n")
	b.WriteString(editDimStyle.Render("↑/↓ select  ←/→ adjust  s save  q quit"))
	b.WriteString("\n\n")

	for i, f := range m.fields {
		cursor := "  "
		style := editNormalStyle
		if i == m.cursor {
			cursor = "▸ "
			style = editSelectedStyle
		}

		value := fmt.Sprintf("%.2f", f.get())
		if f.step == 1 {
			value = fmt.Sprintf("%d", int(f.get()))
		}
		if f.unit != "" {
			value += " " + f.unit
		}

		b.WriteString(cursor + style.Render(fmt.Sprintf("%-18s %s", f.label, value)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	summary := fmt.Sprintf("frame height %.3fm", m.totalHeight)
	if m.clamps > 0 {
		summary += StyleWarning.Render(fmt.Sprintf("  %d clamps", m.clamps))
	}
	b.WriteString(editDimStyle.Render(summary))
	b.WriteString("\n")

	if m.Err != nil {
		b.WriteString(styleIconError.Render(iconError) + " " + m.Err.Error() + "\n")
	}

	return b.String()
}
