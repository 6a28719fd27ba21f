package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"

	"contrastguard/internal/color"
	"contrastguard/internal/guard"
	"contrastguard/internal/theme"
)

const swatchWidth = 16

func (m *App) View() string {
	tokens := m.scope.Snapshot()
	st := newStyles(tokens)
	body := m.renderBody(st, tokens)
	if !m.showHelp {
		return body
	}
	help := m.renderHelp(st)
	if m.width <= 0 || m.height <= 0 {
		return help
	}
	canvas := NewCanvas(m.width, m.height)
	canvas.DrawStringAt(0, 0, body)
	canvas.CenterOverlay(help)
	return canvas.Render()
}

func (m *App) renderBody(st styles, tokens guard.Tokens) string {
	lines := []string{m.renderHeader(st), ""}
	for _, rule := range m.guard.Rules() {
		lines = append(lines, m.renderRule(st, rule, tokens))
	}
	lines = append(lines, "", m.renderSummary(st))
	if m.status != "" {
		lines = append(lines, st.status.Render(m.status))
	}
	lines = append(lines, m.renderFooter(st))

	if m.width > 0 {
		for i, line := range lines {
			lines[i] = ansi.Truncate(line, m.width, "…")
		}
	}
	return strings.Join(lines, "\n")
}

func (m *App) renderHeader(st styles) string {
	title := "contrastguard"
	if m.version != "" {
		title += " " + m.version
	}
	info := fmt.Sprintf("palette: %s  mode: %s (%s)", m.themeName, m.mode, theme.VariantName(m.dark))
	return st.header.Render(title) + "  " + st.muted.Render(info)
}

// renderRule shows one rule as a swatch plus its contrast before and after
// guarding.
func (m *App) renderRule(st styles, rule guard.Rule, tokens guard.Tokens) string {
	fgValue := tokens[rule.Foreground]
	bgValue := tokens[rule.Background]
	sample := swatch(fgValue, bgValue, "Aa "+rule.Foreground, swatchWidth)
	name := st.label.Render(fmt.Sprintf("%-24s", rule.String()))
	return sample + "  " + name + " " + m.ratioText(st, rule, tokens)
}

func (m *App) ratioText(st styles, rule guard.Rule, tokens guard.Tokens) string {
	before, errBefore := pairRatio(m.base[rule.Foreground], m.base[rule.Background])
	after, errAfter := pairRatio(tokens[rule.Foreground], tokens[rule.Background])
	if errBefore != nil || errAfter != nil {
		return st.muted.Render("unsupported value, skipped")
	}
	text := fmt.Sprintf("%5.2f -> %5.2f", before, after)
	if after >= rule.MinRatio {
		return st.good.Render(text + " ok")
	}
	return st.bad.Render(text + " below target")
}

func pairRatio(fg, bg string) (float64, error) {
	fgColor, err := color.Parse(fg)
	if err != nil {
		return 0, err
	}
	bgColor, err := color.Parse(bg)
	if err != nil {
		return 0, err
	}
	return color.ContrastRatio(fgColor, bgColor), nil
}

func (m *App) renderSummary(st styles) string {
	r := m.lastReport
	return st.muted.Render(fmt.Sprintf("pass %d: %d applied, %d unchanged, %d skipped, %d failed",
		m.passes,
		r.Count(guard.StatusApplied),
		r.Count(guard.StatusUnchanged),
		r.Count(guard.StatusSkipped),
		r.Count(guard.StatusFailed)))
}

func (m *App) renderFooter(st styles) string {
	hints := []string{"t palette", "m mode", "y copy css", "? help", "q quit"}
	return st.muted.Render(strings.Join(hints, " · "))
}

// renderHelp creates the help modal.
func (m *App) renderHelp(st styles) string {
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return st.helpKey.Width(8)
			}
			return st.label
		}).
		Rows(helpRows(m.keys)...)

	content := lipgloss.JoinVertical(lipgloss.Left,
		st.header.Render("CONTRASTGUARD HELP"),
		strings.TrimPrefix(t.String(), "\n"),
		st.muted.Render("Press ? or Esc to close"),
	)
	return st.helpBox.Render(content)
}
