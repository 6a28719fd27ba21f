// Package report renders the outcome of guard passes over the registered
// palettes as markdown.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"

	apperrors "contrastguard/internal/errors"
	"contrastguard/internal/guard"
	"contrastguard/internal/history"
	"contrastguard/internal/theme"
)

// Section is one palette variant after a guard pass.
type Section struct {
	Theme   string
	Dark    bool
	Tokens  guard.Tokens
	Results []guard.RuleResult
}

// Variant returns "dark" or "light".
func (s Section) Variant() string {
	return theme.VariantName(s.Dark)
}

// Document is a full contrast report.
type Document struct {
	Sections []Section
}

// Build runs the default rules over every requested palette variant.
func Build(themes []string, variants []bool) (Document, error) {
	rules := guard.DefaultRules()
	doc := Document{}
	for _, name := range themes {
		t, ok := theme.Lookup(name)
		if !ok {
			return Document{}, apperrors.New(apperrors.CodeConfigurationError, fmt.Sprintf("unknown theme %q", name), nil)
		}
		for _, dark := range variants {
			tokens, rep := guard.Apply(theme.Tokens(t, dark), rules)
			doc.Sections = append(doc.Sections, Section{
				Theme:   name,
				Dark:    dark,
				Tokens:  tokens,
				Results: rep.Results,
			})
		}
	}
	return doc, nil
}

// Markdown emits one table per section.
func (d Document) Markdown() string {
	var b strings.Builder
	b.WriteString("# Contrast report\n")
	for _, s := range d.Sections {
		fmt.Fprintf(&b, "\n## %s (%s)\n\n", s.Theme, s.Variant())
		rep := guard.Report{Results: s.Results}
		missed := 0
		for _, res := range s.Results {
			if res.Status == guard.StatusApplied && !res.Met {
				missed++
			}
		}
		fmt.Fprintf(&b, "%d applied, %d skipped, %d below target\n\n",
			rep.Count(guard.StatusApplied), rep.Count(guard.StatusSkipped)+rep.Count(guard.StatusFailed), missed)
		b.WriteString("| Rule | Before | After | Ratio | Status |\n")
		b.WriteString("|---|---|---|---|---|\n")
		for _, res := range s.Results {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
				res.Rule, cell(res.Before), cell(res.After), ratioCell(res), statusCell(res))
		}
	}
	return b.String()
}

// HistoryMarkdown lists recorded adjustments, newest first.
func HistoryMarkdown(entries []history.Entry) string {
	var b strings.Builder
	b.WriteString("# Recent adjustments\n\n")
	if len(entries) == 0 {
		b.WriteString("No adjustments recorded.\n")
		return b.String()
	}
	b.WriteString("| Time | Theme | Pair | Before | After | Ratio |\n")
	b.WriteString("|---|---|---|---|---|---|\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "| %s | %s (%s) | %s/%s | %s | %s | %.2f -> %.2f%s |\n",
			e.At.Local().Format("2006-01-02 15:04:05"), e.Theme, e.Mode,
			e.Token, e.Background, e.Before, e.After, e.BeforeRatio, e.AfterRatio, missMark(e.Met))
	}
	return b.String()
}

func cell(value string) string {
	if value == "" {
		return "-"
	}
	return value
}

func ratioCell(res guard.RuleResult) string {
	switch res.Status {
	case guard.StatusSkipped, guard.StatusFailed:
		return "-"
	case guard.StatusApplied:
		return fmt.Sprintf("%.2f -> %.2f%s", res.BeforeRatio, res.AfterRatio, missMark(res.Met))
	default:
		return fmt.Sprintf("%.2f%s", res.AfterRatio, missMark(res.Met))
	}
}

func statusCell(res guard.RuleResult) string {
	if code := res.Reason(); code != "" {
		return fmt.Sprintf("%s (%s)", res.Status, code)
	}
	return res.Status.String()
}

func missMark(met bool) string {
	if met {
		return ""
	}
	return " (below target)"
}

// Render renders markdown for the terminal. format is rich, dark, light or
// plain; plain and renderer failures fall back to word wrapping.
func Render(markdown, format string, width int) string {
	fallback := func(input string) string {
		return wordwrap.String(input, width)
	}

	style := strings.ToLower(strings.TrimSpace(format))
	if style == "" || style == "rich" {
		style = "dark"
	}
	if style == "plain" {
		return fallback(markdown)
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fallback(markdown)
	}
	out, err := renderer.Render(markdown)
	if err != nil {
		return fallback(markdown)
	}
	return strings.TrimSpace(out)
}
