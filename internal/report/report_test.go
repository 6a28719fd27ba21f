package report

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	apperrors "contrastguard/internal/errors"
	"contrastguard/internal/guard"
	"contrastguard/internal/history"
	"contrastguard/internal/theme"
)

func TestBuildCoversEveryVariant(t *testing.T) {
	doc, err := Build([]string{"solarized", "nord"}, []bool{false, true})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(doc.Sections) != 4 {
		t.Fatalf("expected 4 sections, got %d", len(doc.Sections))
	}
	first := doc.Sections[0]
	if first.Theme != "solarized" || first.Variant() != "light" {
		t.Fatalf("unexpected first section %s/%s", first.Theme, first.Variant())
	}
	if len(first.Results) != len(guard.DefaultRules()) {
		t.Errorf("expected one result per rule, got %d", len(first.Results))
	}
	if got := first.Tokens[guard.TokenText]; got != "rgb(71, 86, 91)" {
		t.Errorf("guarded text = %q, want rgb(71, 86, 91)", got)
	}
	if doc.Sections[3].Theme != "nord" || !doc.Sections[3].Dark {
		t.Errorf("unexpected last section %+v", doc.Sections[3])
	}
}

func TestBuildUnknownTheme(t *testing.T) {
	_, err := Build([]string{"missing"}, []bool{true})
	if !apperrors.IsCode(err, apperrors.CodeConfigurationError) {
		t.Fatalf("expected configuration_error, got %v", err)
	}
}

func TestMarkdownListsRules(t *testing.T) {
	doc, err := Build([]string{"slate"}, []bool{true})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	md := doc.Markdown()

	for _, want := range []string{
		"# Contrast report",
		"## slate (dark)",
		"| Rule | Before | After | Ratio | Status |",
		"| border/background@1.6 | #333 | #333 | - | skipped (unsupported_color_format) |",
		"info/surface@3.5",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
	if strings.Count(md, "\n| ") != len(guard.DefaultRules())+1 {
		t.Errorf("expected header plus one row per rule:\n%s", md)
	}
}

func TestMarkdownAppliedRow(t *testing.T) {
	doc := Document{Sections: []Section{{
		Theme: "custom",
		Results: []guard.RuleResult{{
			Rule:        guard.Rule{Foreground: guard.TokenText, Background: guard.TokenSurface, MinRatio: 4.5},
			Status:      guard.StatusApplied,
			Before:      "#c8c8c8",
			After:       "rgb(108, 108, 108)",
			BeforeRatio: 1.53,
			AfterRatio:  4.82,
			Met:         true,
		}, {
			Rule:        guard.Rule{Foreground: guard.TokenText, Background: guard.TokenBackground, MinRatio: 7},
			Status:      guard.StatusApplied,
			Before:      "#c8c8c8",
			After:       "rgb(108, 108, 108)",
			BeforeRatio: 1.6,
			AfterRatio:  5.2,
		}},
	}}}
	md := doc.Markdown()
	if !strings.Contains(md, "| text/surface@4.5 | #c8c8c8 | rgb(108, 108, 108) | 1.53 -> 4.82 | applied |") {
		t.Errorf("applied row missing:\n%s", md)
	}
	if !strings.Contains(md, "1.60 -> 5.20 (below target)") {
		t.Errorf("best-effort row should be marked:\n%s", md)
	}
	if !strings.Contains(md, "2 applied, 0 skipped, 1 below target") {
		t.Errorf("summary line missing:\n%s", md)
	}
}

func TestHistoryMarkdown(t *testing.T) {
	if md := HistoryMarkdown(nil); !strings.Contains(md, "No adjustments recorded.") {
		t.Errorf("empty history = %q", md)
	}

	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.Local)
	md := HistoryMarkdown([]history.Entry{{
		At: at, Theme: "nord", Mode: "dark",
		Token: guard.TokenText, Background: guard.TokenSurface,
		Before: "#4c566a", After: "rgb(120, 130, 150)",
		BeforeRatio: 1.9, AfterRatio: 4.6, Met: true,
	}})
	want := "| 2025-03-01 12:00:00 | nord (dark) | text/surface | #4c566a | rgb(120, 130, 150) | 1.90 -> 4.60 |"
	if !strings.Contains(md, want) {
		t.Errorf("history row missing %q:\n%s", want, md)
	}
}

func TestRenderPlainWraps(t *testing.T) {
	input := "alpha beta gamma delta"
	got := Render(input, "plain", 11)
	lines := strings.Split(got, "\n")
	if len(lines) < 2 {
		t.Fatalf("expected wrapped output, got %q", got)
	}
	for _, line := range lines {
		if len(line) > 11 {
			t.Errorf("line %q exceeds width", line)
		}
	}
	if strings.Join(strings.Fields(got), " ") != input {
		t.Errorf("plain render lost words: %q", got)
	}
}

func TestRenderRichKeepsText(t *testing.T) {
	doc, err := Build([]string{"solarized"}, []bool{false})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for _, format := range []string{"", "rich", "dark", "light"} {
		out := ansi.Strip(Render(doc.Markdown(), format, 120))
		if !strings.Contains(out, "solarized") {
			t.Errorf("format %q lost heading text:\n%s", format, out)
		}
	}
}

func TestRenderUnknownStyleFallsBack(t *testing.T) {
	input := "one two"
	if got := Render(input, "no-such-style", 80); got != input {
		t.Errorf("fallback render = %q, want %q", got, input)
	}
}

func TestVariantName(t *testing.T) {
	if (Section{Dark: true}).Variant() != theme.VariantName(true) {
		t.Error("dark variant name mismatch")
	}
}
