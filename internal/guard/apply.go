package guard

import (
	"fmt"

	"contrastguard/internal/color"
	"contrastguard/internal/contrast"
	apperrors "contrastguard/internal/errors"
)

// Status classifies what a rule did during a pass.
type Status int

const (
	StatusUnchanged Status = iota
	StatusApplied
	StatusSkipped
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusApplied:
		return "applied"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unchanged"
	}
}

// RuleResult records one rule evaluation. Before/After hold token text;
// ratios are zero for skipped or failed rules.
type RuleResult struct {
	Rule        Rule
	Status      Status
	Err         error
	Before      string
	After       string
	BeforeRatio float64
	AfterRatio  float64
	Met         bool
}

// Reason returns the structured code behind a skip or failure.
func (r RuleResult) Reason() apperrors.Code {
	if r.Err == nil {
		return ""
	}
	return apperrors.CodeOf(r.Err)
}

// Report collects the results of one pass, in rule order.
type Report struct {
	Results []RuleResult
}

// Changed reports whether any rule rewrote its foreground.
func (r Report) Changed() bool {
	return r.Count(StatusApplied) > 0
}

// Count returns how many results carry the given status.
func (r Report) Count(status Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == status {
			n++
		}
	}
	return n
}

// Apply runs rules in order over a copy of tokens and returns the new token
// values. Each rule sees the writes of the rules before it. Unparseable or
// missing tokens skip the rule; a fault inside a rule fails only that rule.
func Apply(tokens Tokens, rules []Rule) (Tokens, Report) {
	out := tokens.Clone()
	report := Report{Results: make([]RuleResult, 0, len(rules))}
	for _, rule := range rules {
		report.Results = append(report.Results, applyRule(out, rule))
	}
	return out, report
}

func applyRule(tokens Tokens, rule Rule) (res RuleResult) {
	res = RuleResult{Rule: rule, Before: tokens[rule.Foreground]}
	defer func() {
		if r := recover(); r != nil {
			res.Status = StatusFailed
			res.After = res.Before
			res.Err = apperrors.New(apperrors.CodeGuardPanic, fmt.Sprintf("rule %s: %v", rule, r), nil)
		}
	}()

	fgText, ok := tokens[rule.Foreground]
	if !ok {
		return skipped(res, missing(rule.Foreground))
	}
	bgText, ok := tokens[rule.Background]
	if !ok {
		return skipped(res, missing(rule.Background))
	}
	fg, err := color.Parse(fgText)
	if err != nil {
		return skipped(res, fmt.Errorf("%s: %w", rule.Foreground, err))
	}
	bg, err := color.Parse(bgText)
	if err != nil {
		return skipped(res, fmt.Errorf("%s: %w", rule.Background, err))
	}

	outcome := contrast.Adjust(fg, bg, rule.MinRatio)
	res.BeforeRatio = outcome.Before
	res.AfterRatio = outcome.After
	res.Met = outcome.Met
	res.After = fgText
	if !outcome.Changed {
		res.Status = StatusUnchanged
		return res
	}
	res.After = outcome.Color.String()
	res.Status = StatusApplied
	tokens[rule.Foreground] = res.After
	return res
}

func skipped(res RuleResult, err error) RuleResult {
	res.Status = StatusSkipped
	res.After = res.Before
	res.Err = err
	return res
}

func missing(name string) error {
	return apperrors.New(apperrors.CodeTokenMissing, fmt.Sprintf("token %q not set", name), nil)
}
