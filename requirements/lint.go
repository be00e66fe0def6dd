package requirements

import (
	"fmt"
	"strconv"
	"strings"

	version "github.com/hashicorp/go-version"
)

// LintResult contains the outcome of linting a manifest.
type LintResult struct {
	Valid  bool        `json:"valid"`
	Issues []LintIssue `json:"issues,omitempty"`
}

// LintIssue is a single problem found in a manifest.
type LintIssue struct {
	Name    string `json:"name"`
	Line    int    `json:"line"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Lint rules.
const (
	RuleDuplicate     = "duplicate"
	RuleConflict      = "conflict"
	RuleUnsatisfiable = "unsatisfiable"
	RuleBadVersion    = "bad-version"
)

// Lint checks a parsed manifest for duplicate declarations, per-requirement
// unsatisfiable specifier sets, and conflicting ranges across duplicate
// declarations of the same package.
func Lint(m *Manifest) *LintResult {
	res := &LintResult{Valid: true}

	seen := map[string]Requirement{}
	for _, req := range m.Requirements {
		selfIssue, selfBad := checkSatisfiable(req, req.Specifiers)
		if selfBad {
			res.Issues = append(res.Issues, selfIssue)
		}

		first, dup := seen[req.Name]
		if !dup {
			seen[req.Name] = req
			continue
		}

		// A conflict is only meaningful when each declaration is fine on its
		// own but their combined ranges admit nothing.
		if !selfBad {
			combined := append(append([]Specifier{}, first.Specifiers...), req.Specifiers...)
			if _, bad := checkSatisfiable(req, combined); bad {
				res.Issues = append(res.Issues, LintIssue{
					Name:    req.Name,
					Line:    req.Line,
					Rule:    RuleConflict,
					Message: fmt.Sprintf("%s conflicts with declaration on line %d", req.Name, first.Line),
				})
				continue
			}
		}
		res.Issues = append(res.Issues, LintIssue{
			Name:    req.Name,
			Line:    req.Line,
			Rule:    RuleDuplicate,
			Message: fmt.Sprintf("%s already declared on line %d", req.Name, first.Line),
		})
	}

	res.Valid = len(res.Issues) == 0
	return res
}

// interval accumulates the bounds implied by a specifier set.
type interval struct {
	lower, upper       *version.Version
	lowerInc, upperInc bool
	pin                *version.Version
	exact              string
	excludes           []*version.Version
}

// checkSatisfiable reports whether the specifier set admits no version at
// all. The bool result is true when an issue was found.
func checkSatisfiable(req Requirement, specs []Specifier) (LintIssue, bool) {
	iv := interval{}
	for _, s := range specs {
		if s.Op == "===" {
			if iv.exact != "" && iv.exact != s.Version {
				return unsat(req, fmt.Sprintf("contradictory exact pins %q and %q", iv.exact, s.Version)), true
			}
			iv.exact = s.Version
			continue
		}

		v, err := version.NewVersion(s.Version)
		if err != nil {
			return LintIssue{
				Name:    req.Name,
				Line:    req.Line,
				Rule:    RuleBadVersion,
				Message: fmt.Sprintf("unparseable version in %s%s", s.Op, s.Version),
			}, true
		}

		switch s.Op {
		case "==":
			if iv.pin != nil && !iv.pin.Equal(v) {
				return unsat(req, fmt.Sprintf("contradictory pins ==%s and ==%s", iv.pin.Original(), s.Version)), true
			}
			iv.pin = v
		case "!=":
			iv.excludes = append(iv.excludes, v)
		case ">":
			iv.tightenLower(v, false)
		case ">=":
			iv.tightenLower(v, true)
		case "<":
			iv.tightenUpper(v, false)
		case "<=":
			iv.tightenUpper(v, true)
		case "~=":
			upper, err := compatibleUpper(s.Version)
			if err != nil {
				return LintIssue{
					Name:    req.Name,
					Line:    req.Line,
					Rule:    RuleBadVersion,
					Message: fmt.Sprintf("~=%s: %v", s.Version, err),
				}, true
			}
			iv.tightenLower(v, true)
			iv.tightenUpper(upper, false)
		}
	}

	if reason, empty := iv.empty(); empty {
		return unsat(req, reason), true
	}
	return LintIssue{}, false
}

func unsat(req Requirement, reason string) LintIssue {
	return LintIssue{
		Name:    req.Name,
		Line:    req.Line,
		Rule:    RuleUnsatisfiable,
		Message: reason,
	}
}

func (iv *interval) tightenLower(v *version.Version, inclusive bool) {
	if iv.lower == nil || v.GreaterThan(iv.lower) || (v.Equal(iv.lower) && !inclusive) {
		iv.lower = v
		iv.lowerInc = inclusive
	}
}

func (iv *interval) tightenUpper(v *version.Version, inclusive bool) {
	if iv.upper == nil || v.LessThan(iv.upper) || (v.Equal(iv.upper) && !inclusive) {
		iv.upper = v
		iv.upperInc = inclusive
	}
}

// empty reports whether the interval admits no version, with a reason.
func (iv *interval) empty() (string, bool) {
	// An unparseable exact pin can only be contradicted by another exact pin,
	// which is handled during accumulation. A parseable one behaves as a pin.
	if iv.exact != "" && iv.pin == nil {
		if v, err := version.NewVersion(iv.exact); err == nil {
			iv.pin = v
		}
	}

	if iv.lower != nil && iv.upper != nil {
		if iv.lower.GreaterThan(iv.upper) {
			return fmt.Sprintf("lower bound %s exceeds upper bound %s", iv.lower.Original(), iv.upper.Original()), true
		}
		if iv.lower.Equal(iv.upper) {
			if !iv.lowerInc || !iv.upperInc {
				return fmt.Sprintf("bounds around %s exclude every version", iv.lower.Original()), true
			}
			// Interval collapsed to a single version; an exclusion kills it.
			for _, ex := range iv.excludes {
				if ex.Equal(iv.lower) {
					return fmt.Sprintf("only admissible version %s is excluded by !=", ex.Original()), true
				}
			}
		}
	}

	if iv.pin != nil {
		if iv.lower != nil && (iv.pin.LessThan(iv.lower) || (iv.pin.Equal(iv.lower) && !iv.lowerInc)) {
			return fmt.Sprintf("pin %s is below the lower bound %s", iv.pin.Original(), iv.lower.Original()), true
		}
		if iv.upper != nil && (iv.pin.GreaterThan(iv.upper) || (iv.pin.Equal(iv.upper) && !iv.upperInc)) {
			return fmt.Sprintf("pin %s is above the upper bound %s", iv.pin.Original(), iv.upper.Original()), true
		}
		for _, ex := range iv.excludes {
			if ex.Equal(iv.pin) {
				return fmt.Sprintf("pin %s is excluded by !=%s", iv.pin.Original(), ex.Original()), true
			}
		}
	}

	return "", false
}

// compatibleUpper computes the exclusive upper bound implied by a
// compatible-release specifier: ~=2.2 admits <3, ~=1.4.5 admits <1.5.
// The written version must have at least two release segments.
func compatibleUpper(ver string) (*version.Version, error) {
	release := ver
	if i := strings.IndexAny(release, "-+"); i >= 0 {
		release = release[:i]
	}
	parts := strings.Split(release, ".")

	// Keep only leading purely numeric segments.
	numeric := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			break
		}
		numeric = append(numeric, n)
	}
	if len(numeric) < 2 {
		return nil, fmt.Errorf("needs at least two release segments")
	}

	bumped := numeric[:len(numeric)-1]
	bumped[len(bumped)-1]++
	out := make([]string, len(bumped))
	for i, n := range bumped {
		out[i] = strconv.Itoa(n)
	}
	return version.NewVersion(strings.Join(out, "."))
}
