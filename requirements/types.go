package requirements

import (
	"regexp"
	"strings"
)

// Specifier is a single version comparator applied to a requirement,
// e.g. ">=2.0" or "!=2.1.3".
type Specifier struct {
	Op      string `json:"op"`
	Version string `json:"version"`
}

// Operators lists the valid specifier operators, longest first so that
// prefix matching during parsing is unambiguous.
var Operators = []string{"===", "==", "!=", ">=", "<=", "~=", ">", "<"}

// Requirement is one parsed dependency declaration from a manifest.
type Requirement struct {
	// Name is the normalized package name (lowercase, runs of "-_." folded
	// to a single "-").
	Name string `json:"name"`
	// Raw is the package name exactly as written.
	Raw        string      `json:"raw"`
	Extras     []string    `json:"extras,omitempty"`
	Specifiers []Specifier `json:"specifiers,omitempty"`
	// Marker holds the raw environment marker text after ";" if present.
	Marker string `json:"marker,omitempty"`
	// Comment holds the inline comment text, without the "#".
	Comment string `json:"comment,omitempty"`
	// Line is the 1-based line number in the source manifest.
	Line int `json:"line"`
}

// Manifest is a parsed requirements file.
type Manifest struct {
	Path         string        `json:"path,omitempty"`
	Requirements []Requirement `json:"requirements"`
}

var normalizeRe = regexp.MustCompile(`[-_.]+`)

// NormalizeName lowercases a package name and folds runs of "-", "_" and "."
// to a single "-", so that "Foo_Bar" and "foo.bar" refer to the same package.
func NormalizeName(name string) string {
	return normalizeRe.ReplaceAllString(strings.ToLower(name), "-")
}

// String renders the requirement in manifest syntax, without marker or comment.
func (r Requirement) String() string {
	var b strings.Builder
	b.WriteString(r.Raw)
	if len(r.Extras) > 0 {
		b.WriteString("[" + strings.Join(r.Extras, ",") + "]")
	}
	for i, s := range r.Specifiers {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(s.Op + s.Version)
	}
	return b.String()
}
