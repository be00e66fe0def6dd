package requirements

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	version "github.com/hashicorp/go-version"
)

// ParseError describes a line that could not be parsed as a requirement.
type ParseError struct {
	Path   string
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Reason)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// PEP 508 name: alphanumeric start and end, "-", "_", "." allowed inside.
var nameRe = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9._-]*[A-Za-z0-9])?$`)

// ParseFile reads and parses a requirements manifest from disk.
func ParseFile(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening manifest %s: %w", path, err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.Path = path
		}
		return nil, err
	}
	m.Path = path
	return m, nil
}

// Parse reads a requirements manifest line by line. Blank lines and lines
// whose first non-space character is "#" yield no requirement and no error.
func Parse(r io.Reader) (*Manifest, error) {
	m := &Manifest{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		req, err := parseLine(trimmed, lineNo)
		if err != nil {
			return nil, err
		}
		m.Requirements = append(m.Requirements, *req)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return m, nil
}

// parseLine parses a single non-blank, non-comment manifest line of the form
// <name>[extras]<op><version>[,<op><version>...][; marker][ # comment].
func parseLine(line string, lineNo int) (*Requirement, error) {
	req := &Requirement{Line: lineNo}

	// Inline comment: "#" preceded by whitespace.
	if body, comment, found := splitInlineComment(line); found {
		req.Comment = comment
		line = strings.TrimSpace(body)
	}

	// Environment marker after ";".
	if i := strings.Index(line, ";"); i >= 0 {
		req.Marker = strings.TrimSpace(line[i+1:])
		line = strings.TrimSpace(line[:i])
	}

	// Package name: everything up to the first character that cannot be
	// part of a name followed by an extras bracket or an operator.
	nameEnd := strings.IndexAny(line, "[<>=!~ \t")
	if nameEnd == -1 {
		nameEnd = len(line)
	}
	raw := strings.TrimSpace(line[:nameEnd])
	if raw == "" {
		return nil, &ParseError{Line: lineNo, Text: line, Reason: "missing package name"}
	}
	if !nameRe.MatchString(raw) {
		return nil, &ParseError{Line: lineNo, Text: line, Reason: fmt.Sprintf("invalid package name %q", raw)}
	}
	req.Raw = raw
	req.Name = NormalizeName(raw)
	rest := strings.TrimSpace(line[nameEnd:])

	// Extras: [a,b].
	if strings.HasPrefix(rest, "[") {
		end := strings.Index(rest, "]")
		if end == -1 {
			return nil, &ParseError{Line: lineNo, Text: line, Reason: "unterminated extras bracket"}
		}
		for _, e := range strings.Split(rest[1:end], ",") {
			if e = strings.TrimSpace(e); e != "" {
				req.Extras = append(req.Extras, e)
			}
		}
		rest = strings.TrimSpace(rest[end+1:])
	}

	if rest == "" {
		return req, nil // bare name, any version
	}

	specs, err := parseSpecifiers(rest)
	if err != nil {
		return nil, &ParseError{Line: lineNo, Text: line, Reason: err.Error()}
	}
	req.Specifiers = specs
	return req, nil
}

// parseSpecifiers parses a comma-separated comparator list like ">=2.0, <3.0".
func parseSpecifiers(s string) ([]Specifier, error) {
	var specs []Specifier
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("empty version specifier")
		}
		op := ""
		for _, candidate := range Operators {
			if strings.HasPrefix(part, candidate) {
				op = candidate
				break
			}
		}
		if op == "" {
			return nil, fmt.Errorf("specifier %q has no comparison operator", part)
		}
		ver := strings.TrimSpace(part[len(op):])
		if ver == "" {
			return nil, fmt.Errorf("specifier %q has no version", part)
		}
		specs = append(specs, Specifier{Op: op, Version: ver})
	}
	return specs, nil
}

// splitInlineComment splits a line at an inline comment marker ("#" preceded
// by whitespace). Returns the body, the comment text, and whether a comment
// was found.
func splitInlineComment(line string) (body, comment string, found bool) {
	for i := 1; i < len(line); i++ {
		if line[i] == '#' && (line[i-1] == ' ' || line[i-1] == '\t') {
			return line[:i], strings.TrimSpace(line[i+1:]), true
		}
	}
	return line, "", false
}

// Constraint translates the requirement's specifiers into go-version
// constraints for candidate checking. Exact pins ("==", "===") map to "=",
// compatible-release ("~=") maps to the pessimistic operator "~>".
func (r Requirement) Constraint() (version.Constraints, error) {
	if len(r.Specifiers) == 0 {
		return version.NewConstraint(">= 0")
	}
	parts := make([]string, 0, len(r.Specifiers))
	for _, s := range r.Specifiers {
		op := s.Op
		switch op {
		case "==", "===":
			op = "="
		case "~=":
			op = "~>"
		}
		parts = append(parts, op+" "+s.Version)
	}
	c, err := version.NewConstraint(strings.Join(parts, ", "))
	if err != nil {
		return nil, fmt.Errorf("translating constraint for %s: %w", r.Name, err)
	}
	return c, nil
}

// Check reports whether the candidate version satisfies every specifier of
// the requirement. "===" compares the written version text verbatim.
func (r Requirement) Check(v *version.Version) (bool, error) {
	for _, s := range r.Specifiers {
		if s.Op == "===" {
			if v.Original() != s.Version {
				return false, nil
			}
			continue
		}
		single := Requirement{Name: r.Name, Specifiers: []Specifier{s}}
		c, err := single.Constraint()
		if err != nil {
			return false, err
		}
		if !c.Check(v) {
			return false, nil
		}
	}
	return true, nil
}
