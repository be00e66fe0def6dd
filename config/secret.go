package config

// Secret wraps a sensitive string value. It renders as a placeholder when
// printed or marshaled so keys never leak into logs or CLI output.
type Secret string

const redacted = "[redacted]"

// Reveal returns the underlying value.
func (s Secret) Reveal() string { return string(s) }

// IsSet reports whether a value is present.
func (s Secret) IsSet() bool { return s != "" }

func (s Secret) String() string {
	if s == "" {
		return ""
	}
	return redacted
}

func (s Secret) MarshalJSON() ([]byte, error) {
	if s == "" {
		return []byte(`""`), nil
	}
	return []byte(`"` + redacted + `"`), nil
}
