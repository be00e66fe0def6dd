package models

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/messages.schema.json
var schemaBytes []byte

// MessageKind selects which shared contract a raw message is validated
// against.
type MessageKind string

const (
	KindVADEvent        MessageKind = "vadEvent"
	KindVADTimingFlags  MessageKind = "vadTimingFlags"
	KindQLogicTurnInput MessageKind = "qlogicTurnInput"
	KindQLogicResponse  MessageKind = "qlogicResponse"
	KindGuardianInput   MessageKind = "guardianInput"
)

var (
	compiledSchemas map[MessageKind]*jsonschema.Schema
	compileOnce     sync.Once
	compileErr      error
	printer         = message.NewPrinter(language.English)
)

// ValidationResult contains the outcome of a schema validation.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue represents a single validation error from the schema.
type ValidationIssue struct {
	Path    string // Instance location (e.g., "/session_id", "/words/0/accuracy")
	Message string // Human-readable error message
	Keyword string // Schema keyword that failed
}

// getSchema compiles the embedded schema once and returns the subschema for
// the given message kind.
func getSchema(kind MessageKind) (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("messages.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}

		compiledSchemas = make(map[MessageKind]*jsonschema.Schema)
		for _, k := range []MessageKind{
			KindVADEvent, KindVADTimingFlags, KindQLogicTurnInput,
			KindQLogicResponse, KindGuardianInput,
		} {
			s, err := c.Compile("messages.schema.json#/$defs/" + string(k))
			if err != nil {
				compileErr = fmt.Errorf("compiling schema for %s: %w", k, err)
				return
			}
			compiledSchemas[k] = s
		}
	})
	if compileErr != nil {
		return nil, compileErr
	}
	s, ok := compiledSchemas[kind]
	if !ok {
		return nil, fmt.Errorf("unknown message kind %q", kind)
	}
	return s, nil
}

// Validate checks raw JSON bytes against the contract for the given message
// kind. The error return is for schema compilation or malformed JSON;
// contract violations are reported in the ValidationResult.
func Validate(kind MessageKind, data []byte) (*ValidationResult, error) {
	schema, err := getSchema(kind)
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing message JSON: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}

	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}

	return &ValidationResult{
		Valid:  false,
		Issues: extractIssues(validationErr),
	}, nil
}

// extractIssues walks the error tree and returns deduplicated leaf issues.
func extractIssues(ve *jsonschema.ValidationError) []ValidationIssue {
	var issues []ValidationIssue
	collectIssues(ve, &issues)

	if len(issues) == 0 {
		return []ValidationIssue{{Message: ve.Error()}}
	}
	return dedupeIssues(issues)
}

// collectIssues recursively walks the error tree to find leaf errors with
// specific property information.
func collectIssues(ve *jsonschema.ValidationError, issues *[]ValidationIssue) {
	if len(ve.Causes) == 0 {
		path := "/" + strings.Join(ve.InstanceLocation, "/")
		if len(ve.InstanceLocation) == 0 {
			path = ""
		}

		keyword := ""
		if ve.ErrorKind != nil {
			kwPath := ve.ErrorKind.KeywordPath()
			if len(kwPath) > 0 {
				keyword = kwPath[len(kwPath)-1]
			}
		}

		msg := ""
		if ve.ErrorKind != nil {
			msg = ve.ErrorKind.LocalizedString(printer)
		}

		// Container keywords carry no actionable detail on their own.
		if keyword == "oneOf" || keyword == "allOf" || keyword == "$ref" || keyword == "" {
			return
		}

		*issues = append(*issues, ValidationIssue{
			Path:    path,
			Message: msg,
			Keyword: keyword,
		})
		return
	}

	for _, cause := range ve.Causes {
		collectIssues(cause, issues)
	}
}

// dedupeIssues removes duplicates (same path + keyword + message).
func dedupeIssues(issues []ValidationIssue) []ValidationIssue {
	seen := make(map[string]bool)
	var result []ValidationIssue
	for _, issue := range issues {
		key := issue.Path + "|" + issue.Keyword + "|" + issue.Message
		if !seen[key] {
			seen[key] = true
			result = append(result, issue)
		}
	}
	return result
}
