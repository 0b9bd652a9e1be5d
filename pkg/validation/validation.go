// Package validation defines the structured error values returned by every
// constructor and parser in the ga4gh module. Violations are reported as
// data: each error names the field path at which it occurred, the rule that
// was violated, and the offending value, so callers can render diagnostics
// without re-deriving the constraint.
package validation

import (
	"fmt"
	"strings"
)

// Rule identifies the class of constraint a value violated.
type Rule string

// Violation rule classes. These form a closed taxonomy: every error produced
// by the module carries exactly one of them.
const (
	// RuleFormat marks a scalar value that fails its own grammar (bad
	// CURIE, negative count, inverted interval).
	RuleFormat Rule = "format"
	// RuleDiscriminator marks a type/syntax tag outside the closed
	// enumeration for its union.
	RuleDiscriminator Rule = "discriminator"
	// RuleMutualExclusion marks a field group violating exactly-one-of or
	// all-or-none.
	RuleMutualExclusion Rule = "mutual_exclusion"
	// RuleEmptyCollection marks a collection required to be non-empty.
	RuleEmptyCollection Rule = "empty_collection"
)

// Error reports a single violated constraint.
type Error struct {
	// Path locates the offending field relative to the constructed value,
	// e.g. "members[2].location.interval.start". Empty for the value itself.
	Path string
	// Rule is the violated constraint class.
	Rule Rule
	// Value is the offending input, when capturing it is meaningful.
	Value any
	// Message describes the expected constraint.
	Message string
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", e.Rule, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Path, e.Rule, e.Message)
}

// Is supports errors.Is matching against another *Error by rule, ignoring
// path and message, so callers can test for a violation class.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return other.Rule == e.Rule && (other.Path == "" || other.Path == e.Path)
}

// Errors aggregates violations found in one flat field group. Container
// constructors (descriptors, extension lists) report every violated rule at
// their own level rather than merely the first.
type Errors []*Error

func (es Errors) Error() string {
	switch len(es) {
	case 0:
		return "no violations"
	case 1:
		return es[0].Error()
	}
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = e.Error()
	}
	return fmt.Sprintf("%d violations: %s", len(es), strings.Join(parts, "; "))
}

// Unwrap exposes the individual violations to errors.Is and errors.As.
func (es Errors) Unwrap() []error {
	out := make([]error, len(es))
	for i, e := range es {
		out[i] = e
	}
	return out
}

// Err returns the aggregate as an error, or nil when no violations were
// collected. A single violation is returned unwrapped.
func (es Errors) Err() error {
	switch len(es) {
	case 0:
		return nil
	case 1:
		return es[0]
	}
	return es
}

// Formatf builds a format-rule violation at path.
func Formatf(path string, value any, format string, args ...any) *Error {
	return &Error{Path: path, Rule: RuleFormat, Value: value, Message: fmt.Sprintf(format, args...)}
}

// Discriminatorf builds a discriminator-rule violation at path.
func Discriminatorf(path string, value any, format string, args ...any) *Error {
	return &Error{Path: path, Rule: RuleDiscriminator, Value: value, Message: fmt.Sprintf(format, args...)}
}

// MutualExclusionf builds a mutual-exclusion violation at path.
func MutualExclusionf(path string, format string, args ...any) *Error {
	return &Error{Path: path, Rule: RuleMutualExclusion, Message: fmt.Sprintf(format, args...)}
}

// EmptyCollectionf builds an empty-collection violation at path.
func EmptyCollectionf(path string, format string, args ...any) *Error {
	return &Error{Path: path, Rule: RuleEmptyCollection, Message: fmt.Sprintf(format, args...)}
}

// Append collects err into the aggregate, flattening nested aggregates.
// Unstructured errors are coerced to format violations so the aggregate
// stays uniformly typed.
func (es *Errors) Append(err error) {
	switch typed := err.(type) {
	case nil:
	case *Error:
		*es = append(*es, typed)
	case Errors:
		*es = append(*es, typed...)
	default:
		*es = append(*es, &Error{Rule: RuleFormat, Message: err.Error()})
	}
}

// Join concatenates two path segments. Index segments ("[2]") attach without
// a separator.
func Join(prefix, sub string) string {
	if prefix == "" {
		return sub
	}
	if sub == "" {
		return prefix
	}
	if strings.HasPrefix(sub, "[") {
		return prefix + sub
	}
	return prefix + "." + sub
}

// Index renders a collection element path segment, e.g. Index("members", 2).
func Index(field string, i int) string {
	return fmt.Sprintf("%s[%d]", field, i)
}

// Wrap prefixes path context onto a nested member's error. Structured errors
// keep their rule and gain the outer path; any other error is wrapped as a
// format violation so nested failures always surface with a location.
func Wrap(path string, err error) error {
	if err == nil {
		return nil
	}
	switch typed := err.(type) {
	case *Error:
		return &Error{
			Path:    Join(path, typed.Path),
			Rule:    typed.Rule,
			Value:   typed.Value,
			Message: typed.Message,
		}
	case Errors:
		wrapped := make(Errors, len(typed))
		for i, e := range typed {
			wrapped[i] = Wrap(path, e).(*Error)
		}
		return wrapped
	default:
		return &Error{Path: path, Rule: RuleFormat, Message: err.Error()}
	}
}
