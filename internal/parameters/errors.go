package parameters

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a single problem found while loading a document.
type Kind string

const (
	KindParse          Kind = "ParseError"
	KindMissingField   Kind = "MissingFieldError"
	KindTypeMismatch   Kind = "TypeMismatchError"
	KindRangeInvariant Kind = "RangeInvariantError"
	KindEnumMembership Kind = "EnumMembershipError"
)

var (
	ErrParse          = errors.New("document is not well-formed")
	ErrMissingField   = errors.New("required field is missing")
	ErrTypeMismatch   = errors.New("field has the wrong type")
	ErrRangeInvariant = errors.New("numeric invariant violated")
	ErrEnumMembership = errors.New("value is not a declared literal")
)

// Kinds lists every issue kind in report order.
var Kinds = []Kind{KindParse, KindMissingField, KindTypeMismatch, KindRangeInvariant, KindEnumMembership}

func (k Kind) sentinel() error {
	switch k {
	case KindParse:
		return ErrParse
	case KindMissingField:
		return ErrMissingField
	case KindTypeMismatch:
		return ErrTypeMismatch
	case KindRangeInvariant:
		return ErrRangeInvariant
	case KindEnumMembership:
		return ErrEnumMembership
	}
	return nil
}

// Issue is one violation: the offending field path, the value found there
// and a message stating the expected constraint.
type Issue struct {
	Kind    Kind
	Path    string
	Value   string
	Message string
}

func (i Issue) Error() string {
	return fmt.Sprintf("%s: %s", i.Kind, i.Message)
}

func (i Issue) Unwrap() error {
	return i.Kind.sentinel()
}

// ConfigError aggregates every issue found in a document. A load that
// returns a ConfigError never returns a Config.
type ConfigError struct {
	Source string
	Issues []Issue
}

func (e *ConfigError) Error() string {
	var sb strings.Builder
	source := e.Source
	if source == "" {
		source = "parameters document"
	}
	fmt.Fprintf(&sb, "%s is invalid (%d issue(s))", source, len(e.Issues))
	for _, issue := range e.Issues {
		sb.WriteString("\n  - ")
		sb.WriteString(issue.Error())
	}
	return sb.String()
}

func (e *ConfigError) Unwrap() []error {
	errs := make([]error, len(e.Issues))
	for i, issue := range e.Issues {
		errs[i] = issue
	}
	return errs
}

// ByKind returns the issues of the given kind in the order they were found.
func (e *ConfigError) ByKind(kind Kind) []Issue {
	var result []Issue
	for _, issue := range e.Issues {
		if issue.Kind == kind {
			result = append(result, issue)
		}
	}
	return result
}

// Lookup returns the first issue reported for path.
func (e *ConfigError) Lookup(path string) (Issue, bool) {
	for _, issue := range e.Issues {
		if issue.Path == path {
			return issue, true
		}
	}
	return Issue{}, false
}
