package schema

import (
	"fmt"
	"strings"
)

type Rule string

const (
	RuleRequired  Rule = "required"
	RuleType      Rule = "type"
	RuleEnum      Rule = "enum"
	RuleMinLength Rule = "minlength"
	RuleMaxLength Rule = "maxlength"
	RulePattern   Rule = "pattern"
)

// Violation describes one failed field rule. Bound is set for length
// rules and Allowed for enum rules.
type Violation struct {
	Field   string
	Rule    Rule
	Bound   int
	Allowed []string
	Message string
}

// ValidationError collects every violation found in one validation pass.
type ValidationError struct {
	Schema     string
	Violations []Violation
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s validation failed: %s", e.Schema, strings.Join(e.Messages(), "; "))
}

// Messages returns the human readable violation messages in field order.
func (e *ValidationError) Messages() []string {
	out := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		out = append(out, v.Message)
	}
	return out
}

// Fields returns the names of the fields that failed, in order, without
// duplicates.
func (e *ValidationError) Fields() []string {
	seen := make(map[string]bool)
	out := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		if seen[v.Field] {
			continue
		}
		seen[v.Field] = true
		out = append(out, v.Field)
	}
	return out
}
