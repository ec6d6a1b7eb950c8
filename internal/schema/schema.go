// Package schema validates and normalizes raw resource input against an
// ordered table of field rules.
package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type FieldType int

const (
	String FieldType = iota
	// Email is a String that is lower-cased and must look like local@domain.
	Email
	DateTime
)

// Field declares the rules for one input field. Zero values disable a
// rule. Messages default to generic text when left empty.
type Field struct {
	Name     string
	Type     FieldType
	Required bool
	Enum     []string
	Default  string

	MinLength int
	MaxLength int

	RequiredMessage  string
	MinLengthMessage string
	MaxLengthMessage string
	PatternMessage   string
	InvalidMessage   string
}

// Schema is the ordered rule table for one resource kind. Validation
// reports violations in field order.
type Schema struct {
	Name   string
	Fields []Field
}

// Record is normalized input. Values are either string or time.Time.
type Record map[string]any

func (r Record) String(name string) string {
	s, _ := r[name].(string)
	return s
}

func (r Record) Time(name string) time.Time {
	t, _ := r[name].(time.Time)
	return t
}

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Dates must stay within what RFC 3339 and every backend can represent.
var (
	minDate = time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)
	maxDate = time.Date(9999, 12, 31, 23, 59, 59, 999_000_000, time.UTC)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("simple_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	return v
}

// Has reports whether the schema declares a field with the given name.
func (s *Schema) Has(name string) bool {
	for _, f := range s.Fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

// Validate checks input against every field rule and returns the
// normalized record. Undeclared input keys are dropped. On failure the
// returned error is a *ValidationError carrying every violation.
func (s *Schema) Validate(input map[string]any) (Record, error) {
	out := make(Record, len(s.Fields))
	verr := &ValidationError{Schema: s.Name}

	for _, f := range s.Fields {
		var (
			value any
			vs    []Violation
		)
		switch f.Type {
		case DateTime:
			value, vs = f.checkTime(input[f.Name])
		default:
			value, vs = f.checkString(input[f.Name])
		}

		verr.Violations = append(verr.Violations, vs...)
		if value != nil {
			out[f.Name] = value
		}
	}

	if len(verr.Violations) > 0 {
		return nil, verr
	}

	return out, nil
}

func (f Field) checkString(raw any) (any, []Violation) {
	s, ok := toString(raw)
	if !ok {
		return nil, []Violation{f.violation(RuleType, 0, fmt.Sprintf("%s must be a string", f.Name))}
	}

	s = strings.TrimSpace(s)
	if f.Type == Email {
		s = strings.ToLower(s)
	}

	if validate.Var(s, "required") != nil {
		switch {
		case f.Required:
			return nil, []Violation{f.violation(RuleRequired, 0, f.message(f.RequiredMessage, "%s is required", f.Name))}
		case f.Default != "":
			return f.Default, nil
		default:
			return "", nil
		}
	}

	var vs []Violation

	if len(f.Enum) > 0 && validate.Var(s, "oneof="+strings.Join(f.Enum, " ")) != nil {
		v := f.violation(RuleEnum, 0, fmt.Sprintf("%q is not a valid %s; expected one of: %s", s, f.Name, strings.Join(f.Enum, ", ")))
		v.Allowed = f.Enum
		vs = append(vs, v)
	}

	if f.MinLength > 0 && validate.Var(s, fmt.Sprintf("min=%d", f.MinLength)) != nil {
		vs = append(vs, f.violation(RuleMinLength, f.MinLength,
			f.message(f.MinLengthMessage, "%s must be at least %d characters", f.Name, f.MinLength)))
	}

	if f.MaxLength > 0 && validate.Var(s, fmt.Sprintf("max=%d", f.MaxLength)) != nil {
		vs = append(vs, f.violation(RuleMaxLength, f.MaxLength,
			f.message(f.MaxLengthMessage, "%s cannot exceed %d characters", f.Name, f.MaxLength)))
	}

	if f.Type == Email && validate.Var(s, "simple_email") != nil {
		vs = append(vs, f.violation(RulePattern, 0, f.message(f.PatternMessage, "%s is not a valid email", f.Name)))
	}

	if len(vs) > 0 {
		return nil, vs
	}

	return s, nil
}

func (f Field) checkTime(raw any) (any, []Violation) {
	t, present, ok := toTime(raw)
	if !present {
		if f.Required {
			return nil, []Violation{f.violation(RuleRequired, 0, f.message(f.RequiredMessage, "%s is required", f.Name))}
		}
		return nil, nil
	}

	if !ok {
		return nil, []Violation{f.violation(RuleType, 0, f.message(f.InvalidMessage, "%s is invalid", f.Name))}
	}

	return t, nil
}

func (f Field) violation(rule Rule, bound int, msg string) Violation {
	return Violation{Field: f.Name, Rule: rule, Bound: bound, Message: msg}
}

func (f Field) message(custom, format string, args ...any) string {
	if custom != "" {
		return custom
	}
	return fmt.Sprintf(format, args...)
}

// toString converts scalar JSON values to text. Objects and arrays are
// rejected. A nil value is treated as an empty string.
func toString(raw any) (string, bool) {
	switch v := raw.(type) {
	case nil:
		return "", true
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return "", false
	}
}

// toTime returns the parsed time, whether any value was supplied at all,
// and whether it could be parsed. Numbers are unix milliseconds. Times
// outside years 1 to 9999 do not parse.
func toTime(raw any) (time.Time, bool, bool) {
	switch v := raw.(type) {
	case nil:
		return time.Time{}, false, false
	case time.Time:
		if v.IsZero() {
			return time.Time{}, false, false
		}
		return inRange(v.UTC())
	case float64:
		if math.IsNaN(v) || v < float64(minDate.UnixMilli()) || v > float64(maxDate.UnixMilli()) {
			return time.Time{}, true, false
		}
		return inRange(time.UnixMilli(int64(v)).UTC())
	case string:
		v = strings.TrimSpace(v)
		if v == "" {
			return time.Time{}, false, false
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return inRange(t.UTC())
			}
		}
		return time.Time{}, true, false
	default:
		return time.Time{}, true, false
	}
}

func inRange(t time.Time) (time.Time, bool, bool) {
	if t.Before(minDate) || t.After(maxDate) {
		return time.Time{}, true, false
	}
	return t, true, true
}
