package validation

import (
	"fmt"
	"sort"
	"strings"
)

// Kind classifies why a field was rejected.
type Kind int

const (
	RequiredField Kind = iota + 1
	MaxLength
	InvalidFormat
)

func (k Kind) String() string {
	switch k {
	case RequiredField:
		return "required"
	case MaxLength:
		return "max_length"
	case InvalidFormat:
		return "invalid_format"
	default:
		return "unknown"
	}
}

// FieldError is a single (field, reason) pair. Limit is only meaningful for MaxLength.
type FieldError struct {
	Field string
	Kind  Kind
	Limit int
}

// Message renders the user-facing text shown next to the field.
func (e FieldError) Message() string {
	switch e.Kind {
	case RequiredField:
		return fmt.Sprintf("The %s field is required.", e.Field)
	case MaxLength:
		return fmt.Sprintf("The %s may not be greater than %d characters.", e.Field, e.Limit)
	case InvalidFormat:
		return fmt.Sprintf("The %s format is invalid.", e.Field)
	default:
		return fmt.Sprintf("The %s is invalid.", e.Field)
	}
}

// Errors maps a field name to every rule it failed, in rule order.
type Errors map[string][]FieldError

func (e Errors) Add(fe FieldError) {
	e[fe.Field] = append(e[fe.Field], fe)
}

func (e Errors) Has(field string) bool {
	return len(e[field]) > 0
}

// First returns the first message recorded for field, or "" if the field passed.
func (e Errors) First(field string) string {
	if !e.Has(field) {
		return ""
	}
	return e[field][0].Message()
}

// Fields returns the names of the failing fields, sorted.
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Messages flattens the errors into the field -> messages shape used by the JSON API.
func (e Errors) Messages() map[string][]string {
	out := make(map[string][]string, len(e))
	for field, errs := range e {
		for _, fe := range errs {
			out[field] = append(out[field], fe.Message())
		}
	}
	return out
}

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, field := range e.Fields() {
		for _, fe := range e[field] {
			parts = append(parts, fe.Message())
		}
	}
	return "validation failed: " + strings.Join(parts, " ")
}
