// Package validation checks untrusted form values against ordered, named rules
// and collects every violation instead of stopping at the first one.
package validation

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

const absoluteURLTag = "absurl"

// Rule is one named check run through the validator engine.
type Rule struct {
	Tag   string
	Kind  Kind
	Limit int
}

func Required() Rule {
	return Rule{Tag: "required", Kind: RequiredField}
}

// MaxLen limits a value to n characters (runes, not bytes).
func MaxLen(n int) Rule {
	return Rule{Tag: fmt.Sprintf("max=%d", n), Kind: MaxLength, Limit: n}
}

// AbsoluteURL requires a scheme and a host: "//host", "/path" and "foo.com" all fail.
func AbsoluteURL() Rule {
	return Rule{Tag: absoluteURLTag, Kind: InvalidFormat}
}

// Field is a form field and the rules it must satisfy, evaluated in order.
type Field struct {
	Name  string
	Rules []Rule
}

// Validator wraps a go-playground validator with the custom tags registered.
type Validator struct {
	engine *validator.Validate
}

// New returns a Validator ready to run Required, MaxLen and AbsoluteURL rules.
func New() *Validator {
	engine := validator.New(validator.WithRequiredStructEnabled())
	if err := engine.RegisterValidation(absoluteURLTag, isAbsoluteURL); err != nil {
		panic(fmt.Sprintf("validation: register %s: %v", absoluteURLTag, err))
	}
	return &Validator{engine: engine}
}

// Check validates values against fields. Every field is checked independently.
// Within a field a failed Required rule ends that field's checks, and a blank
// optional field is skipped; otherwise all failing rules are reported.
func (v *Validator) Check(fields []Field, values map[string]string) Errors {
	errs := Errors{}
	for _, field := range fields {
		value := values[field.Name]
		trimmed := strings.TrimSpace(value)

		for _, rule := range field.Rules {
			if rule.Kind == RequiredField {
				// whitespace-only input counts as absent
				if err := v.engine.Var(trimmed, rule.Tag); err != nil {
					errs.Add(FieldError{Field: field.Name, Kind: RequiredField})
					break
				}
				continue
			}
			if trimmed == "" {
				break
			}
			if err := v.engine.Var(value, rule.Tag); err != nil {
				errs.Add(FieldError{Field: field.Name, Kind: rule.Kind, Limit: rule.Limit})
			}
		}
	}
	return errs
}

func isAbsoluteURL(fl validator.FieldLevel) bool {
	u, err := url.Parse(fl.Field().String())
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
