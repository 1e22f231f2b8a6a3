// Package validation is a small declarative rule engine for forms. A Schema
// lists fields in display order; every field carries an ordered list of
// rules and the first failing rule supplies the field's message.
package validation

import (
	"github.com/dmitrijs2005/myrecords/internal/client/codec"
	"github.com/dmitrijs2005/myrecords/internal/client/form"
)

// Rule is a predicate over a single field value paired with the message
// shown when it fails. present is false when the field is missing.
type Rule struct {
	Check   func(v any, present bool) bool
	Message string
}

// Required fails for a missing field, nil or an empty string. Any bool is
// present, so a toggle left at false satisfies it.
func Required(msg string) Rule {
	return Rule{Message: msg, Check: func(v any, present bool) bool {
		if !present || v == nil {
			return false
		}
		if s, ok := v.(string); ok {
			return s != ""
		}
		return true
	}}
}

// String fails when a present value is not text.
func String(msg string) Rule {
	return Rule{Message: msg, Check: func(v any, present bool) bool {
		if !present || v == nil {
			return true
		}
		_, ok := v.(string)
		return ok
	}}
}

// Boolean fails when a present value is not a toggle.
func Boolean(msg string) Rule {
	return Rule{Message: msg, Check: func(v any, present bool) bool {
		if !present || v == nil {
			return true
		}
		_, ok := v.(bool)
		return ok
	}}
}

// MinDigits fails when a non-empty text value holds fewer than n digits.
// Empty values pass so optional masked fields can be left blank.
func MinDigits(n int, msg string) Rule {
	return Rule{Message: msg, Check: func(v any, present bool) bool {
		s, ok := v.(string)
		if !present || !ok || s == "" {
			return true
		}
		return len(codec.Digits(s)) >= n
	}}
}

// FieldRules binds an ordered rule list to a field name.
type FieldRules struct {
	Field string
	Rules []Rule
}

func Field(name string, rules ...Rule) FieldRules {
	return FieldRules{Field: name, Rules: rules}
}

// Schema is an ordered set of field rules.
type Schema struct {
	Name   string
	Fields []FieldRules
}

// Result lists the first failing message per field.
type Result struct {
	Valid  bool
	Errors map[string]string
}

// Validate checks values against every field of the schema.
func (s Schema) Validate(values map[string]any) Result {
	res := Result{Valid: true, Errors: map[string]string{}}
	for _, f := range s.Fields {
		v, present := values[f.Field]
		for _, r := range f.Rules {
			if !r.Check(v, present) {
				res.Errors[f.Field] = r.Message
				res.Valid = false
				break
			}
		}
	}
	return res
}

// Apply clears the draft's errors, validates it and records every failure
// through the draft's error channel. It reports whether the draft is valid.
func (s Schema) Apply(d *form.Draft) bool {
	d.ClearErrors()
	res := s.Validate(d.Values())
	for field, msg := range res.Errors {
		d.SetError(field, msg)
	}
	return res.Valid
}
