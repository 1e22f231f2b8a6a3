// Package form holds the transient state of an open form: raw field values
// plus one error message per field.
package form

import "maps"

// Draft is the in-memory state of an open form. Values are strings for
// text fields and bools for toggles. Errors hold one message per field
// whatever produced it, local validation or a server rejection.
type Draft struct {
	values map[string]any
	errors map[string]string
}

// NewDraft starts a draft from defaults. The map is copied.
func NewDraft(defaults map[string]any) *Draft {
	d := &Draft{}
	d.Reset(defaults)
	return d
}

// Reset replaces all values and drops all errors.
func (d *Draft) Reset(values map[string]any) {
	d.values = maps.Clone(values)
	if d.values == nil {
		d.values = map[string]any{}
	}
	d.errors = map[string]string{}
}

func (d *Draft) Set(name string, value any) {
	d.values[name] = value
}

// Apply stores the display value carried by a field change event.
func (d *Draft) Apply(ev ChangeEvent) {
	d.values[ev.Name] = ev.Value
}

func (d *Draft) Value(name string) (any, bool) {
	v, ok := d.values[name]
	return v, ok
}

// String returns the field as text; non-string values yield "".
func (d *Draft) String(name string) string {
	s, _ := d.values[name].(string)
	return s
}

// Bool returns the field as a toggle; non-bool values yield false.
func (d *Draft) Bool(name string) bool {
	b, _ := d.values[name].(bool)
	return b
}

// Values returns a copy of all values.
func (d *Draft) Values() map[string]any {
	return maps.Clone(d.values)
}

// SetError records msg as the error shown for field, replacing any
// previous one.
func (d *Draft) SetError(field, msg string) {
	d.errors[field] = msg
}

func (d *Draft) Error(field string) string {
	return d.errors[field]
}

// Errors returns a copy of the field errors.
func (d *Draft) Errors() map[string]string {
	return maps.Clone(d.errors)
}

func (d *Draft) HasErrors() bool {
	return len(d.errors) > 0
}

func (d *Draft) ClearErrors() {
	clear(d.errors)
}
