package form

import "github.com/dmitrijs2005/myrecords/internal/client/codec"

// ChangeEvent is what a field emits for every accepted input, shaped like
// a native change event so the draft does not care which mask produced it.
type ChangeEvent struct {
	Name string
	// Value is the masked display string kept in the draft.
	Value string
	// Canonical is the value the backend would receive, or "" with
	// ParseErr set when the input is not complete yet.
	Canonical string
	ParseErr  error
}

// Field is a controlled text field. A nil Codec means plain text.
type Field struct {
	Name  string
	Label string
	Codec codec.Codec
}

// Accept masks raw input and returns the resulting change event.
func (f Field) Accept(raw string) ChangeEvent {
	if f.Codec == nil {
		return ChangeEvent{Name: f.Name, Value: raw, Canonical: raw}
	}
	display := f.Codec.Mask(raw)
	canonical, err := f.Codec.Parse(display)
	return ChangeEvent{Name: f.Name, Value: display, Canonical: canonical, ParseErr: err}
}

// Input accepts raw into d and returns the event that was applied.
func (f Field) Input(d *Draft, raw string) ChangeEvent {
	ev := f.Accept(raw)
	d.Apply(ev)
	return ev
}

// Seed stores a canonical value in d in its display form.
func (f Field) Seed(d *Draft, canonical string) {
	if f.Codec == nil {
		d.Set(f.Name, canonical)
		return
	}
	d.Set(f.Name, f.Codec.Format(canonical))
}
