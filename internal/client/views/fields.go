package views

import (
	"github.com/dmitrijs2005/myrecords/internal/client/codec"
	"github.com/dmitrijs2005/myrecords/internal/client/form"
	"github.com/dmitrijs2005/myrecords/internal/client/validation"
)

// Field sets in prompt order. Toggles such as paid_out are not listed.

func recordFields(cur *codec.Currency) []form.Field {
	return []form.Field{
		{Name: validation.FieldDescription, Label: "Description"},
		{Name: validation.FieldDueDate, Label: "Due date (DD-MM-YYYY)"},
		{Name: validation.FieldValue, Label: "Value", Codec: cur},
	}
}

var loginFields = []form.Field{
	{Name: validation.FieldEmail, Label: "Email"},
	{Name: validation.FieldPassword, Label: "Password"},
}

func userFields(phone codec.Phone) []form.Field {
	return []form.Field{
		{Name: validation.FieldFirstName, Label: "First name"},
		{Name: validation.FieldLastName, Label: "Last name"},
		{Name: validation.FieldEmail, Label: "Email"},
		{Name: validation.FieldCPF, Label: "CPF", Codec: codec.CPF{}},
		{Name: validation.FieldPhone, Label: "Phone", Codec: phone},
		{Name: validation.FieldPassword, Label: "Password"},
	}
}

var passwordFields = []form.Field{
	{Name: validation.FieldPassword, Label: "Current password"},
	{Name: validation.FieldNewPassword, Label: "New password"},
	{Name: validation.FieldConfirmNewPassword, Label: "Confirm new password"},
}

func lookup(fields []form.Field, name string) (form.Field, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return form.Field{}, false
}

// input routes raw text to the named field, or stores it verbatim when the
// field is unknown.
func input(fields []form.Field, d *form.Draft, name, raw string) form.ChangeEvent {
	f, ok := lookup(fields, name)
	if !ok {
		f = form.Field{Name: name}
	}
	return f.Input(d, raw)
}
