package validation

import "github.com/dmitrijs2005/myrecords/internal/client/form"

const (
	MsgRequired         = "This field must be filled"
	MsgPasswordMismatch = "Passwords do not match"
	MsgCPFIncomplete    = "CPF must have 11 digits"
	MsgNotText          = "This field must be text"
	MsgNotToggle        = "This field must be yes or no"
)

// Form field names. They double as the keys the backend uses in its
// per-field error details.
const (
	FieldEmail              = "email"
	FieldPassword           = "password"
	FieldFirstName          = "firstName"
	FieldLastName           = "lastName"
	FieldCPF                = "cpf"
	FieldPhone              = "phone"
	FieldNewPassword        = "newPassword"
	FieldConfirmNewPassword = "confirmNewPassword"
	FieldDescription        = "description"
	FieldDueDate            = "due_date"
	FieldValue              = "value"
	FieldPaidOut            = "paid_out"
)

func requiredText(name string) FieldRules {
	return Field(name, String(MsgNotText), Required(MsgRequired))
}

var Login = Schema{
	Name: "login",
	Fields: []FieldRules{
		requiredText(FieldEmail),
		requiredText(FieldPassword),
	},
}

// User serves both sign-up and profile editing.
var User = Schema{
	Name: "user",
	Fields: []FieldRules{
		requiredText(FieldFirstName),
		requiredText(FieldLastName),
		requiredText(FieldEmail),
		Field(FieldCPF, String(MsgNotText), MinDigits(11, MsgCPFIncomplete)),
		Field(FieldPhone, String(MsgNotText)),
		requiredText(FieldPassword),
	},
}

var NewPassword = Schema{
	Name: "new_password",
	Fields: []FieldRules{
		requiredText(FieldPassword),
		requiredText(FieldNewPassword),
		requiredText(FieldConfirmNewPassword),
	},
}

// Record requires paid_out like the other fields; since every toggle is
// present, that rule never fails on a draft created with a default.
var Record = Schema{
	Name: "record",
	Fields: []FieldRules{
		requiredText(FieldDescription),
		requiredText(FieldDueDate),
		requiredText(FieldValue),
		Field(FieldPaidOut, Boolean(MsgNotToggle), Required(MsgRequired)),
	},
}

// CheckPasswordConfirmation compares the new password with its
// confirmation and sets an error on the confirmation field when they
// differ. It runs after the schema, at submit time only.
func CheckPasswordConfirmation(d *form.Draft) bool {
	if d.String(FieldNewPassword) != d.String(FieldConfirmNewPassword) {
		d.SetError(FieldConfirmNewPassword, MsgPasswordMismatch)
		return false
	}
	return true
}
