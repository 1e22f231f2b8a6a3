package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// RecordStatus is computed by the backend; the client only displays it.
type RecordStatus string

const (
	StatusPending RecordStatus = "Pendente"
	StatusOverdue RecordStatus = "Vencida"
	StatusPaid    RecordStatus = "Paga"
)

// Record is a single financial record as listed by the backend.
type Record struct {
	ID          int64        `json:"id"`
	Description string       `json:"description"`
	DueDate     string       `json:"due_date"`
	Value       Amount       `json:"value"`
	PaidOut     bool         `json:"paid_out"`
	Status      RecordStatus `json:"status,omitempty"`
}

// RecordPayload is the body of the create and update requests. ID and
// Status are owned by the backend and never sent.
type RecordPayload struct {
	Description string  `json:"description"`
	DueDate     string  `json:"due_date"`
	Value       float64 `json:"value"`
	PaidOut     bool    `json:"paid_out"`
}

// Amount is a currency value. Backends that store decimals tend to
// serialise them as strings, so both `12.5` and `"12.50"` decode.
type Amount float64

func (a Amount) Float64() float64 { return float64(a) }

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*a = 0
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("amount %q: %w", s, err)
		}
		*a = Amount(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*a = Amount(v)
	return nil
}
