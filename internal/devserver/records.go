package devserver

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/myrecords/internal/devserver/store"
)

// Record statuses, computed on every read.
const (
	StatusPending = "Pendente"
	StatusOverdue = "Vencida"
	StatusPaid    = "Paga"
)

const (
	dateLayout    = "02-01-2006"
	isoDateLayout = "2006-01-02"
	msgBadDate    = "Date must be DD-MM-YYYY"
	msgBadValue   = "Value must not be negative"
)

// recordRequest uses pointers so a missing field is told apart from a
// zero value.
type recordRequest struct {
	Description *string  `json:"description"`
	DueDate     *string  `json:"due_date"`
	Value       *float64 `json:"value"`
	PaidOut     *bool    `json:"paid_out"`
}

// recordResponse sends value as a decimal string, as SQL-backed services do.
type recordResponse struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Value       string `json:"value"`
	PaidOut     bool   `json:"paid_out"`
	Status      string `json:"status"`
}

// parseDueDate accepts DD-MM-YYYY or YYYY-MM-DD.
func parseDueDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{dateLayout, isoDateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// recordStatus is Paga when paid, Vencida when the due date is before
// today, else Pendente.
func recordStatus(dueDate string, paid bool, now time.Time) string {
	if paid {
		return StatusPaid
	}
	due, ok := parseDueDate(dueDate)
	if !ok {
		return StatusPending
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if due.Before(today) {
		return StatusOverdue
	}
	return StatusPending
}

func (s *Server) toRecordResponse(r store.Record) recordResponse {
	return recordResponse{
		ID:          r.ID,
		Description: r.Description,
		DueDate:     r.DueDate,
		Value:       strconv.FormatFloat(r.Value, 'f', 2, 64),
		PaidOut:     r.PaidOut,
		Status:      recordStatus(r.DueDate, r.PaidOut, s.now()),
	}
}

func (in recordRequest) toRecord() (store.Record, []fieldError) {
	var (
		rec     store.Record
		details []fieldError
	)
	if in.Description == nil || strings.TrimSpace(*in.Description) == "" {
		details = append(details, fieldError{Type: "description", Message: msgRequired})
	} else {
		rec.Description = strings.TrimSpace(*in.Description)
	}

	switch {
	case in.DueDate == nil || strings.TrimSpace(*in.DueDate) == "":
		details = append(details, fieldError{Type: "due_date", Message: msgRequired})
	default:
		due, ok := parseDueDate(*in.DueDate)
		if !ok {
			details = append(details, fieldError{Type: "due_date", Message: msgBadDate})
		} else {
			rec.DueDate = due.Format(dateLayout)
		}
	}

	switch {
	case in.Value == nil:
		details = append(details, fieldError{Type: "value", Message: msgRequired})
	case *in.Value < 0:
		details = append(details, fieldError{Type: "value", Message: msgBadValue})
	default:
		rec.Value = *in.Value
	}

	if in.PaidOut != nil {
		rec.PaidOut = *in.PaidOut
	}
	return rec, details
}

func recordID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeMessage(w, http.StatusNotFound, "record not found")
		return 0, false
	}
	return id, true
}

// listRecords: GET /api/records
func (s *Server) listRecords(w http.ResponseWriter, r *http.Request) {
	records := s.store.Records(userIDFrom(r.Context()))
	out := make([]recordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, s.toRecordResponse(rec))
	}
	writeJSON(w, http.StatusOK, out)
}

// getRecord: GET /api/records/{id}
func (s *Server) getRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := recordID(w, r)
	if !ok {
		return
	}
	rec, err := s.store.Record(userIDFrom(r.Context()), id)
	if err != nil {
		s.storeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s.toRecordResponse(rec))
}

// createRecord: POST /api/records
func (s *Server) createRecord(w http.ResponseWriter, r *http.Request) {
	var in recordRequest
	if err := decodeBody(w, r, &in); err != nil {
		writeMessage(w, http.StatusBadRequest, "malformed body")
		return
	}
	rec, details := in.toRecord()
	if len(details) > 0 {
		writeDetails(w, http.StatusBadRequest, details)
		return
	}
	rec.UserID = userIDFrom(r.Context())
	writeJSON(w, http.StatusCreated, s.toRecordResponse(s.store.CreateRecord(rec)))
}

// updateRecord: PUT /api/records/{id}
func (s *Server) updateRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := recordID(w, r)
	if !ok {
		return
	}
	var in recordRequest
	if err := decodeBody(w, r, &in); err != nil {
		writeMessage(w, http.StatusBadRequest, "malformed body")
		return
	}
	rec, details := in.toRecord()
	if len(details) > 0 {
		writeDetails(w, http.StatusBadRequest, details)
		return
	}
	rec.ID = id
	rec.UserID = userIDFrom(r.Context())

	saved, err := s.store.UpdateRecord(rec)
	if err != nil {
		s.storeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s.toRecordResponse(saved))
}

// deleteRecord: DELETE /api/records/{id}
func (s *Server) deleteRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := recordID(w, r)
	if !ok {
		return
	}
	if err := s.store.DeleteRecord(userIDFrom(r.Context()), id); err != nil {
		s.storeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
