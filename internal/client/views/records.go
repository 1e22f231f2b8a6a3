package views

import (
	"context"
	"slices"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/dmitrijs2005/myrecords/internal/client/codec"
	"github.com/dmitrijs2005/myrecords/internal/client/form"
	"github.com/dmitrijs2005/myrecords/internal/client/models"
	"github.com/dmitrijs2005/myrecords/internal/client/services"
	"github.com/dmitrijs2005/myrecords/internal/client/validation"
	"github.com/dmitrijs2005/myrecords/internal/logging"
)

type State int

const (
	Idle State = iota
	Listing
	ModalOpen
	ConfirmOpen
	Submitting
	Error
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Listing:
		return "listing"
	case ModalOpen:
		return "modal"
	case ConfirmOpen:
		return "confirm"
	case Submitting:
		return "submitting"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

type Mode int

const (
	ModeNone Mode = iota
	ModeCreate
	ModeEdit
)

func (m Mode) String() string {
	switch m {
	case ModeCreate:
		return "create"
	case ModeEdit:
		return "edit"
	default:
		return "none"
	}
}

const (
	MsgRecordCreated  = "Record created successfully!"
	MsgRecordUpdated  = "Record updated successfully!"
	MsgRecordDeleted  = "Record deleted successfully!"
	MsgRecordFailed   = "Failed to save record. Please try again."
	MsgDeleteFailed   = "Failed to delete record. Please try again."
	MsgInvalidAmount  = "Invalid amount"
	fetchAllFlightKey = "records"
)

// RecordsView is the records screen: the list plus the create/edit modal
// and the delete confirmation. Every mutation ends with a full refetch.
//
// The view is safe for concurrent use. Its lock is never held across a
// network call; the Submitting state keeps a second mutation out.
type RecordsView struct {
	svc      services.RecordService
	notify   Notifier
	log      logging.Logger
	currency *codec.Currency
	fields   []form.Field
	fetches  singleflight.Group

	mu        sync.Mutex
	state     State
	records   []models.Record
	mode      Mode
	editID    int64
	draft     *form.Draft
	confirmID int64
}

func NewRecordsView(svc services.RecordService, notify Notifier, log logging.Logger) *RecordsView {
	cur := codec.NewCurrency()
	return &RecordsView{
		svc:      svc,
		notify:   notify,
		log:      log.With("view", "records"),
		currency: cur,
		fields:   recordFields(cur),
		state:    Idle,
	}
}

// Mount loads the list. A failure is logged and leaves the list empty.
func (v *RecordsView) Mount(ctx context.Context) {
	v.mu.Lock()
	v.records = nil
	v.mu.Unlock()
	v.refresh(ctx)
}

// refresh runs a fetch-all; concurrent callers share one request.
func (v *RecordsView) refresh(ctx context.Context) {
	res, err, _ := v.fetches.Do(fetchAllFlightKey, func() (any, error) {
		return v.svc.List(ctx)
	})

	v.mu.Lock()
	defer v.mu.Unlock()

	if err != nil {
		v.log.Error(ctx, "fetch records", "error", err)
		if v.state == Idle || v.state == Listing {
			v.state = Error
		}
		return
	}
	v.records = slices.Clone(res.([]models.Record))
	if v.state == Idle || v.state == Error {
		v.state = Listing
	}
}

func (v *RecordsView) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *RecordsView) Mode() Mode {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.mode
}

// Records returns a copy of the current list.
func (v *RecordsView) Records() []models.Record {
	v.mu.Lock()
	defer v.mu.Unlock()
	return slices.Clone(v.records)
}

// Fields lists the modal's text fields in prompt order.
func (v *RecordsView) Fields() []form.Field {
	return slices.Clone(v.fields)
}

// FormatValue renders an amount the way the list and the modal show it.
func (v *RecordsView) FormatValue(a models.Amount) string {
	return v.currency.FormatAmount(a.Float64())
}

// Form returns the open draft, or an empty state when no modal is open.
func (v *RecordsView) Form() FormState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return snapshot(v.draft)
}

// OpenCreate opens the modal with a blank draft, dropping any pending
// delete confirmation.
func (v *RecordsView) OpenCreate() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state == Submitting {
		return ErrBusy
	}
	v.mode = ModeCreate
	v.editID = 0
	v.confirmID = 0
	v.draft = form.NewDraft(map[string]any{
		validation.FieldDescription: "",
		validation.FieldDueDate:     "",
		validation.FieldValue:       "",
		validation.FieldPaidOut:     false,
	})
	v.state = ModalOpen
	return nil
}

// OpenEdit opens the modal seeded with the listed record id.
func (v *RecordsView) OpenEdit(id int64) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state == Submitting {
		return ErrBusy
	}
	i := slices.IndexFunc(v.records, func(r models.Record) bool { return r.ID == id })
	if i < 0 {
		return ErrRecordNotFound
	}
	r := v.records[i]

	v.mode = ModeEdit
	v.editID = id
	v.confirmID = 0
	v.draft = form.NewDraft(map[string]any{
		validation.FieldDescription: r.Description,
		validation.FieldDueDate:     r.DueDate,
		validation.FieldValue:       v.currency.FormatAmount(r.Value.Float64()),
		validation.FieldPaidOut:     r.PaidOut,
	})
	v.state = ModalOpen
	return nil
}

// Input feeds raw text into a modal field through its mask.
func (v *RecordsView) Input(name, raw string) (form.ChangeEvent, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state == Submitting {
		return form.ChangeEvent{}, ErrBusy
	}
	if v.state != ModalOpen {
		return form.ChangeEvent{}, ErrNoForm
	}
	return input(v.fields, v.draft, name, raw), nil
}

func (v *RecordsView) SetPaidOut(paid bool) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state == Submitting {
		return ErrBusy
	}
	if v.state != ModalOpen {
		return ErrNoForm
	}
	v.draft.Set(validation.FieldPaidOut, paid)
	return nil
}

// CloseModal discards the draft.
func (v *RecordsView) CloseModal() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state == Submitting {
		return ErrBusy
	}
	if v.state != ModalOpen {
		return ErrNoForm
	}
	v.closeModalLocked()
	return nil
}

func (v *RecordsView) closeModalLocked() {
	v.mode = ModeNone
	v.editID = 0
	v.draft = nil
	v.state = Listing
}

// Submit validates the draft, converts it to the wire payload and sends
// a create or an update. On success the modal closes and the list is
// refetched. On failure the modal stays open with the draft; field
// rejections land on the draft, anything else is notified.
func (v *RecordsView) Submit(ctx context.Context) error {
	v.mu.Lock()
	if v.state == Submitting {
		v.mu.Unlock()
		return ErrBusy
	}
	if v.state != ModalOpen {
		v.mu.Unlock()
		return ErrNoForm
	}
	payload, ok := v.payloadLocked()
	if !ok {
		v.mu.Unlock()
		return ErrInvalidForm
	}
	mode, id := v.mode, v.editID
	v.state = Submitting
	v.mu.Unlock()

	var err error
	if mode == ModeEdit {
		_, err = v.svc.Update(ctx, id, payload)
	} else {
		_, err = v.svc.Create(ctx, payload)
	}

	v.mu.Lock()
	if err != nil {
		v.state = ModalOpen
		merged := mergeFieldErrors(v.draft, err)
		v.mu.Unlock()

		v.log.Warn(ctx, "save record", "mode", mode, "id", id, "error", err)
		if !merged {
			v.notify.Error(MsgRecordFailed)
		}
		return err
	}
	v.closeModalLocked()
	v.mu.Unlock()

	if mode == ModeEdit {
		v.notify.Success(MsgRecordUpdated)
	} else {
		v.notify.Success(MsgRecordCreated)
	}
	v.refresh(ctx)
	return nil
}

// payloadLocked validates the draft and builds the request body. The due
// date is passed through as typed; the value goes through the currency
// parser.
func (v *RecordsView) payloadLocked() (models.RecordPayload, bool) {
	if !validation.Record.Apply(v.draft) {
		return models.RecordPayload{}, false
	}
	amount, err := v.currency.ParseAmount(v.draft.String(validation.FieldValue))
	if err != nil {
		v.draft.SetError(validation.FieldValue, MsgInvalidAmount)
		return models.RecordPayload{}, false
	}
	return models.RecordPayload{
		Description: v.draft.String(validation.FieldDescription),
		DueDate:     v.draft.String(validation.FieldDueDate),
		Value:       amount,
		PaidOut:     v.draft.Bool(validation.FieldPaidOut),
	}, true
}

// RequestDelete opens the confirmation for id. Nothing is sent yet. An
// open modal must be submitted or closed first.
func (v *RecordsView) RequestDelete(id int64) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state == Submitting {
		return ErrBusy
	}
	if v.state == ModalOpen {
		return ErrFormOpen
	}
	v.confirmID = id
	v.state = ConfirmOpen
	return nil
}

// PendingDelete reports the id awaiting confirmation.
func (v *RecordsView) PendingDelete() (int64, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.confirmID, v.state == ConfirmOpen
}

func (v *RecordsView) CancelDelete() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state == Submitting {
		return ErrBusy
	}
	if v.state != ConfirmOpen {
		return ErrNoConfirmation
	}
	v.confirmID = 0
	v.state = Listing
	return nil
}

// ConfirmDelete deletes the pending record and refetches the list whatever
// the outcome.
func (v *RecordsView) ConfirmDelete(ctx context.Context) error {
	v.mu.Lock()
	if v.state == Submitting {
		v.mu.Unlock()
		return ErrBusy
	}
	if v.state != ConfirmOpen {
		v.mu.Unlock()
		return ErrNoConfirmation
	}
	id := v.confirmID
	v.state = Submitting
	v.mu.Unlock()

	err := v.svc.Delete(ctx, id)

	v.mu.Lock()
	v.confirmID = 0
	v.state = Listing
	v.mu.Unlock()

	if err != nil {
		v.log.Warn(ctx, "delete record", "id", id, "error", err)
		v.notify.Error(MsgDeleteFailed)
	} else {
		v.notify.Success(MsgRecordDeleted)
	}
	v.refresh(ctx)
	return err
}
