package services

import (
	"sync"

	"guestadmin/internal/domain"
)

// ModalKind is the single workflow state of a page. Exactly one modal
// can be open at a time.
type ModalKind string

const (
	ModalClosed ModalKind = "closed"
	ModalDetail ModalKind = "detail"
	ModalAdd    ModalKind = "add"
	ModalEdit   ModalKind = "edit"
	ModalDelete ModalKind = "delete"
	ModalStatus ModalKind = "status"
)

// SubmitOptions controls what happens when the mutation itself fails.
// Field validation failures always keep the modal open.
type SubmitOptions struct {
	CloseOnError bool
}

// Modal drives one page's workflow dialogs. Safe for concurrent use;
// only one submission runs at a time.
type Modal struct {
	mu     sync.Mutex
	kind   ModalKind
	busy   bool
	fields domain.FieldErrors
	notice string
}

func NewModal() *Modal {
	return &Modal{kind: ModalClosed}
}

func (m *Modal) Kind() ModalKind {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.kind
}

// FieldErrors returns the messages from the last failed validation.
func (m *Modal) FieldErrors() domain.FieldErrors {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.fields) == 0 {
		return nil
	}
	out := domain.FieldErrors{}
	for k, v := range m.fields {
		out[k] = v
	}
	return out
}

// Notice returns the message from the last failed mutation.
func (m *Modal) Notice() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notice
}

// Open switches to the given workflow, clearing any previous errors.
// Opening is refused while a submission is in flight.
func (m *Modal) Open(kind ModalKind) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.busy {
		return domain.ConflictError{Resource: "modal", Msg: "submission in progress"}
	}
	m.kind = kind
	m.fields = nil
	m.notice = ""
	return nil
}

func (m *Modal) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.busy {
		return
	}
	m.kind = ModalClosed
	m.fields = nil
	m.notice = ""
}

// Submit runs the workflow's validation and, when it passes, the
// mutation. Validation failure keeps the modal open with per-field
// messages and performs no network call. Mutation failure records the
// notice and closes only when opts.CloseOnError is set. Success always
// closes.
func (m *Modal) Submit(opts SubmitOptions, validate func() domain.FieldErrors, action func() error) error {
	m.mu.Lock()
	if m.kind == ModalClosed {
		m.mu.Unlock()
		return domain.ConflictError{Resource: "modal", Msg: "no modal open"}
	}
	if m.busy {
		m.mu.Unlock()
		return domain.ConflictError{Resource: "modal", Msg: "submission in progress"}
	}
	m.busy = true
	m.mu.Unlock()

	if validate != nil {
		if fields := validate(); len(fields) > 0 {
			m.mu.Lock()
			m.fields = fields
			m.busy = false
			m.mu.Unlock()
			return fields
		}
	}

	err := action()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.busy = false
	if err != nil {
		if fields, ok := domain.AsFieldErrors(err); ok {
			// Backend-side validation renders exactly like local validation.
			m.fields = fields
			return err
		}
		m.notice = err.Error()
		if opts.CloseOnError {
			m.kind = ModalClosed
		}
		return err
	}
	m.kind = ModalClosed
	m.fields = nil
	m.notice = ""
	return nil
}
