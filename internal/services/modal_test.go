package services

import (
	"testing"

	"guestadmin/internal/domain"
)

func TestModalStartsClosed(t *testing.T) {
	m := NewModal()
	if m.Kind() != ModalClosed {
		t.Fatalf("expected closed, got %s", m.Kind())
	}
}

func TestModalSubmitRequiresOpen(t *testing.T) {
	m := NewModal()
	err := m.Submit(SubmitOptions{}, nil, func() error { return nil })
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict for closed modal, got %v", err)
	}
}

func TestModalValidationKeepsOpen(t *testing.T) {
	m := NewModal()
	if err := m.Open(ModalAdd); err != nil {
		t.Fatalf("open failed: %v", err)
	}

	called := false
	err := m.Submit(SubmitOptions{}, func() domain.FieldErrors {
		fields := domain.FieldErrors{}
		fields.Set("name", "Name is required")
		return fields
	}, func() error {
		called = true
		return nil
	})

	if err == nil {
		t.Fatalf("expected validation error")
	}
	if called {
		t.Fatalf("mutation must not run when validation fails")
	}
	if m.Kind() != ModalAdd {
		t.Fatalf("modal should stay open, got %s", m.Kind())
	}
	if m.FieldErrors()["name"] != "Name is required" {
		t.Fatalf("field message lost: %v", m.FieldErrors())
	}
}

func TestModalSuccessCloses(t *testing.T) {
	m := NewModal()
	m.Open(ModalEdit)

	if err := m.Submit(SubmitOptions{}, nil, func() error { return nil }); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if m.Kind() != ModalClosed {
		t.Fatalf("successful submit should close, got %s", m.Kind())
	}
}

func TestModalMutationFailureStaysOpen(t *testing.T) {
	m := NewModal()
	m.Open(ModalStatus)

	err := m.Submit(SubmitOptions{CloseOnError: false}, nil, func() error {
		return domain.InternalError{Msg: "backend unreachable"}
	})
	if err == nil {
		t.Fatalf("expected mutation error")
	}
	if m.Kind() != ModalStatus {
		t.Fatalf("modal should stay open for retry, got %s", m.Kind())
	}
	if m.Notice() == "" {
		t.Fatalf("expected a notice after mutation failure")
	}
}

func TestModalMutationFailureClosesWhenRequested(t *testing.T) {
	m := NewModal()
	m.Open(ModalDelete)

	err := m.Submit(SubmitOptions{CloseOnError: true}, nil, func() error {
		return domain.InternalError{Msg: "backend unreachable"}
	})
	if err == nil {
		t.Fatalf("expected mutation error")
	}
	if m.Kind() != ModalClosed {
		t.Fatalf("delete dialog should close on failure, got %s", m.Kind())
	}
}

func TestModalBackendFieldErrorsRender(t *testing.T) {
	m := NewModal()
	m.Open(ModalAdd)

	fields := domain.FieldErrors{}
	fields.Set("email", "user with this email already exists.")
	err := m.Submit(SubmitOptions{}, nil, func() error { return fields })
	if err == nil {
		t.Fatalf("expected error")
	}
	if m.Kind() != ModalAdd {
		t.Fatalf("backend validation should keep modal open")
	}
	if m.FieldErrors()["email"] == "" {
		t.Fatalf("backend field message lost")
	}
}

func TestModalSingleFlight(t *testing.T) {
	m := NewModal()
	m.Open(ModalAdd)

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- m.Submit(SubmitOptions{}, nil, func() error {
			close(started)
			<-release
			return nil
		})
	}()

	<-started
	second := m.Submit(SubmitOptions{}, nil, func() error { return nil })
	if !domain.IsConflict(second) {
		t.Fatalf("concurrent submit should conflict, got %v", second)
	}
	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
}
