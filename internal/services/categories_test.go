package services

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"guestadmin/internal/domain"
)

func TestCategoryCreateValidationSkipsBackend(t *testing.T) {
	requests := 0
	client := orderBackend(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`{}`))
	})
	svc := NewCategoryService(client)

	err := svc.Create(context.Background(), CategoryForm{Name: "   "})
	fields, ok := domain.AsFieldErrors(err)
	if !ok {
		t.Fatalf("expected field errors, got %v", err)
	}
	if fields["name"] != "Category name is required" {
		t.Fatalf("name message: %q", fields["name"])
	}
	if requests != 0 {
		t.Fatalf("invalid form must not reach the backend, saw %d requests", requests)
	}
}

func TestCategoryCreateSendsPayload(t *testing.T) {
	var got map[string]string
	client := orderBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/categories/" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{"id":3,"name":"Toiletries"}`))
	})
	svc := NewCategoryService(client)

	if err := svc.Create(context.Background(), CategoryForm{
		Name: "  Toiletries ", Description: "Bathroom supplies",
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if got["name"] != "Toiletries" || got["description"] != "Bathroom supplies" {
		t.Fatalf("unexpected payload: %v", got)
	}
	if svc.Modal.Kind() != ModalClosed {
		t.Fatalf("dialog should close on success, got %s", svc.Modal.Kind())
	}
}

func TestCategoryDeleteClosesOnFailure(t *testing.T) {
	client := orderBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"detail":"Category is still referenced."}`))
	})
	svc := NewCategoryService(client)

	err := svc.Delete(context.Background(), 3)
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
	if svc.Modal.Kind() != ModalClosed {
		t.Fatalf("confirm dialog should close, got %s", svc.Modal.Kind())
	}
}
