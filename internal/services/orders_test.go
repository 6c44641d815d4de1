package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"guestadmin/internal/backend"
	"guestadmin/internal/domain"
	"guestadmin/internal/listview"
)

func orderBackend(t *testing.T, handler http.HandlerFunc) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return backend.NewClient(srv.URL, 5*time.Second)
}

func TestOrderListResetsPageOnFilterChange(t *testing.T) {
	client := orderBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[
			{"id":1,"order_number":"ORD-001","status":"P","total_amount":"10.00"},
			{"id":2,"order_number":"ORD-002","status":"P","total_amount":"20.00"},
			{"id":3,"order_number":"ORD-003","status":"C","total_amount":"30.00"}
		]}`))
	})
	svc := NewOrderService(client)
	ctx := context.Background()

	first, err := svc.List(ctx, listview.Filter{}, listview.Sort{}, 3)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	// Only one page exists, so the request clamps regardless.
	if first.Page.Page != 1 {
		t.Fatalf("expected page 1, got %d", first.Page.Page)
	}

	// Same filter keeps the requested page; a changed filter resets it.
	changed, err := svc.List(ctx, listview.Filter{Facets: map[string]string{"status": "C"}}, listview.Sort{}, 5)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if changed.Page.Page != 1 {
		t.Fatalf("filter change should reset to page 1, got %d", changed.Page.Page)
	}
	if changed.Page.TotalFiltered != 1 {
		t.Fatalf("expected 1 confirmed order, got %d", changed.Page.TotalFiltered)
	}
	// Stats cover the whole collection, not the filtered subset.
	if changed.Stats.Total != 3 {
		t.Fatalf("stats should span the full collection, got %+v", changed.Stats)
	}
}

func TestOrderListServesStaleOnBackendFailure(t *testing.T) {
	var failing atomic.Bool
	client := orderBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if failing.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"results":[{"id":1,"order_number":"ORD-001","status":"P","total_amount":"10.00"}]}`))
	})
	svc := NewOrderService(client)
	ctx := context.Background()

	if _, err := svc.List(ctx, listview.Filter{}, listview.Sort{}, 1); err != nil {
		t.Fatalf("initial list failed: %v", err)
	}

	failing.Store(true)
	view, err := svc.List(ctx, listview.Filter{}, listview.Sort{}, 1)
	if err != nil {
		t.Fatalf("stale fallback should not error: %v", err)
	}
	if !view.Stale {
		t.Fatalf("expected stale view")
	}
	if view.Page.TotalFiltered != 1 {
		t.Fatalf("stale view lost data: %+v", view.Page)
	}
}

func TestOrderListErrorsWithoutSnapshot(t *testing.T) {
	client := orderBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	svc := NewOrderService(client)

	if _, err := svc.List(context.Background(), listview.Filter{}, listview.Sort{}, 1); err == nil {
		t.Fatalf("expected error when no snapshot exists")
	}
}

func TestOrderListUnauthorizedBypassesStale(t *testing.T) {
	var unauthorized atomic.Bool
	client := orderBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if unauthorized.Load() {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"Invalid token."}`))
			return
		}
		w.Write([]byte(`{"results":[{"id":1,"order_number":"ORD-001","status":"P","total_amount":"10.00"}]}`))
	})
	svc := NewOrderService(client)
	ctx := context.Background()

	if _, err := svc.List(ctx, listview.Filter{}, listview.Sort{}, 1); err != nil {
		t.Fatalf("initial list failed: %v", err)
	}

	unauthorized.Store(true)
	_, err := svc.List(ctx, listview.Filter{}, listview.Sort{}, 1)
	if !domain.IsUnauthorized(err) {
		t.Fatalf("auth failures must surface, got %v", err)
	}
}

func TestOrderUpdateStatusRejectsUnknownCode(t *testing.T) {
	called := false
	client := orderBackend(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.Write([]byte(`{}`))
	})
	svc := NewOrderService(client)

	err := svc.UpdateStatus(context.Background(), 1, domain.OrderStatus("XX"))
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if called {
		t.Fatalf("invalid status must not reach the backend")
	}
	if svc.Modal.Kind() != ModalStatus {
		t.Fatalf("status dialog should stay open, got %s", svc.Modal.Kind())
	}
}
