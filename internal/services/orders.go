package services

import (
	"context"
	"sync"

	"guestadmin/internal/backend"
	"guestadmin/internal/domain"
	"guestadmin/internal/listview"
	"guestadmin/internal/utils"
)

// OrderService drives the order list page and its status workflow.
type OrderService struct {
	Client    *backend.Client
	RequestID string
	Modal     *Modal

	mu         sync.Mutex
	store      Store[domain.Order]
	lastFilter listview.Filter
	hasFilter  bool
}

func NewOrderService(client *backend.Client) *OrderService {
	return &OrderService{Client: client, Modal: NewModal()}
}

// OrderListView is the fully rendered page the transport layer returns.
type OrderListView struct {
	listview.Page[domain.Order]
	Stats OrderStats
	Stale bool
}

// List fetches the collection and applies filter, sort and pagination.
// Any filter change resets to page one. When the backend is down and a
// previous fetch succeeded, the stale collection is served instead.
func (s *OrderService) List(ctx context.Context, f listview.Filter, sortBy listview.Sort, page int) (OrderListView, error) {
	page = s.resetPageOnFilterChange(f, page)
	token := s.store.Begin()
	items, err := s.Client.ListOrders(ctx, listParams(f, sortBy))
	if err != nil {
		s.store.Fail(token)
		if domain.IsUnauthorized(err) {
			return OrderListView{}, err
		}
		if snap, ok := s.store.Snapshot(); ok {
			utils.LogEvent(s.RequestID, "orders", "list", "serving stale collection: "+err.Error())
			return s.render(snap.Items, f, sortBy, page, true), nil
		}
		return OrderListView{}, err
	}
	if !s.store.Commit(token, items) {
		// A newer fetch won the race; render what it installed.
		if snap, ok := s.store.Snapshot(); ok {
			items = snap.Items
		}
	}
	return s.render(items, f, sortBy, page, false), nil
}

func (s *OrderService) render(items []domain.Order, f listview.Filter, sortBy listview.Sort, page int, stale bool) OrderListView {
	return OrderListView{
		Page:  listview.Visible(items, listview.OrderProfile(), f, sortBy, page),
		Stats: ComputeOrderStats(items),
		Stale: stale,
	}
}

func (s *OrderService) resetPageOnFilterChange(f listview.Filter, page int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasFilter || !s.lastFilter.Equal(f) {
		page = 1
	}
	s.lastFilter = f
	s.hasFilter = true
	return page
}

func (s *OrderService) Detail(ctx context.Context, id int64) (domain.Order, error) {
	if id <= 0 {
		return domain.Order{}, domain.ValidationError{Field: "id", Msg: "invalid order id"}
	}
	return s.Client.GetOrder(ctx, id)
}

// UpdateStatus moves an order through its lifecycle. The status modal
// stays open on mutation failure so the operator can retry.
func (s *OrderService) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	if err := s.Modal.Open(ModalStatus); err != nil {
		return err
	}
	return s.Modal.Submit(SubmitOptions{CloseOnError: false}, func() domain.FieldErrors {
		if !status.Valid() {
			fields := domain.FieldErrors{}
			fields.Set("status", "Valid status is required")
			return fields
		}
		return nil
	}, func() error {
		if _, err := s.Client.UpdateOrderStatus(ctx, id, status); err != nil {
			return err
		}
		s.store.Invalidate()
		utils.LogEvent(s.RequestID, "orders", "update_status", "order status updated")
		return nil
	})
}
