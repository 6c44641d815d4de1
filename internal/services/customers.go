package services

import (
	"context"
	"sync"

	"guestadmin/internal/backend"
	"guestadmin/internal/domain"
	"guestadmin/internal/listview"
	"guestadmin/internal/utils"
)

// CustomerService drives the guest account page.
type CustomerService struct {
	Client    *backend.Client
	RequestID string
	Modal     *Modal

	mu         sync.Mutex
	store      Store[domain.Customer]
	lastFilter listview.Filter
	hasFilter  bool
}

func NewCustomerService(client *backend.Client) *CustomerService {
	return &CustomerService{Client: client, Modal: NewModal()}
}

type CustomerListView struct {
	listview.Page[domain.Customer]
	Stats CustomerStats
	Stale bool
}

func (s *CustomerService) List(ctx context.Context, f listview.Filter, sortBy listview.Sort, page int) (CustomerListView, error) {
	page = s.resetPageOnFilterChange(f, page)
	token := s.store.Begin()
	items, err := s.Client.ListCustomers(ctx, listParams(f, sortBy))
	if err != nil {
		s.store.Fail(token)
		if domain.IsUnauthorized(err) {
			return CustomerListView{}, err
		}
		if snap, ok := s.store.Snapshot(); ok {
			utils.LogEvent(s.RequestID, "customers", "list", "serving stale collection: "+err.Error())
			return s.render(snap.Items, f, sortBy, page, true), nil
		}
		return CustomerListView{}, err
	}
	if !s.store.Commit(token, items) {
		if snap, ok := s.store.Snapshot(); ok {
			items = snap.Items
		}
	}
	return s.render(items, f, sortBy, page, false), nil
}

func (s *CustomerService) render(items []domain.Customer, f listview.Filter, sortBy listview.Sort, page int, stale bool) CustomerListView {
	return CustomerListView{
		Page:  listview.Visible(items, listview.CustomerProfile(), f, sortBy, page),
		Stats: ComputeCustomerStats(items),
		Stale: stale,
	}
}

func (s *CustomerService) resetPageOnFilterChange(f listview.Filter, page int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasFilter || !s.lastFilter.Equal(f) {
		page = 1
	}
	s.lastFilter = f
	s.hasFilter = true
	return page
}

func (s *CustomerService) input(f CustomerForm) backend.CustomerInput {
	status := f.Status
	if status == "" {
		status = string(domain.CustomerActive)
	}
	return backend.CustomerInput{
		Username:  utils.TrimOrEmpty(f.Username),
		FirstName: utils.NormalizeSpace(f.FirstName),
		LastName:  utils.NormalizeSpace(f.LastName),
		Email:     utils.TrimOrEmpty(f.Email),
		Phone:     utils.TrimOrEmpty(f.Phone),
		Gender:    f.Gender,
		Location:  utils.TrimOrEmpty(f.Location),
		Status:    status,
	}
}

func (s *CustomerService) Create(ctx context.Context, f CustomerForm) error {
	if err := s.Modal.Open(ModalAdd); err != nil {
		return err
	}
	return s.Modal.Submit(SubmitOptions{CloseOnError: false}, func() domain.FieldErrors {
		return ValidateCustomerForm(f)
	}, func() error {
		if _, err := s.Client.CreateCustomer(ctx, s.input(f)); err != nil {
			return err
		}
		s.store.Invalidate()
		utils.LogEvent(s.RequestID, "customers", "create", "guest account created")
		return nil
	})
}

func (s *CustomerService) Update(ctx context.Context, id int64, f CustomerForm) error {
	if err := s.Modal.Open(ModalEdit); err != nil {
		return err
	}
	return s.Modal.Submit(SubmitOptions{CloseOnError: false}, func() domain.FieldErrors {
		return ValidateCustomerForm(f)
	}, func() error {
		if _, err := s.Client.UpdateCustomer(ctx, id, s.input(f)); err != nil {
			return err
		}
		s.store.Invalidate()
		utils.LogEvent(s.RequestID, "customers", "update", "guest account updated")
		return nil
	})
}

func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	if err := s.Modal.Open(ModalDelete); err != nil {
		return err
	}
	return s.Modal.Submit(SubmitOptions{CloseOnError: true}, nil, func() error {
		if err := s.Client.DeleteCustomer(ctx, id); err != nil {
			return err
		}
		s.store.Invalidate()
		utils.LogEvent(s.RequestID, "customers", "delete", "guest account deleted")
		return nil
	})
}
