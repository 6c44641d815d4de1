package services

import (
	"context"
	"sync"

	"guestadmin/internal/backend"
	"guestadmin/internal/domain"
	"guestadmin/internal/listview"
	"guestadmin/internal/utils"
)

// UserService drives the staff account page, including password reset.
type UserService struct {
	Client    *backend.Client
	RequestID string
	Modal     *Modal

	mu         sync.Mutex
	store      Store[domain.User]
	lastFilter listview.Filter
	hasFilter  bool
}

func NewUserService(client *backend.Client) *UserService {
	return &UserService{Client: client, Modal: NewModal()}
}

type UserListView struct {
	listview.Page[domain.User]
	Stats UserStats
	Stale bool
}

func (s *UserService) List(ctx context.Context, f listview.Filter, sortBy listview.Sort, page int) (UserListView, error) {
	page = s.resetPageOnFilterChange(f, page)
	token := s.store.Begin()
	items, err := s.Client.ListUsers(ctx, listParams(f, sortBy))
	if err != nil {
		s.store.Fail(token)
		if domain.IsUnauthorized(err) {
			return UserListView{}, err
		}
		if snap, ok := s.store.Snapshot(); ok {
			utils.LogEvent(s.RequestID, "users", "list", "serving stale collection: "+err.Error())
			return s.render(snap.Items, f, sortBy, page, true), nil
		}
		return UserListView{}, err
	}
	if !s.store.Commit(token, items) {
		if snap, ok := s.store.Snapshot(); ok {
			items = snap.Items
		}
	}
	return s.render(items, f, sortBy, page, false), nil
}

func (s *UserService) render(items []domain.User, f listview.Filter, sortBy listview.Sort, page int, stale bool) UserListView {
	return UserListView{
		Page:  listview.Visible(items, listview.UserProfile(), f, sortBy, page),
		Stats: ComputeUserStats(items),
		Stale: stale,
	}
}

func (s *UserService) resetPageOnFilterChange(f listview.Filter, page int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasFilter || !s.lastFilter.Equal(f) {
		page = 1
	}
	s.lastFilter = f
	s.hasFilter = true
	return page
}

func (s *UserService) input(f UserForm) backend.UserInput {
	status := f.Status
	if status == "" {
		status = string(domain.UserActive)
	}
	return backend.UserInput{
		Name:     utils.NormalizeSpace(f.Name),
		Email:    utils.TrimOrEmpty(f.Email),
		Phone:    utils.TrimOrEmpty(f.Phone),
		Role:     f.Role,
		Status:   status,
		Password: f.Password,
	}
}

func (s *UserService) Create(ctx context.Context, f UserForm) error {
	if err := s.Modal.Open(ModalAdd); err != nil {
		return err
	}
	return s.Modal.Submit(SubmitOptions{CloseOnError: false}, func() domain.FieldErrors {
		return ValidateUserForm(f, true)
	}, func() error {
		if _, err := s.Client.CreateUser(ctx, s.input(f)); err != nil {
			return err
		}
		s.store.Invalidate()
		utils.LogEvent(s.RequestID, "users", "create", "staff account created")
		return nil
	})
}

func (s *UserService) Update(ctx context.Context, id int64, f UserForm) error {
	if err := s.Modal.Open(ModalEdit); err != nil {
		return err
	}
	return s.Modal.Submit(SubmitOptions{CloseOnError: false}, func() domain.FieldErrors {
		return ValidateUserForm(f, false)
	}, func() error {
		if _, err := s.Client.UpdateUser(ctx, id, s.input(f)); err != nil {
			return err
		}
		s.store.Invalidate()
		utils.LogEvent(s.RequestID, "users", "update", "staff account updated")
		return nil
	})
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.Modal.Open(ModalDelete); err != nil {
		return err
	}
	return s.Modal.Submit(SubmitOptions{CloseOnError: true}, nil, func() error {
		if err := s.Client.DeleteUser(ctx, id); err != nil {
			return err
		}
		s.store.Invalidate()
		utils.LogEvent(s.RequestID, "users", "delete", "staff account deleted")
		return nil
	})
}

// ResetPassword reuses the edit workflow's password rules.
func (s *UserService) ResetPassword(ctx context.Context, id int64, password, confirm string) error {
	if err := s.Modal.Open(ModalEdit); err != nil {
		return err
	}
	return s.Modal.Submit(SubmitOptions{CloseOnError: false}, func() domain.FieldErrors {
		return ValidatePasswordReset(password, confirm)
	}, func() error {
		if err := s.Client.ResetUserPassword(ctx, id, password); err != nil {
			return err
		}
		utils.LogEvent(s.RequestID, "users", "reset_password", "password reset")
		return nil
	})
}
