package services

import (
	"context"
	"sync"

	"guestadmin/internal/backend"
	"guestadmin/internal/domain"
	"guestadmin/internal/listview"
	"guestadmin/internal/utils"
)

// RoomService drives the room list page and its add/edit/delete
// workflows.
type RoomService struct {
	Client    *backend.Client
	RequestID string
	Modal     *Modal

	mu         sync.Mutex
	store      Store[domain.Room]
	lastFilter listview.Filter
	hasFilter  bool
}

func NewRoomService(client *backend.Client) *RoomService {
	return &RoomService{Client: client, Modal: NewModal()}
}

type RoomListView struct {
	listview.Page[domain.Room]
	Stats RoomStats
	Stale bool
}

func (s *RoomService) List(ctx context.Context, f listview.Filter, sortBy listview.Sort, page int) (RoomListView, error) {
	page = s.resetPageOnFilterChange(f, page)
	token := s.store.Begin()
	items, err := s.Client.ListRooms(ctx, listParams(f, sortBy))
	if err != nil {
		s.store.Fail(token)
		if domain.IsUnauthorized(err) {
			return RoomListView{}, err
		}
		if snap, ok := s.store.Snapshot(); ok {
			utils.LogEvent(s.RequestID, "rooms", "list", "serving stale collection: "+err.Error())
			return s.render(snap.Items, f, sortBy, page, true), nil
		}
		return RoomListView{}, err
	}
	if !s.store.Commit(token, items) {
		if snap, ok := s.store.Snapshot(); ok {
			items = snap.Items
		}
	}
	return s.render(items, f, sortBy, page, false), nil
}

func (s *RoomService) render(items []domain.Room, f listview.Filter, sortBy listview.Sort, page int, stale bool) RoomListView {
	return RoomListView{
		Page:  listview.Visible(items, listview.RoomProfile(), f, sortBy, page),
		Stats: ComputeRoomStats(items),
		Stale: stale,
	}
}

func (s *RoomService) resetPageOnFilterChange(f listview.Filter, page int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasFilter || !s.lastFilter.Equal(f) {
		page = 1
	}
	s.lastFilter = f
	s.hasFilter = true
	return page
}

func (s *RoomService) input(f RoomForm) backend.RoomInput {
	price, _ := parsePositive(f.PricePerNight)
	capacity, _ := parseNonNegativeInt(f.Capacity)
	return backend.RoomInput{
		RoomCode:      utils.NormalizeSpace(f.RoomCode),
		Category:      f.Category,
		PricePerNight: price,
		Capacity:      capacity,
		Description:   utils.TrimOrEmpty(f.Description),
		IsActive:      f.IsActive,
	}
}

func (s *RoomService) Create(ctx context.Context, f RoomForm) error {
	if err := s.Modal.Open(ModalAdd); err != nil {
		return err
	}
	return s.Modal.Submit(SubmitOptions{CloseOnError: false}, func() domain.FieldErrors {
		return ValidateRoomForm(f)
	}, func() error {
		if _, err := s.Client.CreateRoom(ctx, s.input(f)); err != nil {
			return err
		}
		s.store.Invalidate()
		utils.LogEvent(s.RequestID, "rooms", "create", "room created")
		return nil
	})
}

func (s *RoomService) Update(ctx context.Context, id int64, f RoomForm) error {
	if err := s.Modal.Open(ModalEdit); err != nil {
		return err
	}
	return s.Modal.Submit(SubmitOptions{CloseOnError: false}, func() domain.FieldErrors {
		return ValidateRoomForm(f)
	}, func() error {
		if _, err := s.Client.UpdateRoom(ctx, id, s.input(f)); err != nil {
			return err
		}
		s.store.Invalidate()
		utils.LogEvent(s.RequestID, "rooms", "update", "room updated")
		return nil
	})
}

// Delete closes the confirm dialog even when the backend refuses; the
// failure surfaces as a notification instead.
func (s *RoomService) Delete(ctx context.Context, id int64) error {
	if err := s.Modal.Open(ModalDelete); err != nil {
		return err
	}
	return s.Modal.Submit(SubmitOptions{CloseOnError: true}, nil, func() error {
		if err := s.Client.DeleteRoom(ctx, id); err != nil {
			return err
		}
		s.store.Invalidate()
		utils.LogEvent(s.RequestID, "rooms", "delete", "room deleted")
		return nil
	})
}
