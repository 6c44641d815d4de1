package services

import (
	"context"
	"strconv"
	"sync"

	"guestadmin/internal/backend"
	"guestadmin/internal/domain"
	"guestadmin/internal/listview"
	"guestadmin/internal/utils"
)

// ReservationService drives the reservation page, including the
// check-in/check-out status workflow.
type ReservationService struct {
	Client    *backend.Client
	RequestID string
	Modal     *Modal

	mu         sync.Mutex
	store      Store[domain.Reservation]
	lastFilter listview.Filter
	hasFilter  bool
}

func NewReservationService(client *backend.Client) *ReservationService {
	return &ReservationService{Client: client, Modal: NewModal()}
}

type ReservationListView struct {
	listview.Page[domain.Reservation]
	Stats ReservationStats
	Stale bool
}

func (s *ReservationService) List(ctx context.Context, f listview.Filter, sortBy listview.Sort, page int) (ReservationListView, error) {
	page = s.resetPageOnFilterChange(f, page)
	token := s.store.Begin()
	items, err := s.Client.ListReservations(ctx, listParams(f, sortBy))
	if err != nil {
		s.store.Fail(token)
		if domain.IsUnauthorized(err) {
			return ReservationListView{}, err
		}
		if snap, ok := s.store.Snapshot(); ok {
			utils.LogEvent(s.RequestID, "reservations", "list", "serving stale collection: "+err.Error())
			return s.render(snap.Items, f, sortBy, page, true), nil
		}
		return ReservationListView{}, err
	}
	if !s.store.Commit(token, items) {
		if snap, ok := s.store.Snapshot(); ok {
			items = snap.Items
		}
	}
	return s.render(items, f, sortBy, page, false), nil
}

func (s *ReservationService) render(items []domain.Reservation, f listview.Filter, sortBy listview.Sort, page int, stale bool) ReservationListView {
	return ReservationListView{
		Page:  listview.Visible(items, listview.ReservationProfile(), f, sortBy, page),
		Stats: ComputeReservationStats(items),
		Stale: stale,
	}
}

func (s *ReservationService) resetPageOnFilterChange(f listview.Filter, page int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasFilter || !s.lastFilter.Equal(f) {
		page = 1
	}
	s.lastFilter = f
	s.hasFilter = true
	return page
}

func (s *ReservationService) Create(ctx context.Context, f ReservationForm) error {
	if err := s.Modal.Open(ModalAdd); err != nil {
		return err
	}
	return s.Modal.Submit(SubmitOptions{CloseOnError: false}, func() domain.FieldErrors {
		return ValidateReservationForm(f)
	}, func() error {
		roomID, _ := strconv.ParseInt(f.RoomID, 10, 64)
		customerID, _ := strconv.ParseInt(f.CustomerID, 10, 64)
		guests, _ := parseNonNegativeInt(f.Guests)
		total, _ := strconv.ParseFloat(f.Total, 64)
		input := backend.ReservationInput{
			RoomID:     roomID,
			CustomerID: customerID,
			CheckIn:    f.CheckIn,
			CheckOut:   f.CheckOut,
			Guests:     guests,
			Notes:      utils.TrimOrEmpty(f.Notes),
			Total:      total,
		}
		if _, err := s.Client.CreateReservation(ctx, input); err != nil {
			return err
		}
		s.store.Invalidate()
		utils.LogEvent(s.RequestID, "reservations", "create", "reservation created")
		return nil
	})
}

// UpdateStatus keeps the dialog open on failure, same as orders.
func (s *ReservationService) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
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
		if _, err := s.Client.UpdateReservationStatus(ctx, id, status); err != nil {
			return err
		}
		s.store.Invalidate()
		utils.LogEvent(s.RequestID, "reservations", "update_status", "reservation status updated")
		return nil
	})
}

func (s *ReservationService) Delete(ctx context.Context, id int64) error {
	if err := s.Modal.Open(ModalDelete); err != nil {
		return err
	}
	return s.Modal.Submit(SubmitOptions{CloseOnError: true}, nil, func() error {
		if err := s.Client.DeleteReservation(ctx, id); err != nil {
			return err
		}
		s.store.Invalidate()
		utils.LogEvent(s.RequestID, "reservations", "delete", "reservation deleted")
		return nil
	})
}
