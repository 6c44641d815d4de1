package services

import (
	"context"

	"guestadmin/internal/domain"
	"guestadmin/internal/listview"
)

// Export variants return every filtered row, unpaginated, for the CSV
// downloads. They always hit the backend; a stale snapshot is not good
// enough for an export.

func (s *OrderService) Export(ctx context.Context, f listview.Filter, sortBy listview.Sort) ([]domain.Order, error) {
	items, err := s.Client.ListOrders(ctx, listParams(f, sortBy))
	if err != nil {
		return nil, err
	}
	return listview.Matching(items, listview.OrderProfile(), f, sortBy), nil
}

func (s *RoomService) Export(ctx context.Context, f listview.Filter, sortBy listview.Sort) ([]domain.Room, error) {
	items, err := s.Client.ListRooms(ctx, listParams(f, sortBy))
	if err != nil {
		return nil, err
	}
	return listview.Matching(items, listview.RoomProfile(), f, sortBy), nil
}

func (s *ProductService) Export(ctx context.Context, f listview.Filter, sortBy listview.Sort) ([]domain.Product, error) {
	items, err := s.Client.ListProducts(ctx, listParams(f, sortBy))
	if err != nil {
		return nil, err
	}
	return listview.Matching(items, listview.ProductProfile(), f, sortBy), nil
}

func (s *UserService) Export(ctx context.Context, f listview.Filter, sortBy listview.Sort) ([]domain.User, error) {
	items, err := s.Client.ListUsers(ctx, listParams(f, sortBy))
	if err != nil {
		return nil, err
	}
	return listview.Matching(items, listview.UserProfile(), f, sortBy), nil
}

func (s *CustomerService) Export(ctx context.Context, f listview.Filter, sortBy listview.Sort) ([]domain.Customer, error) {
	items, err := s.Client.ListCustomers(ctx, listParams(f, sortBy))
	if err != nil {
		return nil, err
	}
	return listview.Matching(items, listview.CustomerProfile(), f, sortBy), nil
}

func (s *ReservationService) Export(ctx context.Context, f listview.Filter, sortBy listview.Sort) ([]domain.Reservation, error) {
	items, err := s.Client.ListReservations(ctx, listParams(f, sortBy))
	if err != nil {
		return nil, err
	}
	return listview.Matching(items, listview.ReservationProfile(), f, sortBy), nil
}
