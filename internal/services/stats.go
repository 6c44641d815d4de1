package services

import "guestadmin/internal/domain"

// Aggregates computed over the full loaded collection, not the
// filtered page. Recomputed on every collection replace.

type OrderStats struct {
	Total     int     `json:"total"`
	Pending   int     `json:"pending"`
	Confirmed int     `json:"confirmed"`
	Delivered int     `json:"delivered"`
	Cancelled int     `json:"cancelled"`
	Revenue   float64 `json:"revenue"`
}

func ComputeOrderStats(orders []domain.Order) OrderStats {
	var s OrderStats
	s.Total = len(orders)
	for _, o := range orders {
		switch o.Status {
		case domain.OrderPending:
			s.Pending++
		case domain.OrderConfirmed:
			s.Confirmed++
		case domain.OrderDelivered:
			s.Delivered++
		case domain.OrderCancelled:
			s.Cancelled++
		}
		if o.Status.RevenueBearing() {
			s.Revenue += o.TotalAmount.Float()
		}
	}
	return s
}

type RoomStats struct {
	Total      int            `json:"total"`
	Available  int            `json:"available"`
	Reserved   int            `json:"reserved"`
	ByCategory map[string]int `json:"by_category"`
}

func ComputeRoomStats(rooms []domain.Room) RoomStats {
	s := RoomStats{ByCategory: map[string]int{}}
	s.Total = len(rooms)
	for _, r := range rooms {
		if r.Reserved {
			s.Reserved++
		} else {
			s.Available++
		}
		s.ByCategory[r.Category.Label()]++
	}
	return s
}

type ProductStats struct {
	Total           int     `json:"total"`
	Active          int     `json:"active"`
	LowStock        int     `json:"low_stock"`
	InventoryValue  float64 `json:"inventory_value"`
	PotentialProfit float64 `json:"potential_profit"`
	AvgMarginPct    float64 `json:"avg_margin_pct"`
}

func ComputeProductStats(products []domain.Product) ProductStats {
	var s ProductStats
	s.Total = len(products)
	var pctSum float64
	for _, p := range products {
		if p.IsActive {
			s.Active++
		}
		if p.LowStock() {
			s.LowStock++
		}
		s.InventoryValue += p.Price.Float() * float64(p.Quantity)
		s.PotentialProfit += p.Margin() * float64(p.Quantity)
		pctSum += p.MarginPercent()
	}
	if s.Total > 0 {
		s.AvgMarginPct = pctSum / float64(s.Total)
	}
	return s
}

type UserStats struct {
	Total  int            `json:"total"`
	Active int            `json:"active"`
	ByRole map[string]int `json:"by_role"`
}

func ComputeUserStats(users []domain.User) UserStats {
	s := UserStats{ByRole: map[string]int{}}
	s.Total = len(users)
	for _, u := range users {
		if u.Status == domain.UserActive {
			s.Active++
		}
		s.ByRole[string(u.Role)]++
	}
	return s
}

type CustomerStats struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Inactive  int `json:"inactive"`
	Suspended int `json:"suspended"`
}

func ComputeCustomerStats(customers []domain.Customer) CustomerStats {
	var s CustomerStats
	s.Total = len(customers)
	for _, c := range customers {
		switch c.Status {
		case domain.CustomerActive:
			s.Active++
		case domain.CustomerInactive:
			s.Inactive++
		case domain.CustomerSuspended:
			s.Suspended++
		}
	}
	return s
}

type ReservationStats struct {
	Total     int     `json:"total"`
	Pending   int     `json:"pending"`
	CheckedIn int     `json:"checked_in"`
	Revenue   float64 `json:"revenue"`
}

func ComputeReservationStats(reservations []domain.Reservation) ReservationStats {
	var s ReservationStats
	s.Total = len(reservations)
	for _, r := range reservations {
		switch r.Status {
		case domain.ReservationPending:
			s.Pending++
		case domain.ReservationCheckedIn:
			s.CheckedIn++
		}
		if r.Status.RevenueBearing() {
			s.Revenue += r.TotalAmount.Float()
		}
	}
	return s
}
