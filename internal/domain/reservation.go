package domain

// ReservationStatus is the room reservation lifecycle state.
type ReservationStatus string

const (
	ReservationPending    ReservationStatus = "pending"
	ReservationConfirmed  ReservationStatus = "confirmed"
	ReservationCheckedIn  ReservationStatus = "checked_in"
	ReservationCheckedOut ReservationStatus = "checked_out"
	ReservationCanceled   ReservationStatus = "canceled"
)

var reservationStatusLabels = map[ReservationStatus]string{
	ReservationPending:    "Pending",
	ReservationConfirmed:  "Confirmed",
	ReservationCheckedIn:  "Checked In",
	ReservationCheckedOut: "Checked Out",
	ReservationCanceled:   "Canceled",
}

func (s ReservationStatus) Label() string {
	if label, ok := reservationStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

func (s ReservationStatus) Valid() bool {
	_, ok := reservationStatusLabels[s]
	return ok
}

// RevenueBearing reports whether the reservation counts toward revenue.
func (s ReservationStatus) RevenueBearing() bool {
	switch s {
	case ReservationConfirmed, ReservationCheckedIn, ReservationCheckedOut:
		return true
	}
	return false
}

func ReservationStatuses() []ReservationStatus {
	return []ReservationStatus{
		ReservationPending, ReservationConfirmed, ReservationCheckedIn,
		ReservationCheckedOut, ReservationCanceled,
	}
}

// ReservationRoom is the room snapshot nested inside a reservation.
type ReservationRoom struct {
	ID       int64        `json:"id"`
	RoomCode string       `json:"room_code"`
	Category RoomCategory `json:"categories"`
}

type Reservation struct {
	ID          int64             `json:"id"`
	Room        ReservationRoom   `json:"room"`
	Customer    OrderCustomer     `json:"customer"`
	CheckIn     string            `json:"check_in"`
	CheckOut    string            `json:"check_out"`
	Guests      int               `json:"guests"`
	TotalAmount Amount            `json:"total_amount"`
	Notes       string            `json:"notes"`
	Status      ReservationStatus `json:"status"`
	CreatedAt   Timestamp         `json:"created_at"`
	UpdatedAt   Timestamp         `json:"updated_at"`
}
