package domain

// RoomCategory is the single-letter room class code.
type RoomCategory string

const (
	RoomGeneral RoomCategory = "G"
	RoomVIP     RoomCategory = "V"
	RoomSuite   RoomCategory = "S"
	RoomDeluxe  RoomCategory = "D"
)

var roomCategoryLabels = map[RoomCategory]string{
	RoomGeneral: "General",
	RoomVIP:     "VIP",
	RoomSuite:   "Suite",
	RoomDeluxe:  "Deluxe",
}

func (c RoomCategory) Label() string {
	if label, ok := roomCategoryLabels[c]; ok {
		return label
	}
	return string(c)
}

func (c RoomCategory) Valid() bool {
	_, ok := roomCategoryLabels[c]
	return ok
}

func RoomCategories() []RoomCategory {
	return []RoomCategory{RoomGeneral, RoomVIP, RoomSuite, RoomDeluxe}
}

type Room struct {
	ID            int64        `json:"id"`
	RoomCode      string       `json:"room_code"`
	Category      RoomCategory `json:"categories"`
	Reserved      bool         `json:"reserved"`
	PricePerNight Amount       `json:"price_per_night"`
	Capacity      int          `json:"capacity"`
	Description   string       `json:"description"`
	IsActive      bool         `json:"is_active"`
	CreatedAt     Timestamp    `json:"created_at"`
	UpdatedAt     Timestamp    `json:"updated_at"`
}
