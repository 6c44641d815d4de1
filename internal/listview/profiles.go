package listview

import (
	"strconv"
	"strings"
	"time"

	"guestadmin/internal/domain"
)

// Per-entity profiles. Search fields and facet names mirror the list
// page controls; sort fields mirror the clickable column headers.

func OrderProfile() Profile[domain.Order] {
	return Profile[domain.Order]{
		Search: func(o domain.Order) []string {
			return []string{o.OrderNumber, o.Customer.Username, o.Customer.Email, o.Notes}
		},
		Facet: func(o domain.Order, name, value string) bool {
			if name == "status" {
				return string(o.Status) == value
			}
			return false
		},
		Created: func(o domain.Order) time.Time { return o.CreatedAt.Time },
		Key: func(o domain.Order, field string) SortValue {
			switch field {
			case "order_number":
				return Text(o.OrderNumber)
			case "customer":
				return Text(o.Customer.DisplayName())
			case "status":
				return Text(string(o.Status))
			case "total_amount":
				return Number(o.TotalAmount.Float())
			case "updated_at":
				return Time(o.UpdatedAt.Time)
			default:
				return Time(o.CreatedAt.Time)
			}
		},
	}
}

func RoomProfile() Profile[domain.Room] {
	return Profile[domain.Room]{
		Search: func(r domain.Room) []string {
			return []string{r.RoomCode, r.Description, r.Category.Label()}
		},
		Facet: func(r domain.Room, name, value string) bool {
			switch name {
			case "category":
				return string(r.Category) == value
			case "status":
				return (value == "active") == r.IsActive
			case "availability":
				if value == "reserved" {
					return r.Reserved
				}
				return !r.Reserved
			}
			return false
		},
		Created: func(r domain.Room) time.Time { return r.CreatedAt.Time },
		Key: func(r domain.Room, field string) SortValue {
			switch field {
			case "room_code":
				return Text(r.RoomCode)
			case "categories":
				return Text(r.Category.Label())
			case "price_per_night":
				return Number(r.PricePerNight.Float())
			case "capacity":
				return Number(float64(r.Capacity))
			default:
				return Time(r.CreatedAt.Time)
			}
		},
	}
}

func ProductProfile() Profile[domain.Product] {
	return Profile[domain.Product]{
		Search: func(p domain.Product) []string {
			fields := []string{p.Name, p.ProductCode, p.Description}
			return append(fields, p.CategoryNames()...)
		},
		Facet: func(p domain.Product, name, value string) bool {
			switch name {
			case "status":
				switch value {
				case "active":
					return p.IsActive
				case "inactive":
					return !p.IsActive
				case "low_stock":
					return p.LowStock()
				}
				return false
			case "category":
				for _, c := range p.Categories {
					if strconv.FormatInt(c.ID, 10) == value || strings.EqualFold(c.Name, value) {
						return true
					}
				}
				return false
			}
			return false
		},
		Created: func(p domain.Product) time.Time { return p.CreatedAt.Time },
		Key: func(p domain.Product, field string) SortValue {
			switch field {
			case "name":
				return Text(p.Name)
			case "product_code":
				return Text(p.ProductCode)
			case "price":
				return Number(p.Price.Float())
			case "cost":
				return Number(p.Cost.Float())
			case "quantity":
				return Number(float64(p.Quantity))
			default:
				return Time(p.CreatedAt.Time)
			}
		},
	}
}

func UserProfile() Profile[domain.User] {
	return Profile[domain.User]{
		Search: func(u domain.User) []string {
			return []string{u.Name, u.Email, u.UserID, u.Phone}
		},
		Facet: func(u domain.User, name, value string) bool {
			switch name {
			case "role":
				return string(u.Role) == value
			case "status":
				return string(u.Status) == value
			}
			return false
		},
		Created: func(u domain.User) time.Time { return u.CreatedAt.Time },
		Key: func(u domain.User, field string) SortValue {
			switch field {
			case "name":
				return Text(u.Name)
			case "email":
				return Text(u.Email)
			case "role":
				return Text(string(u.Role))
			default:
				return Time(u.CreatedAt.Time)
			}
		},
	}
}

func CustomerProfile() Profile[domain.Customer] {
	return Profile[domain.Customer]{
		Search: func(c domain.Customer) []string {
			return []string{c.Username, c.FirstName, c.LastName, c.Email, c.CustomerID, c.Phone, c.Location}
		},
		Facet: func(c domain.Customer, name, value string) bool {
			if name == "status" {
				return string(c.Status) == value
			}
			return false
		},
		Created: func(c domain.Customer) time.Time { return c.CreatedAt.Time },
		Key: func(c domain.Customer, field string) SortValue {
			switch field {
			case "username":
				return Text(c.Username)
			case "name":
				return Text(c.DisplayName())
			case "email":
				return Text(c.Email)
			default:
				return Time(c.CreatedAt.Time)
			}
		},
	}
}

func ReservationProfile() Profile[domain.Reservation] {
	return Profile[domain.Reservation]{
		Search: func(r domain.Reservation) []string {
			return []string{r.Room.RoomCode, r.Customer.Username, r.Customer.Email, r.Notes}
		},
		Facet: func(r domain.Reservation, name, value string) bool {
			switch name {
			case "status":
				return string(r.Status) == value
			case "category":
				return string(r.Room.Category) == value
			}
			return false
		},
		Created: func(r domain.Reservation) time.Time { return r.CreatedAt.Time },
		Key: func(r domain.Reservation, field string) SortValue {
			switch field {
			case "room_code":
				return Text(r.Room.RoomCode)
			case "check_in":
				return Text(r.CheckIn)
			case "check_out":
				return Text(r.CheckOut)
			case "guests":
				return Number(float64(r.Guests))
			case "total_amount":
				return Number(r.TotalAmount.Float())
			default:
				return Time(r.CreatedAt.Time)
			}
		},
	}
}
