package services

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"guestadmin/internal/domain"
	"guestadmin/internal/utils"
)

// Form values arrive as strings and are validated before any number
// conversion, so a bad "price" gets a field message instead of a parse
// failure.

var emailShape = regexp.MustCompile(`\S+@\S+\.\S+`)

func parsePositive(raw string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	return f, err == nil && f > 0
}

func parseNonNegativeInt(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	return n, err == nil && n >= 0
}

type RoomForm struct {
	RoomCode      string
	Category      string
	PricePerNight string
	Capacity      string
	Description   string
	IsActive      bool
}

func ValidateRoomForm(f RoomForm) domain.FieldErrors {
	fields := domain.FieldErrors{}
	if strings.TrimSpace(f.RoomCode) == "" {
		fields.Set("room_code", "Room code is required")
	}
	if !domain.RoomCategory(f.Category).Valid() {
		fields.Set("categories", "Category is required")
	}
	if strings.TrimSpace(f.PricePerNight) == "" {
		fields.Set("price_per_night", "Price per night is required")
	} else if _, ok := parsePositive(f.PricePerNight); !ok {
		fields.Set("price_per_night", "Please enter a valid price")
	}
	if strings.TrimSpace(f.Capacity) == "" {
		fields.Set("capacity", "Capacity is required")
	} else if n, ok := parseNonNegativeInt(f.Capacity); !ok || n < 1 {
		fields.Set("capacity", "Please enter a valid capacity")
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

type ProductForm struct {
	Name        string
	ProductCode string
	CategoryIDs []int64
	Cost        string
	Price       string
	Quantity    string
	Description string
	IsActive    bool
}

func ValidateProductForm(f ProductForm) domain.FieldErrors {
	fields := domain.FieldErrors{}
	if strings.TrimSpace(f.Name) == "" {
		fields.Set("name", "Product name is required")
	}
	if _, ok := parsePositive(f.Cost); !ok {
		fields.Set("cost", "Valid cost is required")
	}
	if _, ok := parsePositive(f.Price); !ok {
		fields.Set("price", "Valid price is required")
	}
	if _, ok := parseNonNegativeInt(f.Quantity); !ok {
		fields.Set("quantity", "Valid quantity is required")
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

type CategoryForm struct {
	Name        string
	Description string
}

func ValidateCategoryForm(f CategoryForm) domain.FieldErrors {
	fields := domain.FieldErrors{}
	if strings.TrimSpace(f.Name) == "" {
		fields.Set("name", "Category name is required")
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

type UserForm struct {
	Name            string
	Email           string
	Phone           string
	Role            string
	Status          string
	Password        string
	ConfirmPassword string
}

// ValidateUserForm checks a staff account form. Password rules apply
// only when creating is true; edits never touch the password.
func ValidateUserForm(f UserForm, creating bool) domain.FieldErrors {
	fields := domain.FieldErrors{}
	if strings.TrimSpace(f.Name) == "" {
		fields.Set("name", "Name is required")
	}
	if strings.TrimSpace(f.Email) == "" {
		fields.Set("email", "Email is required")
	} else if !emailShape.MatchString(f.Email) {
		fields.Set("email", "Please enter a valid email")
	}
	if strings.TrimSpace(f.Phone) == "" {
		fields.Set("phone", "Phone is required")
	}
	if !domain.UserRole(f.Role).Valid() {
		fields.Set("role", "Role is required")
	}
	if creating {
		switch {
		case f.Password == "":
			fields.Set("password", "Password is required")
		case len(f.Password) < 8:
			fields.Set("password", "Password must be at least 8 characters")
		case f.Password != f.ConfirmPassword:
			fields.Set("confirm_password", "Passwords do not match")
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// ValidatePasswordReset applies the same password rules to the
// reset-password workflow.
func ValidatePasswordReset(password, confirm string) domain.FieldErrors {
	fields := domain.FieldErrors{}
	switch {
	case password == "":
		fields.Set("password", "Password is required")
	case len(password) < 8:
		fields.Set("password", "Password must be at least 8 characters")
	case password != confirm:
		fields.Set("confirm_password", "Passwords do not match")
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

type CustomerForm struct {
	Username  string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Gender    string
	Location  string
	Status    string
}

func ValidateCustomerForm(f CustomerForm) domain.FieldErrors {
	fields := domain.FieldErrors{}
	if strings.TrimSpace(f.Username) == "" {
		fields.Set("username", "Username is required")
	}
	if strings.TrimSpace(f.Email) == "" {
		fields.Set("email", "Email is required")
	} else if !emailShape.MatchString(f.Email) {
		fields.Set("email", "Please enter a valid email")
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

type ReservationForm struct {
	RoomID     string
	CustomerID string
	CheckIn    string
	CheckOut   string
	Guests     string
	Notes      string
	Total      string
}

func ValidateReservationForm(f ReservationForm) domain.FieldErrors {
	fields := domain.FieldErrors{}
	if strings.TrimSpace(f.RoomID) == "" {
		fields.Set("room", "Room is required")
	}
	if strings.TrimSpace(f.CustomerID) == "" {
		fields.Set("customer", "Customer is required")
	}
	var inAt, outAt time.Time
	if raw := strings.TrimSpace(f.CheckIn); raw == "" {
		fields.Set("check_in", "Check-in date is required")
	} else if t, err := utils.ParseDate(raw); err != nil {
		fields.Set("check_in", "Please enter a valid date")
	} else {
		inAt = t
	}
	if raw := strings.TrimSpace(f.CheckOut); raw == "" {
		fields.Set("check_out", "Check-out date is required")
	} else if t, err := utils.ParseDate(raw); err != nil {
		fields.Set("check_out", "Please enter a valid date")
	} else {
		outAt = t
	}
	if !inAt.IsZero() && !outAt.IsZero() && !outAt.After(inAt) {
		fields.Set("check_out", "Check-out must be after check-in")
	}
	if n, ok := parseNonNegativeInt(f.Guests); !ok || n < 1 {
		fields.Set("guests", "Valid guest count is required")
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

type LoginForm struct {
	Email    string
	Password string
}

func ValidateLoginForm(f LoginForm) domain.FieldErrors {
	fields := domain.FieldErrors{}
	if strings.TrimSpace(f.Email) == "" {
		fields.Set("email", "Email is required")
	} else if !emailShape.MatchString(f.Email) {
		fields.Set("email", "Please enter a valid email")
	}
	if f.Password == "" {
		fields.Set("password", "Password is required")
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}
