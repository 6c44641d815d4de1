package services

import "testing"

func TestValidateRoomForm(t *testing.T) {
	fields := ValidateRoomForm(RoomForm{})
	if fields["room_code"] != "Room code is required" {
		t.Fatalf("room_code message: %q", fields["room_code"])
	}
	if fields["price_per_night"] != "Price per night is required" {
		t.Fatalf("price message: %q", fields["price_per_night"])
	}
	if fields["capacity"] != "Capacity is required" {
		t.Fatalf("capacity message: %q", fields["capacity"])
	}

	fields = ValidateRoomForm(RoomForm{
		RoomCode:      "R-101",
		Category:      "V",
		PricePerNight: "abc",
		Capacity:      "zero",
	})
	if fields["price_per_night"] != "Please enter a valid price" {
		t.Fatalf("price message: %q", fields["price_per_night"])
	}
	if fields["capacity"] != "Please enter a valid capacity" {
		t.Fatalf("capacity message: %q", fields["capacity"])
	}

	if fields := ValidateRoomForm(RoomForm{
		RoomCode:      "R-101",
		Category:      "G",
		PricePerNight: "120.50",
		Capacity:      "2",
	}); fields != nil {
		t.Fatalf("expected valid form, got %v", fields)
	}
}

func TestValidateProductForm(t *testing.T) {
	fields := ValidateProductForm(ProductForm{Cost: "-1", Price: "0", Quantity: "x"})
	if fields["name"] != "Product name is required" {
		t.Fatalf("name message: %q", fields["name"])
	}
	if fields["cost"] != "Valid cost is required" {
		t.Fatalf("cost message: %q", fields["cost"])
	}
	if fields["price"] != "Valid price is required" {
		t.Fatalf("price message: %q", fields["price"])
	}
	if fields["quantity"] != "Valid quantity is required" {
		t.Fatalf("quantity message: %q", fields["quantity"])
	}

	if fields := ValidateProductForm(ProductForm{
		Name: "Towel Set", Cost: "5", Price: "9.99", Quantity: "0",
	}); fields != nil {
		t.Fatalf("quantity zero should be allowed, got %v", fields)
	}
}

func TestValidateCategoryForm(t *testing.T) {
	fields := ValidateCategoryForm(CategoryForm{Name: "  "})
	if fields["name"] != "Category name is required" {
		t.Fatalf("name message: %q", fields["name"])
	}

	if fields := ValidateCategoryForm(CategoryForm{Name: "Toiletries"}); fields != nil {
		t.Fatalf("expected valid form, got %v", fields)
	}
}

func TestValidateUserFormCreate(t *testing.T) {
	fields := ValidateUserForm(UserForm{}, true)
	if fields["name"] != "Name is required" {
		t.Fatalf("name message: %q", fields["name"])
	}
	if fields["email"] != "Email is required" {
		t.Fatalf("email message: %q", fields["email"])
	}
	if fields["phone"] != "Phone is required" {
		t.Fatalf("phone message: %q", fields["phone"])
	}
	if fields["password"] != "Password is required" {
		t.Fatalf("password message: %q", fields["password"])
	}

	fields = ValidateUserForm(UserForm{
		Name: "Ana", Email: "not-an-email", Phone: "123", Role: "STAFF",
		Password: "short", ConfirmPassword: "short",
	}, true)
	if fields["email"] != "Please enter a valid email" {
		t.Fatalf("email message: %q", fields["email"])
	}
	if fields["password"] != "Password must be at least 8 characters" {
		t.Fatalf("password message: %q", fields["password"])
	}

	fields = ValidateUserForm(UserForm{
		Name: "Ana", Email: "ana@example.com", Phone: "123", Role: "STAFF",
		Password: "longenough", ConfirmPassword: "different",
	}, true)
	if fields["confirm_password"] != "Passwords do not match" {
		t.Fatalf("confirm message: %q", fields["confirm_password"])
	}
}

func TestValidateUserFormEditSkipsPassword(t *testing.T) {
	fields := ValidateUserForm(UserForm{
		Name: "Ana", Email: "ana@example.com", Phone: "123", Role: "ADMIN",
	}, false)
	if fields != nil {
		t.Fatalf("edit without password should validate, got %v", fields)
	}
}

func TestValidateReservationForm(t *testing.T) {
	fields := ValidateReservationForm(ReservationForm{})
	if fields["room"] != "Room is required" {
		t.Fatalf("room message: %q", fields["room"])
	}
	if fields["check_in"] != "Check-in date is required" {
		t.Fatalf("check_in message: %q", fields["check_in"])
	}

	fields = ValidateReservationForm(ReservationForm{
		RoomID: "1", CustomerID: "2",
		CheckIn: "2026-09-03", CheckOut: "2026-09-01", Guests: "2",
	})
	if fields["check_out"] != "Check-out must be after check-in" {
		t.Fatalf("check_out message: %q", fields["check_out"])
	}

	fields = ValidateReservationForm(ReservationForm{
		RoomID: "1", CustomerID: "2",
		CheckIn: "not-a-date", CheckOut: "2026-09-03", Guests: "2",
	})
	if fields["check_in"] != "Please enter a valid date" {
		t.Fatalf("check_in message: %q", fields["check_in"])
	}

	if fields := ValidateReservationForm(ReservationForm{
		RoomID: "1", CustomerID: "2",
		CheckIn: "2026-09-01", CheckOut: "2026-09-03", Guests: "2",
	}); fields != nil {
		t.Fatalf("expected valid form, got %v", fields)
	}
}

func TestValidateLoginForm(t *testing.T) {
	fields := ValidateLoginForm(LoginForm{Email: "x@y", Password: ""})
	if fields["email"] != "Please enter a valid email" {
		t.Fatalf("email message: %q", fields["email"])
	}
	if fields["password"] != "Password is required" {
		t.Fatalf("password message: %q", fields["password"])
	}

	// The shape check is a substring match, so surrounding text passes.
	if fields := ValidateLoginForm(LoginForm{Email: "ana@example.com", Password: "pw"}); fields != nil {
		t.Fatalf("expected valid login, got %v", fields)
	}
}
