package domain

import (
	"encoding/json"
	"testing"
)

func TestAmountAcceptsStringAndNumber(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{`"12.50"`, 12.5},
		{`12.5`, 12.5},
		{`"0.00"`, 0},
		{`null`, 0},
		{`""`, 0},
	}
	for _, tc := range cases {
		var a Amount
		if err := json.Unmarshal([]byte(tc.raw), &a); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.raw, err)
		}
		if a.Float() != tc.want {
			t.Fatalf("unmarshal %s: got %v want %v", tc.raw, a.Float(), tc.want)
		}
	}
}

func TestAmountMarshalsTwoDecimals(t *testing.T) {
	out, err := json.Marshal(Amount(12.5))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != "12.50" {
		t.Fatalf("got %s", out)
	}
}

func TestTimestampLayouts(t *testing.T) {
	cases := []string{
		`"2026-08-20T10:30:00Z"`,
		`"2026-08-20T10:30:00.123456Z"`,
		`"2026-08-20T10:30:00"`,
		`"2026-08-20 10:30:00"`,
		`"2026-08-20"`,
	}
	for _, raw := range cases {
		var ts Timestamp
		if err := json.Unmarshal([]byte(raw), &ts); err != nil {
			t.Fatalf("unmarshal %s: %v", raw, err)
		}
		if ts.IsZero() {
			t.Fatalf("unmarshal %s: zero time", raw)
		}
	}

	var ts Timestamp
	if err := json.Unmarshal([]byte(`null`), &ts); err != nil {
		t.Fatalf("null: %v", err)
	}
	if !ts.IsZero() {
		t.Fatalf("null should stay zero")
	}
}

func TestOrderStatusLabels(t *testing.T) {
	if OrderPending.Label() != "Pending" {
		t.Fatalf("pending label: %q", OrderPending.Label())
	}
	if OrderStatus("XX").Label() != "XX" {
		t.Fatalf("unknown code should echo itself")
	}
	if OrderStatus("XX").Valid() {
		t.Fatalf("unknown code should not validate")
	}
}

func TestRevenueBearingStatuses(t *testing.T) {
	bearing := map[OrderStatus]bool{
		OrderDelivered: true, OrderConfirmed: true, OrderProcessing: true, OrderShipped: true,
		OrderPending: false, OrderCancelled: false, OrderRefunded: false,
	}
	for status, want := range bearing {
		if status.RevenueBearing() != want {
			t.Fatalf("%s revenue bearing: want %v", status, want)
		}
	}
}

func TestOrderCustomerDisplayName(t *testing.T) {
	if (OrderCustomer{Username: "guest1"}).DisplayName() != "guest1" {
		t.Fatalf("username should win")
	}
	if (OrderCustomer{FirstName: "Ana"}).DisplayName() != "Ana" {
		t.Fatalf("first name fallback broken")
	}
	if (OrderCustomer{}).DisplayName() != "N/A" {
		t.Fatalf("empty customer should render N/A")
	}
}

func TestFieldErrors(t *testing.T) {
	fe := FieldErrors{}
	fe.Set("email", "Email is required")
	fe.Set("email", "overwritten")
	if fe["email"] != "Email is required" {
		t.Fatalf("first message must win: %q", fe["email"])
	}

	fe.Set("name", "Name is required")
	if fe.Error() != "email: Email is required; name: Name is required" {
		t.Fatalf("message order should be deterministic: %q", fe.Error())
	}

	if !IsValidation(fe) {
		t.Fatalf("field errors should classify as validation")
	}
	got, ok := AsFieldErrors(fe)
	if !ok || got["name"] == "" {
		t.Fatalf("AsFieldErrors lost data")
	}
}
