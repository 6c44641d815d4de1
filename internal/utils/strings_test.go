package utils

import "testing"

func TestContainsFold(t *testing.T) {
	if !ContainsFold("", "anything") {
		t.Fatalf("empty query should match everything")
	}
	if !ContainsFold("ORD-1", "ord-123", "guest") {
		t.Fatalf("case-insensitive substring should match")
	}
	if ContainsFold("missing", "ord-123", "guest") {
		t.Fatalf("unexpected match")
	}
	if ContainsFold("x", "") {
		t.Fatalf("empty candidate should not match")
	}
}

func TestNormalizeSpace(t *testing.T) {
	if got := NormalizeSpace("  R  101 "); got != "R 101" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatMoney(t *testing.T) {
	if got := FormatMoney(12.5); got != "12.50" {
		t.Fatalf("got %q", got)
	}
	if got := FormatDollar(0); got != "$0.00" {
		t.Fatalf("got %q", got)
	}
}
