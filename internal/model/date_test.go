package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDate_JSONRoundTrip(t *testing.T) {
	t.Parallel()
	d, err := ParseDate("2026-03-15")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `"2026-03-15"` {
		t.Fatalf("got %s", b)
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !back.Equal(d) {
		t.Fatalf("round trip mismatch: %s vs %s", back, d)
	}
}

func TestDate_UnmarshalLegacyTimestamp(t *testing.T) {
	t.Parallel()
	var d Date
	if err := json.Unmarshal([]byte(`"2025-12-01T14:30:00.000Z"`), &d); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if d.String() != "2025-12-01" {
		t.Fatalf("got %s, want 2025-12-01", d)
	}
}

func TestDate_UnmarshalEmpty(t *testing.T) {
	t.Parallel()
	var d Date
	if err := json.Unmarshal([]byte(`""`), &d); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !d.IsZero() {
		t.Fatalf("want zero date, got %s", d)
	}
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `""` {
		t.Fatalf("zero date marshals to %s", b)
	}
}

func TestDate_UnmarshalGarbage(t *testing.T) {
	t.Parallel()
	var d Date
	if err := json.Unmarshal([]byte(`"yesterday"`), &d); err == nil {
		t.Fatal("want error for non-date string")
	}
}

func TestDate_Ordering(t *testing.T) {
	t.Parallel()
	a := NewDate(2026, time.January, 10)
	b := a.AddDays(5)
	if !a.Before(b) || !b.After(a) {
		t.Fatal("ordering broken")
	}
	if a.Before(a) || a.After(a) {
		t.Fatal("a day must not be before or after itself")
	}
	if got := a.AddDays(-10); got.String() != "2025-12-31" {
		t.Fatalf("AddDays across year: got %s", got)
	}
}

func TestBooking_Covers(t *testing.T) {
	t.Parallel()
	b := Booking{
		CheckIn:  NewDate(2026, time.June, 1),
		CheckOut: NewDate(2026, time.June, 8),
	}
	for _, tc := range []struct {
		day  Date
		want bool
	}{
		{NewDate(2026, time.May, 31), false},
		{NewDate(2026, time.June, 1), true},
		{NewDate(2026, time.June, 4), true},
		{NewDate(2026, time.June, 8), true},
		{NewDate(2026, time.June, 9), false},
	} {
		if got := b.Covers(tc.day); got != tc.want {
			t.Errorf("Covers(%s) = %v, want %v", tc.day, got, tc.want)
		}
	}
}
