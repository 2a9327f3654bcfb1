package locale

import (
	"strings"
	"testing"
	"time"
)

func TestNewInvalid(t *testing.T) {
	tests := []struct {
		name     string
		tag      string
		currency string
	}{
		{"bad tag", "not a tag!!", "USD"},
		{"bad currency", "es-EC", "DOLLARS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.tag, tt.currency, nil); err == nil {
				t.Errorf("New(%q, %q) expected error", tt.tag, tt.currency)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	f, err := New("es-EC", "USD", time.UTC)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{"single digit day and month", time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), "05/01/2026"},
		{"double digit day and month", time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC), "25/12/2026"},
		{"leap year date", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), "29/02/2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.FormatDate(tt.date); got != tt.expected {
				t.Errorf("FormatDate(%v) = %q, want %q", tt.date, got, tt.expected)
			}
		})
	}
}

func TestFormatDateTimeUsesLocation(t *testing.T) {
	gye := time.FixedZone("ECT", -5*60*60)
	f, err := New("es-EC", "USD", gye)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	got := f.FormatDateTime(time.Date(2024, 6, 1, 3, 15, 0, 0, time.UTC))
	if want := "31/05/2024 22:15"; got != want {
		t.Errorf("FormatDateTime() = %q, want %q", got, want)
	}
}

func TestFormatCurrency(t *testing.T) {
	f, err := New("es", "USD", nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		name   string
		amount float64
		suffix string
	}{
		{"zero", 0, "0,00"},
		{"integer amount", 14, "14,00"},
		{"decimal amount", 30.6, "30,60"},
		{"large amount", 12345.67, ",67"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.FormatCurrency(tt.amount)
			if !strings.HasSuffix(got, tt.suffix) {
				t.Errorf("FormatCurrency(%v) = %q, want suffix %q", tt.amount, got, tt.suffix)
			}
			if !strings.Contains(got, "$") {
				t.Errorf("FormatCurrency(%v) = %q, missing currency symbol", tt.amount, got)
			}
		})
	}
}
