package report

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// NotAvailable replaces every optional display value that is missing or
// cannot be formatted.
const NotAvailable = "N/A"

// Formatter renders locale-specific text.
type Formatter interface {
	FormatCurrency(amount float64) string
	FormatDate(t time.Time) string
	FormatDateTime(t time.Time) string
}

// WorkdayCounter counts working days between two dates, both inclusive.
// A negative count means the period cannot be counted.
type WorkdayCounter interface {
	WorkdaysInRange(start, end time.Time) int
}

func textOrNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return NotAvailable
	}
	return s
}

// parseNumber accepts plain decimal numbers only. Hex floats, NaN and
// infinities are treated as malformed.
func parseNumber(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.ContainsAny(raw, "xXpP") {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func currencyOrNA(f Formatter, raw string) string {
	v, ok := parseNumber(raw)
	if !ok {
		return NotAvailable
	}
	return f.FormatCurrency(v)
}

func percentOrNA(raw string) string {
	v, ok := parseNumber(raw)
	if !ok {
		return NotAvailable
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

func dateOrNA(f Formatter, t *time.Time) string {
	if t == nil || t.IsZero() {
		return NotAvailable
	}
	return f.FormatDate(*t)
}

func dateTimeOrNA(f Formatter, t *time.Time) string {
	if t == nil || t.IsZero() {
		return NotAvailable
	}
	return f.FormatDateTime(*t)
}

// periodOrNA formats "start - end", or N/A when either bound is missing.
func periodOrNA(f Formatter, start, end *time.Time) string {
	if start == nil || end == nil || start.IsZero() || end.IsZero() {
		return NotAvailable
	}
	return f.FormatDate(*start) + " - " + f.FormatDate(*end)
}

func workdaysOrNA(w WorkdayCounter, start, end *time.Time) string {
	if w == nil || start == nil || end == nil || end.Before(*start) {
		return NotAvailable
	}
	n := w.WorkdaysInRange(*start, *end)
	if n < 0 {
		return NotAvailable
	}
	return strconv.Itoa(n)
}
