// Package locale formats currency amounts and dates for report text.
package locale

import (
	"fmt"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ---------------------------------------------------------------------------
// Constants
// ---------------------------------------------------------------------------

const (
	dateLayout     = "02/01/2006"
	dateTimeLayout = "02/01/2006 15:04"
)

// Formatter formats values for one language, currency and time zone.
type Formatter struct {
	printer *message.Printer
	symbol  string
	loc     *time.Location
}

// New creates a formatter for a BCP 47 language tag (e.g. "es-EC"), an ISO
// 4217 currency code and a time zone. A nil loc means UTC.
func New(tag, currencyCode string, loc *time.Location) (*Formatter, error) {
	lang, err := language.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", tag, err)
	}
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return nil, fmt.Errorf("invalid currency %q: %w", currencyCode, err)
	}
	if loc == nil {
		loc = time.UTC
	}

	p := message.NewPrinter(lang)
	return &Formatter{
		printer: p,
		symbol:  p.Sprint(currency.NarrowSymbol(unit)),
		loc:     loc,
	}, nil
}

// FormatCurrency formats an amount with two decimals and the currency symbol,
// using the language's separators.
func (f *Formatter) FormatCurrency(amount float64) string {
	return f.symbol + " " + f.printer.Sprint(number.Decimal(amount, number.Scale(2)))
}

// FormatDate formats a date as DD/MM/YYYY.
func (f *Formatter) FormatDate(t time.Time) string {
	return t.In(f.loc).Format(dateLayout)
}

// FormatDateTime formats a timestamp as DD/MM/YYYY HH:MM in the formatter's
// time zone.
func (f *Formatter) FormatDateTime(t time.Time) string {
	return t.In(f.loc).Format(dateTimeLayout)
}
