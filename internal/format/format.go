// Package format renders domain values for display. Values are formatted at
// the presentation boundary; records keep the raw numbers.
package format

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/preston-bernstein/wowp-data-service/internal/domain"
	"github.com/preston-bernstein/wowp-data-service/internal/timeutil"
)

// NotAvailable is the sentinel rendered for unset values.
const NotAvailable = "N/A"

// PercentDecimals is the precision used for percentage fields.
const PercentDecimals = 1

// Formatter formats numbers and dates for a single locale and time zone.
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
	loc     *time.Location
}

// New builds a Formatter. A nil location formats dates in UTC.
func New(tag language.Tag, loc *time.Location) Formatter {
	if loc == nil {
		loc = time.UTC
	}
	return Formatter{
		tag:     tag,
		printer: message.NewPrinter(tag),
		loc:     loc,
	}
}

// Locale returns the formatter's language tag.
func (f Formatter) Locale() language.Tag {
	return f.tag
}

// Int renders an integer with thousands grouping.
func (f Formatter) Int(v domain.NullInt64) string {
	if !v.Valid {
		return NotAvailable
	}
	return f.printer.Sprintf("%d", v.Int64)
}

// Number renders v rounded to decimals places with thousands grouping.
func (f Formatter) Number(v domain.NullFloat64, decimals int) string {
	if !v.Valid || math.IsNaN(v.Float64) || math.IsInf(v.Float64, 0) {
		return NotAvailable
	}
	if decimals < 0 {
		decimals = 0
	}
	return f.printer.Sprintf(fmt.Sprintf("%%.%df", decimals), round(v.Float64, decimals))
}

// Percent renders v with one decimal and a trailing percent sign.
func (f Formatter) Percent(v domain.NullFloat64) string {
	s := f.Number(v, PercentDecimals)
	if s == NotAvailable {
		return s
	}
	return s + "%"
}

// Hours converts seconds to hours and renders them with an "h" suffix.
func (f Formatter) Hours(seconds domain.NullInt64, decimals int) string {
	if !seconds.Valid {
		return NotAvailable
	}
	return f.Number(domain.FloatOf(float64(seconds.Int64)/3600), decimals) + "h"
}

// Date renders a set timestamp as "<day> <Month> <year>".
func (f Formatter) Date(v domain.NullTime) string {
	if !v.Valid || v.Time.IsZero() {
		return NotAvailable
	}
	return timeutil.FormatDisplay(v.Time, f.loc)
}

// WithUnit renders a positive measurement followed by unit. Zero and unset
// values render as the sentinel.
func (f Formatter) WithUnit(v domain.NullFloat64, unit string) string {
	if !v.Valid || v.Float64 == 0 {
		return NotAvailable
	}
	return f.Number(v, decimalsFor(v.Float64)) + " " + unit
}

// Text returns s, or fallback when s is empty.
func Text(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func round(v float64, decimals int) float64 {
	scale := math.Pow10(decimals)
	return math.Round(v*scale) / scale
}

// decimalsFor keeps one decimal for fractional values so 2.5 s stays 2.5 s.
func decimalsFor(v float64) int {
	if v == math.Trunc(v) {
		return 0
	}
	return 1
}
