package renderer

import (
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/etnz/ofx"
	"github.com/shopspring/decimal"
)

// Amount formats d in the currency code. Known currencies are printed with
// their symbol and number of decimals, others as is followed by the code.
func Amount(d decimal.Decimal, code string) string {
	if !ofx.IsCurrency(code) {
		return strings.TrimSpace(d.String() + " " + code)
	}
	cur := money.GetCurrency(strings.ToUpper(code))
	fraction := int32(cur.Fraction)
	return cur.Formatter().Format(d.Round(fraction).Shift(fraction).IntPart())
}

// optAmount is Amount for optional values, empty when d is nil.
func optAmount(d *decimal.Decimal, code string) string {
	if d == nil {
		return ""
	}
	return Amount(*d, code)
}

// Day formats the date of t, empty for the zero time.
func Day(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.DateOnly)
}

var cellEscaper = strings.NewReplacer("|", `\|`, "<", "&lt;", ">", "&gt;", "\r", "", "\n", " ")

// cell makes s safe for a markdown table cell.
func cell(s string) string { return cellEscaper.Replace(s) }

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
