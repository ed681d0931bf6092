package ofx

import (
	"strings"

	"github.com/Rhymond/go-money"
)

// IsCurrency reports whether code is an ISO-4217 currency code, as expected
// in CURDEF and CURSYM.
func IsCurrency(code string) bool {
	return code != "" && money.GetCurrency(strings.ToUpper(code)) != nil
}
