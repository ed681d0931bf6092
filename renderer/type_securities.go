package renderer

import (
	"strings"

	"github.com/etnz/ofx"
)

// Securities is the view of a security list.
type Securities struct {
	Securities []SecurityLine `json:"securities"`
}

// SecurityLine describes a single security.
type SecurityLine struct {
	Ticker string `json:"ticker"`
	Name   string `json:"name"`
	ID     string `json:"id"`
	Kind   string `json:"kind"`
	Price  string `json:"price,omitempty"`
	AsOf   string `json:"asOf,omitempty"`
}

// NewSecurities creates the view of a security list. Prices without a
// currency are formatted in currency.
func NewSecurities(list *ofx.SecurityList, currency string) *Securities {
	v := &Securities{Securities: make([]SecurityLine, 0)}
	if list == nil {
		return v
	}
	for _, s := range list.Securities {
		info := s.Info()
		if info == nil {
			continue
		}
		line := SecurityLine{
			Ticker: cell(info.Ticker),
			Name:   cell(info.Name),
			Kind:   securityKind(s),
			AsOf:   Day(info.PriceAsOf),
		}
		if info.ID != nil {
			line.ID = strings.TrimSpace(info.ID.UniqueIDType + " " + info.ID.UniqueID)
		}
		cur := currency
		if info.Currency != nil && info.Currency.Symbol != "" {
			cur = info.Currency.Symbol
		}
		line.Price = optAmount(info.UnitPrice, cur)
		v.Securities = append(v.Securities, line)
	}
	return v
}

func securityKind(s ofx.Security) string {
	switch s.(type) {
	case *ofx.StockInfo:
		return "stock"
	case *ofx.MutualFundInfo:
		return "fund"
	case *ofx.DebtInfo:
		return "debt"
	case *ofx.OptionInfo:
		return "option"
	default:
		return "other"
	}
}
