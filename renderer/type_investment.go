package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/ofx"
)

// Investment is the view of a brokerage account statement.
type Investment struct {
	Account      string           `json:"account"`
	Currency     string           `json:"currency"`
	AsOf         string           `json:"asOf"`
	From         string           `json:"from,omitempty"`
	To           string           `json:"to,omitempty"`
	Transactions []InvestmentLine `json:"transactions"`
	Positions    []PositionLine   `json:"positions"`
	Balance      *CashBalance     `json:"balance,omitempty"`
}

// InvestmentLine is a single transaction of a brokerage account.
type InvestmentLine struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Total       string `json:"total"`
}

// PositionLine is a security held in the account.
type PositionLine struct {
	Security    string `json:"security"`
	Type        string `json:"type"`
	Units       string `json:"units"`
	UnitPrice   string `json:"unitPrice"`
	MarketValue string `json:"marketValue"`
	PriceAsOf   string `json:"priceAsOf"`
}

// CashBalance holds the cash balances of a brokerage account.
type CashBalance struct {
	AvailableCash string `json:"availableCash"`
	MarginBalance string `json:"marginBalance"`
	ShortBalance  string `json:"shortBalance"`
	BuyingPower   string `json:"buyingPower,omitempty"`
}

// NewInvestment creates the view of an investment statement. Securities are
// named after their ticker when list describes them.
func NewInvestment(s *ofx.InvestmentStatementResponse, list *ofx.SecurityList) *Investment {
	v := &Investment{
		Currency:     s.CurrencyCode,
		AsOf:         Day(s.AsOf),
		Transactions: make([]InvestmentLine, 0),
		Positions:    make([]PositionLine, 0),
	}
	if a := s.Account; a != nil {
		v.Account = fmt.Sprintf("%s at %s", a.AccountID, a.BrokerID)
	}
	name := securityNamer(list)

	if l := s.TransactionList; l != nil {
		v.From, v.To = Day(l.Start), Day(l.End)
		for _, tx := range l.Transactions {
			date, total := tradeOf(tx)
			v.Transactions = append(v.Transactions, InvestmentLine{
				Date:        date,
				Description: cell(Transaction(tx, name, v.Currency)),
				Total:       Amount(total, v.Currency),
			})
		}
	}
	if s.Positions != nil {
		for _, p := range s.Positions.Positions {
			info := p.Info()
			if info == nil {
				continue
			}
			currency := v.Currency
			if info.Currency != nil && info.Currency.Symbol != "" {
				currency = info.Currency.Symbol
			}
			v.Positions = append(v.Positions, PositionLine{
				Security:    cell(name(info.Security)),
				Type:        strings.ToLower(string(info.Type)),
				Units:       info.Units.String(),
				UnitPrice:   Amount(info.UnitPrice, currency),
				MarketValue: Amount(info.MarketValue, currency),
				PriceAsOf:   Day(info.PriceAsOf),
			})
		}
	}
	if b := s.Balance; b != nil {
		v.Balance = &CashBalance{
			AvailableCash: Amount(b.AvailableCash, v.Currency),
			MarginBalance: Amount(b.MarginBalance, v.Currency),
			ShortBalance:  Amount(b.ShortBalance, v.Currency),
			BuyingPower:   optAmount(b.BuyingPower, v.Currency),
		}
	}
	return v
}

// securityNamer returns a function naming a security by its ticker, its
// name, or its id, in that order of preference.
func securityNamer(list *ofx.SecurityList) func(*ofx.SecurityID) string {
	known := make(map[ofx.SecurityID]*ofx.SecurityInfo)
	if list != nil {
		for _, s := range list.Securities {
			if info := s.Info(); info != nil && info.ID != nil {
				known[*info.ID] = info
			}
		}
	}
	return func(id *ofx.SecurityID) string {
		if id == nil {
			return "?"
		}
		if info, ok := known[*id]; ok {
			if info.Ticker != "" {
				return info.Ticker
			}
			if info.Name != "" {
				return info.Name
			}
		}
		return fmt.Sprintf("%s %s", id.UniqueIDType, id.UniqueID)
	}
}
