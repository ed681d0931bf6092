package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/ofx"
	"github.com/shopspring/decimal"
)

// Transaction renders an investment transaction to a short sentence. name
// resolves the securities involved.
func Transaction(tx ofx.InvestmentTransaction, name func(*ofx.SecurityID) string, currency string) string {
	switch v := tx.(type) {
	case *ofx.BuyStock:
		return bought(v.Buy, v.Type == ofx.BuyToCover, name, currency)
	case *ofx.BuyMutualFund:
		return bought(v.Buy, v.Type == ofx.BuyToCover, name, currency)
	case *ofx.SellStock:
		return sold(v.Sell, v.Type == ofx.SellShort, name, currency)
	case *ofx.SellMutualFund:
		return sold(v.Sell, v.Type == ofx.SellShort, name, currency)
	case *ofx.Income:
		return fmt.Sprintf("%s from %s", incomeLabels[v.Type], name(v.Security))
	case *ofx.InvestmentBankTransaction:
		if v.Transaction == nil {
			return "Bank transaction"
		}
		return strings.TrimSpace(fmt.Sprintf("%s %s", capitalize(string(v.Transaction.Type)), description(*v.Transaction)))
	default:
		return fmt.Sprintf("%T", tx)
	}
}

var incomeLabels = map[ofx.IncomeType]string{
	ofx.IncomeLongTermGain:  "Long term capital gain",
	ofx.IncomeShortTermGain: "Short term capital gain",
	ofx.IncomeDividend:      "Dividend",
	ofx.IncomeInterest:      "Interest",
	ofx.IncomeMisc:          "Income",
	"":                      "Income",
}

func bought(b *ofx.InvestmentBuy, cover bool, name func(*ofx.SecurityID) string, currency string) string {
	if b == nil {
		return "Buy"
	}
	verb := "Bought"
	if cover {
		verb = "Bought to cover"
	}
	return fmt.Sprintf("%s %s %s at %s", verb, b.Units, name(b.Security), Amount(b.UnitPrice, currency))
}

func sold(s *ofx.InvestmentSell, short bool, name func(*ofx.SecurityID) string, currency string) string {
	if s == nil {
		return "Sell"
	}
	verb := "Sold"
	if short {
		verb = "Sold short"
	}
	return fmt.Sprintf("%s %s %s at %s", verb, s.Units.Abs(), name(s.Security), Amount(s.UnitPrice, currency))
}

// tradeOf returns the trade date and total of an investment transaction.
func tradeOf(tx ofx.InvestmentTransaction) (string, decimal.Decimal) {
	switch v := tx.(type) {
	case *ofx.BuyStock:
		return buyTrade(v.Buy)
	case *ofx.BuyMutualFund:
		return buyTrade(v.Buy)
	case *ofx.SellStock:
		return sellTrade(v.Sell)
	case *ofx.SellMutualFund:
		return sellTrade(v.Sell)
	case *ofx.Income:
		return tradeDay(v.Transaction), v.Total
	case *ofx.InvestmentBankTransaction:
		if v.Transaction != nil {
			return Day(v.Transaction.Posted), v.Transaction.Amount
		}
	}
	return "", decimal.Zero
}

func buyTrade(b *ofx.InvestmentBuy) (string, decimal.Decimal) {
	if b == nil {
		return "", decimal.Zero
	}
	return tradeDay(b.Transaction), b.Total
}

func sellTrade(s *ofx.InvestmentSell) (string, decimal.Decimal) {
	if s == nil {
		return "", decimal.Zero
	}
	return tradeDay(s.Transaction), s.Total
}

func tradeDay(i *ofx.InvestmentTransactionInfo) string {
	if i == nil {
		return ""
	}
	return Day(i.TradeDate)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	s = strings.ToLower(s)
	return strings.ToUpper(s[:1]) + s[1:]
}
