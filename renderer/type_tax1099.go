package renderer

import (
	"strings"

	"github.com/etnz/ofx"
	"github.com/shopspring/decimal"
)

// Tax1099 is the view of the 1099 forms of a tax year.
type Tax1099 struct {
	Forms []TaxForm `json:"forms"`
}

// TaxForm is a single 1099 form.
type TaxForm struct {
	Form    string        `json:"form"`
	Year    int           `json:"year"`
	Payer   string        `json:"payer"`
	Account string        `json:"account,omitempty"`
	Boxes   []TaxFormLine `json:"boxes"`
}

// TaxFormLine is a box of a form.
type TaxFormLine struct {
	Label  string `json:"label"`
	Amount string `json:"amount"`
}

// NewTax1099 creates the view of 1099 forms. Amounts are in US dollars.
func NewTax1099(r *ofx.Tax1099Response) *Tax1099 {
	v := &Tax1099{Forms: make([]TaxForm, 0)}
	for _, d := range r.Dividends {
		v.Forms = append(v.Forms, taxForm("1099-DIV", d.Year, d.PayerAddress, d.RecipientAccount, []box{
			{"Total ordinary dividends", d.OrdinaryDividends},
			{"Qualified dividends", d.QualifiedDividends},
			{"Total capital gain distributions", d.TotalCapitalGain},
			{"Nondividend distributions", d.NonTaxable},
			{"Federal income tax withheld", d.FederalWithholding},
			{"Investment expenses", d.InvestmentExpenses},
			{"Foreign tax paid", d.ForeignTaxPaid},
		}))
	}
	for _, i := range r.Interests {
		v.Forms = append(v.Forms, taxForm("1099-INT", i.Year, i.PayerAddress, i.RecipientAccount, []box{
			{"Interest income", i.Interest},
			{"Early withdrawal penalty", i.EarlyWithdrawalPenalty},
			{"Interest on U.S. Savings Bonds and Treasury obligations", i.USBondInterest},
			{"Federal income tax withheld", i.FederalWithholding},
			{"Investment expenses", i.InvestmentExpenses},
			{"Foreign tax paid", i.ForeignTaxPaid},
			{"Tax-exempt interest", i.TaxExemptInterest},
		}))
	}
	return v
}

type box struct {
	label  string
	amount *decimal.Decimal
}

func taxForm(form string, year int, payer *ofx.Address, account string, boxes []box) TaxForm {
	f := TaxForm{Form: form, Year: year, Account: account, Boxes: make([]TaxFormLine, 0)}
	if payer != nil {
		f.Payer = cell(strings.TrimSpace(payer.Name1 + " " + payer.Name2))
	}
	for _, b := range boxes {
		if b.amount != nil {
			f.Boxes = append(f.Boxes, TaxFormLine{Label: b.label, Amount: Amount(*b.amount, "USD")})
		}
	}
	return f
}
