package renderer

import (
	"strings"

	"github.com/etnz/ofx"
)

// Accounts is the view of the accounts of a user.
type Accounts struct {
	Accounts []AccountLine `json:"accounts"`
}

// AccountLine is a single account.
type AccountLine struct {
	Kind        string `json:"kind"`
	ID          string `json:"id"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Download    string `json:"download"`
}

// NewAccounts creates the view of account descriptions.
func NewAccounts(infos []ofx.AccountInfo) *Accounts {
	v := &Accounts{Accounts: make([]AccountLine, 0, len(infos))}
	for _, info := range infos {
		line := AccountLine{Description: cell(info.Description)}
		switch {
		case info.Bank != nil:
			line.Kind, line.Status, line.Download = "bank", string(info.Bank.Status), yesNo(info.Bank.SupportsDownload)
			if a := info.Bank.Account; a != nil {
				line.ID = strings.TrimSpace(a.BankID + " " + a.AccountID)
			}
		case info.CreditCard != nil:
			line.Kind, line.Status, line.Download = "creditcard", string(info.CreditCard.Status), yesNo(info.CreditCard.SupportsDownload)
			if a := info.CreditCard.Account; a != nil {
				line.ID = a.AccountID
			}
		case info.Investment != nil:
			line.Kind, line.Status, line.Download = "investment", string(info.Investment.Status), yesNo(true)
			if a := info.Investment.Account; a != nil {
				line.ID = strings.TrimSpace(a.BrokerID + " " + a.AccountID)
			}
		default:
			line.Kind = "unknown"
		}
		line.ID = cell(line.ID)
		line.Status = strings.ToLower(line.Status)
		v.Accounts = append(v.Accounts, line)
	}
	return v
}
