package renderer

import (
	"strings"

	"github.com/etnz/ofx"
)

// Response renders every report carried by a response, in message set
// order. Investment statements name their securities after the security
// list of the same response.
func Response(resp *ofx.ResponseEnvelope) string {
	var list *ofx.SecurityList
	if s, ok := resp.MessageSet(ofx.SecurityListSet).(*ofx.SecurityListResponseMessageSet); ok {
		list = s.List
	}

	var reports []string
	for _, set := range resp.MessageSets {
		switch set := set.(type) {
		case *ofx.SignupResponseMessageSet:
			for _, rs := range set.Responses {
				if rs.Message != nil {
					reports = append(reports, RenderAccounts(NewAccounts(rs.Message.Accounts)))
				}
			}
		case *ofx.BankingResponseMessageSet:
			for _, rs := range set.StatementResponses {
				if rs.Message != nil {
					reports = append(reports, RenderStatement(NewBankStatement(rs.Message)))
				}
			}
		case *ofx.CreditCardResponseMessageSet:
			for _, rs := range set.StatementResponses {
				if rs.Message != nil {
					reports = append(reports, RenderStatement(NewCreditCardStatement(rs.Message)))
				}
			}
		case *ofx.InvestmentResponseMessageSet:
			for _, rs := range set.StatementResponses {
				if rs.Message != nil {
					reports = append(reports, RenderInvestment(NewInvestment(rs.Message, list)))
				}
			}
		case *ofx.SecurityListResponseMessageSet:
			// the list is part of the investment statements it comes with
			if list != nil && resp.MessageSet(ofx.InvestmentSet) == nil {
				reports = append(reports, RenderSecurities(NewSecurities(list, "")))
			}
		case *ofx.Tax1099ResponseMessageSet:
			for _, rs := range set.Responses {
				if rs.Message != nil {
					reports = append(reports, RenderTax1099(NewTax1099(rs.Message)))
				}
			}
		case *ofx.ProfileResponseMessageSet:
			for _, rs := range set.Responses {
				if rs.Message != nil {
					reports = append(reports, RenderProfile(NewProfile(rs.Message)))
				}
			}
		}
	}
	return strings.Join(reports, "\n")
}
