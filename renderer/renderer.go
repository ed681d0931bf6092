// Package renderer renders OFX responses to markdown.
//
// Each report has a view type, built from the ofx types by a New function,
// holding the values already formatted. Views are rendered by text/template
// using the markdown templates embedded in this package.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/ofx"
)

//go:embed *.md
var templates embed.FS

// RenderStatement renders a bank or credit card statement.
func RenderStatement(s *Statement) string {
	partials := map[string]string{
		"statement_title":        "statement_title.md",
		"statement_transactions": "statement_transactions.md",
		"statement_balances":     "statement_balances.md",
	}
	return renderTemplate("statement", "statement.md", partials, s)
}

// RenderInvestment renders a brokerage account statement.
func RenderInvestment(i *Investment) string {
	partials := map[string]string{
		"investment_title":        "investment_title.md",
		"investment_transactions": "investment_transactions.md",
		"investment_positions":    "investment_positions.md",
		"investment_balance":      "investment_balance.md",
	}
	// An empty file name results in an empty template.
	if i.Balance == nil {
		partials["investment_balance"] = ""
	}
	return renderTemplate("investment", "investment.md", partials, i)
}

// RenderAccounts renders the accounts of a user.
func RenderAccounts(a *Accounts) string {
	return renderTemplate("accounts", "accounts.md", nil, a)
}

// RenderProfile renders the profile of an institution.
func RenderProfile(p *Profile) string {
	return renderTemplate("profile", "profile.md", nil, p)
}

// RenderSecurities renders a security list.
func RenderSecurities(s *Securities) string {
	return renderTemplate("securities", "securities.md", nil, s)
}

// RenderTax1099 renders 1099 forms.
func RenderTax1099(t *Tax1099) string {
	return renderTemplate("tax1099", "tax1099.md", nil, t)
}

// RenderInstitutions renders an institution directory.
func RenderInstitutions(i *Institutions) string {
	return renderTemplate("institutions", "institutions.md", nil, i)
}

// Markdown renders any response message that has a report, and reports
// whether it did.
func Markdown(v any) (string, bool) {
	switch v := v.(type) {
	case *ofx.StatementResponse:
		return RenderStatement(NewBankStatement(v)), true
	case *ofx.CreditCardStatementResponse:
		return RenderStatement(NewCreditCardStatement(v)), true
	case *ofx.InvestmentStatementResponse:
		return RenderInvestment(NewInvestment(v, nil)), true
	case *ofx.AccountInfoResponse:
		return RenderAccounts(NewAccounts(v.Accounts)), true
	case *ofx.ProfileResponse:
		return RenderProfile(NewProfile(v)), true
	case *ofx.SecurityList:
		return RenderSecurities(NewSecurities(v, "")), true
	case *ofx.Tax1099Response:
		return RenderTax1099(NewTax1099(v)), true
	}
	return "", false
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
