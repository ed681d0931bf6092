package ofx

// registerAll registers every aggregate of this package.
func registerAll(r *Registry) {
	registerStatus(r)
	registerSignon(r)
	registerAccounts(r)
	registerStatements(r)
	registerBanking(r)
	registerCreditCard(r)
	registerInvestment(r)
	registerSecurityList(r)
	registerTax1099(r)
	registerProfile(r)
	registerSignup(r)
	registerEnvelopes(r)
}
