package ofx

import (
	"time"

	"github.com/shopspring/decimal"
)

// at parses an RFC 3339 time, for test values.
func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

// dec parses a decimal, for test values.
func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decp(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func ok() *Status { return NewStatus(Success) }

func bankAccount() *BankAccount {
	return &BankAccount{BankID: "121000248", AccountID: "0123456789", Type: Checking}
}

// sampleRequest is a request with a password change transaction (A1) and a
// bank statement transaction (A2).
func sampleRequest() *RequestEnvelope {
	req := &RequestEnvelope{UID: "F1", Security: SecurityNone}
	req.Add(
		&BankingRequestMessageSet{StatementRequests: []StatementTransactionRequest{{
			TransactionRequest: TransactionRequest{UID: "A2"},
			Message:            &StatementRequest{Account: bankAccount(), Transactions: StatementRange(at("2024-01-01T00:00:00Z"), time.Time{})},
		}}},
		&SignonRequestMessageSet{
			Signon: &SignonRequest{
				Timestamp:      at("2024-02-01T10:00:00Z"),
				UserID:         "jdoe",
				Password:       "secret",
				Language:       "ENG",
				FinancialInst:  &FinancialInstitution{Organization: "BANK", ID: "1234"},
				ApplicationID:  DefaultAppID,
				ApplicationVer: DefaultAppVersion,
			},
			PasswordChange: &PasswordChangeTransactionRequest{
				TransactionRequest: TransactionRequest{UID: "A1"},
				Message:            &PasswordChangeRequest{UserID: "jdoe", NewPassword: "n3w"},
			},
		},
	)
	return req
}

func signonResponse() *SignonResponse {
	return &SignonResponse{
		Status:        ok(),
		Timestamp:     at("2024-02-01T10:00:01Z"),
		Language:      "ENG",
		FinancialInst: &FinancialInstitution{Organization: "BANK", ID: "1234"},
	}
}

func statementResponse() *StatementResponse {
	return &StatementResponse{
		CurrencyCode: "USD",
		Account:      bankAccount(),
		TransactionList: &TransactionList{
			Start: at("2024-01-01T00:00:00Z"),
			End:   at("2024-02-01T00:00:00Z"),
			Transactions: []Transaction{
				{
					Type:   Debit,
					Posted: at("2024-01-05T12:00:00Z"),
					Amount: dec("-42.17"),
					ID:     "T-0001",
					Name:   "AT&T <wireless>",
					Memo:   "Bill payment",
				},
				{
					Type:        Check,
					Posted:      at("2024-01-09T00:00:00Z"),
					Amount:      dec("-150"),
					ID:          "T-0002",
					CheckNumber: "1043",
					Payee: &Payee{
						Name:       "Café Élysée",
						Address1:   "1 Main St",
						City:       "Springfield",
						State:      "IL",
						PostalCode: "62701",
						Phone:      "555-0100",
					},
					Currency: &Currency{Rate: dec("1.0825"), Symbol: "EUR"},
				},
			},
		},
		LedgerBalance:    &Balance{Amount: dec("1234.56"), AsOf: at("2024-02-01T00:00:00Z")},
		AvailableBalance: &Balance{Amount: dec("1200"), AsOf: at("2024-02-01T00:00:00Z")},
	}
}

// sampleResponse answers sampleRequest successfully.
func sampleResponse() *ResponseEnvelope {
	resp := &ResponseEnvelope{UID: "F1", Security: SecurityNone}
	resp.Add(
		&SignonResponseMessageSet{
			Signon: signonResponse(),
			PasswordChange: &PasswordChangeTransactionResponse{
				TransactionResponse: TransactionResponse{UID: "A1", Status: ok()},
				Message:             &PasswordChangeResponse{UserID: "jdoe", TimeChanged: at("2024-02-01T10:00:01Z")},
			},
		},
		&BankingResponseMessageSet{StatementResponses: []StatementTransactionResponse{{
			TransactionResponse: TransactionResponse{UID: "A2", Status: ok()},
			Message:             statementResponse(),
		}}},
	)
	return resp
}

// investmentResponse is a response with every polymorphic slot filled.
func investmentResponse() *ResponseEnvelope {
	secID := &SecurityID{UniqueID: "037833100", UniqueIDType: "CUSIP"}
	fundID := &SecurityID{UniqueID: "922908363", UniqueIDType: "CUSIP"}
	resp := &ResponseEnvelope{UID: "F2", Security: SecurityNone}
	resp.Add(
		&SignonResponseMessageSet{Signon: signonResponse()},
		&InvestmentResponseMessageSet{StatementResponses: []InvestmentStatementTransactionResponse{{
			TransactionResponse: TransactionResponse{UID: "I1", Status: ok(), ClientCookie: "c00kie"},
			Message: &InvestmentStatementResponse{
				AsOf:         at("2024-03-01T00:00:00Z"),
				CurrencyCode: "USD",
				Account:      &InvestmentAccount{BrokerID: "broker.com", AccountID: "X-77"},
				TransactionList: &InvestmentTransactionList{
					Start: at("2024-02-01T00:00:00Z"),
					End:   at("2024-03-01T00:00:00Z"),
					Transactions: []InvestmentTransaction{
						&BuyStock{
							Buy: &InvestmentBuy{
								Transaction:        &InvestmentTransactionInfo{ID: "B1", TradeDate: at("2024-02-02T15:30:00Z")},
								Security:           secID,
								Units:              dec("10"),
								UnitPrice:          dec("185.25"),
								Commission:         decp("4.95"),
								Total:              dec("-1857.45"),
								SubAccountSecurity: SubAccountCash,
								SubAccountFund:     SubAccountCash,
							},
							Type: Buy,
						},
						&Income{
							Transaction:    &InvestmentTransactionInfo{ID: "D1", TradeDate: at("2024-02-15T00:00:00Z"), Memo: "Dividend"},
							Security:       secID,
							Type:           IncomeDividend,
							Total:          dec("2.40"),
							SubAccountFund: SubAccountCash,
						},
						&InvestmentBankTransaction{
							Transaction:    &Transaction{Type: Credit, Posted: at("2024-02-20T00:00:00Z"), Amount: dec("500"), ID: "C1"},
							SubAccountFund: SubAccountCash,
						},
						&SellMutualFund{
							Sell: &InvestmentSell{
								Transaction: &InvestmentTransactionInfo{ID: "S1", TradeDate: at("2024-02-21T00:00:00Z")},
								Security:    fundID,
								Units:       dec("3.5"),
								UnitPrice:   dec("240"),
								Total:       dec("840"),
								Gain:        decp("12.5"),
							},
							Type: Sell,
						},
					},
				},
				Positions: &PositionList{Positions: []Position{
					&StockPosition{Details: &InvestmentPosition{
						Security:      secID,
						HeldInAccount: SubAccountCash,
						Type:          Long,
						Units:         dec("10"),
						UnitPrice:     dec("180"),
						MarketValue:   dec("1800"),
						PriceAsOf:     at("2024-03-01T00:00:00Z"),
					}},
					&MutualFundPosition{
						Details: &InvestmentPosition{
							Security:      fundID,
							HeldInAccount: SubAccountCash,
							Type:          Long,
							Units:         dec("20"),
							UnitPrice:     dec("241.5"),
							MarketValue:   dec("4830"),
							PriceAsOf:     at("2024-03-01T00:00:00Z"),
						},
						ReinvestDividends: new(bool),
					},
				}},
				Balance: &InvestmentBalance{AvailableCash: dec("250.10"), MarginBalance: dec("0"), ShortBalance: dec("0")},
			},
		}}},
		&SecurityListResponseMessageSet{
			List: &SecurityList{Securities: []Security{
				&StockInfo{Details: &SecurityInfo{ID: secID, Name: "Apple Inc.", Ticker: "AAPL"}, Type: StockCommon},
				&MutualFundInfo{Details: &SecurityInfo{ID: fundID, Name: "Vanguard Total Stock Market", Ticker: "VTI", UnitPrice: decp("241.5")}, AssetClass: AssetLargeStock},
			}},
		},
	)
	return resp
}

func yes() *bool { b := true; return &b }

func messageSetCore(url string) *MessageSetCore {
	return &MessageSetCore{
		Version:           1,
		URL:               url,
		Security:          SecurityNone,
		TransportSecurity: true,
		SignonRealm:       "DEFAULT",
		Language:          "ENG",
		SyncMode:          SyncLite,
		RefreshSupport:    yes(),
	}
}

func profileResponse() *ProfileResponse {
	url := "https://ofx.example.com"
	return &ProfileResponse{
		MessageSets: &MessageSetList{Sets: []MessageSetProfile{
			&SignonMessageSetProfile{V1: &SignonMessageSetV1{Core: messageSetCore(url)}},
			&SignupMessageSetProfile{V1: &SignupMessageSetV1{Core: messageSetCore(url), AvailableAccounts: true}},
			&BankMessageSetProfile{V1: &BankMessageSetV1{Core: messageSetCore(url), ClosingAvailable: true}},
			&CreditCardMessageSetProfile{V1: &CreditCardMessageSetV1{Core: messageSetCore(url)}},
			&InvestmentMessageSetProfile{V1: &InvestmentMessageSetV1{
				Core:                 messageSetCore(url),
				TransactionsDownload: true,
				PositionsDownload:    true,
				BalanceDownload:      true,
			}},
			&SecurityListMessageSetProfile{V1: &SecurityListMessageSetV1{Core: messageSetCore(url)}},
			&Tax1099MessageSetProfile{V1: &Tax1099MessageSetV1{Core: messageSetCore(url)}},
			&ProfileMessageSetProfile{V1: &ProfileMessageSetV1{Core: messageSetCore(url)}},
		}},
		SignonInfos: &SignonInfoList{Infos: []SignonInfo{{
			Realm:          "DEFAULT",
			MinChars:       6,
			MaxChars:       32,
			CharType:       AlphaOrNumeric,
			CaseSensitive:  true,
			PinChange:      true,
			UserCred1Label: "Security code",
			AuthTokenFirst: new(bool),
		}}},
		LastUpdate: at("2023-11-05T08:00:00Z"),
		Name:       "Example Bank",
		Address1:   "1 Main St",
		City:       "Springfield",
		State:      "IL",
		PostalCode: "62701",
		Country:    "USA",
		URL:        "https://www.example.com",
	}
}

func accountInfos() []AccountInfo {
	return []AccountInfo{
		{
			Description: "Checking",
			Bank: &BankAccountInfo{
				Account:          bankAccount(),
				SupportsDownload: true,
				TransferSource:   true,
				Status:           ServiceActive,
			},
		},
		{
			Description: "Rewards card",
			Phone:       "555-0101",
			CreditCard: &CreditCardAccountInfo{
				Account:          creditCardAccount(),
				SupportsDownload: true,
				Status:           ServiceActive,
			},
		},
		{
			Investment: &InvestmentAccountInfo{
				Account:       &InvestmentAccount{BrokerID: "broker.com", AccountID: "X-77"},
				USProductType: "401K",
				Status:        ServiceAvailable,
				Type:          Individual,
			},
		},
	}
}

func creditCardAccount() *CreditCardAccount {
	return &CreditCardAccount{AccountID: "4111111111111111"}
}

func creditCardStatementResponse() *CreditCardStatementResponse {
	return &CreditCardStatementResponse{
		CurrencyCode: "USD",
		Account:      creditCardAccount(),
		TransactionList: &TransactionList{
			Start: at("2024-01-01T00:00:00Z"),
			End:   at("2024-02-01T00:00:00Z"),
			Transactions: []Transaction{{
				Type:   Payment,
				Posted: at("2024-01-20T00:00:00Z"),
				Amount: dec("250"),
				ID:     "CC-1",
				Name:   "Payment, thank you",
			}},
		},
		LedgerBalance: &Balance{Amount: dec("-312.08"), AsOf: at("2024-02-01T00:00:00Z")},
		MarketingInfo: "Earn 2% back",
	}
}

func securityList() *SecurityList {
	return &SecurityList{Securities: []Security{
		&DebtInfo{
			Details:    &SecurityInfo{ID: &SecurityID{UniqueID: "912828ZQ6", UniqueIDType: "CUSIP"}, Name: "US Treasury 0.25% 2025"},
			ParValue:   dec("1000"),
			Type:       DebtCoupon,
			CouponRate: decp("0.25"),
			Maturity:   at("2025-05-15T00:00:00Z"),
		},
		&OptionInfo{
			Details:           &SecurityInfo{ID: &SecurityID{UniqueID: "AAPL240621C00200000", UniqueIDType: "OCC"}, Name: "AAPL Jun 2024 200 Call"},
			Type:              Call,
			StrikePrice:       dec("200"),
			Expiration:        at("2024-06-21T00:00:00Z"),
			SharesPerContract: 100,
			Underlying:        &SecurityID{UniqueID: "037833100", UniqueIDType: "CUSIP"},
		},
		&OtherInfo{
			Details:     &SecurityInfo{ID: &SecurityID{UniqueID: "US0000000001", UniqueIDType: "ISIN"}, Name: "Private fund", Ticker: "PF"},
			Description: "Limited partnership",
			AssetClass:  AssetOther,
		},
	}}
}

func tax1099Response() *Tax1099Response {
	payer := func() *Address {
		return &Address{Name1: "Example Brokerage", Address1: "2 Wall St", City: "New York", State: "NY", PostalCode: "10005"}
	}
	return &Tax1099Response{
		Dividends: []Tax1099Dividend{{
			ServerID:           "D-2023",
			Year:               2023,
			OrdinaryDividends:  decp("120.40"),
			QualifiedDividends: decp("98.10"),
			ForeignTaxPaid:     decp("3.20"),
			ForeignCountry:     "Various",
			PayerAddress:       payer(),
			PayerID:            "12-3456789",
			RecipientAddress:   &Address{Name1: "John Doe", Address1: "1 Main St", City: "Springfield", State: "IL", PostalCode: "62701"},
			RecipientID:        "***-**-1234",
			RecipientAccount:   "X-77",
		}},
		Interests: []Tax1099Interest{{
			Year:         2023,
			Interest:     decp("14.02"),
			PayerAddress: payer(),
			PayerID:      "12-3456789",
			RecipientID:  "***-**-1234",
		}},
	}
}

// otherRequest is a request with a transaction in each of the signup,
// credit card, security list, tax1099 and profile message sets.
func otherRequest() *RequestEnvelope {
	req := &RequestEnvelope{UID: "F3", Security: SecurityNone}
	req.Add(
		&SignonRequestMessageSet{Signon: &SignonRequest{
			Timestamp:      at("2024-02-01T10:00:00Z"),
			UserID:         "jdoe",
			Password:       "secret",
			Language:       "ENG",
			ApplicationID:  DefaultAppID,
			ApplicationVer: DefaultAppVersion,
		}},
		&ProfileRequestMessageSet{Requests: []ProfileTransactionRequest{{
			TransactionRequest: TransactionRequest{UID: "P1"},
			Message:            &ProfileRequest{Routing: RoutingMsgSet, LastUpdate: at("2023-01-01T00:00:00Z")},
		}}},
		&Tax1099RequestMessageSet{Requests: []Tax1099TransactionRequest{{
			TransactionRequest: TransactionRequest{UID: "X1"},
			Message:            &Tax1099Request{Year: 2023},
		}}},
		&SecurityListRequestMessageSet{Requests: []SecurityListTransactionRequest{{
			TransactionRequest: TransactionRequest{UID: "L1"},
			Message: &SecurityListRequest{Securities: []SecurityRequest{
				{ID: &SecurityID{UniqueID: "037833100", UniqueIDType: "CUSIP"}},
				{Ticker: "VTI"},
			}},
		}}},
		&CreditCardRequestMessageSet{StatementRequests: []CreditCardStatementTransactionRequest{{
			TransactionRequest: TransactionRequest{UID: "C1"},
			Message:            &CreditCardStatementRequest{Account: creditCardAccount(), Transactions: StatementRange(at("2024-01-01T00:00:00Z"), at("2024-02-01T00:00:00Z"))},
		}}},
		&SignupRequestMessageSet{Requests: []AccountInfoTransactionRequest{{
			TransactionRequest: TransactionRequest{UID: "S1"},
			Message:            &AccountInfoRequest{LastUpdate: at("2023-01-01T00:00:00Z")},
		}}},
	)
	return req
}

// otherResponse answers otherRequest successfully.
func otherResponse() *ResponseEnvelope {
	resp := &ResponseEnvelope{UID: "F3", Security: SecurityNone}
	resp.Add(
		&SignonResponseMessageSet{Signon: signonResponse()},
		&SignupResponseMessageSet{Responses: []AccountInfoTransactionResponse{{
			TransactionResponse: TransactionResponse{UID: "S1", Status: ok()},
			Message:             &AccountInfoResponse{LastUpdate: at("2024-01-15T00:00:00Z"), Accounts: accountInfos()},
		}}},
		&CreditCardResponseMessageSet{StatementResponses: []CreditCardStatementTransactionResponse{{
			TransactionResponse: TransactionResponse{UID: "C1", Status: ok()},
			Message:             creditCardStatementResponse(),
		}}},
		&SecurityListResponseMessageSet{
			Responses: []SecurityListTransactionResponse{{
				TransactionResponse: TransactionResponse{UID: "L1", Status: ok()},
				Message:             &SecurityListResponse{},
			}},
			List: securityList(),
		},
		&Tax1099ResponseMessageSet{Responses: []Tax1099TransactionResponse{{
			TransactionResponse: TransactionResponse{UID: "X1", Status: ok()},
			Message:             tax1099Response(),
		}}},
		&ProfileResponseMessageSet{Responses: []ProfileTransactionResponse{{
			TransactionResponse: TransactionResponse{UID: "P1", Status: ok()},
			Message:             profileResponse(),
		}}},
	)
	return resp
}
