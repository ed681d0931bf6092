package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/etnz/ofx"
	"github.com/shopspring/decimal"
)

var now = time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)

func testRequest() *ofx.RequestEnvelope {
	req := &ofx.RequestEnvelope{UID: "F1", Security: ofx.SecurityNone}
	req.Add(
		&ofx.SignonRequestMessageSet{Signon: &ofx.SignonRequest{
			Timestamp:      now,
			UserID:         "jdoe",
			Password:       "secret",
			Language:       "ENG",
			ApplicationID:  ofx.DefaultAppID,
			ApplicationVer: ofx.DefaultAppVersion,
		}},
		&ofx.BankingRequestMessageSet{StatementRequests: []ofx.StatementTransactionRequest{{
			TransactionRequest: ofx.TransactionRequest{UID: "A1"},
			Message:            &ofx.StatementRequest{Account: testAccount()},
		}}},
	)
	return req
}

func testAccount() *ofx.BankAccount {
	return &ofx.BankAccount{BankID: "121000248", AccountID: "0001", Type: ofx.Checking}
}

// testResponse answers testRequest with a transaction status of code.
func testResponse(code ofx.StatusCode) *ofx.ResponseEnvelope {
	resp := &ofx.ResponseEnvelope{UID: "F1", Security: ofx.SecurityNone}
	resp.Add(
		&ofx.SignonResponseMessageSet{Signon: &ofx.SignonResponse{
			Status:    ofx.NewStatus(ofx.Success),
			Timestamp: now,
			Language:  "ENG",
		}},
		&ofx.BankingResponseMessageSet{StatementResponses: []ofx.StatementTransactionResponse{{
			TransactionResponse: ofx.TransactionResponse{UID: "A1", Status: ofx.NewStatus(code)},
			Message: &ofx.StatementResponse{
				CurrencyCode: "USD",
				Account:      testAccount(),
				TransactionList: &ofx.TransactionList{
					Start: now.AddDate(0, -1, 0),
					End:   now,
					Transactions: []ofx.Transaction{
						{Type: ofx.Credit, Posted: now.AddDate(0, 0, -3), Amount: decimal.RequireFromString("1234.56"), ID: "T1", Name: "ACME payroll"},
					},
				},
			},
		}}},
	)
	return resp
}

// writeOFX writes v in version to a file of the test directory.
func writeOFX(t *testing.T, name string, v any, version ofx.Version) string {
	t.Helper()
	data, err := ofx.Marshal(v, version)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}
