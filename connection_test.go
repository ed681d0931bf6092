package ofx

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestHTTPTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/x-ofx" {
			t.Errorf("Content-Type = %q", ct)
		}
		body, _ := io.ReadAll(r.Body)
		switch string(body) {
		case "ping":
			w.Write([]byte("pong"))
		case "bad":
			http.Error(w, "malformed request", http.StatusBadRequest)
		default:
			http.Error(w, "try later", http.StatusServiceUnavailable)
		}
	}))
	defer srv.Close()

	tr := &HTTPTransport{Client: srv.Client()}
	got, err := tr.Send(context.Background(), srv.URL, []byte("ping"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "pong" {
		t.Errorf("Send() = %q, want pong", got)
	}

	tests := []struct {
		payload string
		code    int
		client  bool
	}{
		{"bad", http.StatusBadRequest, true},
		{"later", http.StatusServiceUnavailable, false},
	}
	for _, tt := range tests {
		_, err := tr.Send(context.Background(), srv.URL, []byte(tt.payload))
		var he *HTTPError
		if !errors.As(err, &he) {
			t.Fatalf("Send(%q) error = %v, want an *HTTPError", tt.payload, err)
		}
		if he.StatusCode != tt.code || he.ClientError() != tt.client {
			t.Errorf("Send(%q) = %d (client error %v), want %d (%v)", tt.payload, he.StatusCode, he.ClientError(), tt.code, tt.client)
		}
		if len(he.Body) == 0 {
			t.Errorf("Send(%q) error has no body", tt.payload)
		}
	}
}

// fakeServer decodes requests and answers them in process.
type fakeServer struct {
	version  Version
	answer   func(*RequestEnvelope) *ResponseEnvelope
	requests []*RequestEnvelope
}

func (f *fakeServer) Send(_ context.Context, _ string, payload []byte) ([]byte, error) {
	req := new(RequestEnvelope)
	if err := Unmarshal(payload, req); err != nil {
		return nil, err
	}
	f.requests = append(f.requests, req)
	return Marshal(f.answer(req), f.version)
}

// echo answers every transaction of req successfully.
func echo(req *RequestEnvelope) *ResponseEnvelope {
	resp := &ResponseEnvelope{UID: req.UID, Security: SecurityNone}
	for _, set := range req.MessageSets {
		switch set := set.(type) {
		case *SignonRequestMessageSet:
			rs := &SignonResponseMessageSet{Signon: signonResponse()}
			if p := set.PasswordChange; p != nil {
				rs.PasswordChange = &PasswordChangeTransactionResponse{
					TransactionResponse: TransactionResponse{UID: p.UID, Status: ok()},
					Message:             &PasswordChangeResponse{UserID: p.Message.UserID},
				}
			}
			resp.Add(rs)
		case *BankingRequestMessageSet:
			rs := &BankingResponseMessageSet{}
			for _, rq := range set.StatementRequests {
				rs.StatementResponses = append(rs.StatementResponses, StatementTransactionResponse{
					TransactionResponse: TransactionResponse{UID: rq.UID, Status: ok()},
					Message:             statementResponse(),
				})
			}
			resp.Add(rs)
		case *SignupRequestMessageSet:
			rs := &SignupResponseMessageSet{}
			for _, rq := range set.Requests {
				rs.Responses = append(rs.Responses, AccountInfoTransactionResponse{
					TransactionResponse: TransactionResponse{UID: rq.UID, Status: ok()},
					Message:             &AccountInfoResponse{LastUpdate: at("2024-01-15T00:00:00Z"), Accounts: accountInfos()},
				})
			}
			resp.Add(rs)
		case *CreditCardRequestMessageSet:
			rs := &CreditCardResponseMessageSet{}
			for _, rq := range set.StatementRequests {
				rs.StatementResponses = append(rs.StatementResponses, CreditCardStatementTransactionResponse{
					TransactionResponse: TransactionResponse{UID: rq.UID, Status: ok()},
					Message:             creditCardStatementResponse(),
				})
			}
			resp.Add(rs)
		case *SecurityListRequestMessageSet:
			rs := &SecurityListResponseMessageSet{List: securityList()}
			for _, rq := range set.Requests {
				rs.Responses = append(rs.Responses, SecurityListTransactionResponse{
					TransactionResponse: TransactionResponse{UID: rq.UID, Status: ok()},
					Message:             &SecurityListResponse{},
				})
			}
			resp.Add(rs)
		case *Tax1099RequestMessageSet:
			rs := &Tax1099ResponseMessageSet{}
			for _, rq := range set.Requests {
				rs.Responses = append(rs.Responses, Tax1099TransactionResponse{
					TransactionResponse: TransactionResponse{UID: rq.UID, Status: ok()},
					Message:             tax1099Response(),
				})
			}
			resp.Add(rs)
		case *ProfileRequestMessageSet:
			rs := &ProfileResponseMessageSet{}
			for _, rq := range set.Requests {
				rs.Responses = append(rs.Responses, ProfileTransactionResponse{
					TransactionResponse: TransactionResponse{UID: rq.UID, Status: ok()},
					Message:             profileResponse(),
				})
			}
			resp.Add(rs)
		case *InvestmentRequestMessageSet:
			inv := investmentResponse()
			for _, s := range inv.MessageSets {
				if rs, ok := s.(*InvestmentResponseMessageSet); ok {
					rs.StatementResponses[0].UID = set.StatementRequests[0].UID
				}
				if s.Type() != SignonSet {
					resp.Add(s)
				}
			}
		}
	}
	return resp
}

func TestConnectionSend(t *testing.T) {
	for _, version := range []Version{V1, V2} {
		srv := &fakeServer{version: version, answer: echo}
		conn := &Connection{URL: "https://ofx.example.com", Version: version, Transport: srv}
		req := sampleRequest()
		resp, err := conn.Send(context.Background(), req)
		if err != nil {
			t.Fatalf("Send() v%v error = %v", version, err)
		}
		if diff := cmp.Diff(req, srv.requests[0]); diff != "" {
			t.Errorf("request v%v received mismatch (-sent +received):\n%s", version, diff)
		}
		if err := Validate(req, resp); err != nil {
			t.Errorf("Validate() v%v error = %v", version, err)
		}
	}
}

// transportFunc adapts a function to the Transport interface.
type transportFunc func(ctx context.Context, url string, payload []byte) ([]byte, error)

func (f transportFunc) Send(ctx context.Context, url string, payload []byte) ([]byte, error) {
	return f(ctx, url, payload)
}

func TestConnectionSendError(t *testing.T) {
	conn := &Connection{URL: "https://ofx.example.com", Transport: transportFunc(func(context.Context, string, []byte) ([]byte, error) {
		return []byte("<html>maintenance</html>"), nil
	})}
	if _, err := conn.Send(context.Background(), sampleRequest()); !errors.Is(err, ErrUnparseableAggregate) {
		t.Errorf("Send() error = %v, want %v", err, ErrUnparseableAggregate)
	}

	refused := errors.New("connection refused")
	conn.Transport = transportFunc(func(context.Context, string, []byte) ([]byte, error) { return nil, refused })
	if _, err := conn.Send(context.Background(), sampleRequest()); !errors.Is(err, refused) {
		t.Errorf("Send() error = %v, want %v", err, refused)
	}
}

func testInstitution(answer func(*RequestEnvelope) *ResponseEnvelope) (*Institution, *fakeServer) {
	return testInstitutionVersion(V1, answer)
}

func testInstitutionVersion(version Version, answer func(*RequestEnvelope) *ResponseEnvelope) (*Institution, *fakeServer) {
	srv := &fakeServer{version: version, answer: answer}
	i := NewInstitution(InstitutionData{ID: "bank", Org: "BANK", FID: "1234", URL: "https://ofx.example.com", BrokerID: "broker.com", Version: version}, srv)
	i.Now = func() time.Time { return at("2024-02-01T10:00:00Z") }
	return i, srv
}

var jdoe = Credentials{UserID: "jdoe", Password: "secret"}

func TestInstitutionBankStatement(t *testing.T) {
	i, srv := testInstitution(echo)
	got, err := i.BankStatement(context.Background(), jdoe, *bankAccount(), at("2024-01-01T00:00:00Z"), time.Time{})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(statementResponse(), got); diff != "" {
		t.Errorf("statement mismatch (-want +got):\n%s", diff)
	}

	sent := srv.requests[0]
	signon := sent.MessageSet(SignonSet).(*SignonRequestMessageSet).Signon
	if signon.UserID != "jdoe" || signon.ApplicationID != DefaultAppID || signon.FinancialInst.ID != "1234" {
		t.Errorf("signon = %+v", signon)
	}
	if !signon.Timestamp.Equal(at("2024-02-01T10:00:00Z")) {
		t.Errorf("DTCLIENT = %v", signon.Timestamp)
	}
}

func TestInstitutionInvestmentStatement(t *testing.T) {
	i, srv := testInstitution(echo)
	got, list, err := i.InvestmentStatement(context.Background(), jdoe, InvestmentAccount{AccountID: "X-77"}, time.Time{}, time.Time{})
	if err != nil {
		t.Fatal(err)
	}
	if len(got.TransactionList.Transactions) != 4 || len(got.Positions.Positions) != 2 {
		t.Errorf("statement has %d transactions and %d positions", len(got.TransactionList.Transactions), len(got.Positions.Positions))
	}
	if list == nil || len(list.Securities) != 2 {
		t.Fatalf("security list = %+v", list)
	}
	if ticker := list.Securities[0].Info().Ticker; ticker != "AAPL" {
		t.Errorf("first security = %s, want AAPL", ticker)
	}
	rq := srv.requests[0].MessageSet(InvestmentSet).(*InvestmentRequestMessageSet).StatementRequests[0].Message
	if rq.Account.BrokerID != "broker.com" {
		t.Errorf("BROKERID = %q, want the institution default", rq.Account.BrokerID)
	}
}

func TestInstitutionDownloads(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		set  MessageSetType
		call func(*Institution) (any, error)
		want any
	}{
		{
			name: "profile",
			set:  ProfileSet,
			call: func(i *Institution) (any, error) { return i.ReadProfile(ctx) },
			want: profileResponse(),
		},
		{
			name: "accounts",
			set:  SignupSet,
			call: func(i *Institution) (any, error) { return i.ReadAccountProfiles(ctx, jdoe) },
			want: accountInfos(),
		},
		{
			name: "credit card",
			set:  CreditCardSet,
			call: func(i *Institution) (any, error) {
				return i.CreditCardStatement(ctx, jdoe, *creditCardAccount(), at("2024-01-01T00:00:00Z"), time.Time{})
			},
			want: creditCardStatementResponse(),
		},
		{
			name: "securities",
			set:  SecurityListSet,
			call: func(i *Institution) (any, error) {
				return i.SecurityList(ctx, jdoe, SecurityID{UniqueID: "912828ZQ6", UniqueIDType: "CUSIP"}, SecurityID{UniqueID: "US0378331005", UniqueIDType: "ISIN"})
			},
			want: securityList(),
		},
		{
			name: "tax1099",
			set:  Tax1099Set,
			call: func(i *Institution) (any, error) { return i.Tax1099(ctx, jdoe, 2023) },
			want: tax1099Response(),
		},
	}
	for _, version := range []Version{V1, V2} {
		for _, tt := range tests {
			t.Run(tt.name+"/"+version.String(), func(t *testing.T) {
				i, srv := testInstitutionVersion(version, echo)
				got, err := tt.call(i)
				if err != nil {
					t.Fatal(err)
				}
				if diff := cmp.Diff(tt.want, got); diff != "" {
					t.Errorf("response mismatch (-want +got):\n%s", diff)
				}
				sent := srv.requests[0]
				if n := len(sent.MessageSets); n != 2 || sent.MessageSets[1].Type() != tt.set {
					t.Errorf("request message sets = %v, want signon and %v", sent.MessageSets, tt.set)
				}
			})
		}
	}
}

func TestInstitutionRequests(t *testing.T) {
	ctx := context.Background()
	i, srv := testInstitution(echo)
	if _, err := i.ReadProfile(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := i.SecurityList(ctx, jdoe, SecurityID{UniqueID: "037833100", UniqueIDType: "CUSIP"}); err != nil {
		t.Fatal(err)
	}
	if _, err := i.Tax1099(ctx, jdoe, 2023); err != nil {
		t.Fatal(err)
	}

	profile := srv.requests[0]
	if user := profile.MessageSet(SignonSet).(*SignonRequestMessageSet).Signon.UserID; user != AnonymousUser {
		t.Errorf("profile USERID = %q, want %q", user, AnonymousUser)
	}
	if rq := profile.MessageSet(ProfileSet).(*ProfileRequestMessageSet).Requests[0].Message; rq.Routing != RoutingMsgSet {
		t.Errorf("CLIENTROUTING = %q, want %q", rq.Routing, RoutingMsgSet)
	}
	secrq := srv.requests[1].MessageSet(SecurityListSet).(*SecurityListRequestMessageSet).Requests[0].Message.Securities
	if len(secrq) != 1 || secrq[0].ID == nil || secrq[0].ID.UniqueID != "037833100" {
		t.Errorf("SECRQ = %+v", secrq)
	}
	if year := srv.requests[2].MessageSet(Tax1099Set).(*Tax1099RequestMessageSet).Requests[0].Message.Year; year != 2023 {
		t.Errorf("TAXYEAR = %d, want 2023", year)
	}
}

func TestInstitutionChangePassword(t *testing.T) {
	i, srv := testInstitution(echo)
	if err := i.ChangePassword(context.Background(), jdoe, "n3w"); err != nil {
		t.Fatal(err)
	}
	set := srv.requests[0].MessageSet(SignonSet).(*SignonRequestMessageSet)
	if set.PasswordChange == nil || set.PasswordChange.Message.NewPassword != "n3w" {
		t.Errorf("PINCHRQ = %+v", set.PasswordChange)
	}
	if n := len(srv.requests[0].MessageSets); n != 1 {
		t.Errorf("request has %d message sets, want 1", n)
	}
}

func TestInstitutionErrors(t *testing.T) {
	tests := []struct {
		name   string
		answer func(*RequestEnvelope) *ResponseEnvelope
		want   error
	}{
		{
			name: "signon refused",
			answer: func(req *RequestEnvelope) *ResponseEnvelope {
				resp := echo(req)
				signonSet(resp).Signon.Status = NewStatus(SignonInvalid)
				return resp
			},
			want: ErrStatus,
		},
		{
			name: "wrong uid",
			answer: func(req *RequestEnvelope) *ResponseEnvelope {
				resp := echo(req)
				resp.UID = "other"
				return resp
			},
			want: ErrEnvelopeMismatch,
		},
		{
			name: "unanswered",
			answer: func(req *RequestEnvelope) *ResponseEnvelope {
				resp := echo(req)
				banking(resp).StatementResponses = nil
				return resp
			},
			want: ErrUnansweredTransactions,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i, _ := testInstitution(tt.answer)
			_, err := i.BankStatement(context.Background(), jdoe, *bankAccount(), time.Time{}, time.Time{})
			if !errors.Is(err, tt.want) {
				t.Errorf("BankStatement() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestInstitutionUpToDate(t *testing.T) {
	i, _ := testInstitution(func(req *RequestEnvelope) *ResponseEnvelope {
		resp := echo(req)
		banking(resp).StatementResponses[0].Status = NewStatus(ClientUpToDate)
		return resp
	})
	got, err := i.BankStatement(context.Background(), jdoe, *bankAccount(), time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("BankStatement() error = %v, want the INFO status tolerated", err)
	}
	if got.CurrencyCode != "USD" {
		t.Errorf("CURDEF = %q", got.CurrencyCode)
	}
}

func TestDumpTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OFXHEADER:100"))
	}))
	defer srv.Close()

	dir := filepath.Join(t.TempDir(), "dump")
	tr := &HTTPTransport{Client: NewDumpClient(dir)}
	got, err := tr.Send(context.Background(), srv.URL+"/ofx", []byte("<OFX></OFX>"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "OFXHEADER:100" {
		t.Errorf("Send() = %q, want the body untouched by the dump", got)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var exts []string
	for _, e := range entries {
		exts = append(exts, filepath.Ext(e.Name()))
		content, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			t.Fatal(err)
		}
		if filepath.Ext(e.Name()) == ".request" && !strings.Contains(string(content), "<OFX></OFX>") {
			t.Errorf("request dump misses the payload:\n%s", content)
		}
	}
	if diff := cmp.Diff([]string{".request", ".response"}, exts); diff != "" {
		t.Errorf("dumped files mismatch (-want +got):\n%s", diff)
	}
}
