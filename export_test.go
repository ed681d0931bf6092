package ofx

import (
	"errors"
	"strings"
	"testing"

	"github.com/PaesslerAG/jsonpath"
	"github.com/goccy/go-json"
)

func TestExportJSON(t *testing.T) {
	got, err := ExportJSON(&Status{Code: ClientUpToDate, Severity: SeverityInfo})
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"STATUS":{"CODE":"1","SEVERITY":"INFO"}}`; string(got) != want {
		t.Errorf("ExportJSON() = %s, want %s", got, want)
	}

	if _, err := ExportJSON(&point{}); !errors.Is(err, ErrSchemaNotFound) {
		t.Errorf("ExportJSON(unregistered) error = %v, want %v", err, ErrSchemaNotFound)
	}
}

func TestExportJSONVariants(t *testing.T) {
	position := func(id, units string) *InvestmentPosition {
		return &InvestmentPosition{
			Security:      &SecurityID{UniqueID: id, UniqueIDType: "CUSIP"},
			HeldInAccount: SubAccountCash,
			Type:          Long,
			Units:         dec(units),
			UnitPrice:     dec("1"),
			MarketValue:   dec(units),
			PriceAsOf:     at("2024-03-01T00:00:00Z"),
		}
	}
	list := &PositionList{Positions: []Position{
		&StockPosition{Details: position("A", "1")},
		&MutualFundPosition{Details: position("B", "2")},
		&StockPosition{Details: position("C", "3")},
	}}
	data, err := ExportJSON(list)
	if err != nil {
		t.Fatal(err)
	}
	if i, j := strings.Index(string(data), "POSSTOCK"), strings.Index(string(data), "POSMF"); i < 0 || j < i {
		t.Errorf("variants out of order of first appearance: %s", data)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		path string
		want any
	}{
		{"$.INVPOSLIST.POSSTOCK[1].INVPOS.SECID.UNIQUEID", "C"},
		{"$.INVPOSLIST.POSMF[0].INVPOS.UNITS", "2"},
		{"$.INVPOSLIST.POSSTOCK[0].INVPOS.DTPRICEASOF", "20240301000000.000"},
	}
	for _, tt := range tests {
		got, err := jsonpath.Get(tt.path, doc)
		if err != nil {
			t.Errorf("%s: %v", tt.path, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s = %v, want %v", tt.path, got, tt.want)
		}
	}
}
