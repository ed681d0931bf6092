package ofx

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultDirectory(t *testing.T) {
	d := DefaultDirectory()
	if len(d.Institutions) == 0 {
		t.Fatal("empty default directory")
	}
	inst, ok := d.Find("Vanguard")
	if !ok {
		t.Fatal("Find(Vanguard) found nothing")
	}
	if inst.FID != "15103" || inst.Version != V1 {
		t.Errorf("Find(Vanguard) = %+v", inst)
	}
	if _, ok := d.Find("nowhere"); ok {
		t.Error("Find(nowhere) found an institution")
	}
	if got := d.Search("SCHWAB"); len(got) != 1 || got[0].ID != "schwab" {
		t.Errorf("Search(SCHWAB) = %+v", got)
	}
}

func TestLoadDirectory(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{
			name: "valid",
			content: `institutions:
  - id: acme
    name: Acme Bank
    org: ACME
    fid: "42"
    url: https://ofx.acme.test
    version: 211
    app_id: QMOFX
    app_version: "2500"
`,
		},
		{
			name:    "unknown key",
			content: "institutions:\n  - id: acme\n    url: https://ofx.acme.test\n    colour: red\n",
			wantErr: true,
		},
		{
			name:    "missing url",
			content: "institutions:\n  - id: acme\n",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "institutions.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}
			d, err := LoadDirectory(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadDirectory() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			inst, ok := d.Find("acme")
			if !ok {
				t.Fatal("Find(acme) found nothing")
			}
			want := InstitutionData{ID: "acme", Name: "Acme Bank", Org: "ACME", FID: "42", URL: "https://ofx.acme.test", Version: 211, AppID: "QMOFX", AppVersion: "2500"}
			if inst != want {
				t.Errorf("Find(acme) = %+v, want %+v", inst, want)
			}
		})
	}

	if _, err := LoadDirectory(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadDirectory(missing file) succeeded")
	}
}
