package cmd

import (
	"errors"
	"testing"

	"github.com/etnz/ofx"
	"github.com/google/go-cmp/cmp"
)

func TestReadFile(t *testing.T) {
	for _, version := range []ofx.Version{ofx.V1, ofx.V2} {
		path := writeOFX(t, "response.ofx", testResponse(ofx.Success), version)
		v, h, err := readFile(path)
		if err != nil {
			t.Fatalf("readFile(v%v) error = %v", version, err)
		}
		if h.Version != version {
			t.Errorf("header version = %v, want %v", h.Version, version)
		}
		if diff := cmp.Diff(testResponse(ofx.Success), v); diff != "" {
			t.Errorf("readFile(v%v) mismatch (-want +got):\n%s", version, diff)
		}
	}
}

func TestValidateFile(t *testing.T) {
	reqFile := writeOFX(t, "request.ofx", testRequest(), ofx.V1)

	if err := validateFile(reqFile, testResponse(ofx.Success)); err != nil {
		t.Errorf("validateFile() error = %v", err)
	}
	if err := validateFile(reqFile, testResponse(ofx.ClientUpToDate)); err != nil {
		t.Errorf("validateFile() error = %v, want INFO statuses tolerated", err)
	}
	if err := validateFile(reqFile, testResponse(ofx.AccountNotFound)); !errors.Is(err, ofx.ErrStatus) {
		t.Errorf("validateFile() error = %v, want %v", err, ofx.ErrStatus)
	}

	respFile := writeOFX(t, "response.ofx", testResponse(ofx.Success), ofx.V1)
	if err := validateFile(respFile, testResponse(ofx.Success)); err == nil {
		t.Error("validateFile() accepted a response as the request")
	}
}
