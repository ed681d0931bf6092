package ofx

import (
	"crypto/sha1"
	"fmt"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"time"
)

// contains http utils to troubleshoot institution servers

// DumpTransport is an http.RoundTripper that writes every request and
// response it carries to files in Dir.
type DumpTransport struct {
	Base http.RoundTripper // http.DefaultTransport when nil
	Dir  string
}

// NewDumpClient returns a client dumping its exchanges into dir.
func NewDumpClient(dir string) *http.Client {
	return &http.Client{Transport: &DumpTransport{Base: http.DefaultTransport, Dir: dir}}
}

func (d *DumpTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	now := time.Now().UTC()
	key := fmt.Sprintf("%s %s %s", now.Format(time.RFC3339Nano), req.Method, req.URL.String())
	key = fmt.Sprintf("%s-%x", now.Format("20060102T150405"), sha1.Sum([]byte(key)))[:24]

	if content, err := httputil.DumpRequestOut(req, true); err != nil {
		log.Printf("dump request err (ignored): %v\n", err)
	} else if err := d.put(key+".request", content); err != nil {
		log.Printf("dump write err (ignored): %v\n", err)
	}

	base := d.Base
	if base == nil {
		base = http.DefaultTransport
	}
	resp, err := base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v%v %v", req.Method, req.URL.Host, req.URL.Path, resp.Status)

	// DumpResponse replaces the body it consumes
	if content, err := httputil.DumpResponse(resp, true); err != nil {
		log.Printf("dump response err (ignored): %v\n", err)
	} else if err := d.put(key+".response", content); err != nil {
		log.Printf("dump write err (ignored): %v\n", err)
	}
	return resp, nil
}

// put stores content in a file of Dir
func (d *DumpTransport) put(name string, content []byte) error {
	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(d.Dir, name), content, 0o600)
}
