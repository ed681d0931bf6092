package ofx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// Transport sends a serialized request to an institution server and returns
// the serialized response. Retries and timeouts belong to the transport.
type Transport interface {
	Send(ctx context.Context, url string, payload []byte) ([]byte, error)
}

// HTTPTransport posts requests to the institution server.
type HTTPTransport struct {
	// Client used to post, http.DefaultClient when nil.
	Client *http.Client
}

func (t *HTTPTransport) Send(ctx context.Context, url string, payload []byte) ([]byte, error) {
	client := t.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-ofx")
	req.Header.Set("Accept", "*/*, application/x-ofx")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if Verbose {
		log.Printf("%v %v%v %v", req.Method, req.URL.Host, req.URL.Path, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("cannot read response of %v: %w", req.URL.Host, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status, Body: body}
	}
	return body, nil
}

// Connection exchanges envelopes with one institution server.
type Connection struct {
	URL     string
	Version Version
	// Transport used to send, an HTTPTransport when nil.
	Transport Transport
	// MultiLine puts every tag of the request on its own line.
	MultiLine bool
}

// Send encodes req, sends it and decodes the response. The response is not
// validated against the request.
func (c *Connection) Send(ctx context.Context, req *RequestEnvelope) (*ResponseEnvelope, error) {
	transport := c.Transport
	if transport == nil {
		transport = new(HTTPTransport)
	}
	version := c.Version
	if version == 0 {
		version = V1
	}

	var buf bytes.Buffer
	enc := NewEncoder(&buf, version)
	enc.MultiLine = c.MultiLine
	if err := enc.Encode(req); err != nil {
		return nil, fmt.Errorf("cannot encode request: %w", err)
	}

	emitSendStart(ctx, c.URL, buf.Len())
	start := time.Now()
	data, err := transport.Send(ctx, c.URL, buf.Bytes())
	emitSendComplete(ctx, c.URL, len(data), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	resp := new(ResponseEnvelope)
	if err := Unmarshal(data, resp); err != nil {
		return nil, fmt.Errorf("cannot decode response: %w", err)
	}
	return resp, nil
}
