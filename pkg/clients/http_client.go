package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const DefaultTimeout = time.Second * 15

var ErrFailedCloseResponseBody = errors.New("failed close response body")

type HTTPClientI interface {
	Do(req *http.Request) (*http.Response, error)
	Get(ctx context.Context, url string, headers http.Header) (statusCode int, respBody []byte, err error)
	Post(ctx context.Context, url string, headers http.Header, body io.Reader) (statusCode int, respBody []byte, err error)
	PostJSON(ctx context.Context, url string, headers http.Header, payload any) (statusCode int, respBody []byte, err error)
}

type HTTPClient struct {
	client *http.Client
}

// NewHTTPClient returns a client whose every request is bounded by timeout.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPClient{client: &http.Client{Timeout: timeout}}
}

// Standard exposes the underlying client for SDKs that need a *http.Client.
func (h *HTTPClient) Standard() *http.Client {
	return h.client
}

func (h *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	return h.client.Do(req)
}

func (h *HTTPClient) Get(ctx context.Context, url string, headers http.Header) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return 0, nil, err
	}
	return h.send(req, headers)
}

func (h *HTTPClient) Post(ctx context.Context, url string, headers http.Header, body io.Reader) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return 0, nil, err
	}
	return h.send(req, headers)
}

func (h *HTTPClient) PostJSON(ctx context.Context, url string, headers http.Header, payload any) (int, []byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("encode request: %w", err)
	}
	if headers == nil {
		headers = http.Header{}
	}
	headers.Set("Content-Type", "application/json")
	return h.Post(ctx, url, headers, bytes.NewReader(data))
}

func (h *HTTPClient) send(req *http.Request, headers http.Header) (statusCode int, respBody []byte, err error) {
	for k, v := range headers {
		req.Header[k] = v
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return
	}
	defer func() {
		if e := resp.Body.Close(); e != nil {
			err = errors.Join(err, ErrFailedCloseResponseBody)
		}
	}()

	respBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return
	}
	statusCode = resp.StatusCode
	return
}
