// Package pinning stores review documents on IPFS through Pinata.
package pinning

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/GlebRadaev/paytrace/pkg/clients"
	"go.uber.org/zap"
)

const DefaultEndpoint = "https://api.pinata.cloud/pinning/pinFileToIPFS"

var ErrDisabled = errors.New("document pinning is not configured")

type Pinner struct {
	client   clients.HTTPClientI
	endpoint string
	key      string
	secret   string
	gateway  string
}

type Option func(*Pinner)

func WithEndpoint(endpoint string) Option {
	return func(p *Pinner) {
		p.endpoint = endpoint
	}
}

func New(client clients.HTTPClientI, key, secret, gateway string, opts ...Option) *Pinner {
	p := &Pinner{
		client:   client,
		endpoint: DefaultEndpoint,
		key:      key,
		secret:   secret,
		gateway:  gateway,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Pinner) Enabled() bool {
	return p.key != "" && p.secret != ""
}

type pinResponse struct {
	IpfsHash string `json:"IpfsHash"`
}

// Pin uploads data as a file called name and returns its content identifier.
func (p *Pinner) Pin(ctx context.Context, name string, data []byte) (string, error) {
	if !p.Enabled() {
		return "", ErrDisabled
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", name)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(data); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	headers := http.Header{}
	headers.Set("Content-Type", mw.FormDataContentType())
	headers.Set("pinata_api_key", p.key)
	headers.Set("pinata_secret_api_key", p.secret)

	status, resp, err := p.client.Post(ctx, p.endpoint, headers, &body)
	if err != nil {
		zap.L().Warn("pinning request failed", zap.Error(err))
		return "", fmt.Errorf("pin %s: %w", name, err)
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("pin %s: unexpected status %d", name, status)
	}

	var pr pinResponse
	if err := json.Unmarshal(resp, &pr); err != nil {
		return "", fmt.Errorf("pin %s: decode response: %w", name, err)
	}
	if pr.IpfsHash == "" {
		return "", fmt.Errorf("pin %s: empty content id", name)
	}
	return pr.IpfsHash, nil
}

// URL renders the gateway address of a pinned document.
func (p *Pinner) URL(cid string) string {
	if p.gateway == "" {
		return "ipfs://" + cid
	}
	return strings.TrimRight(p.gateway, "/") + "/" + cid
}
