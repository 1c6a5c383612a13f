package ledger

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"

	"github.com/GlebRadaev/paytrace/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stellar/go/clients/horizonclient"
	"github.com/stellar/go/keypair"
	"github.com/stellar/go/protocols/horizon"
	"github.com/stellar/go/txnbuild"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	certificatePrefix = "RVW"
	certificateType   = "credit_alphanum12"
	issuerFetchLimit  = 8
)

var certificateKeys = []string{"rating", "reviewer_type", "role", "duration", "reviewer_id", "pdf_cid", "reviewee"}

// Minter issues one-of-one review certificates. Each certificate has its own issuer account whose
// master key is disabled in the issuing transaction, so no second unit can ever exist.
type Minter struct {
	gw            *Gateway
	funder        *keypair.Full
	issuerBalance string
}

func NewMinter(gw *Gateway, funder *keypair.Full, issuerBalance string) *Minter {
	return &Minter{gw: gw, funder: funder, issuerBalance: issuerBalance}
}

// AssetCode derives the certificate asset code from seed material.
func AssetCode(seed string) string {
	sum := sha256.Sum256([]byte(seed))
	return certificatePrefix + strings.ToUpper(hex.EncodeToString(sum[:])[:9])
}

func (m *Minter) MintReviewCertificate(ctx context.Context, req domain.CertificateRequest) (*domain.Certificate, error) {
	if m.funder == nil {
		return nil, domain.ErrNotConfigured
	}
	if req.Reviewee == "" {
		return nil, domain.NewValidationError("reviewee", "ledger key is required")
	}

	issuer, err := keypair.Random()
	if err != nil {
		return nil, &domain.CryptoError{Op: "issuer keypair", Err: err}
	}
	code := AssetCode(req.Seed)
	metadata := map[string]string{
		"rating":        strconv.Itoa(req.Rating),
		"reviewer_type": string(req.ReviewerRole),
		"role":          string(req.RevieweeRole),
		"duration":      req.Duration,
		"reviewer_id":   req.ReviewerID,
		"pdf_cid":       req.DocumentCID,
		"reviewee":      req.Reviewee,
	}

	ops := []txnbuild.Operation{
		&txnbuild.CreateAccount{Destination: issuer.Address(), Amount: m.issuerBalance},
	}
	for _, name := range certificateKeys {
		value := metadata[name]
		if value == "" {
			continue
		}
		if len(value) > 64 {
			value = value[:64]
		}
		ops = append(ops, &txnbuild.ManageData{Name: name, Value: []byte(value), SourceAccount: issuer.Address()})
	}
	ops = append(ops,
		&txnbuild.CreateClaimableBalance{
			Amount:        "1",
			Asset:         txnbuild.CreditAsset{Code: code, Issuer: issuer.Address()},
			Destinations:  []txnbuild.Claimant{txnbuild.NewClaimant(req.Reviewee, nil)},
			SourceAccount: issuer.Address(),
		},
		&txnbuild.SetOptions{MasterWeight: txnbuild.NewThreshold(0), SourceAccount: issuer.Address()},
	)

	unlock, err := m.gw.locks.Lock(ctx, m.funder.Address())
	if err != nil {
		return nil, err
	}
	defer unlock()

	acct, err := m.gw.loadAccount(ctx, m.funder.Address())
	if err != nil {
		return nil, err
	}
	tx, err := m.gw.build(&acct, "", ops...)
	if err != nil {
		return nil, err
	}
	res, err := m.gw.signAndSubmit(ctx, tx, m.funder, issuer)
	if err != nil {
		return nil, err
	}

	zap.L().Info("review certificate minted",
		zap.String("asset_code", code),
		zap.String("issuer", issuer.Address()),
		zap.String("reviewee", req.Reviewee),
		zap.String("tx_hash", res.TxHash),
	)
	return &domain.Certificate{
		AssetCode:   code,
		Issuer:      issuer.Address(),
		TxHash:      res.TxHash,
		ExplorerURL: m.gw.ExplorerURL(res.TxHash),
		Metadata:    metadata,
	}, nil
}

// ReviewCertificates lists certificates addressed to key, both still claimable and already claimed.
// An account that does not exist yet can still have claimable certificates.
func (m *Minter) ReviewCertificates(ctx context.Context, key string) ([]domain.Certificate, error) {
	found := make(map[string]*domain.Certificate)
	var order []string
	add := func(c domain.Certificate) {
		if prev, ok := found[c.AssetCode]; ok {
			if c.Claimed && !prev.Claimed {
				*prev = c
			}
			return
		}
		found[c.AssetCode] = &c
		order = append(order, c.AssetCode)
	}

	cbs, err := m.gw.client.ClaimableBalances(horizonclient.ClaimableBalanceRequest{Claimant: key, Limit: 200})
	if err != nil && !isNotFound(err) {
		return nil, &domain.LedgerError{Op: "claimable balances", Key: key, Kind: classify(err, false), Err: err}
	}
	for _, cb := range cbs.Embedded.Records {
		code, issuer, ok := strings.Cut(cb.Asset, ":")
		if !ok || !strings.HasPrefix(code, certificatePrefix) || len(code) <= 4 {
			continue
		}
		add(domain.Certificate{AssetCode: code, Issuer: issuer, BalanceID: cb.BalanceID})
	}

	acct, err := m.gw.loadAccount(ctx, key)
	switch {
	case err == nil:
		one := decimal.NewFromInt(1)
		for _, b := range acct.Balances {
			if b.Type != certificateType || !strings.HasPrefix(b.Code, certificatePrefix) {
				continue
			}
			if bal, err := decimal.NewFromString(b.Balance); err != nil || !bal.Equal(one) {
				continue
			}
			add(domain.Certificate{AssetCode: b.Code, Issuer: b.Issuer, Claimed: true})
		}
	case errors.Is(err, domain.ErrNotFound):
	default:
		return nil, err
	}

	certs := make([]*domain.Certificate, 0, len(order))
	for _, code := range order {
		certs = append(certs, found[code])
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(issuerFetchLimit)
	for _, c := range certs {
		g.Go(func() error {
			issuer, err := m.gw.loadAccount(gctx, c.Issuer)
			if err != nil {
				zap.L().Debug("skip certificate with unreadable issuer", zap.String("issuer", c.Issuer), zap.Error(err))
				return nil
			}
			c.Metadata = decodeData(issuer)
			return nil
		})
	}
	_ = g.Wait()

	result := make([]domain.Certificate, 0, len(certs))
	for _, c := range certs {
		if c.Metadata["reviewee"] != key {
			continue
		}
		result = append(result, *c)
	}
	return result, nil
}

func decodeData(acct horizon.Account) map[string]string {
	data := make(map[string]string, len(certificateKeys))
	for _, name := range certificateKeys {
		raw, ok := acct.Data[name]
		if !ok {
			continue
		}
		value, err := base64.StdEncoding.DecodeString(raw)
		if err != nil {
			continue
		}
		data[name] = string(value)
	}
	return data
}
