// Package ledger builds, signs and submits Stellar transactions on behalf of custodial accounts.
package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/paytrace/internal/domain"
	"github.com/sethvargo/go-retry"
	"github.com/stellar/go/clients/horizonclient"
	"github.com/stellar/go/keypair"
	"github.com/stellar/go/protocols/horizon"
	"github.com/stellar/go/protocols/horizon/operations"
	"github.com/stellar/go/txnbuild"
	"go.uber.org/zap"
)

const (
	txTimeoutSeconds = 30
	maxMemoBytes     = 28
	maxPageSize      = 200
)

type Gateway struct {
	client     HorizonClient
	passphrase string
	explorer   string
	locks      *accountLocks
	backoff    func() retry.Backoff
}

type Option func(*Gateway)

// WithConfirmBackoff sets the backoff used to re-query a transaction whose submission timed out.
func WithConfirmBackoff(f func() retry.Backoff) Option {
	return func(g *Gateway) {
		g.backoff = f
	}
}

func New(client HorizonClient, networkName string, opts ...Option) *Gateway {
	g := &Gateway{
		client:     client,
		passphrase: passphraseFor(networkName),
		explorer:   explorerFor(networkName),
		locks:      newAccountLocks(),
		backoff: func() retry.Backoff {
			return retry.WithMaxRetries(4, retry.NewExponential(500*time.Millisecond))
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Gateway) Passphrase() string {
	return g.passphrase
}

func (g *Gateway) ExplorerURL(hash string) string {
	if hash == "" {
		return ""
	}
	return g.explorer + hash
}

func (g *Gateway) AccountExists(ctx context.Context, key string) (bool, error) {
	_, err := g.loadAccount(ctx, key)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	return false, err
}

func (g *Gateway) loadAccount(ctx context.Context, key string) (horizon.Account, error) {
	if err := ctx.Err(); err != nil {
		return horizon.Account{}, err
	}
	acct, err := g.client.AccountDetail(horizonclient.AccountRequest{AccountID: key})
	if err != nil {
		kind := classify(err, false)
		return horizon.Account{}, &domain.LedgerError{Op: "load account", Key: key, Kind: kind, Err: err}
	}
	return acct, nil
}

// BuildTransfer returns an unsigned transaction moving amount from source to dest.
// A destination that does not exist yet is created and funded with amount instead.
func (g *Gateway) BuildTransfer(ctx context.Context, source, dest, amount, memo string) (*txnbuild.Transaction, error) {
	if len(memo) > maxMemoBytes {
		return nil, domain.NewValidationError("memo", "must be at most 28 bytes")
	}

	acct, err := g.loadAccount(ctx, source)
	if err != nil {
		return nil, err
	}
	exists, err := g.AccountExists(ctx, dest)
	if err != nil {
		return nil, err
	}

	var op txnbuild.Operation
	if exists {
		op = &txnbuild.Payment{Destination: dest, Amount: amount, Asset: txnbuild.NativeAsset{}}
	} else {
		op = &txnbuild.CreateAccount{Destination: dest, Amount: amount}
	}
	return g.build(&acct, memo, op)
}

func (g *Gateway) build(source txnbuild.Account, memo string, ops ...txnbuild.Operation) (*txnbuild.Transaction, error) {
	params := txnbuild.TransactionParams{
		SourceAccount:        source,
		IncrementSequenceNum: true,
		Operations:           ops,
		BaseFee:              txnbuild.MinBaseFee,
		Preconditions:        txnbuild.Preconditions{TimeBounds: txnbuild.NewTimeout(txTimeoutSeconds)},
	}
	if memo != "" {
		params.Memo = txnbuild.MemoText(memo)
	}
	tx, err := txnbuild.NewTransaction(params)
	if err != nil {
		return nil, domain.NewValidationError("transaction", err.Error())
	}
	return tx, nil
}

// Submit sends a signed transaction. A submission whose outcome is unknown is re-queried by hash
// before ErrSubmissionTimeout is returned, so that error always means the hash was not found.
func (g *Gateway) Submit(ctx context.Context, tx *txnbuild.Transaction) (*domain.SubmitResult, error) {
	source := tx.SourceAccount().AccountID
	hash, err := tx.HashHex(g.passphrase)
	if err != nil {
		return nil, &domain.LedgerError{Op: "submit", Key: source, Kind: domain.ErrSubmissionRejected, Err: err}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp, err := g.client.SubmitTransaction(tx)
	if err == nil {
		return &domain.SubmitResult{Successful: resp.Successful, TxHash: resp.Hash, Ledger: resp.Ledger}, nil
	}

	kind := classify(err, true)
	codes := resultCodes(err)
	if kind != domain.ErrSubmissionTimeout {
		zap.L().Warn("transaction not accepted",
			zap.String("source", source),
			zap.String("tx_hash", hash),
			zap.Strings("result_codes", codes),
			zap.Error(err),
		)
		return nil, &domain.LedgerError{Op: "submit", Key: source, Kind: kind, Codes: codes, TxHash: hash, Err: err}
	}

	zap.L().Warn("submission outcome unknown, re-querying", zap.String("source", source), zap.String("tx_hash", hash), zap.Error(err))
	res, qErr := g.confirm(ctx, hash)
	if qErr == nil {
		return res, nil
	}
	return nil, &domain.LedgerError{Op: "submit", Key: source, Kind: domain.ErrSubmissionTimeout, TxHash: hash, Err: err}
}

func (g *Gateway) confirm(ctx context.Context, hash string) (*domain.SubmitResult, error) {
	var res *domain.SubmitResult
	err := retry.Do(ctx, g.backoff(), func(ctx context.Context) error {
		tx, err := g.client.TransactionDetail(hash)
		if err != nil {
			if kind := classify(err, false); kind == domain.ErrNotFound || kind == domain.ErrNetwork {
				return retry.RetryableError(err)
			}
			return err
		}
		res = &domain.SubmitResult{Successful: tx.Successful, TxHash: tx.Hash, Ledger: tx.Ledger}
		return nil
	})
	return res, err
}

// TransactionStatus looks a transaction up by hash. An unknown hash yields ErrNotFound.
func (g *Gateway) TransactionStatus(ctx context.Context, hash string) (*domain.SubmitResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tx, err := g.client.TransactionDetail(hash)
	if err != nil {
		kind := classify(err, false)
		return nil, &domain.LedgerError{Op: "transaction status", Key: hash, Kind: kind, TxHash: hash, Err: err}
	}
	return &domain.SubmitResult{Successful: tx.Successful, TxHash: tx.Hash, Ledger: tx.Ledger}, nil
}

// Transfer signs and submits a payment from signer, holding the signer's account lock throughout.
func (g *Gateway) Transfer(ctx context.Context, signer *keypair.Full, dest, amount, memo string) (*domain.SubmitResult, error) {
	return g.TransferTracked(ctx, signer, dest, amount, memo, nil)
}

// TransferTracked is Transfer with before called on the signed transaction hash ahead of submission.
// When before fails nothing is submitted and its error is returned as is.
func (g *Gateway) TransferTracked(ctx context.Context, signer *keypair.Full, dest, amount, memo string, before domain.BeforeSubmit) (*domain.SubmitResult, error) {
	unlock, err := g.locks.Lock(ctx, signer.Address())
	if err != nil {
		return nil, err
	}
	defer unlock()

	tx, err := g.BuildTransfer(ctx, signer.Address(), dest, amount, memo)
	if err != nil {
		return nil, err
	}
	signed, err := g.sign(tx, signer)
	if err != nil {
		return nil, err
	}
	if before != nil {
		hash, err := signed.HashHex(g.passphrase)
		if err != nil {
			return nil, &domain.LedgerError{Op: "hash", Key: signer.Address(), Kind: domain.ErrSubmissionRejected, Err: err}
		}
		if err := before(hash); err != nil {
			return nil, err
		}
	}
	return g.Submit(ctx, signed)
}

// CreateAccount activates dest on the network with startingBalance paid by funder.
func (g *Gateway) CreateAccount(ctx context.Context, funder *keypair.Full, dest, startingBalance string) (*domain.SubmitResult, error) {
	unlock, err := g.locks.Lock(ctx, funder.Address())
	if err != nil {
		return nil, err
	}
	defer unlock()

	acct, err := g.loadAccount(ctx, funder.Address())
	if err != nil {
		return nil, err
	}
	tx, err := g.build(&acct, "", &txnbuild.CreateAccount{Destination: dest, Amount: startingBalance})
	if err != nil {
		return nil, err
	}
	return g.signAndSubmit(ctx, tx, funder)
}

func (g *Gateway) sign(tx *txnbuild.Transaction, signers ...*keypair.Full) (*txnbuild.Transaction, error) {
	signed, err := tx.Sign(g.passphrase, signers...)
	if err != nil {
		return nil, &domain.LedgerError{Op: "sign", Key: tx.SourceAccount().AccountID, Kind: domain.ErrSubmissionRejected, Err: err}
	}
	return signed, nil
}

func (g *Gateway) signAndSubmit(ctx context.Context, tx *txnbuild.Transaction, signers ...*keypair.Full) (*domain.SubmitResult, error) {
	signed, err := g.sign(tx, signers...)
	if err != nil {
		return nil, err
	}
	return g.Submit(ctx, signed)
}

// Payments returns one page of native payments and account creations touching key, newest first.
// An account that does not exist yet has an empty history.
func (g *Gateway) Payments(ctx context.Context, key string, limit int, cursor string) (*domain.PaymentPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > maxPageSize {
		limit = maxPageSize
	}

	page, err := g.client.Payments(horizonclient.OperationRequest{
		ForAccount: key,
		Cursor:     cursor,
		Limit:      uint(limit),
		Order:      horizonclient.OrderDesc,
	})
	if err != nil {
		if isNotFound(err) {
			return &domain.PaymentPage{Records: []domain.PaymentRecord{}}, nil
		}
		kind := classify(err, false)
		return nil, &domain.LedgerError{Op: "payments", Key: key, Kind: kind, Err: err}
	}

	result := &domain.PaymentPage{Records: make([]domain.PaymentRecord, 0, len(page.Embedded.Records))}
	for _, op := range page.Embedded.Records {
		result.NextCursor = op.PagingToken()

		var rec domain.PaymentRecord
		switch p := op.(type) {
		case operations.Payment:
			rec = domain.PaymentRecord{
				ID:          p.ID,
				Type:        "payment",
				From:        p.From,
				To:          p.To,
				Amount:      p.Amount,
				AssetType:   p.Asset.Type,
				TxHash:      p.TransactionHash,
				CreatedAt:   p.LedgerCloseTime,
				PagingToken: p.PT,
			}
		case operations.CreateAccount:
			rec = domain.PaymentRecord{
				ID:          p.ID,
				Type:        "create_account",
				From:        p.Funder,
				To:          p.Account,
				Amount:      p.StartingBalance,
				AssetType:   "native",
				TxHash:      p.TransactionHash,
				CreatedAt:   p.LedgerCloseTime,
				PagingToken: p.PT,
			}
		default:
			continue
		}
		if rec.To == key {
			rec.Direction = domain.Incoming
		} else {
			rec.Direction = domain.Outgoing
		}
		rec.ExplorerURL = g.ExplorerURL(rec.TxHash)
		result.Records = append(result.Records, rec)
	}
	return result, nil
}
