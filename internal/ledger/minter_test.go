package ledger

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/GlebRadaev/paytrace/internal/domain"
	"github.com/stellar/go/clients/horizonclient"
	"github.com/stellar/go/keypair"
	"github.com/stellar/go/protocols/horizon"
	"github.com/stellar/go/protocols/horizon/base"
	"github.com/stellar/go/txnbuild"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAssetCode(t *testing.T) {
	code := AssetCode("RV-1234ABCD|NW-00000001|1700000000")
	assert.Len(t, code, 12)
	assert.Regexp(t, `^RVW[0-9A-F]{9}$`, code)
	assert.Equal(t, code, AssetCode("RV-1234ABCD|NW-00000001|1700000000"))
	assert.NotEqual(t, code, AssetCode("RV-1234ABCD|NW-00000001|1700000001"))
}

func TestMintReviewCertificate(t *testing.T) {
	gw, client := NewMock(t)
	funder := keypair.MustRandom()
	reviewee := keypair.MustRandom().Address()
	minter := NewMinter(gw, funder, "6")

	client.EXPECT().AccountDetail(horizonclient.AccountRequest{AccountID: funder.Address()}).Return(account(funder), nil)
	client.EXPECT().SubmitTransaction(gomock.Any()).DoAndReturn(func(tx *txnbuild.Transaction) (horizon.Transaction, error) {
		assert.Len(t, tx.Signatures(), 2)
		ops := tx.Operations()
		require.GreaterOrEqual(t, len(ops), 4)

		create, ok := ops[0].(*txnbuild.CreateAccount)
		require.True(t, ok)
		assert.Equal(t, "6", create.Amount)
		issuer := create.Destination

		names := map[string]string{}
		for _, op := range ops[1 : len(ops)-2] {
			md, ok := op.(*txnbuild.ManageData)
			require.True(t, ok, "unexpected %T", op)
			assert.Equal(t, issuer, md.SourceAccount)
			names[md.Name] = string(md.Value)
		}
		assert.Equal(t, "5", names["rating"])
		assert.Equal(t, "employer", names["reviewer_type"])
		assert.Equal(t, "worker", names["role"])
		assert.Equal(t, reviewee, names["reviewee"])
		assert.Equal(t, "bafycid", names["pdf_cid"])
		assert.NotContains(t, names, "duration")

		cb, ok := ops[len(ops)-2].(*txnbuild.CreateClaimableBalance)
		require.True(t, ok)
		assert.Equal(t, "1", cb.Amount)
		assert.Equal(t, issuer, cb.SourceAccount)
		require.Len(t, cb.Destinations, 1)
		assert.Equal(t, reviewee, cb.Destinations[0].Destination)

		lock, ok := ops[len(ops)-1].(*txnbuild.SetOptions)
		require.True(t, ok)
		require.NotNil(t, lock.MasterWeight)
		assert.Equal(t, txnbuild.Threshold(0), *lock.MasterWeight)
		assert.Equal(t, issuer, lock.SourceAccount)

		return horizon.Transaction{Hash: "mint1", Successful: true}, nil
	})

	cert, err := minter.MintReviewCertificate(context.Background(), domain.CertificateRequest{
		Reviewee:     reviewee,
		ReviewerID:   "NW-00000001",
		ReviewerRole: domain.RoleEmployer,
		RevieweeRole: domain.RoleWorker,
		Rating:       5,
		DocumentCID:  "bafycid",
		Seed:         "seed",
	})
	require.NoError(t, err)
	assert.Equal(t, AssetCode("seed"), cert.AssetCode)
	assert.Equal(t, "mint1", cert.TxHash)
	assert.Contains(t, cert.ExplorerURL, "mint1")
	assert.NotEmpty(t, cert.Issuer)
}

func TestMintWithoutFunder(t *testing.T) {
	gw, _ := NewMock(t)
	_, err := NewMinter(gw, nil, "6").MintReviewCertificate(context.Background(), domain.CertificateRequest{Reviewee: "G"})
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
}

func issuerAccount(addr string, data map[string]string) horizon.Account {
	encoded := make(map[string]string, len(data))
	for k, v := range data {
		encoded[k] = base64.StdEncoding.EncodeToString([]byte(v))
	}
	return horizon.Account{AccountID: addr, Data: encoded}
}

func TestReviewCertificates(t *testing.T) {
	me := keypair.MustRandom().Address()
	someoneElse := keypair.MustRandom().Address()
	issuerA := keypair.MustRandom().Address()
	issuerB := keypair.MustRandom().Address()
	issuerC := keypair.MustRandom().Address()

	t.Run("claimable only, account missing", func(t *testing.T) {
		gw, client := NewMock(t)
		minter := NewMinter(gw, nil, "6")

		cbs := horizon.ClaimableBalances{}
		cbs.Embedded.Records = []horizon.ClaimableBalance{
			{BalanceID: "b1", Asset: "RVWAAAAAAAAA:" + issuerA},
			{BalanceID: "b2", Asset: "USDC:" + issuerB},
			{BalanceID: "b3", Asset: "RVWCCCCCCCCC:" + issuerC},
		}
		client.EXPECT().ClaimableBalances(horizonclient.ClaimableBalanceRequest{Claimant: me, Limit: 200}).Return(cbs, nil)
		client.EXPECT().AccountDetail(horizonclient.AccountRequest{AccountID: me}).Return(horizon.Account{}, notFound())
		client.EXPECT().AccountDetail(horizonclient.AccountRequest{AccountID: issuerA}).
			Return(issuerAccount(issuerA, map[string]string{"rating": "4", "reviewee": me}), nil)
		client.EXPECT().AccountDetail(horizonclient.AccountRequest{AccountID: issuerC}).
			Return(issuerAccount(issuerC, map[string]string{"rating": "1", "reviewee": someoneElse}), nil)

		certs, err := minter.ReviewCertificates(context.Background(), me)
		require.NoError(t, err)
		require.Len(t, certs, 1)
		assert.Equal(t, "RVWAAAAAAAAA", certs[0].AssetCode)
		assert.False(t, certs[0].Claimed)
		assert.Equal(t, "b1", certs[0].BalanceID)
		assert.Equal(t, "4", certs[0].Metadata["rating"])
	})

	t.Run("claimed wins over claimable and non-unit balances are ignored", func(t *testing.T) {
		gw, client := NewMock(t)
		minter := NewMinter(gw, nil, "6")

		cbs := horizon.ClaimableBalances{}
		cbs.Embedded.Records = []horizon.ClaimableBalance{{BalanceID: "b1", Asset: "RVWAAAAAAAAA:" + issuerA}}
		client.EXPECT().ClaimableBalances(gomock.Any()).Return(cbs, nil)
		client.EXPECT().AccountDetail(horizonclient.AccountRequest{AccountID: me}).Return(horizon.Account{
			AccountID: me,
			Balances: []horizon.Balance{
				{Balance: "1.0000000", Asset: base.Asset{Type: "credit_alphanum12", Code: "RVWAAAAAAAAA", Issuer: issuerA}},
				{Balance: "2.0000000", Asset: base.Asset{Type: "credit_alphanum12", Code: "RVWBBBBBBBBB", Issuer: issuerB}},
				{Balance: "100.0000000", Asset: base.Asset{Type: "native"}},
			},
		}, nil)
		client.EXPECT().AccountDetail(horizonclient.AccountRequest{AccountID: issuerA}).
			Return(issuerAccount(issuerA, map[string]string{"reviewee": me}), nil)

		certs, err := minter.ReviewCertificates(context.Background(), me)
		require.NoError(t, err)
		require.Len(t, certs, 1)
		assert.True(t, certs[0].Claimed)
	})

	t.Run("nothing at all", func(t *testing.T) {
		gw, client := NewMock(t)
		minter := NewMinter(gw, nil, "6")
		client.EXPECT().ClaimableBalances(gomock.Any()).Return(horizon.ClaimableBalances{}, nil)
		client.EXPECT().AccountDetail(gomock.Any()).Return(horizon.Account{}, notFound())

		certs, err := minter.ReviewCertificates(context.Background(), me)
		require.NoError(t, err)
		assert.Empty(t, certs)
	})
}
