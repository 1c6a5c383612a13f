package service

import (
	"testing"
	"time"

	"github.com/GlebRadaev/paytrace/internal/background"
	"github.com/GlebRadaev/paytrace/internal/ledger"
	"github.com/GlebRadaev/paytrace/internal/mobilemoney"
	"github.com/GlebRadaev/paytrace/internal/pg"
	"github.com/GlebRadaev/paytrace/internal/repo"
	"github.com/GlebRadaev/paytrace/internal/service/accountservice"
	"github.com/GlebRadaev/paytrace/internal/service/claimservice"
	"github.com/GlebRadaev/paytrace/internal/service/paymentservice"
	"github.com/GlebRadaev/paytrace/internal/service/reviewservice"
	"github.com/GlebRadaev/paytrace/internal/service/scheduleservice"
	"github.com/GlebRadaev/paytrace/internal/service/transferservice"
	"github.com/GlebRadaev/paytrace/internal/vault"
	"github.com/GlebRadaev/paytrace/pkg/auth"
	"github.com/GlebRadaev/paytrace/pkg/clients"
	"github.com/GlebRadaev/paytrace/pkg/pinning"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stellar/go/keypair"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func newDeps(t *testing.T, ctrl *gomock.Controller, platform *keypair.Full) Deps {
	v, err := vault.New("passphrase")
	require.NoError(t, err)

	gw := ledger.New(ledger.NewMockHorizonClient(ctrl), "testnet")
	httpClient := clients.NewMockHTTPClientI(ctrl)
	pool := background.NewPool(1, 1, time.Second)
	t.Cleanup(pool.Close)

	return Deps{
		Vault:           v,
		Ledger:          gw,
		Minter:          ledger.NewMinter(gw, platform, "6"),
		Rail:            mobilemoney.New(httpClient, "http://rail", "", ""),
		Pinner:          pinning.New(httpClient, "", "", ""),
		Pool:            pool,
		Notifier:        background.NewNotifier(pool, nil),
		Tokens:          auth.NewInviteService("secret", time.Hour),
		Platform:        platform,
		StartingBalance: "1",
		Rate:            decimal.NewFromInt(1),
		Parallel:        2,
		Review:          reviewservice.Config{EligibilityDays: 90},
	}
}

func newRepos(t *testing.T, ctrl *gomock.Controller) *repo.Repositories {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return repo.New(mockDB, pg.NewMockTXManager(ctrl))
}

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	platform := keypair.MustRandom()
	services := New(newRepos(t, ctrl), newDeps(t, ctrl, platform))

	assert.IsType(t, &accountservice.Service{}, services.AccountService)
	assert.IsType(t, &paymentservice.Service{}, services.PaymentService)
	assert.IsType(t, &scheduleservice.Service{}, services.ScheduleService)
	assert.IsType(t, &claimservice.Service{}, services.ClaimService)
	assert.IsType(t, &reviewservice.Service{}, services.ReviewService)
	assert.IsType(t, &transferservice.Service{}, services.TransferService)
	assert.Equal(t, platform.Address(), services.PlatformKey)
}

func TestNewWithoutPlatform(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := New(newRepos(t, ctrl), newDeps(t, ctrl, nil))

	assert.NotNil(t, services.TransferService)
	assert.Empty(t, services.PlatformKey)
}
