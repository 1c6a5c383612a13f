package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/GlebRadaev/paytrace/internal/background"
	"github.com/GlebRadaev/paytrace/internal/config"
	"github.com/GlebRadaev/paytrace/internal/handlers"
	"github.com/GlebRadaev/paytrace/internal/ledger"
	"github.com/GlebRadaev/paytrace/internal/mobilemoney"
	"github.com/GlebRadaev/paytrace/internal/pg"
	"github.com/GlebRadaev/paytrace/internal/repo"
	"github.com/GlebRadaev/paytrace/internal/scheduler"
	"github.com/GlebRadaev/paytrace/internal/service"
	"github.com/GlebRadaev/paytrace/internal/service/reviewservice"
	"github.com/GlebRadaev/paytrace/internal/vault"
	"github.com/GlebRadaev/paytrace/pkg/auth"
	"github.com/GlebRadaev/paytrace/pkg/clients"
	"github.com/GlebRadaev/paytrace/pkg/logger"
	"github.com/GlebRadaev/paytrace/pkg/pinning"
	"github.com/GlebRadaev/paytrace/pkg/sms"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stellar/go/keypair"
	"go.uber.org/zap"
)

const (
	backgroundWorkers = 4
	backgroundQueue   = 256
	backgroundTimeout = 2 * time.Minute
	pinningTimeout    = time.Minute
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg   *config.Config
	api   *handlers.Handlers
	srv   *service.Services
	repo  *repo.Repositories
	pool  *background.Pool
	sched *scheduler.Scheduler

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	dbpool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(dbpool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(dbpool)

	deps, err := a.buildDeps(cfg)
	if err != nil {
		return err
	}

	conn := pg.New(dbpool)
	a.cfg = cfg
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(a.repo, deps)
	a.api = handlers.New(a.srv, cfg.APIKey, cfg.Network)
	a.sched = scheduler.New(a.srv.ScheduleService, cfg.ScheduleCron)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	if err = a.startScheduler(ctx); err != nil {
		return fmt.Errorf("can't start payment scheduler: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully", zap.String("network", cfg.Network))
	return nil
}

func (a *Application) buildDeps(cfg *config.Config) (service.Deps, error) {
	v, err := vault.New(cfg.EncryptionKey)
	if err != nil {
		return service.Deps{}, fmt.Errorf("can't init vault: %w", err)
	}

	var platform *keypair.Full
	if cfg.PlatformSecret != "" {
		platform, err = keypair.ParseFull(cfg.PlatformSecret)
		if err != nil {
			return service.Deps{}, fmt.Errorf("invalid platform secret: %w", err)
		}
	} else {
		zap.L().Warn("platform account not configured, funding and transfers disabled")
	}

	rate, err := decimal.NewFromString(cfg.MobileMoneyRate)
	if err != nil || !rate.IsPositive() {
		return service.Deps{}, fmt.Errorf("invalid mobile money rate %q", cfg.MobileMoneyRate)
	}

	horizon := ledger.NewHorizonClient(cfg.HorizonURL, &http.Client{Timeout: cfg.LedgerTimeout})
	gw := ledger.New(horizon, cfg.Network)

	a.pool = background.NewPool(backgroundWorkers, backgroundQueue, backgroundTimeout)
	notifier := background.NewNotifier(a.pool, sms.New(cfg.TwilioSID, cfg.TwilioToken, cfg.TwilioFrom))

	return service.Deps{
		Vault:    v,
		Ledger:   gw,
		Minter:   ledger.NewMinter(gw, platform, cfg.IssuerBalance),
		Rail:     mobilemoney.New(clients.NewHTTPClient(cfg.MobileMoneyTimeout), cfg.MobileMoneyURL, cfg.MobileMoneyKey, cfg.MobileMoneySecret),
		Pinner:   pinning.New(clients.NewHTTPClient(pinningTimeout), cfg.PinataKey, cfg.PinataSecret, cfg.PinataGateway),
		Pool:     a.pool,
		Notifier: notifier,
		Tokens:   auth.NewInviteService(cfg.ReviewTokenSecret, time.Duration(cfg.ReviewLinkExpiryDays)*24*time.Hour),
		Platform: platform,

		StartingBalance: cfg.StartingBalance,
		Rate:            rate,
		Parallel:        cfg.ScheduleParallel,
		Review: reviewservice.Config{
			EligibilityDays: cfg.ReviewEligibilityDays,
			InviteBaseURL:   cfg.ReviewBaseURL,
		},
	}, nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
		if a.pool != nil {
			a.pool.Close()
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startScheduler(ctx context.Context) error {
	return a.sched.Start(ctx)
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
