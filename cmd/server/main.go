package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookshop-be/internal/auth"
	"bookshop-be/internal/book"
	"bookshop-be/internal/cart"
	"bookshop-be/internal/category"
	"bookshop-be/internal/config"
	"bookshop-be/internal/db"
	"bookshop-be/internal/logger"
	"bookshop-be/internal/metrics"
	"bookshop-be/internal/middleware"
	"bookshop-be/internal/order"
	"bookshop-be/internal/rest"
	"bookshop-be/internal/shipping"
	"bookshop-be/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

const (
	shutdownTimeout      = 10 * time.Second
	limiterCleanupPeriod = time.Minute
)

// Overridable in tests.
var (
	initDBFunc      = db.InitDB
	initRedisFunc   = initRedis
	startServerFunc = serve
)

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server exited", zap.Error(err))
	}
}

func run() error {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	database := initDBFunc(cfg)
	defer database.Close()

	rdb := initRedisFunc(cfg)
	defer rdb.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router, limiter, err := newServer(cfg, database, rdb, reg)
	if err != nil {
		return err
	}
	go limiter.Cleanup(ctx, limiterCleanupPeriod)

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.L().Info("HTTP server starting",
		zap.String("addr", srv.Addr),
		zap.String("env", cfg.AppEnv),
	)
	return startServerFunc(ctx, srv)
}

// newServer wires repositories, services and the HTTP router.
func newServer(cfg *config.Config, database *sql.DB, rdb *redis.Client, reg *prometheus.Registry) (*gin.Engine, *middleware.Limiter, error) {
	issuer, err := auth.NewIssuer(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		return nil, nil, err
	}

	m := metrics.New(reg)

	userSvc := user.NewService(user.NewRepository(database))
	authSvc := auth.NewService(userSvc, issuer, auth.NewRedisTokenStore(rdb))

	bookSvc := book.NewService(book.NewRepository(database))
	categorySvc := category.NewService(category.NewRepository(database), bookSvc)
	cartSvc := cart.NewService(bookSvc)

	gateway := shipping.NewRajaOngkirGateway(cfg.RajaOngkirKey, cfg.RajaOngkirURL, cfg.ShippingTimeout, m)
	shippingSvc := shipping.NewService(gateway, cartSvc, cfg.ShippingOriginCity)

	orderSvc := order.NewService(order.NewRepository(database), bookSvc, m)

	handler := rest.NewHandler(rest.Services{
		Auth:       authSvc,
		Users:      userSvc,
		Categories: categorySvc,
		Books:      bookSvc,
		Carts:      cartSvc,
		Shipping:   shippingSvc,
		Orders:     orderSvc,
	}, cfg.IsProduction())

	limiter := middleware.NewLimiter(cfg.InternalSecretKey)

	router := rest.NewRouter(rest.RouterConfig{
		Handler:  handler,
		Limiter:  limiter,
		Metrics:  m,
		Gatherer: reg,
		Docs:     !cfg.IsProduction(),
	})
	return router, limiter, nil
}

func initRedis(cfg *config.Config) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.L().Fatal("failed to connect to redis", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}

	logger.L().Info("Redis connection established")
	return rdb
}

// serve runs srv until ctx is done, then drains in-flight requests.
func serve(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.L().Info("shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
