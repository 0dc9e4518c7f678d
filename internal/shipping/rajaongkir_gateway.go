package shipping

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"bookshop-be/internal/logger"
	"bookshop-be/internal/metrics"

	"go.uber.org/zap"
)

const (
	serviceName     = "rajaongkir"
	maxResponseBody = 1 << 20
)

type Gateway interface {
	Provinces(ctx context.Context) ([]Province, error)
	Cities(ctx context.Context, provinceID int) ([]City, error)
	Cost(ctx context.Context, req CostRequest) ([]Quote, error)
}

type rajaOngkirGateway struct {
	apiKey      string
	baseURL     string
	httpClient  *http.Client
	maxAttempts int
	retryDelay  time.Duration
	metrics     *metrics.Metrics
}

// ----------------- Constructor -----------------

func NewRajaOngkirGateway(apiKey, baseURL string, timeout time.Duration, m *metrics.Metrics) Gateway {
	if apiKey == "" {
		logger.L().Warn("RajaOngkir API key is empty")
	}

	return &rajaOngkirGateway{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		maxAttempts: 2,
		retryDelay:  200 * time.Millisecond,
		metrics:     m,
	}
}

// ----------------- Endpoints -----------------

func (g *rajaOngkirGateway) Provinces(ctx context.Context) ([]Province, error) {
	provinces, err := call[[]Province](ctx, g, "province", func(ctx context.Context) (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/province", nil)
	})
	if err != nil {
		return nil, err
	}
	if provinces == nil {
		provinces = []Province{}
	}
	return provinces, nil
}

func (g *rajaOngkirGateway) Cities(ctx context.Context, provinceID int) ([]City, error) {
	query := url.Values{"province": {strconv.Itoa(provinceID)}}

	cities, err := call[[]City](ctx, g, "city", func(ctx context.Context) (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/city?"+query.Encode(), nil)
	})
	if err != nil {
		return nil, err
	}
	if cities == nil {
		cities = []City{}
	}
	return cities, nil
}

func (g *rajaOngkirGateway) Cost(ctx context.Context, req CostRequest) ([]Quote, error) {
	form := url.Values{
		"origin":      {strconv.Itoa(req.Origin)},
		"destination": {strconv.Itoa(req.Destination)},
		"weight":      {strconv.Itoa(req.Weight)},
		"courier":     {req.Courier},
	}

	results, err := call[[]costResult](ctx, g, "cost", func(ctx context.Context) (*http.Request, error) {
		r, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/cost", strings.NewReader(form.Encode()))
		if err != nil {
			return nil, err
		}
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return r, nil
	})
	if err != nil {
		return nil, err
	}

	return flattenCosts(results), nil
}

// flattenCosts turns results[].costs[].cost[] into one quote per price.
func flattenCosts(results []costResult) []Quote {
	quotes := []Quote{}
	for _, r := range results {
		for _, c := range r.Costs {
			for _, price := range c.Cost {
				quotes = append(quotes, Quote{
					Courier:     r.Code,
					Service:     c.Service,
					Description: c.Description,
					Cost:        price.Value,
					ETD:         price.ETD,
					Note:        price.Note,
				})
			}
		}
	}
	return quotes
}

// ----------------- Transport -----------------

// call sends the request built by build, retrying once on transport errors and 5xx responses.
func call[T any](
	ctx context.Context,
	g *rajaOngkirGateway,
	operation string,
	build func(ctx context.Context) (*http.Request, error),
) (T, error) {
	var zero T

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "gateway"),
		zap.String("service", serviceName),
		zap.String("operation", operation),
	)

	timer := metrics.StartTimer()
	var lastErr error

	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				g.metrics.ObserveUpstream(serviceName, operation, "unavailable", timer.Duration())
				return zero, fmt.Errorf("%w: %v", ErrServiceUnavailable, ctx.Err())
			case <-time.After(g.retryDelay):
			}
		}

		req, err := build(ctx)
		if err != nil {
			log.Error("failed creating request", zap.Error(err))
			return zero, err
		}
		req.Header.Set("key", g.apiKey)
		req.Header.Set("Accept", "application/json")

		resp, err := g.httpClient.Do(req)
		if err != nil {
			lastErr = err
			log.Warn("request failed", zap.Int("attempt", attempt), zap.Error(err))
			if ctx.Err() != nil {
				break
			}
			continue
		}

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("read response: %w", err)
			log.Warn("failed to read response body", zap.Int("attempt", attempt), zap.Error(err))
			continue
		}

		if resp.StatusCode >= http.StatusInternalServerError {
			lastErr = fmt.Errorf("upstream status %d", resp.StatusCode)
			log.Warn("upstream server error",
				zap.Int("attempt", attempt),
				zap.Int("status", resp.StatusCode),
				zap.ByteString("response", body),
			)
			continue
		}

		var env envelope[T]
		if err := json.Unmarshal(body, &env); err != nil || env.RajaOngkir.Status.Code == 0 {
			if resp.StatusCode >= http.StatusBadRequest {
				return zero, g.rejected(log, operation, timer, resp.StatusCode, http.StatusText(resp.StatusCode))
			}
			log.Error("malformed response", zap.Error(err), zap.ByteString("response", body))
			g.metrics.ObserveUpstream(serviceName, operation, "unavailable", timer.Duration())
			return zero, fmt.Errorf("%w: malformed response", ErrServiceUnavailable)
		}

		if resp.StatusCode >= http.StatusBadRequest || env.RajaOngkir.Status.Code != http.StatusOK {
			desc := env.RajaOngkir.Status.Description
			if desc == "" {
				desc = http.StatusText(resp.StatusCode)
			}
			return zero, g.rejected(log, operation, timer, env.RajaOngkir.Status.Code, desc)
		}

		g.metrics.ObserveUpstream(serviceName, operation, "ok", timer.Duration())
		return env.RajaOngkir.Results, nil
	}

	if lastErr == nil {
		lastErr = errors.New("no attempts made")
	}
	log.Error("upstream unavailable", zap.Error(lastErr))
	g.metrics.ObserveUpstream(serviceName, operation, "unavailable", timer.Duration())
	return zero, fmt.Errorf("%w: %v", ErrServiceUnavailable, lastErr)
}

func (g *rajaOngkirGateway) rejected(log *zap.Logger, operation string, timer *metrics.Timer, code int, desc string) error {
	log.Warn("upstream rejected request", zap.Int("code", code), zap.String("description", desc))
	g.metrics.ObserveUpstream(serviceName, operation, "rejected", timer.Duration())
	return fmt.Errorf("%w: %s", ErrUpstreamRejected, desc)
}
