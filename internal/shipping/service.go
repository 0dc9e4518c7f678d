package shipping

import (
	"context"
	"slices"
	"strings"

	"bookshop-be/internal/cart"
	"bookshop-be/internal/logger"

	"go.uber.org/zap"
)

// WeightCalculator sums the weight of cart lines with one batch book lookup.
type WeightCalculator interface {
	TotalWeight(ctx context.Context, lines cart.Lines) (int, error)
}

// CartQuote is the quote for a whole cart shipped from the configured origin.
type CartQuote struct {
	Origin      int     `json:"origin"`
	Destination int     `json:"destination"`
	Weight      int     `json:"weight"`
	Courier     string  `json:"courier"`
	Services    []Quote `json:"services"`
}

type Service interface {
	Couriers() []Courier
	Provinces(ctx context.Context) ([]Province, error)
	Cities(ctx context.Context, provinceID int) ([]City, error)
	Quote(ctx context.Context, req CostRequest) ([]Quote, error)
	QuoteCart(ctx context.Context, destination int, courier string, lines cart.Lines) (*CartQuote, error)
}

type service struct {
	gateway Gateway
	weights WeightCalculator
	origin  int
}

func NewService(gateway Gateway, weights WeightCalculator, originCity int) Service {
	return &service{gateway: gateway, weights: weights, origin: originCity}
}

func (s *service) Couriers() []Courier {
	return slices.Clone(couriers)
}

func (s *service) Provinces(ctx context.Context) ([]Province, error) {
	return s.gateway.Provinces(ctx)
}

func (s *service) Cities(ctx context.Context, provinceID int) ([]City, error) {
	return s.gateway.Cities(ctx, provinceID)
}

func (s *service) Quote(ctx context.Context, req CostRequest) ([]Quote, error) {
	req.Courier = strings.ToLower(strings.TrimSpace(req.Courier))
	if !isKnownCourier(req.Courier) {
		return nil, ErrUnknownCourier
	}
	if req.Weight <= 0 {
		return nil, ErrInvalidWeight
	}
	return s.gateway.Cost(ctx, req)
}

// QuoteCart prices shipping for the total weight of lines. A weightless cart never reaches the gateway.
func (s *service) QuoteCart(ctx context.Context, destination int, courier string, lines cart.Lines) (*CartQuote, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "QuoteCart"),
		zap.Int("destination", destination),
	)

	if s.origin <= 0 {
		log.Error("SHIPPING_ORIGIN_CITY is not set")
		return nil, ErrOriginNotSet
	}

	weight, err := s.weights.TotalWeight(ctx, lines)
	if err != nil {
		return nil, err
	}
	if weight <= 0 {
		log.Info("cart has no weight", zap.Int("lines", len(lines)))
		return nil, ErrInvalidWeight
	}

	req := CostRequest{Origin: s.origin, Destination: destination, Weight: weight, Courier: courier}
	quotes, err := s.Quote(ctx, req)
	if err != nil {
		return nil, err
	}

	return &CartQuote{
		Origin:      req.Origin,
		Destination: req.Destination,
		Weight:      weight,
		Courier:     strings.ToLower(strings.TrimSpace(courier)),
		Services:    quotes,
	}, nil
}

func isKnownCourier(code string) bool {
	return slices.ContainsFunc(couriers, func(c Courier) bool { return c.Code == code })
}
