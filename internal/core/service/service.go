package service

import (
	"context"
	"fmt"
	"time"

	"github.com/niksmo/techtrove/internal/core/domain"
	"github.com/niksmo/techtrove/internal/core/port"
)

var _ port.ProductsProvider = (*Service)(nil)
var _ port.PriceRenderer = (*Service)(nil)

type Service struct {
	catalog    port.CatalogFetcher
	priceDelay time.Duration
}

func New(catalog port.CatalogFetcher, priceDelay time.Duration) Service {
	return Service{catalog, priceDelay}
}

// Products fetches the whole catalog. Every call hits the catalog.
func (s Service) Products(ctx context.Context) ([]domain.Product, error) {
	const op = "Service.Products"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps, err := s.catalog.FetchProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

// RenderPrice waits the price delay and computes the display price
// of the product at position idx.
func (s Service) RenderPrice(
	ctx context.Context, idx int, p domain.Product, discount int,
) (domain.PriceView, error) {
	const op = "Service.RenderPrice"

	if err := s.wait(ctx); err != nil {
		return domain.PriceView{}, fmt.Errorf("%s: %w", op, err)
	}
	return domain.NewPriceView(idx, p, discount), nil
}

func (s Service) wait(ctx context.Context) error {
	if s.priceDelay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.priceDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
