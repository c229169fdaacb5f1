package port

import (
	"context"

	"github.com/niksmo/techtrove/internal/core/domain"
)

type CatalogFetcher interface {
	FetchProducts(context.Context) ([]domain.Product, error)
}

type ProductsProvider interface {
	Products(context.Context) ([]domain.Product, error)
}

type PriceRenderer interface {
	RenderPrice(
		ctx context.Context, idx int, p domain.Product, discount int,
	) (domain.PriceView, error)
}

// Storefront is everything the page handler needs from the core.
type Storefront interface {
	ProductsProvider
	PriceRenderer
}
