package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/niksmo/techtrove/internal/core/domain"
	"github.com/niksmo/techtrove/internal/core/port"
	"github.com/niksmo/techtrove/pkg/retry"
)

var _ port.CatalogFetcher = (*Client)(nil)

// A Client fetches products from the remote catalog endpoint.
type Client struct {
	url       string
	doer      Doer
	retryConf retry.RetryConfig
	opPrefix  string
}

func NewClient(opts ...ClientOpt) (Client, error) {
	const op = "NewClient"

	options := clientOpts{doer: http.DefaultClient}
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return Client{}, opErr(err, op)
		}
	}

	if options.url == "" {
		return Client{}, opErr(ErrEmptyURL, op)
	}

	options.retryConf.ShouldRetry = isTemporary

	return Client{
		url:       options.url,
		doer:      options.doer,
		retryConf: options.retryConf,
		opPrefix:  "CatalogClient",
	}, nil
}

func (c Client) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "FetchProducts"
	log := slog.With("op", makeOp(c.opPrefix, op))

	ps, err := retry.DoWithResult(ctx, c.retryConf, func() ([]Product, error) {
		return c.fetch(ctx)
	})
	if err != nil {
		return nil, opErr(err, c.opPrefix, op)
	}

	log.Debug("products fetched", "nProducts", len(ps))
	return c.toDomain(ps), nil
}

func (c Client) fetch(ctx context.Context) ([]Product, error) {
	const op = "fetch"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, opErr(err, c.opPrefix, op)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.doer.Do(req)
	if err != nil {
		return nil, opErr(&transportError{err}, c.opPrefix, op)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, res.Body)
		_ = res.Body.Close()
	}()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		err := &statusError{res.StatusCode}
		return nil, opErr(err, c.opPrefix, op)
	}

	var ps []Product
	if err := json.NewDecoder(res.Body).Decode(&ps); err != nil {
		return nil, opErr(
			fmt.Errorf("failed to decode products: %w", err), c.opPrefix, op,
		)
	}
	return ps, nil
}

func (Client) toDomain(ps []Product) []domain.Product {
	dps := make([]domain.Product, len(ps))
	for i, p := range ps {
		dps[i] = domain.Product{
			ID:          p.ID,
			Title:       p.Title,
			Price:       p.Price,
			Description: p.Description,
			Category:    p.Category,
			Image:       p.Image,
			Rating: domain.ProductRating{
				Rate:  p.Rating.Rate,
				Count: p.Rating.Count,
			},
		}
	}
	return dps
}

type transportError struct {
	err error
}

func (e *transportError) Error() string { return e.err.Error() }
func (e *transportError) Unwrap() error { return e.err }

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("%s: %d", ErrUnexpectedStatus, e.code)
}

func (e *statusError) Unwrap() error { return ErrUnexpectedStatus }

func isTemporary(err error) bool {
	if errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var te *transportError
	if errors.As(err, &te) {
		return true
	}

	var se *statusError
	if errors.As(err, &se) {
		return se.code >= http.StatusInternalServerError
	}
	return false
}
