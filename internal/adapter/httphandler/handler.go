package httphandler

import (
	"embed"
	"errors"
	"html/template"
	"io"
	"log/slog"
	"net/http"

	"github.com/niksmo/techtrove/internal/core/domain"
	"github.com/niksmo/techtrove/internal/core/port"
	"golang.org/x/sync/errgroup"
)

// GET / (200 OK streamed HTML, 500 Internal server error)
// GET /healthz (200 OK)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

type StorefrontHandler struct {
	storefront     port.Storefront
	discountCookie string
}

func RegisterStorefront(
	mux *http.ServeMux, storefront port.Storefront, discountCookie string,
) {
	h := StorefrontHandler{storefront, discountCookie}
	mux.HandleFunc("GET /{$}", h.GetPage)
}

func RegisterHealth(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})
}

// GetPage writes the page shell with a placeholder per price, then streams
// each price as soon as its renderer completes.
func (h StorefrontHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	const op = "StorefrontHandler.GetPage"
	log := slog.With("op", op)

	ps, err := h.storefront.Products(r.Context())
	if err != nil {
		http.Error(w, "failed to load products", http.StatusInternalServerError)
		log.Error("failed to load products", "err", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	rc := http.NewResponseController(w)

	pw := pageWriter{w: w, rc: rc, log: log}
	pw.execute("shell", h.toPageView(ps))
	pw.flush()

	views, wait := h.renderPrices(r, ps)
	for v := range views {
		pw.execute("price", v)
		pw.flush()
	}
	if err := wait(); err != nil {
		log.Warn("price rendering interrupted", "err", err)
	}

	pw.execute("end", nil)
	log.Info("page rendered", "nProducts", len(ps))
}

// renderPrices runs a price renderer per product. The returned channel
// yields views in completion order and is closed when all renderers are
// done; wait reports the first renderer error.
func (h StorefrontHandler) renderPrices(
	r *http.Request, ps []domain.Product,
) (<-chan domain.PriceView, func() error) {
	views := make(chan domain.PriceView)
	g, ctx := errgroup.WithContext(r.Context())

	for i, p := range ps {
		g.Go(func() error {
			v, err := h.storefront.RenderPrice(ctx, i, p, h.discount(r))
			if err != nil {
				return err
			}
			select {
			case views <- v:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	done := make(chan error, 1)
	go func() {
		done <- g.Wait()
		close(views)
	}()

	return views, func() error { return <-done }
}

// discount reads the discount cookie of the request, 0 if absent.
func (h StorefrontHandler) discount(r *http.Request) int {
	c, err := r.Cookie(h.discountCookie)
	if err != nil {
		return 0
	}
	return domain.ParseDiscount(c.Value)
}

func (StorefrontHandler) toPageView(ps []domain.Product) pageView {
	cards := make([]cardView, len(ps))
	for i, p := range ps {
		cards[i] = cardView{
			Index: i,
			ID:    p.ID,
			Title: p.Title,
			Image: p.Image,
		}
	}
	return pageView{
		Brand:      brand,
		Categories: menuCategories,
		QuickLinks: footerLinks,
		Cards:      cards,
	}
}

// A pageWriter stops writing after the first failure.
type pageWriter struct {
	w   io.Writer
	rc  *http.ResponseController
	log *slog.Logger
	err error
}

func (pw *pageWriter) execute(name string, data any) {
	if pw.err != nil {
		return
	}
	if err := pageTmpl.ExecuteTemplate(pw.w, name, data); err != nil {
		pw.err = err
		pw.log.Error("failed to write page", "template", name, "err", err)
	}
}

func (pw *pageWriter) flush() {
	if pw.err != nil {
		return
	}
	err := pw.rc.Flush()
	if err != nil && !errors.Is(err, http.ErrNotSupported) {
		pw.err = err
		pw.log.Error("failed to flush page", "err", err)
	}
}
