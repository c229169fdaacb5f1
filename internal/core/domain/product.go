package domain

type (
	Product struct {
		ID          int
		Title       string
		Price       float64
		Description string
		Category    string
		Image       string
		Rating      ProductRating
	}

	ProductRating struct {
		Rate  float64
		Count int
	}
)

// PriceView is a rendered price of the product at position Index
// in the catalog.
type PriceView struct {
	Index    int
	Discount int
	Value    string
	HasBadge bool
}
