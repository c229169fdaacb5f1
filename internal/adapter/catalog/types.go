package catalog

type (
	Product struct {
		ID          int           `json:"id"`
		Title       string        `json:"title"`
		Price       float64       `json:"price"`
		Description string        `json:"description"`
		Category    string        `json:"category"`
		Image       string        `json:"image"`
		Rating      ProductRating `json:"rating"`
	}

	ProductRating struct {
		Rate  float64 `json:"rate"`
		Count int     `json:"count"`
	}
)
