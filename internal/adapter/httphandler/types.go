package httphandler

type (
	pageView struct {
		Brand      string
		Categories []string
		QuickLinks []string
		Cards      []cardView
	}

	cardView struct {
		Index int
		ID    int
		Title string
		Image string
	}
)

const brand = "TechTrove"

var (
	menuCategories = []string{
		"Smartphones", "Laptops", "Audio", "TVs", "Gaming",
	}
	footerLinks = []string{"Home", "Products", "About Us", "Contact"}
)
