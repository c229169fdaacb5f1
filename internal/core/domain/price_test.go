package domain_test

import (
	"math"
	"testing"

	"github.com/niksmo/techtrove/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestParseDiscount(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"Empty", "", 0},
		{"Plain", "10", 10},
		{"LeadingSpaces", "  25", 25},
		{"TrailingGarbage", "15abc", 15},
		{"Fraction", "12.7", 12},
		{"Negative", "-5", -5},
		{"Plus", "+7", 7},
		{"NotNumber", "abc", 0},
		{"SignOnly", "-", 0},
		{"Overflow", "99999999999999999999999", 0},
		{"Hex", "0x10", 16},
		{"HexUpper", "0XfF", 255},
		{"NegativeHex", "-0x10", -16},
		{"HexPrefixOnly", "0x", 0},
		{"NoBreakSpace", "\u00a010", 10},
		{"ByteOrderMark", "\ufeff20", 20},
		{"NextLineIsNotSpace", "\u008510", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ParseDiscount(tt.raw))
		})
	}
}

func TestDiscountAmount(t *testing.T) {
	assert.Equal(t, 99.0, domain.DiscountAmount(10, 999.99))
	assert.Equal(t, 0.0, domain.DiscountAmount(1, 49.99))
	assert.Equal(t, 22.0, domain.DiscountAmount(100, 22.3))
	assert.InDelta(t, 900.99, domain.DiscountedPrice(10, 999.99), 1e-9)
}

func TestFormatPrecision(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{900.99, "900"},
		{44.991, "45"},
		{9.99, "10"},
		{7.4, "7.4"},
		{0.5549, "0.55"},
		{0.0123, "0.012"},
		{-900.99, "-900"},
		{12345, "12000"},
		{0, "0.0"},
		{12.5, "13"},
		{125, "130"},
		{0.125, "0.13"},
		{5.25, "5.3"},
		{-12.5, "-13"},
		{99.5, "100"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.FormatPrecision(tt.v, 2), "value %v", tt.v)
	}

	assert.Equal(t, "9", domain.FormatPrecision(9.2, 1))
	assert.Equal(t, "9", domain.FormatPrecision(9.2, 0))

	// 1.005 is stored below the tie and must not round up.
	assert.Equal(t, "1.00", domain.FormatPrecision(1.005, 3))
	assert.Equal(t, "Infinity", domain.FormatPrecision(math.Inf(1), 2))
}

func TestFormatRawPrice(t *testing.T) {
	assert.Equal(t, "49.99", domain.FormatRawPrice(49.99))
	assert.Equal(t, "64", domain.FormatRawPrice(64))
	assert.Equal(t, "22.3", domain.FormatRawPrice(22.3))
	assert.Equal(t, "0", domain.FormatRawPrice(math.Copysign(0, -1)))
	assert.Equal(t, "0.000001", domain.FormatRawPrice(1e-6))
	assert.Equal(t, "1e-7", domain.FormatRawPrice(1e-7))
	assert.Equal(t, "-2.5e-8", domain.FormatRawPrice(-2.5e-8))
	assert.Equal(t, "100000000000000000000", domain.FormatRawPrice(1e20))
	assert.Equal(t, "1.5e+21", domain.FormatRawPrice(1.5e21))
	assert.Equal(t, "NaN", domain.FormatRawPrice(math.NaN()))
	assert.Equal(t, "-Infinity", domain.FormatRawPrice(math.Inf(-1)))
}

func TestNewPriceView(t *testing.T) {
	t.Run("NoDiscount", func(t *testing.T) {
		p := domain.Product{ID: 1, Price: 49.99}
		v := domain.NewPriceView(3, p, 0)
		assert.Equal(t, domain.PriceView{Index: 3, Value: "49.99"}, v)
	})

	t.Run("NegativeDiscount", func(t *testing.T) {
		p := domain.Product{ID: 1, Price: 49.99}
		v := domain.NewPriceView(0, p, -20)
		assert.False(t, v.HasBadge)
		assert.Equal(t, "49.99", v.Value)
	})

	t.Run("Discount", func(t *testing.T) {
		p := domain.Product{ID: 2, Price: 999.99}
		v := domain.NewPriceView(1, p, 10)
		assert.Equal(t, domain.PriceView{
			Index: 1, Discount: 10, Value: "900", HasBadge: true,
		}, v)
	})

	t.Run("TieRoundsUp", func(t *testing.T) {
		v := domain.NewPriceView(0, domain.Product{Price: 126}, 1)
		assert.Equal(t, "130", v.Value)

		v = domain.NewPriceView(0, domain.Product{Price: 12.5}, 1)
		assert.Equal(t, "13", v.Value)
	})

	t.Run("BelowTieStaysDown", func(t *testing.T) {
		v := domain.NewPriceView(0, domain.Product{Price: 1.45}, 1)
		assert.Equal(t, "1.4", v.Value)
	})

	t.Run("FullDiscount", func(t *testing.T) {
		p := domain.Product{ID: 3, Price: 22.3}
		v := domain.NewPriceView(0, p, 100)
		assert.True(t, v.HasBadge)
		assert.Equal(t, "0.30", v.Value)
	})
}
