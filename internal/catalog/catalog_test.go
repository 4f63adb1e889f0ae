//go:build !integration

package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/guttosm/mary-storefront/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T) *Catalog {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "feed.json"))
	require.NoError(t, err)
	c, err := Parse(data)
	require.NoError(t, err)
	return c
}

func TestParse_Fixture(t *testing.T) {
	c := loadFixture(t)

	assert.Equal(t, 3, c.Len())
	require.Len(t, c.Categories(), 2)

	p, ok := c.Product("ovo-trio")
	require.True(t, ok)
	assert.Equal(t, 3, p.MultiSelect)
	assert.True(t, decimal.RequireFromString("89.90").Equal(p.Weights[0].Price))

	cat, ok := c.Category("pascoa")
	require.True(t, ok)
	require.NotNil(t, cat.Hero)
	assert.Equal(t, "Ver ovos", cat.Hero.CTALabel)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
		msg     string
	}{
		{
			name: "malformed json",
			data: `{"categories": [`,
			msg:  "decode catalog feed",
		},
		{
			name:    "no categories",
			data:    `{"categories": [], "products": []}`,
			wantErr: ErrEmptyFeed,
		},
		{
			name:    "duplicate category",
			data:    `{"categories": [{"id": "a"}, {"id": "a"}]}`,
			wantErr: ErrInvalidFeed,
			msg:     `duplicate category "a"`,
		},
		{
			name:    "unknown category",
			data:    `{"categories": [{"id": "a"}], "products": [{"id": "p", "category": "b"}]}`,
			wantErr: ErrInvalidFeed,
			msg:     `unknown category "b"`,
		},
		{
			name:    "duplicate product",
			data:    `{"categories": [{"id": "a"}], "products": [{"id": "p", "category": "a"}, {"id": "p", "category": "a"}]}`,
			wantErr: ErrInvalidFeed,
			msg:     `duplicate product "p"`,
		},
		{
			name:    "negative price",
			data:    `{"categories": [{"id": "a"}], "products": [{"id": "p", "category": "a", "weights": [{"id": "w", "price": -1}]}]}`,
			wantErr: ErrInvalidFeed,
			msg:     "negative price",
		},
		{
			name:    "repeated flavor",
			data:    `{"categories": [{"id": "a"}], "products": [{"id": "p", "category": "a", "flavors": [{"id": "f"}, {"id": "f"}]}]}`,
			wantErr: ErrInvalidFeed,
			msg:     `repeats flavor "f"`,
		},
		{
			name:    "multi select beyond the flavors offered",
			data:    `{"categories": [{"id": "a"}], "products": [{"id": "p", "category": "a", "multiSelect": 3, "flavors": [{"id": "f"}, {"id": "g"}]}]}`,
			wantErr: ErrInvalidFeed,
			msg:     `requires 3 flavors but offers 2`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse([]byte(tt.data))

			assert.Nil(t, c)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.msg != "" {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}
}

func TestDefaultCategory(t *testing.T) {
	tests := []struct {
		name       string
		categories []model.Category
		expected   string
	}{
		{
			name:       "first flagged default wins",
			categories: []model.Category{{ID: "a", Active: true}, {ID: "b", Default: true}, {ID: "c", Default: true}},
			expected:   "b",
		},
		{
			name:       "falls back to first active",
			categories: []model.Category{{ID: "a"}, {ID: "b", Active: true}, {ID: "c", Active: true}},
			expected:   "b",
		},
		{
			name:       "falls back to first category",
			categories: []model.Category{{ID: "a"}, {ID: "b"}},
			expected:   "a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(model.Feed{Categories: tt.categories})
			require.NoError(t, err)

			assert.Equal(t, tt.expected, c.DefaultCategory().ID)
		})
	}
}

func TestProductsByCategory(t *testing.T) {
	c := loadFixture(t)

	pascoa := c.ProductsByCategory("pascoa")
	require.Len(t, pascoa, 2)
	assert.Equal(t, "ovo-colher", pascoa[0].ID)
	assert.Equal(t, "ovo-trio", pascoa[1].ID)

	assert.Empty(t, c.ProductsByCategory("missing"))
}

func TestProduct_ReturnsCopy(t *testing.T) {
	c := loadFixture(t)

	p, ok := c.Product("ovo-colher")
	require.True(t, ok)
	p.Weights[0].Price = decimal.Zero
	p.Flavors[0].Label = "changed"

	again, _ := c.Product("ovo-colher")
	assert.True(t, decimal.RequireFromString("49.90").Equal(again.Weights[0].Price))
	assert.Equal(t, "Ninho com Nutella", again.Flavors[0].Label)

	_, ok = c.Product("missing")
	assert.False(t, ok)
}

func TestFromPrice(t *testing.T) {
	c := loadFixture(t)

	p, _ := c.Product("ovo-colher")
	price, ok := p.FromPrice()
	require.True(t, ok)
	assert.True(t, decimal.RequireFromString("49.90").Equal(price))

	_, ok = model.Product{}.FromPrice()
	assert.False(t, ok)
}
