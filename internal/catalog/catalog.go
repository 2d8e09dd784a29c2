// Package catalog serves the built-in product listing. The catalog ships
// embedded in the binary and is read-only at runtime; orders snapshot product
// data at checkout so they never depend on it afterwards.
package catalog

import (
	_ "embed"
	"encoding/json"
	"strings"

	"github.com/easeshop/easeshop/internal/common"
)

//go:embed products.json
var productsJSON []byte

// Product is one catalog entry. Prices are integer rupees.
type Product struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Brand         string  `json:"brand"`
	Category      string  `json:"category"`
	Price         int     `json:"price"`
	OriginalPrice int     `json:"originalPrice,omitempty"`
	Stock         int     `json:"stock"`
	Image         string  `json:"image,omitempty"`
	Description   string  `json:"description,omitempty"`
	Rating        float64 `json:"rating,omitempty"`
	ReviewCount   int     `json:"reviewCount,omitempty"`
}

// Catalog is the loaded product listing.
type Catalog struct {
	products []Product
}

// Load parses the embedded product data.
func Load() (*Catalog, error) {
	var products []Product
	if err := json.Unmarshal(productsJSON, &products); err != nil {
		return nil, err
	}
	return &Catalog{products: products}, nil
}

// All returns every product in catalog order.
func (c *Catalog) All() []Product {
	return c.products
}

// Find returns the product with the given id, or ErrProductNotFound.
func (c *Catalog) Find(id int) (*Product, error) {
	for i := range c.products {
		if c.products[i].ID == id {
			return &c.products[i], nil
		}
	}
	return nil, common.ErrProductNotFound
}

// Search matches the query against product names, brands, and categories,
// case-insensitively. An empty query matches everything.
func (c *Catalog) Search(query string) []Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return c.products
	}

	var found []Product
	for _, p := range c.products {
		haystack := strings.ToLower(p.Name + " " + p.Brand + " " + p.Category)
		if strings.Contains(haystack, query) {
			found = append(found, p)
		}
	}
	return found
}
