// Package catalog loads the featured products shown in the showcase.
package catalog

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Product is one featured product.
type Product struct {
	ID       string
	Title    string
	Subtitle string
	Image    string // path to a png or jpeg, empty for none
	Price    int64  // minor units (cents)
	Currency string // ISO 4217 code
}

// ItemID identifies the product to the carousel.
func (p Product) ItemID() string { return p.ID }

var (
	ErrNoProducts  = errors.New("catalog has no products")
	ErrMissingID   = errors.New("product has no id")
	ErrMissingName = errors.New("product has no title")
	ErrDuplicateID = errors.New("duplicate product id")
	ErrBadPrice    = errors.New("price is negative")
)

// fileProduct is a [[products]] table in a TOML catalog.
type fileProduct struct {
	ID       string  `koanf:"id"`
	Title    string  `koanf:"title"`
	Subtitle string  `koanf:"subtitle"`
	Image    string  `koanf:"image"`
	Price    float64 `koanf:"price"`    // major units, e.g. 129.99
	Currency string  `koanf:"currency"` // default: USD
}

// LoadFile reads the [[products]] tables of a TOML catalog. Relative image
// paths are resolved against the catalog's directory.
func LoadFile(path string) ([]Product, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var entries []fileProduct
	if err := k.Unmarshal("products", &entries); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	dir := filepath.Dir(path)
	products := make([]Product, 0, len(entries))
	for _, e := range entries {
		p := Product{
			ID:       e.ID,
			Title:    e.Title,
			Subtitle: e.Subtitle,
			Image:    e.Image,
			Price:    toMinor(e.Price, e.Currency),
			Currency: e.Currency,
		}
		if p.Image != "" && !filepath.IsAbs(p.Image) {
			p.Image = filepath.Join(dir, p.Image)
		}
		products = append(products, p)
	}

	if err := Validate(products); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return normalize(products), nil
}

// Validate reports the first product with a missing or duplicate id, a
// missing title or a negative price, and rejects an empty catalog.
func Validate(products []Product) error {
	if len(products) == 0 {
		return ErrNoProducts
	}
	seen := make(map[string]bool, len(products))
	for i, p := range products {
		if p.ID == "" {
			return fmt.Errorf("product %d: %w", i+1, ErrMissingID)
		}
		if p.Title == "" {
			return fmt.Errorf("product %q: %w", p.ID, ErrMissingName)
		}
		if p.Price < 0 {
			return fmt.Errorf("product %q: %w", p.ID, ErrBadPrice)
		}
		if seen[p.ID] {
			return fmt.Errorf("product %q: %w", p.ID, ErrDuplicateID)
		}
		seen[p.ID] = true
	}
	return nil
}

func normalize(products []Product) []Product {
	for i := range products {
		if products[i].Currency == "" {
			products[i].Currency = DefaultCurrency
		}
	}
	return products
}

// Sample returns the built-in demo products used when nothing is configured.
func Sample() []Product {
	return normalize([]Product{
		{ID: "lamp", Title: "Brass Desk Lamp", Subtitle: "Hand-spun shade, warm dimmable LED", Price: 12900},
		{ID: "chair", Title: "Oak Lounge Chair", Subtitle: "Solid oak frame with wool cushions", Price: 64900},
		{ID: "kettle", Title: "Copper Kettle", Subtitle: "1.5 l, works on induction", Price: 8950},
		{ID: "rug", Title: "Berber Rug", Subtitle: "Hand-knotted, 160 x 230 cm", Price: 129900},
		{ID: "vase", Title: "Stoneware Vase", Subtitle: "Reactive glaze, every piece unique", Price: 4500},
		{ID: "clock", Title: "Wall Clock", Subtitle: "Silent sweep movement", Price: 7900},
		{ID: "throw", Title: "Linen Throw", Subtitle: "Stonewashed, 130 x 170 cm", Price: 9500, Currency: "EUR"},
	})
}
