package catalog

import (
	"database/sql"
	"fmt"

	dbutil "github.com/llehouerou/showcase/internal/db"
)

// Store keeps the featured products in sqlite.
type Store struct {
	db *sql.DB
}

// Open opens or creates the catalog database at path.
func Open(path string) (*Store, error) {
	db, err := dbutil.Open(path)
	if err != nil {
		return nil, err
	}
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS featured_products (
			id TEXT PRIMARY KEY,
			position INTEGER NOT NULL UNIQUE,
			title TEXT NOT NULL,
			subtitle TEXT,
			image TEXT,
			price INTEGER,
			currency TEXT
		);
	`)
	return err
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Featured returns the featured products in display order.
func (s *Store) Featured() ([]Product, error) {
	rows, err := s.db.Query(`
		SELECT id, title, subtitle, image, price, currency
		FROM featured_products
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		var subtitle, image, currency sql.NullString
		var price sql.NullInt64
		if err := rows.Scan(&p.ID, &p.Title, &subtitle, &image, &price, &currency); err != nil {
			return nil, err
		}
		p.Subtitle = dbutil.NullStringValue(subtitle)
		p.Image = dbutil.NullStringValue(image)
		p.Price = dbutil.NullInt64Value(price)
		p.Currency = dbutil.NullStringValue(currency)
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return normalize(products), nil
}

// Replace swaps the featured products for products in one transaction.
func (s *Store) Replace(products []Product) error {
	if err := Validate(products); err != nil {
		return err
	}
	return dbutil.WithTx(s.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM featured_products`); err != nil {
			return err
		}
		stmt, err := tx.Prepare(`
			INSERT INTO featured_products (id, position, title, subtitle, image, price, currency)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, p := range products {
			if _, err := stmt.Exec(p.ID, i, p.Title, nullString(p.Subtitle),
				nullString(p.Image), p.Price, nullString(p.Currency)); err != nil {
				return fmt.Errorf("insert %q: %w", p.ID, err)
			}
		}
		return nil
	})
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// Load picks the configured source: the database when set, then the TOML
// file, then the built-in sample.
func Load(file, database string) ([]Product, error) {
	switch {
	case database != "":
		s, err := Open(database)
		if err != nil {
			return nil, err
		}
		defer s.Close()
		products, err := s.Featured()
		if err != nil {
			return nil, err
		}
		if len(products) == 0 {
			return nil, ErrNoProducts
		}
		return products, nil
	case file != "":
		return LoadFile(file)
	default:
		return Sample(), nil
	}
}
