package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/mkorobko/orderbot/internal/domain/errors"
)

const fixture = `{
  "fruits": {
    "name": "Fruits",
    "items": {
      "a1": {"name": "Apples", "price": 2.5},
      "b2": {"name": "Bananas", "price": 1.8}
    }
  },
  "dairy": {
    "name": "Dairy",
    "items": {
      "m1": {"name": "Milk", "price": 1.2}
    }
  }
}`

func loadFixture(t *testing.T) *Catalog {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	if err := os.WriteFile(path, []byte(fixture), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return c
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed file")
	}
}

func TestCategoriesAreSortedByKey(t *testing.T) {
	c := loadFixture(t)

	categories := c.Categories()
	if len(categories) != 2 {
		t.Fatalf("expected two categories, got %d", len(categories))
	}
	if categories[0].Key != "dairy" || categories[1].Key != "fruits" {
		t.Fatalf("unexpected order %+v", categories)
	}
	if categories[1].Name != "Fruits" {
		t.Fatalf("unexpected display name %q", categories[1].Name)
	}
}

func TestItemsAreSortedByID(t *testing.T) {
	c := loadFixture(t)

	products, err := c.Items("fruits")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected two products, got %d", len(products))
	}
	if products[0].ID != "a1" || products[1].ID != "b2" {
		t.Fatalf("unexpected order %+v", products)
	}
	if products[0].Category != "Fruits" || products[0].CategoryKey != "fruits" {
		t.Fatalf("unexpected category binding %+v", products[0])
	}
}

func TestItemsUnknownCategory(t *testing.T) {
	c := loadFixture(t)

	if _, err := c.Items("frozen"); !errors.Is(err, domainErrors.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestResolve(t *testing.T) {
	c := loadFixture(t)

	product, err := c.Resolve("m1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.Name != "Milk" || product.Category != "Dairy" {
		t.Fatalf("unexpected product %+v", product)
	}
	if !product.Price.Equal(decimal.NewFromFloat(1.2)) {
		t.Fatalf("unexpected price %s", product.Price)
	}

	if _, err := c.Resolve("zz"); !errors.Is(err, domainErrors.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}
