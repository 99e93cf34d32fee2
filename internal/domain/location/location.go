package location

import (
	"errors"

	"github.com/neftalics/Lab01-Inkafarma-Software/internal/domain/stock"
)

var ErrNotFound = errors.New("location: not found")

// Location is a sales point with a fixed set of carried products and a
// materialized stock view over them. Carried is configuration: it never
// changes after seeding. Stock is the last snapshot taken from the ledger;
// it is replaced wholesale on refresh and may lag the ledger in between.
type Location struct {
	ID      int           `json:"location_id"`
	Name    string        `json:"location_name"`
	Carried []int         `json:"-"`
	Stock   []stock.Entry `json:"stock"`
}

// StockFor returns the location's view entry for a product, or false when the
// location does not carry it.
func (l *Location) StockFor(productID int) (stock.Entry, bool) {
	for _, e := range l.Stock {
		if e.ProductID == productID {
			return e, true
		}
	}
	return stock.Entry{}, false
}
