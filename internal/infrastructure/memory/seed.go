package memory

import (
	"github.com/neftalics/Lab01-Inkafarma-Software/internal/domain/catalog"
	"github.com/neftalics/Lab01-Inkafarma-Software/internal/domain/location"
	"github.com/neftalics/Lab01-Inkafarma-Software/internal/domain/stock"
	"github.com/neftalics/Lab01-Inkafarma-Software/internal/domain/user"
)

// SeedProducts is the static catalog.
func SeedProducts() []catalog.Product {
	return []catalog.Product{
		{ID: 1, Name: "Durex", Price: 18.0, Category: "Condoms"},
		{ID: 2, Name: "Panadol", Price: 8.0, Category: "Medicines"},
		{ID: 3, Name: "Pampers", Price: 25.0, Category: "Baby"},
		{ID: 4, Name: "Vick VapoRub", Price: 12.5, Category: "Medicines"},
		{ID: 5, Name: "Ensure", Price: 35.0, Category: "Supplements"},
		{ID: 6, Name: "Ibuprofen", Price: 9.0, Category: "Medicines"},
		{ID: 7, Name: "Curitas", Price: 6.0, Category: "First Aid"},
		{ID: 8, Name: "Aspirina", Price: 10.0, Category: "Medicines"},
		{ID: 9, Name: "Desitin", Price: 19.0, Category: "Baby"},
		{ID: 10, Name: "Huggies Wipes", Price: 14.0, Category: "Baby"},
		{ID: 11, Name: "Listerine", Price: 16.0, Category: "Personal Care"},
		{ID: 12, Name: "Paracetamol", Price: 7.5, Category: "Medicines"},
		{ID: 13, Name: "Ensure Plus", Price: 38.0, Category: "Supplements"},
		{ID: 14, Name: "Cicatricure Gel", Price: 22.0, Category: "Personal Care"},
		{ID: 15, Name: "Bepanthen", Price: 18.5, Category: "First Aid"},
		{ID: 16, Name: "Melatonina", Price: 20.0, Category: "Supplements"},
		{ID: 17, Name: "Neutrogena Cleanser", Price: 29.0, Category: "Personal Care"},
		{ID: 18, Name: "Similac 1", Price: 45.0, Category: "Baby"},
		{ID: 19, Name: "Omeprazol", Price: 11.0, Category: "Medicines"},
		{ID: 20, Name: "Cetaphil Lotion", Price: 27.0, Category: "Personal Care"},
	}
}

// SeedStock is the initial ledger: one entry per catalog product.
func SeedStock() []stock.Entry {
	return []stock.Entry{
		{ProductID: 1, Quantity: 100},
		{ProductID: 2, Quantity: 120},
		{ProductID: 3, Quantity: 250},
		{ProductID: 4, Quantity: 80},
		{ProductID: 5, Quantity: 70},
		{ProductID: 6, Quantity: 90},
		{ProductID: 7, Quantity: 200},
		{ProductID: 8, Quantity: 60},
		{ProductID: 9, Quantity: 150},
		{ProductID: 10, Quantity: 130},
		{ProductID: 11, Quantity: 110},
		{ProductID: 12, Quantity: 95},
		{ProductID: 13, Quantity: 75},
		{ProductID: 14, Quantity: 85},
		{ProductID: 15, Quantity: 50},
		{ProductID: 16, Quantity: 60},
		{ProductID: 17, Quantity: 55},
		{ProductID: 18, Quantity: 45},
		{ProductID: 19, Quantity: 100},
		{ProductID: 20, Quantity: 70},
	}
}

// SeedLocations builds the three sales points. Each location's initial stock
// view is materialized from the seed ledger for the products it carries.
func SeedLocations() []*location.Location {
	carried := map[int]struct {
		name     string
		products []int
	}{
		1: {name: "Farmacia", products: []int{1, 2, 4, 6, 7, 19}},
		2: {name: "Supermercado", products: []int{3, 5, 9, 10, 18}},
		3: {name: "Droguería", products: []int{8, 11, 12, 13, 14, 15, 16, 17, 20}},
	}

	ledger := make(map[int]int)
	for _, e := range SeedStock() {
		ledger[e.ProductID] = e.Quantity
	}

	out := make([]*location.Location, 0, len(carried))
	for id := 1; id <= len(carried); id++ {
		cfg := carried[id]
		view := make([]stock.Entry, 0, len(cfg.products))
		for _, pid := range cfg.products {
			view = append(view, stock.Entry{ProductID: pid, Quantity: ledger[pid]})
		}
		out = append(out, &location.Location{
			ID:      id,
			Name:    cfg.name,
			Carried: append([]int(nil), cfg.products...),
			Stock:   view,
		})
	}
	return out
}

// SeedUsers holds the demo login records; plaintext on purpose.
func SeedUsers() []user.Credentials {
	return []user.Credentials{
		{UserID: 1, Username: "admin", Password: "password123"},
		{UserID: 2, Username: "invitado", Password: "secret"},
	}
}
