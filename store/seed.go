package store

import (
	"photostudio-backend/models"
)

// seed installs the reference data a fresh installation starts from: the
// service catalog, the photographer roster and a small consumables stock.
func (r *Repository) seed() {
	if len(r.sessionTypes) == 0 {
		r.sessionTypes = append(r.sessionTypes,
			models.SessionType{Name: "Portrait", BasePrice: 1000},
			models.SessionType{Name: "Wedding", BasePrice: 5000},
			models.SessionType{Name: "Family", BasePrice: 1500},
		)
	}
	if len(r.photographers) == 0 {
		r.photographers = append(r.photographers,
			models.NewPhotographer("Oleh Vinnyk", "0991112233", "Wedding"),
			models.NewPhotographer("Dasha Astafieva", "0995556677", "Portrait"),
			models.NewPhotographer("Denys Holoborotko", "0975556677", "Family"),
		)
	}
	if len(r.inventory) == 0 {
		r.inventory = append(r.inventory,
			&models.InventoryItem{Name: "Photo paper 10x15", Quantity: 500},
			&models.InventoryItem{Name: "Frame A4", Quantity: 40},
		)
	}
}
