// File: internal/database/seed.go
package database

import (
	"log"

	"gorm.io/gorm"

	"github.com/dcastano/go-shopchat/internal/domain"
)

// seedCatalog returns the fixed shoe catalog loaded once into an empty
// store. A fresh slice is built per call so assigned IDs never leak back
// into package state.
func seedCatalog() []domain.Product {
	return []domain.Product{
		{Name: "Air Zoom Pegasus 40", Brand: "Nike", Category: "Running", Size: "42", Color: "Negro", Price: 129.99, Stock: 15, Description: "Zapatillas de running neutras para entrenamiento diario."},
		{Name: "Ultraboost Light", Brand: "Adidas", Category: "Running", Size: "41", Color: "Blanco", Price: 189.95, Stock: 10, Description: "Amortiguación BOOST para un retorno de energía increíble."},
		{Name: "Suede Classic XXI", Brand: "Puma", Category: "Casual", Size: "43", Color: "Rojo", Price: 75.00, Stock: 25, Description: "Un clásico atemporal con exterior de ante de primera calidad."},
		{Name: "GEL-Kayano 30", Brand: "ASICS", Category: "Running", Size: "42.5", Color: "Azul", Price: 160.00, Stock: 8, Description: "Máxima estabilidad y comodidad para corredores pronadores."},
		{Name: "Chuck Taylor All Star", Brand: "Converse", Category: "Casual", Size: "40", Color: "Negro", Price: 60.00, Stock: 30, Description: "El icónico modelo de lona que nunca pasa de moda."},
		{Name: "Club C 85", Brand: "Reebok", Category: "Casual", Size: "44", Color: "Blanco", Price: 85.00, Stock: 18, Description: "Estilo retro de tenis con una parte superior de cuero suave."},
		{Name: "Clifton 9", Brand: "Hoka", Category: "Running", Size: "43", Color: "Naranja", Price: 145.00, Stock: 12, Description: "Amortiguación y ligereza para tus carreras diarias."},
		{Name: "574 Core", Brand: "New Balance", Category: "Casual", Size: "41.5", Color: "Gris", Price: 90.00, Stock: 22, Description: "Silueta clásica con amortiguación ENCAP en la mediasuela."},
		{Name: "Oxford Impermeable", Brand: "Timberland", Category: "Formal", Size: "44", Color: "Marrón", Price: 130.00, Stock: 7, Description: "Elegancia y protección contra el agua para un look formal."},
		{Name: "Vaporfly 3", Brand: "Nike", Category: "Running", Size: "42", Color: "Verde", Price: 250.00, Stock: 5, Description: "Diseñadas para la competición, con placa de fibra de carbono para máxima propulsión."},
	}
}

// SeedProducts loads the initial catalog when the products table is empty.
// Running it against a populated store is a no-op.
func SeedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("[Database] Products table already populated (%d records); skipping seed", count)
		return nil
	}

	catalog := seedCatalog()
	if err := db.Create(&catalog).Error; err != nil {
		return err
	}
	log.Printf("[Database] Seeded %d products into empty catalog", len(catalog))
	return nil
}
