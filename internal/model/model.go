// Package model contains domain entities and DTOs used across layers.
// I keep it lean and focused on data shapes; the only behavior lives in
// query parameter normalization and derived order views.
package model

import "time"

// ProductBrand is a catalog brand a product belongs to.
type ProductBrand struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ProductType is a catalog category such as "Boots" or "Gloves".
type ProductType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Product represents a sellable catalog item.
type Product struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	PictureURL    string    `json:"pictureUrl"`
	ProductTypeID int64     `json:"productTypeId"`
	ProductType   string    `json:"productType"`
	BrandID       int64     `json:"productBrandId"`
	Brand         string    `json:"productBrand"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
