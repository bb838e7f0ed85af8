package domain

import "errors"

var ErrProductNotFound = errors.New("product not found")

// Product is a catalog entry. Stock is mutated only by the order workflow
// (decrement) and admin product edits (absolute set); it never goes negative.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Images      []string `json:"images"`
	Category    string   `json:"category,omitempty"`
	Size        string   `json:"size,omitempty"`
	Stock       int      `json:"stock"`
}
