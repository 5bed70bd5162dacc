package domain

import "errors"

var ErrMenuItemNotFound = errors.New("menu item not found")
var ErrCategoryNotFound = errors.New("category not found")
var ErrCategoryExists = errors.New("category already exists")

// MenuItem is a sellable dish or drink.
type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
	Available   bool    `json:"available"`
	CategoryID  string  `json:"category_id,omitempty"`
}

// Category groups menu items. Deleting a category cascades to its items.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
