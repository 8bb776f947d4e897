package models

import "time"

// Food is a catalog item. Price is in the smallest currency unit.
type Food struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
	Price int    `json:"price"`
}

// ToFavorite builds the local favorites record for f, stamped with addedAt.
func (f Food) ToFavorite(addedAt time.Time) FavoriteEntry {
	return FavoriteEntry{
		FoodID:  f.ID,
		Name:    f.Name,
		Image:   f.Image,
		Price:   f.Price,
		AddedAt: addedAt,
	}
}

// CartItem is the insert payload for the remote cart.
func (f Food) CartItem(quantity int) CartItemInput {
	return CartItemInput{
		Name:     f.Name,
		Image:    f.Image,
		Price:    f.Price,
		Quantity: quantity,
	}
}
