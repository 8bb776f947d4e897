package models

import "time"

// FavoriteEntry is device-local and never synced to the food API.
type FavoriteEntry struct {
	FoodID  int       `json:"id"`
	Name    string    `json:"name"`
	Image   string    `json:"image"`
	Price   int       `json:"price"`
	AddedAt time.Time `json:"added_at"`
}

func (e FavoriteEntry) ToFood() Food {
	return Food{
		ID:    e.FoodID,
		Name:  e.Name,
		Image: e.Image,
		Price: e.Price,
	}
}

type AddFavoriteRequest struct {
	ID    int    `json:"id" validate:"required,gt=0"`
	Name  string `json:"name" validate:"required"`
	Image string `json:"image" validate:"required"`
	Price int    `json:"price" validate:"gte=0"`
}

func (r AddFavoriteRequest) Food() Food {
	return Food{ID: r.ID, Name: r.Name, Image: r.Image, Price: r.Price}
}

type FavoriteStatus struct {
	ID         int  `json:"id"`
	IsFavorite bool `json:"is_favorite"`
}
