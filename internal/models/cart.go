package models

// CartEntry is a server-persisted cart line. ID is assigned by the food API on insert and
// changes every time the entry is re-created.
type CartEntry struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Image    string `json:"image"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
	Username string `json:"username"`
}

func (e CartEntry) Total() int {
	return e.Price * e.Quantity
}

func (e CartEntry) CartItem(quantity int) CartItemInput {
	return CartItemInput{
		Name:     e.Name,
		Image:    e.Image,
		Price:    e.Price,
		Quantity: quantity,
	}
}

// CartItemInput is what the food API's add-to-cart endpoint accepts.
type CartItemInput struct {
	Name     string `json:"name" validate:"required"`
	Image    string `json:"image" validate:"required"`
	Price    int    `json:"price" validate:"gte=0"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

// CartSummary is always computed from a fresh listing.
type CartSummary struct {
	Entries       []CartEntry `json:"entries"`
	TotalPrice    int         `json:"total_price"`
	TotalQuantity int         `json:"total_quantity"`
}

func NewCartSummary(entries []CartEntry) CartSummary {
	if entries == nil {
		entries = []CartEntry{}
	}

	summary := CartSummary{Entries: entries}
	for _, e := range entries {
		summary.TotalPrice += e.Total()
		summary.TotalQuantity += e.Quantity
	}

	return summary
}

// FindByName returns the first entry whose name equals name.
func (s CartSummary) FindByName(name string) (CartEntry, bool) {
	for _, e := range s.Entries {
		if e.Name == name {
			return e, true
		}
	}
	return CartEntry{}, false
}

func (s CartSummary) FindByID(id int) (CartEntry, bool) {
	for _, e := range s.Entries {
		if e.ID == id {
			return e, true
		}
	}
	return CartEntry{}, false
}

type RemoveOutcome struct {
	EntryID int    `json:"entry_id"`
	Name    string `json:"name"`
	Error   string `json:"error,omitempty"`
}

func (o RemoveOutcome) OK() bool {
	return o.Error == ""
}

// ClearReport lists every remove attempted by a cart clear, in listing order.
type ClearReport struct {
	Outcomes []RemoveOutcome `json:"outcomes"`
	Removed  int             `json:"removed"`
	Failed   int             `json:"failed"`
}

func (r *ClearReport) Record(entry CartEntry, err error) {
	outcome := RemoveOutcome{EntryID: entry.ID, Name: entry.Name}
	if err != nil {
		outcome.Error = err.Error()
		r.Failed++
	} else {
		r.Removed++
	}
	r.Outcomes = append(r.Outcomes, outcome)
}

type AddCartItemRequest struct {
	FoodID   int    `json:"food_id"`
	Name     string `json:"name" validate:"required"`
	Image    string `json:"image" validate:"required"`
	Price    int    `json:"price" validate:"gte=0"`
	Quantity int    `json:"quantity" validate:"omitempty,min=1"`
	Mode     string `json:"mode" validate:"omitempty,oneof=distinct replace"`
}

func (r AddCartItemRequest) Food() Food {
	return Food{ID: r.FoodID, Name: r.Name, Image: r.Image, Price: r.Price}
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartMutationResponse carries the operation message and the cart as re-listed afterwards.
// Cart is nil when that re-listing failed.
type CartMutationResponse struct {
	Message string       `json:"message"`
	Report  *ClearReport `json:"report,omitempty"`
	Cart    *CartSummary `json:"cart,omitempty"`
}
