package models

// CartItem represents one line in the cart. Items have no identity beyond
// their position; duplicate fragrance/volume pairs stay as separate lines.
type CartItem struct {
	Fragrance string `json:"fragrance"`
	Brand     string `json:"brand"`
	Volume    string `json:"volume"`
	Price     int    `json:"price"`
}

// CartSummary provides a summary of the cart with totals
type CartSummary struct {
	ItemCount int        `json:"item_count"`
	Total     int        `json:"total"`
	Items     []CartItem `json:"items"`
}

// CartItemInput holds data for adding an item to the cart
type CartItemInput struct {
	Brand     string `json:"brand" binding:"required"`
	Fragrance string `json:"fragrance" binding:"required"`
	Volume    string `json:"volume" binding:"required"`
}

// VolumeInput holds data for selecting a volume tier for a fragrance
type VolumeInput struct {
	Fragrance string `json:"fragrance" binding:"required"`
	Volume    string `json:"volume" binding:"required"`
}
