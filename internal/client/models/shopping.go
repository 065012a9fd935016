package models

type ShoppingItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity,omitempty"`
	Unit     string  `json:"unit,omitempty"`
	Category string  `json:"category,omitempty"`
	Notes    string  `json:"notes,omitempty"`
	Checked  bool    `json:"checked"`
}

type ShoppingListResponse struct {
	Success bool           `json:"success"`
	Data    []ShoppingItem `json:"data"`
}

type ShoppingItemResponse struct {
	Success bool          `json:"success"`
	Data    *ShoppingItem `json:"data"`
}

// NewShoppingItem carries the add-item payload. Quantity defaults to 1 and
// Unit to "piece" on the client, matching the mobile app.
type NewShoppingItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Category string  `json:"category,omitempty"`
	Notes    string  `json:"notes,omitempty"`
}

type ShoppingItemUpdate struct {
	Name     string   `json:"name,omitempty"`
	Quantity *float64 `json:"quantity,omitempty"`
	Unit     string   `json:"unit,omitempty"`
	Checked  *bool    `json:"checked,omitempty"`
	Notes    string   `json:"notes,omitempty"`
}
