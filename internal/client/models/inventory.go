package models

type InventoryItem struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Category        string   `json:"category,omitempty"`
	Storage         string   `json:"storage,omitempty"`
	Quantity        float64  `json:"quantity,omitempty"`
	Unit            string   `json:"unit,omitempty"`
	PurchaseDate    string   `json:"purchase_date,omitempty"`
	ExpirationDate  string   `json:"expiration_date,omitempty"`
	DaysUntilExpiry *int     `json:"days_until_expiry,omitempty"`
	Status          string   `json:"status,omitempty"`
	Notes           string   `json:"notes,omitempty"`
	EstimatedValue  *float64 `json:"estimated_value,omitempty"`
}

// ItemFilter narrows inventory listings. Zero values mean "not filtered";
// Status defaults to "active" on the server.
type ItemFilter struct {
	Status   string
	Category string
	Storage  string
	Search   string
	Limit    int
	Offset   int
}

type ItemListResponse struct {
	Success bool            `json:"success"`
	Data    []InventoryItem `json:"data"`
	Total   int             `json:"total,omitempty"`
}

type ItemResponse struct {
	Success bool           `json:"success"`
	Data    *InventoryItem `json:"data"`
}

type InventoryStats struct {
	TotalItems    int     `json:"total_items"`
	ActiveItems   int     `json:"active_items"`
	ExpiringSoon  int     `json:"expiring_soon"`
	Expired       int     `json:"expired"`
	EstimatedLoss float64 `json:"estimated_loss,omitempty"`
}

type InventoryStatsResponse struct {
	Success bool            `json:"success"`
	Data    *InventoryStats `json:"data"`
}

type NewItem struct {
	Name           string  `json:"name"`
	Category       string  `json:"category,omitempty"`
	Storage        string  `json:"storage,omitempty"`
	Quantity       float64 `json:"quantity,omitempty"`
	Unit           string  `json:"unit,omitempty"`
	PurchaseDate   string  `json:"purchase_date,omitempty"`
	ExpirationDate string  `json:"expiration_date,omitempty"`
	Notes          string  `json:"notes,omitempty"`
}

type ItemUpdate struct {
	Name           string   `json:"name,omitempty"`
	Category       string   `json:"category,omitempty"`
	Storage        string   `json:"storage,omitempty"`
	Quantity       *float64 `json:"quantity,omitempty"`
	Unit           string   `json:"unit,omitempty"`
	ExpirationDate string   `json:"expiration_date,omitempty"`
	Notes          string   `json:"notes,omitempty"`
}

type ConsumeRequest struct {
	QuantityConsumed *float64 `json:"quantity_consumed,omitempty"`
	Notes            string   `json:"notes,omitempty"`
}

// WasteRequest reports a discarded item. Reason defaults to "forgot",
// matching the mobile client.
type WasteRequest struct {
	Reason       string `json:"reason"`
	FeedbackText string `json:"feedback_text,omitempty"`
}

// ParsedReceiptItem is one line recognized by the receipt OCR endpoint,
// awaiting user confirmation.
type ParsedReceiptItem struct {
	Name           string  `json:"name"`
	Category       string  `json:"category,omitempty"`
	Quantity       float64 `json:"quantity,omitempty"`
	Unit           string  `json:"unit,omitempty"`
	Price          float64 `json:"price,omitempty"`
	ExpirationDate string  `json:"expiration_date,omitempty"`
}

type ReceiptScanResponse struct {
	Success bool                `json:"success"`
	Data    []ParsedReceiptItem `json:"data"`
}

type BarcodeProduct struct {
	UPC      string `json:"upc"`
	Name     string `json:"name"`
	Brand    string `json:"brand,omitempty"`
	Category string `json:"category,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

type BarcodeResponse struct {
	Success bool            `json:"success"`
	Data    *BarcodeProduct `json:"data"`
}
