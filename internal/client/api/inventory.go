package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/freshkeep/freshkeep-cli/internal/client/models"
)

// Items lists inventory items. Zero-valued filter fields are omitted;
// status falls back to "active" and limit to 50, as the mobile client did.
func (c *Client) Items(ctx context.Context, filter models.ItemFilter) (*models.ItemListResponse, error) {
	q := url.Values{}

	status := filter.Status
	if status == "" {
		status = "active"
	}
	q.Set("status", status)

	limit := filter.Limit
	if limit == 0 {
		limit = 50
	}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(filter.Offset))

	if filter.Category != "" {
		q.Set("category", filter.Category)
	}
	if filter.Storage != "" {
		q.Set("storage", filter.Storage)
	}
	if filter.Search != "" {
		q.Set("search", filter.Search)
	}

	var resp models.ItemListResponse
	err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/api/inventory", Query: q}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Item(ctx context.Context, itemID string) (*models.ItemResponse, error) {
	var resp models.ItemResponse
	err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/api/inventory/" + itemID}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ExpiringItems lists items expiring within the given number of days.
func (c *Client) ExpiringItems(ctx context.Context, days int) (*models.ItemListResponse, error) {
	q := url.Values{"days": []string{strconv.Itoa(days)}}
	var resp models.ItemListResponse
	err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/api/inventory/expiring", Query: q}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ExpiredItems(ctx context.Context) (*models.ItemListResponse, error) {
	var resp models.ItemListResponse
	err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/api/inventory/expired"}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) InventoryStats(ctx context.Context) (*models.InventoryStatsResponse, error) {
	var resp models.InventoryStatsResponse
	err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/api/inventory/stats"}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CreateItem(ctx context.Context, item models.NewItem) (*models.ItemResponse, error) {
	var resp models.ItemResponse
	err := c.Do(ctx, Request{Method: http.MethodPost, Path: "/api/inventory", Body: item}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) UpdateItem(ctx context.Context, itemID string, update models.ItemUpdate) (*models.ItemResponse, error) {
	var resp models.ItemResponse
	err := c.Do(ctx, Request{Method: http.MethodPut, Path: "/api/inventory/" + itemID, Body: update}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DeleteItem(ctx context.Context, itemID string) error {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: "/api/inventory/" + itemID}, nil)
}

// ConsumeItem marks an item (fully or partially) eaten.
func (c *Client) ConsumeItem(ctx context.Context, itemID string, req models.ConsumeRequest) (*models.ItemResponse, error) {
	var resp models.ItemResponse
	err := c.Do(ctx, Request{Method: http.MethodPost, Path: "/api/inventory/" + itemID + "/consume", Body: req}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// WasteItem marks an item discarded. An empty reason defaults to "forgot".
func (c *Client) WasteItem(ctx context.Context, itemID string, req models.WasteRequest) (*models.ItemResponse, error) {
	if req.Reason == "" {
		req.Reason = "forgot"
	}
	var resp models.ItemResponse
	err := c.Do(ctx, Request{Method: http.MethodPost, Path: "/api/inventory/" + itemID + "/waste", Body: req}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ScanReceipt uploads a receipt image for OCR parsing. The image is buffered
// into the request descriptor so the pipeline can re-dispatch it after a
// token refresh.
func (c *Client) ScanReceipt(ctx context.Context, filename string, image io.Reader) (*models.ReceiptScanResponse, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, fmt.Errorf("read receipt image: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalize multipart body: %w", err)
	}

	var resp models.ReceiptScanResponse
	err = c.Do(ctx, Request{
		Method:      http.MethodPost,
		Path:        "/api/inventory/receipt",
		RawBody:     buf.Bytes(),
		ContentType: w.FormDataContentType(),
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ConfirmReceiptItems adds the user-confirmed subset of parsed receipt lines
// to the inventory.
func (c *Client) ConfirmReceiptItems(ctx context.Context, items []models.ParsedReceiptItem) (*models.ItemListResponse, error) {
	var resp models.ItemListResponse
	err := c.Do(ctx, Request{Method: http.MethodPost, Path: "/api/inventory/receipt/confirm", Body: items}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) LookupBarcode(ctx context.Context, upc string) (*models.BarcodeResponse, error) {
	var resp models.BarcodeResponse
	err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/api/inventory/barcode/" + upc}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
