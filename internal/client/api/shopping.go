package api

import (
	"context"
	"net/http"

	"github.com/freshkeep/freshkeep-cli/internal/client/models"
)

func (c *Client) ShoppingList(ctx context.Context) (*models.ShoppingListResponse, error) {
	var resp models.ShoppingListResponse
	err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/api/shopping-list"}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// AddShoppingItem appends to the list. Quantity defaults to 1 and unit to
// "piece", matching the mobile client.
func (c *Client) AddShoppingItem(ctx context.Context, item models.NewShoppingItem) (*models.ShoppingItemResponse, error) {
	if item.Quantity == 0 {
		item.Quantity = 1
	}
	if item.Unit == "" {
		item.Unit = "piece"
	}

	var resp models.ShoppingItemResponse
	err := c.Do(ctx, Request{Method: http.MethodPost, Path: "/api/shopping-list", Body: item}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) UpdateShoppingItem(ctx context.Context, itemID string, update models.ShoppingItemUpdate) (*models.ShoppingItemResponse, error) {
	var resp models.ShoppingItemResponse
	err := c.Do(ctx, Request{Method: http.MethodPut, Path: "/api/shopping-list/" + itemID, Body: update}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DeleteShoppingItem(ctx context.Context, itemID string) error {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: "/api/shopping-list/" + itemID}, nil)
}

// ClearCheckedItems removes every checked-off entry.
func (c *Client) ClearCheckedItems(ctx context.Context) error {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: "/api/shopping-list/checked"}, nil)
}
