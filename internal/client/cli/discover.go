package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/freshkeep/freshkeep-cli/internal/client/models"
)

func (a *App) recipes(ctx context.Context) error {
	resp, err := a.api.Recipes(ctx, 0, true)
	if err != nil {
		return err
	}

	if len(resp.Data) == 0 {
		fmt.Fprintln(a.out, "No recipe suggestions right now.")
		return nil
	}

	for _, r := range resp.Data {
		fmt.Fprintf(a.out, "%s  %s", r.ID, r.Title)
		if len(r.UsesExpiring) > 0 {
			fmt.Fprintf(a.out, "  (uses expiring: %s)", strings.Join(r.UsesExpiring, ", "))
		}
		fmt.Fprintln(a.out)
	}
	return nil
}

// shop with no arguments prints the shopping list; "shop add <name...>"
// appends an item with client-side defaults; "shop check <id>" marks an
// item as bought.
func (a *App) shop(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] == "add" {
		if len(args) < 2 {
			fmt.Fprintln(a.out, "Usage: shop add <name>")
			return nil
		}
		name := strings.Join(args[1:], " ")
		resp, err := a.api.AddShoppingItem(ctx, models.NewShoppingItem{Name: name})
		if err != nil {
			return err
		}
		if resp.Data != nil {
			fmt.Fprintf(a.out, "Added %s to shopping list\n", resp.Data.Name)
		}
		return nil
	}

	if len(args) > 0 && args[0] == "check" {
		if len(args) < 2 {
			fmt.Fprintln(a.out, "Usage: shop check <id>")
			return nil
		}
		checked := true
		resp, err := a.api.UpdateShoppingItem(ctx, args[1], models.ShoppingItemUpdate{Checked: &checked})
		if err != nil {
			return err
		}
		if resp.Data != nil {
			fmt.Fprintf(a.out, "Checked off %s\n", resp.Data.Name)
		}
		return nil
	}

	resp, err := a.api.ShoppingList(ctx)
	if err != nil {
		return err
	}

	if len(resp.Data) == 0 {
		fmt.Fprintln(a.out, "Shopping list is empty.")
		return nil
	}

	for _, item := range resp.Data {
		mark := " "
		if item.Checked {
			mark = "x"
		}
		fmt.Fprintf(a.out, "[%s] %s  %s %g %s\n", mark, item.ID, item.Name, item.Quantity, item.Unit)
	}
	return nil
}

func (a *App) notifications(ctx context.Context) error {
	resp, err := a.api.Notifications(ctx, true)
	if err != nil {
		return err
	}

	if len(resp.Data) == 0 {
		fmt.Fprintln(a.out, "No unread notifications.")
		return nil
	}

	for _, n := range resp.Data {
		fmt.Fprintf(a.out, "%s  %s", n.ID, n.Title)
		if n.Body != "" {
			fmt.Fprintf(a.out, ": %s", n.Body)
		}
		fmt.Fprintln(a.out)
	}
	return nil
}
