package cli

import (
	"context"
	"fmt"

	"github.com/freshkeep/freshkeep-cli/internal/client/models"
)

func (a *App) list(ctx context.Context) error {
	resp, err := a.api.Items(ctx, models.ItemFilter{})
	if err != nil {
		return err
	}

	if len(resp.Data) == 0 {
		fmt.Fprintln(a.out, "Inventory is empty.")
		return nil
	}

	for _, item := range resp.Data {
		a.printItem(item)
	}
	return nil
}

func (a *App) expiring(ctx context.Context, days int) error {
	resp, err := a.api.ExpiringItems(ctx, days)
	if err != nil {
		return err
	}

	if len(resp.Data) == 0 {
		fmt.Fprintf(a.out, "Nothing expires within %d days.\n", days)
		return nil
	}

	for _, item := range resp.Data {
		a.printItem(item)
	}
	return nil
}

func (a *App) addItem(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Item name", a.out)
	if err != nil {
		return err
	}

	category, err := GetOptionalText(a.reader, "Category", "", a.out)
	if err != nil {
		return err
	}

	quantity, err := GetNumber(a.reader, "Quantity", 1, a.out)
	if err != nil {
		return err
	}

	unit, err := GetOptionalText(a.reader, "Unit", "piece", a.out)
	if err != nil {
		return err
	}

	expiration, err := GetOptionalText(a.reader, "Expiration date (YYYY-MM-DD)", "", a.out)
	if err != nil {
		return err
	}

	resp, err := a.api.CreateItem(ctx, models.NewItem{
		Name:           name,
		Category:       category,
		Quantity:       quantity,
		Unit:           unit,
		ExpirationDate: expiration,
	})
	if err != nil {
		return err
	}

	if resp.Data != nil {
		fmt.Fprintf(a.out, "Added %s (%s)\n", resp.Data.Name, resp.Data.ID)
	}
	return nil
}

func (a *App) consume(ctx context.Context, itemID string) error {
	resp, err := a.api.ConsumeItem(ctx, itemID, models.ConsumeRequest{})
	if err != nil {
		return err
	}

	if resp.Data != nil {
		fmt.Fprintf(a.out, "Consumed %s\n", resp.Data.Name)
	}
	return nil
}

func (a *App) waste(ctx context.Context, itemID string) error {
	reason, err := GetOptionalText(a.reader, "Reason (forgot/expired/spoiled/too-much)", "forgot", a.out)
	if err != nil {
		return err
	}

	resp, err := a.api.WasteItem(ctx, itemID, models.WasteRequest{Reason: reason})
	if err != nil {
		return err
	}

	if resp.Data != nil {
		fmt.Fprintf(a.out, "Marked %s as wasted (%s)\n", resp.Data.Name, reason)
	}
	return nil
}

func (a *App) stats(ctx context.Context) error {
	inv, err := a.api.InventoryStats(ctx)
	if err != nil {
		return err
	}

	if s := inv.Data; s != nil {
		fmt.Fprintf(a.out, "Items: %d active, %d expiring soon, %d expired\n",
			s.ActiveItems, s.ExpiringSoon, s.Expired)
	}

	summary, err := a.api.AnalyticsSummary(ctx, "")
	if err != nil {
		return err
	}

	if s := summary.Data; s != nil {
		fmt.Fprintf(a.out, "Last %s: %d consumed, %d wasted", s.Period, s.ItemsConsumed, s.ItemsWasted)
		if s.MoneyWasted > 0 {
			fmt.Fprintf(a.out, ", $%.2f wasted", s.MoneyWasted)
		}
		fmt.Fprintln(a.out)
	}
	return nil
}

func (a *App) printItem(item models.InventoryItem) {
	qty := ""
	if item.Quantity > 0 {
		qty = fmt.Sprintf(" %g %s", item.Quantity, item.Unit)
	}
	fmt.Fprintf(a.out, "%s  %s%s  [%s]\n",
		item.ID, item.Name, qty, models.FreshnessLabel(item.DaysUntilExpiry))
}
