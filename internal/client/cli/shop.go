package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/aroma/internal/client/render"
	"github.com/dmitrijs2005/aroma/internal/client/services"
	"github.com/dmitrijs2005/aroma/internal/common"
)

// ShowMenu records a menu visit and prints the current menu.
func (a *App) ShowMenu(ctx context.Context) error {
	a.track(ctx, common.PageMenu)
	a.println(render.Menu(a.menuService.Menu(), a.currentTheme(ctx)))
	return nil
}

// Buy adds the named menu item to the cart. The cart service sends the
// confirmation notification.
func (a *App) Buy(ctx context.Context, name string) error {
	if _, err := a.menuService.Buy(ctx, name); err != nil {
		if errors.Is(err, services.ErrMenuItemNotFound) {
			a.notify(ctx, services.LevelError, "Produs necunoscut: "+name)
		} else {
			a.log.Error(ctx, "buy failed", "item", name, "error", err)
		}
		return err
	}
	return nil
}

// ShowCart renders the cart from the stored state.
func (a *App) ShowCart(ctx context.Context) error {
	items, err := a.cartService.Items(ctx)
	if err != nil {
		a.log.Error(ctx, "cart unavailable", "error", err)
		return err
	}
	a.println(render.Cart(items, a.currentTheme(ctx)))
	return nil
}

// RemoveItem drops the line with the given id and shows the cart again.
// An unknown id leaves the cart unchanged.
func (a *App) RemoveItem(ctx context.Context, id string) error {
	if err := a.cartService.RemoveItem(ctx, id); err != nil {
		a.log.Error(ctx, "remove failed", "id", id, "error", err)
		return err
	}
	return a.ShowCart(ctx)
}

// ClearCart empties the cart.
func (a *App) ClearCart(ctx context.Context) error {
	if err := a.cartService.Clear(ctx); err != nil {
		a.log.Error(ctx, "clear failed", "error", err)
		return err
	}
	a.println("Coșul a fost golit.")
	return nil
}
