package cli

import (
	"context"

	"github.com/dmitrijs2005/aroma/internal/client/render"
)

func (a *App) ToggleTheme(ctx context.Context) error {
	th, err := a.themeService.Toggle(ctx)
	if err != nil {
		a.log.Error(ctx, "theme toggle failed", "error", err)
		return err
	}
	a.println("Tema: " + string(th))
	return nil
}

func (a *App) ShowPromo(ctx context.Context) error {
	a.println(render.Promo(a.promo.Current(), a.currentTheme(ctx)))
	return nil
}

func (a *App) ShowStats(ctx context.Context) error {
	r, err := a.statsService.Report(ctx)
	if err != nil {
		a.log.Error(ctx, "visit report failed", "error", err)
		return err
	}
	a.println(render.Stats(r, a.currentTheme(ctx)))
	return nil
}
