package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/aroma/internal/client/models"
	"github.com/dmitrijs2005/aroma/internal/client/storage"
)

// ThemeService persists the light/dark preference.
type ThemeService interface {
	Current(ctx context.Context) (models.Theme, error)
	Toggle(ctx context.Context) (models.Theme, error)
}

type themeService struct {
	store *storage.Store
}

func NewThemeService(store *storage.Store) ThemeService {
	return &themeService{store: store}
}

// Current returns the saved theme; anything other than "dark" reads as light.
func (t *themeService) Current(ctx context.Context) (models.Theme, error) {
	v, _, err := t.store.GetString(ctx, storage.KeyTheme)
	if err != nil {
		return models.ThemeLight, fmt.Errorf("read theme: %w", err)
	}
	return parseTheme(v), nil
}

func (t *themeService) Toggle(ctx context.Context) (models.Theme, error) {
	v, err := t.store.UpdateString(ctx, storage.KeyTheme, func(cur string, _ bool) string {
		if parseTheme(cur) == models.ThemeDark {
			return string(models.ThemeLight)
		}
		return string(models.ThemeDark)
	})
	if err != nil {
		return models.ThemeLight, fmt.Errorf("toggle theme: %w", err)
	}
	return models.Theme(v), nil
}

func parseTheme(v string) models.Theme {
	if models.Theme(v) == models.ThemeDark {
		return models.ThemeDark
	}
	return models.ThemeLight
}
