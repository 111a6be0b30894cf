package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/aroma/internal/client/models"
	"github.com/dmitrijs2005/aroma/internal/client/storage"
	"github.com/dmitrijs2005/aroma/internal/logging"
)

// CartService manages the persisted shopping cart. Every mutation is a single
// atomic read-modify-write of the "cart" key.
type CartService interface {
	Init(ctx context.Context) error
	AddItem(ctx context.Context, name string, price int64) (models.LineItem, error)
	RemoveItem(ctx context.Context, id string) error
	Clear(ctx context.Context) error
	Items(ctx context.Context) (models.Cart, error)
	Total(ctx context.Context) (int64, error)
	ItemCount(ctx context.Context) (int64, error)
}

type cartService struct {
	store    *storage.Store
	notifier Notifier
	log      logging.Logger
	newID    func() string
}

// CartOption customises a CartService.
type CartOption func(*cartService)

// WithIDGenerator replaces the line item id source.
func WithIDGenerator(fn func() string) CartOption {
	return func(c *cartService) { c.newID = fn }
}

// newLineItemID returns a UUIDv7: time-ordered and monotonic within the process.
func newLineItemID() string {
	return uuid.Must(uuid.NewV7()).String()
}

func NewCartService(store *storage.Store, notifier Notifier, log logging.Logger, opts ...CartOption) CartService {
	c := &cartService{
		store:    store,
		notifier: notifier,
		log:      log.With("component", "cart"),
		newID:    newLineItemID,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Init makes sure the cart key exists, holding an empty list if it was absent.
func (c *cartService) Init(ctx context.Context) error {
	_, err := c.update(ctx, func(cur models.Cart) models.Cart {
		if cur == nil {
			return models.Cart{}
		}
		return cur
	})
	return err
}

func (c *cartService) AddItem(ctx context.Context, name string, price int64) (models.LineItem, error) {
	cart, err := c.update(ctx, func(cur models.Cart) models.Cart {
		return cur.Add(name, price, c.newID)
	})
	if err != nil {
		return models.LineItem{}, err
	}

	var added models.LineItem
	for _, li := range cart {
		if li.Name == name {
			added = li
			break
		}
	}

	c.log.Debug(ctx, "item added", "name", name, "quantity", added.Quantity)
	c.notifier.Notify(ctx, LevelInfo, fmt.Sprintf("%s adăugat în coș!", name))
	return added, nil
}

func (c *cartService) RemoveItem(ctx context.Context, id string) error {
	_, err := c.update(ctx, func(cur models.Cart) models.Cart {
		return cur.Remove(id)
	})
	return err
}

func (c *cartService) Clear(ctx context.Context) error {
	_, err := c.update(ctx, func(models.Cart) models.Cart {
		return models.Cart{}
	})
	return err
}

func (c *cartService) Items(ctx context.Context) (models.Cart, error) {
	var cart models.Cart
	if _, err := c.store.GetJSON(ctx, storage.KeyCart, &cart); err != nil {
		return nil, fmt.Errorf("read cart: %w", err)
	}
	if cart == nil {
		cart = models.Cart{}
	}
	return cart, nil
}

func (c *cartService) Total(ctx context.Context) (int64, error) {
	cart, err := c.Items(ctx)
	if err != nil {
		return 0, err
	}
	return cart.Total(), nil
}

func (c *cartService) ItemCount(ctx context.Context) (int64, error) {
	cart, err := c.Items(ctx)
	if err != nil {
		return 0, err
	}
	return cart.Count(), nil
}

func (c *cartService) update(ctx context.Context, fn func(models.Cart) models.Cart) (models.Cart, error) {
	cart, err := storage.UpdateJSON(ctx, c.store, storage.KeyCart, func(cur models.Cart, _ bool) (models.Cart, error) {
		return fn(cur), nil
	})
	if err != nil {
		return nil, fmt.Errorf("update cart: %w", err)
	}
	return cart, nil
}
