package services

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/dmitrijs2005/aroma/internal/client/models"
	"github.com/dmitrijs2005/aroma/internal/logging"
)

// DefaultPromos are the banner texts rotated by the client.
func DefaultPromos() []models.Promo {
	return []models.Promo{
		{Text: "Cappuccino + Croissant = doar 15 lei", Details: "Ofertă valabilă luni-vineri, 08:00-11:00"},
		{Text: "Reducere 20% la toate deserturile", Details: "Valabil în weekend"},
		{Text: "Cafea gratuită la a 5-a comandă", Details: "Programul de loialitate"},
		{Text: "Happy Hour: 17:00-19:00 - 10% reducere", Details: "Valabil zilnic"},
	}
}

// PromoRotator holds the promo currently on display and replaces it with a
// random one on every Rotate. Safe for concurrent use.
type PromoRotator struct {
	promos []models.Promo
	pick   func(n int) int
	log    logging.Logger

	mu      sync.RWMutex
	current models.Promo
}

// NewPromoRotator panics when promos is empty. pick returns an index in
// [0, n); nil means math/rand/v2.IntN.
func NewPromoRotator(promos []models.Promo, pick func(n int) int, log logging.Logger) *PromoRotator {
	if len(promos) == 0 {
		panic("promo: no promos")
	}
	if pick == nil {
		pick = rand.IntN
	}
	p := &PromoRotator{promos: promos, pick: pick, log: log.With("component", "promo")}
	p.current = promos[pick(len(promos))]
	return p
}

func (p *PromoRotator) Current() models.Promo {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

// Rotate picks a new promo. It may pick the one already shown.
func (p *PromoRotator) Rotate() models.Promo {
	next := p.promos[p.pick(len(p.promos))]
	p.mu.Lock()
	p.current = next
	p.mu.Unlock()
	return next
}

// Start rotates every interval until ctx is done. It blocks; run it in a
// goroutine.
func (p *PromoRotator) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			promo := p.Rotate()
			p.log.Debug(ctx, "promo rotated", "text", promo.Text)
		case <-ctx.Done():
			return
		}
	}
}
