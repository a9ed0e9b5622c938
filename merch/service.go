package merch

import (
	"context"
	"errors"
)

// ErrVariationNotFound is returned when no variation in the current snapshot
// matches the requested id.
var ErrVariationNotFound = errors.New("merch: variation not found")

// Service is the public read contract over the catalog cache, consumed by the
// listing and checkout endpoints.
type Service struct {
	cache *Cache
}

func NewService(cache *Cache) *Service {
	return &Service{cache: cache}
}

// ListItems returns the current snapshot's items. When a refresh fails but a
// previous snapshot exists, that snapshot is served and the error dropped;
// with nothing to serve, the error propagates.
func (s *Service) ListItems(ctx context.Context) ([]Item, error) {
	snap, err := s.cache.Snapshot(ctx)
	if len(snap.Items) == 0 && err != nil {
		return nil, err
	}
	return snap.Items, nil
}

// FindVariation resolves a single variation id to flattened, priced info.
// The name carries the variation label only when the parent item has more
// than one variation.
func (s *Service) FindVariation(ctx context.Context, id string) (*FlatInfo, error) {
	info, _, err := s.FindVariationInStock(ctx, id)
	return info, err
}

// FindVariationInStock is FindVariation plus the stock flag the checkout
// flow uses for its authoritative out-of-stock rejection.
func (s *Service) FindVariationInStock(ctx context.Context, id string) (*FlatInfo, bool, error) {
	snap, err := s.cache.Snapshot(ctx)
	if len(snap.Items) == 0 && err != nil {
		return nil, false, err
	}
	for i := range snap.Items {
		item := &snap.Items[i]
		for _, v := range item.Variations {
			if v.ID != id {
				continue
			}
			name := item.Name
			if len(item.Variations) > 1 {
				name = item.Name + " – " + v.Label
			}
			info := &FlatInfo{
				ID:         v.ID,
				Name:       name,
				PriceCents: v.PriceCents,
				Price:      v.Price,
				ImageURL:   item.ImageURL,
			}
			return info, v.InStock, nil
		}
	}
	return nil, false, ErrVariationNotFound
}
