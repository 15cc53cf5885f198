package service

import (
	"context"
	"slices"

	"github.com/utafrali/storefront/internal/repository"
)

// FavoritesService keeps the session's favorited product ids.
type FavoritesService struct {
	favorites repository.FavoritesRepository
}

func NewFavoritesService(favorites repository.FavoritesRepository) *FavoritesService {
	return &FavoritesService{favorites: favorites}
}

// Toggle flips the product's membership and reports the new state: true
// when the product is now a favorite.
func (s *FavoritesService) Toggle(ctx context.Context, sessionID, productID string) (bool, error) {
	ids, err := s.favorites.Get(ctx, sessionID)
	if err != nil {
		return false, err
	}

	favorited := false
	if i := slices.Index(ids, productID); i >= 0 {
		ids = slices.Delete(ids, i, i+1)
	} else {
		ids = append(ids, productID)
		favorited = true
	}

	if err := s.favorites.Save(ctx, sessionID, ids); err != nil {
		return false, err
	}
	return favorited, nil
}

// List returns the session's favorited product ids.
func (s *FavoritesService) List(ctx context.Context, sessionID string) ([]string, error) {
	return s.favorites.Get(ctx, sessionID)
}

// IsFavorite reports the product's current membership.
func (s *FavoritesService) IsFavorite(ctx context.Context, sessionID, productID string) (bool, error) {
	ids, err := s.favorites.Get(ctx, sessionID)
	if err != nil {
		return false, err
	}
	return slices.Contains(ids, productID), nil
}
