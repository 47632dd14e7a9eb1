// Package impl contains the concrete implementations of the use cases.
package impl

import (
	"context"
	"log/slog"
	"sync"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

// cartService implements the CartUsecase interface. It owns the
// authoritative in-memory cart and writes the whole snapshot through to the
// local store after every mutation.
type cartService struct {
	cartRepo repository.CartRepository
	logger   *slog.Logger

	mu   sync.Mutex
	cart entity.Cart
}

// NewCartService is the constructor for cartService. The persisted cart is
// rehydrated once here; missing or corrupt state falls open to an empty
// cart rather than failing startup.
func NewCartService(
	cartRepo repository.CartRepository,
	logger *slog.Logger,
) usecase.CartUsecase {
	srv := &cartService{
		cartRepo: cartRepo,
		logger:   logger,
	}

	cart, err := cartRepo.LoadCart(context.Background())
	switch {
	case err == nil:
		srv.cart = *cart
	case errors.Is(err, repository.ErrCartStateNotFound):
		// First run, nothing persisted yet.
	default:
		logger.Warn("Failed to restore persisted cart, starting empty", "error", err)
	}

	return srv
}

// AddItem prices the product and merges or appends a line.
func (srv *cartService) AddItem(ctx context.Context, product *entity.Product, quantity int, customizations []entity.Customization) (*usecase.CartSnapshot, error) {
	if product == nil || product.ID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("product is required")
	}
	if quantity < 1 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1")
	}
	for i := range customizations {
		if !customizations[i].Action.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown customization action " + customizations[i].Action.String())
		}
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if idx := srv.cart.FindMergeable(product.ID, customizations); idx >= 0 {
		// The stored price stays authoritative; the first-added
		// customization set priced the line.
		srv.cart.Items[idx].Quantity += quantity
	} else {
		item := entity.CartItem{
			ProductID:      product.ID,
			Name:           product.Name,
			ImageRef:       product.ImageURL,
			BasePrice:      product.BasePrice,
			UnitPrice:      service.UnitPrice(product.BasePrice, customizations),
			Quantity:       quantity,
			Customizations: append([]entity.Customization(nil), customizations...),
		}
		srv.cart.Items = append(srv.cart.Items, item)
	}

	if err := srv.persistLocked(ctx); err != nil {
		return nil, err
	}

	srv.logger.Debug("Added item to cart",
		"productID", product.ID,
		"quantity", quantity,
		"customizations", len(customizations),
	)

	return srv.snapshotLocked(), nil
}

// UpdateQuantity sets or clamps away the line at index.
func (srv *cartService) UpdateQuantity(ctx context.Context, index, quantity int) (*usecase.CartSnapshot, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if index < 0 || index >= len(srv.cart.Items) {
		// Callers list from a stable snapshot; a stale index is ignored.
		srv.logger.Debug("Ignoring quantity update for out-of-range index", "index", index)

		return srv.snapshotLocked(), nil
	}

	if quantity <= 0 {
		srv.cart.Items = append(srv.cart.Items[:index], srv.cart.Items[index+1:]...)
	} else {
		srv.cart.Items[index].Quantity = quantity
	}

	if err := srv.persistLocked(ctx); err != nil {
		return nil, err
	}

	return srv.snapshotLocked(), nil
}

// RemoveItem deletes the line at index.
func (srv *cartService) RemoveItem(ctx context.Context, index int) (*usecase.CartSnapshot, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if index < 0 || index >= len(srv.cart.Items) {
		srv.logger.Debug("Ignoring removal for out-of-range index", "index", index)

		return srv.snapshotLocked(), nil
	}

	srv.cart.Items = append(srv.cart.Items[:index], srv.cart.Items[index+1:]...)

	if err := srv.persistLocked(ctx); err != nil {
		return nil, err
	}

	return srv.snapshotLocked(), nil
}

// Clear empties the cart.
func (srv *cartService) Clear(ctx context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.cart.Items = nil

	return srv.persistLocked(ctx)
}

// Snapshot returns the current cart and its derived totals.
func (srv *cartService) Snapshot(_ context.Context) *usecase.CartSnapshot {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.snapshotLocked()
}

// persistLocked writes the whole cart through to the local store.
func (srv *cartService) persistLocked(ctx context.Context) error {
	if err := srv.cartRepo.SaveCart(ctx, &srv.cart); err != nil {
		srv.logger.Error("Failed to persist cart", "error", err)

		return errors.Wrap(err, "failed to persist cart")
	}

	return nil
}

// snapshotLocked copies the items so callers never alias the live cart.
func (srv *cartService) snapshotLocked() *usecase.CartSnapshot {
	return &usecase.CartSnapshot{
		Items:     append([]entity.CartItem(nil), srv.cart.Items...),
		ItemCount: srv.cart.ItemCount(),
		Subtotal:  srv.cart.Subtotal(),
	}
}
