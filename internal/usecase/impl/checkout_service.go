package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	cart     usecase.CartUsecase
	orders   usecase.OrdersUsecase
	orderAPI service.OrderAPI
	payments service.PaymentAPI
	logger   *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(
	cart usecase.CartUsecase,
	orders usecase.OrdersUsecase,
	orderAPI service.OrderAPI,
	payments service.PaymentAPI,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		cart:     cart,
		orders:   orders,
		orderAPI: orderAPI,
		payments: payments,
		logger:   logger,
	}
}

// Submit places the current cart as an order. The cart is only cleared
// once nothing can still fail or redirect; any submission error leaves it
// untouched so the user can retry.
func (srv *checkoutService) Submit(ctx context.Context, info entity.DeliveryInfo, payment entity.PaymentMethod, customerNotes string) (*usecase.CheckoutResult, error) {
	if err := validateCheckout(info, payment); err != nil {
		return nil, err
	}

	snapshot := srv.cart.Snapshot(ctx)
	if len(snapshot.Items) == 0 {
		return nil, domainerrors.ErrCartEmpty
	}

	req := &service.OrderRequest{
		Items:          make([]service.OrderRequestItem, 0, len(snapshot.Items)),
		DeliveryType:   info.Type,
		PaymentMethod:  payment,
		CustomerNotes:  customerNotes,
		CustomerName:   info.CustomerName,
		IdempotencyKey: uuid.NewString(),
	}
	if info.Type == entity.DeliveryTypeDelivery {
		req.DeliveryAddress = info.Address
	}
	for _, item := range snapshot.Items {
		req.Items = append(req.Items, service.OrderRequestItem{
			ProductID:      item.ProductID,
			Quantity:       item.Quantity,
			Customizations: item.Customizations,
		})
	}

	order, err := srv.orderAPI.SubmitOrder(ctx, req)
	if err != nil {
		srv.logger.Error("Order submission failed", "error", err)

		return nil, err
	}

	if err := srv.orders.Remember(ctx, order.ID); err != nil {
		// Losing a ledger entry only degrades guest recovery.
		srv.logger.Warn("Failed to remember order in ledger", "orderID", order.ID, "error", err)
	}

	result := &usecase.CheckoutResult{Order: order}

	if !payment.PayOnDelivery() {
		paymentURL, err := srv.payments.InitiatePayment(ctx, order.ID)
		if err != nil {
			srv.logger.Error("Payment initiation failed", "orderID", order.ID, "error", err)

			return nil, err
		}
		if paymentURL != "" {
			// Cart survives until the provider confirms; abandoning
			// the redirect must not lose the cart.
			result.PaymentURL = paymentURL

			return result, nil
		}
	}

	if err := srv.cart.Clear(ctx); err != nil {
		srv.logger.Warn("Failed to clear cart after checkout", "orderID", order.ID, "error", err)
	} else {
		result.CartCleared = true
	}

	srv.logger.Info("Order placed",
		"orderID", order.ID,
		"orderNumber", order.OrderNumber,
		"paymentMethod", payment,
		"cartCleared", result.CartCleared,
	)

	return result, nil
}

func validateCheckout(info entity.DeliveryInfo, payment entity.PaymentMethod) error {
	if !info.Type.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown delivery type " + string(info.Type))
	}
	if !payment.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown payment method " + string(payment))
	}
	if info.CustomerName == "" {
		return domainerrors.ErrValidationFailed.WithDetails("customer name is required")
	}
	if info.Type == entity.DeliveryTypeDelivery {
		if info.Address == nil || info.Address.Street == "" || info.Address.City == "" {
			return domainerrors.ErrValidationFailed.WithDetails("delivery address is required for delivery orders")
		}
	}

	return nil
}
