package service

import (
	"context"

	"github.com/soukly/soukly/internal/logger"
	"github.com/soukly/soukly/internal/queue"
	"github.com/soukly/soukly/internal/whatsapp"
)

// SellerOrder is the per-seller result of a checkout: the localized
// message and the deep link that opens the WhatsApp conversation.
type SellerOrder struct {
	SellerID       uint   `json:"seller_id"`
	SellerName     string `json:"seller_name"`
	SellerWhatsApp string `json:"seller_whatsapp"`
	Message        string `json:"message"`
	Link           string `json:"link"`
}

// OrderService turns a cart into per-seller WhatsApp orders.
type OrderService struct {
	cartService *CartService
	queueClient *queue.Client
}

// NewOrderService creates an order service.
func NewOrderService(cartService *CartService, queueClient *queue.Client) *OrderService {
	return &OrderService{cartService: cartService, queueClient: queueClient}
}

// Compose groups the cart by seller and renders one order per group.
// The cart is left untouched; the buyer sends each message themselves
// through the returned links.
func (s *OrderService) Compose(ctx context.Context, cartID, lang string) ([]SellerOrder, error) {
	items, err := s.cartService.Items(ctx, cartID)
	if err != nil {
		return nil, err
	}
	groups, err := GroupBySeller(items)
	if err != nil {
		return nil, err
	}

	orders := make([]SellerOrder, 0, len(groups))
	for _, group := range groups {
		message := FormatOrderMessage(group, lang)
		orders = append(orders, SellerOrder{
			SellerID:       group.SellerID,
			SellerName:     group.SellerName,
			SellerWhatsApp: group.SellerWhatsApp,
			Message:        message,
			Link:           whatsapp.BuildDeepLink(group.SellerWhatsApp, message),
		})
	}
	return orders, nil
}

// Place composes the orders and additionally queues server-side
// delivery of each message, for deployments with Cloud API credentials.
func (s *OrderService) Place(ctx context.Context, cartID, lang string) ([]SellerOrder, error) {
	orders, err := s.Compose(ctx, cartID, lang)
	if err != nil {
		return nil, err
	}
	for _, order := range orders {
		if err := s.queueClient.EnqueueWhatsAppOrder(queue.WhatsAppOrderPayload{
			SellerID: order.SellerID,
			Phone:    order.SellerWhatsApp,
			Message:  order.Message,
		}); err != nil {
			logger.Warnw("order_whatsapp_enqueue_failed",
				"seller_id", order.SellerID,
				"error", err,
			)
		}
	}
	return orders, nil
}
