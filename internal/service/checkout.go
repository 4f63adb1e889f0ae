package service

import (
	"context"
	"net/url"
	"strings"

	"github.com/guttosm/mary-storefront/internal/logger"
	"github.com/guttosm/mary-storefront/internal/metrics"
	"github.com/guttosm/mary-storefront/internal/repository"
)

// Checkout is an order ready to be handed to the messaging app.
type Checkout struct {
	Cart    CartSnapshot
	Message string
	URL     string
}

// CheckoutService builds the order handoff for a session's cart. The cart is left
// untouched: the shopper may come back and keep editing.
type CheckoutService interface {
	Checkout(ctx context.Context, sessionID, requestID string) (Checkout, error)
	History(ctx context.Context, opts repository.HandoffQueryOptions) ([]*repository.HandoffDocument, int64, error)
}

// CheckoutServiceImpl implements CheckoutService.
type CheckoutServiceImpl struct {
	carts    CartService
	handoffs repository.HandoffRepositoryInterface
	number   string
}

// NewCheckoutService creates a new checkout service. handoffs may be nil, in
// which case handoffs are not recorded.
func NewCheckoutService(carts CartService, handoffs repository.HandoffRepositoryInterface, whatsAppNumber string) *CheckoutServiceImpl {
	return &CheckoutServiceImpl{carts: carts, handoffs: handoffs, number: whatsAppNumber}
}

// Checkout returns the order message and the deep link that opens it.
func (s *CheckoutServiceImpl) Checkout(ctx context.Context, sessionID, requestID string) (Checkout, error) {
	snap := s.carts.View(sessionID)
	if snap.TotalQuantity == 0 {
		metrics.RecordCheckout("empty")
		return Checkout{}, ErrEmptyCart
	}

	out := Checkout{
		Cart:    snap,
		Message: snap.Message,
		URL:     WhatsAppURL(s.number, snap.Message),
	}
	metrics.RecordCheckout("success")
	s.record(ctx, sessionID, requestID, snap)
	return out, nil
}

// History lists recorded handoffs, newest first, with the total match count.
func (s *CheckoutServiceImpl) History(ctx context.Context, opts repository.HandoffQueryOptions) ([]*repository.HandoffDocument, int64, error) {
	if s.handoffs == nil {
		return nil, 0, ErrRepositoryNotConfigured
	}
	docs, err := s.handoffs.Query(ctx, opts)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.handoffs.Count(ctx, opts)
	if err != nil {
		return nil, 0, err
	}
	return docs, total, nil
}

func (s *CheckoutServiceImpl) record(ctx context.Context, sessionID, requestID string, snap CartSnapshot) {
	if s.handoffs == nil {
		return
	}
	doc := &repository.HandoffDocument{
		SessionID:     sessionID,
		RequestID:     requestID,
		Items:         len(snap.Items),
		TotalQuantity: snap.TotalQuantity,
		Total:         snap.Total.StringFixed(2),
		Message:       snap.Message,
	}
	if err := s.handoffs.Create(ctx, doc); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("session_id", sessionID).Msg("Checkout: could not record handoff")
	}
}

// WhatsAppURL builds the wa.me deep link carrying text. Spaces are encoded as %20
// so the link reads the same as one built in a browser.
func WhatsAppURL(number, text string) string {
	return "https://wa.me/" + number + "?text=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}
