// Package webhook receives fincode webhook notifications.
//
// fincode signs nothing: every notification carries the signature string
// registered with the webhook setting in the fincode-signature header. A
// Handler compares it with the expected value, decodes the event and hands it
// to the function registered for its type.
package webhook

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// SignatureHeader is the header carrying the webhook signature.
const SignatureHeader = "fincode-signature"

// Event types sent by fincode.
const (
	EventCardPaymentRegistered   = "payments.card.regist"
	EventCardPaymentExecuted     = "payments.card.exec"
	EventCardPaymentCaptured     = "payments.card.capture"
	EventCardPaymentCancelled    = "payments.card.cancel"
	EventCardPaymentReauthorized = "payments.card.auth"
	EventCardPaymentChanged      = "payments.card.change"
	EventCardPaymentSecure       = "payments.card.secure"
	EventKonbiniPaymentExecuted  = "payments.konbini.exec"
	EventKonbiniPaymentComplete  = "payments.konbini.complete"
	EventPaypayPaymentExecuted   = "payments.paypay.exec"
	EventPaypayPaymentComplete   = "payments.paypay.complete"
	EventCardRegistered          = "card.regist"
	EventCardUpdated             = "card.update"
	EventSubscriptionRegistered  = "subscription.card.regist"
	EventSubscriptionDeleted     = "subscription.card.delete"
	EventRecurringPaymentBatch   = "recurring.card.batch"
)

var (
	// ErrMissingSignature is returned when the signature header is absent.
	ErrMissingSignature = errors.New("webhook: missing fincode-signature header")

	// ErrInvalidSignature is returned when the signature does not match.
	ErrInvalidSignature = errors.New("webhook: invalid signature")

	// ErrInvalidPayload is returned when the body is not an event.
	ErrInvalidPayload = errors.New("webhook: invalid payload")
)

// Event is a decoded notification. Raw holds the complete body so handlers
// can decode fields specific to the event type.
type Event struct {
	Type       string `json:"event"`
	ShopID     string `json:"shop_id"`
	OrderID    string `json:"order_id,omitempty"`
	AccessID   string `json:"access_id,omitempty"`
	PayType    string `json:"pay_type,omitempty"`
	Status     string `json:"status,omitempty"`
	CustomerID string `json:"customer_id,omitempty"`
	ErrorCode  string `json:"error_code,omitempty"`

	Raw json.RawMessage `json:"-"`
}

// Decode unmarshals the complete body into v.
func (e Event) Decode(v any) error {
	return json.Unmarshal(e.Raw, v)
}

// HandlerFunc processes one event. A returned error makes the Handler answer
// with a failure so fincode sends the notification again.
type HandlerFunc func(ctx context.Context, event Event) error

// Parse verifies the signature and decodes body into an Event.
func Parse(body []byte, signature, expected string) (*Event, error) {
	if signature == "" {
		return nil, ErrMissingSignature
	}
	if subtle.ConstantTimeCompare([]byte(signature), []byte(expected)) != 1 {
		return nil, ErrInvalidSignature
	}

	var event Event
	if err := json.Unmarshal(body, &event); err != nil || event.Type == "" {
		return nil, ErrInvalidPayload
	}
	event.Raw = append(json.RawMessage(nil), body...)
	return &event, nil
}

// Handler is an http.Handler for fincode webhook notifications.
type Handler struct {
	signature string
	logger    *slog.Logger

	mu       sync.RWMutex
	handlers map[string]HandlerFunc
	fallback HandlerFunc
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithFallback sets the function called for event types without a handler.
// Without one such events are acknowledged and dropped.
func WithFallback(fn HandlerFunc) Option {
	return func(h *Handler) {
		h.fallback = fn
	}
}

// NewHandler creates a Handler that accepts notifications carrying
// signature.
func NewHandler(signature string, opts ...Option) *Handler {
	h := &Handler{
		signature: signature,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		handlers:  make(map[string]HandlerFunc),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// On registers fn for events of the given type, replacing any previous one.
func (h *Handler) On(eventType string, fn HandlerFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handlers[eventType] = fn
}

func (h *Handler) lookup(eventType string) HandlerFunc {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if fn, ok := h.handlers[eventType]; ok {
		return fn
	}
	return h.fallback
}

// maxBodyBytes bounds the size of a notification body.
const maxBodyBytes = 1 << 20

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		respond(w, http.StatusBadRequest, "1")
		return
	}

	event, err := Parse(body, r.Header.Get(SignatureHeader), h.signature)
	if err != nil {
		h.logger.WarnContext(r.Context(), "fincode webhook rejected", "error", err)
		status := http.StatusBadRequest
		if !errors.Is(err, ErrInvalidPayload) {
			status = http.StatusUnauthorized
		}
		respond(w, status, "1")
		return
	}

	if fn := h.lookup(event.Type); fn != nil {
		if err := fn(r.Context(), *event); err != nil {
			h.logger.ErrorContext(r.Context(), "fincode webhook handler failed",
				"event", event.Type,
				"order_id", event.OrderID,
				"error", err,
			)
			respond(w, http.StatusInternalServerError, "1")
			return
		}
	} else {
		h.logger.DebugContext(r.Context(), "fincode webhook ignored", "event", event.Type)
	}

	respond(w, http.StatusOK, "0")
}

// respond writes the acknowledgement body fincode expects. Anything but
// receive "0" is treated as a failed delivery.
func respond(w http.ResponseWriter, status int, receive string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"receive": receive})
}

// Router returns a chi router serving h at path with POST.
func Router(path string, h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Post(path, h.ServeHTTP)
	return r
}
