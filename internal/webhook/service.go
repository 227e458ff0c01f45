package webhook

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ErrInvalidPayload is returned when a structured customer-data payload is
// missing one of its required fields.
var ErrInvalidPayload = errors.New("invalid data format. Expected customer_name, email, and subscriptions")

// RequestMeta carries the request attributes captured into each record.
type RequestMeta struct {
	Headers    map[string]string
	SourceAddr string
}

// Service implements ingest, lookup, and cleanup over the shared store.
type Service struct {
	Store *Store
}

// IngestCustomerData validates a structured customer-data payload and stores
// it keyed by the customer email (case-sensitive, overwriting any prior
// record for that email). Returns the stored record and the subscription
// count echoed to the caller.
func (s *Service) IngestCustomerData(payload map[string]any, meta RequestMeta) (Record, int, error) {
	name, _ := payload["customer_name"].(string)
	email, _ := payload["email"].(string)
	subs, subsOK := payload["subscriptions"].([]any)

	if name == "" || email == "" || !subsOK {
		return Record{}, 0, ErrInvalidPayload
	}

	rec := s.newRecord(SourceCustomerData, "POST", payload, meta)
	s.Store.Put(email, rec)

	log.Info().
		Str("email", email).
		Str("customer_name", name).
		Int("subscriptions_count", len(subs)).
		Msg("Customer data received")

	return rec, len(subs), nil
}

// IngestGeneric stores any payload under a key that is never reused, so
// generic events only ever leave the store by age or explicit clear.
func (s *Service) IngestGeneric(webhookID, method string, payload any, meta RequestMeta) Record {
	rec := s.newRecord(webhookID, method, payload, meta)

	// Millisecond timestamp plus a random suffix: two calls for the same
	// identifier inside one tick still get distinct keys.
	key := fmt.Sprintf("generic-%s-%d-%s", webhookID, rec.ReceivedAt.UnixMilli(), shortID())
	s.Store.Put(key, rec)

	log.Info().
		Str("webhook_id", webhookID).
		Str("method", method).
		Msg("Webhook received")

	return rec
}

// Lookup returns the stored record for an email, if any.
func (s *Service) Lookup(email string) (Record, bool) {
	return s.Store.Get(email)
}

// DeleteEmail removes a single customer record. No-op when absent.
func (s *Service) DeleteEmail(email string) {
	s.Store.Delete(email)
	log.Info().Str("email", email).Msg("Webhook data cleared")
}

// ClearAll empties the store.
func (s *Service) ClearAll() {
	s.Store.Clear()
	log.Info().Msg("All webhook data cleared")
}

func (s *Service) newRecord(webhookID, method string, payload any, meta RequestMeta) Record {
	now := time.Now().UTC()
	return Record{
		ID:         fmt.Sprintf("webhook-%d-%s", now.UnixMilli(), shortID()),
		WebhookID:  webhookID,
		Timestamp:  now.Format(time.RFC3339),
		Method:     method,
		Data:       payload,
		Headers:    meta.Headers,
		IP:         meta.SourceAddr,
		ReceivedAt: now,
	}
}

func shortID() string {
	return uuid.NewString()[:8]
}
