package webhook

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPayload() map[string]any {
	return map[string]any{
		"customer_name": "Ann",
		"email":         "a@x.com",
		"subscriptions": []any{map[string]any{"id": 1.0}, map[string]any{"id": 2.0}},
		"shopify_id":    "shp_123",
	}
}

func testMeta() RequestMeta {
	return RequestMeta{
		Headers:    map[string]string{"content-type": "application/json"},
		SourceAddr: "203.0.113.7",
	}
}

func TestIngestCustomerData(t *testing.T) {
	svc := &Service{Store: NewStore()}

	rec, count, err := svc.IngestCustomerData(validPayload(), testMeta())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, SourceCustomerData, rec.WebhookID)
	assert.Equal(t, "POST", rec.Method)
	assert.Equal(t, "203.0.113.7", rec.IP)
	assert.NotEmpty(t, rec.ID)

	// Timestamp is RFC3339 and matches the eviction instant
	ts, err := time.Parse(time.RFC3339, rec.Timestamp)
	require.NoError(t, err)
	assert.WithinDuration(t, rec.ReceivedAt, ts, time.Second)

	// Stored keyed by email
	got, ok := svc.Lookup("a@x.com")
	require.True(t, ok)
	assert.Equal(t, rec.ID, got.ID)
}

func TestIngestCustomerDataRequiredFields(t *testing.T) {
	for _, field := range []string{"customer_name", "email", "subscriptions"} {
		t.Run("missing "+field, func(t *testing.T) {
			svc := &Service{Store: NewStore()}
			payload := validPayload()
			delete(payload, field)

			_, _, err := svc.IngestCustomerData(payload, testMeta())
			require.ErrorIs(t, err, ErrInvalidPayload)
			assert.Equal(t, 0, svc.Store.Len(), "failed ingest must not mutate the store")
		})
		t.Run("null "+field, func(t *testing.T) {
			svc := &Service{Store: NewStore()}
			payload := validPayload()
			payload[field] = nil

			_, _, err := svc.IngestCustomerData(payload, testMeta())
			require.ErrorIs(t, err, ErrInvalidPayload)
		})
	}

	t.Run("empty strings count as missing", func(t *testing.T) {
		svc := &Service{Store: NewStore()}
		payload := validPayload()
		payload["customer_name"] = ""

		_, _, err := svc.IngestCustomerData(payload, testMeta())
		require.ErrorIs(t, err, ErrInvalidPayload)
	})

	t.Run("empty subscriptions array is valid", func(t *testing.T) {
		svc := &Service{Store: NewStore()}
		payload := validPayload()
		payload["subscriptions"] = []any{}

		_, count, err := svc.IngestCustomerData(payload, testMeta())
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}

func TestIngestCustomerDataOverwritesSameEmail(t *testing.T) {
	svc := &Service{Store: NewStore()}

	first, _, err := svc.IngestCustomerData(validPayload(), testMeta())
	require.NoError(t, err)

	payload := validPayload()
	payload["customer_name"] = "Ann Updated"
	second, _, err := svc.IngestCustomerData(payload, testMeta())
	require.NoError(t, err)

	assert.Equal(t, 1, svc.Store.Len())
	got, ok := svc.Lookup("a@x.com")
	require.True(t, ok)
	assert.Equal(t, second.ID, got.ID)
	assert.NotEqual(t, first.ID, got.ID)
}

func TestIngestCustomerDataDistinctEmails(t *testing.T) {
	svc := &Service{Store: NewStore()}

	a := validPayload()
	_, _, err := svc.IngestCustomerData(a, testMeta())
	require.NoError(t, err)

	b := validPayload()
	b["customer_name"] = "Bob"
	b["email"] = "b@x.com"
	_, _, err = svc.IngestCustomerData(b, testMeta())
	require.NoError(t, err)

	recA, ok := svc.Lookup("a@x.com")
	require.True(t, ok)
	recB, ok := svc.Lookup("b@x.com")
	require.True(t, ok)

	dataA := recA.Data.(map[string]any)
	dataB := recB.Data.(map[string]any)
	assert.Equal(t, "Ann", dataA["customer_name"])
	assert.Equal(t, "Bob", dataB["customer_name"])
}

func TestIngestGenericNeverCollides(t *testing.T) {
	svc := &Service{Store: NewStore()}

	// Same identifier, back to back inside one timestamp tick
	for i := 0; i < 10; i++ {
		svc.IngestGeneric("test-hook", "POST", map[string]any{"n": i}, testMeta())
	}

	assert.Equal(t, 10, svc.Store.Len(), "generic events must never overwrite each other")
}

func TestIngestGenericRecordShape(t *testing.T) {
	svc := &Service{Store: NewStore()}

	rec := svc.IngestGeneric("orders", "PUT", nil, testMeta())
	assert.Equal(t, "orders", rec.WebhookID)
	assert.Equal(t, "PUT", rec.Method)
	assert.Nil(t, rec.Data)
}

func TestDeleteAndClear(t *testing.T) {
	svc := &Service{Store: NewStore()}

	_, _, err := svc.IngestCustomerData(validPayload(), testMeta())
	require.NoError(t, err)
	b := validPayload()
	b["email"] = "b@x.com"
	_, _, err = svc.IngestCustomerData(b, testMeta())
	require.NoError(t, err)

	svc.DeleteEmail("a@x.com")
	_, ok := svc.Lookup("a@x.com")
	assert.False(t, ok)
	_, ok = svc.Lookup("b@x.com")
	assert.True(t, ok)

	svc.ClearAll()
	assert.Equal(t, 0, svc.Store.Len())
}
