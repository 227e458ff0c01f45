package webhook

import "time"

// SourceCustomerData is the logical source tag for structured customer events.
const SourceCustomerData = "customer-data"

// Record is one stored webhook occurrence. JSON field names are part of the
// wire contract consumed by existing pollers.
type Record struct {
	ID        string            `json:"id" example:"webhook-6f1c2a" doc:"Unique record ID"`
	WebhookID string            `json:"webhookId" example:"customer-data" doc:"Logical source tag"`
	Timestamp string            `json:"timestamp" example:"2024-01-15T10:30:00Z" doc:"Creation time, RFC3339 UTC"`
	Method    string            `json:"method" example:"POST" doc:"HTTP method that produced the record"`
	Data      any               `json:"data" doc:"Caller-supplied payload, stored opaquely"`
	Headers   map[string]string `json:"headers" doc:"Request headers captured for diagnostics"`
	IP        string            `json:"ip" example:"203.0.113.7" doc:"Best-effort caller address"`

	// ReceivedAt is the creation instant used for age computation during
	// sweeps. Not serialized; Timestamp carries the wire form.
	ReceivedAt time.Time `json:"-"`
}

// CustomerAck is the success response for a structured customer-data ingest.
type CustomerAck struct {
	Success            bool   `json:"success" example:"true"`
	Message            string `json:"message" example:"Customer data received successfully"`
	CustomerName       string `json:"customer_name" example:"Ann"`
	ShopifyID          any    `json:"shopify_id,omitempty" doc:"Pass-through external ID"`
	RechargeID         any    `json:"recharge_id,omitempty" doc:"Pass-through external ID"`
	Email              string `json:"email" example:"a@x.com"`
	SubscriptionsCount int    `json:"subscriptions_count" example:"2"`
	Timestamp          string `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

// GenericAck is the always-success response for a generic webhook ingest.
type GenericAck struct {
	Success      bool   `json:"success" example:"true"`
	Message      string `json:"message" example:"Webhook data received successfully"`
	WebhookID    string `json:"webhookId" example:"test-hook"`
	Timestamp    string `json:"timestamp" example:"2024-01-15T10:30:00Z"`
	Method       string `json:"method" example:"POST"`
	DataReceived any    `json:"dataReceived"`
}

// QueryResult wraps query responses. Misses are soft failures: HTTP 200 with
// Success=false, which existing callers rely on.
type QueryResult struct {
	Success bool     `json:"success" example:"true"`
	Message string   `json:"message,omitempty"`
	Data    []Record `json:"data"`
	Count   int      `json:"count" example:"1"`
}

// ErrorBody is the envelope for hard validation failures.
type ErrorBody struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message"`
}

// AckBody is the envelope for delete confirmations.
type AckBody struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message"`
}
