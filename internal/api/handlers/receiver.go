package handlers

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"webhook-cache-api/internal/util"
	"webhook-cache-api/internal/webhook"
)

// ReceiverHandler ingests inbound webhooks under /webhook/.
type ReceiverHandler struct {
	Service *webhook.Service
}

func (h *ReceiverHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/webhook/"), "/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "invalid webhook route", http.StatusNotFound)
		return
	}

	// POST to the structured endpoint gets validation; every other
	// method on that path falls through to the generic receiver.
	if id == webhook.SourceCustomerData && r.Method == http.MethodPost {
		h.customerData(w, r)
		return
	}

	h.generic(w, r, id)
}

// customerData godoc
// @Summary      Ingest customer data
// @Description  Receive a structured customer-data event and cache it by email
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        payload  body      object  true  "Customer payload with customer_name, email, subscriptions"
// @Success      200      {object}  webhook.CustomerAck
// @Failure      400      {object}  webhook.ErrorBody  "Missing required field"
// @Router       /webhook/customer-data [post]
func (h *ReceiverHandler) customerData(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.invalidPayload(w)
		return
	}

	rec, subsCount, err := h.Service.IngestCustomerData(payload, requestMeta(r))
	if err != nil {
		h.invalidPayload(w)
		return
	}

	name, _ := payload["customer_name"].(string)
	email, _ := payload["email"].(string)
	util.WriteJSON(w, webhook.CustomerAck{
		Success:            true,
		Message:            "Customer data received successfully",
		CustomerName:       name,
		ShopifyID:          payload["shopify_id"],
		RechargeID:         payload["recharge_id"],
		Email:              email,
		SubscriptionsCount: subsCount,
		Timestamp:          rec.Timestamp,
	})
}

func (h *ReceiverHandler) invalidPayload(w http.ResponseWriter) {
	util.WriteJSONStatus(w, http.StatusBadRequest, webhook.ErrorBody{
		Success: false,
		Message: "Invalid data format. Expected customer_name, email, and subscriptions.",
	})
}

// generic godoc
// @Summary      Ingest generic webhook
// @Description  Accept any payload under a caller-chosen identifier; never fails
// @Tags         webhooks
// @Produce      json
// @Param        webhookId  path      string  true  "Webhook identifier"
// @Success      200        {object}  webhook.GenericAck
// @Router       /webhook/{webhookId} [post]
func (h *ReceiverHandler) generic(w http.ResponseWriter, r *http.Request, id string) {
	var payload any
	switch r.Method {
	case http.MethodGet:
		payload = queryPayload(r)
	case http.MethodPost:
		var body any
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
			payload = body
		}
	}

	rec := h.Service.IngestGeneric(id, r.Method, payload, requestMeta(r))

	util.WriteJSON(w, webhook.GenericAck{
		Success:      true,
		Message:      "Webhook data received successfully",
		WebhookID:    id,
		Timestamp:    rec.Timestamp,
		Method:       r.Method,
		DataReceived: payload,
	})
}

// queryPayload flattens query parameters into a payload map. Single values
// stay scalar; repeated keys become a slice.
func queryPayload(r *http.Request) map[string]any {
	out := make(map[string]any)
	for k, v := range r.URL.Query() {
		if len(v) == 1 {
			out[k] = v[0]
		} else {
			out[k] = v
		}
	}
	return out
}

// requestMeta captures headers and the caller address for diagnostics.
func requestMeta(r *http.Request) webhook.RequestMeta {
	headers := make(map[string]string, len(r.Header))
	for k, v := range r.Header {
		headers[strings.ToLower(k)] = strings.Join(v, ", ")
	}

	addr := r.RemoteAddr
	if host, _, err := net.SplitHostPort(addr); err == nil {
		addr = host
	}

	return webhook.RequestMeta{Headers: headers, SourceAddr: addr}
}
