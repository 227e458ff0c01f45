package handlers

import (
	"fmt"
	"net/http"

	"webhook-cache-api/internal/auth"
	"webhook-cache-api/internal/util"
	"webhook-cache-api/internal/webhook"
)

// DataHandler serves query and cleanup access to the cached records.
type DataHandler struct {
	Auth    auth.Auth
	Service *webhook.Service
}

func (h *DataHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.query(w, r)
	case http.MethodDelete:
		h.Auth.RequireAdmin(h.clear)(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// query godoc
// @Summary      Query cached webhook data
// @Description  Look up the most recent customer record by email. Misses are soft failures: HTTP 200 with success=false.
// @Tags         data
// @Produce      json
// @Param        email  query     string  true  "Customer email"
// @Success      200    {object}  webhook.QueryResult
// @Router       /api/webhook-data [get]
func (h *DataHandler) query(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		util.WriteJSON(w, webhook.QueryResult{
			Success: false,
			Message: "Email parameter is required. Use ?email=customer@example.com",
			Data:    []webhook.Record{},
			Count:   0,
		})
		return
	}

	rec, ok := h.Service.Lookup(email)
	if !ok {
		util.WriteJSON(w, webhook.QueryResult{
			Success: false,
			Message: "No data found for this email. Your session may have expired. Please send another address update email.",
			Data:    []webhook.Record{},
			Count:   0,
		})
		return
	}

	util.WriteJSON(w, webhook.QueryResult{
		Success: true,
		Data:    []webhook.Record{rec},
		Count:   1,
	})
}

// clear godoc
// @Summary      Clear cached webhook data
// @Description  Delete one customer's record, or every record when no email is given
// @Tags         data
// @Produce      json
// @Param        email  query     string  false  "Customer email; omit to clear everything"
// @Success      200    {object}  webhook.AckBody
// @Failure      401    {string}  string  "Unauthorized (only when auth is configured)"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/webhook-data [delete]
func (h *DataHandler) clear(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email != "" {
		h.Service.DeleteEmail(email)
		util.WriteJSON(w, webhook.AckBody{
			Success: true,
			Message: fmt.Sprintf("Webhook data cleared for %s", email),
		})
		return
	}

	h.Service.ClearAll()
	util.WriteJSON(w, webhook.AckBody{
		Success: true,
		Message: "All webhook data cleared",
	})
}
