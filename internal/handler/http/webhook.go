package http

import (
	"encoding/json"
	"io"
	"net/http"

	hrsyncservice "github.com/facilops/facil-backend-go/internal/service/hrsync"

	"github.com/facilops/facil-backend-go/internal/handler/http/response"
	"github.com/facilops/facil-backend-go/internal/pkg/hrsync"
)

type WebhookHandler interface {
	PayrollWebhook(w http.ResponseWriter, r *http.Request)
	TimeclockWebhook(w http.ResponseWriter, r *http.Request)
}

type webhookHandlerImpl struct {
	syncService       *hrsyncservice.Service
	payrollVerifier   *hrsync.WebhookVerifier
	timeclockVerifier *hrsync.WebhookVerifier
}

func NewWebhookHandler(
	syncService *hrsyncservice.Service,
	payrollVerifier *hrsync.WebhookVerifier,
	timeclockVerifier *hrsync.WebhookVerifier,
) WebhookHandler {
	return &webhookHandlerImpl{
		syncService:       syncService,
		payrollVerifier:   payrollVerifier,
		timeclockVerifier: timeclockVerifier,
	}
}

// PayrollWebhook receives employee events from the payroll platform, which
// authenticates with a shared callback token header.
func (h *webhookHandlerImpl) PayrollWebhook(w http.ResponseWriter, r *http.Request) {
	if !h.payrollVerifier.VerifyToken(r.Header.Get("X-Callback-Token")) {
		response.Unauthorized(w, "Invalid callback token")
		return
	}

	var payload hrsync.PayrollWebhookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		response.BadRequest(w, "Invalid webhook payload", nil)
		return
	}

	switch payload.Event {
	case hrsync.WebhookEventEmployeeCreated, hrsync.WebhookEventEmployeeUpdated:
		st, _, err := h.syncService.ApplyPayrollEvent(r.Context(), payload)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, map[string]string{"staff_id": st.ID})
	default:
		// Unknown events are acknowledged so the platform stops retrying.
		response.SuccessWithMessage(w, "Event ignored", nil)
	}
}

// TimeclockWebhook receives worker events from the time-tracking platform,
// which signs the raw body with HMAC-SHA256.
func (h *webhookHandlerImpl) TimeclockWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		response.BadRequest(w, "Failed to read request body", nil)
		return
	}

	if !h.timeclockVerifier.VerifyHMACSignature(body, r.Header.Get("X-Signature")) {
		response.Unauthorized(w, "Invalid signature")
		return
	}

	var payload hrsync.TimeclockWebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		response.BadRequest(w, "Invalid webhook payload", nil)
		return
	}

	switch payload.Event {
	case hrsync.WebhookEventWorkerChanged:
		st, _, err := h.syncService.ApplyTimeclockEvent(r.Context(), payload)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, map[string]string{"staff_id": st.ID})
	default:
		response.SuccessWithMessage(w, "Event ignored", nil)
	}
}
