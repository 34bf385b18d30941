package hrsync

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// WebhookVerifier handles webhook signature verification for both HR
// platforms. The payroll platform sends a shared token header; the
// time-tracking platform signs the body with HMAC-SHA256.
type WebhookVerifier struct {
	webhookToken string
}

func NewWebhookVerifier(webhookToken string) *WebhookVerifier {
	return &WebhookVerifier{
		webhookToken: webhookToken,
	}
}

// VerifyToken compares the callback token header against the configured
// webhook token.
func (v *WebhookVerifier) VerifyToken(callbackToken string) bool {
	return hmac.Equal(
		[]byte(strings.TrimSpace(callbackToken)),
		[]byte(strings.TrimSpace(v.webhookToken)),
	)
}

// VerifyHMACSignature verifies an HMAC-SHA256 signature over the raw payload.
func (v *WebhookVerifier) VerifyHMACSignature(payload []byte, signature string) bool {
	mac := hmac.New(sha256.New, []byte(v.webhookToken))
	mac.Write(payload)
	expectedMAC := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expectedMAC), []byte(strings.TrimSpace(signature)))
}

// WebhookEvent represents the type of webhook event
type WebhookEvent string

const (
	WebhookEventEmployeeCreated WebhookEvent = "employee.created"
	WebhookEventEmployeeUpdated WebhookEvent = "employee.updated"
	WebhookEventWorkerChanged   WebhookEvent = "worker.changed"
)

// PayrollWebhookPayload is the employee event body sent by the payroll
// platform.
type PayrollWebhookPayload struct {
	Event    WebhookEvent `json:"event"`
	Employee struct {
		ID     string `json:"id"`
		Name   string `json:"full_name"`
		Status string `json:"status"`
	} `json:"employee"`
}

// TimeclockWebhookPayload is the worker event body sent by the time-tracking
// platform.
type TimeclockWebhookPayload struct {
	Event  WebhookEvent `json:"event"`
	Worker struct {
		WorkerID string `json:"worker_id"`
		Name     string `json:"name"`
		Enabled  bool   `json:"enabled"`
	} `json:"worker"`
}
