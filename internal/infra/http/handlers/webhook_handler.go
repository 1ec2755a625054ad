package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/galvanlaw/crm-intake/internal/infra/http/middleware"
	"github.com/galvanlaw/crm-intake/internal/usecase"
)

// SignupProcessor is what the handler needs from the usecase layer.
type SignupProcessor interface {
	Execute(ctx context.Context, in usecase.WorkshopSignupInput) (*usecase.WorkshopSignupOutput, error)
}

type WorkshopWebhookHandler struct {
	Signups SignupProcessor
	Logger  *zap.Logger
}

func NewWorkshopWebhookHandler(signups SignupProcessor, logger *zap.Logger) *WorkshopWebhookHandler {
	return &WorkshopWebhookHandler{Signups: signups, Logger: logger}
}

type workshopWebhookRequest struct {
	FromFirst       string `json:"from_first"`
	FromLast        string `json:"from_last"`
	FromPhone       string `json:"from_phone"`
	FromEmail       string `json:"from_email"`
	FromMessage     string `json:"from_message"`
	FromSource      string `json:"from_source"`
	WorkshopJoined  string `json:"workshop_joined"`
	MaritalStatus   string `json:"marital_status"`
	FloridaResident string `json:"florida_resident"`
}

type workshopWebhookResponse struct {
	Success           bool                         `json:"success"`
	ContactID         string                       `json:"contactId"`
	IsNew             bool                         `json:"isNew"`
	WorkshopID        *string                      `json:"workshopId"`
	RegistrationID    *string                      `json:"registrationId"`
	WorkshopMatchInfo *usecase.WorkshopSessionInfo `json:"workshopMatchInfo"`
	Message           string                       `json:"message"`
}

type webhookErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Handle processes a workshop sign-up webhook. Partial outcomes (no match,
// registration conflict) are still a 200 with the details in the body; only
// an uncaught store failure becomes a 500.
func (h *WorkshopWebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req workshopWebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, webhookErrorResponse{Error: "invalid JSON body"})
		return
	}

	middleware.RecordWebhookReceived()

	out, err := h.Signups.Execute(r.Context(), usecase.WorkshopSignupInput{
		FirstName:       req.FromFirst,
		LastName:        req.FromLast,
		Phone:           req.FromPhone,
		Email:           req.FromEmail,
		GuestCount:      req.FromMessage,
		SourceTag:       req.FromSource,
		WorkshopJoined:  req.WorkshopJoined,
		MaritalStatus:   req.MaritalStatus,
		FloridaResident: req.FloridaResident,
	})
	if err != nil {
		h.Logger.Error("workshop signup failed", zap.Error(err))
		msg := err.Error()
		if msg == "" {
			msg = "internal error"
		}
		writeJSON(w, http.StatusInternalServerError, webhookErrorResponse{Error: msg})
		return
	}

	if out.IsNew {
		middleware.RecordContactCreated()
	}
	switch {
	case out.RegistrationID != "":
		middleware.RecordRegistrationCreated()
	case out.WorkshopID != "":
		middleware.RecordRegistrationConflict()
	case out.MatchInfo != nil:
		middleware.RecordWorkshopMatchMiss()
	}

	writeJSON(w, http.StatusOK, workshopWebhookResponse{
		Success:           true,
		ContactID:         out.ContactID,
		IsNew:             out.IsNew,
		WorkshopID:        nullable(out.WorkshopID),
		RegistrationID:    nullable(out.RegistrationID),
		WorkshopMatchInfo: out.MatchInfo,
		Message:           out.Message,
	})
}

// HandleVerify answers the sending platform's endpoint check.
func (h *WorkshopWebhookHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
