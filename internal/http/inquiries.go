package httpapi

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"aicoach-backend-go/internal/services"

	"github.com/asaskevich/govalidator"
	"github.com/go-chi/chi/v5"
)

type CreateInquiryRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone"`
	Type    string  `json:"type"`
	Message string  `json:"message"`
}

type UpdateInquiryStatusRequest struct {
	Status     string  `json:"status"`
	AdminNotes *string `json:"adminNotes"`
}

func (s *Server) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	var req CreateInquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		WriteError(w, http.StatusBadRequest, "Name is required")
		return
	}
	if !govalidator.IsEmail(req.Email) {
		WriteError(w, http.StatusBadRequest, "A valid email is required")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		WriteError(w, http.StatusBadRequest, "Message is required")
		return
	}
	if !services.ValidProposalType(req.Type) {
		WriteError(w, http.StatusBadRequest, "Invalid inquiry type")
		return
	}
	id, err := services.CreateInquiry(s.DB, services.InquiryInput{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   req.Phone,
		Type:    req.Type,
		Message: req.Message,
	})
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	// Owner notification is best-effort: a failure is logged and never
	// surfaces to the submitter.
	go func(req CreateInquiryRequest, id int64) {
		body := fmt.Sprintf("New %s inquiry #%d\nName: %s\nEmail: %s\nPhone: %s\n\n%s",
			req.Type, id, req.Name, req.Email, ptrToString(req.Phone), req.Message)
		if err := s.Notifier.Notify("New inquiry received", body); err != nil {
			log.Printf("owner notification failed: %v", err)
		}
	}(req, id)

	WriteJSON(w, http.StatusOK, SaveIDResponse{ID: id})
}

func (s *Server) ListInquiries(w http.ResponseWriter, r *http.Request) {
	items, err := services.AllInquiries(s.DB)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, items)
}

func (s *Server) InquiryDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	item, err := services.InquiryByID(s.DB, id)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	if item == nil {
		WriteError(w, http.StatusNotFound, "Inquiry not found")
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

func (s *Server) UpdateInquiryStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var req UpdateInquiryStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if !services.ValidInquiryStatus(req.Status) {
		WriteError(w, http.StatusBadRequest, "Invalid status")
		return
	}
	if err := services.UpdateInquiryStatus(s.DB, id, req.Status, req.AdminNotes); err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, SuccessResponse{Success: true})
}
