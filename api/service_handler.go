package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/jaipongz/site-backend/database"
	"github.com/jaipongz/site-backend/errs"
	"github.com/jaipongz/site-backend/models"
)

type serviceHandler struct {
	responder   Responder
	logger      zerolog.Logger
	serviceRepo *database.ContentRepo[models.Service]
}

func newServiceHandler(serviceRepo *database.ContentRepo[models.Service]) serviceHandler {
	logger := log.With().Str("handlerName", "serviceHandler").Logger()

	return serviceHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		serviceRepo: serviceRepo,
	}
}

// servicePayload is the JSON body for service writes. Icon is stored verbatim;
// unrecognized names render with a default glyph on the frontend.
type servicePayload struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (h serviceHandler) decodePayload(r *http.Request) (servicePayload, error) {
	var payload servicePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return payload, errs.NewInvalidJSONError(err)
	}
	if payload.Title == "" {
		return payload, errs.NewMissingRequiredFieldError("title")
	}
	if payload.Description == "" {
		return payload, errs.NewMissingRequiredFieldError("description")
	}
	return payload, nil
}

// getAllServices retrieves all services, newest first
// @Summary Get all services
// @Tags Services
// @Produce json
// @Success 200 {array} models.Service "List of services"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching services"
// @Router /services [get]
func (h serviceHandler) getAllServices() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services, err := h.serviceRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find services", "services", err))
			return
		}

		if services == nil {
			services = []models.Service{}
		}
		h.responder.WriteJSON(w, services)
	}
}

// createService creates a new service entry
// @Summary Create service
// @Tags Services
// @Accept json
// @Produce json
// @Param service body servicePayload true "Service data"
// @Success 201 {object} CreatedResponse "Created service id"
// @Failure 400 {object} ErrorResponse "Bad Request - Missing required field"
// @Router /services [post]
func (h serviceHandler) createService() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := h.decodePayload(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		service := models.Service{
			Icon:        payload.Icon,
			Title:       payload.Title,
			Description: payload.Description,
		}

		if err := h.serviceRepo.Add(&service); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create service", "service", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, CreatedResponse{ID: service.ID, Message: "Service created successfully"})
	}
}

// updateService replaces all editable fields of an existing service
// @Summary Update service
// @Tags Services
// @Accept json
// @Produce json
// @Param serviceID path int true "Service ID"
// @Param service body servicePayload true "Updated service data"
// @Success 200 {object} MessageResponse "Update confirmation"
// @Failure 404 {object} ErrorResponse "Not Found - Service not found"
// @Router /services/{serviceID} [put]
func (h serviceHandler) updateService() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serviceID, err := parseID(r, "serviceID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.serviceRepo.FindByID(serviceID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find service", "service", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Service not found"))
			return
		}

		payload, err := h.decodePayload(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		updated := models.Service{
			ID:          existing.ID,
			Icon:        payload.Icon,
			Title:       payload.Title,
			Description: payload.Description,
			CreatedAt:   existing.CreatedAt,
		}

		if err := h.serviceRepo.Update(&updated); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update service", "service", err))
			return
		}

		h.responder.WriteJSON(w, MessageResponse{Message: "Service updated successfully"})
	}
}

// deleteService removes a service by ID
// @Summary Delete service
// @Tags Services
// @Produce json
// @Param serviceID path int true "Service ID"
// @Success 200 {object} MessageResponse "Delete confirmation"
// @Failure 404 {object} ErrorResponse "Not Found - Service not found"
// @Router /services/{serviceID} [delete]
func (h serviceHandler) deleteService() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serviceID, err := parseID(r, "serviceID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.serviceRepo.Delete(serviceID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				h.responder.WriteError(w, errs.NewNotFoundError("Service not found"))
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("delete service", "service", err))
			return
		}

		h.responder.WriteJSON(w, MessageResponse{Message: "Service deleted successfully"})
	}
}
