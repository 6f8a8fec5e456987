package api

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/jaipongz/site-backend/database"
	"github.com/jaipongz/site-backend/errs"
	"github.com/jaipongz/site-backend/models"
	"github.com/jaipongz/site-backend/storage"
)

type portfolioHandler struct {
	responder     Responder
	logger        zerolog.Logger
	portfolioRepo *database.ContentRepo[models.Portfolio]
}

func newPortfolioHandler(portfolioRepo *database.ContentRepo[models.Portfolio]) portfolioHandler {
	logger := log.With().Str("handlerName", "portfolioHandler").Logger()

	return portfolioHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		portfolioRepo: portfolioRepo,
	}
}

// getAllPortfolio retrieves all portfolio items, newest first
func (h portfolioHandler) getAllPortfolio() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := h.portfolioRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find portfolio items", "portfolio", err))
			return
		}

		if items == nil {
			items = []models.Portfolio{}
		}
		h.responder.WriteJSON(w, items)
	}
}

// createPortfolio creates a new portfolio item from a multipart form. The link
// field is stored as entered, without validation.
func (h portfolioHandler) createPortfolio() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseMultipartForm(w, r); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		title := r.FormValue("title")
		description := r.FormValue("description")
		if title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}
		if description == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("description"))
			return
		}

		thumbnail, uploaded, err := resolveImage(r, "thumbnail")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		item := models.Portfolio{
			Thumbnail:   thumbnail,
			Title:       title,
			Description: description,
			Link:        r.FormValue("link"),
		}

		if err := h.portfolioRepo.Add(&item); err != nil {
			if uploaded {
				if rmErr := storage.Remove(*thumbnail); rmErr != nil {
					h.logger.Error().Err(rmErr).Msg("Failed to remove orphaned upload")
				}
			}
			h.responder.WriteError(w, wrapDatabaseError("create portfolio item", "portfolio", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, CreatedResponse{ID: item.ID, Message: "Portfolio created successfully"})
	}
}

// updatePortfolio replaces all editable fields of an existing portfolio item
func (h portfolioHandler) updatePortfolio() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		portfolioID, err := parseID(r, "portfolioID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.portfolioRepo.FindByID(portfolioID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find portfolio item", "portfolio", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Portfolio not found"))
			return
		}

		if err := parseMultipartForm(w, r); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		title := r.FormValue("title")
		description := r.FormValue("description")
		if title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}
		if description == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("description"))
			return
		}

		thumbnail, uploaded, err := resolveImage(r, "thumbnail")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		updated := models.Portfolio{
			ID:          existing.ID,
			Thumbnail:   thumbnail,
			Title:       title,
			Description: description,
			Link:        r.FormValue("link"),
			CreatedAt:   existing.CreatedAt,
		}

		if err := h.portfolioRepo.Update(&updated); err != nil {
			if uploaded {
				if rmErr := storage.Remove(*thumbnail); rmErr != nil {
					h.logger.Error().Err(rmErr).Msg("Failed to remove orphaned upload")
				}
			}
			h.responder.WriteError(w, wrapDatabaseError("update portfolio item", "portfolio", err))
			return
		}

		h.responder.WriteJSON(w, MessageResponse{Message: "Portfolio updated successfully"})
	}
}

// deletePortfolio removes a portfolio item by ID
func (h portfolioHandler) deletePortfolio() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		portfolioID, err := parseID(r, "portfolioID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.portfolioRepo.Delete(portfolioID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				h.responder.WriteError(w, errs.NewNotFoundError("Portfolio not found"))
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("delete portfolio item", "portfolio", err))
			return
		}

		h.responder.WriteJSON(w, MessageResponse{Message: "Portfolio deleted successfully"})
	}
}
