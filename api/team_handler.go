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

type teamHandler struct {
	responder Responder
	logger    zerolog.Logger
	teamRepo  *database.ContentRepo[models.TeamMember]
}

func newTeamHandler(teamRepo *database.ContentRepo[models.TeamMember]) teamHandler {
	logger := log.With().Str("handlerName", "teamHandler").Logger()

	return teamHandler{
		responder: NewResponder(logger),
		logger:    logger,
		teamRepo:  teamRepo,
	}
}

func (h teamHandler) validateRequired(r *http.Request) error {
	for _, field := range []string{"firstname", "lastname", "position"} {
		if r.FormValue(field) == "" {
			return errs.NewMissingRequiredFieldError(field)
		}
	}
	return nil
}

// getAllTeamMembers retrieves all team members, newest first
func (h teamHandler) getAllTeamMembers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		members, err := h.teamRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find team members", "team", err))
			return
		}

		if members == nil {
			members = []models.TeamMember{}
		}
		h.responder.WriteJSON(w, members)
	}
}

// createTeamMember creates a new team member from a multipart form. The
// link_contact field is stored as entered (mailto:, tel: or https:).
func (h teamHandler) createTeamMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseMultipartForm(w, r); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.validateRequired(r); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		profileImage, uploaded, err := resolveImage(r, "profile_image")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		member := models.TeamMember{
			ProfileImage: profileImage,
			Firstname:    r.FormValue("firstname"),
			Lastname:     r.FormValue("lastname"),
			Position:     r.FormValue("position"),
			LinkContact:  r.FormValue("link_contact"),
		}

		if err := h.teamRepo.Add(&member); err != nil {
			if uploaded {
				if rmErr := storage.Remove(*profileImage); rmErr != nil {
					h.logger.Error().Err(rmErr).Msg("Failed to remove orphaned upload")
				}
			}
			h.responder.WriteError(w, wrapDatabaseError("create team member", "team member", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, CreatedResponse{ID: member.ID, Message: "Team member created successfully"})
	}
}

// updateTeamMember replaces all editable fields of an existing team member
func (h teamHandler) updateTeamMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		memberID, err := parseID(r, "memberID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.teamRepo.FindByID(memberID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find team member", "team member", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Team member not found"))
			return
		}

		if err := parseMultipartForm(w, r); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.validateRequired(r); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		profileImage, uploaded, err := resolveImage(r, "profile_image")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		updated := models.TeamMember{
			ID:           existing.ID,
			ProfileImage: profileImage,
			Firstname:    r.FormValue("firstname"),
			Lastname:     r.FormValue("lastname"),
			Position:     r.FormValue("position"),
			LinkContact:  r.FormValue("link_contact"),
			CreatedAt:    existing.CreatedAt,
		}

		if err := h.teamRepo.Update(&updated); err != nil {
			if uploaded {
				if rmErr := storage.Remove(*profileImage); rmErr != nil {
					h.logger.Error().Err(rmErr).Msg("Failed to remove orphaned upload")
				}
			}
			h.responder.WriteError(w, wrapDatabaseError("update team member", "team member", err))
			return
		}

		h.responder.WriteJSON(w, MessageResponse{Message: "Team member updated successfully"})
	}
}

// deleteTeamMember removes a team member by ID
func (h teamHandler) deleteTeamMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		memberID, err := parseID(r, "memberID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.teamRepo.Delete(memberID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				h.responder.WriteError(w, errs.NewNotFoundError("Team member not found"))
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("delete team member", "team member", err))
			return
		}

		h.responder.WriteJSON(w, MessageResponse{Message: "Team member deleted successfully"})
	}
}
