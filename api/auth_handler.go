package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jaipongz/site-backend/auth"
	"github.com/jaipongz/site-backend/errs"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	verifier  auth.Verifier
}

func newAuthHandler(verifier auth.Verifier) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		verifier:  verifier,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type loginResponse struct {
	Token string    `json:"token"`
	User  loginUser `json:"user"`
}

// login verifies admin credentials and issues a session token
// @Summary Admin login
// @Description Verifies a username/password pair and returns a signed 24h session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Admin credentials"
// @Success 200 {object} loginResponse "Session token and admin identity"
// @Failure 401 {object} ErrorResponse "Unauthorized - Invalid credentials"
// @Router /login [post]
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if req.Username == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("username"))
			return
		}
		if req.Password == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("password"))
			return
		}

		token, admin, err := h.verifier.Authenticate(req.Username, req.Password)
		if err != nil {
			// Unknown username and wrong password share one response.
			if errors.Is(err, auth.ErrInvalidCredentials) {
				h.responder.WriteError(w, errs.InvalidCredentials)
				return
			}
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("login failed", err))
			return
		}

		h.responder.WriteJSON(w, loginResponse{
			Token: token,
			User: loginUser{
				ID:       admin.ID,
				Username: admin.Username,
				Email:    admin.Email,
			},
		})
	}
}
