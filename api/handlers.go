package api

import (
	"github.com/jaipongz/site-backend/auth"
	"github.com/jaipongz/site-backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, signingSecret []byte) *routeHandlers {
	verifier := auth.NewVerifier(database.AdminRepo(), signingSecret)

	return &routeHandlers{
		articleHandler:   newArticleHandler(database.ArticleRepo()),
		serviceHandler:   newServiceHandler(database.ServiceRepo()),
		portfolioHandler: newPortfolioHandler(database.PortfolioRepo()),
		teamHandler:      newTeamHandler(database.TeamRepo()),
		authHandler:      newAuthHandler(verifier),
		healthHandler:    newHealthHandler(),
	}
}
