package api

import (
	"github.com/go-chi/chi/v5"
)

// setupAPIRoutes binds the content API. Collection reads are public; every
// mutating route sits behind the auth middleware.
func setupAPIRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Route("/api", func(r chi.Router) {
		r.Use(HTTPLoggingMiddleware)

		r.Get("/health", handlers.healthHandler.check())
		r.Post("/login", handlers.authHandler.login())

		// Public reads
		r.Get("/articles", handlers.articleHandler.getAllArticles())
		r.Get("/articles/{articleID}", handlers.articleHandler.getArticle())
		r.Get("/services", handlers.serviceHandler.getAllServices())
		r.Get("/portfolio", handlers.portfolioHandler.getAllPortfolio())
		r.Get("/team", handlers.teamHandler.getAllTeamMembers())

		// Authenticated mutations
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.authenticate)

			r.Post("/articles", handlers.articleHandler.createArticle())
			r.Put("/articles/{articleID}", handlers.articleHandler.updateArticle())
			r.Delete("/articles/{articleID}", handlers.articleHandler.deleteArticle())

			r.Post("/services", handlers.serviceHandler.createService())
			r.Put("/services/{serviceID}", handlers.serviceHandler.updateService())
			r.Delete("/services/{serviceID}", handlers.serviceHandler.deleteService())

			r.Post("/portfolio", handlers.portfolioHandler.createPortfolio())
			r.Put("/portfolio/{portfolioID}", handlers.portfolioHandler.updatePortfolio())
			r.Delete("/portfolio/{portfolioID}", handlers.portfolioHandler.deletePortfolio())

			r.Post("/team", handlers.teamHandler.createTeamMember())
			r.Put("/team/{memberID}", handlers.teamHandler.updateTeamMember())
			r.Delete("/team/{memberID}", handlers.teamHandler.deleteTeamMember())
		})
	})
}
