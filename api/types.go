package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	articleHandler   articleHandler
	serviceHandler   serviceHandler
	portfolioHandler portfolioHandler
	teamHandler      teamHandler
	authHandler      authHandler
	healthHandler    healthHandler
}

// CreatedResponse is returned by every create endpoint
type CreatedResponse struct {
	ID      uint   `json:"id"`
	Message string `json:"message"`
}

// MessageResponse is returned by update and delete endpoints
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Status  string `json:"status"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
}
