package client

const (
	// API version prefix
	apiV1Prefix = "/api/v1"

	// Authentication endpoints
	endpointLogin = apiV1Prefix + "/auth/login"

	// Kiosk chat endpoints
	endpointChat        = apiV1Prefix + "/chat"
	endpointChatHistory = apiV1Prefix + "/chat/history/%s" // GET
	endpointChatReset   = apiV1Prefix + "/chat/reset"

	// Public reference endpoints
	endpointFaqs           = apiV1Prefix + "/faqs"
	endpointUpcomingEvents = apiV1Prefix + "/events/upcoming"
	endpointProfessors     = apiV1Prefix + "/professors"
)
