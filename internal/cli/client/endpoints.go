package client

const (
	// Structured conversation endpoint
	endpointConversation = "/conversation" // POST

	// Wizard endpoints
	endpointNextQuestion = "/next_question" // GET
	endpointAnswer       = "/answer"        // POST
	endpointReset        = "/reset"         // POST
)
