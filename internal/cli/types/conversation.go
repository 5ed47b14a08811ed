package types

// ConversationRequest is the body of POST /conversation.
type ConversationRequest struct {
	Message string `json:"message"`
}

// ConversationResponse is the reply of POST /conversation. Options carries
// the quick replies for the current question; it is empty once the server
// has produced a recommendation. Error is set instead of Message when the
// server rejects the request.
type ConversationResponse struct {
	Message string   `json:"message"`
	Options []string `json:"options,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// QuestionResponse is the reply of GET /next_question. When Done is true
// Message holds the closing text instead of a question.
type QuestionResponse struct {
	Done    bool   `json:"done"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// AnswerRequest is the body of POST /answer.
type AnswerRequest struct {
	Answer string `json:"answer"`
}

// AnswerResponse is the reply of POST /answer.
type AnswerResponse struct {
	Done    bool   `json:"done"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// ResetResponse is the reply of POST /reset.
type ResetResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
