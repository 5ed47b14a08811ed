package dto

// ConversationRequest is the body of POST /conversation.
type ConversationRequest struct {
	Message string `json:"message"`
}

// ConversationResponse is one structured turn. Options is always present so
// clients can replace their quick-reply row wholesale.
type ConversationResponse struct {
	Message string   `json:"message"`
	Options []string `json:"options"`
}

// AnswerRequest is the body of POST /answer.
type AnswerRequest struct {
	Answer string `json:"answer"`
}

// QuestionResponse is returned by GET /next_question and POST /answer. The
// options for a wizard question are embedded in Message after an
// "Options:" marker.
type QuestionResponse struct {
	Done    bool   `json:"done"`
	Message string `json:"message"`
}

// ResetResponse confirms POST /reset.
type ResetResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries a request-level error.
type ErrorResponse struct {
	Error string `json:"error"`
}
