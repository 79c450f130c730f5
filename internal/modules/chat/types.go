package chat

// ChatRequestDTO is the POST /chat body. Subject is optional; when absent the
// classifier decides.
type ChatRequestDTO struct {
	Message   string `json:"message"    binding:"required"`
	SessionID string `json:"session_id" binding:"required"`
	Subject   string `json:"subject"`
}
