package dto

// StatusResponse is the wire shape of every mutating API endpoint.
// Errors in the action body keep HTTP 200 with status "error".
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func Success(message string) StatusResponse {
	return StatusResponse{Status: "success", Message: message}
}

func Error(message string) StatusResponse {
	return StatusResponse{Status: "error", Message: message}
}

// UserActionRequest is the JSON body of POST /api/users. Action selects
// the operation; unused fields stay zero.
type UserActionRequest struct {
	Action   string `json:"action"`
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// DocumentDeleteRequest is the JSON variant of POST /api/documents.
// Add and update arrive as multipart form data instead.
type DocumentDeleteRequest struct {
	Action string `json:"action"`
	ID     uint   `json:"id"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
