package routes

// errorResponse is the failure envelope shared by every API endpoint.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func fail(message string) errorResponse {
	return errorResponse{Success: false, Message: message}
}
