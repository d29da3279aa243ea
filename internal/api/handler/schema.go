package handler

// envelope is the canonical response shape for every endpoint:
// {success, message, data?} plus a top-level token on auth responses.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Token   string `json:"token,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func ok(message string) envelope {
	return envelope{Success: true, Message: message}
}

func fail(message string) envelope {
	return envelope{Success: false, Message: message}
}
