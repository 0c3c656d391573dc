package response

// Resp is the JSON body for messages and errors: {"detail": "..."}.
type Resp struct {
	Detail string `json:"detail"`
}

const (
	MessageNotAuthenticated = "Authentication credentials were not provided."
	MessageInvalidToken     = "Invalid token."
)
