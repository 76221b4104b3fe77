package payload

type MessageResponse struct {
	Message string `json:"message"`
}
