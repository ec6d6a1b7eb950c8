package types

type ChatRequest struct {
	Message string `json:"message" form:"message"`
}

type ChatReply struct {
	Intent string `json:"intent"`
	Reply  string `json:"reply"`
}
