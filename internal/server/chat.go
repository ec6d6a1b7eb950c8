package server

import (
	"net/http"
	"strings"

	"careconnect/internal/chatbot"
	"careconnect/pkg/types"
)

type chatRules struct {
	Rules   []chatbot.Rule `json:"rules"`
	Default chatbot.Rule   `json:"default"`
}

func (s *Service) handleGetChatRules(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=300")
	s.write(w, r, ok{data: chatRules{Rules: chatbot.Rules(), Default: chatbot.Default()}})
}

func (s *Service) handlePostChat(w http.ResponseWriter, r *http.Request) {
	input, err := decodeInput(w, r, new(types.ChatRequest))
	if err != nil {
		s.write(w, r, invalidBody)
		return
	}

	message, _ := input["message"].(string)
	if strings.TrimSpace(message) == "" {
		s.write(w, r, validationFailed("Message is required"))
		return
	}

	rule := chatbot.Match(message)
	s.write(w, r, ok{data: types.ChatReply{Intent: string(rule.Intent), Reply: rule.Response}})
}
