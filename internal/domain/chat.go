package domain

import "strings"

const (
	MaxChatLen      = 800
	MaxChatHistory  = 200
	DefaultUserName = "anonymous"
)

// ChatMessage is immutable once created. Ts is assigned by the server
// in epoch milliseconds.
type ChatMessage struct {
	UserName string `json:"userName"`
	Text     string `json:"text"`
	Ts       int64  `json:"ts"`
}

// NewChatMessage normalizes user input: empty names default, overlong
// text is truncated rather than rejected.
func NewChatMessage(userName, text string, ts int64) ChatMessage {
	userName = strings.TrimSpace(userName)
	if userName == "" {
		userName = DefaultUserName
	}
	if len(userName) > MaxUserNameLen {
		userName = userName[:MaxUserNameLen]
	}
	if len(text) > MaxChatLen {
		text = text[:MaxChatLen]
	}
	return ChatMessage{UserName: userName, Text: text, Ts: ts}
}
