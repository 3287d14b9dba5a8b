package websocket

import "github.com/iamasit07/connectz/internal/domain"

// ClientMessage opens a replay stream
type ClientMessage struct {
	Type  string `json:"type"`
	Game  string `json:"game"`
	Token string `json:"token,omitempty"`
}

type ServerMessage struct {
	Type    string         `json:"type"`
	Turn    *domain.Turn   `json:"turn,omitempty"`
	Board   string         `json:"board,omitempty"`
	Outcome domain.Outcome `json:"outcome,omitempty"`
	Code    string         `json:"code,omitempty"`
	Message string         `json:"message,omitempty"`
}
