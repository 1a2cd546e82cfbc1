package websocket

import "time"

// Envelope - конверт сообщения: фронтенд смотрит на Type, чтобы понять, что пришло.
type Envelope struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}
