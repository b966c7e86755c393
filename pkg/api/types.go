package api

import "github.com/ssargent/hatdecoder/pkg/hat"

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// DecodeResponse is the payload of a successful decode
type DecodeResponse struct {
	TeamName  string `json:"team_name"`
	ImageSize int    `json:"image_size"`
	Variant   string `json:"variant"`
	BaseKey   string `json:"base_key,omitempty"` // Complex containers only
	Image     []byte `json:"image"`              // base64 in JSON
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Bind         string
	Port         int
	APIKey       string // Empty disables authentication
	MaxBodyBytes int64
}

// IDecoder is the part of hat.Decoder the server uses
type IDecoder interface {
	Inspect(raw []byte) (*hat.Container, error)
}
