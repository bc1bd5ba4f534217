package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWSURL(t *testing.T) {
	tests := []struct {
		hub  string
		want string
	}{
		{"http://localhost:8080", "ws://localhost:8080/ws"},
		{"http://localhost:8080/", "ws://localhost:8080/ws"},
		{"https://chat.example.com", "wss://chat.example.com/ws"},
		{"https://example.com/hub/", "wss://example.com/hub/ws"},
	}
	for _, tt := range tests {
		t.Run(tt.hub, func(t *testing.T) {
			assert.Equal(t, tt.want, wsURL(tt.hub))
		})
	}
}
