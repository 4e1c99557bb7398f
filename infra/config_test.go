package infra

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWebhookCallbackURL(t *testing.T) {
	config := Config{PublicBaseURL: "https://pay.example.com"}
	require.Equal(t, "https://pay.example.com/webhook/pagbank", config.WebhookCallbackURL())

	config.PublicBaseURL = "https://pay.example.com/"
	require.Equal(t, "https://pay.example.com/webhook/pagbank", config.WebhookCallbackURL())
}
