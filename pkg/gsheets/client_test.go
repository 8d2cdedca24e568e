package gsheets_test

import (
	"context"
	"os"
	"testing"

	"apply-tracker/pkg/gsheets"
)

func TestClientCredentialParsing(t *testing.T) {
	mockCreds := `{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"project_id": "test-project",
			"auth_uri": "https://accounts.google.com/o/oauth2/auth",
			"token_uri": "https://oauth2.googleapis.com/token",
			"client_secret": "test-secret",
			"redirect_uris": ["http://localhost"]
		}
	}`

	t.Run("broken credentials", func(t *testing.T) {
		_, err := gsheets.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`))
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("installed app config with token", func(t *testing.T) {
		os.WriteFile("token.json", []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0644)
		defer os.Remove("token.json")

		_, err := gsheets.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds))
		if err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("installed app config without token", func(t *testing.T) {
		os.Remove("token.json")
		_, err := gsheets.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds))
		if err == nil {
			t.Fatal("expected failure without token.json")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := gsheets.NewClientFromCredentialsFile(context.Background(), "no-such-file.json")
		if err == nil {
			t.Fatal("expected error for missing credentials file")
		}
	})
}
