package upload

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionToken string

func (s sessionToken) Token() string { return string(s) }

func TestNewClient_Bearer(t *testing.T) {
	tests := []struct {
		name     string
		external bool
		apiKey   string
		wantAuth string
		wantPath string
	}{
		{name: "separate host without key", external: true, wantAuth: "", wantPath: "/upload-image"},
		{name: "separate host with key", external: true, apiKey: "media-key", wantAuth: "Bearer media-key", wantPath: "/upload-image"},
		{name: "rest api route", wantAuth: "Bearer shopper-token", wantPath: "/upload"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotAuth, gotPath string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotAuth = r.Header.Get("Authorization")
				gotPath = r.URL.Path
				w.Header().Set("Content-Type", "application/json")
				_, _ = io.WriteString(w, `{"success":true,"url":"https://cdn.example.com/x.png"}`)
			}))
			t.Cleanup(srv.Close)

			cfg := Config{APIBaseURL: srv.URL, APIKey: tt.apiKey}
			if tt.external {
				cfg.URL = srv.URL + "/upload-image"
			}
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			client, err := NewClient(cfg, sessionToken("shopper-token"), logger)
			require.NoError(t, err)

			_, err = NewMediaUploader(client, logger).Upload(context.Background(), &entity.FileUpload{Filename: "x.png", Data: []byte("img")})

			require.NoError(t, err)
			assert.Equal(t, tt.wantAuth, gotAuth)
			assert.Equal(t, tt.wantPath, gotPath)
		})
	}
}
