package upload

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/infra/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUploader(t *testing.T, handler http.HandlerFunc) *mediaUploader {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client, err := api.NewClient(api.Config{BaseURL: srv.URL + "/upload-image"}, nil, logger)
	require.NoError(t, err)

	return NewMediaUploader(client, logger).(*mediaUploader)
}

func TestMediaUploader_Upload(t *testing.T) {
	uploader := newUploader(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/upload-image", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		f, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "lamp.png", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"success":true,"url":"https://cdn.example.com/lamp.png"}`)
	})

	url, err := uploader.Upload(context.Background(), &entity.FileUpload{Filename: "lamp.png", ContentType: "image/png", Data: []byte("img")})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/lamp.png", url)
}

func TestMediaUploader_Upload_GeneratesFilename(t *testing.T) {
	uploader := newUploader(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		assert.NotEmpty(t, header.Filename)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"success":true,"url":"https://cdn.example.com/x"}`)
	})

	_, err := uploader.Upload(context.Background(), &entity.FileUpload{Data: []byte("img")})

	require.NoError(t, err)
}

func TestMediaUploader_Upload_Failures(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantDetails string
	}{
		{"rejected with success false", http.StatusOK, `{"success":false,"error":"File too large"}`, "File too large"},
		{"missing url", http.StatusOK, `{"success":true}`, "upload returned no url"},
		{"error status with json error", http.StatusBadRequest, `{"error":"Unsupported type"}`, "Unsupported type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uploader := newUploader(t, func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := uploader.Upload(context.Background(), &entity.FileUpload{Filename: "a.png", Data: []byte("img")})

			require.ErrorIs(t, err, domainerrors.ErrUploadFailed)
			assert.Contains(t, err.Error(), tt.wantDetails)
		})
	}
}

func TestMediaUploader_Upload_EmptyFile(t *testing.T) {
	called := false
	uploader := newUploader(t, func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	_, err := uploader.Upload(context.Background(), &entity.FileUpload{Filename: "a.png"})

	require.ErrorIs(t, err, domainerrors.ErrUploadFailed)
	assert.False(t, called)
}

func TestMediaUploader_Upload_ServerErrorWithoutJSON(t *testing.T) {
	uploader := newUploader(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := uploader.Upload(context.Background(), &entity.FileUpload{Filename: "a.png", Data: []byte("img")})

	var apiErr *domainerrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
}
