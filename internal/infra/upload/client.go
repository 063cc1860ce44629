package upload

import (
	"log/slog"
	"time"

	"storefront/internal/domain/service"
	"storefront/internal/infra/api"
)

// Config locates the upload function.
type Config struct {
	// URL of a separately hosted upload function. Empty means APIBaseURL + "/upload".
	URL string
	// APIKey is the bearer sent to a separately hosted function; the session token never is.
	APIKey     string
	APIBaseURL string
	Timeout    time.Duration
}

type staticKey string

func (k staticKey) Token() string { return string(k) }

// NewClient builds the api.Client the uploader posts to. Only the REST API's own /upload
// route receives the session token.
func NewClient(cfg Config, session service.TokenSource, logger *slog.Logger) (*api.Client, error) {
	baseURL := cfg.URL
	tokens := session
	if baseURL == "" {
		baseURL = cfg.APIBaseURL + "/upload"
	} else {
		tokens = nil
		if cfg.APIKey != "" {
			tokens = staticKey(cfg.APIKey)
		}
	}

	return api.NewClient(api.Config{BaseURL: baseURL, Timeout: cfg.Timeout}, tokens, logger)
}
