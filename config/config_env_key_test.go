package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"dataSource": map[string]any{
			"anonKey": "",
		},
		"api": map[string]any{
			"baseUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "DATASOURCE_ANONKEY", want: "dataSource.anonKey"},
		{envKey: "API_BASEURL", want: "api.baseUrl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsOptionalSections(t *testing.T) {
	cfg := &Config{API: &APIConfig{BaseURL: "https://api.example.com/"}}

	applyDefaults(cfg)

	if cfg.API.BaseURL != "https://api.example.com" {
		t.Fatalf("BaseURL = %q, want trailing slash trimmed", cfg.API.BaseURL)
	}
	if cfg.DataSource.Provider != DataSourcePostgREST {
		t.Fatalf("DataSource.Provider = %q, want %q", cfg.DataSource.Provider, DataSourcePostgREST)
	}
	if cfg.Storage.Provider != StorageFile || cfg.Storage.Dir == "" {
		t.Fatalf("Storage = %+v, want file provider with a directory", cfg.Storage)
	}
	if cfg.API.Timeout != 0 {
		t.Fatalf("API.Timeout = %v, want no timeout by default", cfg.API.Timeout)
	}
	if cfg.Metrics.Path != "/metrics" || cfg.QRCode.Size != 256 {
		t.Fatalf("unexpected defaults: metrics=%+v qrcode=%+v", cfg.Metrics, cfg.QRCode)
	}
	if cfg.Wishlist.AllowGuest {
		t.Fatal("AllowGuest should default to false")
	}
}
