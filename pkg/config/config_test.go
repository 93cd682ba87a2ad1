package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	setDefaults()

	if got := GetInt("server.port"); got != 8080 {
		t.Errorf("server.port default = %d, want 8080", got)
	}
	if got := GetString("database.path"); got != "./data/podcast.db" {
		t.Errorf("database.path default = %q", got)
	}
	if got := GetInt("pagination.page_size"); got != 12 {
		t.Errorf("pagination.page_size default = %d, want 12", got)
	}
	if got := GetDuration("auth.token_ttl"); got != 24*time.Hour {
		t.Errorf("auth.token_ttl default = %v, want 24h", got)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Server:     ServerConfig{Port: 8080},
				Pagination: PaginationConfig{PageSize: 12},
			},
			wantErr: false,
		},
		{
			name: "invalid port",
			config: Config{
				Server: ServerConfig{Port: -1},
			},
			wantErr: true,
		},
		{
			name: "port too large",
			config: Config{
				Server: ServerConfig{Port: 70000},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateCorrectsPageSize(t *testing.T) {
	cfg := Config{
		Server:     ServerConfig{Port: 8080},
		Pagination: PaginationConfig{PageSize: 0},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.Pagination.PageSize != 12 {
		t.Errorf("PageSize = %d, want auto-corrected 12", cfg.Pagination.PageSize)
	}
}
