package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDSN(t *testing.T) {
	tests := []struct {
		name string
		db   Database
		want string
	}{
		{
			name: "com sslmode",
			db:   Database{Driver: "postgres", User: "u", Password: "p", URL: "db:5432/sales", SSLMode: "disable"},
			want: "postgres://u:p@db:5432/sales?sslmode=disable",
		},
		{
			name: "sem sslmode",
			db:   Database{Driver: "postgres", User: "u", Password: "p", URL: "db:5432/sales"},
			want: "postgres://u:p@db:5432/sales",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildDSN(tt.db))
		})
	}
}

func TestNewConfig_ReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("REPORT_JANITOR_MAX_AGE", "2h")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("DATABASE_URL", "pg:5432/other")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "123:abc", cfg.Bot.Token)
	assert.Equal(t, 2*time.Hour, cfg.ReportJanitor.MaxAge)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
	assert.Equal(t, "postgres://postgres:root@pg:5432/other?sslmode=disable", cfg.Database.DSN)
}
