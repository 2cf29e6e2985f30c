package config

import (
	"testing"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ROTATION_ANCHOR", "")
	t.Setenv("NOTIFICATION_TIME", "")
	t.Setenv("SLACK_SIGNING_SECRET", "")

	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "2025-12-01", cfg.RotationAnchor)
	assert.Equal(t, "08:00", cfg.NotificationTime)
	assert.False(t, cfg.SlackEnabled())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("TIMEZONE", "Europe/Berlin")
	t.Setenv("SLACK_SIGNING_SECRET", "secret")

	cfg := Load()

	assert.Equal(t, "8081", cfg.Port)
	assert.True(t, cfg.SlackEnabled())

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", loc.String())
}

func TestConfig_LocationInvalid(t *testing.T) {
	cfg := &Config{Timezone: "Mars/Olympus"}

	_, err := cfg.Location()
	require.Error(t, err)
}
