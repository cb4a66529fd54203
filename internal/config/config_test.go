package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoadWithDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "dairyfarm", cfg.MongoDB.DBName)
	assert.Equal(t, 24, cfg.Auth.TokenTTLHours)
	assert.Equal(t, "0 8 1 * *", cfg.Reporting.CronSchedule)
	assert.False(t, cfg.WhatsApp.Enabled())
	assert.False(t, cfg.Sheets.Enabled())
}

func TestLoadRejectsMissingMongoURI(t *testing.T) {
	t.Setenv("MONGODB_URI", "")
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoadRejectsMissingJWTSecret(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoadRejectsPartialWhatsAppBlock(t *testing.T) {
	setRequired(t)
	t.Setenv("WHATSAPP_TOKEN", "token")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoadAcceptsFullWhatsAppBlock(t *testing.T) {
	setRequired(t)
	t.Setenv("WHATSAPP_TOKEN", "token")
	t.Setenv("WHATSAPP_PHONE_NUMBER_ID", "12345")
	t.Setenv("OWNER_WHATSAPP_NUMBER", "919876543210")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.WhatsApp.Enabled())
}

func TestLoadRejectsPartialSheetsBlock(t *testing.T) {
	setRequired(t)
	t.Setenv("GOOGLE_SHEET_DATABASE_ID", "sheet-id")

	_, err := Load("")
	assert.Error(t, err)
}
