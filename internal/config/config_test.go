package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("PORT", "8080")
	t.Setenv("STAFF_JWT_SECRET", "test_secret")
	t.Setenv("GO_ENV", "dev")
}

func TestLoad_DefaultTaxRate(t *testing.T) {
	setRequired(t)
	t.Setenv("TAX_RATE", "")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.True(t, cfg.TaxRate.Equal(decimal.RequireFromString("0.08")))
}

func TestLoad_CustomTaxRate(t *testing.T) {
	setRequired(t)
	t.Setenv("TAX_RATE", "0.1")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.True(t, cfg.TaxRate.Equal(decimal.RequireFromString("0.1")))
}

func TestLoad_InvalidTaxRate(t *testing.T) {
	setRequired(t)

	t.Setenv("TAX_RATE", "abc")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("TAX_RATE", "-0.01")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("TAX_RATE", "1")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoad_RequiredFields(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "")

	_, err := Load()
	assert.Error(t, err)

	setRequired(t)
	t.Setenv("STAFF_JWT_SECRET", "")
	_, err = Load()
	assert.Error(t, err)
}
