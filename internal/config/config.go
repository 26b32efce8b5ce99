package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	StaffJWTSecret string // ステータス更新API用のJWT署名シークレット

	TaxRate decimal.Decimal // 税率（TAX_RATE、既定0.08）

	GoEnv string // dev/prod
}

// 税率の既定値。設定で上書きできる。
const defaultTaxRate = "0.08"

// Loadは環境変数
func Load() (Config, error) {
	taxRate, err := parseTaxRate(os.Getenv("TAX_RATE"))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:           os.Getenv("PORT"),
		StaffJWTSecret: os.Getenv("STAFF_JWT_SECRET"),
		TaxRate:        taxRate,
		GoEnv:          os.Getenv("GO_ENV"),
	}

	//必須チェック
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.StaffJWTSecret == "" {
		return Config{}, fmt.Errorf("STAFF_JWT_SECRET is required")
	}
	if cfg.GoEnv == "" {
		return Config{}, fmt.Errorf("GO_ENV is required")
	}

	return cfg, nil
}

func parseTaxRate(v string) (decimal.Decimal, error) {
	if v == "" {
		v = defaultTaxRate
	}
	rate, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("TAX_RATE must be a decimal: %w", err)
	}
	if rate.IsNegative() || rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return decimal.Decimal{}, fmt.Errorf("TAX_RATE must be in [0, 1)")
	}
	return rate, nil
}
