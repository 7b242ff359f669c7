// internal/config/config.go
//
// CLI 設定：以 viper 讀取 BANK_ 開頭的環境變數（.env 由 cli 層先以 godotenv 載入）。
// 利率與手續費保留原始字串，交由帳戶模型轉換，錯誤值會得到一致的 type 類錯誤。
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"bankaccounts/internal/bank"
)

// ErrInvalid 代表設定值不合法。
var ErrInvalid = errors.New("invalid config")

const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config stores all configuration for the CLI.
type Config struct {
	DefaultInterestRate   string `mapstructure:"BANK_DEFAULT_INTEREST_RATE"`
	DefaultTransactionFee string `mapstructure:"BANK_DEFAULT_TRANSACTION_FEE"`
	Output                string `mapstructure:"BANK_OUTPUT"`
	Debug                 bool   `mapstructure:"BANK_DEBUG"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	viper.SetDefault("BANK_DEFAULT_INTEREST_RATE", fmt.Sprint(bank.DefaultInterestRate))
	viper.SetDefault("BANK_DEFAULT_TRANSACTION_FEE", fmt.Sprint(bank.DefaultTransactionFee))
	viper.SetDefault("BANK_OUTPUT", OutputText)
	viper.SetDefault("BANK_DEBUG", false)
	viper.AutomaticEnv()

	_ = viper.BindEnv("BANK_DEFAULT_INTEREST_RATE")
	_ = viper.BindEnv("BANK_DEFAULT_TRANSACTION_FEE")
	_ = viper.BindEnv("BANK_OUTPUT")
	_ = viper.BindEnv("BANK_DEBUG")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate 檢查輸出格式，並確認預設利率與手續費可被帳戶模型接受。
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("%w: BANK_OUTPUT must be %q or %q, got %q", ErrInvalid, OutputText, OutputJSON, c.Output)
	}
	if _, err := bank.ToAmount(c.DefaultInterestRate, "Interest rate"); err != nil {
		return fmt.Errorf("%w: BANK_DEFAULT_INTEREST_RATE: %w", ErrInvalid, err)
	}
	if _, err := bank.ToAmount(c.DefaultTransactionFee, "Transaction fee"); err != nil {
		return fmt.Errorf("%w: BANK_DEFAULT_TRANSACTION_FEE: %w", ErrInvalid, err)
	}
	return nil
}

// AccountOptions 回傳以設定預設值建立帳戶的選項。
func (c *Config) AccountOptions() []bank.Option {
	return []bank.Option{
		bank.WithInterestRate(c.DefaultInterestRate),
		bank.WithTransactionFee(c.DefaultTransactionFee),
	}
}
