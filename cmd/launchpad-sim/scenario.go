package main

import (
	"errors"

	"github.com/spf13/viper"
)

type categoryConfig struct {
	Price  uint64 `mapstructure:"price"`
	Supply uint64 `mapstructure:"supply"`
}

type scenarioConfig struct {
	Name       string           `mapstructure:"name"`
	Symbol     string           `mapstructure:"symbol"`
	Cap        uint64           `mapstructure:"cap"`
	RoyaltyBps uint16           `mapstructure:"royalty_bps"`
	FeeBps     uint16           `mapstructure:"fee_bps"`
	Categories []categoryConfig `mapstructure:"categories"`

	RefundDelaySeconds int64 `mapstructure:"refund_delay_seconds"`

	VestingAmount       uint64 `mapstructure:"vesting_amount"`
	VestingDurationDays int64  `mapstructure:"vesting_duration_days"`

	LiquidityAmount uint64 `mapstructure:"liquidity_amount"`
	LiquidityPrice  uint64 `mapstructure:"liquidity_price"`

	FarmAmount       uint64 `mapstructure:"farm_amount"`
	FarmDurationDays int64  `mapstructure:"farm_duration_days"`

	Minters int `mapstructure:"minters"`
}

func loadScenario(path string) (*scenarioConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("name", "Launchpad Demo")
	v.SetDefault("symbol", "DEMO")
	v.SetDefault("fee_bps", 250)
	v.SetDefault("minters", 4)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	var cfg scenarioConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, validateScenario(&cfg)
}

func validateScenario(cfg *scenarioConfig) error {
	if cfg.Cap == 0 {
		return errors.New("cap must be nonzero")
	}
	if len(cfg.Categories) == 0 {
		return errors.New("at least one category required")
	}
	if cfg.Minters <= 0 {
		return errors.New("minters must be positive")
	}
	return nil
}
