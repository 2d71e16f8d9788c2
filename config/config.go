// Package config holds the tuning of the utility bot: the named weights of
// its scoring function and the thresholds that gate its decisions.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Weights are the coefficients of the utility function. Penalties are
// negative.
type Weights struct {
	Distance                 float64 `yaml:"distance"`
	DiamondValue             float64 `yaml:"diamond_value"`
	EnemyRisk                float64 `yaml:"enemy_risk"`
	BaseReturn               float64 `yaml:"base_return"`
	TackleOpportunity        float64 `yaml:"tackle_opportunity"`
	InventoryUrgency         float64 `yaml:"inventory_urgency"`
	TeleporterUsageCost      float64 `yaml:"teleporter_usage_cost"`
	ResetButtonBaseReward    float64 `yaml:"reset_button_base_reward"`
	ResetButtonUrgencyFactor float64 `yaml:"reset_button_urgency_factor"`
	ResetPenaltyTimeLow      float64 `yaml:"reset_penalty_time_low"`
	ResetPenaltyDiamondsOk   float64 `yaml:"reset_penalty_diamonds_ok"`
	CommitmentBonus          float64 `yaml:"commitment_bonus"`
}

// Thresholds gate candidate generation, risk and stuck detection.
type Thresholds struct {
	MaxInventoryDefault                    int     `yaml:"max_inventory_default"`
	StuckThreshold                         int     `yaml:"stuck_threshold"`
	EnemyDangerRadius                      int     `yaml:"enemy_danger_radius"`
	LowDiamondCountThreshold               int     `yaml:"low_diamond_count_threshold"`
	MinTimeForResetBenefitMS               int     `yaml:"min_time_for_reset_benefit_ms"`
	ConsiderTPPathDistanceFactor           float64 `yaml:"consider_tp_path_distance_factor"`
	ConsiderTPPathUrgentBaseInventoryRatio float64 `yaml:"consider_tp_path_urgent_base_inventory_ratio"`
}

// Config is the full server configuration. It is built once at startup and
// treated as immutable afterwards.
type Config struct {
	Addr       string     `yaml:"addr"`
	LogLevel   string     `yaml:"log_level"`
	Weights    Weights    `yaml:"weights"`
	Thresholds Thresholds `yaml:"thresholds"`
}

// Defaults returns the stock tuning.
func Defaults() Config {
	return Config{
		Addr:     ":3000",
		LogLevel: "info",
		Weights: Weights{
			Distance:                 -1.0,
			DiamondValue:             10.0,
			EnemyRisk:                -20.0,
			BaseReturn:               15.0,
			TackleOpportunity:        25.0,
			InventoryUrgency:         5.0,
			TeleporterUsageCost:      -0.5,
			ResetButtonBaseReward:    20.0,
			ResetButtonUrgencyFactor: 10.0,
			ResetPenaltyTimeLow:      -50.0,
			ResetPenaltyDiamondsOk:   -30.0,
			CommitmentBonus:          2.0,
		},
		Thresholds: Thresholds{
			MaxInventoryDefault:                    5,
			StuckThreshold:                         3,
			EnemyDangerRadius:                      2,
			LowDiamondCountThreshold:               4,
			MinTimeForResetBenefitMS:               25000,
			ConsiderTPPathDistanceFactor:           1.2,
			ConsiderTPPathUrgentBaseInventoryRatio: 0.8,
		},
	}
}

// Load starts from Defaults, overlays the YAML file at path when path is not
// empty, then applies DIAMONDFARM_* environment overrides. Fields missing
// from both sources keep their default values.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if strings.TrimSpace(path) != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("%s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

const envPrefix = "DIAMONDFARM_"

func (cfg *Config) applyEnv() error {
	overrideString(&cfg.Addr, "ADDR")
	overrideString(&cfg.LogLevel, "LOG_LEVEL")
	floats := map[string]*float64{
		"WEIGHT_DISTANCE":                    &cfg.Weights.Distance,
		"WEIGHT_DIAMOND_VALUE":               &cfg.Weights.DiamondValue,
		"WEIGHT_ENEMY_RISK":                  &cfg.Weights.EnemyRisk,
		"WEIGHT_BASE_RETURN":                 &cfg.Weights.BaseReturn,
		"WEIGHT_TACKLE_OPPORTUNITY":          &cfg.Weights.TackleOpportunity,
		"WEIGHT_INVENTORY_URGENCY":           &cfg.Weights.InventoryUrgency,
		"WEIGHT_TELEPORTER_USAGE_COST":       &cfg.Weights.TeleporterUsageCost,
		"WEIGHT_RESET_BUTTON_BASE_REWARD":    &cfg.Weights.ResetButtonBaseReward,
		"WEIGHT_RESET_BUTTON_URGENCY_FACTOR": &cfg.Weights.ResetButtonUrgencyFactor,
		"WEIGHT_RESET_PENALTY_TIME_LOW":      &cfg.Weights.ResetPenaltyTimeLow,
		"WEIGHT_RESET_PENALTY_DIAMONDS_OK":   &cfg.Weights.ResetPenaltyDiamondsOk,
		"WEIGHT_COMMITMENT_BONUS":            &cfg.Weights.CommitmentBonus,
		"TP_DISTANCE_FACTOR":                 &cfg.Thresholds.ConsiderTPPathDistanceFactor,
		"TP_URGENT_INVENTORY_RATIO":          &cfg.Thresholds.ConsiderTPPathUrgentBaseInventoryRatio,
	}
	for key, field := range floats {
		if err := overrideFloat(field, key); err != nil {
			return err
		}
	}
	ints := map[string]*int{
		"MAX_INVENTORY_DEFAULT":         &cfg.Thresholds.MaxInventoryDefault,
		"STUCK_THRESHOLD":               &cfg.Thresholds.StuckThreshold,
		"ENEMY_DANGER_RADIUS":           &cfg.Thresholds.EnemyDangerRadius,
		"LOW_DIAMOND_COUNT_THRESHOLD":   &cfg.Thresholds.LowDiamondCountThreshold,
		"MIN_TIME_FOR_RESET_BENEFIT_MS": &cfg.Thresholds.MinTimeForResetBenefitMS,
	}
	for key, field := range ints {
		if err := overrideInt(field, key); err != nil {
			return err
		}
	}
	return nil
}

func overrideInt(field *int, key string) error {
	if val := os.Getenv(envPrefix + key); val != "" {
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid value for %s%s: %w", envPrefix, key, err)
		}
		*field = n
	}
	return nil
}

func overrideFloat(field *float64, key string) error {
	if val := os.Getenv(envPrefix + key); val != "" {
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return fmt.Errorf("invalid value for %s%s: %w", envPrefix, key, err)
		}
		*field = f
	}
	return nil
}

func overrideString(field *string, key string) {
	if val := os.Getenv(envPrefix + key); val != "" {
		*field = val
	}
}

// Validate rejects tunings the decision core cannot run with.
func (cfg Config) Validate() error {
	t := cfg.Thresholds
	var errs []error
	if t.MaxInventoryDefault <= 0 {
		errs = append(errs, fmt.Errorf("max_inventory_default must be positive, got %d", t.MaxInventoryDefault))
	}
	if t.StuckThreshold <= 0 {
		errs = append(errs, fmt.Errorf("stuck_threshold must be positive, got %d", t.StuckThreshold))
	}
	if t.EnemyDangerRadius < 0 {
		errs = append(errs, fmt.Errorf("enemy_danger_radius must not be negative, got %d", t.EnemyDangerRadius))
	}
	if t.ConsiderTPPathDistanceFactor <= 0 {
		errs = append(errs, fmt.Errorf("consider_tp_path_distance_factor must be positive, got %g", t.ConsiderTPPathDistanceFactor))
	}
	return errors.Join(errs...)
}
