package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/1awilliams379/production-scheduling-optimization/pkg/optimization"
)

// SolverConfig tunes the LP engine
type SolverConfig struct {
	Tolerance float64       `mapstructure:"tolerance"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// ScheduleConfig tunes schedule extraction
type ScheduleConfig struct {
	Epsilon float64 `mapstructure:"epsilon"`
}

// CostsConfig selects the policy for (plant, material) pairs without a
// Production cost row
type CostsConfig struct {
	MissingPairPolicy string `mapstructure:"missing_pair_policy"`
}

// ReportConfig tunes the analysis report
type ReportConfig struct {
	TopDemand int    `mapstructure:"top_demand"`
	Format    string `mapstructure:"format"`
}

// RunConfig is the full configuration of one optimization run
type RunConfig struct {
	Solver   SolverConfig   `mapstructure:"solver"`
	Schedule ScheduleConfig `mapstructure:"schedule"`
	Costs    CostsConfig    `mapstructure:"costs"`
	Report   ReportConfig   `mapstructure:"report"`
}

// Load reads run configuration from an optional YAML file with SCHEDOPT_
// environment overrides on top of defaults. An empty path loads defaults
// and environment only.
func Load(path string) (*RunConfig, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetEnvPrefix("SCHEDOPT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config RunConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if _, err := config.CostPolicy(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Default returns the built-in run configuration
func Default() *RunConfig {
	config, err := Load("")
	if err != nil {
		panic(err)
	}
	return config
}

// CostPolicy maps the configured policy name onto the builder's enum
func (c *RunConfig) CostPolicy() (optimization.CostPolicy, error) {
	switch strings.ToLower(c.Costs.MissingPairPolicy) {
	case "", "zero":
		return optimization.CostPolicyZero, nil
	case "forbid":
		return optimization.CostPolicyForbid, nil
	default:
		return 0, fmt.Errorf(
			"invalid costs.missing_pair_policy %q (expected zero or forbid)",
			c.Costs.MissingPairPolicy,
		)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("solver.tolerance", 1e-7)
	v.SetDefault("solver.timeout", time.Duration(0))
	v.SetDefault("schedule.epsilon", optimization.DefaultScheduleEpsilon)
	v.SetDefault("costs.missing_pair_policy", "zero")
	v.SetDefault("report.top_demand", 5)
	v.SetDefault("report.format", "text")
}
