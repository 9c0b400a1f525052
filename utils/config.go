package utils

import (
	"log"

	"github.com/spf13/viper"

	"planify/models"
)

// FixedSplit is one configured (pack hours, days, hours per day) combination
// offered by the intervention slot planner.
type FixedSplit struct {
	TotalHours  float64 `mapstructure:"totalHours"`
	Days        int     `mapstructure:"days"`
	HoursPerDay float64 `mapstructure:"hoursPerDay"`
}

// SchedulingConfig holds the engine knobs: the standard window catalog used by
// the recommendation ranker, scoring penalties, and planner defaults. It is
// configuration, not engine logic.
type SchedulingConfig struct {
	DayStart         string              `mapstructure:"dayStart"`         // planner start time, e.g. "09:00"
	DefaultSlotHours float64             `mapstructure:"defaultSlotHours"` // manual-append default window
	WorkingWindow    models.TimeWindow   `mapstructure:"workingWindow"`    // weekly-overview probe window
	Windows          []models.TimeWindow `mapstructure:"windows"`          // ranker catalog
	WorkloadPenalty  int                 `mapstructure:"workloadPenalty"`  // per busier-than-least-busy mission
	SpecialtyPenalty int                 `mapstructure:"specialtyPenalty"` // requested service not in specialties
	FixedSplits      []FixedSplit        `mapstructure:"fixedSplits"`
}

// Config holds all configuration values
type Config struct {
	Env        string           `mapstructure:"env"`
	LogLevel   string           `mapstructure:"logLevel"`
	Scheduling SchedulingConfig `mapstructure:"scheduling"`
}

// Global variable to store configuration
var AppConfig Config

// LoadConfig initializes Viper to load config values from env, file, or defaults
func LoadConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.AutomaticEnv()

	viper.SetDefault("env", "development")
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("scheduling.dayStart", "09:00")
	viper.SetDefault("scheduling.defaultSlotHours", 2.0)
	viper.SetDefault("scheduling.workloadPenalty", 10)
	viper.SetDefault("scheduling.specialtyPenalty", 25)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if len(AppConfig.Scheduling.Windows) == 0 {
		AppConfig.Scheduling = applyFallbacks(AppConfig.Scheduling)
	}
}

// DefaultSchedulingConfig returns the built-in engine configuration, used when
// no config file overrides it and by tests.
func DefaultSchedulingConfig() SchedulingConfig {
	return applyFallbacks(SchedulingConfig{
		DayStart:         "09:00",
		DefaultSlotHours: 2,
		WorkloadPenalty:  10,
		SpecialtyPenalty: 25,
	})
}

func applyFallbacks(cfg SchedulingConfig) SchedulingConfig {
	if cfg.DayStart == "" {
		cfg.DayStart = "09:00"
	}
	if cfg.DefaultSlotHours <= 0 {
		cfg.DefaultSlotHours = 2
	}
	if cfg.WorkingWindow == (models.TimeWindow{}) {
		cfg.WorkingWindow = models.TimeWindow{Start: "09:00", End: "17:00"}
	}
	if len(cfg.Windows) == 0 {
		cfg.Windows = []models.TimeWindow{
			{Start: "09:00", End: "11:00"},
			{Start: "13:00", End: "15:00"},
			{Start: "15:00", End: "17:00"},
		}
	}
	if len(cfg.FixedSplits) == 0 {
		cfg.FixedSplits = []FixedSplit{
			{TotalHours: 6, Days: 3, HoursPerDay: 2},
			{TotalHours: 6, Days: 2, HoursPerDay: 3},
			{TotalHours: 12, Days: 4, HoursPerDay: 3},
			{TotalHours: 12, Days: 3, HoursPerDay: 4},
			{TotalHours: 12, Days: 6, HoursPerDay: 2},
			{TotalHours: 20, Days: 5, HoursPerDay: 4},
			{TotalHours: 20, Days: 4, HoursPerDay: 5},
		}
	}
	return cfg
}

// GetEnv returns the application environment
func GetEnv() string {
	return AppConfig.Env
}

// IsProduction checks if the environment is production
func IsProduction() bool {
	return GetEnv() == "production"
}
