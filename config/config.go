package config

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"runtime"

	"github.com/pkg/errors"

	"massnet.org/shasum/logging"
)

const (
	DefaultConfigFilename  = "shasum.json"
	DefaultLoggingFilename = "shasum"
	DefaultLogLevel        = "info"
	DefaultCacheSize       = 1024
	MaxWorkers             = 4096
)

type Config struct {
	Log   *Log   `json:"log" mapstructure:"log"`
	Batch *Batch `json:"batch" mapstructure:"batch"`
}

// Log configures the logging package. An empty LogDir keeps logs off the disk.
type Log struct {
	LogDir        string `json:"log_dir" mapstructure:"log_dir"`
	LogLevel      string `json:"log_level" mapstructure:"log_level"`
	LogAge        uint32 `json:"log_age" mapstructure:"log_age"`
	DisableCPrint bool   `json:"disable_cprint" mapstructure:"disable_cprint"`
}

// Batch configures parallel hashing of independent inputs.
type Batch struct {
	Workers   int `json:"workers" mapstructure:"workers"`
	CacheSize int `json:"cache_size" mapstructure:"cache_size"`
}

func DefaultConfig() *Config {
	return &Config{
		Log:   DefaultLog(),
		Batch: DefaultBatch(),
	}
}

func DefaultLog() *Log {
	return &Log{
		LogDir:        "",
		LogLevel:      DefaultLogLevel,
		LogAge:        7,
		DisableCPrint: false,
	}
}

func DefaultBatch() *Batch {
	return &Batch{
		Workers:   runtime.NumCPU(),
		CacheSize: DefaultCacheSize,
	}
}

func LoadConfig(filename string) (*Config, error) {
	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err = json.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %s", filename)
	}
	return cfg, nil
}

var validLevels = map[string]bool{
	logging.PanicLevel: true,
	logging.FatalLevel: true,
	logging.ErrorLevel: true,
	logging.WarnLevel:  true,
	logging.InfoLevel:  true,
	logging.DebugLevel: true,
	logging.TraceLevel: true,
}

func CheckConfig(cfg *Config) error {
	if cfg.Log == nil {
		cfg.Log = DefaultLog()
	}

	if cfg.Batch == nil {
		cfg.Batch = DefaultBatch()
	}

	// Checks for log
	if cfg.Log.LogLevel == "" {
		cfg.Log.LogLevel = DefaultLogLevel
	}
	if !validLevels[cfg.Log.LogLevel] {
		return errors.New(fmt.Sprintf("invalid log level %q", cfg.Log.LogLevel))
	}

	// Checks for batch
	if cfg.Batch.Workers <= 0 {
		cfg.Batch.Workers = runtime.NumCPU()
	}
	if cfg.Batch.Workers > MaxWorkers {
		return errors.New(fmt.Sprintln("workers cannot be more than", MaxWorkers, "current", cfg.Batch.Workers))
	}
	if cfg.Batch.CacheSize < 0 {
		return errors.New(fmt.Sprintf("invalid cache size %d", cfg.Batch.CacheSize))
	}

	return nil
}
