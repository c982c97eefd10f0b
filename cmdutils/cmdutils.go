// Package cmdutils holds the flag, config and logger plumbing shared by the
// command line tools.
package cmdutils

import (
	"fmt"
	"io"
	"os"

	pkgerr "github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"massnet.org/shasum/config"
	"massnet.org/shasum/errors"
	"massnet.org/shasum/logging"
)

const appName = "shasum"

// Flags are the persistent flags every tool accepts.
type Flags struct {
	ConfigFile string
	LogDir     string
	LogLevel   string
}

// AddPersistentFlags registers f on cmd.
func AddPersistentFlags(cmd *cobra.Command, f *Flags) {
	cmd.PersistentFlags().StringVar(&f.ConfigFile, "config", "", "config file (default is ./"+config.DefaultConfigFilename+")")
	cmd.PersistentFlags().StringVar(&f.LogDir, "log_dir", "", "directory for log files, empty keeps logs off the disk")
	cmd.PersistentFlags().StringVar(&f.LogLevel, "log_level", config.DefaultLogLevel, "level of logs (trace, debug, info, warn, error, fatal, panic)")
}

// LoadConfig merges the config file, if any, with the flags of cmd.
// bindings maps config keys such as "batch.workers" to flag names.
func LoadConfig(cmd *cobra.Command, f *Flags, bindings map[string]string) (*config.Config, error) {
	v := viper.New()
	v.SetConfigType("json")
	if f.ConfigFile != "" {
		v.SetConfigFile(f.ConfigFile)
	} else {
		v.SetConfigName(appName)
		v.AddConfigPath(".")
		v.AddConfigPath(config.AppDataDir(appName, false))
	}

	def := config.DefaultConfig()
	v.SetDefault("log.log_age", def.Log.LogAge)
	v.SetDefault("log.disable_cprint", def.Log.DisableCPrint)
	v.SetDefault("batch.workers", def.Batch.Workers)
	v.SetDefault("batch.cache_size", def.Batch.CacheSize)

	all := map[string]string{
		"log.log_dir":   "log_dir",
		"log.log_level": "log_level",
	}
	for k, name := range bindings {
		all[k] = name
	}
	for k, name := range all {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			return nil, errors.New(errors.ErrConfig, pkgerr.Errorf("no flag %s", name))
		}
		if err := v.BindPFlag(k, flag); err != nil {
			return nil, errors.New(errors.ErrConfig, pkgerr.Wrapf(err, "bind flag %s", name))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || f.ConfigFile != "" {
			return nil, errors.New(errors.ErrConfig, pkgerr.Wrap(err, "read config"))
		}
	}

	cfg := config.DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.New(errors.ErrConfig, pkgerr.Wrap(err, "decode config"))
	}
	if err := config.CheckConfig(cfg); err != nil {
		return nil, errors.New(errors.ErrConfig, err)
	}
	return cfg, nil
}

// InitLogger initializes logging module by config.
func InitLogger(cfg *config.Config, filename string) error {
	if err := logging.Init(cfg.Log.LogDir, filename, cfg.Log.LogLevel, cfg.Log.LogAge, cfg.Log.DisableCPrint); err != nil {
		return errors.New(errors.ErrConfig, err)
	}
	return nil
}

// SilenceCobra leaves error and usage reporting to Run, and makes flag
// parsing failures usage errors.
func SilenceCobra(cmd *cobra.Command) {
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.New(errors.ErrUsage, err)
	})
}

// UsageArgs wraps an args validator so its failures carry errors.ErrUsage.
func UsageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return errors.New(errors.ErrUsage, err)
		}
		return nil
	}
}

// Run executes cmd and returns the process exit status. Usage errors are
// followed by the usage text.
func Run(cmd *cobra.Command, stderr io.Writer) int {
	c, err := cmd.ExecuteC()
	if err == nil {
		return 0
	}
	fmt.Fprintln(stderr, "Error:", err)
	if errors.Code(err) == errors.ErrUsage {
		fmt.Fprint(stderr, c.UsageString())
	}
	logging.VPrint(logging.ERROR, "command failed", logging.LogFormat{"err": err, "code": errors.Code(err)})
	return errors.ExitStatus(err)
}

// Execute runs cmd and exits the process on failure.
func Execute(cmd *cobra.Command) {
	if status := Run(cmd, os.Stderr); status != 0 {
		os.Exit(status)
	}
}
