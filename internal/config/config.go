package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	appDir         = "ttrk"
	configFileName = "config.yaml"
	envPrefix      = "TTRK"
)

// Configuration keys, as spelled in the config file. Each is also read from
// TTRK_<KEY> in the environment.
const (
	KeyLogFile      = "logfile"
	KeyEditor       = "editor"
	KeyLogLevel     = "log_level"
	KeyDiagnostics  = "log_file"
	DefaultLogLevel = "warn"
)

// Flag names bound onto configuration keys.
const (
	FlagLogFile  = "logfile"
	FlagLogLevel = "log-level"
	FlagConfig   = "config"
)

// Config is the resolved configuration for one invocation.
type Config struct {
	// LogFile overrides where the session log lives. Empty means ~/.ttrk.json.
	LogFile string
	// Editor is the command used by fixup, shell-quoted.
	Editor string
	// LogLevel is the minimum level for diagnostics.
	LogLevel string
	// Diagnostics is an optional file receiving a copy of the diagnostics.
	Diagnostics string
	// Source is the config file that was read, or "" when there was none.
	Source string
}

// DefaultPath returns $XDG_CONFIG_HOME/ttrk/config.yaml without creating it.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, appDir, configFileName)
}

// Load resolves the configuration with precedence flag > env > file > default.
// When path is empty the --config flag, then DefaultPath, is used. A missing
// config file is not an error; a malformed one is.
func Load(flags *pflag.FlagSet, path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return Config{}, err
		}
		if path == "" {
			if flag := flags.Lookup(FlagConfig); flag != nil {
				path = strings.TrimSpace(flag.Value.String())
			}
		}
	}
	if path == "" {
		path = DefaultPath()
	}

	cfg := Config{}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	err := v.ReadInConfig()
	switch {
	case err == nil:
		cfg.Source = v.ConfigFileUsed()
	case errors.Is(err, os.ErrNotExist), errors.As(err, new(viper.ConfigFileNotFoundError)):
	default:
		return Config{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	cfg.LogFile = strings.TrimSpace(v.GetString(KeyLogFile))
	cfg.Editor = strings.TrimSpace(v.GetString(KeyEditor))
	if cfg.Editor == "" {
		cfg.Editor = strings.TrimSpace(os.Getenv("EDITOR"))
	}
	cfg.LogLevel = strings.TrimSpace(v.GetString(KeyLogLevel))
	cfg.Diagnostics = strings.TrimSpace(v.GetString(KeyDiagnostics))
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyEditor, "")
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyDiagnostics, "")
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	bindings := map[string]string{
		KeyLogFile:  FlagLogFile,
		KeyLogLevel: FlagLogLevel,
	}
	for key, name := range bindings {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag --%s: %w", name, err)
		}
	}
	return nil
}
