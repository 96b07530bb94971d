package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the backing store.
type Config interface {
	BasePath() string
	Backend() string
}

// FileConfig is the config read from .daybook.yaml, the environment and
// defaults.
type FileConfig struct {
	Path            string   `json:"path" yaml:"path"`
	Kind            string   `json:"backend" yaml:"backend"`
	DefaultTasks    []string `json:"default_tasks" yaml:"default_tasks"`
	DefaultWellness []string `json:"default_wellness" yaml:"default_wellness"`
	Quotes          []string `json:"quotes,omitempty" yaml:"quotes,omitempty"`
	LogLevel        string   `json:"log_level" yaml:"log_level"`
	// File is the config file that was read, empty when none was found.
	File string `json:"-" yaml:"-"`

	home string
}

// LoadConfig reads .daybook.yaml from $DAYBOOK_CONFIG_PATH, the working
// directory or the home directory. An explicit file overrides the search.
// DAYBOOK_* environment variables override file values.
func LoadConfig(file string) (*FileConfig, error) {
	v := viper.New()
	v.SetDefault("backend", BackendDiskv)
	v.SetDefault("default_tasks", []string{})
	v.SetDefault("default_wellness", []string{})
	v.SetDefault("log_level", "warn")
	v.SetEnvPrefix("DAYBOOK")
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(".daybook") // .yaml is implicit
		if override := os.Getenv("DAYBOOK_CONFIG_PATH"); override != "" {
			v.AddConfigPath(override)
		}
		v.AddConfigPath("./")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("expand path %q: %w", v.GetString("path"), err)
	}
	home, _ := homedir.Dir()

	return &FileConfig{
		Path:            path,
		Kind:            v.GetString("backend"),
		DefaultTasks:    v.GetStringSlice("default_tasks"),
		DefaultWellness: v.GetStringSlice("default_wellness"),
		Quotes:          v.GetStringSlice("quotes"),
		LogLevel:        v.GetString("log_level"),
		File:            v.ConfigFileUsed(),
		home:            home,
	}, nil
}

// DefaultPath is where backend keeps its data under home when no path is
// configured. diskv uses a directory and sqlite a file, so the two never
// collide.
func DefaultPath(home, backend string) string {
	switch backend {
	case BackendSQLite:
		return filepath.Join(home, ".daybook.sqlite")
	case BackendMemory:
		return ""
	default:
		return filepath.Join(home, ".daybook.db")
	}
}

// BasePath is the configured path, or the backend's default path.
func (f *FileConfig) BasePath() string {
	if f.Path != "" {
		return f.Path
	}
	return DefaultPath(f.home, f.Kind)
}

func (f *FileConfig) Backend() string {
	return f.Kind
}
