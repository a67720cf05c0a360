package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Options collects everything a scan run needs, resolved from flags, the
// config file, and TODOSCAN_* environment variables.
type Options struct {
	Roots     []string
	Excludes  []string
	TodoFile  string
	Readme    string
	Verbosity int
}

// gatherOptions reads the final flag values back through viper, so config
// file and environment defaults apply wherever a flag was not set.
func gatherOptions(args []string) Options {
	return Options{
		Roots:     args,
		Excludes:  viper.GetStringSlice("exclude"),
		TodoFile:  viper.GetString("todos"),
		Readme:    viper.GetString("readme"),
		Verbosity: viper.GetInt("verbose"),
	}
}

// initConfig layers the optional config file and environment variables
// underneath the flag values. A missing config file is the normal case.
func initConfig() {
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "todoscan"))
	}
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	viper.SetEnvPrefix("TODOSCAN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "warning: reading config file: %v\n", err)
		}
	}
}

// absAgainst resolves path relative to base unless it is already absolute.
func absAgainst(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
