// Package where resolves the platform-specific filesystem paths used by the application.
package where

import (
	"os"
	"path/filepath"

	"github.com/geniuskouta/nakano-yt-2000/constant"
	"github.com/geniuskouta/nakano-yt-2000/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath is the environment variable used to override the configuration directory.
const EnvConfigPath = "NAKANO_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the configuration directory.
// NAKANO_CONFIG_PATH takes precedence over the user config dir of the platform.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Nakano))
}

// EnvFile resolves the dotenv file read from the config directory at startup.
func EnvFile() string {
	return filepath.Join(Config(), constant.Nakano+".env")
}

// Cache resolves the persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Nakano))
}

// Logs resolves the directory holding the daily log files.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Session resolves the file remembering which video each deck had loaded.
func Session() string {
	return filepath.Join(Cache(), "session.json")
}

// Sockets resolves the directory for the mpv IPC sockets of the running decks.
func Sockets() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.Nakano))
}
