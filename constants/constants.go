package constants

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	audioExtensionsKey = "audio_extensions"
	backupSuffixKey    = "backup_suffix"
	portKey            = "port"
	watchIntervalKey   = "watch_interval"
	debounceKey        = "debounce"
)

func init() {
	viper.SetEnvPrefix("KEYSOUND")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(audioExtensionsKey, "ogg,wav")
	viper.SetDefault(backupSuffixKey, "_backup")
	viper.SetDefault(portKey, "8080")
	viper.SetDefault(watchIntervalKey, "500ms")
	viper.SetDefault(debounceKey, "300ms")
}

// LoadConfigFile merges a YAML (or any viper-supported) config file over the
// defaults. Environment variables still take precedence.
func LoadConfigFile(path string) error {
	if path == "" {
		return nil
	}
	viper.SetConfigFile(path)
	return viper.ReadInConfig()
}

// GetAudioExtensions returns lowercase extensions without the leading dot.
func GetAudioExtensions() []string {
	var res []string
	for _, ext := range strings.Split(viper.GetString(audioExtensionsKey), ",") {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext != "" {
			res = append(res, ext)
		}
	}
	return res
}

func GetBackupSuffix() string {
	return viper.GetString(backupSuffixKey)
}

func GetPort() string {
	return viper.GetString(portKey)
}

func GetWatchInterval() time.Duration {
	d := viper.GetDuration(watchIntervalKey)
	if d <= 0 {
		return 500 * time.Millisecond
	}
	return d
}

func GetDebounce() time.Duration {
	d := viper.GetDuration(debounceKey)
	if d <= 0 {
		return 300 * time.Millisecond
	}
	return d
}
