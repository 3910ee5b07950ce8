package config

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ytstill/internal/dirs"
)

// Init wires Viper with config paths, env, defaults, and flag bindings.
// Configuration is read-only: the tool never writes settings back. Errors
// are returned for optional handling by the caller.
func Init(root *cobra.Command) error {
	if cfgDir, err := dirs.ConfigDir(); err == nil {
		viper.AddConfigPath(cfgDir)
	}
	viper.SetConfigName("config") // supports config.{yaml|yml|json|toml}

	// Environment variables: YTSTILL_*
	viper.SetEnvPrefix("YTSTILL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Bind root persistent flags to Viper keys
	_ = viper.BindPFlag("start_dir", root.PersistentFlags().Lookup("start-dir"))
	_ = viper.BindPFlag("out_dir", root.PersistentFlags().Lookup("out-dir"))
	_ = viper.BindPFlag("framerate", root.PersistentFlags().Lookup("framerate"))
	_ = viper.BindPFlag("ffmpeg", root.PersistentFlags().Lookup("ffmpeg"))
	_ = viper.BindPFlag("ffprobe", root.PersistentFlags().Lookup("ffprobe"))
	_ = viper.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))

	// Read config file if present (ignore not found)
	_ = viper.ReadInConfig()

	return nil
}
