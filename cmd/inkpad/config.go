package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/arqv/inkpad"
)

// conf resolves the CLI configuration: flags > env (INKPAD_*) > .env file >
// config file > defaults. The credential lives here, in its own slot,
// outside the note collection the core owns.
var conf *viper.Viper

func loadConfig() {
	conf = viper.New()

	conf.SetDefault("server_url", "http://localhost:3001")
	conf.SetDefault("data_dir", defaultDataDir())
	conf.SetDefault("token", "")

	// Load .env if it exists (ignore if it does not).
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			slog.Warn("failed to load .env", "error", err)
		}
	}

	conf.SetEnvPrefix("INKPAD")
	conf.AutomaticEnv()

	// Optional config file: ~/.config/inkpad/config.yaml
	if dir, err := os.UserConfigDir(); err == nil {
		conf.SetConfigName("config")
		conf.SetConfigType("yaml")
		conf.AddConfigPath(filepath.Join(dir, "inkpad"))
		if err := conf.ReadInConfig(); err == nil {
			slog.Debug("loaded config file", "path", conf.ConfigFileUsed())
		}
	}

	// Flags win over everything.
	if f := rootCmd.PersistentFlags().Lookup("data-dir"); f != nil && f.Changed {
		conf.Set("data_dir", f.Value.String())
	}
	if f := rootCmd.PersistentFlags().Lookup("server"); f != nil && f.Changed {
		conf.Set("server_url", f.Value.String())
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share", "inkpad")
}

// storeOptions assembles the wiring options shared by every subcommand.
func storeOptions() []inkpad.Option {
	return []inkpad.Option{
		inkpad.WithCredential(conf.GetString("token")),
		inkpad.WithServerURL(conf.GetString("server_url")),
		inkpad.WithLogger(slog.Default()),
	}
}

func dataDir() string {
	return conf.GetString("data_dir")
}
