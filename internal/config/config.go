package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	AppPort      int    `mapstructure:"APP_PORT"`
	DatabasePath string `mapstructure:"DATABASE_PATH"`
	LogLevel     string `mapstructure:"LOG_LEVEL"`

	// CleanSave strips click, hover and insertion metadata from every saved line.
	CleanSave bool `mapstructure:"CLEAN_SAVE"`
	// WireFormat selects how text trees are stored: "tree" or "string".
	WireFormat string `mapstructure:"WIRE_FORMAT"`
	// KnownItems limits which items a show_item hover may reference. Empty allows all.
	KnownItems string `mapstructure:"KNOWN_ITEMS"`
}

// KnownItemList splits KnownItems on commas.
func (c *Config) KnownItemList() []string {
	var items []string
	for _, item := range strings.Split(c.KnownItems, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 8000)
	viper.SetDefault("DATABASE_PATH", "/data/chatlog.db")
	viper.SetDefault("LOG_LEVEL", "INFO")
	viper.SetDefault("CLEAN_SAVE", false)
	viper.SetDefault("WIRE_FORMAT", "tree")
	viper.SetDefault("KNOWN_ITEMS", "")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
