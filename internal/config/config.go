package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config — вся конфигурация приложения.
// Значения читаются viper из файла конфигурации или переменных окружения.
type Config struct {
	Telegram TelegramConfig `mapstructure:"telegram"`
	Chat     ChatConfig     `mapstructure:"chat"`
	Server   ServerConfig   `mapstructure:"server"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Forum    ForumConfig    `mapstructure:"forum"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type TelegramConfig struct {
	Token string `mapstructure:"token"`
}

// ChatConfig — идентификаторы группы обсуждений и канала-источника.
// Отсутствие не фатально: зависящие от них обработчики молча отключаются.
type ChatConfig struct {
	GroupID   int64 `mapstructure:"group_id"`
	ChannelID int64 `mapstructure:"channel_id"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type StorageConfig struct {
	SQLiteDSN string `mapstructure:"sqlite_dsn"`
}

type ForumConfig struct {
	BaseURL   string `mapstructure:"base_url"`
	Domain    string `mapstructure:"domain"`
	AppSecret string `mapstructure:"app_secret"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load читает конфигурацию из необязательного файла и переменных ETHERBOT_*.
func Load(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("ETHERBOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv не подхватывает ключи без привязки при Unmarshal
	for _, key := range []string{
		"telegram.token",
		"chat.group_id", "chat.channel_id",
		"server.port",
		"storage.sqlite_dsn",
		"forum.base_url", "forum.domain", "forum.app_secret",
		"logging.level", "logging.format",
	} {
		_ = v.BindEnv(key)
	}

	v.SetDefault("server.port", 8000)
	v.SetDefault("storage.sqlite_dsn", "etherbot.db")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
