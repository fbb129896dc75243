package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"content-collector/logging"
)

type Config struct {
	TelegramToken      string
	APIID              int
	APIHash            string
	SessionFile        string
	NotificationChatID int64
	DatabasePath       string
	DownloadPath       string
	PollInterval       time.Duration
	GroupFlushDelay    time.Duration
	ErrorBackoff       time.Duration
	LogLevel           string
}

// LoadConfig читает настройки из .env и переменных окружения через viper.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		logging.Log("Система", logrus.WarnLevel, "Файл .env не найден, используются переменные окружения")
	}

	viper.SetDefault("DATABASE_PATH", "data/collector.db")
	viper.SetDefault("DOWNLOAD_PATH", "downloads")
	viper.SetDefault("SESSION_FILE", "session.json")
	viper.SetDefault("POLL_INTERVAL", 10*time.Second)
	viper.SetDefault("GROUP_FLUSH_DELAY", 2*time.Second)
	viper.SetDefault("ERROR_BACKOFF", 5*time.Second)
	viper.SetDefault("LOG_LEVEL", "info")

	viper.AutomaticEnv()

	viper.BindEnv("TELEGRAM_BOT_TOKEN")
	viper.BindEnv("TELEGRAM_API_ID")
	viper.BindEnv("TELEGRAM_API_HASH")
	viper.BindEnv("SESSION_FILE")
	viper.BindEnv("NOTIFICATION_CHAT_ID")
	viper.BindEnv("DATABASE_PATH")
	viper.BindEnv("DOWNLOAD_PATH")

	config := &Config{
		TelegramToken:      viper.GetString("TELEGRAM_BOT_TOKEN"),
		APIID:              viper.GetInt("TELEGRAM_API_ID"),
		APIHash:            viper.GetString("TELEGRAM_API_HASH"),
		SessionFile:        viper.GetString("SESSION_FILE"),
		NotificationChatID: viper.GetInt64("NOTIFICATION_CHAT_ID"),
		DatabasePath:       viper.GetString("DATABASE_PATH"),
		DownloadPath:       viper.GetString("DOWNLOAD_PATH"),
		PollInterval:       viper.GetDuration("POLL_INTERVAL"),
		GroupFlushDelay:    viper.GetDuration("GROUP_FLUSH_DELAY"),
		ErrorBackoff:       viper.GetDuration("ERROR_BACKOFF"),
		LogLevel:           viper.GetString("LOG_LEVEL"),
	}

	if config.APIID == 0 || config.APIHash == "" {
		logging.Log("Система", logrus.PanicLevel, "Не заданы TELEGRAM_API_ID и TELEGRAM_API_HASH")
	}

	return config
}
