package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"content-collector/internal/lib/database/handlers"
	modeldb "content-collector/internal/lib/database/model"
	"content-collector/logging"
)

// Предел одновременных операций с хранилищем.
const maxOpenConns = 10

func InitDB(dbFilePath string) *handlers.DBHandlers {
	if err := os.MkdirAll(filepath.Dir(dbFilePath), 0755); err != nil {
		logging.Log("Database", logrus.PanicLevel, fmt.Sprintf("Ошибка создания директории базы данных: %v", err))
		return nil
	}

	// Файл для логов запросов базы данных.
	if err := os.MkdirAll("logs", 0755); err != nil {
		logging.Log("Database", logrus.PanicLevel, fmt.Sprintf("Ошибка создания директории логов: %v", err))
		return nil
	}
	logFile, err := os.OpenFile("logs/db_queries.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		logging.Log("Database", logrus.PanicLevel, fmt.Sprintf("Ошибка создания файла логов: %v", err))
		return nil
	}

	newLogger := logger.New(
		log.New(logFile, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(sqlite.Open(dbFilePath), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		logging.Log("Database", logrus.PanicLevel, fmt.Sprintf("Ошибка подключения к базе данных: %v", err))
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		logging.Log("Database", logrus.PanicLevel, fmt.Sprintf("Ошибка доступа к пулу соединений: %v", err))
		return nil
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)

	if err := Migrate(db); err != nil {
		logging.Log("Database", logrus.PanicLevel, fmt.Sprintf("Ошибка автомиграции моделей: %v", err))
		return nil
	}

	logging.Log("Database", logrus.InfoLevel, fmt.Sprintf("База данных готова: %s", dbFilePath))
	return handlers.NewDBHandlers(db)
}

// Migrate создаёт недостающие таблицы всех моделей.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&modeldb.Channel{},
		&modeldb.Text{},
		&modeldb.Photo{},
		&modeldb.Video{},
		&modeldb.Audio{},
		&modeldb.Sticker{},
		&modeldb.Animation{},
		&modeldb.Document{},
		&modeldb.Link{},
		&modeldb.ChannelMessage{},
	)
}
