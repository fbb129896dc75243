package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/sirupsen/logrus"

	"content-collector/config"
	"content-collector/internal/core/service/collector"
	"content-collector/internal/core/service/telegram"
	"content-collector/internal/lib/database"
	"content-collector/internal/lib/storage"
	"content-collector/logging"
)

func main() {
	configData := config.LoadConfig()
	logging.SetupLogger(configData.LogLevel)
	logging.Log("Система", logrus.InfoLevel, "Запуск content-collector")

	dbHandlers := database.InitDB(configData.DatabasePath)
	sink := storage.NewStorage(configData.DownloadPath)

	client := telegram.NewClient(configData.APIID, configData.APIHash, configData.SessionFile)
	notifier := telegram.NewNotifier(configData.TelegramToken, configData.NotificationChatID)

	index := collector.NewFingerprintIndex()
	gateway := collector.NewGateway(dbHandlers, sink)
	reconciler := collector.NewReconciler(dbHandlers)
	processor := collector.NewProcessor(index, gateway, reconciler, client)
	monitor := collector.NewMonitor(
		client, notifier, dbHandlers, processor,
		configData.PollInterval, configData.ErrorBackoff, configData.GroupFlushDelay,
	)

	if err := monitor.LoadChannels(); err != nil {
		logging.Log("Система", logrus.PanicLevel, fmt.Sprintf("%v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := client.Run(ctx); err != nil && ctx.Err() == nil {
			logging.Log("Telegram", logrus.ErrorLevel, fmt.Sprintf("MTProto клиент завершился: %v", err))
			cancel()
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		monitor.Run(ctx)
	}()

	logging.Log("Система", logrus.InfoLevel, "Сборщик приступил к работе...")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigChan:
		logging.Log("Система", logrus.InfoLevel, "Получен сигнал остановки")
	case <-ctx.Done():
	}

	// Отмена контекста останавливает цикл после текущей итерации; буферы
	// незавершённых медиа-групп при этом отбрасываются.
	cancel()
	wg.Wait()
	logging.Log("Система", logrus.InfoLevel, "Сборщик остановлен")
}
