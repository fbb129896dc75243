package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"content-collector/internal/core/model"
	"content-collector/logging"
)

// Storage — приёмник сырых байтов: раскладывает файлы по директориям типов
// контента и возвращает локатор сохранённого файла.
type Storage struct {
	BasePath string
}

func NewStorage(basePath string) *Storage {
	for _, kind := range model.StorageKinds {
		dir := filepath.Join(basePath, string(kind))
		if err := os.MkdirAll(dir, 0755); err != nil {
			logging.Log("Storage", logrus.PanicLevel, fmt.Sprintf("Ошибка создания директории %s: %v", dir, err))
		}
	}
	logging.Log("Storage", logrus.InfoLevel, fmt.Sprintf("Директория выгрузки готова: %s", basePath))

	return &Storage{BasePath: basePath}
}

// Store записывает байты под переданным именем в директорию типа
// и возвращает локатор.
func (s *Storage) Store(data []byte, kind model.ContentKind, name string) (string, error) {
	path := filepath.Join(s.BasePath, string(kind), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("ошибка записи файла %s: %w", path, err)
	}
	return path, nil
}

// GenerateName возвращает устойчивое к коллизиям имя файла в рамках типа.
// Расширение берётся из оригинального имени, если оно известно.
func (s *Storage) GenerateName(kind model.ContentKind, originalName string) string {
	id := uuid.NewString()
	if originalName != "" {
		if idx := strings.LastIndex(originalName, "."); idx >= 0 && idx < len(originalName)-1 {
			return fmt.Sprintf("%s_%s%s", kind, id, originalName[idx:])
		}
	}
	return fmt.Sprintf("%s_%s", kind, id)
}
