package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"content-collector/internal/core/model"
)

func TestNewStorageCreatesKindDirs(t *testing.T) {
	base := t.TempDir()
	NewStorage(base)

	for _, kind := range model.StorageKinds {
		info, err := os.Stat(filepath.Join(base, string(kind)))
		if err != nil {
			t.Errorf("директория %s не создана: %v", kind, err)
			continue
		}
		if !info.IsDir() {
			t.Errorf("%s не является директорией", kind)
		}
	}
}

func TestStoreWritesFile(t *testing.T) {
	s := NewStorage(t.TempDir())

	locator, err := s.Store([]byte("содержимое поста"), model.KindText, "text_abc.txt")
	if err != nil {
		t.Fatalf("Store: %v", err)
	}

	data, err := os.ReadFile(locator)
	if err != nil {
		t.Fatalf("файл по локатору не читается: %v", err)
	}
	if string(data) != "содержимое поста" {
		t.Errorf("содержимое файла: %q", data)
	}
}

func TestGenerateName(t *testing.T) {
	s := NewStorage(t.TempDir())

	name := s.GenerateName(model.KindPhoto, "photo.jpg")
	if !strings.HasPrefix(name, "photo_") {
		t.Errorf("имя без префикса типа: %s", name)
	}
	if !strings.HasSuffix(name, ".jpg") {
		t.Errorf("расширение оригинала потеряно: %s", name)
	}

	if name := s.GenerateName(model.KindVideo, ""); strings.Contains(name, ".") {
		t.Errorf("имя без оригинала получило расширение: %s", name)
	}

	// Имена уникальны даже для одинаковых оригиналов.
	if s.GenerateName(model.KindPhoto, "photo.jpg") == s.GenerateName(model.KindPhoto, "photo.jpg") {
		t.Error("сгенерированы одинаковые имена")
	}
}
