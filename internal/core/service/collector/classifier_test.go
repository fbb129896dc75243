package collector

import (
	"testing"

	"content-collector/internal/core/model"
)

func TestClassifyMediaPrecedence(t *testing.T) {
	tests := []struct {
		name string
		item model.MediaItem
		want model.ContentKind
	}{
		{"фото", model.MediaItem{Photo: true}, model.KindPhoto},
		{"видео", model.MediaItem{Video: true}, model.KindVideo},
		{"аудио", model.MediaItem{Audio: true}, model.KindAudio},
		{"стикер", model.MediaItem{Sticker: true}, model.KindSticker},
		{"анимация", model.MediaItem{Animation: true}, model.KindAnimation},
		{"документ без флагов", model.MediaItem{FileName: "report.pdf"}, model.KindDocument},
		{"фото важнее видео", model.MediaItem{Photo: true, Video: true}, model.KindPhoto},
		{"видео важнее аудио", model.MediaItem{Video: true, Audio: true}, model.KindVideo},
		{"стикер важнее анимации", model.MediaItem{Sticker: true, Animation: true}, model.KindSticker},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyMedia(&tt.item); got != tt.want {
				t.Errorf("ClassifyMedia() = %s, ожидалось %s", got, tt.want)
			}
		})
	}
}

func TestExtractFirstLink(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantURL    string
		wantDomain string
	}{
		{"ссылка в середине", "читайте тут https://example.com/post/1 подробнее", "https://example.com/post/1", "example.com"},
		{"берётся первая из двух", "https://a.org/x и https://b.org/y", "https://a.org/x", "a.org"},
		{"http без пути", "сайт http://example.org готов", "http://example.org", "example.org"},
		{"ссылка с параметрами", "https://shop.example.com/item?id=5&ref=tg", "https://shop.example.com/item?id=5&ref=tg", "shop.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := ExtractFirstLink(tt.text)
			if info == nil {
				t.Fatal("ссылка не найдена")
			}
			if info.URL != tt.wantURL {
				t.Errorf("URL = %s, ожидалось %s", info.URL, tt.wantURL)
			}
			if info.Domain != tt.wantDomain {
				t.Errorf("Domain = %s, ожидалось %s", info.Domain, tt.wantDomain)
			}
		})
	}
}

func TestExtractFirstLinkNone(t *testing.T) {
	for _, text := range []string{"", "просто текст", "ftp://old.example.com/file"} {
		if info := ExtractFirstLink(text); info != nil {
			t.Errorf("из %q извлечена ссылка %s, ожидалось отсутствие", text, info.URL)
		}
	}
}
