package collector

import (
	"net/url"
	"regexp"

	"content-collector/internal/core/model"
)

// Нестрогий шаблон URL, достаточный для выделения первой ссылки из текста.
var urlPattern = regexp.MustCompile(`https?://[a-zA-Z0-9$\-_@.&+!*(),%/:?#=~]+`)

// ClassifyMedia относит вложение к одному типу контента по фиксированному
// приоритету: photo > video > audio > sticker > animation > document.
// Документ — запасной вариант для любого нераспознанного вложения.
func ClassifyMedia(item *model.MediaItem) model.ContentKind {
	switch {
	case item.Photo:
		return model.KindPhoto
	case item.Video:
		return model.KindVideo
	case item.Audio:
		return model.KindAudio
	case item.Sticker:
		return model.KindSticker
	case item.Animation:
		return model.KindAnimation
	default:
		return model.KindDocument
	}
}

// ExtractFirstLink находит первую http/https ссылку в тексте и разбирает её
// на URL и домен. Возвращает nil, если ссылок нет или URL не разбирается.
func ExtractFirstLink(text string) *model.LinkInfo {
	if text == "" {
		return nil
	}

	raw := urlPattern.FindString(text)
	if raw == "" {
		return nil
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return nil
	}

	return &model.LinkInfo{URL: raw, Domain: parsed.Host}
}
