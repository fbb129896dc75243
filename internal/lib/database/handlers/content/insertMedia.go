package content

import (
	"fmt"

	"content-collector/internal/core/model"
	modeldb "content-collector/internal/lib/database/model"
)

// InsertMedia сохраняет локатор медиа в таблицу своего типа и возвращает id
// строки. Для документов используется InsertDocument.
func (h *HandlerDBContent) InsertMedia(kind model.ContentKind, locator string) (uint, error) {
	switch kind {
	case model.KindPhoto:
		row := modeldb.Photo{Locator: locator}
		if err := h.DB.Create(&row).Error; err != nil {
			return 0, err
		}
		return row.ID, nil
	case model.KindVideo:
		row := modeldb.Video{Locator: locator}
		if err := h.DB.Create(&row).Error; err != nil {
			return 0, err
		}
		return row.ID, nil
	case model.KindAudio:
		row := modeldb.Audio{Locator: locator}
		if err := h.DB.Create(&row).Error; err != nil {
			return 0, err
		}
		return row.ID, nil
	case model.KindSticker:
		row := modeldb.Sticker{Locator: locator}
		if err := h.DB.Create(&row).Error; err != nil {
			return 0, err
		}
		return row.ID, nil
	case model.KindAnimation:
		row := modeldb.Animation{Locator: locator}
		if err := h.DB.Create(&row).Error; err != nil {
			return 0, err
		}
		return row.ID, nil
	default:
		return 0, fmt.Errorf("неизвестный тип медиа: %s", kind)
	}
}
