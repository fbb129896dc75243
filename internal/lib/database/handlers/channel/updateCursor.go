package channel

import (
	"time"

	modeldb "content-collector/internal/lib/database/model"
)

// UpdateCursor записывает курсор и отметку последней проверки канала.
func (h *HandlerDBChannel) UpdateCursor(tag string, lastID int64) error {
	return h.DB.Model(&modeldb.Channel{}).
		Where("tag = ?", tag).
		Updates(map[string]any{
			"last_message_id": lastID,
			"last_check_at":   time.Now(),
		}).Error
}

// UpdateHeartbeat обновляет отметку последней проверки, не трогая курсор.
func (h *HandlerDBChannel) UpdateHeartbeat(tag string) error {
	return h.DB.Model(&modeldb.Channel{}).
		Where("tag = ?", tag).
		Update("last_check_at", time.Now()).Error
}
