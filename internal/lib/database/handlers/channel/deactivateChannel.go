package channel

import (
	"time"

	modeldb "content-collector/internal/lib/database/model"
)

// DeactivateChannel выключает мониторинг канала. Курсор сохраняется, чтобы
// повторная активация продолжила с прежнего места. Возвращает false, если
// канал не найден.
func (h *HandlerDBChannel) DeactivateChannel(tag string) (bool, error) {
	result := h.DB.Model(&modeldb.Channel{}).
		Where("tag = ?", tag).
		Updates(map[string]any{
			"is_active":     false,
			"last_check_at": time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
