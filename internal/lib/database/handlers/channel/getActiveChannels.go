package channel

import modeldb "content-collector/internal/lib/database/model"

// GetActiveChannels возвращает все каналы с включённым мониторингом.
func (h *HandlerDBChannel) GetActiveChannels() ([]modeldb.Channel, error) {
	var channels []modeldb.Channel
	err := h.DB.Where("is_active = ?", true).Find(&channels).Error
	if err != nil {
		return nil, err
	}
	return channels, nil
}
