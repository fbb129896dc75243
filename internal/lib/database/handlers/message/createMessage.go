package message

import modeldb "content-collector/internal/lib/database/model"

// CreateMessage вставляет единую запись сообщения и возвращает её id.
func (h *HandlerDBMessage) CreateMessage(msg *modeldb.ChannelMessage) (uint, error) {
	if err := h.DB.Create(msg).Error; err != nil {
		return 0, err
	}
	return msg.ID, nil
}
