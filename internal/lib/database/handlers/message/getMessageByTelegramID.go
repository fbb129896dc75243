package message

import (
	"errors"

	"gorm.io/gorm"

	modeldb "content-collector/internal/lib/database/model"
)

// GetMessageByTelegramID возвращает единую запись по ключу
// (канал, id сообщения в Telegram) или nil, если записи ещё нет.
func (h *HandlerDBMessage) GetMessageByTelegramID(channelID uint, telegramMsgID int64) (*modeldb.ChannelMessage, error) {
	var msg modeldb.ChannelMessage
	err := h.DB.Where("channel_id = ? AND telegram_msg_id = ?", channelID, telegramMsgID).First(&msg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &msg, nil
}
