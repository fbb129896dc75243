package channel

import (
	"errors"

	"gorm.io/gorm"

	modeldb "content-collector/internal/lib/database/model"
)

// GetChannelByTag возвращает канал по тэгу или nil, если канал не известен.
func (h *HandlerDBChannel) GetChannelByTag(tag string) (*modeldb.Channel, error) {
	var ch modeldb.Channel
	err := h.DB.Where("tag = ?", tag).First(&ch).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ch, nil
}
