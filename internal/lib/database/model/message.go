package modeldb

import "time"

// ChannelMessage — единая запись сообщения канала: связывает канал,
// идентификатор сообщения в Telegram и не более одной ссылки на каждый
// тип контента. Запись не изменяется после создания.
type ChannelMessage struct {
	ID            uint `gorm:"primaryKey"`
	ChannelID     uint `gorm:"not null;uniqueIndex:idx_channel_telegram"`
	TelegramMsgID int64 `gorm:"not null;uniqueIndex:idx_channel_telegram"`
	CreationTime  time.Time
	FileHash      string `gorm:"size:64;index"`
	TextID        *uint
	PhotoID       *uint
	VideoID       *uint
	AudioID       *uint
	DocumentID    *uint
	StickerID     *uint
	AnimationID   *uint
	LinkID        *uint
}
