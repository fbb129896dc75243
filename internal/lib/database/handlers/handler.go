package handlers

import (
	"gorm.io/gorm"

	"content-collector/internal/lib/database/handlers/channel"
	"content-collector/internal/lib/database/handlers/content"
	"content-collector/internal/lib/database/handlers/link"
	"content-collector/internal/lib/database/handlers/message"
)

type DBHandlers struct {
	DB              *gorm.DB
	ChannelHandlers *channel.HandlerDBChannel
	ContentHandlers *content.HandlerDBContent
	LinkHandlers    *link.HandlerDBLink
	MessageHandlers *message.HandlerDBMessage
}

// NewDBHandlers собирает хендлеры над уже открытым подключением.
func NewDBHandlers(db *gorm.DB) *DBHandlers {
	return &DBHandlers{
		DB:              db,
		ChannelHandlers: channel.NewHandlerDBChannel(db),
		ContentHandlers: content.NewHandlerDBContent(db),
		LinkHandlers:    link.NewHandlerDBLink(db),
		MessageHandlers: message.NewHandlerDBMessage(db),
	}
}
