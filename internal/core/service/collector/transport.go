package collector

import (
	"context"

	"content-collector/internal/core/model"
)

// Transport — клиент платформы, через который сборщик читает каналы.
// Порядок сообщений IterateSince не гарантирован, гарантируется только
// id > minID.
type Transport interface {
	Resolve(ctx context.Context, identifier string) (model.ChannelRef, error)
	IterateSince(ctx context.Context, ref model.ChannelRef, minID int64) ([]model.ChannelMessage, error)
	Last(ctx context.Context, ref model.ChannelRef, limit int) ([]model.ChannelMessage, error)
	Download(ctx context.Context, msg model.ChannelMessage) ([]byte, error)
}

// Notifier отправляет итоговое уведомление цикла.
type Notifier interface {
	Send(ctx context.Context, text string) error
}
