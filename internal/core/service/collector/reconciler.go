package collector

import (
	"time"

	"content-collector/internal/core/model"
	"content-collector/internal/lib/database/handlers"
	modeldb "content-collector/internal/lib/database/model"
)

// ContentRefs — ссылки на строки контента, полученные для одного сообщения.
// Заполняется не более одной ссылки на тип.
type ContentRefs struct {
	TextID      *uint
	PhotoID     *uint
	VideoID     *uint
	AudioID     *uint
	DocumentID  *uint
	StickerID   *uint
	AnimationID *uint
	LinkID      *uint
}

// Set проставляет ссылку для типа kind.
func (r *ContentRefs) Set(kind model.ContentKind, id uint) {
	switch kind {
	case model.KindText:
		r.TextID = &id
	case model.KindPhoto:
		r.PhotoID = &id
	case model.KindVideo:
		r.VideoID = &id
	case model.KindAudio:
		r.AudioID = &id
	case model.KindDocument:
		r.DocumentID = &id
	case model.KindSticker:
		r.StickerID = &id
	case model.KindAnimation:
		r.AnimationID = &id
	case model.KindLink:
		r.LinkID = &id
	}
}

// Reconciler идемпотентно создаёт единую запись сообщения.
type Reconciler struct {
	db *handlers.DBHandlers
}

func NewReconciler(db *handlers.DBHandlers) *Reconciler {
	return &Reconciler{db: db}
}

// Reconcile проверяет наличие записи по ключу (канал, id сообщения) и при
// отсутствии создаёт её. Повторная обработка того же сообщения — no-op.
// Возвращает true, если запись была создана.
func (r *Reconciler) Reconcile(channelID uint, telegramMsgID int64, date time.Time, refs ContentRefs, fingerprint string) (bool, error) {
	existing, err := r.db.MessageHandlers.GetMessageByTelegramID(channelID, telegramMsgID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	msg := modeldb.ChannelMessage{
		ChannelID:     channelID,
		TelegramMsgID: telegramMsgID,
		CreationTime:  normalizeTime(date),
		FileHash:      fingerprint,
		TextID:        refs.TextID,
		PhotoID:       refs.PhotoID,
		VideoID:       refs.VideoID,
		AudioID:       refs.AudioID,
		DocumentID:    refs.DocumentID,
		StickerID:     refs.StickerID,
		AnimationID:   refs.AnimationID,
		LinkID:        refs.LinkID,
	}
	if _, err := r.db.MessageHandlers.CreateMessage(&msg); err != nil {
		return false, err
	}
	return true, nil
}

// normalizeTime отбрасывает часовой пояс, сохраняя настенное время.
// Нулевое время заменяется текущим.
func normalizeTime(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
