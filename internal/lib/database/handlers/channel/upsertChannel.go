package channel

import (
	"time"

	modeldb "content-collector/internal/lib/database/model"
)

// UpsertChannel создаёт канал либо обновляет существующий по тэгу: флаг
// активности, владельца и курсор. Курсор существующего канала при повторной
// регистрации перезаписывается переданным значением.
func (h *HandlerDBChannel) UpsertChannel(tag, name string, active bool, addedBy int64, lastID int64) (*modeldb.Channel, error) {
	existing, err := h.GetChannelByTag(tag)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if existing != nil {
		existing.IsActive = active
		existing.AddedBy = addedBy
		existing.LastMessageID = lastID
		existing.LastCheckAt = now
		if err := h.DB.Save(existing).Error; err != nil {
			return nil, err
		}
		return existing, nil
	}

	ch := modeldb.Channel{
		Tag:           tag,
		Name:          name,
		IsActive:      active,
		AddedBy:       addedBy,
		AddedAt:       now,
		LastMessageID: lastID,
		LastCheckAt:   now,
	}
	if err := h.DB.Create(&ch).Error; err != nil {
		return nil, err
	}
	return &ch, nil
}
