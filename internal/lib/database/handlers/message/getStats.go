package message

import modeldb "content-collector/internal/lib/database/model"

// Stats — агрегированная статистика сохранённых данных.
type Stats struct {
	Channels       int64
	ActiveChannels int64
	Messages       int64
	Texts          int64
	Photos         int64
	Videos         int64
	Audios         int64
	Documents      int64
	Stickers       int64
	Animations     int64
	Links          int64
	UniqueLinks    int64
	UniqueDomains  int64
	Recent         []modeldb.ChannelMessage
}

// GetStats собирает счётчики по каналам, сообщениям и типам контента,
// а также пять последних записей.
func (h *HandlerDBMessage) GetStats() (*Stats, error) {
	var s Stats

	if err := h.DB.Model(&modeldb.Channel{}).Count(&s.Channels).Error; err != nil {
		return nil, err
	}
	if err := h.DB.Model(&modeldb.Channel{}).Where("is_active = ?", true).Count(&s.ActiveChannels).Error; err != nil {
		return nil, err
	}
	if err := h.DB.Model(&modeldb.ChannelMessage{}).Count(&s.Messages).Error; err != nil {
		return nil, err
	}

	kindCounts := []struct {
		column string
		dest   *int64
	}{
		{"text_id", &s.Texts},
		{"photo_id", &s.Photos},
		{"video_id", &s.Videos},
		{"audio_id", &s.Audios},
		{"document_id", &s.Documents},
		{"sticker_id", &s.Stickers},
		{"animation_id", &s.Animations},
		{"link_id", &s.Links},
	}
	for _, kc := range kindCounts {
		err := h.DB.Model(&modeldb.ChannelMessage{}).
			Where(kc.column + " IS NOT NULL").
			Count(kc.dest).Error
		if err != nil {
			return nil, err
		}
	}

	if err := h.DB.Model(&modeldb.Link{}).Count(&s.UniqueLinks).Error; err != nil {
		return nil, err
	}
	if err := h.DB.Model(&modeldb.Link{}).Distinct("domain").Count(&s.UniqueDomains).Error; err != nil {
		return nil, err
	}

	err := h.DB.Order("creation_time DESC").Limit(5).Find(&s.Recent).Error
	if err != nil {
		return nil, err
	}

	return &s, nil
}
