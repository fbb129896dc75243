package content

import modeldb "content-collector/internal/lib/database/model"

// InsertDocument сохраняет документ вместе с оригинальным именем файла.
func (h *HandlerDBContent) InsertDocument(locator, originalName string) (uint, error) {
	row := modeldb.Document{Locator: locator, OriginalName: originalName}
	if err := h.DB.Create(&row).Error; err != nil {
		return 0, err
	}
	return row.ID, nil
}
