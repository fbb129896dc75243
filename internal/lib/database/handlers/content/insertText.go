package content

import modeldb "content-collector/internal/lib/database/model"

// InsertText сохраняет текст сообщения и возвращает id строки.
func (h *HandlerDBContent) InsertText(locator, body string) (uint, error) {
	row := modeldb.Text{Locator: locator, Body: body}
	if err := h.DB.Create(&row).Error; err != nil {
		return 0, err
	}
	return row.ID, nil
}
