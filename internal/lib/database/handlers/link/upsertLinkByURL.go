package link

import (
	"gorm.io/gorm/clause"

	modeldb "content-collector/internal/lib/database/model"
)

// UpsertLinkByURL сохраняет ссылку с уникальностью по URL. При конфликте
// возвращается id уже существующей строки.
func (h *HandlerDBLink) UpsertLinkByURL(url, domain string) (uint, error) {
	row := modeldb.Link{URL: url, Domain: domain}
	err := h.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "url"}},
		DoNothing: true,
	}).Create(&row).Error
	if err != nil {
		return 0, err
	}

	// При DoNothing id новой строки не заполняется, перечитываем по ключу.
	if row.ID == 0 {
		if err := h.DB.Where("url = ?", url).First(&row).Error; err != nil {
			return 0, err
		}
	}
	return row.ID, nil
}
