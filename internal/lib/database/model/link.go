package modeldb

// Link — ссылка из текста сообщения. URL уникален, повторная вставка
// возвращает существующую строку.
type Link struct {
	ID     uint   `gorm:"primaryKey"`
	URL    string `gorm:"size:500;uniqueIndex;not null"`
	Domain string `gorm:"size:100;index"`
}
