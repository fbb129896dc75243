package modeldb

// По таблице на каждый тип контента. Строки неизменяемы после создания;
// сама таблица дубликаты не отсеивает, за это отвечает индекс отпечатков.

type Text struct {
	ID      uint   `gorm:"primaryKey"`
	Locator string `gorm:"size:250;not null"`
	Body    string `gorm:"not null"`
}

type Photo struct {
	ID      uint   `gorm:"primaryKey"`
	Locator string `gorm:"size:250;not null"`
}

type Video struct {
	ID      uint   `gorm:"primaryKey"`
	Locator string `gorm:"size:250;not null"`
}

type Audio struct {
	ID      uint   `gorm:"primaryKey"`
	Locator string `gorm:"size:250;not null"`
}

type Sticker struct {
	ID      uint   `gorm:"primaryKey"`
	Locator string `gorm:"size:250;not null"`
}

type Animation struct {
	ID      uint   `gorm:"primaryKey"`
	Locator string `gorm:"size:250;not null"`
}

type Document struct {
	ID           uint   `gorm:"primaryKey"`
	Locator      string `gorm:"size:250;not null"`
	OriginalName string `gorm:"size:250"`
}
