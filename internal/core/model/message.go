package model

import "time"

// ChannelRef — разрешённый канал платформы.
type ChannelRef struct {
	ID         int64
	AccessHash int64
	Tag        string
	Title      string
}

// MediaItem описывает вложение сообщения. Флаги не взаимоисключающие:
// итоговый тип определяет классификатор по фиксированному приоритету.
// Ref — непрозрачный дескриптор транспорта для скачивания байтов.
type MediaItem struct {
	Photo     bool
	Video     bool
	Audio     bool
	Sticker   bool
	Animation bool
	FileName  string
	Ref       any
}

// ChannelMessage — сообщение канала в том виде, в котором его отдаёт транспорт.
type ChannelMessage struct {
	ID      int64
	Date    time.Time
	Text    string
	GroupID string
	Media   *MediaItem
}
