package model

// ContentKind — тип контента сообщения.
type ContentKind string

const (
	KindText      ContentKind = "text"
	KindPhoto     ContentKind = "photo"
	KindVideo     ContentKind = "video"
	KindAudio     ContentKind = "audio"
	KindDocument  ContentKind = "document"
	KindSticker   ContentKind = "sticker"
	KindAnimation ContentKind = "animation"
	KindLink      ContentKind = "link"
)

// MediaKinds перечисляет типы, для которых существует отдельная таблица
// и директория выгрузки. Порядок соответствует приоритету классификации.
var MediaKinds = []ContentKind{
	KindPhoto, KindVideo, KindAudio, KindSticker, KindAnimation, KindDocument,
}

// StorageKinds — все типы, под которые создаются директории выгрузки.
var StorageKinds = append([]ContentKind{KindText}, MediaKinds...)

// LinkInfo — ссылка, извлечённая из текста сообщения.
type LinkInfo struct {
	URL    string
	Domain string
}
