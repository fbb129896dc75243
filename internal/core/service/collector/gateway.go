package collector

import (
	"content-collector/internal/core/model"
	"content-collector/internal/lib/database/handlers"
	"content-collector/internal/lib/storage"
)

// Gateway сохраняет классифицированный контент: сырые байты уходят в приёмник,
// локатор записывается в таблицу своего типа.
type Gateway struct {
	db   *handlers.DBHandlers
	sink *storage.Storage
}

func NewGateway(db *handlers.DBHandlers, sink *storage.Storage) *Gateway {
	return &Gateway{db: db, sink: sink}
}

// SaveText сохраняет текст в приёмник и в таблицу текстов.
func (g *Gateway) SaveText(text string) (uint, error) {
	name := g.sink.GenerateName(model.KindText, "")
	locator, err := g.sink.Store([]byte(text), model.KindText, name)
	if err != nil {
		return 0, err
	}
	return g.db.ContentHandlers.InsertText(locator, text)
}

// SaveMedia сохраняет байты вложения и строку в таблице типа kind.
func (g *Gateway) SaveMedia(kind model.ContentKind, data []byte, originalName string) (uint, error) {
	name := g.sink.GenerateName(kind, originalName)
	locator, err := g.sink.Store(data, kind, name)
	if err != nil {
		return 0, err
	}
	if kind == model.KindDocument {
		return g.db.ContentHandlers.InsertDocument(locator, originalName)
	}
	return g.db.ContentHandlers.InsertMedia(kind, locator)
}

// SaveLink сохраняет ссылку с уникальностью по URL.
func (g *Gateway) SaveLink(info *model.LinkInfo) (uint, error) {
	return g.db.LinkHandlers.UpsertLinkByURL(info.URL, info.Domain)
}
