package telegram

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gotd/td/session"
	"github.com/gotd/td/telegram"
	"github.com/gotd/td/telegram/downloader"
	"github.com/gotd/td/tg"
	"github.com/sirupsen/logrus"

	"content-collector/internal/core/model"
	"content-collector/logging"
)

const historyBatchSize = 100

// Client — MTProto-клиент каналов: разрешение тэгов, чтение истории и
// скачивание медиа. Реализует интерфейс транспорта сборщика.
type Client struct {
	client     *telegram.Client
	downloader *downloader.Downloader
	ready      chan struct{}
}

func NewClient(apiID int, apiHash, sessionFile string) *Client {
	c := &Client{ready: make(chan struct{})}
	c.client = telegram.NewClient(apiID, apiHash, telegram.Options{
		SessionStorage: &session.FileStorage{Path: sessionFile},
	})
	c.downloader = downloader.NewDownloader()
	return c
}

// Run держит соединение с Telegram до отмены контекста. Сессия должна быть
// авторизована заранее: жизненный цикл авторизации сервис не ведёт.
func (c *Client) Run(ctx context.Context) error {
	return c.client.Run(ctx, func(ctx context.Context) error {
		status, err := c.client.Auth().Status(ctx)
		if err != nil {
			return fmt.Errorf("ошибка проверки авторизации: %w", err)
		}
		if !status.Authorized {
			return fmt.Errorf("сессия MTProto не авторизована, выполните вход отдельно")
		}

		logging.Log("Telegram", logrus.InfoLevel, "MTProto клиент авторизован и готов")
		close(c.ready)
		<-ctx.Done()
		return nil
	})
}

// Ready закрывается после успешной авторизации клиента.
func (c *Client) Ready() <-chan struct{} {
	return c.ready
}

func (c *Client) waitReady(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.ready:
		return nil
	}
}

// Resolve находит канал по тэгу вида @username.
func (c *Client) Resolve(ctx context.Context, identifier string) (model.ChannelRef, error) {
	if err := c.waitReady(ctx); err != nil {
		return model.ChannelRef{}, err
	}

	username := strings.TrimPrefix(identifier, "@")
	resolved, err := c.client.API().ContactsResolveUsername(ctx, username)
	if err != nil {
		return model.ChannelRef{}, fmt.Errorf("не удалось разрешить %s: %w", identifier, err)
	}

	peer, ok := resolved.Peer.(*tg.PeerChannel)
	if !ok {
		return model.ChannelRef{}, fmt.Errorf("неожиданный тип peer для %s: %T", identifier, resolved.Peer)
	}

	ref := model.ChannelRef{ID: peer.ChannelID, Tag: identifier}
	for _, chat := range resolved.Chats {
		if ch, ok := chat.(*tg.Channel); ok && ch.ID == peer.ChannelID {
			ref.AccessHash = ch.AccessHash
			ref.Title = ch.Title
			break
		}
	}
	return ref, nil
}

// IterateSince возвращает все сообщения канала с id строго больше minID.
// Telegram отдаёт историю от новых к старым, порядок результата не
// гарантируется за пределами фильтра по id.
func (c *Client) IterateSince(ctx context.Context, ref model.ChannelRef, minID int64) ([]model.ChannelMessage, error) {
	if err := c.waitReady(ctx); err != nil {
		return nil, err
	}

	var messages []model.ChannelMessage
	offsetID := 0

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		request := &tg.MessagesGetHistoryRequest{
			Peer:     c.inputPeer(ref),
			Limit:    historyBatchSize,
			MinID:    int(minID),
			OffsetID: offsetID,
		}
		history, err := c.client.API().MessagesGetHistory(ctx, request)
		if err != nil {
			return nil, fmt.Errorf("ошибка получения истории %s: %w", ref.Tag, err)
		}

		batch := extractHistory(history)
		if len(batch) == 0 {
			break
		}

		for _, raw := range batch {
			msg, ok := parseMessage(raw)
			if !ok {
				continue
			}
			messages = append(messages, msg)
			if offsetID == 0 || int(msg.ID) < offsetID {
				offsetID = int(msg.ID)
			}
		}

		if len(batch) < historyBatchSize {
			break
		}
	}

	return messages, nil
}

// Last возвращает последние limit сообщений канала.
func (c *Client) Last(ctx context.Context, ref model.ChannelRef, limit int) ([]model.ChannelMessage, error) {
	if err := c.waitReady(ctx); err != nil {
		return nil, err
	}

	history, err := c.client.API().MessagesGetHistory(ctx, &tg.MessagesGetHistoryRequest{
		Peer:  c.inputPeer(ref),
		Limit: limit,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка получения истории %s: %w", ref.Tag, err)
	}

	var messages []model.ChannelMessage
	for _, raw := range extractHistory(history) {
		if msg, ok := parseMessage(raw); ok {
			messages = append(messages, msg)
			if len(messages) >= limit {
				break
			}
		}
	}
	return messages, nil
}

// Download скачивает байты вложения. Для сообщений без поддерживаемого медиа
// возвращается пустой срез.
func (c *Client) Download(ctx context.Context, msg model.ChannelMessage) ([]byte, error) {
	if msg.Media == nil || msg.Media.Ref == nil {
		return nil, nil
	}

	var location tg.InputFileLocationClass
	switch media := msg.Media.Ref.(type) {
	case *tg.MessageMediaPhoto:
		photo, ok := media.Photo.(*tg.Photo)
		if !ok {
			return nil, nil
		}
		location = &tg.InputPhotoFileLocation{
			ID:            photo.ID,
			AccessHash:    photo.AccessHash,
			FileReference: photo.FileReference,
			ThumbSize:     largestPhotoSize(photo),
		}
	case *tg.MessageMediaDocument:
		doc, ok := media.Document.(*tg.Document)
		if !ok {
			return nil, nil
		}
		location = &tg.InputDocumentFileLocation{
			ID:            doc.ID,
			AccessHash:    doc.AccessHash,
			FileReference: doc.FileReference,
		}
	default:
		return nil, nil
	}

	var buf bytes.Buffer
	if _, err := c.downloader.Download(c.client.API(), location).Stream(ctx, &buf); err != nil {
		return nil, fmt.Errorf("ошибка скачивания медиа сообщения %d: %w", msg.ID, err)
	}
	return buf.Bytes(), nil
}

func (c *Client) inputPeer(ref model.ChannelRef) tg.InputPeerClass {
	return &tg.InputPeerChannel{
		ChannelID:  ref.ID,
		AccessHash: ref.AccessHash,
	}
}

func extractHistory(history tg.MessagesMessagesClass) []tg.MessageClass {
	switch result := history.(type) {
	case *tg.MessagesMessages:
		return result.Messages
	case *tg.MessagesChannelMessages:
		return result.Messages
	default:
		return nil
	}
}

// parseMessage переводит сообщение MTProto в модель сборщика. Сервисные
// сообщения возвращаются пустыми: они дают запись-заглушку без контента.
func parseMessage(raw tg.MessageClass) (model.ChannelMessage, bool) {
	switch m := raw.(type) {
	case *tg.Message:
		msg := model.ChannelMessage{
			ID:   int64(m.ID),
			Date: unixTime(m.Date),
			Text: m.Message,
		}
		if m.GroupedID != 0 {
			msg.GroupID = strconv.FormatInt(m.GroupedID, 10)
		}
		msg.Media = parseMedia(m.Media)
		return msg, true
	case *tg.MessageService:
		return model.ChannelMessage{
			ID:   int64(m.ID),
			Date: unixTime(m.Date),
		}, true
	default:
		return model.ChannelMessage{}, false
	}
}

func parseMedia(media tg.MessageMediaClass) *model.MediaItem {
	switch m := media.(type) {
	case *tg.MessageMediaPhoto:
		return &model.MediaItem{Photo: true, FileName: "photo.jpg", Ref: m}
	case *tg.MessageMediaDocument:
		doc, ok := m.Document.(*tg.Document)
		if !ok {
			return nil
		}
		item := &model.MediaItem{Ref: m}
		for _, attr := range doc.Attributes {
			switch a := attr.(type) {
			case *tg.DocumentAttributeVideo:
				item.Video = true
			case *tg.DocumentAttributeAudio:
				item.Audio = true
			case *tg.DocumentAttributeSticker:
				item.Sticker = true
			case *tg.DocumentAttributeAnimated:
				item.Animation = true
			case *tg.DocumentAttributeFilename:
				item.FileName = a.FileName
			}
		}
		return item
	default:
		return nil
	}
}

func unixTime(ts int) time.Time {
	return time.Unix(int64(ts), 0)
}

func largestPhotoSize(photo *tg.Photo) string {
	size := ""
	for _, s := range photo.Sizes {
		if ps, ok := s.(*tg.PhotoSize); ok {
			size = ps.Type
		}
	}
	return size
}
