package collector

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"content-collector/internal/core/model"
	"content-collector/logging"
)

// Processor проводит одно сообщение через классификацию, дедупликацию,
// сохранение контента и сведение в единую запись.
type Processor struct {
	index      *FingerprintIndex
	gateway    *Gateway
	reconciler *Reconciler
	transport  Transport
}

func NewProcessor(index *FingerprintIndex, gateway *Gateway, reconciler *Reconciler, transport Transport) *Processor {
	return &Processor{
		index:      index,
		gateway:    gateway,
		reconciler: reconciler,
		transport:  transport,
	}
}

// ProcessResult — итог обработки одного сообщения.
type ProcessResult struct {
	Processed bool
	Duplicate bool
	Kinds     []model.ContentKind
}

// ProcessMessage обрабатывает сообщение канала. Ошибки отдельных элементов
// контента логируются и не прерывают обработку остального сообщения; единая
// запись создаётся в любом случае, даже для пустого сообщения.
func (p *Processor) ProcessMessage(ctx context.Context, channelID uint, channelTag string, msg model.ChannelMessage) ProcessResult {
	var res ProcessResult
	var refs ContentRefs
	var fingerprint string

	if msg.Text != "" {
		fingerprint = Digest([]byte(msg.Text))
		if p.index.IsDuplicate(fingerprint) {
			res.Duplicate = true
			logging.Log("Collector", logrus.InfoLevel, fmt.Sprintf("Дубликат текста в сообщении %d из %s", msg.ID, channelTag))
		} else if id, err := p.gateway.SaveText(msg.Text); err != nil {
			logging.Log("Collector", logrus.ErrorLevel, fmt.Sprintf("Ошибка сохранения текста сообщения %d: %v", msg.ID, err))
		} else {
			refs.Set(model.KindText, id)
			res.Kinds = append(res.Kinds, model.KindText)
			p.index.Record(fingerprint)
		}

		// Ссылка извлекается независимо от того, был ли текст дубликатом.
		if info := ExtractFirstLink(msg.Text); info != nil {
			if id, err := p.gateway.SaveLink(info); err != nil {
				logging.Log("Collector", logrus.ErrorLevel, fmt.Sprintf("Ошибка сохранения ссылки %s: %v", info.URL, err))
			} else {
				refs.Set(model.KindLink, id)
				res.Kinds = append(res.Kinds, model.KindLink)
			}
		}
	}

	if msg.Media != nil {
		data, err := p.transport.Download(ctx, msg)
		switch {
		case err != nil:
			logging.Log("Collector", logrus.ErrorLevel, fmt.Sprintf("Ошибка скачивания медиа сообщения %d: %v", msg.ID, err))
		case len(data) == 0:
			logging.Log("Collector", logrus.WarnLevel, fmt.Sprintf("Пустое медиа в сообщении %d из %s", msg.ID, channelTag))
		default:
			hash := Digest(data)
			fingerprint = hash
			if p.index.IsDuplicate(hash) {
				res.Duplicate = true
				logging.Log("Collector", logrus.InfoLevel, fmt.Sprintf("Дубликат медиа в сообщении %d из %s", msg.ID, channelTag))
			} else {
				kind := ClassifyMedia(msg.Media)
				if id, err := p.gateway.SaveMedia(kind, data, msg.Media.FileName); err != nil {
					logging.Log("Collector", logrus.ErrorLevel, fmt.Sprintf("Ошибка сохранения медиа (%s) сообщения %d: %v", kind, msg.ID, err))
				} else {
					refs.Set(kind, id)
					res.Kinds = append(res.Kinds, kind)
					p.index.Record(hash)
				}
			}
		}
	}

	created, err := p.reconciler.Reconcile(channelID, msg.ID, msg.Date, refs, fingerprint)
	if err != nil {
		logging.Log("Collector", logrus.ErrorLevel, fmt.Sprintf("Ошибка создания единой записи для сообщения %d: %v", msg.ID, err))
		return res
	}
	if !created {
		logging.Log("Collector", logrus.DebugLevel, fmt.Sprintf("Единая запись для сообщения %d уже существует", msg.ID))
	}

	res.Processed = true
	return res
}
