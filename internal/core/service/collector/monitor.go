package collector

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"content-collector/internal/core/model"
	"content-collector/internal/lib/database/handlers"
	"content-collector/logging"
)

// Порядок типов в тексте уведомления.
var notificationOrder = []model.ContentKind{
	model.KindText, model.KindPhoto, model.KindVideo, model.KindAudio,
	model.KindDocument, model.KindSticker, model.KindAnimation, model.KindLink,
}

// ChannelState — состояние канала в памяти процесса. Источник истины —
// таблица каналов, карта восстанавливается из неё при старте.
type ChannelState struct {
	Active    bool
	LastID    int64
	ChannelID uint
}

// Monitor опрашивает активные каналы с фиксированным интервалом, продвигает
// курсоры и отправляет по одному уведомлению на канал за цикл.
type Monitor struct {
	transport Transport
	notifier  Notifier
	db        *handlers.DBHandlers
	processor *Processor
	coalescer *Coalescer

	pollInterval time.Duration
	errorBackoff time.Duration

	mu       sync.Mutex
	channels map[string]*ChannelState
}

func NewMonitor(transport Transport, notifier Notifier, db *handlers.DBHandlers, processor *Processor, pollInterval, errorBackoff, groupFlushDelay time.Duration) *Monitor {
	m := &Monitor{
		transport:    transport,
		notifier:     notifier,
		db:           db,
		processor:    processor,
		pollInterval: pollInterval,
		errorBackoff: errorBackoff,
		channels:     make(map[string]*ChannelState),
	}
	m.coalescer = NewCoalescer(groupFlushDelay, m.flushGroup)
	return m
}

// LoadChannels восстанавливает карту активных каналов из базы данных.
func (m *Monitor) LoadChannels() error {
	channels, err := m.db.ChannelHandlers.GetActiveChannels()
	if err != nil {
		return fmt.Errorf("ошибка загрузки каналов: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ch := range channels {
		m.channels[ch.Tag] = &ChannelState{
			Active:    true,
			LastID:    ch.LastMessageID,
			ChannelID: ch.ID,
		}
	}
	logging.Log("Monitor", logrus.InfoLevel, fmt.Sprintf("Загружено активных каналов: %d", len(channels)))
	return nil
}

// Run крутит цикл опроса до отмены контекста. Любая ошибка уровня цикла
// логируется и заменяется паузой перед следующей попыткой.
func (m *Monitor) Run(ctx context.Context) {
	logging.Log("Monitor", logrus.InfoLevel, "Цикл мониторинга запущен")
	defer m.coalescer.Close()

	for {
		delay := m.pollInterval
		if err := m.runCycle(ctx); err != nil {
			logging.Log("Monitor", logrus.ErrorLevel, fmt.Sprintf("Ошибка цикла мониторинга: %v", err))
			delay = m.errorBackoff
		}

		select {
		case <-ctx.Done():
			logging.Log("Monitor", logrus.InfoLevel, "Цикл мониторинга остановлен")
			return
		case <-time.After(delay):
		}
	}
}

// runCycle обходит все активные каналы. Паника внутри цикла перехватывается
// на его границе и превращается в обычную ошибку.
func (m *Monitor) runCycle(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("паника в цикле: %v", r)
		}
	}()

	m.mu.Lock()
	tags := make([]string, 0, len(m.channels))
	for tag, st := range m.channels {
		if st.Active {
			tags = append(tags, tag)
		}
	}
	m.mu.Unlock()

	for _, tag := range tags {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		m.pollChannel(ctx, tag)
	}
	return nil
}

// pollChannel обрабатывает один канал за цикл: ошибки транспорта и хранилища
// не выходят за пределы канала.
func (m *Monitor) pollChannel(ctx context.Context, tag string) {
	m.mu.Lock()
	st, ok := m.channels[tag]
	m.mu.Unlock()
	if !ok || !st.Active {
		return
	}

	ref, err := m.transport.Resolve(ctx, tag)
	if err != nil {
		logging.Log("Monitor", logrus.ErrorLevel, fmt.Sprintf("Не удалось разрешить канал %s: %v", tag, err))
		return
	}

	messages, err := m.transport.IterateSince(ctx, ref, st.LastID)
	if err != nil {
		logging.Log("Monitor", logrus.ErrorLevel, fmt.Sprintf("Ошибка получения сообщений из %s: %v", tag, err))
		return
	}

	newCount := 0
	duplicates := 0
	counts := make(map[model.ContentKind]int)
	var maxProcessed int64

	for _, msg := range messages {
		if msg.GroupID != "" {
			m.coalescer.Add(msg.GroupID, GroupFragment{
				ChannelID:  st.ChannelID,
				ChannelTag: tag,
				Message:    msg,
			})
			newCount++
			if msg.ID > maxProcessed {
				maxProcessed = msg.ID
			}
			continue
		}

		res := m.processor.ProcessMessage(ctx, st.ChannelID, tag, msg)
		if res.Duplicate {
			duplicates++
		}
		if !res.Processed {
			continue
		}
		newCount++
		for _, kind := range res.Kinds {
			counts[kind]++
		}
		if msg.ID > maxProcessed {
			maxProcessed = msg.ID
		}
	}

	// Курсор продвигается только вперёд, к максимальному обработанному id.
	m.mu.Lock()
	advanced := false
	if maxProcessed > st.LastID {
		st.LastID = maxProcessed
		advanced = true
	}
	cursor := st.LastID
	m.mu.Unlock()

	if advanced {
		if err := m.db.ChannelHandlers.UpdateCursor(tag, cursor); err != nil {
			logging.Log("Monitor", logrus.ErrorLevel, fmt.Sprintf("Ошибка сохранения курсора канала %s: %v", tag, err))
		}
	} else if err := m.db.ChannelHandlers.UpdateHeartbeat(tag); err != nil {
		logging.Log("Monitor", logrus.ErrorLevel, fmt.Sprintf("Ошибка обновления отметки проверки канала %s: %v", tag, err))
	}

	if duplicates > 0 {
		logging.Log("Monitor", logrus.InfoLevel, fmt.Sprintf("Пропущено дубликатов из %s: %d", tag, duplicates))
	}

	if newCount > 0 {
		logging.Log("Monitor", logrus.InfoLevel, fmt.Sprintf("Получено новых сообщений из %s: %d", tag, newCount))
		m.notify(ctx, tag, newCount, counts)
	}
}

// notify отправляет единственное уведомление цикла по каналу. При нулевом
// числе новых сообщений уведомление не отправляется вовсе.
func (m *Monitor) notify(ctx context.Context, tag string, newCount int, counts map[model.ContentKind]int) {
	if m.notifier == nil {
		return
	}

	text := buildNotification(tag, newCount, counts)
	if err := m.notifier.Send(ctx, text); err != nil {
		logging.Log("Monitor", logrus.ErrorLevel, fmt.Sprintf("Ошибка отправки уведомления: %v", err))
	}
}

func buildNotification(tag string, newCount int, counts map[model.ContentKind]int) string {
	var parts []string
	total := 0
	for _, kind := range notificationOrder {
		if n := counts[kind]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, kind))
			total += n
		}
	}

	now := time.Now().Format("2006-01-02 15:04:05")
	text := fmt.Sprintf("Saved %d new post(s) from %s at %s", newCount, tag, now)
	if len(parts) > 0 {
		text += fmt.Sprintf(": %s (total content items: %d)", strings.Join(parts, ", "), total)
	}
	return text
}

// flushGroup — обработчик сброса медиа-группы: каждый фрагмент проходит
// конвейер независимо, в порядке поступления.
func (m *Monitor) flushGroup(groupID string, fragments []GroupFragment) {
	ctx := context.Background()
	counts := make(map[model.ContentKind]int)
	for _, fragment := range fragments {
		res := m.processor.ProcessMessage(ctx, fragment.ChannelID, fragment.ChannelTag, fragment.Message)
		for _, kind := range res.Kinds {
			counts[kind]++
		}
	}
	if len(counts) > 0 {
		logging.Log("Monitor", logrus.InfoLevel, fmt.Sprintf("Медиа-группа %s обработана: %v", groupID, counts))
	}
}

// AddChannel регистрирует канал: курсор выставляется на текущее последнее
// сообщение, чтобы история до регистрации не попадала в сбор.
func (m *Monitor) AddChannel(ctx context.Context, tag string, addedBy int64) error {
	ref, err := m.transport.Resolve(ctx, tag)
	if err != nil {
		return fmt.Errorf("не удалось разрешить канал %s: %w", tag, err)
	}

	var lastID int64
	last, err := m.transport.Last(ctx, ref, 1)
	if err != nil {
		return fmt.Errorf("не удалось получить последнее сообщение %s: %w", tag, err)
	}
	if len(last) > 0 {
		lastID = last[0].ID
	}

	title := ref.Title
	if title == "" {
		title = tag
	}
	ch, err := m.db.ChannelHandlers.UpsertChannel(tag, title, true, addedBy, lastID)
	if err != nil {
		return fmt.Errorf("ошибка сохранения канала %s: %w", tag, err)
	}

	m.mu.Lock()
	m.channels[tag] = &ChannelState{
		Active:    true,
		LastID:    lastID,
		ChannelID: ch.ID,
	}
	m.mu.Unlock()

	logging.Log("Monitor", logrus.InfoLevel, fmt.Sprintf("Канал %s добавлен в мониторинг, курсор %d", tag, lastID))
	return nil
}

// StopChannel выключает мониторинг канала. Курсор сохраняется, повторная
// активация продолжает с места остановки, а не перечитывает историю.
func (m *Monitor) StopChannel(tag string) (bool, error) {
	found, err := m.db.ChannelHandlers.DeactivateChannel(tag)
	if err != nil {
		return false, err
	}

	m.mu.Lock()
	if st, ok := m.channels[tag]; ok {
		st.Active = false
		found = true
	}
	m.mu.Unlock()

	if found {
		logging.Log("Monitor", logrus.InfoLevel, fmt.Sprintf("Мониторинг канала %s остановлен", tag))
	}
	return found, nil
}

// FetchLast единоразово скачивает последние limit сообщений канала через тот
// же конвейер. Для неизвестного канала создаётся неактивная запись, чтобы
// статистика имела к чему привязаться.
func (m *Monitor) FetchLast(ctx context.Context, tag string, limit int) (int, error) {
	ref, err := m.transport.Resolve(ctx, tag)
	if err != nil {
		return 0, fmt.Errorf("не удалось разрешить канал %s: %w", tag, err)
	}

	ch, err := m.db.ChannelHandlers.GetChannelByTag(tag)
	if err != nil {
		return 0, err
	}
	if ch == nil {
		title := ref.Title
		if title == "" {
			title = tag
		}
		ch, err = m.db.ChannelHandlers.UpsertChannel(tag, title, false, 0, 0)
		if err != nil {
			return 0, fmt.Errorf("ошибка регистрации канала %s: %w", tag, err)
		}
	}

	messages, err := m.transport.Last(ctx, ref, limit)
	if err != nil {
		return 0, fmt.Errorf("ошибка получения сообщений из %s: %w", tag, err)
	}

	saved := 0
	for _, msg := range messages {
		if res := m.processor.ProcessMessage(ctx, ch.ID, tag, msg); res.Processed {
			saved++
		}
	}
	return saved, nil
}
