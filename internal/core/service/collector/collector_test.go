package collector

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"content-collector/internal/core/model"
	"content-collector/internal/lib/database"
	"content-collector/internal/lib/database/handlers"
	"content-collector/internal/lib/storage"
)

func newTestHandlers(t *testing.T) *handlers.DBHandlers {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return handlers.NewDBHandlers(db)
}

// fakeTransport хранит сообщения каналов в памяти. Payload вложения лежит
// прямо в Media.Ref.
type fakeTransport struct {
	mu       sync.Mutex
	refs     map[string]model.ChannelRef
	messages map[string][]model.ChannelMessage
	failTags map[string]bool
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{
		refs:     make(map[string]model.ChannelRef),
		messages: make(map[string][]model.ChannelMessage),
		failTags: make(map[string]bool),
	}
}

func (f *fakeTransport) addChannel(tag string, id int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refs[tag] = model.ChannelRef{ID: id, AccessHash: id * 7, Tag: tag, Title: "Канал " + tag}
}

func (f *fakeTransport) post(tag string, msg model.ChannelMessage) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages[tag] = append(f.messages[tag], msg)
}

func (f *fakeTransport) Resolve(ctx context.Context, identifier string) (model.ChannelRef, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failTags[identifier] {
		return model.ChannelRef{}, fmt.Errorf("канал %s недоступен", identifier)
	}
	ref, ok := f.refs[identifier]
	if !ok {
		return model.ChannelRef{}, fmt.Errorf("канал %s не найден", identifier)
	}
	return ref, nil
}

func (f *fakeTransport) IterateSince(ctx context.Context, ref model.ChannelRef, minID int64) ([]model.ChannelMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.ChannelMessage
	for _, msg := range f.messages[ref.Tag] {
		if msg.ID > minID {
			out = append(out, msg)
		}
	}
	return out, nil
}

func (f *fakeTransport) Last(ctx context.Context, ref model.ChannelRef, limit int) ([]model.ChannelMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := f.messages[ref.Tag]
	var out []model.ChannelMessage
	for i := len(all) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, all[i])
	}
	return out, nil
}

func (f *fakeTransport) Download(ctx context.Context, msg model.ChannelMessage) ([]byte, error) {
	if msg.Media == nil || msg.Media.Ref == nil {
		return nil, nil
	}
	data, _ := msg.Media.Ref.([]byte)
	return data, nil
}

type fakeNotifier struct {
	mu    sync.Mutex
	texts []string
}

func (f *fakeNotifier) Send(ctx context.Context, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.texts = append(f.texts, text)
	return nil
}

func (f *fakeNotifier) sent() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.texts...)
}

type testEnv struct {
	monitor   *Monitor
	transport *fakeTransport
	notifier  *fakeNotifier
	db        *handlers.DBHandlers
	processor *Processor
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestHandlers(t)
	sink := storage.NewStorage(t.TempDir())
	transport := newFakeTransport()
	notifier := &fakeNotifier{}

	index := NewFingerprintIndex()
	gateway := NewGateway(db, sink)
	reconciler := NewReconciler(db)
	processor := NewProcessor(index, gateway, reconciler, transport)
	monitor := NewMonitor(transport, notifier, db, processor, time.Second, time.Second, 100*time.Millisecond)

	return &testEnv{
		monitor:   monitor,
		transport: transport,
		notifier:  notifier,
		db:        db,
		processor: processor,
	}
}

func photoMessage(id int64, payload string) model.ChannelMessage {
	return model.ChannelMessage{
		ID:   id,
		Date: time.Now(),
		Media: &model.MediaItem{
			Photo:    true,
			FileName: "photo.jpg",
			Ref:      []byte(payload),
		},
	}
}
