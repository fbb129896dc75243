package collector

import (
	"context"
	"testing"
	"time"

	"content-collector/internal/core/model"
	dbmodel "content-collector/internal/lib/database/model"
)

func TestProcessMessageTextWithLink(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	msg := model.ChannelMessage{
		ID:   101,
		Date: time.Now(),
		Text: "анонс релиза: https://example.com/release",
	}
	res := env.processor.ProcessMessage(ctx, 1, "news", msg)
	if !res.Processed || res.Duplicate {
		t.Fatalf("неожиданный результат: %+v", res)
	}

	var rec dbmodel.ChannelMessage
	if err := env.db.DB.First(&rec, "telegram_msg_id = ?", 101).Error; err != nil {
		t.Fatalf("единая запись не создана: %v", err)
	}
	if rec.TextID == nil {
		t.Error("ссылка на текст не заполнена")
	}
	if rec.LinkID == nil {
		t.Error("ссылка на link не заполнена")
	}
	if rec.FileHash == "" {
		t.Error("отпечаток не сохранён в записи")
	}

	var link dbmodel.Link
	if err := env.db.DB.First(&link).Error; err != nil {
		t.Fatalf("ссылка не сохранена: %v", err)
	}
	if link.Domain != "example.com" {
		t.Errorf("домен ссылки %s, ожидалось example.com", link.Domain)
	}
}

func TestProcessMessageDuplicateTextStillRecorded(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	text := "одинаковый текст https://example.com/a"
	first := env.processor.ProcessMessage(ctx, 1, "news", model.ChannelMessage{ID: 1, Date: time.Now(), Text: text})
	second := env.processor.ProcessMessage(ctx, 1, "news", model.ChannelMessage{ID: 2, Date: time.Now(), Text: text})

	if first.Duplicate {
		t.Error("первое сообщение помечено дубликатом")
	}
	if !second.Duplicate || !second.Processed {
		t.Errorf("неожиданный результат второго сообщения: %+v", second)
	}

	var textCount int64
	env.db.DB.Model(&dbmodel.Text{}).Count(&textCount)
	if textCount != 1 {
		t.Errorf("сохранено %d текстов, ожидался 1", textCount)
	}

	// Единая запись создаётся и для сообщения-дубликата, ссылка в ней
	// заполнена несмотря на дублирующийся текст.
	var recs []dbmodel.ChannelMessage
	env.db.DB.Order("telegram_msg_id").Find(&recs)
	if len(recs) != 2 {
		t.Fatalf("создано %d единых записей, ожидалось 2", len(recs))
	}
	if recs[1].TextID != nil {
		t.Error("у дубликата заполнена ссылка на текст")
	}
	if recs[1].LinkID == nil {
		t.Error("у дубликата не заполнена ссылка на link")
	}
	if recs[0].FileHash != recs[1].FileHash {
		t.Error("отпечатки записей с одинаковым текстом различаются")
	}
}

func TestProcessMessageMedia(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	res := env.processor.ProcessMessage(ctx, 1, "news", photoMessage(5, "payload-1"))
	if !res.Processed || res.Duplicate {
		t.Fatalf("неожиданный результат: %+v", res)
	}
	if len(res.Kinds) != 1 || res.Kinds[0] != model.KindPhoto {
		t.Errorf("виды контента %v, ожидался [photo]", res.Kinds)
	}

	var photoCount int64
	env.db.DB.Model(&dbmodel.Photo{}).Count(&photoCount)
	if photoCount != 1 {
		t.Errorf("сохранено %d фото, ожидалось 1", photoCount)
	}

	// Повтор того же файла под другим id сообщения.
	res = env.processor.ProcessMessage(ctx, 1, "news", photoMessage(6, "payload-1"))
	if !res.Duplicate {
		t.Error("повторный файл не распознан как дубликат")
	}
	env.db.DB.Model(&dbmodel.Photo{}).Count(&photoCount)
	if photoCount != 1 {
		t.Errorf("после дубликата %d фото, ожидалось 1", photoCount)
	}
}

func TestProcessMessageEmptyPlaceholder(t *testing.T) {
	env := newTestEnv(t)

	res := env.processor.ProcessMessage(context.Background(), 1, "news", model.ChannelMessage{ID: 9, Date: time.Now()})
	if !res.Processed {
		t.Fatal("пустое сообщение не обработано")
	}
	if len(res.Kinds) != 0 {
		t.Errorf("у пустого сообщения виды контента %v", res.Kinds)
	}

	var rec dbmodel.ChannelMessage
	if err := env.db.DB.First(&rec, "telegram_msg_id = ?", 9).Error; err != nil {
		t.Fatalf("запись-заглушка не создана: %v", err)
	}
	if rec.TextID != nil || rec.PhotoID != nil || rec.LinkID != nil {
		t.Error("у записи-заглушки заполнены ссылки на контент")
	}
}

func TestReconcileIdempotent(t *testing.T) {
	env := newTestEnv(t)
	reconciler := NewReconciler(env.db)

	date := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	created, err := reconciler.Reconcile(1, 42, date, ContentRefs{}, "hash")
	if err != nil || !created {
		t.Fatalf("первое сведение: created=%v err=%v", created, err)
	}
	created, err = reconciler.Reconcile(1, 42, date, ContentRefs{}, "hash")
	if err != nil {
		t.Fatalf("повторное сведение: %v", err)
	}
	if created {
		t.Error("повторное сведение создало вторую запись")
	}

	var count int64
	env.db.DB.Model(&dbmodel.ChannelMessage{}).Count(&count)
	if count != 1 {
		t.Errorf("в таблице %d записей, ожидалась 1", count)
	}

	// Одинаковый id сообщения в другом канале — отдельная запись.
	created, err = reconciler.Reconcile(2, 42, date, ContentRefs{}, "hash")
	if err != nil || !created {
		t.Fatalf("сведение для другого канала: created=%v err=%v", created, err)
	}
}

func TestNormalizeTime(t *testing.T) {
	zone := time.FixedZone("UTC+5", 5*3600)
	in := time.Date(2026, 3, 1, 15, 30, 45, 0, zone)
	got := normalizeTime(in)
	if got.Hour() != 15 || got.Minute() != 30 || got.Second() != 45 {
		t.Errorf("настенное время изменилось: %v", got)
	}
	if got.Location() != time.UTC {
		t.Errorf("зона %v, ожидалась UTC", got.Location())
	}

	if normalizeTime(time.Time{}).IsZero() {
		t.Error("нулевое время не заменено текущим")
	}
}
