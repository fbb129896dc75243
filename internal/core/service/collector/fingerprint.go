package collector

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

// Digest вычисляет отпечаток содержимого для дедупликации.
func Digest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// FingerprintIndex — кэш уже встреченных отпечатков. Живёт только в памяти
// процесса и очищается при перезапуске. Безопасен при одновременном доступе
// из цикла мониторинга и отложенных сбросов медиа-групп.
type FingerprintIndex struct {
	mu   sync.RWMutex
	seen map[string]time.Time
}

func NewFingerprintIndex() *FingerprintIndex {
	return &FingerprintIndex{seen: make(map[string]time.Time)}
}

func (f *FingerprintIndex) IsDuplicate(fingerprint string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.seen[fingerprint]
	return ok
}

func (f *FingerprintIndex) Record(fingerprint string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seen[fingerprint] = time.Now()
}
