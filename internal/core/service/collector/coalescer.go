package collector

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"content-collector/internal/core/model"
	"content-collector/logging"
)

// GroupFragment — один элемент медиа-группы вместе с контекстом канала.
type GroupFragment struct {
	ChannelID  uint
	ChannelTag string
	Message    model.ChannelMessage
}

type groupState int

const (
	groupCollecting groupState = iota
	groupFlushing
)

type mediaGroup struct {
	state     groupState
	fragments []GroupFragment
	timer     *time.Timer
}

// Coalescer буферизует фрагменты медиа-групп. Таймер тишины привязан к
// первому фрагменту группы и не продлевается последующими: опоздавший
// фрагмент попадает в отдельный поздний сброс. Это известная гонка исходного
// поведения, она сохранена намеренно.
type Coalescer struct {
	mu     sync.Mutex
	delay  time.Duration
	flush  func(groupID string, fragments []GroupFragment)
	groups map[string]*mediaGroup
	closed bool
}

func NewCoalescer(delay time.Duration, flush func(groupID string, fragments []GroupFragment)) *Coalescer {
	return &Coalescer{
		delay:  delay,
		flush:  flush,
		groups: make(map[string]*mediaGroup),
	}
}

// Add добавляет фрагмент в буфер группы. Первый фрагмент взводит таймер.
func (c *Coalescer) Add(groupID string, fragment GroupFragment) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	g, ok := c.groups[groupID]
	if !ok {
		g = &mediaGroup{state: groupCollecting}
		c.groups[groupID] = g
		g.timer = time.AfterFunc(c.delay, func() {
			c.flushGroup(groupID)
		})
	}
	g.fragments = append(g.fragments, fragment)
}

// flushGroup переводит группу в состояние сброса, обрабатывает фрагменты
// в порядке поступления и закрывает буфер.
func (c *Coalescer) flushGroup(groupID string) {
	c.mu.Lock()
	g, ok := c.groups[groupID]
	if !ok || c.closed {
		c.mu.Unlock()
		return
	}
	g.state = groupFlushing
	fragments := g.fragments
	delete(c.groups, groupID)
	c.mu.Unlock()

	logging.Log("Coalescer", logrus.InfoLevel, fmt.Sprintf("Сброс медиа-группы %s: %d фрагментов", groupID, len(fragments)))
	c.flush(groupID, fragments)
}

// Pending возвращает число фрагментов, буферизованных для группы.
func (c *Coalescer) Pending(groupID string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if g, ok := c.groups[groupID]; ok {
		return len(g.fragments)
	}
	return 0
}

// Close останавливает таймеры и отбрасывает несброшенные буферы.
func (c *Coalescer) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true

	for groupID, g := range c.groups {
		g.timer.Stop()
		if len(g.fragments) > 0 {
			logging.Log("Coalescer", logrus.WarnLevel, fmt.Sprintf("Группа %s отброшена при остановке: %d фрагментов", groupID, len(g.fragments)))
		}
		delete(c.groups, groupID)
	}
}
