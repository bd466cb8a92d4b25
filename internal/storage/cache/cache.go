package cache

import (
	"sync"

	"github.com/dragosdragos935/Italia-Word-Quiz/internal/quiz"
)

// Cache keeps the active quiz session per chat. Sessions are transient: they
// live here from quiz start until completion or close and are never
// persisted.
type Cache struct {
	mu       sync.Mutex
	sessions map[int64]*quiz.Session
}

func NewCache() *Cache {
	return &Cache{
		sessions: make(map[int64]*quiz.Session),
	}
}

func (c *Cache) SetSession(chatID int64, session *quiz.Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[chatID] = session
}

func (c *Cache) GetSession(chatID int64) (*quiz.Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	session, exists := c.sessions[chatID]
	return session, exists
}

func (c *Cache) DeleteSession(chatID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, chatID)
}
