package services

import (
	"container/list"
	"sync"

	"github.com/google/uuid"
)

// DefaultConversationLimit caps the number of live conversations
const DefaultConversationLimit = 500

type conversationEntry struct {
	id   string
	conv *Conversation
}

// ConversationStore keeps chat logs in memory, evicting the least recently
// used one when full. Logs are lost on restart.
type ConversationStore struct {
	mu    sync.Mutex
	limit int
	order *list.List
	items map[string]*list.Element
}

// NewConversationStore creates a store holding at most limit conversations
func NewConversationStore(limit int) *ConversationStore {
	if limit <= 0 {
		limit = DefaultConversationLimit
	}
	return &ConversationStore{
		limit: limit,
		order: list.New(),
		items: make(map[string]*list.Element),
	}
}

// Lookup returns the stored conversation for id without creating one
func (s *ConversationStore) Lookup(id string) (*Conversation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	el, ok := s.find(id)
	if !ok {
		return nil, false
	}
	return el.Value.(*conversationEntry).conv, true
}

// Add stores conv under a fresh id, evicting the least recently used
// conversation when the store is full. It returns the new id.
func (s *ConversationStore) Add(conv *Conversation) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.items[id] = s.order.PushFront(&conversationEntry{id: id, conv: conv})

	for s.order.Len() > s.limit {
		oldest := s.order.Back()
		s.order.Remove(oldest)
		delete(s.items, oldest.Value.(*conversationEntry).id)
	}
	return id
}

// find marks a known id as recently used. Callers hold mu.
func (s *ConversationStore) find(id string) (*list.Element, bool) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, false
	}
	el, ok := s.items[id]
	if ok {
		s.order.MoveToFront(el)
	}
	return el, ok
}

// Len returns the number of stored conversations
func (s *ConversationStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order.Len()
}
