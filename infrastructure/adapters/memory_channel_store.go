package adapters

import (
	"sync"

	"github.com/laiba2005shahzad/BuildWAI/application/ports/outbound"
	"github.com/laiba2005shahzad/BuildWAI/domain"
)

type memoryChannelStore struct {
	mu    sync.RWMutex
	slots map[domain.Channel]domain.ChannelState
}

// NewMemoryChannelStore holds the latest committed result per channel.
// A Publish swaps the whole slot value under the lock, so a reader sees
// either the previous snapshot or the new one, never a mix.
func NewMemoryChannelStore() outbound.ChannelStateStorePort {
	return &memoryChannelStore{
		slots: make(map[domain.Channel]domain.ChannelState),
	}
}

func (s *memoryChannelStore) Publish(channel domain.Channel, state domain.ChannelState) {
	// Copy the slice so later mutation by the writer cannot leak into
	// published state.
	news := make([]domain.AuthenticItem, len(state.News))
	copy(news, state.News)
	state.News = news

	s.mu.Lock()
	s.slots[channel] = state
	s.mu.Unlock()
}

func (s *memoryChannelStore) Latest(channel domain.Channel) domain.ChannelState {
	s.mu.RLock()
	state := s.slots[channel]
	s.mu.RUnlock()

	news := make([]domain.AuthenticItem, len(state.News))
	copy(news, state.News)
	state.News = news
	return state
}
