package service

import (
	"sync"

	"github.com/bookswap/exchange-service/internal/model"
)

const subBuffer = 64

// Hub fans appended messages out to live subscribers, per channel uid.
// It carries only the live tail; history comes from the store.
type Hub struct {
	mu   sync.Mutex
	subs map[string]map[chan model.Message]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[string]map[chan model.Message]struct{}),
	}
}

// Subscribe registers a live reader. The returned cancel func must be called
// exactly once; it closes the channel.
func (h *Hub) Subscribe(channelUid string) (<-chan model.Message, func()) {
	ch := make(chan model.Message, subBuffer)

	h.mu.Lock()
	set, ok := h.subs[channelUid]
	if !ok {
		set = make(map[chan model.Message]struct{})
		h.subs[channelUid] = set
	}
	set[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs[channelUid], ch)
			if len(h.subs[channelUid]) == 0 {
				delete(h.subs, channelUid)
			}
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Publish delivers msg to every subscriber of the channel. A reader that
// fell subBuffer messages behind loses the tail; it can re-subscribe and
// replay history.
func (h *Hub) Publish(channelUid string, msg model.Message) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs[channelUid] {
		select {
		case ch <- msg:
		default:
		}
	}
}
