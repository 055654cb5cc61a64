package discord

import (
	"sync"

	"github.com/LavaJover/shvark-deal-bot/internal/domain"
)

type sessionKey struct {
	ChannelID string
	UserID 	  string
}

// SessionRegistry makes concurrent-flow isolation explicit: one active
// intake per (channel, user). A second flow for the same key is rejected
// instead of interleaving prompts with the first one.
type SessionRegistry struct {
	mu 	   sync.Mutex
	active map[sessionKey]string
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{active: make(map[sessionKey]string)}
}

func (r *SessionRegistry) Begin(channelID, userID, flow string) error {
	key := sessionKey{ChannelID: channelID, UserID: userID}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, busy := r.active[key]; busy {
		return domain.ErrSessionActive
	}
	r.active[key] = flow
	return nil
}

func (r *SessionRegistry) End(channelID, userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.active, sessionKey{ChannelID: channelID, UserID: userID})
}
