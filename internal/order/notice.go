package order

import (
	"sync"
	"time"
)

// DefaultNoticeTTL is how long the order-placed notice stays visible.
const DefaultNoticeTTL = 2 * time.Second

// Notice is the transient "order placed" indicator. Raising it starts
// a timer that dismisses it after the TTL; raising again restarts the
// timer.
type Notice struct {
	mu     sync.Mutex
	ttl    time.Duration
	active bool
	timer  *time.Timer
}

func NewNotice(ttl time.Duration) *Notice {
	if ttl <= 0 {
		ttl = DefaultNoticeTTL
	}
	return &Notice{ttl: ttl}
}

// Raise activates the notice and schedules its dismissal.
func (n *Notice) Raise() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.active = true
	if n.timer != nil {
		n.timer.Stop()
	}
	n.timer = time.AfterFunc(n.ttl, n.dismiss)
}

// Active reports whether the notice is currently shown.
func (n *Notice) Active() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.active
}

func (n *Notice) dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.active = false
}
