package portfolio

import "sync"

// Subscribe registers fn for phase changes. Listeners run after the state lock
// is released, in registration order. The returned func detaches fn and may be
// called more than once.
func (c *Controller) Subscribe(fn func(PhaseChange)) (unsubscribe func()) {
	c.subsMu.Lock()
	c.nextSub++
	id := c.nextSub
	c.subs = append(c.subs, subscription{id: id, fn: fn})
	c.subsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.subsMu.Lock()
			defer c.subsMu.Unlock()
			for i, sub := range c.subs {
				if sub.id == id {
					c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
					return
				}
			}
		})
	}
}

func (c *Controller) emit(change PhaseChange) {
	c.subsMu.Lock()
	subs := make([]subscription, len(c.subs))
	copy(subs, c.subs)
	c.subsMu.Unlock()

	for _, sub := range subs {
		sub.fn(change)
	}
}
