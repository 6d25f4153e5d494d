package engine

type subscriber struct {
	id int
	fn func(Frame)
}

// Subscribe registers a frame consumer and returns its unsubscribe
// function. Subscribers are invoked in registration order on every
// emission; the handle stays valid across slot restarts, so consumers
// never re-register when a slot is re-triggered.
func (s *Slot) Subscribe(fn func(Frame)) func() {
	id := s.nextSub
	s.nextSub++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})

	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Slot) publish(f Frame) {
	for _, sub := range s.subs {
		sub.fn(f)
	}
}
