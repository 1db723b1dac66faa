package iterator

// CoIterator is returned from Co and abstracts communication with the
// iterating goroutine.
type CoIterator struct {
	items <-chan any
	stop  chan<- struct{}
}

// Items returns the channel on which the items from the iterator are sent.
func (c CoIterator) Items() <-chan any {
	return c.items
}

// Stop stops the iteration. This must not be called more than once.
// If the Items channel is closed, this doesn't need to be called.
func (c CoIterator) Stop() {
	close(c.stop)
}

// Co starts coroutine-style iteration. The usage is as follows:
//
//	co := Co(someTree.InOrderIterator())
//	for v := range co.Items() {
//		... do stuff with v ...
//		if v meets some stopping condition {
//			co.Stop()
//		}
//	}
//
// Co starts a goroutine, which exits when either Stop is called or the
// iteration is finished. If you follow the usage above, the goroutine will
// not live beyond the end of the for-range loop.
func Co(it Iterator) CoIterator {
	out := make(chan any)
	stop := make(chan struct{})
	co := CoIterator{
		items: out,
		stop:  stop,
	}

	if it == nil {
		close(out)
		return co
	}

	go func(out chan<- any, stop <-chan struct{}, it Iterator) {
		defer close(out)
		for it.Next() {
			select {
			case out <- it.Item():
			case <-stop:
				return
			}
		}
	}(out, stop, it)

	return co
}
