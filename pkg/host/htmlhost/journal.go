package htmlhost

import "github.com/vango-dev/retain/pkg/host"

// subscriberBuffer is the channel capacity given to each subscriber.
// Mutations are dropped for subscribers that fall this far behind.
const subscriberBuffer = 256

// record appends m to the journal and fans it out to subscribers. Once the
// journal is twice its limit it is cut back to the newest entries.
func (d *Document) record(m host.Mutation) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.journal = append(d.journal, m)
	if d.journalLimit > 0 && len(d.journal) >= 2*d.journalLimit {
		d.journal = append([]host.Mutation(nil), d.journal[len(d.journal)-d.journalLimit:]...)
	}
	for ch := range d.subscribers {
		select {
		case ch <- m:
		default:
		}
	}
}

// Mutations returns a copy of the journal, at most the journal limit of
// the newest entries.
func (d *Document) Mutations() []host.Mutation {
	d.mu.Lock()
	defer d.mu.Unlock()
	j := d.journal
	if d.journalLimit > 0 && len(j) > d.journalLimit {
		j = j[len(j)-d.journalLimit:]
	}
	return append([]host.Mutation(nil), j...)
}

// ResetJournal discards all recorded mutations.
func (d *Document) ResetJournal() {
	d.mu.Lock()
	d.journal = nil
	d.mu.Unlock()
}

// Subscribe returns a channel that receives every mutation recorded after
// the call, and a cancel func that closes it.
func (d *Document) Subscribe() (<-chan host.Mutation, func()) {
	ch := make(chan host.Mutation, subscriberBuffer)

	d.mu.Lock()
	d.subscribers[ch] = struct{}{}
	d.mu.Unlock()

	cancel := func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if _, ok := d.subscribers[ch]; ok {
			delete(d.subscribers, ch)
			close(ch)
		}
	}
	return ch, cancel
}

// SubscriberCount returns the number of active subscribers.
func (d *Document) SubscriberCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.subscribers)
}
