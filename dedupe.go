package lexsearch

import "github.com/lexsearch/lexsearch/internal/dedupe"

// wordDedupe drains a channel of candidate words into an in-memory set
// and hands back the unique survivors, in no particular order — the
// buffering step DedupingWriterSink uses to collapse repeated matches
// when several Search calls (e.g. fanning one query across several
// lexicon shards) are merged into a single output stream.
type wordDedupe struct {
	receive <-chan string
	backend *dedupe.MapBackend
}

func newWordDedupe(ch <-chan string) *wordDedupe {
	return &wordDedupe{receive: ch, backend: dedupe.NewMapBackend()}
}

// drain consumes every value off the channel into the backend. Returns
// once the channel is closed.
func (d *wordDedupe) drain() {
	for val := range d.receive {
		d.backend.Upsert(val)
	}
}

// results streams the deduplicated words over a fresh channel, closing
// it once every word has been delivered.
func (d *wordDedupe) results() <-chan string {
	send := make(chan string, 100)
	go func() {
		defer close(send)
		d.backend.IterCallback(func(word string) {
			send <- word
		})
		d.backend.Cleanup()
	}()
	return send
}
