// Package dedupe holds the in-memory backend sink.go's DedupingWriterSink
// buffers words into before flushing them, unique, to the underlying
// writer.
package dedupe

import "runtime/debug"

// MapBackend deduplicates words with a plain Go map. A lexicon dedupe
// set is bounded by the lexicon's own word count, never large enough to
// warrant the teacher's on-disk LevelDB fallback for oversize inputs.
type MapBackend struct {
	storage map[string]struct{}
}

func NewMapBackend() *MapBackend {
	return &MapBackend{storage: map[string]struct{}{}}
}

func (m *MapBackend) Upsert(word string) {
	m.storage[word] = struct{}{}
}

func (m *MapBackend) IterCallback(callback func(word string)) {
	for k := range m.storage {
		callback(k)
	}
}

func (m *MapBackend) Cleanup() {
	m.storage = nil
	debug.FreeOSMemory()
}
