package lexsearch

import (
	"io"
	"sync"

	"github.com/projectdiscovery/fasttemplate"
)

// Sink receives one matched word per call, in ascending match order
// (spec §6.2's callback pointer translated to a Go interface capability
// per §9 "Callback I/O"). A plain function satisfies it via SinkFunc.
type Sink interface {
	Emit(word []byte) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(word []byte) error

func (f SinkFunc) Emit(word []byte) error { return f(word) }

// WriterSink formats each word through a fasttemplate template (default
// "{{word}}\n") and writes it to w — the straightforward sink cmd/lexsearch
// uses for one-shot search output, analogous to how the teacher's
// mutator.go runs every generated permutation through a fasttemplate
// template before emitting it.
type WriterSink struct {
	w      io.Writer
	format string
}

// NewWriterSink builds a WriterSink. format must reference "{{word}}"; an
// empty format defaults to "{{word}}\n".
func NewWriterSink(w io.Writer, format string) (*WriterSink, error) {
	if format == "" {
		format = "{{word}}\n"
	}
	if _, err := fasttemplate.NewTemplate(format, "{{", "}}"); err != nil {
		return nil, err
	}
	return &WriterSink{w: w, format: format}, nil
}

func (s *WriterSink) Emit(word []byte) error {
	out := fasttemplate.ExecuteStringStd(s.format, "{{", "}}", map[string]interface{}{
		"word": string(word),
	})
	_, err := io.WriteString(s.w, out)
	return err
}

// DedupingWriterSink wraps an io.Writer with deduplication across
// however many Emit calls it receives — including calls spanning several
// independent Search calls, the scenario the teacher's DedupingWriter
// was built for (merging permutation batches into one deduplicated
// output stream). Words are buffered until Close flushes the unique
// survivors to the underlying writer, one per line.
type DedupingWriterSink struct {
	w         io.Writer
	inputCh   chan string
	blacklist map[string]bool
	wg        sync.WaitGroup
	count     int
	countMu   sync.Mutex
	closed    bool
}

// NewDedupingWriterSink creates a DedupingWriterSink. seed pre-populates
// words that should be silently dropped even though they'd otherwise be
// unique (e.g. words already emitted by an earlier, unrelated sink).
func NewDedupingWriterSink(w io.Writer, seed ...string) *DedupingWriterSink {
	blacklist := make(map[string]bool, len(seed))
	for _, item := range seed {
		blacklist[item] = true
	}
	inputCh := make(chan string, 100)
	s := &DedupingWriterSink{w: w, inputCh: inputCh, blacklist: blacklist}
	s.wg.Add(1)
	go s.process(inputCh)
	return s
}

func (s *DedupingWriterSink) process(inputCh chan string) {
	defer s.wg.Done()
	d := newWordDedupe(inputCh)
	d.drain()
	for value := range d.results() {
		if s.blacklist[value] || value == "" {
			continue
		}
		if _, err := s.w.Write([]byte(value + "\n")); err != nil {
			continue
		}
		s.countMu.Lock()
		s.count++
		s.countMu.Unlock()
	}
}

// Emit queues word for deduplication. It never blocks on I/O: the word
// is only written once Close flushes the accumulated unique set.
func (s *DedupingWriterSink) Emit(word []byte) error {
	if s.closed {
		return io.ErrClosedPipe
	}
	s.inputCh <- string(word)
	return nil
}

// Close flushes the deduplicated words to the underlying writer and
// waits for the flush to finish. Safe to call once.
func (s *DedupingWriterSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	close(s.inputCh)
	s.wg.Wait()
	return nil
}

// Count returns the number of unique words written so far.
func (s *DedupingWriterSink) Count() int {
	s.countMu.Lock()
	defer s.countMu.Unlock()
	return s.count
}
