package services

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/abase_form_kit/internal/core/domain"
	portssvc "github.com/SscSPs/abase_form_kit/internal/core/ports/services"
	"github.com/SscSPs/abase_form_kit/internal/utils/brdocs"
)

// DefaultCEPDebounce is how long typing must pause before a lookup starts.
const DefaultCEPDebounce = 500 * time.Millisecond

// CEPLookupResult is one completed lookup. Seq grows with every lookup the
// session starts.
type CEPLookupResult struct {
	Seq     uint64
	CEP     string
	Address *domain.Address
	Err     error
}

// CEPLookupSession drives the lookups of a single CEP field. Typing restarts a
// debounce timer; leaving the field looks up at once. Results reach deliver in
// sequence order: a result older than one already delivered is dropped.
type CEPLookupSession struct {
	lookup  portssvc.AddressReaderSvc
	delay   time.Duration
	deliver func(CEPLookupResult)

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.Mutex
	timer  *time.Timer
	gen    uint64 // bumped on every keystroke, invalidates armed timers
	seq    uint64
	closed bool

	deliverMu sync.Mutex
	delivered uint64
}

// NewCEPLookupSession starts a session. deliver is called from the lookup
// goroutines, never concurrently with itself. A non-positive delay uses
// DefaultCEPDebounce.
func NewCEPLookupSession(ctx context.Context, lookup portssvc.AddressReaderSvc, delay time.Duration, deliver func(CEPLookupResult)) *CEPLookupSession {
	if delay <= 0 {
		delay = DefaultCEPDebounce
	}
	ctx, cancel := context.WithCancel(ctx)
	return &CEPLookupSession{
		lookup:  lookup,
		delay:   delay,
		deliver: deliver,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Input handles a keystroke and returns the masked field text.
func (s *CEPLookupSession) Input(text string) string {
	masked := brdocs.MaskCEP(text)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return masked
	}
	s.stopTimerLocked()
	if !brdocs.ValidCEP(masked) {
		return masked
	}

	gen := s.gen
	cep := brdocs.Digits(masked)
	s.timer = time.AfterFunc(s.delay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed || s.gen != gen {
			return
		}
		s.timer = nil
		s.startLocked(cep)
	})
	return masked
}

// Blur cancels a pending debounce and looks up text right away when it is a
// complete CEP. It returns the sequence token of the lookup, or 0.
func (s *CEPLookupSession) Blur(text string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0
	}
	s.stopTimerLocked()
	if !brdocs.ValidCEP(text) {
		return 0
	}
	return s.startLocked(brdocs.Digits(text))
}

// Close stops the timer, cancels lookups in flight and waits for them.
// No result is delivered after Close returns.
func (s *CEPLookupSession) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.stopTimerLocked()
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()
}

func (s *CEPLookupSession) stopTimerLocked() {
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *CEPLookupSession) startLocked(cep string) uint64 {
	s.seq++
	seq := s.seq
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		addr, err := s.lookup.LookupCEP(s.ctx, cep)
		s.publish(CEPLookupResult{Seq: seq, CEP: brdocs.MaskCEP(cep), Address: addr, Err: err})
	}()
	return seq
}

func (s *CEPLookupSession) publish(res CEPLookupResult) {
	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()
	if res.Seq < s.delivered || s.ctx.Err() != nil {
		return
	}
	s.delivered = res.Seq
	if s.deliver != nil {
		s.deliver(res)
	}
}
