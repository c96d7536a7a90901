package event

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// Record is one collision as stored by a Recorder
type Record struct {
	Tick    uint64 `msgpack:"tick"`
	Subject uint64 `msgpack:"subject"`
	Other   uint64 `msgpack:"other"`
}

// Recorder writes every CollisionEvent published on a bus to an io.Writer
// as a stream of msgpack-encoded Records. Writing stops at the first error.
type Recorder struct {
	mu    sync.Mutex
	enc   *msgpack.Encoder
	sub   *Subscription
	count int
	err   error
}

// NewRecorder subscribes to CollisionDetected on bus and records to w
func NewRecorder(bus *Bus, w io.Writer) *Recorder {
	r := &Recorder{enc: msgpack.NewEncoder(w)}
	r.sub = bus.Subscribe(CollisionDetected, r.record)
	return r
}

func (r *Recorder) record(e Event) {
	ev, ok := e.(*CollisionEvent)
	if !ok {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return
	}
	if err := r.enc.Encode(Record{Tick: ev.Tick, Subject: ev.Subject, Other: ev.Other}); err != nil {
		r.err = fmt.Errorf("failed to write record %d: %w", r.count, err)
		return
	}
	r.count++
}

// Count returns the number of records written
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Close unsubscribes and returns the first write error
func (r *Recorder) Close() error {
	r.sub.Cancel()
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// ReadRecords decodes a stream written by a Recorder
func ReadRecords(rd io.Reader) ([]Record, error) {
	dec := msgpack.NewDecoder(rd)
	var records []Record
	for {
		var rec Record
		err := dec.Decode(&rec)
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return records, fmt.Errorf("failed to read record %d: %w", len(records), err)
		}
		records = append(records, rec)
	}
}
