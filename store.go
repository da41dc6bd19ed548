package fundflow

import (
	"bytes"
	"fmt"
	"log"
	"sync"
)

// Backend is the durable persistence boundary: one opaque blob under one
// fixed key.
type Backend interface {
	// Load returns the current blob. A missing key may be reported as an
	// error or as empty data; the store treats both as an empty document.
	Load() ([]byte, error)
	// Save atomically replaces the blob.
	Save(data []byte) error
}

// Watcher is implemented by backends that can observe writes made by other
// processes sharing the same key. The store uses it to extend change
// notification across process boundaries.
type Watcher interface {
	// Watch invokes onChange after every external write until stop is called.
	Watch(onChange func()) (stop func(), err error)
}

// Store is the single source of truth for the document. Every mutation is a
// load-migrate-mutate-persist cycle serialized behind one mutex, so two
// in-process mutations can never race on the read; concurrent writers in
// other processes remain last-write-wins, reconciled only through change
// notification.
type Store struct {
	backend Backend

	mu sync.Mutex // serializes every read-modify-write cycle

	subMu     sync.Mutex
	subs      map[int]func(Document)
	nextSub   int
	stopWatch func()
}

// NewStore creates a store over the given backend.
func NewStore(backend Backend) *Store {
	return &Store{backend: backend, subs: make(map[int]func(Document))}
}

// Get loads, migrates, and returns the current document. Unreadable or
// corrupt storage yields a fresh empty document, never an error.
func (s *Store) Get() Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Summary returns the derived aggregates for the current document.
func (s *Store) Summary() Summary {
	return Summarize(s.Get())
}

// load reads and migrates the document. Callers must hold s.mu.
func (s *Store) load() Document {
	data, err := s.backend.Load()
	if err != nil {
		log.Printf("storage unreadable, starting from an empty document: %v", err)
		return NewDocument()
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return NewDocument()
	}
	doc, err := DecodeDocument(data)
	if err != nil {
		log.Printf("storage corrupt, starting from an empty document: %v", err)
		return NewDocument()
	}
	doc, healed := Migrate(doc)
	if healed {
		// Self-healing write: persist the upgraded shape so the migration
		// runs once, not on every load.
		if err := s.save(doc); err != nil {
			log.Printf("could not persist migrated document: %v", err)
		}
	}
	return doc
}

// save persists the document and, on success, announces the change to every
// subscriber. Callers must hold s.mu.
func (s *Store) save(doc Document) error {
	data, err := EncodeDocument(doc)
	if err != nil {
		return err
	}
	if err := s.backend.Save(data); err != nil {
		return fmt.Errorf("could not persist document: %w", err)
	}
	s.publish(doc)
	return nil
}

// update runs one mutation as a serialized read-modify-write cycle.
func (s *Store) update(fn func(*Document)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.load()
	fn(&doc)
	return s.save(doc)
}

// Subscribe registers a callback invoked with the current document
// immediately, then again after every persisted change, including changes
// made by other processes when the backend supports watching. The returned
// function detaches the callback; it is safe to call more than once.
//
// Callbacks may fire more than once for a single change (a local save is also
// observed by the backend watcher); they receive the fresh document each time
// and should be idempotent. Callbacks run synchronously on the goroutine that
// persisted the change and must not call back into the store.
func (s *Store) Subscribe(callback func(Document)) (unsubscribe func()) {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = callback
	if s.stopWatch == nil {
		s.startWatcher()
	}
	s.subMu.Unlock()

	callback(s.Get())

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			defer s.subMu.Unlock()
			delete(s.subs, id)
			if len(s.subs) == 0 && s.stopWatch != nil {
				s.stopWatch()
				s.stopWatch = nil
			}
		})
	}
}

// startWatcher bridges external writes into the local subscriber registry.
// Callers must hold s.subMu.
func (s *Store) startWatcher() {
	w, ok := s.backend.(Watcher)
	if !ok {
		return
	}
	stop, err := w.Watch(func() {
		s.publish(s.Get())
	})
	if err != nil {
		log.Printf("could not watch storage for external changes: %v", err)
		return
	}
	s.stopWatch = stop
}

// publish invokes every subscriber with its own copy of the document, in no
// particular order.
func (s *Store) publish(doc Document) {
	s.subMu.Lock()
	callbacks := make([]func(Document), 0, len(s.subs))
	for _, cb := range s.subs {
		callbacks = append(callbacks, cb)
	}
	s.subMu.Unlock()

	for _, cb := range callbacks {
		cb(doc.Clone())
	}
}
