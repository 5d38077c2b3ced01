// Package registry manages a set of named B+Trees, each addressable
// by name and identified by a KSUID minted when it is first created.
// A single Tree is not safe for concurrent use (see pkg/bptree); the
// registry is the layer that serializes access to each one so a
// caller can share one registry across goroutines.
package registry

import (
	"sort"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/segmentio/ksuid"

	"github.com/ssargent/bptreedb/pkg/bptree"
)

// Entry is a registered tree together with its identity and the lock
// guarding it.
type Entry struct {
	ID   ksuid.KSUID
	Name string
	Tree *bptree.Tree

	mutex sync.Mutex
}

// Lock serializes access to the entry's tree. Callers must hold it for
// the duration of any operation against Tree.
func (e *Entry) Lock()   { e.mutex.Lock() }
func (e *Entry) Unlock() { e.mutex.Unlock() }

// Registry is a concurrency-safe collection of named trees.
type Registry struct {
	mutex   sync.RWMutex
	byName  map[string]*Entry
	order   int
	recFunc func(name string) bptree.Recorder
}

// New creates a registry whose trees default to order when newly
// created via GetOrCreate.
func New(order int) *Registry {
	return &Registry{
		byName: make(map[string]*Entry),
		order:  order,
	}
}

// WithRecorderFactory installs a function called once per tree at
// creation time to build that tree's Recorder, letting each tree
// report metrics under its own name.
func (r *Registry) WithRecorderFactory(f func(name string) bptree.Recorder) *Registry {
	r.recFunc = f
	return r
}

// Create registers a new named tree with the given order (0 uses the
// registry's default), rejecting name as a duplicate if it is already
// registered.
func (r *Registry) Create(name string, order int) (*Entry, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.byName[name]; ok {
		return nil, errors.Newf("registry: tree %q already exists", name)
	}

	if order == 0 {
		order = r.order
	}
	e, err := r.newEntry(name, order)
	if err != nil {
		return nil, err
	}
	r.byName[name] = e
	return e, nil
}

// GetOrCreate returns the named entry, creating it at the registry's
// default order (with a freshly minted KSUID) if it does not yet
// exist. Unlike Create, a pre-existing name is not an error — this is
// the entry point the CLI commands and the serve command's snapshot
// loader use to open a tree they don't know to already exist. The HTTP
// handlers use Get and Create instead.
func (r *Registry) GetOrCreate(name string) (*Entry, error) {
	r.mutex.RLock()
	if e, ok := r.byName[name]; ok {
		r.mutex.RUnlock()
		return e, nil
	}
	r.mutex.RUnlock()

	r.mutex.Lock()
	defer r.mutex.Unlock()
	if e, ok := r.byName[name]; ok {
		return e, nil
	}

	e, err := r.newEntry(name, r.order)
	if err != nil {
		return nil, err
	}
	r.byName[name] = e
	return e, nil
}

// newEntry builds a fresh entry. Callers must hold r.mutex for writing.
func (r *Registry) newEntry(name string, order int) (*Entry, error) {
	tree, err := bptree.New(order)
	if err != nil {
		return nil, errors.Wrapf(err, "registry: creating tree %q", name)
	}
	if r.recFunc != nil {
		tree.WithRecorder(r.recFunc(name))
	}
	return &Entry{ID: ksuid.New(), Name: name, Tree: tree}, nil
}

// Get returns the named entry, reporting false if it does not exist.
func (r *Registry) Get(name string) (*Entry, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	e, ok := r.byName[name]
	return e, ok
}

// Drop removes the named entry, purging its tree first so any
// installed release hook still fires for outstanding Data records.
func (r *Registry) Drop(name string) bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	e, ok := r.byName[name]
	if !ok {
		return false
	}
	e.Lock()
	e.Tree.Purge()
	e.Unlock()
	delete(r.byName, name)
	return true
}

// Names returns the names of every registered tree, sorted
// lexically for stable CLI/API listing.
func (r *Registry) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
