package store

import (
	"sort"
	"sync"

	"github.com/LemoFoundationLtd/basex/common/basex"
	"github.com/LemoFoundationLtd/basex/common/log"
	"github.com/LemoFoundationLtd/basex/store/leveldb"
)

// Registry keeps named alphabets. Presets are always available and can't be
// overwritten, user alphabets are persisted in a LevelDB database.
//
// Alphabets handed out by Get are built once and cached, the cache only
// grows with immutable values so they can be shared between goroutines.
type Registry struct {
	db *leveldb.LevelDBDatabase

	lock  sync.RWMutex
	cache map[string]basex.Alphabet
}

// NewRegistry opens the alphabet database in dir.
func NewRegistry(dir string) (*Registry, error) {
	db, err := leveldb.NewLevelDBDatabase(dir, 16, 16)
	if err != nil {
		return nil, err
	}
	db.Meter()
	return &Registry{db: db, cache: make(map[string]basex.Alphabet)}, nil
}

// Put stores symbols under name, replacing an older alphabet of that name.
func (r *Registry) Put(name, symbols string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if _, ok := basex.Preset(name); ok {
		return ErrPresetReadOnly
	}
	alpha, err := NewAlphabet(symbols)
	if err != nil {
		return err
	}
	if err := leveldb.Set(r.db, leveldb.AlphabetKey(name), []byte(symbols)); err != nil {
		return err
	}

	r.lock.Lock()
	r.cache[name] = alpha
	r.lock.Unlock()
	log.Event(log.RegistryEvent, "Alphabet stored", "name", name, "base", alpha.Base())
	return nil
}

// Get returns the alphabet called name.
func (r *Registry) Get(name string) (basex.Alphabet, error) {
	if alpha, ok := basex.Preset(name); ok {
		return alpha, nil
	}
	r.lock.RLock()
	alpha, ok := r.cache[name]
	r.lock.RUnlock()
	if ok {
		return alpha, nil
	}

	symbols, err := r.Symbols(name)
	if err != nil {
		return nil, err
	}
	// the database may have been written by hand
	alpha, err = NewAlphabet(symbols)
	if err != nil {
		log.Warn("Stored alphabet is invalid", "name", name, "err", err)
		return nil, err
	}
	r.lock.Lock()
	r.cache[name] = alpha
	r.lock.Unlock()
	return alpha, nil
}

// Symbols returns the symbol string of the alphabet called name.
func (r *Registry) Symbols(name string) (string, error) {
	if alpha, ok := basex.Preset(name); ok {
		return alpha.String(), nil
	}
	if ValidateName(name) != nil {
		return "", ErrAlphabetNotFound
	}
	val, err := leveldb.Get(r.db, leveldb.AlphabetKey(name))
	if err != nil {
		return "", err
	}
	if val == nil {
		return "", ErrAlphabetNotFound
	}
	return string(val), nil
}

// Delete removes the alphabet called name.
func (r *Registry) Delete(name string) error {
	if _, ok := basex.Preset(name); ok {
		return ErrPresetReadOnly
	}
	if _, err := r.Symbols(name); err != nil {
		return err
	}
	if err := r.db.Delete(leveldb.AlphabetKey(name)); err != nil {
		return err
	}
	r.lock.Lock()
	delete(r.cache, name)
	r.lock.Unlock()
	log.Event(log.RegistryEvent, "Alphabet removed", "name", name)
	return nil
}

// Names returns the names of the stored alphabets in sorted order. Presets
// are not included.
func (r *Registry) Names() ([]string, error) {
	var names []string
	it := r.db.NewIteratorWithPrefix(leveldb.AlphabetPrefix)
	defer it.Release()
	for it.Next() {
		if name, ok := leveldb.AlphabetName(it.Key()); ok {
			names = append(names, name)
		}
	}
	if err := it.Error(); err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

func (r *Registry) Close() error {
	return r.db.Close()
}
