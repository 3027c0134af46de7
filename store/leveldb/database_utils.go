package leveldb

import "bytes"

type DatabasePutter interface {
	Put(key []byte, value []byte) error
}

type DatabaseReader interface {
	Get(key []byte) (value []byte, err error)
}

type DatabaseDeleter interface {
	Delete(key []byte) error
}

var (
	AlphabetPrefix = []byte("AL")
	AlphabetSuffix = []byte("al")
)

// AlphabetKey returns the database key of the alphabet called name.
func AlphabetKey(name string) []byte {
	if len(name) <= 0 {
		return nil
	}
	key := make([]byte, 0, len(AlphabetPrefix)+len(name)+len(AlphabetSuffix))
	key = append(key, AlphabetPrefix...)
	key = append(key, name...)
	return append(key, AlphabetSuffix...)
}

// AlphabetName extracts the alphabet name of a key built by AlphabetKey.
func AlphabetName(key []byte) (string, bool) {
	if len(key) <= len(AlphabetPrefix)+len(AlphabetSuffix) ||
		!bytes.HasPrefix(key, AlphabetPrefix) || !bytes.HasSuffix(key, AlphabetSuffix) {
		return "", false
	}
	return string(key[len(AlphabetPrefix) : len(key)-len(AlphabetSuffix)]), true
}

func Set(db DatabasePutter, key []byte, val []byte) error {
	return db.Put(key, val)
}

func Get(db DatabaseReader, key []byte) ([]byte, error) {
	return db.Get(key)
}
