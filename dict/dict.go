package dict

import (
	"fmt"

	"github.com/dchest/siphash"
)

var dictSeedKey = make([]byte, 16)

// Dict is a key/item container kept as a singly linked chain. Keys are
// unique; entries stay in insertion order. The zero value is an empty dict.
// A Dict is not safe for concurrent use.
type Dict[K comparable, V any] struct {
	typ      *Type[K, V]
	privData interface{}
	head     *entry[K, V]
	used     int64
}

// Type holds the optional callbacks of a dict. Any of them may be nil.
type Type[K comparable, V any] struct {
	KeyDup        func(privData interface{}, key K) K
	ValDup        func(privData interface{}, val V) V
	KeyCompare    func(privData interface{}, key1, key2 K) bool
	KeyDestructor func(privData interface{}, key K)
	ValDestructor func(privData interface{}, val V)
}

func Create[K comparable, V any](typ *Type[K, V], privData interface{}) *Dict[K, V] {
	d := new(Dict[K, V])
	d.init(typ, privData)
	return d
}

func New[K comparable, V any]() *Dict[K, V] {
	return Create[K, V](nil, nil)
}

func (dict *Dict[K, V]) init(typ *Type[K, V], privData interface{}) {
	dict.reset()
	dict.typ = typ
	dict.privData = privData
}

func (dict *Dict[K, V]) reset() {
	dict.head = nil
	dict.used = 0
}

func (dict *Dict[K, V]) Len() int64 {
	return dict.used
}

func (dict *Dict[K, V]) IsEmpty() bool {
	return dict.head == nil
}

func (dict *Dict[K, V]) compareKey(key1, key2 K) bool {
	if dict.typ != nil && dict.typ.KeyCompare != nil {
		return dict.typ.KeyCompare(dict.privData, key2, key1)
	}
	return key1 == key2
}

func (dict *Dict[K, V]) dupKey(key K) K {
	if dict.typ != nil && dict.typ.KeyDup != nil {
		return dict.typ.KeyDup(dict.privData, key)
	}
	return key
}

func (dict *Dict[K, V]) dupVal(val V) V {
	if dict.typ != nil && dict.typ.ValDup != nil {
		return dict.typ.ValDup(dict.privData, val)
	}
	return val
}

func (dict *Dict[K, V]) freeEntry(he *entry[K, V]) {
	if dict.typ != nil {
		if dict.typ.KeyDestructor != nil {
			dict.typ.KeyDestructor(dict.privData, he.key)
		}
		if dict.typ.ValDestructor != nil {
			dict.typ.ValDestructor(dict.privData, he.val)
		}
	}
	var zeroK K
	var zeroV V
	he.key, he.val, he.next = zeroK, zeroV, nil
}

// Insert appends key with val at the tail of the chain. It returns false,
// leaving the stored item as it was, when key is already present.
func (dict *Dict[K, V]) Insert(key K, val V) bool {
	var last *entry[K, V]
	for he := dict.head; he != nil; he = he.next {
		if dict.compareKey(key, he.key) {
			return false
		}
		last = he
	}

	he := &entry[K, V]{key: dict.dupKey(key), val: dict.dupVal(val)}
	if last == nil {
		dict.head = he
	} else {
		last.next = he
	}
	dict.used++
	return true
}

// Add is Insert.
func (dict *Dict[K, V]) Add(key K, val V) bool {
	return dict.Insert(key, val)
}

// Lookup returns a pointer to the item stored under key, or nil. The pointer
// is only valid until the next Insert or Remove on dict.
func (dict *Dict[K, V]) Lookup(key K) *V {
	_, he := dict.find(key)
	if he == nil {
		return nil
	}
	return &he.val
}

func (dict *Dict[K, V]) FetchValue(key K) (V, bool) {
	if v := dict.Lookup(key); v != nil {
		return *v, true
	}
	var zero V
	return zero, false
}

// Remove unlinks and releases the entry stored under key. It reports
// whether such an entry existed.
func (dict *Dict[K, V]) Remove(key K) bool {
	prev, he := dict.find(key)
	if he == nil {
		return false
	}
	dict.unlink(prev, he)
	dict.freeEntry(he)
	dict.used--
	return true
}

// Delete removes key if it is present. It is the same as Remove.
func (dict *Dict[K, V]) Delete(key K) bool {
	return dict.Remove(key)
}

// Release frees every entry. The dict is empty and usable afterwards.
func (dict *Dict[K, V]) Release() {
	he := dict.head
	dict.reset()
	for he != nil {
		next := he.next
		dict.freeEntry(he)
		he = next
	}
}

// Copy returns a deep copy of dict sharing no entries with it.
func (dict *Dict[K, V]) Copy() *Dict[K, V] {
	d := Create(dict.typ, dict.privData)
	d.head, d.used = dict.dupChain()
	return d
}

// CopyFrom releases the entries of dict and replaces them with a deep copy
// of src. Copying a dict onto itself does nothing.
func (dict *Dict[K, V]) CopyFrom(src *Dict[K, V]) *Dict[K, V] {
	if dict == src {
		return dict
	}
	dict.Release()
	dict.typ, dict.privData = src.typ, src.privData
	dict.head, dict.used = src.dupChain()
	return dict
}

// Move hands the chain of dict over to a new dict in constant time. dict is
// left empty.
func (dict *Dict[K, V]) Move() *Dict[K, V] {
	d := Create(dict.typ, dict.privData)
	d.head, d.used = dict.head, dict.used
	dict.reset()
	return d
}

// MoveFrom releases the entries of dict and takes over the chain of src,
// leaving src empty. Moving a dict onto itself does nothing.
func (dict *Dict[K, V]) MoveFrom(src *Dict[K, V]) *Dict[K, V] {
	if dict == src {
		return dict
	}
	dict.Release()
	dict.typ, dict.privData = src.typ, src.privData
	dict.head, dict.used = src.head, src.used
	src.reset()
	return dict
}

func (dict *Dict[K, V]) dupChain() (*entry[K, V], int64) {
	var head, tail *entry[K, V]
	var n int64
	for he := dict.head; he != nil; he = he.next {
		c := &entry[K, V]{key: dict.dupKey(he.key), val: dict.dupVal(he.val)}
		if tail == nil {
			head = c
		} else {
			tail.next = c
		}
		tail = c
		n++
	}
	return head, n
}

func SetHashFunctionSeed(seed []byte) {
	dictSeedKey = make([]byte, 16)
	copy(dictSeedKey, seed)
}

// Digest hashes the displayed form of every entry, head to tail. Dicts with
// the same contents in the same order share a digest for a given seed.
func (dict *Dict[K, V]) Digest() uint64 {
	if dict.head == nil {
		return 0
	}
	h := siphash.New(dictSeedKey)
	iter := dict.iterator()
	for he := iter.Next(); he != nil; he = iter.Next() {
		fmt.Fprintf(h, entryFormat, he.key, he.val)
	}
	return h.Sum64()
}
