package dict

// iterator walks a chain head to tail. It holds the following entry before
// handing out the current one, so the current entry may be released.
type iterator[K comparable, V any] struct {
	entry, nextEntry *entry[K, V]
}

func (dict *Dict[K, V]) iterator() *iterator[K, V] {
	return &iterator[K, V]{nextEntry: dict.head}
}

func (iter *iterator[K, V]) Next() *entry[K, V] {
	iter.entry = iter.nextEntry
	if iter.entry != nil {
		iter.nextEntry = iter.entry.next
	}
	return iter.entry
}

// find returns the entry stored under key and its predecessor. prev is nil
// when he is the head; both are nil when key is absent.
func (dict *Dict[K, V]) find(key K) (prev, he *entry[K, V]) {
	iter := dict.iterator()
	for he = iter.Next(); he != nil; he = iter.Next() {
		if dict.compareKey(key, he.key) {
			return prev, he
		}
		prev = he
	}
	return nil, nil
}

func (dict *Dict[K, V]) unlink(prev, he *entry[K, V]) {
	if prev == nil {
		dict.head = he.next
	} else {
		prev.next = he.next
	}
	he.next = nil
}
