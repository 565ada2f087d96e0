package dict

type entry[K comparable, V any] struct {
	key  K
	val  V
	next *entry[K, V]
}
