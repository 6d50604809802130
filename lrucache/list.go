package lrucache

// entry is a node of the intrusive recency list, holding one cached pair.
type entry[K comparable, V any] struct {
	key        K
	value      V
	prev, next *entry[K, V]
}

// recencyList is a circular doubly-linked list with a sentinel root.
// root.next is the most-recently-used entry, root.prev the least.
type recencyList[K comparable, V any] struct {
	root entry[K, V]
	size int
}

// init links the root to itself (empty list).
func (l *recencyList[K, V]) init() {
	l.root.prev = &l.root
	l.root.next = &l.root
	l.size = 0
}

// pushFront inserts a new entry at the MRU position and returns it.
func (l *recencyList[K, V]) pushFront(key K, value V) *entry[K, V] {
	e := &entry[K, V]{key: key, value: value}
	l.insertAfter(e, &l.root)
	l.size++
	return e
}

// moveToFront promotes e to the MRU position.
func (l *recencyList[K, V]) moveToFront(e *entry[K, V]) {
	if l.root.next == e {
		return
	}
	l.unlink(e)
	l.insertAfter(e, &l.root)
}

// back returns the LRU entry, or nil when the list is empty.
func (l *recencyList[K, V]) back() *entry[K, V] {
	if l.size == 0 {
		return nil
	}
	return l.root.prev
}

// remove unlinks e and drops the count.
func (l *recencyList[K, V]) remove(e *entry[K, V]) {
	l.unlink(e)
	l.size--
	e.prev, e.next = nil, nil
}

// insertAfter links e directly after at; the count is pushFront's business.
func (l *recencyList[K, V]) insertAfter(e, at *entry[K, V]) {
	e.prev = at
	e.next = at.next
	e.prev.next = e
	e.next.prev = e
}

// unlink detaches e from its neighbors.
func (l *recencyList[K, V]) unlink(e *entry[K, V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
}
