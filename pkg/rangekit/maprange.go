package rangekit

import (
	"cmp"
	"maps"
	"slices"

	"github.com/emirpasic/gods/maps/treemap"
)

// EntryCursor walks the entries of a Go map in ascending key order.
// The key order is captured when the range is made,
// while values are looked up from the map at the time of the Value call.
type EntryCursor[K cmp.Ordered, V any] struct {
	m    map[K]V
	keys []K
	i    int
}

func (c EntryCursor[K, V]) Next() EntryCursor[K, V] {
	return EntryCursor[K, V]{m: c.m, keys: c.keys, i: c.i + 1}
}

func (c EntryCursor[K, V]) Value() Pair[K, V] {
	k := c.keys[c.i]
	return Pair[K, V]{First: k, Second: c.m[k]}
}

func (c EntryCursor[K, V]) Equal(oth EntryCursor[K, V]) bool { return c.i == oth.i }

// Entries returns the key-value pairs of m ordered by key.
// Inserting or deleting keys after the range is made invalidates it.
func Entries[K cmp.Ordered, V any](m map[K]V) Range[Pair[K, V], EntryCursor[K, V]] {
	keys := slices.Sorted(maps.Keys(m))
	return Range[Pair[K, V], EntryCursor[K, V]]{
		begin: EntryCursor[K, V]{m: m, keys: keys, i: 0},
		end:   EntryCursor[K, V]{m: m, keys: keys, i: len(keys)},
	}
}

// TreeEntryCursor walks a gods treemap in the order of its comparator.
type TreeEntryCursor[K, V any] struct {
	it  treemap.Iterator
	pos int
}

func (c TreeEntryCursor[K, V]) Next() TreeEntryCursor[K, V] {
	it := c.it // the treemap iterator is a value, advancing a copy keeps c intact
	it.Next()
	return TreeEntryCursor[K, V]{it: it, pos: c.pos + 1}
}

func (c TreeEntryCursor[K, V]) Value() Pair[K, V] {
	return Pair[K, V]{First: c.it.Key().(K), Second: c.it.Value().(V)}
}

func (c TreeEntryCursor[K, V]) Equal(oth TreeEntryCursor[K, V]) bool { return c.pos == oth.pos }

// TreeEntries returns the entries of an ordered treemap.
// The K and V type arguments must match the dynamic types stored in the treemap.
func TreeEntries[K, V any](m *treemap.Map) Range[Pair[K, V], TreeEntryCursor[K, V]] {
	begin := m.Iterator()
	begin.Next()
	return Range[Pair[K, V], TreeEntryCursor[K, V]]{
		begin: TreeEntryCursor[K, V]{it: begin, pos: 0},
		end:   TreeEntryCursor[K, V]{it: m.Iterator(), pos: m.Size()},
	}
}

// KeyCursor projects the key out of an entry cursor.
type KeyCursor[K, V any, C Cursor[Pair[K, V], C]] struct {
	cur C
}

func (c KeyCursor[K, V, C]) Next() KeyCursor[K, V, C] { return KeyCursor[K, V, C]{cur: c.cur.Next()} }

func (c KeyCursor[K, V, C]) Value() K { return c.cur.Value().First }

func (c KeyCursor[K, V, C]) Equal(oth KeyCursor[K, V, C]) bool { return c.cur.Equal(oth.cur) }

// ValueCursor projects the value out of an entry cursor.
type ValueCursor[K, V any, C Cursor[Pair[K, V], C]] struct {
	cur C
}

func (c ValueCursor[K, V, C]) Next() ValueCursor[K, V, C] {
	return ValueCursor[K, V, C]{cur: c.cur.Next()}
}

func (c ValueCursor[K, V, C]) Value() V { return c.cur.Value().Second }

func (c ValueCursor[K, V, C]) Equal(oth ValueCursor[K, V, C]) bool { return c.cur.Equal(oth.cur) }

// KeysOf projects the keys out of a range of entries.
func KeysOf[K, V any, C Cursor[Pair[K, V], C]](r Range[Pair[K, V], C]) Range[K, KeyCursor[K, V, C]] {
	return Range[K, KeyCursor[K, V, C]]{
		begin: KeyCursor[K, V, C]{cur: r.begin},
		end:   KeyCursor[K, V, C]{cur: r.end},
	}
}

// ValuesOf projects the values out of a range of entries.
func ValuesOf[K, V any, C Cursor[Pair[K, V], C]](r Range[Pair[K, V], C]) Range[V, ValueCursor[K, V, C]] {
	return Range[V, ValueCursor[K, V, C]]{
		begin: ValueCursor[K, V, C]{cur: r.begin},
		end:   ValueCursor[K, V, C]{cur: r.end},
	}
}

// Keys returns the keys of m in ascending order.
func Keys[K cmp.Ordered, V any](m map[K]V) Range[K, KeyCursor[K, V, EntryCursor[K, V]]] {
	return KeysOf(Entries(m))
}

// Values returns the values of m in the ascending order of their keys.
func Values[K cmp.Ordered, V any](m map[K]V) Range[V, ValueCursor[K, V, EntryCursor[K, V]]] {
	return ValuesOf(Entries(m))
}

// TreeKeys returns the keys of a treemap in the order of its comparator.
func TreeKeys[K, V any](m *treemap.Map) Range[K, KeyCursor[K, V, TreeEntryCursor[K, V]]] {
	return KeysOf(TreeEntries[K, V](m))
}

// TreeValues returns the values of a treemap in the order of their keys.
func TreeValues[K, V any](m *treemap.Map) Range[V, ValueCursor[K, V, TreeEntryCursor[K, V]]] {
	return ValuesOf(TreeEntries[K, V](m))
}
