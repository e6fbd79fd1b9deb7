// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"golang.org/x/image/math/fixed"

	"gioui.org/typeset/font"
)

type layoutCache struct {
	m          map[layoutKey]*layoutElem
	head, tail *layoutElem
	// evicted counts the entries dropped for space.
	evicted int
}

type layoutElem struct {
	next, prev *layoutElem
	key        layoutKey
	run        Run
}

type layoutKey struct {
	size fixed.Int26_6
	str  string
	font font.Font
}

const maxSize = 1000

func (l *layoutCache) Get(k layoutKey) (Run, bool) {
	if lt, ok := l.m[k]; ok {
		l.remove(lt)
		l.insert(lt)
		return lt.run, true
	}
	return Run{}, false
}

// Put adds a run to the cache and reports whether the oldest entry
// was evicted to make room.
func (l *layoutCache) Put(k layoutKey, r Run) bool {
	if l.m == nil {
		l.m = make(map[layoutKey]*layoutElem)
		l.head = new(layoutElem)
		l.tail = new(layoutElem)
		l.head.prev = l.tail
		l.tail.next = l.head
	}
	if old, ok := l.m[k]; ok {
		l.remove(old)
	}
	val := &layoutElem{key: k, run: r}
	l.m[k] = val
	l.insert(val)
	if len(l.m) > maxSize {
		oldest := l.tail.next
		l.remove(oldest)
		delete(l.m, oldest.key)
		l.evicted++
		return true
	}
	return false
}

// Len returns the number of cached runs.
func (l *layoutCache) Len() int {
	return len(l.m)
}

func (l *layoutCache) remove(lt *layoutElem) {
	lt.next.prev = lt.prev
	lt.prev.next = lt.next
}

func (l *layoutCache) insert(lt *layoutElem) {
	lt.next = l.head
	lt.prev = l.head.prev
	lt.prev.next = lt
	lt.next.prev = lt
}
