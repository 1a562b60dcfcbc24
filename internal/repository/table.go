package repository

import (
	"errors"
	"slices"
	"sync"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicate      = errors.New("duplicate key")
)

// table is an ordered in-memory collection keyed by integer id. Every read
// hands out copies and every write happens under the table's lock.
type table[T any] struct {
	mu    sync.RWMutex
	rows  []T
	id    func(T) int
	setID func(*T, int)
	clone func(T) T
	// key returns the unique key of a row, "" for none
	key func(T) string
}

func newTable[T any](id func(T) int, setID func(*T, int)) *table[T] {
	return &table[T]{
		id:    id,
		setID: setID,
		clone: func(v T) T { return v },
	}
}

func (t *table[T]) all() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, 0, len(t.rows))
	for _, row := range t.rows {
		out = append(out, t.clone(row))
	}
	return out
}

func (t *table[T]) find(id int) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if i := t.index(id); i >= 0 {
		return t.clone(t.rows[i]), nil
	}
	var zero T
	return zero, ErrRecordNotFound
}

func (t *table[T]) filter(keep func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := []T{}
	for _, row := range t.rows {
		if keep(row) {
			out = append(out, t.clone(row))
		}
	}
	return out
}

// insert assigns the next id (max+1, or 1 when empty) and appends rec
func (t *table[T]) insert(rec T) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	rec = t.clone(rec)
	t.setID(&rec, t.nextID())
	if t.taken(rec) {
		var zero T
		return zero, ErrDuplicate
	}
	t.rows = append(t.rows, rec)
	return t.clone(rec), nil
}

// mutate runs fn on the current row and stores its result in one critical section
func (t *table[T]) mutate(id int, fn func(T) (T, error)) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	var zero T
	i := t.index(id)
	if i < 0 {
		return zero, ErrRecordNotFound
	}
	next, err := fn(t.clone(t.rows[i]))
	if err != nil {
		return zero, err
	}
	t.setID(&next, id)
	if t.taken(next) {
		return zero, ErrDuplicate
	}
	t.rows[i] = t.clone(next)
	return t.clone(next), nil
}

func (t *table[T]) remove(id int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := t.index(id)
	if i < 0 {
		return ErrRecordNotFound
	}
	t.rows = slices.Delete(t.rows, i, i+1)
	return nil
}

func (t *table[T]) reset(rows []T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = make([]T, 0, len(rows))
	for _, row := range rows {
		t.rows = append(t.rows, t.clone(row))
	}
}

func (t *table[T]) index(id int) int {
	return slices.IndexFunc(t.rows, func(row T) bool { return t.id(row) == id })
}

func (t *table[T]) nextID() int {
	next := 1
	for _, row := range t.rows {
		if id := t.id(row); id >= next {
			next = id + 1
		}
	}
	return next
}

// taken reports whether another row already holds rec's unique key
func (t *table[T]) taken(rec T) bool {
	if t.key == nil {
		return false
	}
	k := t.key(rec)
	if k == "" {
		return false
	}
	for _, row := range t.rows {
		if t.id(row) != t.id(rec) && t.key(row) == k {
			return true
		}
	}
	return false
}
