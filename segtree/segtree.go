package segtree

import "fmt"

// New builds a tree over a copy of values combined with op.
func New[T any](values []T, op Op[T]) (*Tree[T], error) {
	if len(values) == 0 {
		return nil, ErrEmpty
	}
	if op == nil {
		return nil, ErrNilOp
	}
	n := len(values)
	p := 1
	for p < n {
		p <<= 1
	}
	t := &Tree[T]{
		n:    n,
		p:    p,
		op:   op,
		tree: make([]T, 2*p),
		set:  make([]bool, 2*p),
	}
	copy(t.tree[p:], values)
	for i := p; i < p+n; i++ {
		t.set[i] = true
	}
	for i := p - 1; i > 0; i-- {
		t.pull(i)
	}

	return t, nil
}

// Len returns the number of values.
func (t *Tree[T]) Len() int { return t.n }

// Get returns the value at index i.
func (t *Tree[T]) Get(i int) (T, error) {
	if err := t.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}

	return t.tree[t.p+i], nil
}

// Query combines the values in [l, r], both inclusive and 0-based.
func (t *Tree[T]) Query(l, r int) (T, error) {
	var zero T
	if err := t.checkIndex(l); err != nil {
		return zero, err
	}
	if err := t.checkIndex(r); err != nil {
		return zero, err
	}
	if l > r {
		return zero, fmt.Errorf("%w: [%d, %d]", ErrBadRange, l, r)
	}
	v, _ := t.query(l, r, 1, 0, t.p-1)

	return v, nil
}

// query combines [l, r] within node i covering [tl, tr]; ok is false when
// the intersection holds no value.
func (t *Tree[T]) query(l, r, i, tl, tr int) (v T, ok bool) {
	if l > r {
		return v, false
	}
	if l == tl && r == tr {
		return t.tree[i], t.set[i]
	}
	tm := (tl + tr) / 2
	left, lok := t.query(l, min(r, tm), 2*i, tl, tm)
	right, rok := t.query(max(l, tm+1), r, 2*i+1, tm+1, tr)

	return t.combine(left, lok, right, rok)
}

// Update sets the value at index i and recomputes its ancestors.
func (t *Tree[T]) Update(i int, v T) error {
	if err := t.checkIndex(i); err != nil {
		return err
	}
	i += t.p
	t.tree[i] = v
	for i > 1 {
		i /= 2
		t.pull(i)
	}

	return nil
}

// pull recomputes node i from its two children.
func (t *Tree[T]) pull(i int) {
	t.tree[i], t.set[i] = t.combine(t.tree[2*i], t.set[2*i], t.tree[2*i+1], t.set[2*i+1])
}

// combine applies op when both sides hold a value, otherwise passes the
// present side through.
func (t *Tree[T]) combine(left T, lok bool, right T, rok bool) (T, bool) {
	switch {
	case lok && rok:
		return t.op(left, right), true
	case lok:
		return left, true
	case rok:
		return right, true
	default:
		var zero T
		return zero, false
	}
}

func (t *Tree[T]) checkIndex(i int) error {
	if i < 0 || i >= t.n {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, t.n)
	}

	return nil
}
