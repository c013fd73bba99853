package bst

// Len reports the number of values stored in the tree.
// Complexity: O(1)
func (t *Tree[T]) Len() int { return t.size }

// Empty reports whether the tree holds no values.
// Complexity: O(1)
func (t *Tree[T]) Empty() bool { return t.size == 0 }

// Insert adds v to the tree, descending left on smaller and right on
// larger until a nil link accepts the new leaf. Inserting a value that
// compares equal to a stored one is a no-op. Reports whether the tree
// changed.
// Complexity: O(height)
func (t *Tree[T]) Insert(v T) bool {
	if t.root == nil {
		t.root = &node[T]{val: v}
		t.size++

		return true
	}
	cur := t.root
	for {
		switch c := t.compare(v, cur.val); {
		case c < 0:
			if cur.left == nil {
				cur.left = &node[T]{val: v}
				t.size++

				return true
			}
			cur = cur.left
		case c > 0:
			if cur.right == nil {
				cur.right = &node[T]{val: v}
				t.size++

				return true
			}
			cur = cur.right
		default:
			// already present
			return false
		}
	}
}

// Remove deletes the value comparing equal to v, if present, and reports
// whether the tree changed. A leaf or one-child node is spliced out
// directly; a two-child node receives the value of its in-order successor
// (the minimum of its right subtree) and that successor node is spliced
// out instead. Exactly one node leaves the tree, and the ordering
// invariant is preserved.
// Complexity: O(height)
func (t *Tree[T]) Remove(v T) bool {
	var parent *node[T]
	cur := t.root
	for cur != nil {
		c := t.compare(v, cur.val)
		if c == 0 {
			break
		}
		parent = cur
		if c < 0 {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	if cur == nil {
		// absent value: silent no-op
		return false
	}

	if cur.left != nil && cur.right != nil {
		// two children: overwrite with the in-order successor's value,
		// then splice out the successor node instead
		succParent, succ := cur, cur.right
		for succ.left != nil {
			succParent, succ = succ, succ.left
		}
		cur.val = succ.val
		parent, cur = succParent, succ
	}

	// cur now has at most one child
	child := cur.left
	if child == nil {
		child = cur.right
	}
	switch {
	case parent == nil:
		t.root = child
	case parent.left == cur:
		parent.left = child
	default:
		parent.right = child
	}
	t.size--

	return true
}

// Contains reports whether a value comparing equal to v is stored.
// Complexity: O(height)
func (t *Tree[T]) Contains(v T) bool {
	cur := t.root
	for cur != nil {
		switch c := t.compare(v, cur.val); {
		case c < 0:
			cur = cur.left
		case c > 0:
			cur = cur.right
		default:
			return true
		}
	}

	return false
}

// Min returns the smallest stored value; ok is false on an empty tree.
// Complexity: O(height)
func (t *Tree[T]) Min() (v T, ok bool) {
	if t.root == nil {
		return v, false
	}
	cur := t.root
	for cur.left != nil {
		cur = cur.left
	}

	return cur.val, true
}

// Max returns the largest stored value; ok is false on an empty tree.
// Complexity: O(height)
func (t *Tree[T]) Max() (v T, ok bool) {
	if t.root == nil {
		return v, false
	}
	cur := t.root
	for cur.right != nil {
		cur = cur.right
	}

	return cur.val, true
}

// Height returns the number of edges on the longest root→leaf path:
// -1 for an empty tree, 0 for a single node. Computed level by level
// with an explicit frontier, so degenerate trees cannot overflow the
// stack.
// Complexity: O(n)
func (t *Tree[T]) Height() int {
	h := -1
	level := make([]*node[T], 0, 1)
	if t.root != nil {
		level = append(level, t.root)
	}
	for len(level) > 0 {
		h++
		next := make([]*node[T], 0, 2*len(level))
		for _, n := range level {
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		level = next
	}

	return h
}

// boundFrame carries a pending subtree together with the tightest
// exclusive bounds inherited from its ancestors; nil means unbounded.
type boundFrame[T any] struct {
	n      *node[T]
	lo, hi *T
}

// IsValid verifies the ordering invariant: every node's value lies
// strictly between the tightest lower and upper bounds propagated from
// its ancestors. An empty tree is trivially valid. The check walks an
// explicit frame stack.
// Complexity: O(n)
func (t *Tree[T]) IsValid() bool {
	if t.root == nil {
		return true
	}
	stack := []boundFrame[T]{{n: t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.lo != nil && t.compare(f.n.val, *f.lo) <= 0 {
			return false
		}
		if f.hi != nil && t.compare(f.n.val, *f.hi) >= 0 {
			return false
		}
		v := f.n.val
		if f.n.left != nil {
			stack = append(stack, boundFrame[T]{n: f.n.left, lo: f.lo, hi: &v})
		}
		if f.n.right != nil {
			stack = append(stack, boundFrame[T]{n: f.n.right, lo: &v, hi: f.hi})
		}
	}

	return true
}

// Clear removes every value, leaving an empty, reusable tree. The whole
// node graph is released at once; no per-node teardown walk is needed.
// Complexity: O(1)
func (t *Tree[T]) Clear() {
	t.root = nil
	t.size = 0
}
