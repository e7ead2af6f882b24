package window

// FirstUnique returns the index just past the first window of n pairwise
// distinct consecutive elements of seq.
func FirstUnique[T comparable](seq []T, n int, opts ...Option) (int, error) {
	if n <= 0 {
		return 0, ErrBadWindow
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	found := -1
	visit := func(end int) bool {
		found = end
		return false
	}
	if o.Strategy == BruteForce {
		bruteForce(seq, n, visit)
	} else {
		rolling(seq, n, visit)
	}
	if found < 0 {
		return 0, ErrNotFound
	}

	return found, nil
}

// FirstUniqueString is FirstUnique over the runes of s. The returned index
// counts runes, not bytes.
func FirstUniqueString(s string, n int, opts ...Option) (int, error) {
	return FirstUnique([]rune(s), n, opts...)
}

// AllUnique returns, in increasing order, every end index i such that
// seq[i-n:i] holds n distinct elements. It returns nil when n <= 0.
func AllUnique[T comparable](seq []T, n int, opts ...Option) []int {
	if n <= 0 {
		return nil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var ends []int
	visit := func(end int) bool {
		ends = append(ends, end)
		return true
	}
	if o.Strategy == BruteForce {
		bruteForce(seq, n, visit)
	} else {
		rolling(seq, n, visit)
	}

	return ends
}

// bruteForce calls visit with the end index of each qualifying window until
// visit returns false.
func bruteForce[T comparable](seq []T, n int, visit func(end int) bool) {
	seen := make(map[T]struct{}, n)
	for end := n; end <= len(seq); end++ {
		clear(seen)
		for _, v := range seq[end-n : end] {
			seen[v] = struct{}{}
		}
		if len(seen) == n && !visit(end) {
			return
		}
	}
}

// rolling is bruteForce with the window maintained incrementally: counts
// holds each symbol's multiplicity and dups the number of symbols seen
// more than once.
func rolling[T comparable](seq []T, n int, visit func(end int) bool) {
	if len(seq) < n {
		return
	}
	counts := make(map[T]int, n)
	dups := 0
	add := func(v T) {
		counts[v]++
		if counts[v] == 2 {
			dups++
		}
	}
	drop := func(v T) {
		counts[v]--
		if counts[v] == 1 {
			dups--
		}
	}

	for i := 0; i < n; i++ {
		add(seq[i])
	}
	for end := n; ; end++ {
		if dups == 0 && !visit(end) {
			return
		}
		if end == len(seq) {
			return
		}
		drop(seq[end-n])
		add(seq[end])
	}
}
