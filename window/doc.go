// Package window locates the first run of N pairwise-distinct consecutive
// symbols in a sequence.
//
// What:
//
//	Given seq and N, FirstUnique returns the index immediately after the
//	first window seq[i-N:i] whose N elements are all different. That index
//	is "how many symbols had to be read before the marker was complete".
//
// Strategies:
//
//   - BruteForce: rebuild a set for every window. O(len·N) time, O(N) memory.
//     Simple enough to serve as the reference.
//   - Rolling:    slide the window one symbol at a time, keeping a count per
//     symbol and the number of symbols whose count exceeds one. O(len) time.
//     This is the default.
//
// Both strategies return identical answers for every input.
//
// Errors:
//
//   - ErrBadWindow: N <= 0.
//   - ErrNotFound:  no window qualifies (including len(seq) < N). This is an
//     expected outcome; test for it with errors.Is.
//
// Usage:
//
//	i, err := window.FirstUniqueString(stream, window.PacketMarker)
//	if errors.Is(err, window.ErrNotFound) {
//	    // no marker in the stream
//	}
package window
