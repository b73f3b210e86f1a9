package transpose

import "github.com/katalvlaran/gw18transpose/transpose/internal/fork"

// shuffle rewrites v, viewed as one run of m a-blocks followed by one run
// of m b-blocks — (A0 A1 ... A_{m-1})(B0 B1 ... B_{m-1}) — into m
// interleaved groups of an a-block followed by a b-block: (A0 B0 A1 B1
// ... A_{m-1} B_{m-1}). This holds for any a and b. len(v) must equal
// (a+b)*m.
//
// m <= 1 is the base case (no-op). Otherwise the m groups are split at
// m_left, the largest power of two strictly less than m (so m_left >=
// m/2 for every m >= 2), and the middle region — the last m_right
// A-blocks followed by the first m_left B-blocks — is exchanged, giving
// (A·m_left B·m_left)(A·m_right B·m_right). The two halves, now
// independent shuffle problems of size m_left and m_right, are recursed
// into, in parallel once large enough.
func shuffle[T any](cfg config, v []T, a, b, m int) {
	if m <= 1 {
		return
	}

	mLeft := largestPowerOfTwoLessThan(m)
	mRight := m - mLeft

	if a*mRight > 0 && b*mLeft > 0 {
		start := a * mLeft
		end := start + a*mRight + b*mLeft
		exchange(v[start:end], a*mRight, b*mLeft)
	}

	left, right := v[:(a+b)*mLeft], v[(a+b)*mLeft:]
	n := len(v)
	fork.Join(n, cfg.parShuffleGate,
		func() { shuffle(cfg, left, a, b, mLeft) },
		func() { shuffle(cfg, right, a, b, mRight) },
	)
}

// unshuffle is the exact inverse of shuffle: it turns (A0 B0 A1 B1 ...
// A_{m-1} B_{m-1}) back into (A0 A1 ... A_{m-1})(B0 B1 ... B_{m-1}). It
// performs the same three
// steps as shuffle but in the opposite order — recurse first, then
// exchange — with the two exchanged spans swapped, which is what makes
// shuffle and unshuffle exact inverses of one another.
func unshuffle[T any](cfg config, v []T, a, b, m int) {
	if m <= 1 {
		return
	}

	mLeft := largestPowerOfTwoLessThan(m)
	mRight := m - mLeft

	left, right := v[:(a+b)*mLeft], v[(a+b)*mLeft:]
	n := len(v)
	fork.Join(n, cfg.parShuffleGate,
		func() { unshuffle(cfg, left, a, b, mLeft) },
		func() { unshuffle(cfg, right, a, b, mRight) },
	)

	if a*mRight > 0 && b*mLeft > 0 {
		start := a * mLeft
		end := start + b*mLeft + a*mRight
		exchange(v[start:end], b*mLeft, a*mRight)
	}
}
