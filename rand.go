package smchash

// NextRand advances *state by CanonicalSecret[0] (pre-increment: the
// advance happens before the output is computed, so the very first call
// after state is 0 observes mix(CanonicalSecret[0], ...), not mix(0,
// ...)) and returns one 64-bit pseudo-random output. The period is 2^64,
// driven entirely by the counter; any initial state, including 0, is
// legal.
//
// state is owned by the caller. Concurrent calls sharing the same state
// pointer are a data race; callers wanting independent streams per
// goroutine should keep one state value per goroutine.
func NextRand(state *uint64) uint64 {
	*state += CanonicalSecret[0]
	return mix(*state, *state^CanonicalSecret[1])
}

// Rand is a stateful wrapper around NextRand for callers who'd rather
// hold a value than thread a *uint64 through their own code.
type Rand struct {
	state uint64
}

// NewRand returns a Rand seeded with the given initial state. Any value,
// including 0, is legal.
func NewRand(seed uint64) *Rand {
	return &Rand{state: seed}
}

// Uint64 returns the next pseudo-random value and advances r's state.
func (r *Rand) Uint64() uint64 {
	return NextRand(&r.state)
}
