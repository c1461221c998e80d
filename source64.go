package smchash

// Source adapts Rand to the math/rand.Source64 interface, so smcRand can
// drive math/rand.Rand's distribution helpers (Float64, Intn, Perm, ...)
// without smcHash having to reimplement them. Like Rand itself, Source is
// single-threaded by convention: wrap it in a sync.Mutex or keep one per
// goroutine if concurrent use is needed, like other non-threadsafe
// counter PRNGs.
type Source struct {
	r *Rand
}

// NewSource returns a Source seeded with the given initial state.
func NewSource(seed uint64) *Source {
	return &Source{r: NewRand(seed)}
}

// Uint64 implements math/rand.Source64.
func (s *Source) Uint64() uint64 {
	return s.r.Uint64()
}

// Int63 implements math/rand.Source by returning a non-negative int64:
// the full 64-bit output with its top bit cleared.
func (s *Source) Int63() int64 {
	return int64(s.Uint64() & (1<<63 - 1))
}

// Seed implements math/rand.Source by reseeding the underlying Rand in
// place. Unlike a pooled generator shared across goroutines, smcRand's
// state is single-owner, so reseeding here is well-defined.
func (s *Source) Seed(seed int64) {
	s.r.state = uint64(seed)
}
