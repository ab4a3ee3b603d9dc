package rng

const (
	lcgMultiplier = 1103515245
	lcgIncrement  = 12345
	lcgMask       = 0x7fffffff
)

// Seeded is a deterministic linear congruential generator. Two Seeded sources
// built from the same seed produce the same sequence.
type Seeded struct {
	state int64
}

// NewSeeded returns a deterministic source
func NewSeeded(seed int) *Seeded {
	return &Seeded{state: int64(seed)}
}

func (s *Seeded) step() int64 {
	s.state = (s.state*lcgMultiplier + lcgIncrement) & lcgMask
	return s.state
}

func (s *Seeded) Next() int {
	return int(s.step())
}

func (s *Seeded) Intn(max int) int {
	checkIntn(max)
	return s.Range(0, max)
}

func (s *Seeded) Range(min, max int) int {
	checkRange(min, max)
	v := s.step()
	return min + int(v%int64(max-min))
}
