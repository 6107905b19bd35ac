package noise

// Mulberry32 is a tiny seedable 32-bit pseudo-random sequence.
// It is not safe for concurrent use; [SequenceSeeding] drains it up front so
// that generation itself never touches mutable state.
type Mulberry32 struct {
	state uint32
}

// NewMulberry32 returns a generator positioned before its first value.
func NewMulberry32(seed uint32) *Mulberry32 {
	return &Mulberry32{state: seed}
}

// NextUint32 advances the sequence and returns the next raw 32-bit value.
func (m *Mulberry32) NextUint32() uint32 {
	m.state += 0x6D2B79F5
	t := m.state
	t = (t ^ t>>15) * (t | 1)
	t ^= t + (t^t>>7)*(t|61)
	return t ^ t>>14
}

// Next advances the sequence and returns a value in [0,1).
func (m *Mulberry32) Next() float64 {
	return float64(m.NextUint32()) / (1 << 32)
}
