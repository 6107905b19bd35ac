package noise

import (
	"fmt"
	"sort"
	"strings"
)

// Seeding strategy names.
const (
	SeedingSequence = "sequence"
	SeedingMixed    = "mixed"
)

// seedMix is the odd multiplier used by [MixedSeeding].
const seedMix = 2246822519

// SeedContext yields the hash contribution for each noise layer of one run.
// Implementations must be immutable once built so that rows can be generated
// concurrently.
type SeedContext interface {
	Contribution(layer int) uint32
}

// Seeding turns a run seed into a [SeedContext].
type Seeding interface {
	// Name identifies the strategy in configs and output metadata.
	Name() string
	// Context builds the per-run context for the given number of layers.
	Context(seed uint32, layers int) SeedContext
}

// SequenceSeeding draws one value per layer from a [Mulberry32] sequence
// seeded with the run seed. Layer i receives the i-th draw.
type SequenceSeeding struct{}

// Name implements Seeding.
func (SequenceSeeding) Name() string { return SeedingSequence }

// Context implements Seeding.
func (SequenceSeeding) Context(seed uint32, layers int) SeedContext {
	gen := NewMulberry32(seed)
	offsets := make(sequenceContext, max(layers, 1))
	for i := range offsets {
		offsets[i] = gen.NextUint32()
	}
	return offsets
}

type sequenceContext []uint32

// Contribution panics if layer is outside the range the context was built for.
func (c sequenceContext) Contribution(layer int) uint32 {
	return c[layer]
}

// MixedSeeding feeds the raw seed, multiplied by a large odd constant, to
// every layer. All layers share one lattice.
type MixedSeeding struct{}

// Name implements Seeding.
func (MixedSeeding) Name() string { return SeedingMixed }

// Context implements Seeding.
func (MixedSeeding) Context(seed uint32, _ int) SeedContext {
	return mixedContext(seed * seedMix)
}

type mixedContext uint32

func (c mixedContext) Contribution(int) uint32 { return uint32(c) }

var seedings = map[string]Seeding{
	SeedingSequence: SequenceSeeding{},
	SeedingMixed:    MixedSeeding{},
}

// SeedingByName returns the strategy registered under name.
func SeedingByName(name string) (Seeding, error) {
	if s, ok := seedings[name]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("unknown seeding strategy %q (must be one of: %s)", name, strings.Join(SeedingNames(), ", "))
}

// SeedingNames lists the registered strategy names in sorted order.
func SeedingNames() []string {
	names := make([]string, 0, len(seedings))
	for n := range seedings {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

