// Package simd selects and runs vector-width byte-scanning strategies.
//
// A Processor is a capability object specialized to one vector level.
// All processors produce identical results; the level only decides how
// many bytes each iteration inspects. Because every strategy is
// expressed over 64-bit word kernels, all of them are executable on
// any host; the CPU probe merely picks the widest one worth running.
package simd

import "sync"

// Level identifies a vector instruction family.
type Level uint8

const (
	LevelScalar Level = iota
	LevelNEON
	LevelSSE42
	LevelAVX2
	LevelAVX512
)

// String returns the diagnostic name of the level.
func (l Level) String() string {
	switch l {
	case LevelAVX512:
		return "AVX-512"
	case LevelAVX2:
		return "AVX2"
	case LevelSSE42:
		return "SSE4.2"
	case LevelNEON:
		return "NEON"
	}
	return "Scalar"
}

// Width returns the chunk size in bytes processed per iteration.
func (l Level) Width() int {
	switch l {
	case LevelAVX512:
		return 64
	case LevelAVX2:
		return 32
	case LevelSSE42, LevelNEON:
		return 16
	}
	return 1
}

// Processor exposes the vectorized primitives the tokenizer needs.
type Processor interface {
	// SkipWhitespace returns the count of leading whitespace bytes
	// (space, tab, newline, carriage return) in data.
	SkipWhitespace(data []byte) int

	// Level reports which strategy this processor implements.
	Level() Level
}

var (
	activeOnce sync.Once
	active     Processor
)

// Active returns the processor for the best level the host CPU
// supports. The probe runs once per process; concurrent first calls
// are safe because detection is deterministic.
func Active() Processor {
	activeOnce.Do(func() {
		active = ForLevel(detectLevel())
	})
	return active
}

// ForLevel returns the processor implementing the given level.
func ForLevel(l Level) Processor {
	switch l {
	case LevelAVX512:
		return avx512Processor{}
	case LevelAVX2:
		return avx2Processor{}
	case LevelSSE42:
		return sse42Processor{}
	case LevelNEON:
		return neonProcessor{}
	}
	return scalarProcessor{}
}

// Levels lists every strategy, narrowest first. All are runnable on
// any host; consistency tests iterate this.
func Levels() []Level {
	return []Level{LevelScalar, LevelNEON, LevelSSE42, LevelAVX2, LevelAVX512}
}
