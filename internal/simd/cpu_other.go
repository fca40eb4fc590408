//go:build !amd64 && !arm64

package simd

func detectLevel() Level {
	return LevelScalar
}
