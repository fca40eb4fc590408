package benchmarks

import (
	"bytes"
	"testing"

	simdsql "github.com/biggeezerdevelopment/simdsql-go"
	"github.com/biggeezerdevelopment/simdsql-go/internal/simd"
)

var sampleQuery = []byte(`SELECT u.id, u.name, COUNT(o.id) AS order_count,
       SUM(o.total) AS revenue
FROM users u
LEFT JOIN orders o ON o.user_id = u.id
WHERE u.created_at >= '2024-01-01'
  AND u.status != 'deleted'      -- soft-deleted rows stay out
  AND o.total > 10.5e+1
GROUP BY u.id, u.name
ORDER BY revenue DESC
LIMIT 100;
/* trailing
   block comment */
`)

func corpus(size int) []byte {
	buf := make([]byte, 0, size+len(sampleQuery))
	for len(buf) < size {
		buf = append(buf, sampleQuery...)
	}
	return buf[:size]
}

func benchmarkTokenize(b *testing.B, size int) {
	data := corpus(size)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tokens := simdsql.Tokenize(data)
		simdsql.PutTokens(tokens)
	}
}

func BenchmarkTokenize1KB(b *testing.B)   { benchmarkTokenize(b, 1<<10) }
func BenchmarkTokenize64KB(b *testing.B)  { benchmarkTokenize(b, 1<<16) }
func BenchmarkTokenize1MB(b *testing.B)   { benchmarkTokenize(b, 1<<20) }
func BenchmarkTokenizeSmall(b *testing.B) { benchmarkTokenize(b, 64) }

func BenchmarkSkipWhitespace(b *testing.B) {
	data := append(bytes.Repeat([]byte{' ', ' ', '\t', '\n'}, 1024), 'x')
	for _, lvl := range simd.Levels() {
		p := simd.ForLevel(lvl)
		b.Run(lvl.String(), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			for i := 0; i < b.N; i++ {
				if p.SkipWhitespace(data) != len(data)-1 {
					b.Fatal("bad skip count")
				}
			}
		})
	}
}

func BenchmarkTokenizeOperatorHeavy(b *testing.B) {
	data := bytes.Repeat([]byte("a<=b<>c!=d==e||f&&g::h<<i>>j "), 256)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tokens := simdsql.Tokenize(data)
		simdsql.PutTokens(tokens)
	}
}
