package memory

import "testing"

// Sink is a global to prevent compiler optimizations removing the work.
var Sink int32

func benchmarkSource(b *testing.B, src Source) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf, err := src.Alloc(10)
		if err != nil {
			b.Fatal(err)
		}
		for j := 0; j < 10; j++ {
			buf.Set(j, int32(j*j))
		}
		Sink += buf.At(9)
		if err := buf.Close(); err != nil {
			b.Fatal(err)
		}
	}
}

// ------------------------
// Go make, for comparison
// ------------------------

func BenchmarkMake(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s := make([]int32, 10)
		for j := range s {
			s[j] = int32(j * j)
		}
		Sink += s[9]
	}
}

func BenchmarkSources(b *testing.B) {
	for _, name := range Names() {
		b.Run(name, func(b *testing.B) {
			src, err := Lookup(name)
			if err != nil {
				b.Fatal(err)
			}
			benchmarkSource(b, src)
			if c, ok := src.(interface{ Close() error }); ok {
				_ = c.Close()
			}
		})
	}
}
