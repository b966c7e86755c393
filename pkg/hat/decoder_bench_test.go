//go:build bench
// +build bench

package hat

import (
	"bytes"
	"testing"
)

func BenchmarkDecode(b *testing.B) {
	benchmarks := []struct {
		name string
		size int
	}{
		{"small", 256},
		{"medium", 64 * 1024},
		{"large", 1024 * 1024},
	}

	for _, bm := range benchmarks {
		image := bytes.Repeat([]byte{0x42}, bm.size)

		b.Run(bm.name+"/simple", func(b *testing.B) {
			data := simpleContainer("bench", image)
			b.SetBytes(int64(len(data)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := Decode(data); err != nil {
					b.Fatal(err)
				}
			}
		})

		b.Run(bm.name+"/complex", func(b *testing.B) {
			data := complexContainer(b, testIV, specificBase(MagicSpecific, "TEST", "bench", image))
			b.SetBytes(int64(len(data)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := Decode(data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
