package mincut_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/mincut/builder"
	"github.com/katalvlaran/mincut/mincut"
)

func BenchmarkFastMinCut_Needle100(b *testing.B) {
	g := mustBuild(b, []builder.BuilderOption{builder.WithSeed(1)}, builder.Needle(100, 0.3))
	rng := rand.New(rand.NewSource(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mincut.FastMinCut(g, rng); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkKargerMinCut_Needle100(b *testing.B) {
	g := mustBuild(b, []builder.BuilderOption{builder.WithSeed(1)}, builder.Needle(100, 0.3))
	rng := rand.New(rand.NewSource(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mincut.KargerMinCut(g, rng); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRepeatedMinCut_64Trials(b *testing.B) {
	g := mustBuild(b, []builder.BuilderOption{builder.WithSeed(1)}, builder.Needle(60, 0.3))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mincut.RepeatedMinCut(context.Background(), g, 64, int64(i+1)); err != nil {
			b.Fatal(err)
		}
	}
}
