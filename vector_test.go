package scrollstage

import (
	"math"
	"math/rand"
	"testing"
)

func BenchmarkVectorCross(b *testing.B) {

	b.ReportAllocs()

	a := NewVector(rand.Float64(), rand.Float64(), rand.Float64())
	c := NewVector(rand.Float64(), rand.Float64(), rand.Float64())

	for i := 0; i < b.N; i++ {
		a.Cross(c)
	}

}

func TestVectorCross(t *testing.T) {

	if !WorldRight.Cross(WorldUp).Equals(WorldBackward) {
		t.Fatal("X cross Y should be Z, got", WorldRight.Cross(WorldUp))
	}

	if !WorldUp.Cross(WorldRight).Equals(WorldBackward.Invert()) {
		t.Fatal("Y cross X should be -Z")
	}

}

func TestVectorUnit(t *testing.T) {

	for i := 0; i < 100; i++ {
		v := NewVector(rand.Float64()*20-10, rand.Float64()*20-10, rand.Float64()*20-10)
		if math.Abs(v.Unit().Magnitude()-1) > 1e-9 {
			t.Fatal("unit vector of", v, "is not of length 1")
		}
	}

	if !NewVectorZero().Unit().IsZero() {
		t.Fatal("unit of a zero vector should stay zero")
	}

}
