package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatCurve_LevelFor(t *testing.T) {
	curve := NewFlatCurve()

	tests := []struct {
		name string
		xp   int64
		want int
	}{
		{"zero xp is level 1", 0, 1},
		{"just under threshold", 99, 1},
		{"exact threshold levels up", 100, 2},
		{"mid level 2", 150, 2},
		{"multiple levels", 1000, 11},
		{"large xp", 100_000, 1001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LevelFor(curve, tt.xp))
		})
	}
}

func TestFlatCurve_Progress(t *testing.T) {
	curve := NewFlatCurve()

	level, into, toNext := Progress(curve, 250)
	assert.Equal(t, 3, level)
	assert.Equal(t, int64(50), into)
	assert.Equal(t, int64(50), toNext)

	level, into, toNext = Progress(curve, 0)
	assert.Equal(t, 1, level)
	assert.Equal(t, int64(0), into)
	assert.Equal(t, int64(100), toNext)
}

func TestGeometricCurve_Requirements(t *testing.T) {
	curve := NewGeometricCurve()

	// 100 * 1.15^(level-1), truncated. Level 2 lands at 114 because the
	// binary representation of 1.15 sits just below the decimal value.
	assert.Equal(t, int64(100), curve.Requirement(1))
	assert.Equal(t, int64(114), curve.Requirement(2))
	assert.Equal(t, int64(132), curve.Requirement(3))
	assert.Equal(t, int64(152), curve.Requirement(4))
	assert.Equal(t, int64(174), curve.Requirement(5))
}

func TestGeometricCurve_RemainderCarries(t *testing.T) {
	curve := NewGeometricCurve()

	// 100 + 114 = 214 reaches level 3 exactly; surplus rolls forward.
	assert.Equal(t, 2, LevelFor(curve, 213))
	assert.Equal(t, 3, LevelFor(curve, 214))

	level, into, toNext := Progress(curve, 230)
	assert.Equal(t, 3, level)
	assert.Equal(t, int64(16), into)
	assert.Equal(t, int64(116), toNext)
}

func TestCurve_LevelsNonDecreasing(t *testing.T) {
	for _, curve := range []Curve{NewFlatCurve(), NewGeometricCurve()} {
		t.Run(curve.Name(), func(t *testing.T) {
			prev := 1
			for xp := int64(0); xp <= 10_000; xp += 37 {
				level := LevelFor(curve, xp)
				require.GreaterOrEqual(t, level, prev, "level regressed at xp=%d", xp)
				prev = level
			}
		})
	}
}

func TestNewCurve(t *testing.T) {
	flat, err := NewCurve(CurveNameFlat)
	require.NoError(t, err)
	assert.Equal(t, CurveNameFlat, flat.Name())

	geo, err := NewCurve(CurveNameGeometric)
	require.NoError(t, err)
	assert.Equal(t, CurveNameGeometric, geo.Name())

	_, err = NewCurve("fibonacci")
	assert.Error(t, err)
}

func BenchmarkLevelFor_Geometric(b *testing.B) {
	curve := NewGeometricCurve()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		LevelFor(curve, 10_000_000)
	}
}
