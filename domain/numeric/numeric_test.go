package numeric

import (
	"encoding/binary"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashDJB2(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  uint64
	}{
		{name: "empty", input: "", want: 5381},
		{name: "single byte", input: "a", want: 5381*33 + 97},
		{name: "two bytes", input: "ab", want: (5381*33+97)*33 + 98},
		{name: "high byte", input: "\xff", want: 5381*33 + 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HashDJB2([]byte(tt.input)))
			assert.Equal(t, tt.want, HashDJB2String(tt.input))
		})
	}
}

func TestHashDJB2_WrapsOnOverflow(t *testing.T) {
	// Long enough that acc*33 overflows many times over.
	input := []byte("Performance PHP com Rust! Performance PHP com Rust!")

	want := new(big.Int).SetUint64(DJB2Seed)
	mod := new(big.Int).Lsh(big.NewInt(1), 64)
	for _, c := range input {
		want.Mul(want, big.NewInt(33))
		want.Add(want, big.NewInt(int64(c)))
		want.Mod(want, mod)
	}

	assert.Equal(t, want.Uint64(), HashDJB2(input))
}

func TestHashDJB2_Deterministic(t *testing.T) {
	a := []byte("same content")
	b := append([]byte(nil), a...)
	assert.Equal(t, HashDJB2(a), HashDJB2(b))
	assert.Equal(t, HashDJB2(a), HashDJB2(a))
}

func TestFibonacci(t *testing.T) {
	tests := []struct {
		n    uint32
		want uint64
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 2},
		{10, 55},
		{50, 12586269025},
		{93, 12200160415121876738}, // largest that fits in uint64
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Fibonacci(tt.n), "Fibonacci(%d)", tt.n)
	}
}

// fibRecursive is the textbook definition, only usable for small n.
func fibRecursive(n uint32) uint64 {
	if n <= 1 {
		return uint64(n)
	}
	return fibRecursive(n-1) + fibRecursive(n-2)
}

func TestFibonacci_MatchesRecursiveDefinition(t *testing.T) {
	for n := uint32(0); n <= 25; n++ {
		assert.Equal(t, fibRecursive(n), Fibonacci(n), "n=%d", n)
	}
}

func TestFibonacci_WrapsModulo2To64(t *testing.T) {
	mod := new(big.Int).Lsh(big.NewInt(1), 64)
	a, b := big.NewInt(0), big.NewInt(1)

	for n := uint32(1); n <= 500; n++ {
		want := new(big.Int).Mod(b, mod).Uint64()
		require.Equal(t, want, Fibonacci(n), "n=%d", n)
		a.Add(a, b)
		a, b = b, a
	}
}

func TestFibonacci_MaxIndexTerminates(t *testing.T) {
	if testing.Short() {
		t.Skip("iterates 2^32 times")
	}
	// Only checks that the loop ends; the value itself is not interesting.
	_ = Fibonacci(math.MaxUint32)
}

func TestSum(t *testing.T) {
	tests := []struct {
		name   string
		values []int64
		want   int64
	}{
		{name: "nil", values: nil, want: 0},
		{name: "empty", values: []int64{}, want: 0},
		{name: "one two three", values: []int64{1, 2, 3}, want: 6},
		{name: "negatives", values: []int64{-5, 10, -20}, want: -15},
		{name: "extremes cancel", values: []int64{math.MaxInt64, math.MinInt64}, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sum(tt.values))
		})
	}
}

func TestSum_OverflowWraps(t *testing.T) {
	assert.Equal(t, int64(math.MinInt64), Sum([]int64{math.MaxInt64, 1}))
}

func TestKernels_DoNotAllocate(t *testing.T) {
	buf := []byte("allocation free")
	values := []int64{1, 2, 3, 4}

	allocs := testing.AllocsPerRun(100, func() {
		_ = HashDJB2(buf)
		_ = Fibonacci(90)
		_ = Sum(values)
	})
	assert.Zero(t, allocs)
}

func FuzzHashDJB2(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("a"))
	f.Add([]byte("Performance PHP com Rust!"))

	f.Fuzz(func(t *testing.T, data []byte) {
		h := HashDJB2(data)
		if h != HashDJB2String(string(data)) {
			t.Fatalf("byte and string variants disagree for %q", data)
		}
		if h != HashDJB2(data) {
			t.Fatalf("hash not deterministic for %q", data)
		}
	})
}

func TestSumLittleEndian(t *testing.T) {
	encode := func(values ...int64) []byte {
		b := make([]byte, 0, len(values)*8)
		for _, v := range values {
			b = binary.LittleEndian.AppendUint64(b, uint64(v))
		}
		return b
	}

	t.Run("matches Sum", func(t *testing.T) {
		values := []int64{1, 2, 3, -100, math.MaxInt32}
		assert.Equal(t, Sum(values), SumLittleEndian(encode(values...)))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Zero(t, SumLittleEndian(nil))
	})

	t.Run("trailing partial element ignored", func(t *testing.T) {
		b := append(encode(4, 5), 0xff, 0xff, 0xff)
		assert.Equal(t, int64(9), SumLittleEndian(b))
	})
}
