package shortcode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandom_LengthAndAlphabet(t *testing.T) {
	t.Parallel()

	var g Random
	seenLen := map[int]bool{}

	for i := 0; i < 5000; i++ {
		code := g.Generate()
		require.GreaterOrEqual(t, len(code), MinLength)
		require.LessOrEqual(t, len(code), MaxLength)
		seenLen[len(code)] = true

		for _, r := range code {
			require.True(t, strings.ContainsRune(Alphabet, r), "unexpected rune %q in %q", r, code)
		}
	}

	// На 5000 попытках все три длины должны встретиться.
	require.Len(t, seenLen, MaxLength-MinLength+1)
}

func TestRandom_RarelyCollides(t *testing.T) {
	t.Parallel()

	var g Random
	seen := make(map[string]struct{}, 1000)
	dups := 0

	for i := 0; i < 1000; i++ {
		code := g.Generate()
		if _, ok := seen[code]; ok {
			dups++
		}
		seen[code] = struct{}{}
	}

	// Коллизия в выборке такого размера крайне маловероятна; фиксируем её, но не валим тест.
	if dups > 0 {
		t.Logf("observed %d duplicate codes in 1000 generations", dups)
	}
	require.LessOrEqual(t, dups, 1)
}

func TestAlphabet_Has62UniqueChars(t *testing.T) {
	t.Parallel()

	set := map[rune]struct{}{}
	for _, r := range Alphabet {
		set[r] = struct{}{}
	}
	require.Len(t, set, 62)
}
