package normalize

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Run("lower cases and strips punctuation", func(t *testing.T) {
		got := Normalize("Can I paint it?!")
		assert.Equal(t, "can i paint it", got)
	})

	t.Run("collapses whitespace", func(t *testing.T) {
		got := Normalize("  spray   foam\t\tinsulation \n ")
		assert.Equal(t, "spray foam insulation", got)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, "", Normalize(""))
		assert.Equal(t, "", Normalize("   \t\n "))
		assert.Equal(t, "", Normalize("?!,."))
	})

	t.Run("expands abbreviations", func(t *testing.T) {
		assert.Equal(t, "australian standard 1530", Normalize("AS 1530"))
		assert.Equal(t, "r value thermal resistance per inch", Normalize("R-value per inch"))
		assert.Equal(t, "do it yourself installation", Normalize("DIY installation"))
		assert.Equal(t, "acoustic soundproofing noise rating", Normalize("soundproof rating"))
	})

	t.Run("expansion handles trailing punctuation", func(t *testing.T) {
		assert.Equal(t, "do it yourself", Normalize("DIY?"))
	})

	t.Run("unknown tokens pass through", func(t *testing.T) {
		assert.Equal(t, "polyurethane substrate", Normalize("polyurethane substrate"))
	})
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"AS 1530 compliance",
		"R-value? DIY!! soundproof",
		"What about cables in the subfloor?",
		"IS IT SAFE FOR DOGS INCASE THEY EAT IT?",
		"how much pm2",
		"mould on the vapour barrier",
		"Colorbond roof in VIC",
	}
	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		assert.Equal(t, once, twice, "input %q", input)
	}
}

func TestNormalizeIdempotentRandom(t *testing.T) {
	// Property check over random printable strings.
	rng := rand.New(rand.NewSource(42))
	const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 .,!?-_'\"()/"

	for i := 0; i < 500; i++ {
		var b strings.Builder
		length := rng.Intn(80)
		for j := 0; j < length; j++ {
			b.WriteByte(alphabet[rng.Intn(len(alphabet))])
		}
		input := b.String()

		once := Normalize(input)
		require.Equal(t, once, Normalize(once), "input %q", input)

		// Output alphabet: lower-case letters, digits, single spaces.
		assert.NotContains(t, once, "  ")
		assert.Equal(t, strings.ToLower(once), once)
	}
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"fire", "safety", "standards"}, Tokens("Fire safety standards!"))
	assert.Empty(t, Tokens(""))
}

func TestKeywords(t *testing.T) {
	t.Run("drops stop words and short tokens", func(t *testing.T) {
		got := Keywords("is it safe for the dogs")
		assert.Equal(t, []string{"safe", "dogs"}, got)
	})

	t.Run("dedupes preserving order", func(t *testing.T) {
		got := Keywords("foam foam insulation foam")
		assert.Equal(t, []string{"foam", "insulation"}, got)
	})

	t.Run("applies expansion before filtering", func(t *testing.T) {
		got := Keywords("soundproof")
		assert.Equal(t, []string{"acoustic", "soundproofing", "noise"}, got)
	})
}

func TestIsStopWord(t *testing.T) {
	assert.True(t, IsStopWord("the"))
	assert.False(t, IsStopWord("insulation"))
}
