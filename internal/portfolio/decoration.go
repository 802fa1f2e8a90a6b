package portfolio

import (
	"math"
	"math/rand/v2"
)

// DefaultDecorationCount is the size of the background field.
const DefaultDecorationCount = 50

type DecorationToken struct {
	Left              float64 `json:"left"`
	Top               float64 `json:"top"`
	AnimationDelay    float64 `json:"animation_delay"`
	AnimationDuration float64 `json:"animation_duration"`
	Glyph             string  `json:"glyph"`
}

// DecorationGenerator draws tokens from a random source. The zero value
// uses the global unseeded source.
type DecorationGenerator struct {
	rnd *rand.Rand
}

// NewDecorationGenerator uses src, or the global source when src is nil.
func NewDecorationGenerator(src rand.Source) *DecorationGenerator {
	if src == nil {
		return &DecorationGenerator{}
	}
	return &DecorationGenerator{rnd: rand.New(src)}
}

func (g *DecorationGenerator) float() float64 {
	if g == nil || g.rnd == nil {
		return rand.Float64()
	}
	return g.rnd.Float64()
}

// Generate returns count tokens. Non-positive counts yield none.
func (g *DecorationGenerator) Generate(count int) []DecorationToken {
	if count <= 0 {
		return nil
	}
	tokens := make([]DecorationToken, count)
	for i := range tokens {
		tokens[i] = DecorationToken{
			Left:              g.float() * 100,
			Top:               g.float() * 100,
			AnimationDelay:    g.float() * 3,
			AnimationDuration: below(4, 2+g.float()*2),
			Glyph:             "0",
		}
		if g.float() > 0.5 {
			tokens[i].Glyph = "1"
		}
	}
	return tokens
}

// below keeps v under the exclusive bound limit; 2+x*2 rounds up to 4 for
// the largest x < 1.
func below(limit, v float64) float64 {
	if v >= limit {
		return math.Nextafter(limit, 0)
	}
	return v
}
