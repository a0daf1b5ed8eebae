// Package selector resolves generation specifiers into a random creature and
// decides whether it is shown in its shiny variant.
package selector

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/samdwyer/colorscripts/internal/catalog"
)

// ShinyRate is the probability that an unforced random pick is shiny.
const ShinyRate = 1.0 / 128

// DefaultSpecifier covers every generation.
const DefaultSpecifier = "1-8"

// Span is an inclusive range of global indices.
type Span struct {
	Start int
	End   int
}

// Choice is the outcome of a random pick.
type Choice struct {
	Name  string
	Index int
	Shiny bool
	Span  Span
}

// Selector picks random creatures from the generation table.
type Selector struct {
	generations *catalog.GenerationRegistry
	names       *catalog.Names
	rng         *rand.Rand
}

// New creates a selector. The rng is the only source of randomness, so a
// seeded rng gives reproducible picks.
func New(generations *catalog.GenerationRegistry, names *catalog.Names, rng *rand.Rand) *Selector {
	return &Selector{
		generations: generations,
		names:       names,
		rng:         rng,
	}
}

// ParseSpecifier splits a specifier into start and end labels.
//
// A comma list picks one token at random and uses it for both ends. Without a
// comma, "a-b" is a range. Anything else is a single label. List tokens are
// never split on hyphens.
func ParseSpecifier(spec string, rng *rand.Rand) (startLabel, endLabel string, err error) {
	if tokens := strings.Split(spec, ","); len(tokens) > 1 {
		token := tokens[rng.Intn(len(tokens))]
		return token, token, nil
	}

	if parts := strings.Split(spec, "-"); len(parts) > 1 {
		if len(parts) != 2 {
			return "", "", &GenerationError{Specifier: spec, Err: ErrGenerationNotFound}
		}
		return parts[0], parts[1], nil
	}

	return spec, spec, nil
}

// Resolve turns a specifier into the span of global indices it covers.
func (s *Selector) Resolve(spec string) (Span, error) {
	startLabel, endLabel, err := ParseSpecifier(spec, s.rng)
	if err != nil {
		return Span{}, err
	}

	start, ok := s.generations.Lookup(startLabel)
	if !ok {
		return Span{}, &GenerationError{Specifier: spec, Err: ErrGenerationNotFound}
	}
	end, ok := s.generations.Lookup(endLabel)
	if !ok {
		return Span{}, &GenerationError{Specifier: spec, Err: ErrGenerationNotFound}
	}

	span := Span{Start: start.Start, End: end.End}
	if span.Start > span.End {
		return Span{}, &GenerationError{Specifier: spec, Err: ErrInvalidRange}
	}
	return span, nil
}

// Pick resolves the specifier, draws a creature uniformly from its span and
// rolls for shiny unless forceShiny is set.
func (s *Selector) Pick(spec string, forceShiny bool) (Choice, error) {
	span, err := s.Resolve(spec)
	if err != nil {
		return Choice{}, err
	}

	index := span.Start + s.rng.Intn(span.End-span.Start+1)
	name, err := s.names.At(index)
	if err != nil {
		return Choice{}, fmt.Errorf("pick from %q: %w", spec, err)
	}

	return Choice{
		Name:  name,
		Index: index,
		Shiny: s.RollShiny(forceShiny),
		Span:  span,
	}, nil
}

// RollShiny returns true when forced, otherwise true with probability ShinyRate.
func (s *Selector) RollShiny(forced bool) bool {
	if forced {
		return true
	}
	return s.rng.Float64() <= ShinyRate
}
