// Package josa selects the grammatically correct surface form of a Korean
// postposition (조사) or copula ending for the word it attaches to.
//
// Korean particles are allomorphic: 은/는, 이/가, 을/를 and friends change
// shape depending on whether the preceding word ends in a final consonant
// (batchim). The package classifies a word's ending — decomposing Hangul
// syllables, reading trailing digit runs as Sino-Korean numerals, and
// skipping a trailing parenthetical annotation — and applies a closed rule
// table to produce the right suffix. When the ending cannot be classified
// (Latin letters, Hanja, symbols), the conventional combined notation such
// as 은(는) or (으)로 is returned instead.
//
// All rule tables are immutable package-level data; every resolution is a
// pure function of its inputs and is safe for concurrent use.
package josa

import (
	"errors"
	"fmt"
	"sort"
)

// Error values reported by the resolver. All of them are scoped to a single
// resolution call; nothing is retryable.
var (
	// ErrEmptyWord means the word has no classifiable character left after
	// stripping a trailing parenthetical annotation.
	ErrEmptyWord = errors.New("josa: empty word")

	// ErrNotHangulSyllable is returned by the codec for codepoints outside
	// the Hangul syllable block.
	ErrNotHangulSyllable = errors.New("josa: not a hangul syllable")

	// ErrInvalidJamoIndex is returned by Compose for out-of-range jamo
	// indices.
	ErrInvalidJamoIndex = errors.New("josa: invalid jamo index")

	// ErrUnknownTag means the particle tag is not in the rule table.
	ErrUnknownTag = errors.New("josa: unknown particle tag")

	// ErrUnknownEnding means the copula ending is not in the paradigm.
	ErrUnknownEnding = errors.New("josa: unknown copula ending")
)

// Resolver resolves particle tags against the closed rule table. The zero
// value resolves with the canonical tolerance style; use New to pick a
// different one. Resolvers are stateless and safe for concurrent use.
type Resolver struct {
	style ToleranceStyle
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithToleranceStyle sets the notation style used when a word cannot be
// classified. The default is ToleranceForm1Form2, the conventional 은(는)
// ordering.
func WithToleranceStyle(style ToleranceStyle) Option {
	return func(r *Resolver) { r.style = style }
}

// New returns a Resolver with the given options applied.
func New(opts ...Option) *Resolver {
	r := &Resolver{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Default is the package-wide Resolver with the canonical tolerance style.
var Default = New()

// Resolve returns the suffix selected by tag for word. The word's trailing
// parenthetical annotation, if any, is ignored for classification. For
// unclassifiable words the combined notation (은(는), (으)로, …) is
// returned. Fails with ErrUnknownTag or ErrEmptyWord.
func (r *Resolver) Resolve(word, tag string) (string, error) {
	rule, ok := particleIndex[tag]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTag, tag)
	}
	class, err := Classify(word)
	if err != nil {
		return "", err
	}
	return rule.apply(class, r.style), nil
}

// Attach resolves tag for word and returns word with the suffix appended.
// The suffix goes after the whole word, so a trailing annotation stays
// between the word and the particle: Attach("나뭇가지(만렙)", "을/를")
// returns "나뭇가지(만렙)를".
func (r *Resolver) Attach(word, tag string) (string, error) {
	suffix, err := r.Resolve(word, tag)
	if err != nil {
		return "", err
	}
	return word + suffix, nil
}

// Resolve resolves word and tag with the Default resolver.
func Resolve(word, tag string) (string, error) {
	return Default.Resolve(word, tag)
}

// Attach appends the resolved suffix to word with the Default resolver.
func Attach(word, tag string) (string, error) {
	return Default.Attach(word, tag)
}

// Tags returns the canonical tag of every supported particle and copula
// ending, sorted. Aliases (individual allomorphs and combined notations)
// are not listed even though Resolve accepts them.
func Tags() []string {
	tags := make([]string, 0, len(particles)+len(copulaEndings))
	for _, p := range particles {
		tags = append(tags, p.tag)
	}
	for _, e := range copulaEndings {
		tags = append(tags, copulaTagPrefix+e.name)
	}
	sort.Strings(tags)
	return tags
}
