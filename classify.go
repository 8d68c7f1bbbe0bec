package josa

import (
	"strings"
	"unicode/utf8"
)

// BatchimClass describes how a word's ending selects particle allomorphs.
type BatchimClass int

const (
	// Unclassifiable endings are neither Hangul syllables nor digit runs
	// with a known reading: Latin letters, Hanja, symbols, emoji.
	Unclassifiable BatchimClass = iota
	// NoBatchim endings are Hangul syllables without a final consonant.
	NoBatchim
	// Batchim endings are Hangul syllables with a final consonant other
	// than ㄹ.
	Batchim
	// RieulBatchim endings have the final consonant ㄹ, which counts as
	// no batchim for the 로-family only.
	RieulBatchim
)

func (c BatchimClass) String() string {
	switch c {
	case NoBatchim:
		return "NoBatchim"
	case Batchim:
		return "Batchim"
	case RieulBatchim:
		return "RieulBatchim"
	default:
		return "Unclassifiable"
	}
}

// Classify inspects the last classifiable character of word and returns its
// BatchimClass. A balanced, non-empty parenthetical group at the very end
// of the word ("피카츄(Lv.25)") is skipped. A trailing decimal digit run is
// classified by its Sino-Korean reading. Fails with ErrEmptyWord when
// nothing classifiable remains.
func Classify(word string) (BatchimClass, error) {
	w := stripAnnotation(word)
	if w == "" {
		return Unclassifiable, ErrEmptyWord
	}
	last, _ := utf8.DecodeLastRuneInString(w)
	switch {
	case IsHangulSyllable(last):
		final, _ := FinalConsonant(last)
		return classOfFinal(final), nil
	case last >= '0' && last <= '9':
		return classifyNumeral(trailingDigits(w)), nil
	default:
		return Unclassifiable, nil
	}
}

// classOfFinal maps a final-consonant index to its BatchimClass.
func classOfFinal(final int) BatchimClass {
	switch final {
	case 0:
		return NoBatchim
	case finalRieul:
		return RieulBatchim
	default:
		return Batchim
	}
}

// classOfSyllable classifies a single Hangul syllable.
func classOfSyllable(r rune) BatchimClass {
	final, err := FinalConsonant(r)
	if err != nil {
		return Unclassifiable
	}
	return classOfFinal(final)
}

// stripAnnotation removes a parenthetical annotation occupying exactly the
// tail of word. The group must be balanced and non-empty; anything else is
// left alone. Only the tail group is stripped, so "피카(?)츄" keeps its
// parentheses.
func stripAnnotation(word string) string {
	if !strings.HasSuffix(word, ")") {
		return word
	}
	runes := []rune(word)
	depth := 0
	for i := len(runes) - 1; i >= 0; i-- {
		switch runes[i] {
		case ')':
			depth++
		case '(':
			depth--
			if depth == 0 {
				if i == len(runes)-2 {
					// "()" carries nothing to skip
					return word
				}
				return string(runes[:i])
			}
		}
	}
	// unbalanced tail, e.g. "버그)"
	return word
}

// trailingDigits returns the run of decimal digits at the end of w.
func trailingDigits(w string) string {
	end := len(w)
	start := end
	for start > 0 && w[start-1] >= '0' && w[start-1] <= '9' {
		start--
	}
	return w[start:end]
}
