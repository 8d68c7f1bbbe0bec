package josa

import "fmt"

// Korean phonemes as known as 자소 (jamo). Index positions follow the
// Unicode Hangul syllable-block layout.
var (
	initials = []rune("ㄱㄲㄴㄷㄸㄹㅁㅂㅃㅅㅆㅇㅈㅉㅊㅋㅌㅍㅎ")
	medials  = []rune("ㅏㅐㅑㅒㅓㅔㅕㅖㅗㅘㅙㅚㅛㅜㅝㅞㅟㅠㅡㅢㅣ")
	// finals[0] is the empty final: a syllable with no batchim.
	finals = append([]rune{0}, []rune("ㄱㄲㄳㄴㄵㄶㄷㄹㄺㄻㄼㄽㄾㄿㅀㅁㅂㅄㅅㅆㅇㅈㅊㅋㅌㅍㅎ")...)
)

const (
	numInitials = 19
	numMedials  = 21
	numFinals   = 28

	hangulBase rune = 0xAC00 // 가
	hangulLast rune = 0xD7A3 // 힣

	// finalRieul is the final-consonant index of ㄹ.
	finalRieul = 8
)

// IsHangulSyllable reports whether r lies in the Hangul syllable block
// (U+AC00..U+D7A3).
func IsHangulSyllable(r rune) bool {
	return r >= hangulBase && r <= hangulLast
}

// Decompose splits a Hangul syllable into its jamo indices:
// initial 0..18, medial 0..20, final 0..27 where final 0 means no batchim.
// A syllable's offset in the block is (initial×21+medial)×28+final.
// Fails with ErrNotHangulSyllable outside the block.
func Decompose(r rune) (initial, medial, final int, err error) {
	if !IsHangulSyllable(r) {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrNotHangulSyllable, r)
	}
	offset := int(r - hangulBase)
	initial = offset / (numMedials * numFinals)
	medial = (offset / numFinals) % numMedials
	final = offset % numFinals
	return initial, medial, final, nil
}

// Compose is the inverse of Decompose. Fails with ErrInvalidJamoIndex if
// any index is out of range.
func Compose(initial, medial, final int) (rune, error) {
	if initial < 0 || initial >= numInitials ||
		medial < 0 || medial >= numMedials ||
		final < 0 || final >= numFinals {
		return 0, fmt.Errorf("%w: (%d, %d, %d)", ErrInvalidJamoIndex, initial, medial, final)
	}
	return hangulBase + rune((initial*numMedials+medial)*numFinals+final), nil
}

// FinalConsonant returns the final-consonant index of a Hangul syllable;
// 0 means the syllable has no batchim.
func FinalConsonant(r rune) (int, error) {
	_, _, final, err := Decompose(r)
	return final, err
}

// HasBatchim reports whether a Hangul syllable ends in a final consonant.
func HasBatchim(r rune) (bool, error) {
	final, err := FinalConsonant(r)
	return final != 0, err
}

// FinalJamo returns the final consonant of a Hangul syllable as a jamo
// rune, or 0 if the syllable has no batchim.
func FinalJamo(r rune) (rune, error) {
	final, err := FinalConsonant(r)
	if err != nil {
		return 0, err
	}
	return finals[final], nil
}

// Jamos returns the constituent jamo runes of a Hangul syllable. The final
// rune is 0 for syllables without a batchim.
func Jamos(r rune) (initial, medial, final rune, err error) {
	i, m, f, err := Decompose(r)
	if err != nil {
		return 0, 0, 0, err
	}
	return initials[i], medials[m], finals[f], nil
}
