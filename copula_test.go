package josa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConjugate(t *testing.T) {
	tests := []struct {
		word   string
		ending string
		want   string
	}{
		// 이 drops after vowels
		{"피카츄", "다", "다"},
		{"버터플", "다", "이다"},
		{"민주공화국", "다", "이다"},
		// 이에 fuses to 예 after vowels
		{"피카츄", "예요", "예요"},
		{"버터플", "예요", "이에요"},
		// no allomorphy at all
		{"피카츄", "입니다", "입니다"},
		{"버터플", "입니다", "입니다"},
		// 이어 fuses to 여
		{"피카츄", "이어서", "여서"},
		{"버터플", "이어서", "이어서"},
		{"나오", "이었다", "였다"},
		{"짚", "이었다", "이었다"},
		// vocatives
		{"친구", "이여", "여"},
		{"사랑", "이여", "이여"},
		{"바다", "이시여", "시여"},
		{"하늘", "이시여", "이시여"},
		// connective endings
		{"나오", "이므로", "므로"},
		{"대한민국", "이므로", "이므로"},
		{"사과", "지만", "지만"},
		{"수박", "지만", "이지만"},
		{"바다", "이니까", "니까"},
		{"산", "이니까", "이니까"},
	}
	for _, tt := range tests {
		got, err := Conjugate(tt.word, tt.ending)
		require.NoErrorf(t, err, "Conjugate(%q, %q)", tt.word, tt.ending)
		assert.Equalf(t, tt.want, got, "Conjugate(%q, %q)", tt.word, tt.ending)
	}
}

func TestConjugateAliases(t *testing.T) {
	// the ending is found under its name, either surface form and the tag
	for _, ending := range []string{"예요", "이에요", "이다-예요"} {
		got, err := Conjugate("버터플", ending)
		require.NoError(t, err)
		assert.Equal(t, "이에요", got)
	}
	for _, ending := range []string{"이니까", "니까", "이다-이니까"} {
		got, err := Conjugate("산", ending)
		require.NoError(t, err)
		assert.Equal(t, "이니까", got)

		got, err = Resolve("바다", ending)
		require.NoError(t, err)
		assert.Equal(t, "니까", got)
	}
}

func TestConjugateAmbiguous(t *testing.T) {
	tests := []struct {
		word   string
		ending string
		want   string
	}{
		{"Pikachu", "다", "(이)다"},
		{"Pikachu", "지만", "(이)지만"},
		{"Pikachu", "예요", "이에요(예요)"},
		{"Pikachu", "이었다", "이었다(였다)"},
		// no allomorphy, so no combined notation either
		{"Pikachu", "입니다", "입니다"},
	}
	for _, tt := range tests {
		got, err := Conjugate(tt.word, tt.ending)
		require.NoErrorf(t, err, "Conjugate(%q, %q)", tt.word, tt.ending)
		assert.Equalf(t, tt.want, got, "Conjugate(%q, %q)", tt.word, tt.ending)
	}
}

func TestConjugateRieul(t *testing.T) {
	// ㄹ is a full consonant for the copula, unlike the 로-family
	got, err := Conjugate("하늘", "다")
	require.NoError(t, err)
	assert.Equal(t, "이다", got)
}

func TestConjugateErrors(t *testing.T) {
	_, err := Conjugate("피카츄", "없는어미")
	assert.ErrorIs(t, err, ErrUnknownEnding)

	_, err = Conjugate("", "다")
	assert.ErrorIs(t, err, ErrEmptyWord)
}

func TestResolveCopulaTags(t *testing.T) {
	// copula endings resolve through the ordinary tag table too
	got, err := Resolve("버터플", "이다-예요")
	require.NoError(t, err)
	assert.Equal(t, "이에요", got)

	got, err = Resolve("사랑", "여")
	require.NoError(t, err)
	assert.Equal(t, "이여", got)

	got, err = Resolve("바다", "시여")
	require.NoError(t, err)
	assert.Equal(t, "시여", got)
}
