package josa

import "unicode/utf8"

// digitReadings holds the Sino-Korean reading of each decimal digit.
var digitReadings = []rune("영일이삼사오육칠팔구")

// placeValues holds the Sino-Korean place-value words by decimal exponent,
// in ascending order. Past 만 (10⁴) the system advances in myriads, and the
// largest words (항하사 and up) are read as multi-syllable compounds.
var placeValues = []struct {
	exp  int
	word string
}{
	{1, "십"}, {2, "백"}, {3, "천"}, {4, "만"},
	{8, "억"}, {12, "조"}, {16, "경"}, {20, "해"},
	{24, "자"}, {28, "양"}, {32, "구"}, {36, "간"},
	{40, "정"}, {44, "재"}, {48, "극"}, {52, "항하사"},
	{56, "아승기"}, {60, "나유타"}, {64, "불가사의"}, {68, "무량대수"},
	{72, "겁"}, {76, "업"},
}

// unreadableExp is the first power of ten with no conventional reading;
// numbers whose spoken ending would need it are unclassifiable.
const unreadableExp = 80

// classifyNumeral returns the BatchimClass of the final spoken syllable of
// a digit run's Sino-Korean reading, without producing the reading itself.
// A non-zero last digit is read from the digit table ("999" ends spoken as
// 구). A trailing run of zeros is read as the place-value word of its
// magnitude ("10" ends as 십, "12000" as 천). A run of nothing but zeros is
// read as 영.
func classifyNumeral(digits string) BatchimClass {
	if digits == "" {
		return Unclassifiable
	}
	zeros := 0
	for zeros < len(digits) && digits[len(digits)-1-zeros] == '0' {
		zeros++
	}
	if zeros == 0 {
		d := int(digits[len(digits)-1] - '0')
		return classOfSyllable(digitReadings[d])
	}
	if zeros == len(digits) {
		return classOfSyllable(digitReadings[0])
	}
	if zeros >= unreadableExp {
		return Unclassifiable
	}
	// The spoken ending is the largest place-value word whose exponent
	// does not exceed the trailing-zero count: 100000 ends as 만 (십만).
	var word string
	for _, pv := range placeValues {
		if pv.exp > zeros {
			break
		}
		word = pv.word
	}
	last, _ := utf8.DecodeLastRuneInString(word)
	return classOfSyllable(last)
}
