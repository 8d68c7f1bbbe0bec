package josa

import "fmt"

// copulaTagPrefix forms the canonical tag of a copula ending: "이다-다",
// "이다-예요", and so on.
const copulaTagPrefix = "이다-"

// copulaEnding is one inflected ending of the copula 이다 with its two
// batchim-dependent surface forms. The 이-elision is irregular across the
// paradigm — 이어 fuses to 여 and 이에 to 예 after vowels, while 입니다
// never changes — so every ending is enumerated rather than derived.
type copulaEnding struct {
	name    string
	with    string // after a final consonant: 버터플이다
	without string // after a vowel: 피카츄다
	// ambiguous is the written notation for unclassifiable words. Endings
	// whose long form is 이 + the short form use the (이)다 convention;
	// fused endings spell out both forms.
	ambiguous string
	aliases   []string
}

// copulaEndings enumerates the supported copula paradigm.
var copulaEndings = []copulaEnding{
	{name: "다", with: "이다", without: "다", ambiguous: "(이)다", aliases: []string{"이다"}},
	{name: "예요", with: "이에요", without: "예요", ambiguous: "이에요(예요)", aliases: []string{"이에요"}},
	{name: "지만", with: "이지만", without: "지만", ambiguous: "(이)지만", aliases: []string{"이지만"}},
	{name: "입니다", with: "입니다", without: "입니다", ambiguous: "입니다"},
	{name: "입니까", with: "입니까", without: "입니까", ambiguous: "입니까"},
	{name: "이므로", with: "이므로", without: "므로", ambiguous: "(이)므로", aliases: []string{"므로"}},
	{name: "이어서", with: "이어서", without: "여서", ambiguous: "이어서(여서)", aliases: []string{"여서"}},
	{name: "이어도", with: "이어도", without: "여도", ambiguous: "이어도(여도)", aliases: []string{"여도"}},
	{name: "이었다", with: "이었다", without: "였다", ambiguous: "이었다(였다)", aliases: []string{"였다"}},
	{name: "이여", with: "이여", without: "여", ambiguous: "(이)여", aliases: []string{"여"}},
	{name: "이시여", with: "이시여", without: "시여", ambiguous: "(이)시여", aliases: []string{"시여"}},
	{name: "이니", with: "이니", without: "니", ambiguous: "(이)니", aliases: []string{"니"}},
	{name: "이니까", with: "이니까", without: "니까", ambiguous: "(이)니까", aliases: []string{"니까"}},
	{name: "이라면", with: "이라면", without: "라면", ambiguous: "(이)라면", aliases: []string{"라면"}},
	{name: "이라고", with: "이라고", without: "라고", ambiguous: "(이)라고", aliases: []string{"라고"}},
}

// copulaIndex maps every ending name, alias and surface form to its entry.
var copulaIndex = buildCopulaIndex()

func buildCopulaIndex() map[string]copulaEnding {
	index := make(map[string]copulaEnding)
	for _, e := range copulaEndings {
		keys := append([]string{e.name, e.with, e.without, e.ambiguous, copulaTagPrefix + e.name}, e.aliases...)
		for _, key := range keys {
			index[key] = e
		}
	}
	return index
}

// copulaRule adapts a copulaEnding to the Rule interface so copula tags
// live in the same index as ordinary particles.
type copulaRule struct {
	ending copulaEnding
}

func (p copulaRule) apply(class BatchimClass, style ToleranceStyle) string {
	switch class {
	case Batchim, RieulBatchim:
		// ㄹ is a full consonant for the copula: 하늘이다, not 하늘다.
		return p.ending.with
	case NoBatchim:
		return p.ending.without
	default:
		if style == ToleranceForm1Form2 || p.ending.with == p.ending.without {
			return p.ending.ambiguous
		}
		return selectTolerance(p.ending.with, p.ending.without, style)
	}
}

func (p copulaRule) forms() []string {
	forms := []string{p.ending.name, p.ending.with, p.ending.without, p.ending.ambiguous}
	return append(forms, p.ending.aliases...)
}

// Conjugate resolves a copula ending for word: Conjugate("버터플", "예요")
// returns "이에요", Conjugate("피카츄", "예요") returns "예요". Accepts the
// ending name, either surface form or the full 이다- tag. Fails with
// ErrUnknownEnding or ErrEmptyWord.
func (r *Resolver) Conjugate(word, ending string) (string, error) {
	e, ok := copulaIndex[ending]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownEnding, ending)
	}
	class, err := Classify(word)
	if err != nil {
		return "", err
	}
	return copulaRule{ending: e}.apply(class, r.style), nil
}

// Conjugate resolves a copula ending with the Default resolver.
func Conjugate(word, ending string) (string, error) {
	return Default.Conjugate(word, ending)
}
