package josa

// Rule is one allomorph-selection behavior a particle tag can map to.
type Rule interface {
	// apply returns the surface suffix for the given ending class. For
	// Unclassifiable it returns the combined notation in the given style.
	apply(class BatchimClass, style ToleranceStyle) string
	// forms lists every notation the rule answers to besides its
	// canonical tag: the individual allomorphs and the combined form.
	forms() []string
}

// Invariant is a particle with a single surface form for every ending.
type Invariant struct {
	Form string
}

func (p Invariant) apply(BatchimClass, ToleranceStyle) string { return p.Form }

func (p Invariant) forms() []string { return []string{p.Form} }

// BatchimPair selects between two forms on the presence of a batchim.
type BatchimPair struct {
	WithBatchim    string
	WithoutBatchim string
	// RieulAsNoBatchim marks the 로-family liaison: after a ㄹ final the
	// connecting 으 is dropped just as after a vowel.
	RieulAsNoBatchim bool
	// Ambiguous is the conventional written notation for unclassifiable
	// words, e.g. 은(는) or (으)로. The ordering of each pair is a fixed
	// convention, so it is tabulated rather than derived.
	Ambiguous string
}

func (p BatchimPair) apply(class BatchimClass, style ToleranceStyle) string {
	switch class {
	case Batchim:
		return p.WithBatchim
	case RieulBatchim:
		if p.RieulAsNoBatchim {
			return p.WithoutBatchim
		}
		return p.WithBatchim
	case NoBatchim:
		return p.WithoutBatchim
	default:
		if style == ToleranceForm1Form2 {
			return p.Ambiguous
		}
		return selectTolerance(p.WithBatchim, p.WithoutBatchim, style)
	}
}

func (p BatchimPair) forms() []string {
	return []string{p.WithBatchim, p.WithoutBatchim, p.Ambiguous}
}

// particles is the closed tag table for non-copula particles. The tag is
// the canonical name; every surface form is also registered as an alias,
// so "은", "는" and "은(는)" all reach the 은/는 rule.
var particles = []struct {
	tag  string
	rule Rule
}{
	// general batchim pairs
	{"은/는", BatchimPair{"은", "는", false, "은(는)"}},
	{"이/가", BatchimPair{"이", "가", false, "이(가)"}},
	{"을/를", BatchimPair{"을", "를", false, "을(를)"}},
	{"과/와", BatchimPair{"과", "와", false, "과(와)"}},
	// vocative
	{"아/야", BatchimPair{"아", "야", false, "아(야)"}},
	// conjunctive pairs with a null allomorph after vowels
	{"이랑", BatchimPair{"이랑", "랑", false, "(이)랑"}},
	{"이나", BatchimPair{"이나", "나", false, "(이)나"}},
	{"이란", BatchimPair{"이란", "란", false, "(이)란"}},
	{"이든지", BatchimPair{"이든지", "든지", false, "(이)든지"}},
	{"이라도", BatchimPair{"이라도", "라도", false, "(이)라도"}},
	{"이야말로", BatchimPair{"이야말로", "야말로", false, "(이)야말로"}},
	// the 로-family: 으 drops after vowels and after ㄹ
	{"로", BatchimPair{"으로", "로", true, "(으)로"}},
	{"로서", BatchimPair{"으로서", "로서", true, "(으)로서"}},
	{"로부터", BatchimPair{"으로부터", "로부터", true, "(으)로부터"}},
	{"로써", BatchimPair{"으로써", "로써", true, "(으)로써"}},
	// invariant particles
	{"의", Invariant{"의"}},
	{"도", Invariant{"도"}},
	{"만", Invariant{"만"}},
	{"보다", Invariant{"보다"}},
	{"부터", Invariant{"부터"}},
	{"까지", Invariant{"까지"}},
	{"마저", Invariant{"마저"}},
	{"조차", Invariant{"조차"}},
	// locative and dative forms on the 에 stem
	{"에", Invariant{"에"}},
	{"에서", Invariant{"에서"}},
	{"에게", Invariant{"에게"}},
	{"에게서", Invariant{"에게서"}},
	// honorific 께 stem
	{"께", Invariant{"께"}},
	{"께서", Invariant{"께서"}},
	// colloquial 하 stem
	{"하고", Invariant{"하고"}},
	{"한테", Invariant{"한테"}},
	{"한테서", Invariant{"한테서"}},
}

// particleIndex maps every recognized tag and alias to its rule. Built once
// at package init and never mutated afterwards.
var particleIndex = buildParticleIndex()

func buildParticleIndex() map[string]Rule {
	index := make(map[string]Rule)
	register := func(rule Rule, keys ...string) {
		seen := make(map[string]bool, len(keys))
		for _, key := range keys {
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			if _, dup := index[key]; dup {
				panic("josa: particle form registered twice: " + key)
			}
			index[key] = rule
		}
	}
	for _, p := range particles {
		register(p.rule, append([]string{p.tag}, p.rule.forms()...)...)
	}
	for _, e := range copulaEndings {
		rule := copulaRule{ending: e}
		register(rule, append([]string{copulaTagPrefix + e.name}, rule.forms()...)...)
	}
	return index
}
