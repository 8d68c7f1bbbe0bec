package josa

import "strings"

// ToleranceStyle selects how a combined notation orders the two candidate
// forms when a word cannot be classified.
type ToleranceStyle int

const (
	// ToleranceForm1Form2 writes the batchim form first with the other in
	// parentheses: 은(는). This is the conventional ordering and the
	// default.
	ToleranceForm1Form2 ToleranceStyle = iota
	// ToleranceOptionalForm1Form2 writes (은)는.
	ToleranceOptionalForm1Form2
	// ToleranceForm2Form1 writes 는(은).
	ToleranceForm2Form1
	// ToleranceOptionalForm2Form1 writes (는)은.
	ToleranceOptionalForm2Form1
)

// generateTolerances returns the reasonable combined notations for a pair
// of allomorphs, in tolerance-style order. Pairs where the longer form ends
// with the shorter collapse to the single (prefix)suffix shape, e.g.
// 으로/로 → (으)로. A pair with a null allomorph yields (form). Identical
// forms need no tolerance and yield nothing.
func generateTolerances(form1, form2 string) []string {
	if form1 == form2 {
		return nil
	}
	if form1 == "" || form2 == "" {
		f := form1
		if f == "" {
			f = form2
		}
		return []string{"(" + f + ")"}
	}
	if len([]rune(form1)) != len([]rune(form2)) {
		longer, shorter := form1, form2
		if len([]rune(form2)) > len([]rune(form1)) {
			longer, shorter = form2, form1
		}
		if strings.HasSuffix(longer, shorter) {
			return []string{"(" + strings.TrimSuffix(longer, shorter) + ")" + shorter}
		}
	}
	return []string{
		form1 + "(" + form2 + ")",
		"(" + form1 + ")" + form2,
		form2 + "(" + form1 + ")",
		"(" + form2 + ")" + form1,
	}
}

// selectTolerance picks the notation for style from the generated set.
// Pairs with a single reasonable notation ignore the style.
func selectTolerance(form1, form2 string, style ToleranceStyle) string {
	tolerances := generateTolerances(form1, form2)
	switch len(tolerances) {
	case 0:
		return form1
	case 1:
		return tolerances[0]
	}
	if style < ToleranceForm1Form2 || style > ToleranceOptionalForm2Form1 {
		style = ToleranceForm1Form2
	}
	return tolerances[style]
}
