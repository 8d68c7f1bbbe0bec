package josa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTolerances(t *testing.T) {
	tests := []struct {
		form1, form2 string
		want         []string
	}{
		{"이", "가", []string{"이(가)", "(이)가", "가(이)", "(가)이"}},
		{"은", "는", []string{"은(는)", "(은)는", "는(은)", "(는)은"}},
		// the longer form ends with the shorter: one shape only
		{"으로", "로", []string{"(으)로"}},
		{"이면", "면", []string{"(이)면"}},
		// null allomorph
		{"이", "", []string{"(이)"}},
		{"", "가", []string{"(가)"}},
		// identical forms need no tolerance
		{"입니다", "입니다", nil},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, generateTolerances(tt.form1, tt.form2),
			"generateTolerances(%q, %q)", tt.form1, tt.form2)
	}
}

func TestToleranceStyles(t *testing.T) {
	tests := []struct {
		style ToleranceStyle
		want  string
	}{
		{ToleranceForm1Form2, "이(가)"},
		{ToleranceOptionalForm1Form2, "(이)가"},
		{ToleranceForm2Form1, "가(이)"},
		{ToleranceOptionalForm2Form1, "(가)이"},
	}
	for _, tt := range tests {
		r := New(WithToleranceStyle(tt.style))
		got, err := r.Resolve("Pikachu", "이/가")
		require.NoError(t, err)
		assert.Equalf(t, tt.want, got, "style %d", tt.style)
	}
}

func TestToleranceStyleIgnoredForSingleShape(t *testing.T) {
	// (으)로 is the only reasonable notation whatever the style
	for style := ToleranceForm1Form2; style <= ToleranceOptionalForm2Form1; style++ {
		r := New(WithToleranceStyle(style))
		got, err := r.Resolve("黃金", "로")
		require.NoError(t, err)
		assert.Equal(t, "(으)로", got)
	}
}

func TestToleranceStyleCopula(t *testing.T) {
	r := New(WithToleranceStyle(ToleranceForm2Form1))
	got, err := r.Conjugate("Pikachu", "예요")
	require.NoError(t, err)
	assert.Equal(t, "예요(이에요)", got)

	// classified words are unaffected by the style
	got, err = r.Conjugate("버터플", "예요")
	require.NoError(t, err)
	assert.Equal(t, "이에요", got)
}
