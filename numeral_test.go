package josa

import (
	"strings"
	"testing"
)

func TestClassifyNumeral(t *testing.T) {
	tests := []struct {
		digits string
		want   BatchimClass
		spoken string // last spoken syllable, for the reader
	}{
		{"0", Batchim, "영"},
		{"1", RieulBatchim, "일"},
		{"2", NoBatchim, "이"},
		{"3", Batchim, "삼"},
		{"4", NoBatchim, "사"},
		{"5", NoBatchim, "오"},
		{"6", Batchim, "육"},
		{"7", RieulBatchim, "칠"},
		{"8", RieulBatchim, "팔"},
		{"9", NoBatchim, "구"},
		{"999", NoBatchim, "구"},
		{"10", Batchim, "십"},
		{"20", Batchim, "십"},
		{"100", Batchim, "백"},
		{"1000", Batchim, "천"},
		{"10000", Batchim, "만"},
		{"12000", Batchim, "천"},
		{"100000", Batchim, "만"},
		{"100000000", Batchim, "억"},
		{"1000000000000", NoBatchim, "조"},
		{"10000000000000000", Batchim, "경"},
		{"000", Batchim, "영"},
	}
	for _, tt := range tests {
		if got := classifyNumeral(tt.digits); got != tt.want {
			t.Errorf("classifyNumeral(%q) = %v, want %v (ends spoken as %s)",
				tt.digits, got, tt.want, tt.spoken)
		}
	}
}

func TestClassifyNumeralUnreadable(t *testing.T) {
	// 10^76 (업) is the largest readable magnitude; a mantissa followed by
	// 80 or more zeros has no conventional reading.
	readable := "1" + strings.Repeat("0", 79)
	if got := classifyNumeral(readable); got != Batchim {
		t.Errorf("classifyNumeral(10^79) = %v, want Batchim (업)", got)
	}
	unreadable := "1" + strings.Repeat("0", 80)
	if got := classifyNumeral(unreadable); got != Unclassifiable {
		t.Errorf("classifyNumeral(10^80) = %v, want Unclassifiable", got)
	}
}

func TestClassifyNumeralRieulLiaison(t *testing.T) {
	// 일, 칠, 팔 end in ㄹ, so the 로-family drops 으 after them.
	got, err := Resolve("레벨 7", "로")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "로" {
		t.Errorf("Resolve(레벨 7, 로) = %q, want 로 (칠로)", got)
	}
}
