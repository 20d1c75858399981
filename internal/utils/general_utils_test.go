package utils

import (
	"reflect"
	"testing"
)

func TestDedupIDs(t *testing.T) {
	got := DedupIDs([]uint{3, 1, 3, 2, 1})
	want := []uint{3, 1, 2}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	if got := DedupIDs([]uint{}); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestReverse(t *testing.T) {
	items := []int{1, 2, 3, 4}
	Reverse(items)
	if !reflect.DeepEqual(items, []int{4, 3, 2, 1}) {
		t.Fatalf("expected reversed slice, got %v", items)
	}

	single := []string{"only"}
	Reverse(single)
	if single[0] != "only" {
		t.Fatalf("expected single element untouched, got %v", single)
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		value, min, max, want float64
	}{
		{5, 10, 50, 10},
		{25, 1, 20, 20},
		{15, 10, 50, 15},
		{10, 10, 50, 10},
		{50, 10, 50, 50},
	}
	for _, tc := range cases {
		if got := Clamp(tc.value, tc.min, tc.max); got != tc.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tc.value, tc.min, tc.max, got, tc.want)
		}
	}
}
