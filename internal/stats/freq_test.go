package stats

import (
	"reflect"
	"testing"
)

func TestCounts(t *testing.T) {
	got := Counts([]string{"ford", "toyota", "ford", "", "ford"})
	want := map[string]int{"ford": 3, "toyota": 1, "": 1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Counts = %v, want %v", got, want)
	}
}

func TestTopKOrderAndTies(t *testing.T) {
	counts := map[string]int{
		"ford":      60,
		"chevrolet": 55,
		"toyota":    55,
		"bmw":       3,
	}
	got := TopK(counts, 3)
	want := []CategoryCount{
		{Value: "ford", Count: 60},
		{Value: "chevrolet", Count: 55},
		{Value: "toyota", Count: 55},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("TopK = %v, want %v", got, want)
	}
}

func TestTopKFewerThanK(t *testing.T) {
	got := TopK(map[string]int{"ford": 1, "bmw": 2}, 10)
	if len(got) != 2 {
		t.Fatalf("TopK returned %d entries, want 2", len(got))
	}
	if got[0].Value != "bmw" || got[1].Value != "ford" {
		t.Fatalf("TopK order = %v", got)
	}
}

func TestTopKZeroMeansAll(t *testing.T) {
	got := TopK(map[string]int{"a": 1, "b": 2, "c": 3}, 0)
	if len(got) != 3 {
		t.Fatalf("TopK(0) returned %d entries, want all 3", len(got))
	}
}
