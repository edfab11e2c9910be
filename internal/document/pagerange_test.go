package document

import "testing"

func TestParsePageRangeEmptySpecReturnsAllPages(t *testing.T) {
	got, err := ParsePageRange("", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{0, 1, 2}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestParsePageRangeSingleAndRange(t *testing.T) {
	got, err := ParsePageRange("1,3-5", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{0, 2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestParsePageRangeDeduplicatesAndSorts(t *testing.T) {
	got, err := ParsePageRange("5,1,3-5,2", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{0, 1, 2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestParsePageRangeReversedRange(t *testing.T) {
	got, err := ParsePageRange("5-3", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestParsePageRangeZeroIsRejected(t *testing.T) {
	if _, err := ParsePageRange("0", 10); err == nil {
		t.Fatal("expected an error for page 0")
	}
}

func TestParsePageRangeExceedsPageCount(t *testing.T) {
	if _, err := ParsePageRange("11", 10); err == nil {
		t.Fatal("expected an error for a page beyond the document's page count")
	}
}

func TestParsePageRangeInvalidToken(t *testing.T) {
	if _, err := ParsePageRange("abc", 10); err == nil {
		t.Fatal("expected an error for a non-numeric page token")
	}
}
