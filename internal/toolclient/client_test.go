package toolclient

import "testing"

func TestParseViewRangeOpenEnded(t *testing.T) {
	r, errMsg := parseViewRange([]any{float64(5), float64(-1)})
	if errMsg != "" {
		t.Fatalf("unexpected error: %s", errMsg)
	}
	if r.Start != 5 || r.End != -1 {
		t.Fatalf("got %+v, want start=5 end=-1", r)
	}
}

func TestParseViewRangeBounded(t *testing.T) {
	r, errMsg := parseViewRange([]any{float64(2), float64(10)})
	if errMsg != "" {
		t.Fatalf("unexpected error: %s", errMsg)
	}
	if r.Start != 2 || r.End != 10 {
		t.Fatalf("got %+v, want start=2 end=10", r)
	}
}

func TestParseViewRangeNil(t *testing.T) {
	r, errMsg := parseViewRange(nil)
	if r != nil || errMsg != "" {
		t.Fatalf("expected nil range and no error, got %+v %q", r, errMsg)
	}
}

func TestParseViewRangeRejectsMalformed(t *testing.T) {
	_, errMsg := parseViewRange([]any{float64(0), float64(0)})
	if errMsg == "" {
		t.Fatal("expected an error for an all-zero range")
	}
}
