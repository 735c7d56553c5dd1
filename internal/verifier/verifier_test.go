package verifier

import "testing"

// -- Diff ---------------------------------------------------------------------

func TestDiffAllMatch(t *testing.T) {
	diffs := Diff([]string{"a", "b"}, []string{"a", "b"})
	if len(diffs) != 2 {
		t.Fatalf("got %d diffs, want 2", len(diffs))
	}
	for i, d := range diffs {
		if !d.Match {
			t.Errorf("diff[%d] should match: %+v", i, d)
		}
		if d.Position != i+1 {
			t.Errorf("diff[%d].Position = %d", i, d.Position)
		}
	}
}

func TestDiffNameMismatch(t *testing.T) {
	diffs := Diff([]string{"one", "deux"}, []string{"one", "two"})
	if diffs[0].Match != true || diffs[1].Match != false {
		t.Errorf("diffs = %+v", diffs)
	}
	if diffs[1].Predicted != "deux" || diffs[1].Actual != "two" {
		t.Errorf("diffs[1] = %+v", diffs[1])
	}
}

func TestDiffPredictedLonger(t *testing.T) {
	diffs := Diff([]string{"a", "b", "c"}, []string{"a"})
	if len(diffs) != 3 {
		t.Fatalf("got %d diffs, want 3", len(diffs))
	}
	if diffs[1].Match || diffs[2].Match {
		t.Errorf("padded positions must not match: %+v", diffs)
	}
	if diffs[2].Actual != "" {
		t.Errorf("diffs[2].Actual = %q, want empty", diffs[2].Actual)
	}
}

func TestDiffActualLonger(t *testing.T) {
	diffs := Diff([]string{"a"}, []string{"a", "b"})
	if len(diffs) != 2 {
		t.Fatalf("got %d diffs, want 2", len(diffs))
	}
	if diffs[1].Predicted != "" || diffs[1].Match {
		t.Errorf("diffs[1] = %+v", diffs[1])
	}
}

func TestDiffEmpty(t *testing.T) {
	if diffs := Diff(nil, nil); len(diffs) != 0 {
		t.Errorf("diffs = %+v, want none", diffs)
	}
}
