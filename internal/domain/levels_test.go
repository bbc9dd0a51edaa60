package domain

import "testing"

func TestNewLevelSetDefaultsToFullGrid(t *testing.T) {
	set, err := NewLevelSet(nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(set) != GridSteps {
		t.Fatalf("expected %d levels, got %d", GridSteps, len(set))
	}
	for i, v := range set {
		if v != i {
			t.Fatalf("expected level %d at position %d, got %d", i, i, v)
		}
	}
}

func TestNewLevelSetRejectsOutOfRange(t *testing.T) {
	for _, raw := range [][]int{{-1, 5}, {0, 11}, {42}} {
		if _, err := NewLevelSet(raw); !IsKind(err, KindInvalidLevel) {
			t.Fatalf("expected invalid_level for %v, got %v", raw, err)
		}
	}
}

func TestNewLevelSetRejectsNonAscending(t *testing.T) {
	for _, raw := range [][]int{{5, 2}, {2, 2}, {0, 3, 3, 9}} {
		if _, err := NewLevelSet(raw); !IsKind(err, KindInvalidLevel) {
			t.Fatalf("expected invalid_level for %v, got %v", raw, err)
		}
	}
}

func TestNewLevelSetRejectsTooMany(t *testing.T) {
	raw := make([]int, GridSteps+1)
	if _, err := NewLevelSet(raw); !IsKind(err, KindInvalidLevel) {
		t.Fatalf("expected invalid_level, got %v", err)
	}
}

func TestNewSelectionConflictingModes(t *testing.T) {
	_, err := NewSelection([]int{2, 9}, 5, false)
	if !IsKind(err, KindConflictingMode) {
		t.Fatalf("expected conflicting_mode, got %v", err)
	}
}

func TestNewSelectionSplitBounds(t *testing.T) {
	for _, n := range []int{1, 12} {
		if _, err := NewSelection(nil, n, false); !IsKind(err, KindInvalidConfig) {
			t.Fatalf("expected invalid_config for split %d, got %v", n, err)
		}
	}

	sel, err := NewSelection(nil, 5, false)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if sel.Mode != ModeEvenSplit || sel.Split != 5 {
		t.Fatalf("expected even split of 5, got %+v", sel)
	}
}

func TestNewSelectionDefaultsToExplicitFullGrid(t *testing.T) {
	sel, err := NewSelection(nil, 0, false)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if sel.Mode != ModeExplicit || len(sel.Levels) != GridSteps {
		t.Fatalf("expected explicit full grid, got %+v", sel)
	}
}

func TestSelectionOutputCount(t *testing.T) {
	sel, err := NewSelection([]int{2, 9}, 0, false)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if sel.OutputCount() != 2 {
		t.Fatalf("expected 2 outputs, got %d", sel.OutputCount())
	}

	sel, err = NewSelection(nil, 7, false)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if sel.OutputCount() != 7 {
		t.Fatalf("expected 7 outputs, got %d", sel.OutputCount())
	}
}
