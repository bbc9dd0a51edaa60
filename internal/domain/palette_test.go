package domain

import "testing"

func TestParseColorTableAcceptsWithAndWithoutHash(t *testing.T) {
	colors, err := ParseColorTable([]string{"1a2b3c", "#FFEEDD"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(colors) != 2 {
		t.Fatalf("expected 2 colors, got %d", len(colors))
	}
	if colors[0] != (RGB{R: 0x1a, G: 0x2b, B: 0x3c}) {
		t.Fatalf("unexpected first color %+v", colors[0])
	}
	if colors[1] != (RGB{R: 0xff, G: 0xee, B: 0xdd}) {
		t.Fatalf("unexpected second color %+v", colors[1])
	}
}

func TestParseColorTableEmptyIsNil(t *testing.T) {
	colors, err := ParseColorTable(nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if colors != nil {
		t.Fatalf("expected nil table, got %v", colors)
	}
}

func TestParseColorTableRejectsMalformed(t *testing.T) {
	for _, bad := range []string{"12345", "1234567", "gggggg", "#12"} {
		if _, err := ParseColorTable([]string{bad}); !IsKind(err, KindInvalidConfig) {
			t.Fatalf("expected invalid_config for %q, got %v", bad, err)
		}
	}
}

func TestValidateColorsMismatch(t *testing.T) {
	sel := mustSelection(t, []int{2, 9}, 0, false)

	if err := ValidateColors(sel, nil); err != nil {
		t.Fatalf("expected nil table to pass, got %v", err)
	}
	if err := ValidateColors(sel, ColorTable{{}, {}}); err != nil {
		t.Fatalf("expected matching count to pass, got %v", err)
	}
	err := ValidateColors(sel, ColorTable{{}, {}, {}})
	if !IsKind(err, KindColorCountMismatch) {
		t.Fatalf("expected color_count_mismatch, got %v", err)
	}
}

func TestRGBHex(t *testing.T) {
	if got := (RGB{R: 0x1a, G: 0x2b, B: 0x3c}).Hex(); got != "#1a2b3c" {
		t.Fatalf("expected #1a2b3c, got %s", got)
	}
	if got := Grey(0).Hex(); got != "#000000" {
		t.Fatalf("expected #000000, got %s", got)
	}
}
