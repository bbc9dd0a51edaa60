package colorspace

import "testing"

func TestLumaGreyRoundTrips(t *testing.T) {
	for v := 0; v < 256; v++ {
		if got := Luma(uint8(v), uint8(v), uint8(v)); got != uint8(v) {
			t.Fatalf("Luma(%d,%d,%d) = %d, want %d", v, v, v, got, v)
		}
	}
}

func TestLumaExtremes(t *testing.T) {
	if got := Luma(0, 0, 0); got != 0 {
		t.Fatalf("black: got %d", got)
	}
	if got := Luma(255, 255, 255); got != 255 {
		t.Fatalf("white: got %d", got)
	}
}

func TestLumaChannelWeights(t *testing.T) {
	red := Luma(255, 0, 0)
	green := Luma(0, 255, 0)
	blue := Luma(0, 0, 255)
	if !(green > red && red > blue) {
		t.Fatalf("expected green > red > blue, got %d / %d / %d", green, red, blue)
	}
}

func TestLumaMonotonicInGrey(t *testing.T) {
	prev := Luma(0, 0, 0)
	for v := 1; v < 256; v++ {
		cur := Luma(uint8(v), uint8(v), uint8(v))
		if cur < prev {
			t.Fatalf("luma not monotonic at %d: %d < %d", v, cur, prev)
		}
		prev = cur
	}
}
