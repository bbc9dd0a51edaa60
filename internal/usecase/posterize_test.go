package usecase

import (
	"context"
	"image"
	"image/color"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/okaneco/posterust/internal/domain"
)

type fakeDecoder struct {
	images  map[string]image.Image
	decodes int
}

func (f *fakeDecoder) Decode(path string) (image.Image, string, error) {
	f.decodes++
	img, ok := f.images[path]
	if !ok {
		return nil, "", &domain.OpError{Op: "fake.decode", Kind: domain.KindNotFound, Path: path}
	}
	return img, "png", nil
}

type fakeEncoder struct {
	written map[string]image.Image
	fail    map[string]bool
}

func (f *fakeEncoder) Encode(img image.Image, path string) error {
	if f.fail[path] {
		return &domain.OpError{Op: "fake.encode", Kind: domain.KindEncode, Path: path}
	}
	if f.written == nil {
		f.written = map[string]image.Image{}
	}
	f.written[path] = img
	return nil
}

func greyImage(v uint8) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

func testLuma(r, _, _ uint8) uint8 { return r }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedNow() time.Time {
	return time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
}

func TestExecuteContinuesPastFailingFile(t *testing.T) {
	dec := &fakeDecoder{images: map[string]image.Image{
		"a.png": greyImage(40),
		"c.png": greyImage(250),
	}}
	enc := &fakeEncoder{}
	uc := NewPosterize(dec, enc, testLuma, discardLogger(), WithNow(fixedNow))

	sel, err := domain.NewSelection([]int{2, 9}, 0, false)
	if err != nil {
		t.Fatalf("selection: %v", err)
	}
	report, err := uc.Execute(context.Background(), Request{
		Inputs:    []string{"a.png", "b.png", "c.png"},
		Selection: sel,
	})
	if err != nil {
		t.Fatalf("expected no batch error, got %v", err)
	}
	if len(report.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(report.Results))
	}
	if report.Failures() != 1 {
		t.Fatalf("expected 1 failure, got %d", report.Failures())
	}
	fail := report.Results[1]
	if fail.Input != "b.png" || fail.Status != domain.StatusFailed || fail.ErrorKind != domain.KindNotFound {
		t.Fatalf("unexpected failure %+v", fail)
	}
	if len(enc.written) != 2 {
		t.Fatalf("expected 2 written outputs, got %d", len(enc.written))
	}
	for _, res := range report.Results {
		if res.Status == domain.StatusOK {
			out, ok := enc.written[res.Output].(*image.RGBA)
			if !ok {
				t.Fatalf("missing output for %s", res.Input)
			}
			got := out.RGBAAt(0, 0)
			if got.R != 46 && got.R != 207 {
				t.Fatalf("unexpected mapped value %d for %s", got.R, res.Input)
			}
		}
	}
}

func TestExecuteConfigErrorAbortsBeforeDecoding(t *testing.T) {
	dec := &fakeDecoder{images: map[string]image.Image{"a.png": greyImage(0)}}
	uc := NewPosterize(dec, &fakeEncoder{}, testLuma, discardLogger())

	sel, err := domain.NewSelection([]int{2, 9}, 0, false)
	if err != nil {
		t.Fatalf("selection: %v", err)
	}
	_, err = uc.Execute(context.Background(), Request{
		Inputs:    []string{"a.png"},
		Selection: sel,
		Colors:    domain.ColorTable{{R: 1}}, // 1 color for 2 levels
	})
	if !domain.IsKind(err, domain.KindColorCountMismatch) {
		t.Fatalf("expected color_count_mismatch, got %v", err)
	}
	if dec.decodes != 0 {
		t.Fatalf("expected no decode calls, got %d", dec.decodes)
	}
}

func TestExecuteRecordsEncodeFailure(t *testing.T) {
	dec := &fakeDecoder{images: map[string]image.Image{"a.png": greyImage(0)}}
	enc := &fakeEncoder{fail: map[string]bool{"out.png": true}}
	uc := NewPosterize(dec, enc, testLuma, discardLogger())

	sel, err := domain.NewSelection(nil, 0, false)
	if err != nil {
		t.Fatalf("selection: %v", err)
	}
	report, err := uc.Execute(context.Background(), Request{
		Inputs:    []string{"a.png"},
		Selection: sel,
		Output:    "out.png",
	})
	if err != nil {
		t.Fatalf("expected no batch error, got %v", err)
	}
	if report.Failures() != 1 || report.Results[0].ErrorKind != domain.KindEncode {
		t.Fatalf("expected one encode failure, got %+v", report.Results)
	}
}

func TestExecuteHonorsContextCancellation(t *testing.T) {
	dec := &fakeDecoder{images: map[string]image.Image{"a.png": greyImage(0)}}
	uc := NewPosterize(dec, &fakeEncoder{}, testLuma, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sel, err := domain.NewSelection(nil, 0, false)
	if err != nil {
		t.Fatalf("selection: %v", err)
	}
	_, err = uc.Execute(ctx, Request{Inputs: []string{"a.png"}, Selection: sel})
	if err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if dec.decodes != 0 {
		t.Fatalf("expected no decode after cancel, got %d", dec.decodes)
	}
}

func TestOutputPathSingleInput(t *testing.T) {
	now := fixedNow()

	if got := outputPath("in.jpg", "result.png", "", false, now); got != "result.png" {
		t.Fatalf("explicit path: got %s", got)
	}
	if got := outputPath("in.jpg", "result", "", false, now); got != "result.jpg" {
		t.Fatalf("extension from input: got %s", got)
	}
	if got := outputPath("in.jpg", "result", "png", false, now); got != "result.png" {
		t.Fatalf("extension from flag: got %s", got)
	}
}

func TestOutputPathMultipleInputs(t *testing.T) {
	now := fixedNow()

	got := outputPath(filepath.Join("pics", "in.jpg"), filepath.Join("out", "study.png"), "", true, now)
	want := filepath.Join("out", "in-study.png")
	if got != want {
		t.Fatalf("batch path: got %s, want %s", got, want)
	}
}

func TestOutputPathDefaultUsesTimestamp(t *testing.T) {
	now := fixedNow()
	got := outputPath(filepath.Join("pics", "in.jpg"), "", "", false, now)
	want := filepath.Join("pics", "in-"+strconv.FormatInt(now.UnixMilli(), 10)+".jpg")
	if got != want {
		t.Fatalf("default path: got %s, want %s", got, want)
	}
}
