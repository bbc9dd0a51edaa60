package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/okaneco/posterust/internal/domain"
	"github.com/okaneco/posterust/internal/ports"
)

// Request carries one batch invocation: the validated selection plus the
// input paths and output naming inputs.
type Request struct {
	Inputs    []string
	Selection domain.Selection
	Colors    domain.ColorTable
	Output    string // explicit output path (-o)
	Ext       string // output extension (-e); empty mirrors each input's
}

type Posterize struct {
	decoder ports.ImageDecoder
	encoder ports.ImageEncoder
	luma    domain.LumaFunc
	logger  *slog.Logger
	now     func() time.Time
}

type Option func(*Posterize)

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(uc *Posterize) { uc.now = now }
}

func NewPosterize(dec ports.ImageDecoder, enc ports.ImageEncoder, luma domain.LumaFunc, logger *slog.Logger, opts ...Option) *Posterize {
	uc := &Posterize{
		decoder: dec,
		encoder: enc,
		luma:    luma,
		logger:  logger,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute builds the lookup table once, then processes every input file.
// Configuration errors abort before any file is touched; per-file decode or
// encode failures are logged, recorded in the report, and skipped.
func (uc *Posterize) Execute(ctx context.Context, req Request) (domain.BatchReport, error) {
	table, err := domain.NewLookupTable(req.Selection, req.Colors)
	if err != nil {
		return domain.BatchReport{}, err
	}

	report := domain.BatchReport{
		Mode:      req.Selection.Mode.String(),
		Levels:    req.Selection.Levels,
		Split:     req.Selection.Split,
		Keep:      req.Selection.Keep,
		Ramp:      domain.ValueRamp(req.Selection),
		StartedAt: uc.now(),
		Results:   make([]domain.FileResult, 0, len(req.Inputs)),
	}
	for _, c := range req.Colors {
		report.Colors = append(report.Colors, c.Hex())
	}

	multi := len(req.Inputs) > 1
	for _, input := range req.Inputs {
		if err := ctx.Err(); err != nil {
			report.EndedAt = uc.now()
			return report, err
		}
		start := uc.now()
		res := uc.processFile(input, req, table, multi, start)
		res.LatencyMS = uc.now().Sub(start).Milliseconds()
		report.Results = append(report.Results, res)
	}

	report.EndedAt = uc.now()
	return report, nil
}

func (uc *Posterize) processFile(input string, req Request, table *domain.LookupTable, multi bool, start time.Time) domain.FileResult {
	res := domain.FileResult{Input: input}

	img, format, err := uc.decoder.Decode(input)
	if err != nil {
		uc.logger.Warn("posterize.decode_failed", "path", input, "err", err)
		return failResult(res, err)
	}
	uc.logger.Debug("posterize.decoded", "path", input, "format", format)

	mapped := domain.MapImage(img, table, uc.luma)

	dst := outputPath(input, req.Output, req.Ext, multi, start)
	if err := uc.encoder.Encode(mapped, dst); err != nil {
		uc.logger.Warn("posterize.encode_failed", "path", dst, "err", err)
		return failResult(res, err)
	}

	uc.logger.Info("posterize.wrote", "input", input, "output", dst)
	res.Status = domain.StatusOK
	res.Output = dst
	return res
}

func failResult(res domain.FileResult, err error) domain.FileResult {
	res.Status = domain.StatusFailed
	res.Error = err.Error()
	var oe *domain.OpError
	if errors.As(err, &oe) {
		res.ErrorKind = oe.Kind
	}
	return res
}

// outputPath derives where one input's result goes. A single input uses the
// -o path as given (extension appended when missing); with multiple inputs
// the -o stem is appended to each input's stem; without -o the input stem
// gets a millisecond timestamp suffix.
func outputPath(input, output, ext string, multi bool, now time.Time) string {
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		ext = strings.TrimPrefix(filepath.Ext(input), ".")
	}
	if ext == "" {
		ext = "png"
	}

	inStem := stem(input)
	if output == "" {
		name := fmt.Sprintf("%s-%d.%s", inStem, now.UnixMilli(), ext)
		return filepath.Join(filepath.Dir(input), name)
	}

	if !multi {
		if filepath.Ext(output) != "" {
			return output
		}
		return output + "." + ext
	}

	if outExt := strings.TrimPrefix(filepath.Ext(output), "."); outExt != "" {
		ext = outExt
	}
	name := fmt.Sprintf("%s-%s.%s", inStem, stem(output), ext)
	return filepath.Join(filepath.Dir(output), name)
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
