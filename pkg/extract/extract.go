// Package extract writes the images held by hat containers to disk, one file
// or a whole folder at a time.
package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/segmentio/ksuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/ssargent/hatdecoder/pkg/hat"
)

const (
	// HatExt is the extension of container files picked up from folders.
	HatExt = ".hat"
	// ImageExt is the extension given to extracted images.
	ImageExt = ".png"
	// BaseExt is the extension of dumped base sections.
	BaseExt = ".base"
)

// Options configures an Extractor
type Options struct {
	OutDir   string // Empty means DefaultOutputDir of each input
	Workers  int
	DumpBase bool // Also write the decrypted base section of Complex containers
	Decoder  *hat.Decoder
	Logger   *logrus.Logger
}

// Result describes the outcome for one input file
type Result struct {
	Input     string
	Output    string
	Base      string // Set when a base section was dumped
	TeamName  string
	ImageSize int
	Variant   hat.Variant
	Err       error
}

// Extractor decodes hat files and writes their images
type Extractor struct {
	opts Options
	log  *logrus.Logger
}

// New creates an extractor, filling in defaults for unset options
func New(opts Options) *Extractor {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Decoder == nil {
		opts.Decoder = hat.NewDecoder()
	}
	if opts.Logger == nil {
		opts.Logger = logrus.New()
	}
	return &Extractor{opts: opts, log: opts.Logger}
}

// DefaultOutputDir returns the "unpacked" folder next to the folder holding input.
func DefaultOutputDir(input string) string {
	if abs, err := filepath.Abs(input); err == nil {
		input = abs
	}
	return filepath.Join(filepath.Dir(filepath.Dir(input)), "unpacked")
}

// OutputPath returns where the image of input is written inside outDir.
func OutputPath(input, outDir string) string {
	name := strings.TrimSuffix(filepath.Base(input), HatExt)
	return filepath.Join(outDir, name+ImageExt)
}

// Extract handles path as a single file or, when it is a directory, as a batch.
func (e *Extractor) Extract(ctx context.Context, path string) ([]Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat input: %w", err)
	}
	if info.IsDir() {
		return e.ExtractDir(ctx, path)
	}
	return []Result{e.ExtractFile(ctx, path)}, nil
}

// ExtractFile decodes one container and writes its image.
func (e *Extractor) ExtractFile(ctx context.Context, path string) Result {
	return e.extractFile(ctx, e.log.WithField("file", filepath.Base(path)), path)
}

func (e *Extractor) extractFile(ctx context.Context, entry *logrus.Entry, path string) Result {
	res := Result{Input: path}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	entry.Debug("Decrypting")
	raw, err := os.ReadFile(path)
	if err != nil {
		res.Err = fmt.Errorf("failed to read %s: %w", path, err)
		entry.WithError(res.Err).Error("Read failed")
		return res
	}

	container, err := e.opts.Decoder.Inspect(raw)
	if err != nil {
		res.Err = fmt.Errorf("failed to decode %s: %w", path, err)
		entry.WithError(err).Error("Decode failed")
		return res
	}
	res.Variant = container.Variant
	res.TeamName = container.Record.TeamName
	res.ImageSize = container.Record.ImageSize

	outDir := e.opts.OutDir
	if outDir == "" {
		outDir = DefaultOutputDir(path)
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		res.Err = fmt.Errorf("failed to create output dir: %w", err)
		entry.WithError(res.Err).Error("Export failed")
		return res
	}

	res.Output = OutputPath(path, outDir)
	entry.WithField("output", res.Output).Debug("Exporting")
	if err := os.WriteFile(res.Output, container.Record.Image, 0644); err != nil {
		res.Err = fmt.Errorf("failed to write image: %w", err)
		entry.WithError(res.Err).Error("Export failed")
		return res
	}

	if e.opts.DumpBase && container.Base != nil {
		res.Base = strings.TrimSuffix(res.Output, ImageExt) + BaseExt
		if err := os.WriteFile(res.Base, container.Base, 0644); err != nil {
			res.Err = fmt.Errorf("failed to write base section: %w", err)
			entry.WithError(res.Err).Error("Export failed")
			return res
		}
	}

	entry.WithFields(logrus.Fields{
		"team":    res.TeamName,
		"variant": res.Variant,
		"bytes":   res.ImageSize,
	}).Info("Extracted")
	return res
}

// ListHats returns the .hat files directly inside dir, sorted by name.
func ListHats(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != HatExt {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// ExtractDir extracts every .hat file in dir. Files are decoded concurrently;
// a failing file is reported in its Result and does not stop the others.
// Results are in the order of ListHats.
func (e *Extractor) ExtractDir(ctx context.Context, dir string) ([]Result, error) {
	files, err := ListHats(dir)
	if err != nil {
		return nil, err
	}

	run := e.log.WithFields(logrus.Fields{
		"run": ksuid.New().String(),
		"dir": dir,
	})
	run.WithField("files", len(files)).Info("Extracting folder")

	results := make([]Result, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.Workers)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			results[i] = e.extractFile(gctx, run.WithField("file", filepath.Base(path)), path)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return results, err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	run.WithFields(logrus.Fields{
		"extracted": len(results) - failed,
		"failed":    failed,
	}).Info("Folder done")
	return results, nil
}
