package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/backmassage/seqname/internal/config"
	"github.com/backmassage/seqname/internal/display"
	"github.com/backmassage/seqname/internal/domain"
	"github.com/backmassage/seqname/internal/logging"
	"github.com/backmassage/seqname/internal/naming"
	"github.com/backmassage/seqname/internal/planner"
)

// now is the clock used to stamp output directories. Tests replace it.
var now = time.Now

// EntryResult records what happened to one plan entry.
type EntryResult struct {
	Entry   planner.FileEntry
	Outcome Outcome
	Bytes   int64
}

// Result is everything a run produced. OutputDir is empty on a dry run.
type Result struct {
	Plan      *planner.RenamePlan
	OutputDir string
	Entries   []EntryResult
	Stats     RunStats
}

// Run is the top-level entry point. It selects and plans, then either
// reports the plan to w (dry run) or copies every entry into a new
// timestamped directory under cfg.OutDir. cfg must already be validated.
//
// A start too close to the int limit for the number of selected files is a
// KindConfiguration error. Filesystem failures abort the run and are
// returned as KindFileSystemAccess errors; entries whose original vanished
// since the scan are skipped and tagged OutcomeSkippedMissing.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, w io.Writer) (*Result, error) {
	files, err := Discover(cfg.Dir, Filter{Ext: cfg.Ext, NumericOnly: cfg.NumericOnly})
	if err != nil {
		return nil, err
	}
	log.Info("Selected %s matching *%s in %s", display.Plural(len(files), "file"), cfg.Ext, cfg.Dir)

	if err := checkRange(cfg.Start, len(files)); err != nil {
		return nil, err
	}
	plan := planner.BuildPlan(files, cfg.Start, cfg.Digit, cfg.Ext)
	if plan.Overflows() {
		log.Warn("Sequence reaches %d, wider than %d digits; those names are not padded to a common width",
			plan.Last(), plan.Digit)
	}

	res := &Result{Plan: plan}
	res.Stats.Total = plan.Len()

	if cfg.DryRun() {
		res.Entries = Report(plan)
		return res, display.WriteReport(w, buildReport(cfg, res), cfg.Format)
	}

	res.OutputDir = naming.OutputDir(cfg.OutDir, now(), cfg.TimestampZone)
	if err := MakeOutputDir(res.OutputDir); err != nil {
		return res, err
	}
	if cfg.Format == config.FormatPretty {
		fmt.Fprintln(w, res.OutputDir)
	}

	entries, stats, err := CopyAll(ctx, plan, cfg.Dir, res.OutputDir, log)
	res.Entries = entries
	res.Stats = stats
	if err != nil {
		return res, err
	}

	if cfg.Format != config.FormatPretty {
		if err := display.WriteReport(w, buildReport(cfg, res), cfg.Format); err != nil {
			return res, err
		}
	}
	logSummary(log, res)
	return res, nil
}

// checkRange rejects a start whose last sequence number, start+n-1, does
// not fit in an int.
func checkRange(start, n int) error {
	if n > 0 && start > math.MaxInt-(n-1) {
		return domain.ConfigError("start",
			fmt.Sprintf("%d files starting at %d overflow the sequence counter", n, start))
	}
	return nil
}

// Report tags every plan entry as planned without touching the filesystem.
func Report(plan *planner.RenamePlan) []EntryResult {
	out := make([]EntryResult, 0, plan.Len())
	for _, e := range plan.Entries {
		out = append(out, EntryResult{Entry: e, Outcome: OutcomePlanned})
	}
	return out
}

// MakeOutputDir creates dir and any missing parents. An existing directory
// is not an error.
func MakeOutputDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return domain.FSError("pipeline.mkdir", dir, err)
	}
	return nil
}

// CopyAll copies each entry from srcDir/<Original> to outDir/<NewName> in
// plan order. It stops between files when ctx is cancelled.
func CopyAll(
	ctx context.Context,
	plan *planner.RenamePlan,
	srcDir, outDir string,
	log *logging.Logger,
) ([]EntryResult, RunStats, error) {
	stats := RunStats{Total: plan.Len()}
	results := make([]EntryResult, 0, plan.Len())

	for i, e := range plan.Entries {
		if err := ctx.Err(); err != nil {
			return results, stats, fmt.Errorf("interrupted after %d of %d files: %w", i, plan.Len(), err)
		}

		src := filepath.Join(srcDir, e.Original)
		dst := filepath.Join(outDir, e.NewName)
		n, err := copyFile(src, dst)
		switch {
		case errors.Is(err, errSourceMissing):
			log.Warn("Skip (missing): %s", e.Original)
			stats.Skipped++
			results = append(results, EntryResult{Entry: e, Outcome: OutcomeSkippedMissing})
			continue
		case err != nil:
			return results, stats, domain.FSError("pipeline.copy", src, err)
		}

		log.Debug("[%d/%d] %s -> %s", i+1, plan.Len(), e.Original, e.NewName)
		stats.Copied++
		stats.BytesCopied += n
		results = append(results, EntryResult{Entry: e, Outcome: OutcomeCopied, Bytes: n})
	}
	return results, stats, nil
}

func buildReport(cfg *config.Config, res *Result) display.Report {
	r := display.Report{
		Dir:       cfg.Dir,
		OutputDir: res.OutputDir,
		DryRun:    cfg.DryRun(),
		Entries:   make([]display.Mapping, 0, len(res.Entries)),
	}
	for _, e := range res.Entries {
		r.Entries = append(r.Entries, display.Mapping{
			Original: e.Entry.Original,
			New:      e.Entry.NewName,
			Outcome:  e.Outcome.String(),
		})
	}
	return r
}

func logSummary(log *logging.Logger, res *Result) {
	s := res.Stats
	log.Success("Done: %s copied (%s), %d skipped",
		display.Plural(s.Copied, "file"), display.FormatBytes(s.BytesCopied), s.Skipped)
}
