package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mliezun/jackal/internal"
	"github.com/mliezun/jackal/internal/config"
	"github.com/sirupsen/logrus"
)

// ErrOutputCollision is reported for a unit whose output path was already
// claimed by an earlier unit of the same batch
var ErrOutputCollision = errors.New("output collision")

// Result is the outcome for one compilation unit
type Result struct {
	Unit        string
	Output      string
	TokenOutput string
	Tokens      int
	Duration    time.Duration
	Err         error
}

// Report collects the results of a batch in discovery order
type Report struct {
	Results []Result
}

// Failed counts units that did not produce output
func (r Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

// Succeeded counts units that were written
func (r Report) Succeeded() int {
	return len(r.Results) - r.Failed()
}

// Discover returns the compilation units named by paths. Files are kept when
// their extension matches, directories contribute their direct children.
func Discover(paths []string, sourceExt string) ([]string, error) {
	seen := make(map[string]bool)
	var units []string
	add := func(path string) error {
		if !strings.EqualFold(filepath.Ext(path), sourceExt) {
			return nil
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		if !seen[abs] {
			seen[abs] = true
			units = append(units, abs)
		}
		return nil
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("cannot read input %s: %w", path, err)
		}
		if !info.IsDir() {
			if err := add(path); err != nil {
				return nil, err
			}
			continue
		}
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("cannot list directory %s: %w", path, err)
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if err := add(filepath.Join(path, e.Name())); err != nil {
				return nil, err
			}
		}
	}
	sort.Strings(units)
	return units, nil
}

// OutputPath replaces the extension of unit, optionally moving it to outDir
func OutputPath(unit, outExt, outDir string) string {
	base := strings.TrimSuffix(filepath.Base(unit), filepath.Ext(unit))
	dir := filepath.Dir(unit)
	if outDir != "" {
		dir = outDir
	}
	return filepath.Join(dir, base+outExt)
}

// Runner analyzes batches of units with a bounded pool of workers
type Runner struct {
	cfg *config.Config
	log logrus.FieldLogger
}

// NewRunner creates a runner. A nil logger discards entries.
func NewRunner(cfg *config.Config, log logrus.FieldLogger) *Runner {
	if log == nil {
		l := logrus.New()
		l.Out = io.Discard
		log = l
	}
	return &Runner{cfg: cfg, log: log}
}

// Run discovers and analyzes every unit under paths. A failing unit is
// logged and recorded in the report, the batch continues. The error is only
// set when discovery fails. Units not started before ctx is done are
// reported with the context error.
func (r *Runner) Run(ctx context.Context, paths []string) (Report, error) {
	units, err := Discover(paths, r.cfg.SourceExt)
	if err != nil {
		return Report{}, err
	}
	if len(units) == 0 {
		r.log.WithField("paths", paths).Warn("no compilation units found")
	}
	if r.cfg.OutputDir != "" {
		if err := os.MkdirAll(r.cfg.OutputDir, 0755); err != nil {
			return Report{}, fmt.Errorf("cannot create output directory: %w", err)
		}
	}

	results := make([]Result, len(units))
	pending := r.claimOutputs(units, results)
	jobs := make(chan int)
	workers := r.cfg.Workers
	if workers > len(pending) {
		workers = len(pending)
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = r.runUnit(units[i])
			}
		}()
	}

	next := 0
dispatch:
	for ; next < len(pending); next++ {
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- pending[next]:
		}
	}
	close(jobs)
	wg.Wait()

	for _, i := range pending[next:] {
		results[i] = Result{Unit: units[i], Err: ctx.Err()}
		r.log.WithField("unit", units[i]).Warn("skipped: ", ctx.Err())
	}
	return Report{Results: results}, nil
}

// claimOutputs assigns every output path to the first unit that maps to it.
// Later units that would overwrite a claimed path are failed in results and
// left out of the returned indexes.
func (r *Runner) claimOutputs(units []string, results []Result) []int {
	owners := make(map[string]string)
	pending := make([]int, 0, len(units))
	for i, unit := range units {
		out := OutputPath(unit, r.cfg.OutputExt, r.cfg.OutputDir)
		paths := []string{out}
		if r.cfg.EmitTokens {
			paths = append(paths, r.tokenPath(out))
		}

		var err error
		for _, path := range paths {
			if owner, ok := owners[path]; ok {
				err = fmt.Errorf("%w: %s is already written by %s", ErrOutputCollision, path, owner)
				break
			}
		}
		if err != nil {
			results[i] = Result{Unit: unit, Err: err}
			r.log.WithField("unit", unit).Error(err)
			continue
		}
		for _, path := range paths {
			owners[path] = unit
		}
		pending = append(pending, i)
	}
	return pending
}

func (r *Runner) tokenPath(output string) string {
	return strings.TrimSuffix(output, r.cfg.OutputExt) + r.cfg.TokenSuffix + r.cfg.OutputExt
}

func (r *Runner) runUnit(unit string) Result {
	start := time.Now()
	res := Result{Unit: unit, Output: OutputPath(unit, r.cfg.OutputExt, r.cfg.OutputDir)}
	entry := r.log.WithField("unit", unit)

	entry.Debug("analyzing")
	if err := r.analyze(&res, entry); err != nil {
		res.Err = err
		res.Duration = time.Since(start)
		entry.WithField("duration", res.Duration).Error(err)
		return res
	}
	res.Duration = time.Since(start)

	fields := logrus.Fields{
		"output":   res.Output,
		"tokens":   res.Tokens,
		"duration": res.Duration,
	}
	if res.TokenOutput != "" {
		fields["token_output"] = res.TokenOutput
	}
	entry.WithFields(fields).Info("analyzed")
	return res
}

func (r *Runner) analyze(res *Result, entry logrus.FieldLogger) error {
	source, err := os.ReadFile(res.Unit)
	if err != nil {
		return fmt.Errorf("cannot read unit: %w", err)
	}

	unit, err := internal.Options{Indent: r.cfg.Indent}.Compile(string(source))
	if err != nil {
		return fmt.Errorf("syntax error: %w", err)
	}
	res.Tokens = len(unit.Tokens)
	entry.WithFields(logrus.Fields{
		"bytes":  len(source),
		"tokens": res.Tokens,
	}).Debug("parsed")

	if r.cfg.Verify {
		if _, err := internal.CheckMarkup(unit.Tree); err != nil {
			return fmt.Errorf("output verification failed: %w", err)
		}
	}

	var tokenMarkup string
	if r.cfg.EmitTokens {
		tokenMarkup = internal.TokensMarkup(unit.Tokens)
	}

	if err := os.WriteFile(res.Output, []byte(unit.Tree), 0644); err != nil {
		return fmt.Errorf("cannot write output: %w", err)
	}
	if r.cfg.EmitTokens {
		path := r.tokenPath(res.Output)
		if err := os.WriteFile(path, []byte(tokenMarkup), 0644); err != nil {
			// A failed unit leaves nothing behind
			os.Remove(res.Output)
			return fmt.Errorf("cannot write token output: %w", err)
		}
		res.TokenOutput = path
	}
	return nil
}
