// Copyright 2025 The Headerlint Authors.
// SPDX-License-Identifier: Apache-2.0

// Package dispatcher walks the target paths given on the command line,
// filters them through the extension table and the excluded-path list, and
// fans out accepted files to a bounded worker pool, one File Pipeline
// invocation per file. Grounded on the original's Dispatcher::run plus the
// worker-pool and progress-reporting idioms from
// antgroup-hugescm/pkg/zeta/transfer.go (mpb bars gated on go-isatty,
// golang.org/x/sync/errgroup for the bounded pool).
package dispatcher

import (
	"context"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
	"golang.org/x/sync/errgroup"

	"github.com/copyrightkit/headerlint/internal/errs"
	"github.com/copyrightkit/headerlint/internal/extension"
	"github.com/copyrightkit/headerlint/internal/gitutil"
	"github.com/copyrightkit/headerlint/internal/logging"
	"github.com/copyrightkit/headerlint/internal/pipeline"
	"github.com/copyrightkit/headerlint/internal/runconfig"
	"github.com/copyrightkit/headerlint/internal/staticconfig"
)

// pool is the shared worker pool: an errgroup bounded to NumCPU, plus a
// mutex that submit takes to read the current context and the signal
// handler takes only to clear what hasn't started yet. wait does not take
// the mutex.
type pool struct {
	mu     sync.Mutex
	group  *errgroup.Group
	ctx    context.Context
	cancel context.CancelFunc
}

func newPool(parent context.Context) *pool {
	ctx, cancel := context.WithCancel(parent)
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	return &pool{group: &g, ctx: ctx, cancel: cancel}
}

// clear cancels the pool's context, preventing any task not yet started
// from doing File Pipeline work; tasks already running still complete.
func (p *pool) clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cancel()
}

func (p *pool) submit(fn func(ctx context.Context) error) {
	p.mu.Lock()
	ctx := p.ctx
	p.mu.Unlock()
	p.group.Go(func() error {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		return fn(ctx)
	})
}

func (p *pool) wait() error {
	return p.group.Wait()
}

// Result summarizes one Run invocation across every target path.
type Result struct {
	AnyUpdated bool
	Errored    bool
}

// Run processes every target path per the component design: missing paths
// are warned and skipped, regular files run synchronously, directories are
// walked and fanned out to the worker pool with signal handling installed
// for the duration of the walk.
func Run(ctx context.Context, cfg *runconfig.RunConfig, cfgStatic *staticconfig.StaticConfig, newAdapter func() gitutil.Adapter) Result {
	var anyUpdated atomicBool
	var errored atomicBool
	brokenSets := gitutil.NewBrokenSetCache()

	runOne := func(ctx context.Context, path string) {
		modified, err := pipeline.Run(ctx, path, cfg, cfgStatic, newAdapter, brokenSets)
		if err != nil {
			errored.set(true)
			return
		}
		if modified {
			anyUpdated.set(true)
		}
	}

	accept := func(path string) bool {
		ext := strings.TrimPrefix(filepath.Ext(path), ".")
		if !extension.Supported(ext) {
			return false
		}
		if cfgStatic != nil && cfgStatic.IsPathExcluded(path) {
			return false
		}
		return true
	}

	for _, target := range cfg.TargetPaths {
		info, statErr := os.Stat(target)
		if statErr != nil {
			logging.ForFile(target).Warn("target does not exist, skipping")
			continue
		}

		probe := newAdapter()
		if openErr := probe.Open(target); openErr != nil {
			logging.Err(target, errs.New(errs.GitError, openErr))
			continue
		}

		if !info.IsDir() {
			if accept(target) {
				runOne(ctx, target)
			}
			continue
		}

		runDirectory(ctx, target, accept, runOne)
	}

	return Result{AnyUpdated: anyUpdated.get(), Errored: errored.get()}
}

func runDirectory(ctx context.Context, root string, accept func(string) bool, runOne func(context.Context, string)) {
	p := newPool(ctx)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGABRT)
	defer signal.Stop(sigCh)
	go func() {
		if _, ok := <-sigCh; ok {
			p.clear()
		}
	}()

	var paths []string
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if accept(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if walkErr != nil {
		logging.ForFile(root).Warnf("walking directory: %v", walkErr)
	}

	bar := newProgressBar(len(paths))

	for _, path := range paths {
		path := path
		p.submit(func(ctx context.Context) error {
			runOne(ctx, path)
			bar.Increment()
			return nil
		})
	}

	_ = p.wait()
	if bp, ok := bar.(*mpbBar); ok {
		bp.progress.Wait()
	}
}

// progressBar is satisfied by both the real mpb-backed bar and a no-op, so
// callers don't have to branch on whether a terminal is attached.
type progressBar interface {
	Increment()
}

type mpbBar struct {
	progress *mpb.Progress
	bar      *mpb.Bar
}

func (b *mpbBar) Increment() { b.bar.Increment() }

type noopBar struct{}

func (noopBar) Increment() {}

// newProgressBar returns an mpb-backed bar when stderr is a terminal (the
// go-isatty check antgroup-hugescm uses before drawing any bar), and a
// no-op otherwise so piped/CI output stays clean.
func newProgressBar(total int) progressBar {
	if total == 0 {
		return noopBar{}
	}
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return noopBar{}
	}
	p := mpb.New(mpb.WithOutput(os.Stderr), mpb.WithAutoRefresh())
	bar := p.New(int64(total),
		mpb.BarStyle().Filler("#").Padding(" "),
		mpb.PrependDecorators(decor.Name("headerlint")),
		mpb.AppendDecorators(decor.CountersNoUnit("%d / %d")),
	)
	return &mpbBar{progress: p, bar: bar}
}

// atomicBool is the "any file updated" flag: a logical-OR across workers,
// relaxed ordering is sufficient per the concurrency model.
type atomicBool struct {
	mu sync.Mutex
	v  bool
}

func (a *atomicBool) set(v bool) {
	if !v {
		return
	}
	a.mu.Lock()
	a.v = true
	a.mu.Unlock()
}

func (a *atomicBool) get() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.v
}
