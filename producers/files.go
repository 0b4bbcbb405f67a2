package producers

import (
	"bufio"
	"context"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v3"
	"github.com/sasha-s/go-deadlock"
	"github.com/spf13/afero"

	"github.com/go-transduce/transduce"
	"github.com/go-transduce/transduce/commonerrors"
)

// FromLines returns a producer yielding the lines of a file, line endings
// stripped. The file is opened lazily on the first pull and released when the
// producer is closed.
func FromLines(fs afero.Fs, path string) transduce.Producer[string] {
	return &lineProducer{fs: fs, path: path}
}

type lineProducer struct {
	mu      deadlock.Mutex
	fs      afero.Fs
	path    string
	file    afero.File
	scanner *bufio.Scanner
	done    bool
	closed  bool
}

func (p *lineProducer) Next(ctx context.Context) (line string, ok bool, err error) {
	err = commonerrors.DetermineContextError(ctx)
	if err != nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || p.done {
		return
	}
	if p.fs == nil {
		p.done = true
		err = commonerrors.UndefinedVariable("filesystem")
		return
	}
	if p.scanner == nil {
		p.file, err = p.fs.Open(p.path)
		if err != nil {
			p.done = true
			err = commonerrors.WrapErrorf(commonerrors.ErrNotFound, err, "cannot open file [%v]", p.path)
			return
		}
		p.scanner = bufio.NewScanner(p.file)
	}
	if p.scanner.Scan() {
		return p.scanner.Text(), true, nil
	}
	err = p.scanner.Err()
	p.done = true
	return
}

func (p *lineProducer) Close() (err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	if p.file != nil {
		err = p.file.Close()
	}
	return
}

// FromGlob returns a producer yielding the paths on fs matching pattern, in
// lexical order. Patterns follow doublestar syntax, `**` spanning any number
// of directories. The filesystem is only walked on the first pull.
func FromGlob(fs afero.Fs, pattern string) transduce.Producer[string] {
	return &globProducer{fs: fs, pattern: pattern}
}

type globProducer struct {
	mu      deadlock.Mutex
	fs      afero.Fs
	pattern string
	matches []string
	started bool
	closed  bool
}

func (p *globProducer) Next(ctx context.Context) (path string, ok bool, err error) {
	err = commonerrors.DetermineContextError(ctx)
	if err != nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	if p.fs == nil {
		err = commonerrors.UndefinedVariable("filesystem")
		return
	}
	if !p.started {
		p.started = true
		p.matches, err = doublestar.GlobOS(globOS{fs: p.fs}, p.pattern)
		if err != nil {
			p.matches = nil
			err = commonerrors.WrapErrorf(commonerrors.ErrInvalid, err, "cannot glob [%v]", p.pattern)
			return
		}
		sort.Strings(p.matches)
	}
	if len(p.matches) == 0 {
		return
	}
	path, ok = p.matches[0], true
	p.matches = p.matches[1:]
	return
}

func (p *globProducer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

// globOS adapts an afero filesystem to the interface doublestar walks.
type globOS struct {
	fs afero.Fs
}

func (g globOS) Lstat(name string) (os.FileInfo, error) {
	if lstater, ok := g.fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(name)
		return info, err
	}
	return g.fs.Stat(name)
}

func (g globOS) Open(name string) (doublestar.File, error) {
	return g.fs.Open(name)
}

func (g globOS) PathSeparator() rune {
	return os.PathSeparator
}

func (g globOS) Stat(name string) (os.FileInfo, error) {
	return g.fs.Stat(name)
}
