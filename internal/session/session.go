// Package session runs the interactive front-insertion flow: read a count and
// that many integers, print them, insert one value at the front and print the
// result.
package session

import (
	"fmt"
	"io"

	"frontinsert/internal/array"
	"frontinsert/internal/input"
	"frontinsert/internal/logging"

	"go.uber.org/zap"
)

const (
	promptCount   = "Enter no. of elements in array:"
	promptElement = "Enter element a[%d]:"
	promptFront   = "Enter the element to insert at front:"
	headerBefore  = "Array before insertion:"
	headerAfter   = "Array after insertion:"
)

// Options configures a Session.
type Options struct {
	ShowPrompts bool
	MaxCount    int // largest accepted count; 0 = no limit beyond array.MaxLen

	// Logger, when set, is used for every category via Named and bypasses
	// the per-category toggles of the logging package. nil = logging.Get.
	Logger *zap.Logger
}

// Result holds the sequence before and after insertion.
type Result struct {
	Before   []int
	After    []int
	Inserted int
}

// Session performs one front insertion.
type Session struct {
	opts   Options
	log    *zap.Logger
	inLog  *zap.Logger
	bufLog *zap.Logger
}

// New creates a Session.
func New(opts Options) *Session {
	s := &Session{opts: opts}
	if opts.Logger != nil {
		s.log = opts.Logger.Named(string(logging.CategorySession))
		s.inLog = opts.Logger.Named(string(logging.CategoryInput))
		s.bufLog = opts.Logger.Named(string(logging.CategoryBuffer))
	} else {
		s.log = logging.Get(logging.CategorySession)
		s.inLog = logging.Get(logging.CategoryInput)
		s.bufLog = logging.Get(logging.CategoryBuffer)
	}
	return s
}

// Run reads from in and writes prompts and listings to out.
func (s *Session) Run(in io.Reader, out io.Writer) (*Result, error) {
	sc := input.NewScanner(in)
	p := &printer{w: out}

	s.prompt(p, promptCount)
	n, err := s.readInt(sc, "count")
	if err != nil {
		return nil, err
	}
	if s.opts.MaxCount > 0 && n > s.opts.MaxCount {
		return nil, fmt.Errorf("%w: %d exceeds limit %d", array.ErrInvalidCount, n, s.opts.MaxCount)
	}

	buf, err := array.New(n)
	if err != nil {
		return nil, err
	}
	s.bufLog.Debug("buffer allocated", zap.Int("count", n), zap.Int("cap", buf.Cap()))

	for i := 0; i < n; i++ {
		s.prompt(p, fmt.Sprintf(promptElement, i))
		v, err := s.readInt(sc, fmt.Sprintf("a[%d]", i))
		if err != nil {
			return nil, err
		}
		buf.Append(v)
	}

	before := buf.Values()
	p.list(headerBefore, buf)

	buf.ShiftRight()
	s.bufLog.Debug("shifted right", zap.Int("len", buf.Len()))

	s.prompt(p, promptFront)
	v, err := s.readInt(sc, "front")
	if err != nil {
		return nil, err
	}
	if err := buf.SetFront(v); err != nil {
		return nil, err
	}

	res := &Result{Before: before, After: buf.Values(), Inserted: v}
	p.list(headerAfter, buf)

	if p.err != nil {
		return nil, fmt.Errorf("failed to write output: %w", p.err)
	}

	s.log.Info("front insertion complete",
		zap.Int("count", n),
		zap.Int("inserted", v),
	)
	return res, nil
}

func (s *Session) prompt(p *printer, text string) {
	if s.opts.ShowPrompts {
		p.printf("%s", text)
	}
}

func (s *Session) readInt(sc *input.Scanner, field string) (int, error) {
	v, err := sc.Int(field)
	if err != nil {
		s.inLog.Debug("read failed", zap.String("field", field), zap.Error(err))
		return 0, err
	}
	s.inLog.Debug("read value", zap.String("field", field), zap.Int("value", v))
	return v, nil
}

// printer keeps the first write error so the flow can finish reading.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) list(header string, buf *array.Buffer) {
	p.printf("%s\n", header)
	for i := 0; i < buf.Len(); i++ {
		v, _ := buf.At(i)
		p.printf("a[%d]= %d\n", i, v)
	}
}
