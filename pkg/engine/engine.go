// Package engine evaluates scene files. A scene is a zygomys Lisp program
// whose builtins add walls and placeholders to a fresh model.Document.
package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/chazu/voidcut/pkg/model"
	zygo "github.com/glycerine/zygomys/zygo"
)

// EvalError is a parse or runtime error in scene source.
type EvalError struct {
	Line    int
	Message string
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// Engine evaluates scenes. It is safe for concurrent use; every call to
// Evaluate runs in its own sandbox and builds its own document.
type Engine struct {
	mu         sync.Mutex
	generation uint64
	docOpts    []model.Option
}

// NewEngine returns an engine whose documents are built with opts.
func NewEngine(opts ...model.Option) *Engine {
	return &Engine{docOpts: opts}
}

// Evaluate runs scene source and returns the document it describes.
//
//   - On success: document, nil, nil
//   - On parse or runtime failure: nil, eval errors, nil
//   - On timeout or panic: nil, nil, error
func (e *Engine) Evaluate(source string) (*model.Document, []EvalError, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	ch := make(chan evalResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()

		doc, evalErrs, err := e.evaluate(source)
		ch <- evalResult{doc: doc, errors: evalErrs, err: err}
	}()

	return waitWithTimeout(ch, gen, &e.mu, &e.generation)
}

func (e *Engine) evaluate(source string) (*model.Document, []EvalError, error) {
	doc := model.New(e.docOpts...)
	if strings.TrimSpace(source) == "" {
		return doc, nil, nil
	}

	// The sandbox keeps scene code away from the filesystem and syscalls.
	env := zygo.NewZlispSandbox()
	defer env.Stop()
	registerBuiltins(env, doc)

	if err := env.LoadString(preprocessSource(source)); err != nil {
		return nil, parseZygomysError(err), nil
	}
	if _, err := env.Run(); err != nil {
		return nil, parseZygomysError(err), nil
	}
	return doc, nil, nil
}

// linePattern matches zygomys messages of the form "Error on line N: ...".
var linePattern = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)

// linePatternShort matches "line N: ...".
var linePatternShort = regexp.MustCompile(`(?i)^line (\d+):\s*(.*)`)

// parseZygomysError converts a zygomys error into eval errors, keeping the
// line number when the message carries one.
func parseZygomysError(err error) []EvalError {
	msg := err.Error()
	for _, re := range []*regexp.Regexp{linePattern, linePatternShort} {
		if m := re.FindStringSubmatch(msg); m != nil {
			line, _ := strconv.Atoi(m[1])
			return []EvalError{{Line: line, Message: strings.TrimSpace(m[2])}}
		}
	}
	return []EvalError{{Message: strings.TrimSpace(msg)}}
}
