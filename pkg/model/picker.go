package model

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chazu/voidcut/pkg/opening"
)

// Picker chooses one wall out of the document's walls.
type Picker interface {
	Pick(prompt string, walls []*Wall) (*Wall, error)
}

// PickerFunc adapts a function to Picker.
type PickerFunc func(prompt string, walls []*Wall) (*Wall, error)

func (f PickerFunc) Pick(prompt string, walls []*Wall) (*Wall, error) {
	return f(prompt, walls)
}

// ByName picks the wall called name. An empty name cancels.
func ByName(name string) Picker {
	return PickerFunc(func(_ string, walls []*Wall) (*Wall, error) {
		if name == "" {
			return nil, opening.ErrUserCancelled
		}
		for _, w := range walls {
			if w.Name == name {
				return w, nil
			}
		}
		return nil, fmt.Errorf("%w: wall %q", ErrNotFound, name)
	})
}

// Prompt lists the walls on out and reads a choice from in, by number or
// name. An empty line, "q" or end of input cancels.
func Prompt(in io.Reader, out io.Writer) Picker {
	r := bufio.NewReader(in)
	return PickerFunc(func(prompt string, walls []*Wall) (*Wall, error) {
		fmt.Fprintf(out, "%s:\n", prompt)
		for i, w := range walls {
			fmt.Fprintf(out, "  %d) %s\n", i+1, w.Name)
		}
		fmt.Fprint(out, "> ")

		line, err := r.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("read wall choice: %w", err)
		}
		choice := strings.TrimSpace(line)
		if choice == "" || choice == "q" {
			return nil, opening.ErrUserCancelled
		}

		if n, err := strconv.Atoi(choice); err == nil {
			if n < 1 || n > len(walls) {
				return nil, fmt.Errorf("%w: no wall numbered %d", ErrNotFound, n)
			}
			return walls[n-1], nil
		}
		for _, w := range walls {
			if w.Name == choice {
				return w, nil
			}
		}
		return nil, fmt.Errorf("%w: wall %q", ErrNotFound, choice)
	})
}
