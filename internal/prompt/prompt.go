package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DefaultProjectName is used when the project name answer is blank.
const DefaultProjectName = "my-app"

// ErrAborted is returned when input ends before a question is answered.
var ErrAborted = errors.New("input closed before the wizard finished")

// Choice is one menu entry. Value is returned when it is selected.
type Choice struct {
	Value string
	Label string
}

// Prompter reads answers from one reader and writes questions to one writer.
// A Prompter must not be used again after a question was cancelled.
type Prompter struct {
	reader *bufio.Reader
	w      io.Writer
}

type answer struct {
	line string
	err  error
}

// New returns a Prompter reading from r and writing to w.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{reader: bufio.NewReader(r), w: w}
}

// AskProjectName asks for the project directory name.
func (p *Prompter) AskProjectName(ctx context.Context) (string, error) {
	fmt.Fprintf(p.w, "\nProject name [%s]: ", DefaultProjectName)
	line, err := p.readLine(ctx)
	if err != nil {
		return "", err
	}
	if line == "" {
		return DefaultProjectName, nil
	}
	return line, nil
}

// AskFramework asks which framework to scaffold. The answer may be a menu
// number, a value or a label.
func (p *Prompter) AskFramework(ctx context.Context, choices []Choice) (string, error) {
	if len(choices) == 0 {
		return "", fmt.Errorf("no frameworks to choose from")
	}
	idx, err := p.selectFromList(ctx, "Select a framework:", choices, -1)
	if err != nil {
		return "", err
	}
	return choices[idx].Value, nil
}

// AskPackageManager asks which package manager to use, limited to
// supported. When detected is supported it is the default, otherwise the
// first supported entry is.
func (p *Prompter) AskPackageManager(ctx context.Context, detected string, supported []string) (string, error) {
	if len(supported) == 0 {
		return "", fmt.Errorf("no package managers to choose from")
	}

	def := 0
	choices := make([]Choice, len(supported))
	for i, pm := range supported {
		choices[i] = Choice{Value: pm, Label: pm}
		if detected != "" && strings.EqualFold(pm, detected) {
			def = i
			choices[i].Label = pm + " (detected)"
		}
	}

	idx, err := p.selectFromList(ctx, "Select a package manager:", choices, def)
	if err != nil {
		return "", err
	}
	return choices[idx].Value, nil
}

// selectFromList presents a numbered list and returns the selected index.
// def is the index chosen by a blank answer; a negative def makes a blank
// answer invalid.
func (p *Prompter) selectFromList(ctx context.Context, title string, choices []Choice, def int) (int, error) {
	fmt.Fprintf(p.w, "\n%s\n", title)
	for i, c := range choices {
		fmt.Fprintf(p.w, "  %d) %s\n", i+1, c.Label)
	}
	if def >= 0 {
		fmt.Fprintf(p.w, "Enter number [1-%d] (default %d): ", len(choices), def+1)
	} else {
		fmt.Fprintf(p.w, "Enter number [1-%d]: ", len(choices))
	}

	line, err := p.readLine(ctx)
	if err != nil {
		return 0, err
	}
	if line == "" && def >= 0 {
		return def, nil
	}

	if num, err := strconv.Atoi(line); err == nil {
		if num < 1 || num > len(choices) {
			return 0, fmt.Errorf("invalid selection %q: choose 1-%d", line, len(choices))
		}
		return num - 1, nil
	}

	for i, c := range choices {
		if strings.EqualFold(line, c.Value) || strings.EqualFold(line, c.Label) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("invalid selection %q: choose 1-%d", line, len(choices))
}

// readLine returns the next trimmed line. A final line without a newline
// is still an answer; EOF with nothing read and a cancelled ctx are
// ErrAborted.
func (p *Prompter) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrAborted, err)
	}

	ch := make(chan answer, 1)
	go func() {
		line, err := p.reader.ReadString('\n')
		ch <- answer{line: line, err: err}
	}()

	var line string
	var err error
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %v", ErrAborted, ctx.Err())
	case a := <-ch:
		line, err = a.line, a.err
	}

	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrAborted
		}
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}
