// Package report provides the linear, line-oriented renderer for check runs.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/muesli/termenv"
	"github.com/sergi/go-diff/diffmatchpatch"
	"go.trai.ch/recheck/internal/core/domain"
	"go.trai.ch/recheck/internal/core/ports"
	"go.trai.ch/recheck/internal/ui/output"
	"go.trai.ch/recheck/internal/ui/style"
)

// MismatchBanner prefixes the diagnostic printed for a puzzle whose
// recompiled output differs from the committed artifact.
const MismatchBanner = "*** COMPILE RESULTED IN DIFFERENT OUTPUT FOR FILE "

// maxDiffLen bounds the rendered diff of a single mismatch.
const maxDiffLen = 2048

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer with chronological, prefixed lines.
// Progress goes to stderr; diagnostics and the summary go to stdout.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	out    *termenv.Output
	errOut *termenv.Output

	mu      sync.Mutex
	puzzles map[string]*puzzleState // spanID -> puzzle state
}

type puzzleState struct {
	name      string
	startTime time.Time
}

// NewRenderer creates a new Renderer. Nil writers default to os.Stdout and os.Stderr.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Renderer{
		stdout:  stdout,
		stderr:  stderr,
		out:     output.New(stdout),
		errOut:  output.New(stderr),
		puzzles: make(map[string]*puzzleState),
	}
}

// OnPlan prints the number of puzzles about to be checked.
func (r *Renderer) OnPlan(puzzles []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.stderr, "Checking %s\n", plural(len(puzzles), "puzzle"))
}

// OnPuzzleStart prints a puzzle start line.
func (r *Renderer) OnPuzzleStart(spanID, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.puzzles[spanID] = &puzzleState{name: name, startTime: startTime}

	prefix := r.errOut.String(fmt.Sprintf("[%s]", name)).Faint().String()
	_, _ = fmt.Fprintf(r.stderr, "%s Compiling...\n", prefix)
}

// OnPuzzleComplete prints the result line of a puzzle.
func (r *Renderer) OnPuzzleComplete(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.puzzles[spanID]
	if !ok {
		return
	}
	delete(r.puzzles, spanID)

	duration := endTime.Sub(p.startTime).Round(time.Millisecond)
	prefix := fmt.Sprintf("[%s]", p.name)

	if err != nil {
		symbol := r.errOut.String(style.Cross).Foreground(r.errOut.Color(string(style.Red))).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s Failed after %v: %v\n", prefix, symbol, duration, err)
		return
	}

	symbol := r.errOut.String(style.Check).Foreground(r.errOut.Color(string(style.Green))).String()
	_, _ = fmt.Fprintf(r.stderr, "%s %s Matched in %v\n", prefix, symbol, duration)
}

// OnMismatch prints the mismatch diagnostic followed by a character diff of
// the stored and recompiled artifacts.
func (r *Renderer) OnMismatch(o domain.Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.stdout, "%s%s\n", MismatchBanner, o.Puzzle.Name)

	if o.Missing {
		_, _ = fmt.Fprintf(r.stdout, "    no committed artifact at %s\n", o.Puzzle.ArtifactPath())
	}
	if o.CompileErr != nil {
		_, _ = fmt.Fprintf(r.stdout, "    compile error: %v\n", o.CompileErr)
	}

	_, _ = fmt.Fprintf(r.stdout, "    stored:     %s\n", humanize.Bytes(uint64(len(o.Stored))))
	_, _ = fmt.Fprintf(r.stdout, "    recompiled: %s\n", humanize.Bytes(uint64(len(o.Recompiled))))

	if o.Stored == "" || o.Recompiled == "" {
		return
	}
	_, _ = fmt.Fprintf(r.stdout, "    diff:       %s\n", r.renderDiff(o.Stored, o.Recompiled))
}

// renderDiff marks deletions as [-...-] and insertions as {+...+}.
func (r *Renderer) renderDiff(stored, recompiled string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(stored, recompiled, false))

	red := r.out.Color(string(style.Red))
	green := r.out.Color(string(style.Green))

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			b.WriteString(r.out.String("[-" + d.Text + "-]").Foreground(red).String())
		case diffmatchpatch.DiffInsert:
			b.WriteString(r.out.String("{+" + d.Text + "+}").Foreground(green).String())
		case diffmatchpatch.DiffEqual:
			b.WriteString(d.Text)
		}
		if b.Len() > maxDiffLen {
			b.WriteString("...")
			break
		}
	}
	return b.String()
}

// OnSummary prints the totals of the run and the failed puzzles.
func (r *Renderer) OnSummary(s domain.Summary) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var size uint64
	for _, o := range s.Outcomes {
		size += uint64(len(o.Recompiled))
	}

	failed := s.Failed()
	line := fmt.Sprintf("%s checked (%s compiled) in %v: %d passed, %d failed",
		plural(len(s.Outcomes), "puzzle"),
		humanize.Bytes(size),
		s.Elapsed.Round(time.Millisecond),
		s.Passed(),
		len(failed),
	)
	if s.Skipped > 0 {
		line += fmt.Sprintf(", %d skipped", s.Skipped)
	}

	if len(failed) == 0 {
		symbol := r.out.String(style.Check).Foreground(r.out.Color(string(style.Green))).String()
		_, _ = fmt.Fprintf(r.stdout, "%s %s\n", symbol, line)
		return
	}

	symbol := r.out.String(style.Cross).Foreground(r.out.Color(string(style.Red))).String()
	_, _ = fmt.Fprintf(r.stdout, "%s %s\n", symbol, line)
	for _, o := range failed {
		_, _ = fmt.Fprintf(r.stdout, "    %s %s (%s)\n", style.Arrow, o.Puzzle.Name, o.Status())
	}
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
