// Package scaffold creates a new puzzle project: a generated library
// skeleton, a solution template, a fetched input file, and an editor opened
// on the template.
//
// Every step is attempted regardless of earlier failures. The original
// workflow was a best-effort convenience script and rerunning it against an
// existing project is the normal way to refresh input.txt, so failures are
// logged and skipped over rather than propagated.
package scaffold

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/rs/zerolog"

	"github.com/raveheart1/aocprep/internal/config"
)

// SourceRelPath is the template's destination inside a generated project.
var SourceRelPath = filepath.Join("src", "lib.rs")

// InputFileName is the name of the puzzle input file inside a project.
const InputFileName = "input.txt"

// Scaffolder orchestrates project creation for one puzzle day.
type Scaffolder struct {
	Config *config.Configuration
	Log    zerolog.Logger

	// SelfPath is the executable invoked as "<self> fetch <day> <year>".
	// Empty means the running executable.
	SelfPath string

	// Stderr receives diagnostic output from the generator and the fetch
	// subprocess. Defaults to os.Stderr.
	Stderr io.Writer

	// NoSpinner disables the fetch progress spinner.
	NoSpinner bool
}

// Report describes what a scaffold run did.
type Report struct {
	// ProjectDir is the absolute path of the (possibly pre-existing)
	// project directory.
	ProjectDir string
	// StepErrors holds one error per failed step, in step order.
	StepErrors []error
}

// PadDay zero-pads a numeric day to two digits: "3" and "03" both
// become "03". Non-numeric values pass through unchanged.
func PadDay(day string) string {
	n, err := strconv.Atoi(day)
	if err != nil {
		return day
	}
	return fmt.Sprintf("%02d", n)
}

// ProjectName combines prefix, year, and the zero-padded day.
func ProjectName(prefix, year, day string) string {
	return prefix + year + "-" + PadDay(day)
}

// Run performs the scaffold sequence for day and year. An empty year uses
// the configured fixed default. Step failures are recorded and logged but
// never stop the sequence.
func (s *Scaffolder) Run(ctx context.Context, day, year string) Report {
	if year == "" {
		year = strconv.Itoa(s.Config.Scaffold.Year)
	}

	name := ProjectName(s.Config.Scaffold.Prefix, year, day)
	workspace := s.workspaceDir()
	projectDir := filepath.Join(workspace, name)
	report := Report{ProjectDir: projectDir}

	s.Log.Info().Str("project", name).Str("workspace", workspace).Msg("scaffolding puzzle project")

	report.record(&s.Log, "generate", s.generateProject(ctx, workspace, name))
	report.record(&s.Log, "template", s.writeTemplate(projectDir))
	report.record(&s.Log, "fetch", s.fetchInput(ctx, projectDir, day, year))
	report.record(&s.Log, "editor", s.openEditor(projectDir))

	return report
}

func (r *Report) record(log *zerolog.Logger, step string, err error) {
	if err == nil {
		log.Info().Str("step", step).Msg("done")
		return
	}
	r.StepErrors = append(r.StepErrors, fmt.Errorf("%s: %w", step, err))
	log.Warn().Str("step", step).Err(err).Msg("step failed, continuing")
}

func (s *Scaffolder) workspaceDir() string {
	if s.Config.Scaffold.Workspace != "" {
		return s.Config.Scaffold.Workspace
	}
	dir, err := config.ExecutableDir()
	if err != nil {
		return "."
	}
	return dir
}

func (s *Scaffolder) stderr() io.Writer {
	if s.Stderr != nil {
		return s.Stderr
	}
	return os.Stderr
}

// generateProject runs the configured generator (cargo new --lib by
// default) with the project name appended, in the workspace directory.
func (s *Scaffolder) generateProject(ctx context.Context, workspace, name string) error {
	gen := s.Config.Scaffold.Generator
	if len(gen) == 0 {
		return fmt.Errorf("no generator command configured")
	}

	args := append(append([]string{}, gen[1:]...), name)
	cmd := exec.CommandContext(ctx, gen[0], args...)
	cmd.Dir = workspace
	cmd.Stdout = s.stderr()
	cmd.Stderr = s.stderr()
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", strings.Join(gen, " "), err)
	}
	return nil
}

// writeTemplate overwrites the project's source file with the solution
// template. The directory is expected to exist; if the generator failed to
// create it the write fails and is reported like any other step.
func (s *Scaffolder) writeTemplate(projectDir string) error {
	tmpl, err := s.templateBytes()
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(projectDir, SourceRelPath), tmpl, 0o644)
}

func (s *Scaffolder) templateBytes() ([]byte, error) {
	if path := s.Config.Scaffold.Template; path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read template: %w", err)
		}
		return data, nil
	}
	return DefaultTemplate()
}

// fetchInput invokes this binary's own fetch subcommand with stdout
// redirected into the project's input.txt.
func (s *Scaffolder) fetchInput(ctx context.Context, projectDir, day, year string) error {
	self := s.SelfPath
	if self == "" {
		exe, err := os.Executable()
		if err != nil {
			return fmt.Errorf("locate executable: %w", err)
		}
		self = exe
	}

	out, err := os.Create(filepath.Join(projectDir, InputFileName))
	if err != nil {
		return err
	}
	defer out.Close()

	cmd := exec.CommandContext(ctx, self, "fetch", day, year)
	cmd.Stdout = out
	cmd.Stderr = s.stderr()

	stop := s.startSpinner(fmt.Sprintf(" fetching input for day %s, %s", day, year))
	defer stop()

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("fetch day %s year %s: %w", day, year, err)
	}
	return nil
}

// startSpinner shows a progress spinner on stderr while the input fetch
// runs. Returns a no-op stop function when stderr is not a terminal.
func (s *Scaffolder) startSpinner(suffix string) func() {
	if s.NoSpinner || !isTerminal(s.stderr()) {
		return func() {}
	}
	sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(s.stderr()))
	sp.Suffix = suffix
	sp.Start()
	return sp.Stop
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}

// openEditor launches the editor on the project's source file, detached.
// The scaffolder's own exit is never gated on the editor terminating.
func (s *Scaffolder) openEditor(projectDir string) error {
	editor := s.Config.Scaffold.Editor
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = config.DefaultEditor
	}

	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("no editor command configured")
	}
	args := append(parts[1:], filepath.Join(projectDir, SourceRelPath))
	cmd := exec.Command(parts[0], args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start editor %s: %w", parts[0], err)
	}
	// Fire and forget: release the process handle instead of waiting.
	return cmd.Process.Release()
}
