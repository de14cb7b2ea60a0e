// Package dialplan checks the syntax of Asterisk extensions.conf dialplans:
// section headers, exten/same rule entries, include directives, switch
// clauses, and ${...}/$[...] variable references. It reports every defect
// with its physical line number and never executes or mutates the input.
package dialplan

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLineLen bounds a single input record fed to the line scanner.
const maxLineLen = 1 << 20

// Validator accumulates the state of one validation run: defect counters,
// the current section, the line counter, and every diagnostic in source
// order. It is owned by a single goroutine for the duration of the run.
type Validator struct {
	errors    int
	warnings  int
	lineNum   int
	context   string
	inContext bool
	diags     []Diagnostic
	out       io.Writer
}

// NewValidator returns a validator that writes one "Line N: message" record
// per defect to diag. A nil diag keeps the diagnostics in memory only.
func NewValidator(diag io.Writer) *Validator {
	return &Validator{out: diag}
}

// Context returns the name of the most recent well-formed section header.
func (v *Validator) Context() string {
	return v.context
}

func (v *Validator) report(sev Severity, kind Kind, args ...any) {
	msg := messages[kind]
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}

	v.diags = append(v.diags, Diagnostic{
		Line:     v.lineNum,
		Severity: sev,
		Kind:     kind,
		Message:  msg,
	})
	if sev == SeverityWarning {
		v.warnings++
	} else {
		v.errors++
	}

	if v.out != nil {
		fmt.Fprintf(v.out, "Line %d: %s\n", v.lineNum, msg)
	}
}

func (v *Validator) errorf(kind Kind, args ...any) {
	v.report(SeverityError, kind, args...)
}

func (v *Validator) warnf(kind Kind, args ...any) {
	v.report(SeverityWarning, kind, args...)
}

// ProcessLine advances the line counter and classifies one raw input line.
// Classification runs in strict priority order: section header, bare
// assignment before the first header, entry, include, dispatch clause, and
// finally the unknown-directive warning for anything else inside a section.
func (v *Validator) ProcessLine(raw string) {
	v.lineNum++

	if isCommentOrBlank(raw) {
		return
	}

	trimmed := strings.TrimSpace(raw)

	if trimmed[0] == '[' {
		v.parseContext(trimmed)
		v.inContext = true
		return
	}

	if !v.inContext {
		// Assignments before any header belong to [general]/[globals]
		// style preambles and are accepted without further checks.
		if strings.Contains(trimmed, "=") && !strings.Contains(trimmed, "=>") {
			return
		}
	}

	switch {
	case hasPrefixFold(trimmed, "exten"), hasPrefixFold(trimmed, "same"):
		v.parseExtension(trimmed)
	case hasPrefixFold(trimmed, "include"):
		v.parseInclude(trimmed)
	case hasPrefixFold(trimmed, "switch"), hasPrefixFold(trimmed, "eswitch"), hasPrefixFold(trimmed, "lswitch"):
		v.parseSwitch(trimmed)
	default:
		if v.inContext && trimmed != "" {
			v.warnf(KindUnknownDirective, trimmed)
		}
	}
}

// parseContext validates a [name] section header and records the name. The
// name is the trimmed text between '[' and the first ']'.
func (v *Validator) parseContext(line string) bool {
	end := strings.IndexByte(line, ']')
	if end < 0 {
		v.errorf(KindMalformedContext)
		return false
	}

	name := strings.TrimSpace(line[1:end])
	if name == "" {
		v.errorf(KindEmptyContextName)
		return false
	}

	v.context = name
	return true
}

func (v *Validator) parseInclude(line string) bool {
	arrow := strings.Index(line, "=>")
	if arrow < 0 {
		v.errorf(KindMissingArrowInclude)
		return false
	}

	target := strings.TrimSpace(line[arrow+2:])
	if target == "" {
		v.errorf(KindEmptyIncludeContext)
		return false
	}
	return true
}

func (v *Validator) parseSwitch(line string) bool {
	if !strings.Contains(line, "=>") {
		v.errorf(KindMissingArrowSwitch)
		return false
	}
	return true
}

// Result summarizes a completed validation run.
type Result struct {
	Diagnostics []Diagnostic
	Errors      int
	Warnings    int
}

// OK reports whether the run found no errors. Warnings alone still pass.
func (r *Result) OK() bool {
	return r.Errors == 0
}

// Clean reports whether the run found no errors and no warnings.
func (r *Result) Clean() bool {
	return r.Errors == 0 && r.Warnings == 0
}

// Result snapshots the validator's accumulated counters and diagnostics.
func (v *Validator) Result() *Result {
	return &Result{
		Diagnostics: v.diags,
		Errors:      v.errors,
		Warnings:    v.warnings,
	}
}

// Validate checks every line of src in order. Per-defect records go to diag
// as they are found; pass nil to collect diagnostics in the result only.
func Validate(src io.Reader, diag io.Writer) (*Result, error) {
	v := NewValidator(diag)

	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLen)
	for scanner.Scan() {
		v.ProcessLine(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}

	return v.Result(), nil
}

// ValidateFile validates the dialplan at path. An unreadable source is the
// only fatal condition; no partial diagnostics are produced for it.
func ValidateFile(path string, diag io.Writer) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return Validate(f, diag)
}
