package rendering

import "fmt"

// TemplateError represents an error parsing or executing the LaTeX template
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError represents a general rendering failure
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// MissingEngineError indicates pdflatex could not be located on this machine.
// The generated .tex file is left in place; Guidance tells the user how to
// finish rendering manually.
type MissingEngineError struct {
	Searched []string
}

func (e *MissingEngineError) Error() string {
	return "pdflatex not found in PATH or any well-known install location"
}

// Guidance returns actionable instructions for completing the render manually.
func (e *MissingEngineError) Guidance() string {
	return `pdflatex was not found, so the PDF could not be generated directly.
The LaTeX source file has been kept; compile it yourself once a TeX distribution is installed:

  - Windows: install MiKTeX from https://miktex.org/download
  - macOS:   install MacTeX from https://www.tug.org/mactex/
  - Linux:   install TeX Live, e.g. 'sudo apt-get install texlive-latex-base'

Then run: pdflatex -interaction=nonstopmode <file>.tex`
}

// CompilationError represents a pdflatex invocation failure
type CompilationError struct {
	Message   string
	LogOutput string
	Cause     error
}

func (e *CompilationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("compilation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("compilation error: %s", e.Message)
}

func (e *CompilationError) Unwrap() error {
	return e.Cause
}
