package docs

import "fmt"

// ProblemSrcDirMissingError indicates that a configured problem has no
// source directory to document.
type ProblemSrcDirMissingError struct {
	Problem string
	Dir     string
}

func (e *ProblemSrcDirMissingError) Error() string {
	return fmt.Sprintf("problem %q: source directory %q does not exist", e.Problem, e.Dir)
}

// TemplateExecutionFailedError indicates that the CODE.md template could
// not be executed for a problem.
type TemplateExecutionFailedError struct {
	Problem string
	Wrapped error
}

func (e *TemplateExecutionFailedError) Error() string {
	return fmt.Sprintf("problem %q: failed to render CODE.md: %v", e.Problem, e.Wrapped)
}

func (e *TemplateExecutionFailedError) Unwrap() error {
	return e.Wrapped
}

// DocsRootMissingError indicates that the project docs root does not exist.
type DocsRootMissingError struct {
	Dir string
}

func (e *DocsRootMissingError) Error() string {
	return fmt.Sprintf("docs root %q does not exist", e.Dir)
}
