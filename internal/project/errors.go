package project

import (
	"fmt"
)

type ProjectInitError struct {
	Path string
	Err  error
}

func (e *ProjectInitError) Error() string {
	return fmt.Sprintf("could not initialise project at '%s': %v", e.Path, e.Err)
}

func (e *ProjectInitError) Unwrap() error {
	return e.Err
}

type ProjectRootNotFolderError struct {
	Path string
}

func (e *ProjectRootNotFolderError) Error() string {
	return fmt.Sprintf("project root %s is not a folder", e.Path)
}

type SourceRootMissingError struct {
	Path string
	Err  error
}

func (e *SourceRootMissingError) Error() string {
	return fmt.Sprintf("source root %s does not exist: %v", e.Path, e.Err)
}

func (e *SourceRootMissingError) Unwrap() error {
	return e.Err
}
