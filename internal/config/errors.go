package config

import (
	"fmt"
)

type MissingConfigError struct {
	Path string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("rebrace.yml missing in: %s", e.Path)
}

type InvalidYAMLError struct {
	Wrapped error
}

func (e *InvalidYAMLError) Error() string {
	return fmt.Sprintf("rebrace.yml is not a valid yaml document: %v", e.Wrapped)
}

type MissingPropertyError struct {
	Property string
}

func (e *MissingPropertyError) Error() string {
	return fmt.Sprintf("rebrace.yml is missing required property: %s", e.Property)
}

type InvalidSourceExtError struct {
	Value string
}

func (e *InvalidSourceExtError) Error() string {
	return fmt.Sprintf("rebrace.yml property sourceExt has invalid value '%s' - it must start with '.'", e.Value)
}

type UnknownProblemError struct {
	Name ProblemName
}

func (e *UnknownProblemError) Error() string {
	return fmt.Sprintf("rebrace.yml does not define problem '%s'", e.Name)
}
