// Package project models a rebrace project on disk: the configured source
// tree that is scanned for collapsed files, and the reformat runs executed
// over it.
package project

import (
	"os"
	"path/filepath"

	"github.com/calumwaite/rebrace/internal/config"
	"github.com/calumwaite/rebrace/internal/fs"
)

const RootDirEnvVar = "REBRACE_PROJECT_DIR"

// Project is the object which represents a rebrace project: a root
// directory containing a rebrace.yml, a source tree and a docs tree.
type Project struct {
	rootDirectory string
	config        *config.Config
	pathResolver  fs.PathResolver
	envProvider   fs.EnvProvider
}

// NewProject creates a new Project rooted at rootDirectory.
// If rootDirectory is empty, it will use the environment variable
// REBRACE_PROJECT_DIR.
func NewProject(
	rootDirectory string,
	pathResolver fs.PathResolver,
	envProvider fs.EnvProvider,
) (*Project, error) {
	rd, err := initRootDirectory(rootDirectory, pathResolver, envProvider)
	if err != nil {
		return nil, err
	}

	cfg, err := config.New(rd)
	if err != nil {
		return nil, err
	}

	return &Project{
		rootDirectory: rd,
		config:        cfg,
		pathResolver:  pathResolver,
		envProvider:   envProvider,
	}, nil
}

// initRootDirectory attempts to initialise the project root directory.
// If rd is empty, it falls back to the REBRACE_PROJECT_DIR environment
// variable.
func initRootDirectory(rd string, pathResolver fs.PathResolver, envProvider fs.EnvProvider) (string, error) {
	if rd == "" {
		rd = envProvider.Get(RootDirEnvVar)
	}

	rdc, err := pathResolver.CanonicalPath(rd)
	if err != nil {
		return "", &ProjectInitError{Path: rd, Err: err}
	}
	rd = rdc

	info, err := os.Stat(rd)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", &ProjectRootNotFolderError{Path: rd}
	}
	return rd, nil
}

// RootDirectory returns the root directory of the project.
func (p *Project) RootDirectory() string {
	return p.rootDirectory
}

// Config returns the project configuration.
func (p *Project) Config() *config.Config {
	return p.config
}

// SourceRoot returns the absolute path of the directory scanned for
// collapsed source files.
func (p *Project) SourceRoot() string {
	return filepath.Join(p.rootDirectory, filepath.FromSlash(p.config.SourceRoot))
}

// DocsRoot returns the absolute path of the directory holding the per-problem
// documentation directories.
func (p *Project) DocsRoot() string {
	return filepath.Join(p.rootDirectory, filepath.FromSlash(p.config.DocsRoot))
}

// ProblemSrcDir returns the absolute source directory for a configured problem.
func (p *Project) ProblemSrcDir(prob *config.Problem) string {
	return filepath.Join(p.SourceRoot(), filepath.FromSlash(prob.SrcDir))
}

// ProblemDocsDir returns the absolute docs directory for a configured problem.
func (p *Project) ProblemDocsDir(prob *config.Problem) string {
	return filepath.Join(p.DocsRoot(), string(prob.Name))
}
