package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const ProjectConfigFile = "rebrace.yml"

// DefaultSourceExt is used when the config does not name a source extension.
const DefaultSourceExt = ".java"

const DefaultConfigContent = `# rebrace project configuration

# SOURCE ROOT
#
# Directory (relative to this file) that is scanned for collapsed source
# files. A file is only ever touched when it has at most 3 physical lines
# and more than 200 characters, so hand-written code is left alone.
sourceRoot: src/main/java

# DOCS ROOT
#
# Directory (relative to this file) holding one sub-directory per problem.
# gen-docs writes CODE.md pages here, and fix-links rewrites the CODE links
# in each problem's README.md.
docsRoot: docs/problems

# SOURCE EXTENSION
#
# Only files with this extension are considered. Defaults to .java.
sourceExt: .java

# PROBLEMS
#
# Each entry maps a problem name to the sub-directory of sourceRoot holding
# its implementation. The title is used as the CODE.md page heading and
# defaults to the capitalised problem name.
#
# problems:
#   parkinglot:
#     title: Parking Lot
#     srcDir: com/acme/problems/parkinglot
problems: {}
`

// ProblemName identifies one problem in the project configuration. It is
// also the name of the problem's directory under docsRoot.
type ProblemName string

// Problem describes one documented implementation in the source tree.
type Problem struct {
	Title  string `yaml:"title"`
	SrcDir string `yaml:"srcDir"` // relative to sourceRoot
	Name   ProblemName
}

// Config is the immutable project configuration loaded from rebrace.yml.
// It is built once at startup and handed to the collaborators that need it;
// nothing mutates it afterwards.
type Config struct {
	SourceRoot string                   `yaml:"sourceRoot"`
	DocsRoot   string                   `yaml:"docsRoot"`
	SourceExt  string                   `yaml:"sourceExt"`
	Problems   map[ProblemName]*Problem `yaml:"problems"`
}

// New loads and validates the configuration from projectRootDir.
func New(projectRootDir string) (*Config, error) {
	configPath := filepath.Join(projectRootDir, ProjectConfigFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, &MissingConfigError{Path: projectRootDir}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err = yaml.Unmarshal(data, &config); err != nil {
		return nil, &InvalidYAMLError{Wrapped: err}
	}

	if vErr := config.Validate(); vErr != nil {
		return nil, vErr
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if c.SourceRoot == "" {
		return &MissingPropertyError{Property: "sourceRoot"}
	}
	if c.DocsRoot == "" {
		return &MissingPropertyError{Property: "docsRoot"}
	}

	if c.SourceExt == "" {
		c.SourceExt = DefaultSourceExt
	}
	if !strings.HasPrefix(c.SourceExt, ".") {
		return &InvalidSourceExtError{Value: c.SourceExt}
	}

	for name, p := range c.Problems {
		if p == nil || p.SrcDir == "" {
			return &MissingPropertyError{Property: fmt.Sprintf("problems.%s.srcDir", name)}
		}
		p.Name = name
		if p.Title == "" {
			p.Title = titleise(string(name))
		}
	}

	return nil
}

// Problem returns the configuration for a named problem.
func (c *Config) Problem(name ProblemName) (*Problem, error) {
	p, ok := c.Problems[name]
	if !ok {
		return nil, &UnknownProblemError{Name: name}
	}
	return p, nil
}

// ProblemNames returns the configured problem names in sorted order.
func (c *Config) ProblemNames() []ProblemName {
	names := make([]ProblemName, 0, len(c.Problems))
	for name := range c.Problems {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// titleise capitalises the first letter of each space-separated word.
func titleise(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
