// Package docs regenerates the per-problem documentation pages that live
// under the project docs root: the CODE.md listing for each problem, the
// CODE link rewrites in each README.md, and the collapsible retrofit for
// CODE.md files produced by older generators.
package docs

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/calumwaite/rebrace/internal/config"
	"github.com/calumwaite/rebrace/internal/project"
)

// CodeDocFile is the name of the generated per-problem code listing.
const CodeDocFile = "CODE.md"

const fence = "```"

// codePageTemplate produces the CODE.md layout: a directory tree, quick
// navigation links, and per-directory sections with one collapsible block
// per source file.
var codePageTemplate = template.Must(template.New("codepage").Parse(
	`# {{.Title}} - Complete Implementation

## 📂 Directory Structure

**Total: {{.TotalFiles}} source files**

` + fence + `
{{.Tree}}` + fence + `

---

## 🔗 Quick Navigation

{{range .Dirs}}- [{{.Display}}](#{{.Anchor}})
{{end}}
---

{{range $dir := .Dirs}}## 📁 {{$dir.Display}} {#{{$dir.Anchor}}}

**Files in this directory: {{len $dir.Files}}**

{{range $dir.Files}}### {{.Name}}

<details>
<summary>📄 Click to view {{.Name}}</summary>

` + fence + `{{$.Language}}
{{.Content}}
` + fence + `
</details>

---

{{end}}{{end}}`))

type codeFile struct {
	RelPath string // slash-separated path relative to the problem source dir
	Name    string
	Content string
}

type codeDir struct {
	Display string
	Anchor  string
	Files   []codeFile
}

type codePage struct {
	Title      string
	Language   string
	TotalFiles int
	Tree       string
	Dirs       []codeDir
}

// Renderer regenerates CODE.md pages from the source tree of a project.
type Renderer struct {
	project *project.Project
}

func NewRenderer(p *project.Project) *Renderer {
	return &Renderer{project: p}
}

// Render regenerates the CODE.md page for a single problem and returns the
// number of source files it documents.
func (r *Renderer) Render(prob *config.Problem) (int, error) {
	srcDir := r.project.ProblemSrcDir(prob)
	info, err := os.Stat(srcDir)
	if err != nil || !info.IsDir() {
		return 0, &ProblemSrcDirMissingError{Problem: string(prob.Name), Dir: srcDir}
	}

	files, err := r.collectSourceFiles(srcDir)
	if err != nil {
		return 0, err
	}

	page := codePage{
		Title:      prob.Title,
		Language:   strings.TrimPrefix(r.project.Config().SourceExt, "."),
		TotalFiles: len(files),
		Tree:       renderTree(string(prob.Name), files),
		Dirs:       groupByDirectory(files),
	}

	var buf bytes.Buffer
	if err := codePageTemplate.Execute(&buf, page); err != nil {
		return 0, &TemplateExecutionFailedError{Problem: string(prob.Name), Wrapped: err}
	}

	docsDir := r.project.ProblemDocsDir(prob)
	if err := os.MkdirAll(docsDir, 0o755); err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(docsDir, CodeDocFile), buf.Bytes(), 0o644); err != nil {
		return 0, err
	}
	return len(files), nil
}

// collectSourceFiles walks the problem source dir and returns every file
// with the configured source extension, sorted by relative path.
func (r *Renderer) collectSourceFiles(srcDir string) ([]codeFile, error) {
	ext := r.project.Config().SourceExt

	var files []codeFile
	err := filepath.Walk(srcDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(info.Name(), ext) {
			return nil
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		files = append(files, codeFile{
			RelPath: filepath.ToSlash(rel),
			Name:    info.Name(),
			Content: strings.TrimSuffix(string(content), "\n"),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].RelPath < files[j].RelPath })
	return files, nil
}

// renderTree produces the fenced directory-tree view, one line per
// directory and file, in walk order.
func renderTree(problemName string, files []codeFile) string {
	var b strings.Builder
	b.WriteString(problemName + "/\n")

	seen := make(map[string]bool)
	for _, f := range files {
		parts := strings.Split(f.RelPath, "/")
		for i := 0; i < len(parts)-1; i++ {
			dirPath := strings.Join(parts[:i+1], "/")
			if !seen[dirPath] {
				b.WriteString(strings.Repeat("  ", i+1) + "📂 " + parts[i] + "/\n")
				seen[dirPath] = true
			}
		}
		b.WriteString(strings.Repeat("  ", len(parts)) + "📄 " + parts[len(parts)-1] + "\n")
	}
	return b.String()
}

// groupByDirectory buckets files by their containing directory, with files
// at the top level collected under a "Root Files" section.
func groupByDirectory(files []codeFile) []codeDir {
	buckets := make(map[string][]codeFile)
	for _, f := range files {
		dir := "root"
		if d := filepath.ToSlash(filepath.Dir(f.RelPath)); d != "." {
			dir = d
		}
		buckets[dir] = append(buckets[dir], f)
	}

	names := make([]string, 0, len(buckets))
	for name := range buckets {
		names = append(names, name)
	}
	sort.Strings(names)

	dirs := make([]codeDir, 0, len(names))
	for _, name := range names {
		display := name
		anchor := strings.ReplaceAll(name, "/", "-")
		if name == "root" {
			display = "📦 Root Files"
			anchor = "root-files"
		} else {
			display = strings.ReplaceAll(name, "/", " / ")
		}
		dirs = append(dirs, codeDir{Display: display, Anchor: anchor, Files: buckets[name]})
	}
	return dirs
}
