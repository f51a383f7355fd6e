package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/stratakit/strata/logger"
)

// FileTemplate describes one generated file. Path and Content are
// text/template bodies sharing the same data.
type FileTemplate struct {
	Path        string
	Content     string
	Permissions os.FileMode
}

// Generator renders resource templates into a target directory.
type Generator struct {
	// Dir is the directory the resource package is created under.
	Dir string
	// Module is the import path prefix for generated imports.
	Module string
	// Force allows overwriting existing files.
	Force bool

	log *logger.Logger
}

// NewGenerator creates a generator writing under dir with imports rooted at
// module.
func NewGenerator(dir, module string, force bool, log *logger.Logger) *Generator {
	if log == nil {
		log = logger.NewDefault("scaffold")
	}
	return &Generator{Dir: dir, Module: module, Force: force, log: log.WithComponent("scaffold")}
}

type templateData struct {
	Resource Resource
	Module   string
}

// funcs are the helpers available to template bodies. tick emits a backtick
// so struct tags can be written inside raw template literals.
var funcs = template.FuncMap{
	"tick": func() string { return "`" },
}

// Generate renders every resource template and returns the written paths.
// Without Force it fails before writing anything when a target exists.
func (g *Generator) Generate(res Resource) ([]string, error) {
	data := templateData{Resource: res, Module: g.Module}

	type rendered struct {
		path    string
		content []byte
		mode    os.FileMode
	}
	files := make([]rendered, 0, len(resourceTemplates))

	for _, ft := range resourceTemplates {
		path, err := render("path", ft.Path, data)
		if err != nil {
			return nil, err
		}
		content, err := render(path, ft.Content, data)
		if err != nil {
			return nil, err
		}

		mode := ft.Permissions
		if mode == 0 {
			mode = 0o644
		}
		files = append(files, rendered{
			path:    filepath.Join(g.Dir, path),
			content: []byte(content),
			mode:    mode,
		})
	}

	if !g.Force {
		for _, f := range files {
			if _, err := os.Stat(f.path); err == nil {
				return nil, fmt.Errorf("scaffold: %s already exists (use --force to overwrite)", f.path)
			}
		}
	}

	written := make([]string, 0, len(files))
	for _, f := range files {
		if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
			return nil, fmt.Errorf("scaffold: creating %s: %w", filepath.Dir(f.path), err)
		}
		if err := os.WriteFile(f.path, f.content, f.mode); err != nil {
			return nil, fmt.Errorf("scaffold: writing %s: %w", f.path, err)
		}
		g.log.Info("File generated", logger.Fields("path", f.path))
		written = append(written, f.path)
	}
	return written, nil
}

func render(name, body string, data templateData) (string, error) {
	tmpl, err := template.New(name).Funcs(funcs).Parse(body)
	if err != nil {
		return "", fmt.Errorf("scaffold: parsing template %s: %w", name, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("scaffold: rendering %s: %w", name, err)
	}
	return b.String(), nil
}
