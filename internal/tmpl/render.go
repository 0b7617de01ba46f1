// Package tmpl wraps generated output with a user supplied text/template.
package tmpl

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
)

// Extension is appended to template names given without one
const Extension = ".tmpl"

// Data is the value a template is executed with
type Data struct {
	// Output is the generated text
	Output string
}

// Resolve returns the template path for name under root. An empty root means
// the working directory.
func Resolve(root, name string) (string, error) {
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to resolve template root: %w", err)
		}
		root = wd
	}
	if filepath.Ext(name) == "" {
		name += Extension
	}
	if filepath.IsAbs(name) {
		return name, nil
	}
	return filepath.Join(root, name), nil
}

// Render executes the named template with output bound to .Output
func Render(root, name, output string) (string, error) {
	path, err := Resolve(root, name)
	if err != nil {
		return "", err
	}

	t, err := template.New(filepath.Base(path)).ParseFiles(path)
	if err != nil {
		return "", fmt.Errorf("failed to load template %s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, Data{Output: output}); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", path, err)
	}
	return buf.String(), nil
}
