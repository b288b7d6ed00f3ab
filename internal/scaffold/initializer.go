// Package scaffold creates the project files written by `glyph init`.
package scaffold

import (
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sumitttt4/glyph/internal/config"
)

//go:embed templates/*
var templatesFS embed.FS

// Names of the scaffolded files and directories.
const (
	BriefFile = "brief.yml"
	MarksDir  = "marks"
)

// FileInfo represents a file to be created during initialization
type FileInfo struct {
	Path        string
	Content     []byte
	Permissions os.FileMode
}

// Initialize creates the glyph project files in dir. If force is true,
// existing files are replaced; marks already in the output directory are
// kept.
func Initialize(dir string, force bool, w io.Writer) error {
	if !force {
		if err := CheckExisting(dir); err != nil {
			return err
		}
	}

	files, err := getTemplateFiles()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Join(dir, MarksDir), 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", MarksDir, err)
	}

	for _, file := range files {
		path := filepath.Join(dir, file.Path)
		if force {
			if _, err := os.Stat(path); err == nil {
				fmt.Fprintf(w, "⚠️  Replacing existing %s...\n", file.Path)
			}
		}
		if err := os.WriteFile(path, file.Content, file.Permissions); err != nil {
			return fmt.Errorf("failed to write %s: %w", file.Path, err)
		}
	}

	return validateCreatedFiles(dir)
}

// getTemplateFiles reads all embedded templates
func getTemplateFiles() ([]FileInfo, error) {
	templates := []struct {
		name string
		path string
	}{
		{"glyph.yml.tmpl", config.FileName},
		{"brief.yml.tmpl", BriefFile},
	}

	files := make([]FileInfo, 0, len(templates))
	for _, t := range templates {
		content, err := templatesFS.ReadFile("templates/" + t.name)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s template: %w", t.path, err)
		}
		files = append(files, FileInfo{Path: t.path, Content: content, Permissions: 0644})
	}
	return files, nil
}

// validateCreatedFiles loads the written files the same way the CLI will.
func validateCreatedFiles(dir string) error {
	if _, err := config.Load(filepath.Join(dir, config.FileName)); err != nil {
		return fmt.Errorf("created %s is invalid: %w", config.FileName, err)
	}
	if _, err := config.LoadBrief(filepath.Join(dir, BriefFile)); err != nil {
		return fmt.Errorf("created %s is invalid: %w", BriefFile, err)
	}
	return nil
}

// PrintSuccess prints the success message with created files
func PrintSuccess(w io.Writer) {
	fmt.Fprintln(w, "\n✅ Successfully initialized glyph project!")
	fmt.Fprintln(w, "\nCreated:")
	fmt.Fprintf(w, "  ✓ %s\n", config.FileName)
	fmt.Fprintf(w, "  ✓ %s\n", BriefFile)
	fmt.Fprintf(w, "  ✓ %s/\n", MarksDir)
	fmt.Fprintln(w, "\nNext steps:")
	fmt.Fprintf(w, "  1. Edit %s with your brand brief\n", BriefFile)
	fmt.Fprintf(w, "  2. Run 'glyph design --brief %s --out-dir %s'\n", BriefFile, MarksDir)
	fmt.Fprintf(w, "  3. Set portfolio.redis_url in %s to archive marks with --save\n", config.FileName)
}
