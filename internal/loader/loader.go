package loader

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/gobounds/pkg/openscad"
	"github.com/philipparndt/gobounds/pkg/stl"
)

// Options configures how source files are turned into models
type Options struct {
	OpenSCAD string // OpenSCAD binary, empty for the default
	Logger   *slog.Logger
}

// Result is a loaded model together with the files it was built from
type Result struct {
	Model *stl.Model
	// Sources lists the input file and, for OpenSCAD inputs, every file it
	// uses or includes. These are the files to watch for changes.
	Sources    []string
	IsOpenSCAD bool
}

// Load reads an STL file directly or renders an OpenSCAD file to a temporary
// STL first. The temporary file is removed before Load returns.
func Load(ctx context.Context, path string, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".stl":
		model, err := stl.Parse(path)
		if err != nil {
			return nil, fmt.Errorf("failed to parse STL file: %w", err)
		}
		logger.Debug("loaded STL", "path", path, "triangles", model.TriangleCount())
		return &Result{Model: model, Sources: []string{path}}, nil

	case ".scad":
		return loadOpenSCAD(ctx, path, opts.OpenSCAD, logger)

	default:
		return nil, fmt.Errorf("unsupported file type: %s (expected .stl or .scad)", ext)
	}
}

func loadOpenSCAD(ctx context.Context, path, binary string, logger *slog.Logger) (*Result, error) {
	renderer := openscad.NewRenderer(filepath.Dir(path), binary)

	sources, err := renderer.ResolveDependencies(filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve dependencies: %w", err)
	}

	tmp, err := os.CreateTemp("", "gobounds_*.stl")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary STL: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	logger.Info("rendering OpenSCAD file", "path", path, "dependencies", len(sources)-1)
	if err := renderer.RenderToSTL(ctx, filepath.Base(path), tmpPath); err != nil {
		return nil, fmt.Errorf("failed to render OpenSCAD file: %w", err)
	}

	model, err := stl.Parse(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rendered STL: %w", err)
	}
	if model.Name == "" {
		model.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return &Result{Model: model, Sources: sources, IsOpenSCAD: true}, nil
}
