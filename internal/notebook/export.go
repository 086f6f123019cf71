// export.go writes notebooks to the filesystem.
package notebook

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ConnorGray/Markdown/markdown"
)

// Options configures an export operation.
type Options struct {
	Dest  string // Output path ("" = next to the input, .ipynb extension)
	Force bool   // Overwrite an existing file
}

// Export parses source and writes it as a notebook. The returned path is
// the file that was written.
func Export(source, inputPath string, opts Options) (string, error) {
	blocks, err := markdown.Parse(source)
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", inputPath, err)
	}

	nb := FromBlocks(blocks)
	data, err := nb.JSON()
	if err != nil {
		return "", err
	}

	out := opts.Dest
	if out == "" {
		out = OutputPath(inputPath)
	}
	if err := writeFile(out, data, opts.Force); err != nil {
		return "", err
	}
	return out, nil
}

// OutputPath derives the notebook path for a Markdown input path.
func OutputPath(inputPath string) string {
	base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
	if base == "" {
		base = "notebook"
	}
	return base + ".ipynb"
}

func writeFile(path string, data []byte, force bool) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory: %w", err)
		}
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("file exists: %s (use --force to overwrite)", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing notebook: %w", err)
	}
	return nil
}
