package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// stylesDir is the directory under a custom base path that holds style sheets.
const stylesDir = "styles"

// FilesystemLoader loads style sheets from {basePath}/styles/{name}.xml.
// Reads go through an os.Root, so neither names nor symlinks can reach
// files outside basePath.
type FilesystemLoader struct {
	basePath string
}

// NewFilesystemLoader creates a FilesystemLoader for the given base path.
// Returns ErrInvalidBasePath unless the path is a readable directory.
func NewFilesystemLoader(basePath string) (*FilesystemLoader, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if realPath, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = realPath
	}

	info, err := os.Stat(absPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, absPath)
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	case !info.IsDir():
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, absPath)
	}

	root, err := os.OpenRoot(absPath)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot open directory: %v", ErrInvalidBasePath, err)
	}
	defer root.Close()
	if _, err := fs.ReadDir(root.FS(), "."); err != nil {
		return nil, fmt.Errorf("%w: cannot read directory: %v", ErrInvalidBasePath, err)
	}

	return &FilesystemLoader{basePath: absPath}, nil
}

// LoadStyle reads {basePath}/styles/{name}.xml.
func (f *FilesystemLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	root, err := os.OpenRoot(f.basePath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	defer root.Close()

	rel := path.Join(stylesDir, name+styleExt)
	content, err := root.ReadFile(rel)
	if err == nil {
		return string(content), nil
	}
	if escapesRoot(root, rel) {
		return "", fmt.Errorf("%w: %s points outside %s", ErrPathTraversal, rel, f.basePath)
	}
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}
	return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
}

// escapesRoot reports whether rel is a symlink the root refuses to follow.
func escapesRoot(root *os.Root, rel string) bool {
	info, err := root.Lstat(rel)
	if err != nil || info.Mode()&fs.ModeSymlink == 0 {
		return false
	}
	_, err = root.Stat(rel)
	return err != nil && !errors.Is(err, fs.ErrNotExist)
}

var _ AssetLoader = (*FilesystemLoader)(nil)
