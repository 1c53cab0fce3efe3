// pkg/index/sync.go
package index

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

const (
	RepoURL    = "https://github.com/upm-tools/registry"
	RepoBranch = "main"
)

// Sync clones the shared registry repo and copies its alias tables into the
// cache, where the translator looks them up. Descriptor additions stay a
// local concern (manager_dir); only aliases are distributed this way.
func Sync(cacheDir string) error {
	tempDir, err := os.MkdirTemp("", "upm-clone-*")
	if err != nil {
		return fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	fmt.Printf("Updating alias tables from %s...\n", RepoURL)

	_, err = git.PlainClone(tempDir, false, &git.CloneOptions{
		URL:           RepoURL,
		ReferenceName: plumbing.NewBranchReferenceName(RepoBranch),
		SingleBranch:  true,
		Depth:         1,
		Progress:      os.Stdout,
	})
	if err != nil {
		return fmt.Errorf("git clone failed: %w", err)
	}

	if err := copyDir(
		filepath.Join(tempDir, "aliases"),
		filepath.Join(cacheDir, "aliases"),
	); err != nil {
		return fmt.Errorf("copying alias tables: %w", err)
	}

	fmt.Println("Alias tables updated successfully.")
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}

func copyDir(src, dst string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	os.MkdirAll(dst, 0755)

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := copyDir(srcPath, dstPath); err != nil {
				return err
			}
		} else {
			if err := copyFile(srcPath, dstPath); err != nil {
				return err
			}
		}
	}

	return nil
}
