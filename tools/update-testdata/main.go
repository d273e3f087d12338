// Command update-testdata regenerates golden files (rendered Cayley
// tables and the like) by re-running the tests that own them with the
// -update flag.
package main

import (
	"io/fs"
	"log"
	"os"
	"os/exec"
	"path/filepath"
)

func findGoldenDirs() ([]string, error) {
	var paths []string

	err := fs.WalkDir(os.DirFS("."), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() && d.Name() == "testdata" {
			paths = append(paths, filepath.Dir(path))
		}

		return nil
	})

	return paths, err
}

func main() {
	if _, err := os.Stat("go.mod"); err != nil {
		log.Fatal("run from the module root: ", err)
	}

	paths, err := findGoldenDirs()
	if err != nil {
		log.Fatal(err)
	}

	var failed bool

	for _, path := range paths {
		log.Printf("updating testdata for %s", path)

		cmd := exec.Command("go", "test", "-timeout", "2m", "-update", "./"+path)
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr

		if err := cmd.Run(); err != nil {
			failed = true
			log.Printf("updating %s: %v", path, err)
		}
	}

	if failed {
		log.Fatal("some golden files were not updated")
	}

	log.Println("golden files updated")
}
