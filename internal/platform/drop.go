package platform

import "io/fs"

// DroppedPaths lists the regular files at the root of a dropped file
// system, in walk order. Directories are not descended into. Entries read
// before an error are still returned.
//
// A dropped file that reports its host path through Name, as an *os.File
// does, is listed under that path instead of its entry name.
func DroppedPaths(files fs.FS) ([]string, error) {
	var paths []string
	err := fs.WalkDir(files, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == "." {
			return nil
		}
		if d.IsDir() {
			return fs.SkipDir
		}
		paths = append(paths, hostPath(files, path))
		return nil
	})
	return paths, err
}

// hostPath opens name only to ask for its path; nothing is read.
func hostPath(files fs.FS, name string) string {
	f, err := files.Open(name)
	if err != nil {
		return name
	}
	defer f.Close()
	if named, ok := f.(interface{ Name() string }); ok && named.Name() != "" {
		return named.Name()
	}
	return name
}
