package main

// faultyFileSystem works on the real disk but fails on demand.
type faultyFileSystem struct {
	osFileSystem
	listDirectoryErrors map[string]error
	listFileErrors      map[string]error
	removeErrors        map[string]error
	readOnlyLocks       map[string]string
	removeCalls         map[string]int
	clearReadOnlyCalls  map[string]int
}

func newFaultyFileSystem() *faultyFileSystem {
	return &faultyFileSystem{
		listDirectoryErrors: map[string]error{},
		listFileErrors:      map[string]error{},
		removeErrors:        map[string]error{},
		readOnlyLocks:       map[string]string{},
		removeCalls:         map[string]int{},
		clearReadOnlyCalls:  map[string]int{},
	}
}

func (f *faultyFileSystem) ListDirectories(path string) ([]string, error) {
	if err, ok := f.listDirectoryErrors[path]; ok {
		return nil, err
	}

	return f.osFileSystem.ListDirectories(path)
}

func (f *faultyFileSystem) ListFiles(path string) ([]string, error) {
	if err, ok := f.listFileErrors[path]; ok {
		return nil, err
	}

	return f.osFileSystem.ListFiles(path)
}

func (f *faultyFileSystem) RemoveDirectory(path string) error {
	f.removeCalls[path]++

	if err, ok := f.removeErrors[path]; ok {
		return err
	}

	if locked, ok := f.readOnlyLocks[path]; ok {
		return &ReadOnlyError{Path: path, Locked: locked}
	}

	return f.osFileSystem.RemoveDirectory(path)
}

func (f *faultyFileSystem) ReadOnlyBlocker(path string) (string, error) {
	if locked, ok := f.readOnlyLocks[path]; ok {
		return locked, nil
	}

	return f.osFileSystem.ReadOnlyBlocker(path)
}

func (f *faultyFileSystem) IsReadOnly(path string) (bool, error) {
	return f.osFileSystem.IsReadOnly(path)
}

func (f *faultyFileSystem) ClearReadOnly(path string) error {
	f.clearReadOnlyCalls[path]++

	for lockedPath, locked := range f.readOnlyLocks {
		if locked == path {
			delete(f.readOnlyLocks, lockedPath)
		}
	}

	return f.osFileSystem.ClearReadOnly(path)
}

func (f *faultyFileSystem) totalRemoveCalls() int {
	total := 0

	for _, calls := range f.removeCalls {
		total += calls
	}

	return total
}
