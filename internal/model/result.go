package model

// FileStatus describes what a run did to a single file.
type FileStatus string

const (
	// FileRewritten means new content was written.
	FileRewritten FileStatus = "rewritten"
	// FileUnchanged means the planned content already matched the disk.
	FileUnchanged FileStatus = "unchanged"
	// FileStripped means stale engine output was removed and nothing injected.
	FileStripped FileStatus = "stripped"
	// FileSkipped means the file could not be processed.
	FileSkipped FileStatus = "skipped"
)

// FileResult is the outcome for one file of an apply run.
type FileResult struct {
	Unit     string
	Path     Path
	Status   FileStatus
	Bindings int
	Err      error
}

// Summary aggregates an apply run.
type Summary struct {
	Units    int
	Bindings int
	Files    []FileResult
	Restored int
	Manifest Path
	Warnings []Warning
}

// Count returns the number of files with the given status.
func (s Summary) Count(status FileStatus) int {
	n := 0
	for _, f := range s.Files {
		if f.Status == status {
			n++
		}
	}

	return n
}
