package drivesize

import "time"

// DirectorySizeEntry is the total size of the regular files at or below a directory.
type DirectorySizeEntry struct {
	// Path is the full path of the directory.
	Path string `json:"path"`
	// Size is the size in bytes.
	Size int64 `json:"size"`
}

// SizeReport holds one entry per scanned directory, in the order the
// directories were listed.
type SizeReport struct {
	// Root is the scanned path.
	Root string `json:"root"`
	// Entries are the directory totals in listing order.
	Entries []DirectorySizeEntry `json:"entries"`
	// Detailed is set when entries are per-directory (non-recursive) sizes.
	Detailed bool `json:"detailed"`
	// Elapsed is the time the scan took.
	Elapsed time.Duration `json:"elapsed"`

	index map[string]int
}

func newSizeReport(root string) *SizeReport {
	return &SizeReport{
		Root:    root,
		Entries: make([]DirectorySizeEntry, 0),
		index:   make(map[string]int),
	}
}

// add records size under path. A repeated path overwrites the earlier value
// but keeps its position.
func (r *SizeReport) add(path string, size int64) {
	if i, ok := r.index[path]; ok {
		r.Entries[i].Size = size

		return
	}

	r.index[path] = len(r.Entries)
	r.Entries = append(r.Entries, DirectorySizeEntry{Path: path, Size: size})
}

// Get returns the size recorded for path.
func (r *SizeReport) Get(path string) (int64, bool) {
	i, ok := r.index[path]
	if !ok {
		return 0, false
	}

	return r.Entries[i].Size, true
}

// Len returns the number of entries.
func (r *SizeReport) Len() int {
	return len(r.Entries)
}

// Total returns the sum of all entry sizes in bytes.
func (r *SizeReport) Total() int64 {
	var total int64
	for _, e := range r.Entries {
		total += e.Size
	}

	return total
}

// TotalGB returns Total converted to GB and rounded to 4 decimal places.
func (r *SizeReport) TotalGB() float64 {
	return Round4(Convert(r.Total(), GB))
}
