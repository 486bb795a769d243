package drivesize

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v3/disk"
)

// Volume is the capacity of the filesystem holding a path.
type Volume struct {
	// Path is the path the usage was queried for.
	Path string `json:"path"`
	// Fstype is the filesystem type reported by the OS.
	Fstype string `json:"fstype"`
	// Total is the capacity in bytes.
	Total uint64 `json:"total"`
	// Used is the number of bytes in use.
	Used uint64 `json:"used"`
	// Free is the number of bytes available.
	Free uint64 `json:"free"`
	// UsedPercent is Used as a percentage of Total.
	UsedPercent float64 `json:"used_percent"`
}

// VolumeUsage returns the capacity of the volume containing path.
func VolumeUsage(path string) (*Volume, error) {
	usage, err := disk.Usage(path)
	if err != nil {
		return nil, fmt.Errorf("reading volume usage of %q: %w", path, err)
	}

	return &Volume{
		Path:        path,
		Fstype:      usage.Fstype,
		Total:       usage.Total,
		Used:        usage.Used,
		Free:        usage.Free,
		UsedPercent: usage.UsedPercent,
	}, nil
}

// String renders the volume as a single report line.
func (v *Volume) String() string {
	return fmt.Sprintf("Volume %s (%s): %s used of %s (%.1f%%), %s free",
		v.Path, v.Fstype, humanize.IBytes(v.Used), humanize.IBytes(v.Total), v.UsedPercent, humanize.IBytes(v.Free))
}
