package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/drivesize/internal/drivesize"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// PrintJSON outputs the size report in JSON format.
func PrintJSON(report *drivesize.SizeReport, writer io.Writer) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintTable outputs the size report in human-readable table format.
//
//nolint:forbidigo // This function prints output to the console.
func PrintTable(report *drivesize.SizeReport, thresholds drivesize.Thresholds, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	if report.Detailed {
		fmt.Fprintln(w, "\nDirectories:\t\t\t")
	} else {
		fmt.Fprintln(w, "\nTop-level directories:\t\t\t")
	}

	total := report.Total()

	for i, e := range report.Entries {
		unit := thresholds.Select(e.Size)
		pct := 0.0
		if total > 0 {
			pct = 100.0 * float64(e.Size) / float64(total)
		}
		path := strings.TrimPrefix(filepath.ToSlash(e.Path), "./")
		fmt.Fprintf(w, "  %d) '%s'\t%s %s\t%s (%.1f%%)\n",
			i+1, path, drivesize.FormatFloat(drivesize.Round4(drivesize.Convert(e.Size, unit))), unit,
			humanize.IBytes(uint64(e.Size)), pct) //nolint:gosec // Sizes are never negative
	}

	// Stats summary
	fmt.Fprintln(w, "\nStats:\t\t\t")
	fmt.Fprintf(w, "Root:\t%s\n", report.Root)
	fmt.Fprintf(w, "Total directories:\t%d\n", report.Len())
	fmt.Fprintf(w, "Total size:\t%s GB (%d bytes)\n",
		drivesize.FormatFloat(report.TotalGB()), total)

	fmt.Fprintf(w, "\nElapsed:\t%v\n", report.Elapsed)

	return w.Flush()
}
