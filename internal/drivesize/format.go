package drivesize

import (
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"
)

// DirectoryLine renders one report line for entry, in the unit t selects.
func DirectoryLine(entry DirectorySizeEntry, t Thresholds) string {
	unit := t.Select(entry.Size)

	return fmt.Sprintf("Directory: %s Size: %s %s", entry.Path, FormatFloat(Round4(Convert(entry.Size, unit))), unit)
}

// TotalLine renders the grand-total line. The total is always in GB.
func TotalLine(report *SizeReport) string {
	return fmt.Sprintf("Drive %s has size %s GB", report.Root, FormatFloat(report.TotalGB()))
}

// FormatTotalTime renders a run time given in seconds.
//
// Runs of more than 60 whole minutes are shown as hours plus minutes, where
// the digits after the dot are the leftover seconds as a percentage of a
// minute. Runs of at least one minute are shown as whole minutes followed by
// the leftover seconds, both labelled "Minutes". Runs shorter than a minute
// produce no output and ok is false.
func FormatTotalTime(seconds float64) (formatted string, ok bool) {
	mins, secs := divmod(seconds, 60)

	switch {
	case mins > 60:
		hours, rest := divmod(seconds, 60*60)
		mins, secs = divmod(rest, 60)

		return fmt.Sprintf("Process completed in: %d Hours, %d.%d Minutes.",
			int64(hours), int64(mins), int64(math.RoundToEven(secs/60*100))), true
	case mins > 0:
		return fmt.Sprintf("Process completed in: %d Minutes, %s Minutes.",
			int64(mins), FormatFloat(math.Round(secs*100)/100)), true
	default:
		return "", false
	}
}

func divmod(x, y float64) (float64, float64) {
	q := math.Floor(x / y)

	return q, x - q*y
}

// Reporter logs a finished SizeReport.
type Reporter struct {
	log        logrus.FieldLogger
	thresholds Thresholds
}

// NewReporter creates a Reporter that selects units with thresholds.
func NewReporter(log logrus.FieldLogger, thresholds Thresholds) *Reporter {
	return &Reporter{
		log:        log.WithField("component", "report"),
		thresholds: thresholds,
	}
}

// Report logs one line per entry, the grand total and, when it is at least
// a minute, the elapsed run time.
func (r *Reporter) Report(report *SizeReport, elapsed time.Duration) {
	for _, entry := range report.Entries {
		r.log.Info(DirectoryLine(entry, r.thresholds))
	}

	r.log.Info(TotalLine(report))

	if formatted, ok := FormatTotalTime(elapsed.Seconds()); ok {
		r.log.Info(formatted)
	} else {
		r.log.Debugf("Process completed in %s seconds", seconds(elapsed))
	}
}
