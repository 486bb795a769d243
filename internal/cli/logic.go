package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"

	"github.com/idelchi/drivesize/internal/drivesize"
	"github.com/idelchi/drivesize/internal/logging"
)

func logic(options drivesize.Options, stdout, stderr io.Writer) error {
	timer := drivesize.NewTimer()

	log, logFile, err := logging.Open(options.LogDir, options.Path, time.Now(), stderr)
	if err != nil {
		return err
	}
	defer logFile.Close()

	log.Debugf("Writing log file %s", logFile.Name())

	progressHook := func(done, listed int, bytes int64) {
		log.Debugf("Scanned %d of %d entries, %d bytes so far", done, listed, bytes)
	}

	report, err := drivesize.Run(afero.NewOsFs(), options, log, timer, progressHook)
	if err != nil {
		return err
	}

	switch options.Output {
	case "json":
		err = PrintJSON(report, stdout)
	case "table":
		err = PrintTable(report, options.Thresholds, stdout)
	default:
		drivesize.NewReporter(log, options.Thresholds).Report(report, timer.Elapsed())
	}

	if err != nil {
		return err
	}

	if options.Volume {
		volume, err := drivesize.VolumeUsage(options.Path)
		if err != nil {
			log.Warnf("Volume usage unavailable: %v", err)
		} else {
			log.Info(volume.String())
		}
	}

	// Exporting is not implemented; the prompt is only shown where a person is reading.
	if options.Output == "log" || isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(stdout, "Export results?")
	}

	return nil
}
