// Package logging sets up the per-run logger.
//
// Every line has the form "<timestamp> - <component> - <level> - <message>".
// Lines at info level and above go to the console; everything from debug up
// is also written to a log file named after the scanned root and the start
// time.
package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultComponent is used for entries without a component field.
	DefaultComponent = "drivesize"

	timestampFormat = "2006-01-02 15:04:05"
	fileTimeFormat  = "15_04_05___02-01-06"
)

// Formatter renders entries as "<timestamp> - <component> - <level> - <message>".
type Formatter struct{}

// Format implements logrus.Formatter.
func (Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	component, _ := entry.Data["component"].(string)
	if component == "" {
		component = DefaultComponent
	}

	var buf bytes.Buffer

	fmt.Fprintf(&buf, "%s - %s - %s - %s\n",
		entry.Time.Format(timestampFormat),
		component,
		strings.ToUpper(entry.Level.String()),
		entry.Message,
	)

	return buf.Bytes(), nil
}

// writerHook writes entries at or above a level to a writer.
type writerHook struct {
	writer    io.Writer
	formatter logrus.Formatter
	levels    []logrus.Level
}

func newWriterHook(w io.Writer, minLevel logrus.Level) *writerHook {
	return &writerHook{
		writer:    w,
		formatter: Formatter{},
		levels:    levelsFrom(minLevel),
	}
}

func (h *writerHook) Levels() []logrus.Level {
	return h.levels
}

func (h *writerHook) Fire(entry *logrus.Entry) error {
	line, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	_, err = h.writer.Write(line)

	return err
}

// levelsFrom returns minLevel and every more severe level.
func levelsFrom(minLevel logrus.Level) []logrus.Level {
	var levels []logrus.Level

	for _, level := range logrus.AllLevels {
		if level <= minLevel {
			levels = append(levels, level)
		}
	}

	return levels
}

// New returns a logger writing info and above to console and debug and above to file.
func New(console, file io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetFormatter(Formatter{})
	log.SetLevel(logrus.DebugLevel)

	if console != nil {
		log.AddHook(newWriterHook(console, logrus.InfoLevel))
	}

	if file != nil {
		log.AddHook(newWriterHook(file, logrus.DebugLevel))
	}

	return log
}

// Open creates the log file for a scan of root inside dir and returns a
// logger writing to it and to console. The caller closes the returned file.
func Open(dir, root string, now time.Time, console io.Writer) (*logrus.Logger, *os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory %q: %w", dir, err)
	}

	path := filepath.Join(dir, FileName(root, now))

	file, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating log file: %w", err)
	}

	return New(console, file), file, nil
}

// FileName returns the log file name for a scan of root started at now.
func FileName(root string, now time.Time) string {
	return fmt.Sprintf("drive_size_calc_on_%s_%s.log", CleanPath(root), now.Format(fileTimeFormat))
}

// CleanPath turns root into a string usable inside a file name by replacing
// drive colons and path separators with dashes.
func CleanPath(root string) string {
	replacer := strings.NewReplacer(":", "-", `\`, "-", "/", "-")

	return strings.ReplaceAll(replacer.Replace(root), "--", "-")
}
