package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/darkscreen/internal/cli/styles"
	"github.com/bnema/darkscreen/internal/logging"
)

const defaultLogsLines = 50

var (
	logsFollow bool
	logsLines  int
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View darkscreen logs",
	Long: `View the darkscreen log file.

File logging is off by default; enable it with logging.enable_file_log.

Examples:
  darkscreen logs          # Show the last 50 lines
  darkscreen logs -n 200   # Show the last 200 lines
  darkscreen logs -f       # Follow logs in real-time`,
	RunE: runLogs,
}

func init() {
	rootCmd.AddCommand(logsCmd)

	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "follow log output in real-time")
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", defaultLogsLines, "number of lines to show")
}

func runLogs(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	logPath := filepath.Join(app.Config.Logging.LogDir, logging.LogFileName)
	if _, err := os.Stat(logPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Println(app.Theme.Subtle.Render("No log file at " + logPath + ". Set logging.enable_file_log = true to create one."))
			return nil
		}
		return fmt.Errorf("stat log file: %w", err)
	}

	if logsFollow {
		return tailLog(cmd.Context(), logPath, app.Theme)
	}
	return showLog(logPath, logsLines, app.Theme)
}

// showLog prints the last n lines of logPath.
func showLog(logPath string, n int, theme *styles.Theme) (retErr error) {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("close log file: %w", closeErr)
		}
	}()

	lines, err := lastLines(file, n)
	if err != nil {
		return err
	}

	for _, line := range lines {
		fmt.Println(colorizeLogLine(line, theme))
	}
	return nil
}

// lastLines returns the last n lines read from r.
func lastLines(r io.Reader, n int) ([]string, error) {
	ring := make([]string, 0, max(n, 0))
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if n <= 0 {
			continue
		}
		if len(ring) == n {
			ring = ring[1:]
		}
		ring = append(ring, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log file: %w", err)
	}
	return ring, nil
}

// tailLog follows logPath until ctx is cancelled.
func tailLog(ctx context.Context, logPath string, theme *styles.Theme) error {
	follower, err := openLogFollower(logPath)
	if err != nil {
		return err
	}
	defer func() { _ = follower.Close() }()

	fmt.Println(theme.Subtle.Render("Following logs... (Ctrl+C to stop)"))
	fmt.Println()

	for {
		lines, err := follower.poll()
		for _, line := range lines {
			fmt.Println(colorizeLogLine(line, theme))
		}
		if err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(100 * time.Millisecond):
		}
	}
}

// logFollower reads lines appended to a log file. It reopens the path when the
// file is rotated away or truncated.
type logFollower struct {
	path    string
	file    *os.File
	reader  *bufio.Reader
	offset  int64
	pending string
}

// openLogFollower opens path positioned at its current end.
func openLogFollower(path string) (*logFollower, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	offset, err := file.Seek(0, io.SeekEnd)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("seek log file: %w", err)
	}
	return &logFollower{
		path:   path,
		file:   file,
		reader: bufio.NewReader(file),
		offset: offset,
	}, nil
}

// poll returns the complete lines written since the last call.
func (f *logFollower) poll() ([]string, error) {
	lines, err := f.drain()
	if err != nil {
		return lines, err
	}

	rotated, err := f.rotated()
	if err != nil || !rotated {
		return lines, err
	}

	// The old file ended without a newline.
	if f.pending != "" {
		lines = append(lines, f.pending)
		f.pending = ""
	}
	if err := f.reopen(); err != nil {
		return lines, err
	}
	more, err := f.drain()
	return append(lines, more...), err
}

func (f *logFollower) drain() ([]string, error) {
	var lines []string
	for {
		chunk, err := f.reader.ReadString('\n')
		f.offset += int64(len(chunk))
		f.pending += chunk
		if strings.HasSuffix(f.pending, "\n") {
			lines = append(lines, strings.TrimSuffix(f.pending, "\n"))
			f.pending = ""
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return lines, nil
			}
			return lines, fmt.Errorf("read log file: %w", err)
		}
	}
}

func (f *logFollower) rotated() (bool, error) {
	current, err := os.Stat(f.path)
	if err != nil {
		// Between the rename and the next write.
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat log file: %w", err)
	}
	open, err := f.file.Stat()
	if err != nil {
		return false, fmt.Errorf("stat log file: %w", err)
	}
	return !os.SameFile(current, open) || current.Size() < f.offset, nil
}

func (f *logFollower) reopen() error {
	_ = f.file.Close()
	file, err := os.Open(f.path)
	if err != nil {
		return fmt.Errorf("reopen log file: %w", err)
	}
	f.file = file
	f.reader.Reset(file)
	f.offset = 0
	return nil
}

// Close releases the open log file.
func (f *logFollower) Close() error {
	return f.file.Close()
}

// logEntry represents a parsed JSON log entry.
type logEntry struct {
	Level     string `json:"level"`
	Time      string `json:"time"`
	Message   string `json:"message"`
	Component string `json:"component"`
	Error     string `json:"error"`
}

// colorizeLogLine adds color based on log level.
func colorizeLogLine(line string, theme *styles.Theme) string {
	var entry logEntry
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		return line
	}

	timeStr := entry.Time
	if t, err := time.Parse(time.RFC3339, entry.Time); err == nil {
		timeStr = t.Format("15:04:05")
	}

	var levelStr string
	switch entry.Level {
	case "error":
		levelStr = theme.ErrorStyle.Render("ERR")
	case "warn":
		levelStr = theme.WarningStyle.Render("WRN")
	case "info":
		levelStr = theme.Highlight.Render("INF")
	case "debug":
		levelStr = theme.Subtle.Render("DBG")
	case "trace":
		levelStr = theme.Subtle.Render("TRC")
	default:
		levelStr = entry.Level
	}

	out := fmt.Sprintf("%s %s", theme.Subtle.Render(timeStr), levelStr)
	if entry.Component != "" {
		out += " " + theme.Subtle.Render("["+entry.Component+"]")
	}
	out += " " + entry.Message
	if entry.Error != "" {
		out += " " + theme.ErrorStyle.Render(entry.Error)
	}
	return out
}
