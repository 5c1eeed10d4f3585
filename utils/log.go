package utils

import (
	"fmt"
	"github.com/fatih/color"
	"io"
	"log"
	"os"
	"path"
)

var consoleOutput io.Writer = os.Stdout

var warningColor = color.New(color.FgYellow)

// SetupLogger sends the standard logger to an append-only log file. With no
// path, log lines are discarded and only the console output remains.
func SetupLogger(logFilePath string) (io.Closer, error) {
	log.SetFlags(log.LstdFlags)

	if logFilePath == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}

	logFile, err := os.OpenFile(path.Clean(logFilePath), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)

	if err != nil {
		return nil, fmt.Errorf("could not open log file \"%s\": %w", logFilePath, err)
	}

	log.SetOutput(logFile)
	return logFile, nil
}

// SetConsoleOutput redirects console lines, returning the previous writer.
func SetConsoleOutput(w io.Writer) io.Writer {
	previous := consoleOutput
	consoleOutput = w
	return previous
}

func ConsoleAndLogPrintf(format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	fmt.Fprintln(consoleOutput, message)
	log.Print(message)
}

func WarningPrintf(format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	warningColor.Fprintln(consoleOutput, "Warning: "+message)
	log.Print("WARNING: " + message)
}
