package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

var (
	AppLogger    *log.Logger
	AccessLogger *log.Logger
	ErrorLogger  *log.Logger

	logLevel      string
	appLogFile    *os.File
	accessLogFile *os.File
	initialized   bool
)

var levelRank = map[string]int{"DEBUG": 0, "INFO": 1, "WARN": 2, "ERROR": 3}

// openLogFile opens path for appending, creating its directory. On failure the
// returned writer discards everything and the reason is reported on stderr.
func openLogFile(path, what string) (*os.File, io.Writer, string) {
	if path == "" {
		return nil, io.Discard, "(discarded)"
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		ErrorLogger.Printf("Failed to create %s log directory %s: %v. %s logs will be discarded.", what, dir, err, what)
		return nil, io.Discard, "(discarded)"
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
	if err != nil {
		ErrorLogger.Printf("Failed to open %s log file %s: %v. %s logs will be discarded.", what, path, err, what)
		return nil, io.Discard, "(discarded)"
	}
	return f, f, path
}

func InitGlobalLoggers(appLogPath, accessLogPath, level string) error {
	if initialized && appLogFile != nil && accessLogFile != nil && strings.ToUpper(level) == logLevel {
		return nil
	}
	closeFiles()

	logLevel = strings.ToUpper(level)
	if _, ok := levelRank[logLevel]; !ok {
		logLevel = "INFO"
	}

	ErrorLogger = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)

	var appWriter, accessWriter io.Writer
	var actualAppLogPath, actualAccessLogPath string
	appLogFile, appWriter, actualAppLogPath = openLogFile(appLogPath, "app")
	accessLogFile, accessWriter, actualAccessLogPath = openLogFile(accessLogPath, "access")

	AppLogger = log.New(appWriter, "APP: ", log.Ldate|log.Ltime|log.Lshortfile)
	AccessLogger = log.New(accessWriter, "ACCESS: ", log.Ldate|log.Ltime|log.Lmicroseconds)

	if !initialized {
		AppLogger.Printf("App logger initialized. Log level: %s. Output file: %s", logLevel, actualAppLogPath)
		AccessLogger.Printf("Access logger initialized. Output file: %s", actualAccessLogPath)
	}
	initialized = true
	return nil
}

// Level returns the active level name.
func Level() string {
	return logLevel
}

func enabled(level string) bool {
	current, ok := levelRank[logLevel]
	if !ok {
		current = levelRank["INFO"]
	}
	return levelRank[level] >= current
}

func Debug(format string, v ...interface{}) {
	if AppLogger != nil && enabled("DEBUG") {
		AppLogger.Output(2, fmt.Sprintf(format, v...))
	}
}

func Info(format string, v ...interface{}) {
	if AppLogger != nil && enabled("INFO") {
		AppLogger.Output(2, fmt.Sprintf(format, v...))
	}
}

func Warn(format string, v ...interface{}) {
	if AppLogger != nil && enabled("WARN") {
		AppLogger.Output(2, "WARN: "+fmt.Sprintf(format, v...))
	}
}

func Error(format string, v ...interface{}) {
	message := fmt.Sprintf(format, v...)
	if ErrorLogger != nil {
		ErrorLogger.Output(2, message)
	}
	if AppLogger != nil && appLogFile != nil {
		AppLogger.Output(2, message)
	}
}

func Fatal(format string, v ...interface{}) {
	message := fmt.Sprintf(format, v...)
	if ErrorLogger != nil {
		ErrorLogger.Fatal(message)
	} else {
		log.Fatal(message)
	}
}

// AccessInfo writes one line to the access log. It ignores the level filter
// except for ERROR, which silences request logging.
func AccessInfo(format string, v ...interface{}) {
	if AccessLogger != nil && logLevel != "ERROR" {
		AccessLogger.Printf(format, v...)
	}
}

func closeFiles() {
	if appLogFile != nil {
		appLogFile.Close()
		appLogFile = nil
	}
	if accessLogFile != nil {
		accessLogFile.Close()
		accessLogFile = nil
	}
}

func CloseLogFiles() {
	if appLogFile != nil {
		AppLogger.Println("Closing app log file.")
	}
	if accessLogFile != nil {
		AccessLogger.Println("Closing access log file.")
	}
	closeFiles()
	initialized = false // Allow re-initialization (tests)
}
