package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gear6io/tablediff/pkg/errors"
)

// LogManager handles log file rotation and management
type LogManager struct {
	config     *LogConfig
	currentLog *os.File
}

// NewLogManager creates a new log manager
func NewLogManager(cfg *LogConfig) *LogManager {
	return &LogManager{config: cfg}
}

// CleanupLogFile clears the log file before starting logging
func CleanupLogFile(filePath string) error {
	if filePath == "" {
		return nil
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil
	}

	logDir := filepath.Dir(filePath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return errors.New(ErrLogDirectoryCreationFailed, "failed to create log directory", err)
	}

	file, err := os.OpenFile(filePath, os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		return errors.New(ErrLogFileOpenFailed, "failed to open log file for cleanup", err)
	}
	defer file.Close()

	return nil
}

// GetWriter returns a writer that handles log rotation
func (lm *LogManager) GetWriter() (io.Writer, error) {
	if lm.config.FilePath == "" {
		return io.Discard, nil
	}

	logDir := filepath.Dir(lm.config.FilePath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, errors.New(ErrLogDirectoryCreationFailed, "failed to create log directory", err)
	}

	if err := lm.checkRotation(); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(lm.config.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, errors.New(ErrLogFileOpenFailed, "failed to open log file", err)
	}

	lm.currentLog = file
	return file, nil
}

// Close releases the current log file
func (lm *LogManager) Close() error {
	if lm.currentLog == nil {
		return nil
	}
	err := lm.currentLog.Close()
	lm.currentLog = nil
	return err
}

// checkRotation rotates the log file away when it exceeds the size limit
func (lm *LogManager) checkRotation() error {
	if lm.config.MaxSize <= 0 {
		return nil
	}

	info, err := os.Stat(lm.config.FilePath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.New(ErrLogRotationFailed, "failed to stat log file", err)
	}

	if info.Size() < int64(lm.config.MaxSize)*1024*1024 {
		return nil
	}

	backup := fmt.Sprintf("%s.%s", lm.config.FilePath, time.Now().Format("20060102-150405"))
	if err := os.Rename(lm.config.FilePath, backup); err != nil {
		return errors.New(ErrLogRotationFailed, "failed to rotate log file", err)
	}

	return lm.pruneBackups()
}

// pruneBackups removes the oldest rotated files beyond MaxBackups
func (lm *LogManager) pruneBackups() error {
	if lm.config.MaxBackups <= 0 {
		return nil
	}

	matches, err := filepath.Glob(lm.config.FilePath + ".*")
	if err != nil {
		return errors.New(ErrLogRotationFailed, "failed to list log backups", err)
	}
	if len(matches) <= lm.config.MaxBackups {
		return nil
	}

	// timestamped suffixes sort chronologically
	for _, stale := range matches[:len(matches)-lm.config.MaxBackups] {
		if err := os.Remove(stale); err != nil {
			return errors.New(ErrLogRotationFailed, "failed to remove stale log backup", err)
		}
	}
	return nil
}
