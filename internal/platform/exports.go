package platform

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/fruitmall/fruitmall-client/internal/model"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// ExportDirName is created under the user's home directory
const ExportDirName = "fruitmall-exports"

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// DefaultExportDir returns the directory sales exports are written to
func DefaultExportDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ExportDirName), nil
}

// ExportSalesCSV writes the sales statistics to a CSV file, one section
// per granularity. Returns the number of data rows written.
func ExportSalesCSV(path string, stats model.SalesStatistics) (int, error) {
	if err := CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		return 0, err
	}

	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create export file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"period", "label", "orders", "revenue"}); err != nil {
		return 0, err
	}

	rows := 0
	sections := []struct {
		period string
		points []model.SalesPoint
	}{
		{"daily", stats.Daily},
		{"weekly", stats.Weekly},
		{"monthly", stats.Monthly},
	}
	for _, section := range sections {
		for _, point := range section.points {
			record := []string{
				section.period,
				point.Label,
				fmt.Sprintf("%d", point.Orders),
				point.Revenue.StringFixed(2),
			}
			if err := w.Write(record); err != nil {
				return rows, err
			}
			rows++
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return rows, fmt.Errorf("failed to flush export: %w", err)
	}
	return rows, nil
}

// OpenFileWithDefaultApp opens the file with the default system application
func OpenFileWithDefaultApp(filePath string) error {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return fmt.Errorf("file does not exist: %s", filePath)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command("open", filePath).Start()
	case OSWindows:
		return exec.Command("cmd", "/c", "start", "", filePath).Start()
	case OSLinux:
		return exec.Command("xdg-open", filePath).Start()
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}
