package memory

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen11/timesheet-service/internal/domain/timesheet"
)

// seedFile is the YAML fixture layout. Hours are strings so that values
// such as "7.75" are read exactly.
type seedFile struct {
	Entries []seedEntry `yaml:"entries"`
}

type seedEntry struct {
	ID            int64  `yaml:"id"`
	EmployeeID    string `yaml:"employee_id"`
	DateWorked    string `yaml:"date_worked"`
	ProjectCode   string `yaml:"project_code"`
	CostCode      string `yaml:"cost_code"`
	StandardHours string `yaml:"standard_hours"`
	OvertimeHours string `yaml:"overtime_hours"`
	Status        string `yaml:"status"`
}

// LoadSeed reads entries from a YAML fixture on fs.
func LoadSeed(fs afero.Fs, path string) ([]Entry, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file %s: %w", path, err)
	}

	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing seed file %s: %w", path, err)
	}

	entries := make([]Entry, 0, len(f.Entries))
	for i, se := range f.Entries {
		standard, err := parseHours(se.StandardHours)
		if err != nil {
			return nil, fmt.Errorf("seed entry %d standard_hours: %w", i, err)
		}
		overtime, err := parseHours(se.OvertimeHours)
		if err != nil {
			return nil, fmt.Errorf("seed entry %d overtime_hours: %w", i, err)
		}
		entries = append(entries, Entry{
			ID: se.ID,
			Key: timesheet.EntryKey{
				EmployeeID:  se.EmployeeID,
				DateWorked:  se.DateWorked,
				ProjectCode: se.ProjectCode,
				CostCode:    se.CostCode,
			},
			StandardHours: standard,
			OvertimeHours: overtime,
			Status:        timesheet.Status(se.Status),
		})
	}
	return entries, nil
}

// NewFromSeed creates a Store holding the entries of the fixture at path.
func NewFromSeed(fs afero.Fs, path string, logger *slog.Logger) (*Store, error) {
	entries, err := LoadSeed(fs, path)
	if err != nil {
		return nil, err
	}

	s := New(logger)
	for i, e := range entries {
		if _, err := s.Add(e); err != nil {
			return nil, fmt.Errorf("seed entry %d: %w", i, err)
		}
	}

	s.logger.Info("entry store seeded",
		slog.String("path", path),
		slog.Int("entries", s.Len()),
	)
	return s, nil
}

func parseHours(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
