package contract

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/trendscope/trendscope/schema"
)

// Dataset file names expected inside the data directory.
const (
	AccountsFileName = "accounts.csv" // account_id,name,current_arr
	MetricsFileName  = "metrics.csv"  // account_id,metric,date,value
)

// CSVAccountSource loads account series from a CSV dataset directory.
// Malformed rows are skipped with a warning rather than failing the load,
// so a few bad samples never block an entire report.
type CSVAccountSource struct {
	dir string
}

var _ AccountSource = &CSVAccountSource{} // Compile-time check

// NewCSVAccountSource creates an account source reading from the given directory.
func NewCSVAccountSource(dir string) *CSVAccountSource {
	return &CSVAccountSource{dir: dir}
}

// LoadAccounts implements the AccountSource interface.
func (s *CSVAccountSource) LoadAccounts(ctx context.Context) ([]schema.AccountSeries, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	accounts, index, err := s.loadAccountRows()
	if err != nil {
		return nil, err
	}

	if err := s.loadMetricRows(accounts, index); err != nil {
		return nil, err
	}

	return accounts, nil
}

// loadAccountRows reads accounts.csv and returns the accounts in file order
// plus an index from account ID to slice position.
func (s *CSVAccountSource) loadAccountRows() ([]schema.AccountSeries, map[string]int, error) {
	path := filepath.Join(s.dir, AccountsFileName)
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // Validate per row so one bad line cannot abort the read

	accounts := make([]schema.AccountSeries, 0)
	index := make(map[string]int)

	for line := 1; ; line++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		if line == 1 && isHeaderRow(record) {
			continue
		}
		if len(record) < 3 {
			LogWarn(fmt.Sprintf("Skipping %s line %d", AccountsFileName, line), fmt.Errorf("expected 3 fields, got %d", len(record)))
			continue
		}

		id := strings.TrimSpace(record[0])
		if id == "" {
			LogWarn(fmt.Sprintf("Skipping %s line %d", AccountsFileName, line), fmt.Errorf("empty account_id"))
			continue
		}
		if _, exists := index[id]; exists {
			LogWarn(fmt.Sprintf("Skipping %s line %d", AccountsFileName, line), fmt.Errorf("duplicate account_id %q", id))
			continue
		}

		currentARR, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			LogWarn(fmt.Sprintf("Invalid current_arr for account %q", id), err)
			currentARR = 0
		}

		index[id] = len(accounts)
		accounts = append(accounts, schema.AccountSeries{
			ID:         id,
			Name:       strings.TrimSpace(record[1]),
			CurrentARR: currentARR,
		})
	}

	return accounts, index, nil
}

// loadMetricRows reads metrics.csv and appends each sample to its account's series.
func (s *CSVAccountSource) loadMetricRows(accounts []schema.AccountSeries, index map[string]int) error {
	path := filepath.Join(s.dir, MetricsFileName)
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	for line := 1; ; line++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		if line == 1 && isHeaderRow(record) {
			continue
		}
		if len(record) < 4 {
			LogWarn(fmt.Sprintf("Skipping %s line %d", MetricsFileName, line), fmt.Errorf("expected 4 fields, got %d", len(record)))
			continue
		}

		id := strings.TrimSpace(record[0])
		pos, ok := index[id]
		if !ok {
			LogWarn(fmt.Sprintf("Skipping %s line %d", MetricsFileName, line), fmt.Errorf("unknown account_id %q", id))
			continue
		}

		date, err := ParseDate(record[2])
		if err != nil {
			LogWarn(fmt.Sprintf("Skipping %s line %d", MetricsFileName, line), err)
			continue
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
		if err != nil {
			LogWarn(fmt.Sprintf("Skipping %s line %d", MetricsFileName, line), err)
			continue
		}

		point := schema.TimePoint{Date: date, Value: value}
		metric := schema.SeriesMetric(strings.ToLower(strings.TrimSpace(record[1])))
		switch metric {
		case schema.ARRSeries:
			accounts[pos].ARR = append(accounts[pos].ARR, point)
		case schema.HealthSeries:
			accounts[pos].Health = append(accounts[pos].Health, point)
		case schema.NPSSeries:
			accounts[pos].NPS = append(accounts[pos].NPS, point)
		default:
			LogWarn(fmt.Sprintf("Skipping %s line %d", MetricsFileName, line), fmt.Errorf("unknown metric %q", record[1]))
		}
	}

	return nil
}

// isHeaderRow reports whether a CSV record looks like a header line.
func isHeaderRow(record []string) bool {
	return len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "account_id")
}
