// Package storage persists finished runs: per-run metadata plus the
// final C matrix and access-heat counters as CSV.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/matcube/internal/matrix"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Algorithm string             `json:"algorithm"`
	M         int                `json:"m"`
	N         int                `json:"n"`
	K         int                `json:"k"`
	Seed      int64              `json:"seed"`
	Steps     int                `json:"steps"`
	Timestamp time.Time          `json:"timestamp"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes one finished run under a fresh run directory and
// returns its ID.
func (s *Store) Save(meta RunMetadata, c *matrix.Dense, aHits, bHits *matrix.Counts) (string, error) {
	runID := fmt.Sprintf("%s_%d", meta.Algorithm, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := writeDenseCSV(filepath.Join(runDir, "c.csv"), c); err != nil {
		return "", err
	}
	if err := writeCountsCSV(filepath.Join(runDir, "a_hits.csv"), aHits); err != nil {
		return "", err
	}
	if err := writeCountsCSV(filepath.Join(runDir, "b_hits.csv"), bHits); err != nil {
		return "", err
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadC reads back the final C matrix of a saved run.
func (s *Store) LoadC(runID string) (*matrix.Dense, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "c.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty result for run %s", runID)
	}

	m := matrix.New(len(records), len(records[0]))
	for i, record := range records {
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, err
			}
			m.Set(i, j, v)
		}
	}
	return m, nil
}

func writeDenseCSV(path string, m *matrix.Dense) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	row := make([]string, m.Cols)
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			row[j] = strconv.FormatFloat(m.At(i, j), 'f', 6, 64)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func writeCountsCSV(path string, m *matrix.Counts) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	row := make([]string, m.Cols)
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			row[j] = strconv.Itoa(m.At(i, j))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
