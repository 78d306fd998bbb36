package reporting

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/BenjaNor/FinalProject/internal/domain"
	"github.com/BenjaNor/FinalProject/internal/features"
)

// featureCSVHeader returns the column names of the feature CSV.
func featureCSVHeader() []string {
	header := make([]string, 0, domain.FeatureCount+3)
	header = append(header, "ticker", "year")
	header = append(header, domain.FeatureNames[:]...)
	return append(header, "label")
}

// EncodeFeatureCSV writes the feature matrix and labels as CSV to w.
// Rows keep the dataset order. Values use the shortest representation
// that parses back to the same float64.
func EncodeFeatureCSV(w io.Writer, ds *features.Dataset) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(featureCSVHeader()); err != nil {
		return err
	}

	if ds != nil {
		record := make([]string, 0, domain.FeatureCount+3)
		for i, row := range ds.Rows {
			key := ds.Keys[i]
			record = append(record[:0], key.Ticker, strconv.Itoa(key.Year))
			for _, v := range row {
				record = append(record, strconv.FormatFloat(v, 'g', -1, 64))
			}
			record = append(record, strconv.Itoa(int(ds.Labels[i])))

			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// RenderFeatureCSV renders the feature matrix and labels as CSV string.
func RenderFeatureCSV(ds *features.Dataset) string {
	var buf bytes.Buffer
	// bytes.Buffer writes never fail
	_ = EncodeFeatureCSV(&buf, ds)
	return buf.String()
}

// WriteFeatureCSV writes the feature CSV to path.
func WriteFeatureCSV(path string, ds *features.Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write feature csv: %w", err)
	}

	if err := EncodeFeatureCSV(f, ds); err != nil {
		f.Close()
		return fmt.Errorf("write feature csv: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write feature csv: %w", err)
	}
	return nil
}
