package store

import (
	"encoding/json"
	"io"
	"os"
)

type ExportData struct {
	Scene     string             `json:"scene"`
	Drive     string             `json:"drive"`
	Interrupt string             `json:"interrupt"`
	Fps       float64            `json:"fps"`
	Duration  float64            `json:"duration"`
	Frames    int                `json:"frames"`
	Columns   []string           `json:"columns"`
	Times     []float64          `json:"times"`
	Rows      [][]string         `json:"rows"`
	Metrics   map[string]float64 `json:"metrics"`
}

func buildExport(meta RunMetadata, columns []string, times []float64, rows [][]string) ExportData {
	return ExportData{
		Scene:     meta.Scene,
		Drive:     meta.Drive,
		Interrupt: meta.Interrupt,
		Fps:       meta.Fps,
		Duration:  meta.Duration,
		Frames:    len(times),
		Columns:   columns,
		Times:     times,
		Rows:      rows,
		Metrics:   meta.Metrics,
	}
}

func exportJSON(w io.Writer, data ExportData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func ExportJSON(path string, meta RunMetadata, columns []string, times []float64, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return exportJSON(file, buildExport(meta, columns, times, rows))
}

func ExportJSONStdout(meta RunMetadata, columns []string, times []float64, rows [][]string) error {
	return exportJSON(os.Stdout, buildExport(meta, columns, times, rows))
}
