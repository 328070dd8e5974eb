package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/wavesim/internal/sim"
)

// ExportData is the single-document JSON form of a run.
type ExportData struct {
	Scenario    string             `json:"scenario"`
	FrameDt     float64            `json:"frame_dt"`
	Duration    float64            `json:"duration"`
	FramesRun   int                `json:"frames_run"`
	EngineSteps int                `json:"engine_steps"`
	Times       []float64          `json:"times"`
	Positions   [][3]float64       `json:"positions"`
	Headings    []float64          `json:"headings"`
	Tilts       []float64          `json:"tilts"`
	Heave       []float64          `json:"heave"`
	Metrics     map[string]float64 `json:"metrics"`
}

func NewExportData(sc sim.Scenario, result *sim.Result) ExportData {
	n := len(result.Frames)
	data := ExportData{
		Scenario:    sc.Name,
		FrameDt:     sc.Timing.FrameDt,
		Duration:    sc.Timing.Duration,
		FramesRun:   result.FramesRun,
		EngineSteps: result.EngineSteps,
		Times:       make([]float64, n),
		Positions:   make([][3]float64, n),
		Headings:    make([]float64, n),
		Tilts:       make([]float64, n),
		Heave:       make([]float64, n),
		Metrics:     result.Metrics,
	}
	for i, f := range result.Frames {
		data.Times[i] = f.Time
		data.Positions[i] = f.Position
		data.Headings[i] = f.Heading
		data.Tilts[i] = f.Tilt
		data.Heave[i] = f.Heave()
	}
	return data
}

func ExportJSON(w io.Writer, sc sim.Scenario, result *sim.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewExportData(sc, result))
}
