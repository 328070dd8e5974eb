package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/san-kum/wavesim/internal/input"
	"github.com/san-kum/wavesim/internal/logger"
	"github.com/san-kum/wavesim/internal/sim"
	"github.com/san-kum/wavesim/internal/waves"
)

const (
	metadataFile = "metadata.json"
	framesFile   = "frames.csv"
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
	ID          string             `json:"id"`
	Scenario    string             `json:"scenario"`
	Timestamp   time.Time          `json:"timestamp"`
	Waves       waves.Parameters   `json:"waves"`
	FixedDt     float64            `json:"fixed_dt"`
	FrameDt     float64            `json:"frame_dt"`
	Duration    float64            `json:"duration"`
	Autopilot   bool               `json:"autopilot"`
	FramesRun   int                `json:"frames_run"`
	EngineSteps int                `json:"engine_steps"`
	Errors      []string           `json:"errors,omitempty"`
	Metrics     map[string]float64 `json:"metrics"`
}

var frameHeader = []string{
	"index", "time",
	"x", "y", "z",
	"qw", "qx", "qy", "qz",
	"vx", "vy", "vz",
	"heading", "tilt", "water", "energy", "submerged",
	"forward", "backward", "turn_left", "turn_right",
	"engine_steps",
}

// Save writes a run directory holding metadata.json and frames.csv and
// returns the run ID.
func (s *Store) Save(sc sim.Scenario, result *sim.Result) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", sc.Name, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:          runID,
		Scenario:    sc.Name,
		Timestamp:   now,
		Waves:       sc.Waves,
		FixedDt:     sc.Timing.FixedDt,
		FrameDt:     sc.Timing.FrameDt,
		Duration:    sc.Timing.Duration,
		Autopilot:   sc.Autopilot.Enabled,
		FramesRun:   result.FramesRun,
		EngineSteps: result.EngineSteps,
		Metrics:     result.Metrics,
	}
	for _, e := range result.Errors {
		meta.Errors = append(meta.Errors, e.Error())
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}
	if err := writeFrames(filepath.Join(runDir, framesFile), result.Frames); err != nil {
		return "", err
	}

	logger.Named("storage").Debug("run saved",
		zap.String("id", runID),
		zap.Int("frames", len(result.Frames)),
	)
	return runID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func writeFrames(path string, frames []sim.Frame) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(frameHeader); err != nil {
		return err
	}

	for _, fr := range frames {
		row := []string{strconv.Itoa(fr.Index), formatFloat(fr.Time)}
		for _, v := range fr.Position {
			row = append(row, formatFloat(v))
		}
		row = append(row, formatFloat(fr.Orientation.W))
		for _, v := range fr.Orientation.V {
			row = append(row, formatFloat(v))
		}
		for _, v := range fr.Velocity {
			row = append(row, formatFloat(v))
		}
		row = append(row,
			formatFloat(fr.Heading),
			formatFloat(fr.Tilt),
			formatFloat(fr.WaterHeight),
			formatFloat(fr.Energy),
			strconv.Itoa(fr.Submerged),
		)
		for _, a := range fr.Actions {
			row = append(row, formatBool(a))
		}
		row = append(row, strconv.Itoa(fr.EngineSteps))

		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// List returns every readable run, oldest first. Directories without valid
// metadata are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	log := logger.Named("storage")
	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			log.Debug("skipping run", zap.String("dir", entry.Name()), zap.Error(err))
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	return &meta, nil
}

// LoadFrames reads back the frames of a run.
func (s *Store) LoadFrames(runID string) ([]sim.Frame, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, framesFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(frameHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	if len(records) < 2 {
		return []sim.Frame{}, nil
	}

	frames := make([]sim.Frame, 0, len(records)-1)
	for i, rec := range records[1:] {
		fr, err := parseFrame(rec)
		if err != nil {
			return nil, fmt.Errorf("run %s line %d: %w", runID, i+2, err)
		}
		frames = append(frames, fr)
	}
	return frames, nil
}

func parseFrame(rec []string) (sim.Frame, error) {
	var fr sim.Frame
	var firstErr error

	num := func(i int) float64 {
		v, err := strconv.ParseFloat(rec[i], 64)
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("column %s: %w", frameHeader[i], err)
		}
		return v
	}
	integer := func(i int) int {
		v, err := strconv.Atoi(rec[i])
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("column %s: %w", frameHeader[i], err)
		}
		return v
	}

	fr.Index = integer(0)
	fr.Time = num(1)
	fr.Position = [3]float64{num(2), num(3), num(4)}
	fr.Orientation.W = num(5)
	fr.Orientation.V = [3]float64{num(6), num(7), num(8)}
	fr.Velocity = [3]float64{num(9), num(10), num(11)}
	fr.Heading = num(12)
	fr.Tilt = num(13)
	fr.WaterHeight = num(14)
	fr.Energy = num(15)
	fr.Submerged = integer(16)
	for _, a := range input.Actions() {
		fr.Actions[a] = rec[17+int(a)] == "1"
	}
	fr.EngineSteps = integer(21)

	return fr, firstErr
}
