package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped subdirectory of dir to hold the records.
func NewWriter(dir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(dir, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteCampaignRecords(records []CampaignRecord) error {
	header := []string{"id", "seed", "missions", "breached", "stalled", "final_wear", "total_loot", "eliminated", "start_time", "end_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.FormatUint(record.Seed, 10),
			strconv.Itoa(record.Missions),
			strconv.FormatBool(record.Breached),
			strconv.FormatBool(record.Stalled),
			formatFloat(record.FinalWear),
			strconv.Itoa(record.TotalLoot),
			strconv.Itoa(record.Eliminated),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.write("campaign_records.csv", header, rows)
}

func (w *Writer) WriteMissionRecords(records []MissionRecord) error {
	header := []string{"campaign", "wave", "plan", "plan_succeeded", "sent", "field_lost", "infiltration_lost", "returned", "loot", "wear_delta", "resources", "wear", "eliminated"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Campaign),
			strconv.Itoa(record.Wave),
			record.Plan,
			strconv.FormatBool(record.PlanSucceeded),
			strconv.Itoa(record.Sent),
			strconv.Itoa(record.FieldLost),
			strconv.Itoa(record.InfiltrationLost),
			strconv.Itoa(record.Returned),
			strconv.Itoa(record.Loot),
			formatFloat(record.WearDelta),
			strconv.Itoa(record.Resources),
			formatFloat(record.Wear),
			strconv.Itoa(record.Eliminated),
		})
	}
	return w.write("mission_records.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) (err error) {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", name, cerr)
		}
	}()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}

	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}

	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
