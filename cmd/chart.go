package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/keysound/bms"
	"github.com/jsphweid/keysound/chart"
	"github.com/jsphweid/keysound/constants"
	"github.com/jsphweid/keysound/file"
	"github.com/jsphweid/keysound/model"
)

// openForEdit opens the chart and, unless --no-backup is set, copies it
// before anything gets written.
func openForEdit(out io.Writer, path string) (*file.BmsFile, error) {
	b, err := file.Open(path)
	if err != nil {
		return nil, err
	}
	if noBackup {
		return b, nil
	}
	dst, err := b.Backup(constants.GetBackupSuffix())
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(out, "Backed up %v to %v\n", b.Path, dst)
	return b, nil
}

func parseID(s string) (bms.ID, error) {
	s = strings.TrimSpace(s)
	if len(s) != 2 {
		return 0, fmt.Errorf("keysound id %q must be 2 characters", s)
	}
	return bms.Decode(s)
}

// parseIDs reads a comma separated list such as "0B,0C,0D".
func parseIDs(s string) ([]bms.ID, error) {
	var res []bms.ID
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		id, err := parseID(part)
		if err != nil {
			return nil, err
		}
		res = append(res, id)
	}
	if len(res) == 0 {
		return nil, fmt.Errorf("no keysound ids given")
	}
	return res, nil
}

func buildReport(b *file.BmsFile) model.ChartReport {
	usage := b.Chart.Usage()
	report := model.ChartReport{
		Path:         b.Path,
		NumLines:     len(b.Chart.Serialize()),
		NumKeysounds: len(b.Chart.Keysounds()),
		Keysounds:    []model.KeysoundReport{},
		Unused:       []string{},
	}
	for _, k := range b.Chart.Keysounds() {
		report.Keysounds = append(report.Keysounds, model.KeysoundReport{
			ID:    bms.Encode(k.ID),
			File:  k.File,
			Slots: usage[k.ID],
			Used:  usage[k.ID] > 0,
		})
	}
	for _, k := range b.Chart.UnusedKeysounds() {
		report.Unused = append(report.Unused, k.String())
	}
	return report
}

func toModelResult(r chart.RewriteResult) model.RewriteResult {
	return model.RewriteResult{
		Old:          bms.Encode(r.Old),
		New:          bms.Encode(r.New),
		Declarations: r.Declarations,
		Lines:        r.Lines,
		Slots:        r.Slots,
		Protected:    r.Protected,
	}
}
