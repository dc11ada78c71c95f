package report

import (
	"encoding/json"
	"io"
	"os"

	"github.com/accrava/codesweep/internal/types"
)

// WriteJSON serializes the summary to the report file CI jobs pick up.
func WriteJSON(path string, sum types.BatchSummary) error {
	buf, err := json.MarshalIndent(normalize(sum), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(buf, '\n'), 0644)
}

// EncodeJSON streams the summary to w, for --json runs.
func EncodeJSON(w io.Writer, sum types.BatchSummary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(normalize(sum))
}

// normalize replaces nil slices so the report never contains JSON null where
// consumers expect arrays.
func normalize(sum types.BatchSummary) types.BatchSummary {
	if sum.Results == nil {
		sum.Results = []types.FileResult{}
	}
	for i := range sum.Results {
		if sum.Results[i].Findings == nil {
			sum.Results[i].Findings = []types.Finding{}
		}
	}
	return sum
}
