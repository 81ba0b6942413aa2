package discover

import (
	"sort"

	pkgerrors "github.com/jbmln/partsmerge/pkg/errors"
	"github.com/jbmln/partsmerge/pkg/logging"
	"github.com/jbmln/partsmerge/pkg/tabular"
)

// CSVPair is the selected (full, mini) CSV pair.
type CSVPair struct {
	Full string
	Mini string
}

// SelectCSVPair identifies the mini CSV (fewest columns, smallest file on
// ties) and the full CSV (same row count as mini, more columns, largest by
// size then most columns). When no candidate satisfies the row-count-match
// condition the selection falls back to size extremes: largest file is
// full, smallest is mini. Unreadable candidates are skipped; the selection
// fails only when none remain.
func SelectCSVPair(dir string, paths []string) (CSVPair, error) {
	if len(paths) < 2 {
		return CSVPair{}, pkgerrors.NewDiscoveryError("csv", dir, len(paths), 2)
	}

	infos := make([]tabular.Info, 0, len(paths))
	for _, p := range paths {
		info, err := tabular.Probe(p)
		if err != nil {
			logging.Debug().Str("path", p).Err(err).Msg("Skipping unreadable CSV candidate")
			continue
		}
		infos = append(infos, info)
	}
	if len(infos) == 0 {
		return CSVPair{}, pkgerrors.NewDiscoveryError("readable csv", dir, 0, 1)
	}

	// mini = minimum columns, tie-break by size.
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].Columns != infos[j].Columns {
			return infos[i].Columns < infos[j].Columns
		}
		return infos[i].Size < infos[j].Size
	})
	mini := infos[0]

	var fullCandidates []tabular.Info
	for _, info := range infos {
		if info.Rows == mini.Rows && info.Columns > mini.Columns {
			fullCandidates = append(fullCandidates, info)
		}
	}
	if len(fullCandidates) > 0 {
		sort.Slice(fullCandidates, func(i, j int) bool {
			if fullCandidates[i].Size != fullCandidates[j].Size {
				return fullCandidates[i].Size > fullCandidates[j].Size
			}
			return fullCandidates[i].Columns > fullCandidates[j].Columns
		})
		return CSVPair{Full: fullCandidates[0].Path, Mini: mini.Path}, nil
	}

	// Fallback by size extremes.
	sort.Slice(infos, func(i, j int) bool { return infos[i].Size < infos[j].Size })
	return CSVPair{Full: infos[len(infos)-1].Path, Mini: infos[0].Path}, nil
}
