package discover

import (
	"os"
	"sort"

	pkgerrors "github.com/jbmln/partsmerge/pkg/errors"
)

// KeySetFunc extracts the identity-key set from the document at path. The
// base/delta selector is parameterized over it so invoice and product
// documents share one selection strategy.
type KeySetFunc func(path string) (map[string]struct{}, error)

// Pair is a selected (base, delta) file pair of one document kind.
type Pair struct {
	Base  string
	Delta string
}

// SelectBaseDelta picks the delta and base among same-kind candidates:
// the smallest file by byte size is the delta; the base is the remaining
// candidate with minimal identity-key overlap with the delta, preferring
// the larger file on ties. An already-merged superset file overlaps the
// delta heavily, so minimal overlap finds the true pre-merge base.
func SelectBaseDelta(kind, dir string, paths []string, keys KeySetFunc) (Pair, error) {
	if len(paths) < 2 {
		return Pair{}, pkgerrors.NewDiscoveryError(kind, dir, len(paths), 2)
	}

	sized := make([]struct {
		path string
		size int64
	}, 0, len(paths))
	for _, p := range paths {
		fi, err := os.Stat(p)
		if err != nil {
			return Pair{}, pkgerrors.WrapIO("stat", p, err)
		}
		sized = append(sized, struct {
			path string
			size int64
		}{p, fi.Size()})
	}
	sort.Slice(sized, func(i, j int) bool { return sized[i].size < sized[j].size })

	delta := sized[0]
	candidates := sized[1:]

	deltaKeys, err := keys(delta.path)
	if err != nil {
		return Pair{}, err
	}

	type scored struct {
		overlap int
		size    int64
		path    string
	}
	scores := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		candKeys, err := keys(c.path)
		if err != nil {
			return Pair{}, err
		}
		scores = append(scores, scored{
			overlap: intersectionCount(candKeys, deltaKeys),
			size:    c.size,
			path:    c.path,
		})
	}

	// Minimal overlap first; on equal overlap the bigger file wins,
	// expressing "prefer the more complete base".
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].overlap != scores[j].overlap {
			return scores[i].overlap < scores[j].overlap
		}
		return scores[i].size > scores[j].size
	})

	return Pair{Base: scores[0].path, Delta: delta.path}, nil
}

func intersectionCount(a, b map[string]struct{}) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	n := 0
	for k := range a {
		if _, ok := b[k]; ok {
			n++
		}
	}
	return n
}
