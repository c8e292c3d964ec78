// README: Shared ring validation for the export encoders.
package export

import (
	"log"

	"siteplan/internal/modules/geometry"
	"siteplan/internal/types"
)

// usableRing strips any closing vertex and reports whether at least three
// distinct vertices remain. A closed two-vertex ring is just as degenerate
// as an open one, so the check runs on the opened ring. Skips are logged
// so geometry never vanishes from an export silently.
func usableRing(ring types.Ring, what string) (types.Ring, bool) {
	open := geometry.OpenRing(ring)
	if len(open) < 3 {
		if len(open) > 0 {
			log.Printf("export: skipping degenerate %s (%d vertices)", what, len(open))
		}
		return nil, false
	}
	return open, true
}
