package parse

import (
	"strings"
)

// ResolveEndpoints decides a route's nominal start and end point from its
// schedule blocks and via stops.
//
// The first distinct block origin and destination win. The last via stop
// can override the destination, but only when it matches a known block
// destination, or when the current pick is itself unconfirmed. Without
// any blocks the endpoints fall back to the origin label and the last via
// stop.
func ResolveEndpoints(blocks []ScheduleBlock, viaStops []string) (startPoint, endPoint string) {
	startPoint = originLabel
	endPoint = originLabel

	if len(blocks) == 0 {
		if len(viaStops) > 0 {
			endPoint = viaStops[len(viaStops)-1]
		}
		return startPoint, endPoint
	}

	var origins, destinations []string
	seenOrig := map[string]bool{}
	seenDest := map[string]bool{}
	for _, b := range blocks {
		if strings.TrimSpace(b.From) != "" && !seenOrig[b.From] {
			seenOrig[b.From] = true
			origins = append(origins, b.From)
		}
		if strings.TrimSpace(b.To) != "" && !seenDest[b.To] {
			seenDest[b.To] = true
			destinations = append(destinations, b.To)
		}
	}

	if len(origins) > 0 {
		startPoint = origins[0]
	}
	if len(destinations) > 0 {
		endPoint = destinations[0]
	}

	if len(viaStops) > 0 {
		lastVia := viaStops[len(viaStops)-1]
		if strings.TrimSpace(lastVia) != "" && lastVia != startPoint {
			if seenDest[lastVia] {
				endPoint = lastVia
			} else if !seenDest[endPoint] {
				endPoint = lastVia
			}
		}
	}

	return startPoint, endPoint
}
