package parse

import (
	"regexp"
	"strings"
)

var (
	routeNoPattern = regexp.MustCompile(`(?i)Route\s+No\.?\s*([\d\w\s,&-]+)`)
	baseNumber     = regexp.MustCompile(`^(\d+)([A-Za-z]*)$`)
	singleLetter   = regexp.MustCompile(`^[A-Za-z]$`)
	andSplit       = regexp.MustCompile(`(?i)\s+and\s+`)
)

// RouteNumbers extracts canonical route numbers from a worksheet name.
// Sheet names embed them in forms like "Route No.3", "Route No.3B and C"
// (meaning 3B plus 3C) or "Route No.4, 4D". Returns nil when the name
// carries no route number at all.
func RouteNumbers(sheetName string) []string {
	m := routeNoPattern.FindStringSubmatch(sheetName)
	if m == nil {
		return nil
	}

	var routes []string
	for _, part := range strings.Split(strings.TrimSpace(m[1]), ",") {
		part = strings.TrimSpace(part)

		if !andSplit.MatchString(part) {
			routes = append(routes, part)
			continue
		}

		andParts := andSplit.Split(part, -1)
		for i := range andParts {
			andParts[i] = strings.TrimSpace(andParts[i])
		}

		base := baseNumber.FindStringSubmatch(andParts[0])
		if base == nil {
			// No usable base number, keep the whole part verbatim.
			routes = append(routes, part)
			continue
		}
		num, suffix := base[1], base[2]

		routes = append(routes, num+suffix)
		for _, rest := range andParts[1:] {
			switch {
			case singleLetter.MatchString(rest):
				// A bare letter inherits the base number: "3B and C" -> 3C.
				routes = append(routes, num+rest)
			case baseNumber.MatchString(rest):
				routes = append(routes, rest)
			}
			// Anything else is noise and dropped.
		}
	}

	seen := map[string]bool{}
	out := []string{}
	for _, r := range routes {
		r = strings.TrimSpace(r)
		if r == "" || seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
