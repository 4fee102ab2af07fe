package portal

import (
	"regexp"
	"strings"
	"time"

	"github.com/bnema/mana-kadai/internal/domain"
)

// entryMarker separates assignment rows on the library listing page.
const entryMarker = "myassignments-title"

var (
	periodPattern = regexp.MustCompile(`td-period">(.*)</td>`)
	yearPrefix    = regexp.MustCompile(`^\d{4}`)
	anchorPattern = regexp.MustCompile(`<a href="(.+)">(.+?)</a>`)
	coursePattern = regexp.MustCompile(`class="mycourse-title"><.*>(.*)</a>`)
)

// Extract recovers one candidate per listing entry. Malformed and overdue
// entries are skipped silently; a page without entries yields nil.
func Extract(page string, now time.Time, baseURL string) []domain.Candidate {
	segments := strings.Split(page, entryMarker)
	if len(segments) < 2 {
		return nil
	}

	var candidates []domain.Candidate
	for _, segment := range segments[1:] {
		candidate, ok := extractEntry(segment, now, baseURL)
		if !ok {
			continue
		}
		candidates = append(candidates, candidate)
	}

	return candidates
}

func extractEntry(segment string, now time.Time, baseURL string) (domain.Candidate, bool) {
	// The first period cell of a row is the release date; the deadline is the second.
	periods := periodPattern.FindAllStringSubmatch(segment, -1)
	if len(periods) < 2 || !yearPrefix.MatchString(periods[1][1]) {
		return domain.Candidate{}, false
	}

	dueText := strings.TrimSpace(periods[1][1])
	due, err := time.ParseInLocation(domain.DueLayout, dueText, domain.PortalZone)
	if err != nil {
		return domain.Candidate{}, false
	}
	if due.Before(now) {
		return domain.Candidate{}, false
	}

	anchor := anchorPattern.FindStringSubmatch(segment)
	course := coursePattern.FindStringSubmatch(segment)
	if anchor == nil || course == nil {
		return domain.Candidate{}, false
	}

	return domain.Candidate{
		Title:   stripAmp(anchor[2]),
		Course:  stripAmp(course[1]),
		URL:     strings.TrimRight(baseURL, "/") + "/ct/" + anchor[1],
		DueText: dueText,
		Due:     due,
	}, true
}

// stripAmp drops the "amp;" left behind by the page's double-encoded ampersands.
func stripAmp(s string) string {
	return strings.ReplaceAll(s, "amp;", "")
}
