package label

import (
	"sort"
	"strings"
)

// Match pairs a destination with the score it earned against a query.
type Match struct {
	Destination *Destination
	Score       float64
}

// MatchScore computes the composite score between dest and the free-text
// query terms in lang. For each term the engine scans the destination's tags,
// resolves each tag's synonyms for lang (no language fallback), and takes the
// best candidate: relevance doubled on an exact synonym match, relevance as-is
// on a substring match. Within one tag the first matching synonym wins and the
// rest are skipped.
//
// The final score is 0.4*coverage + 0.6*average, where coverage is the
// fraction of terms that matched anything and average is the mean best score
// over all terms. The exact-match doubling means the result is not bounded by
// 1.0; callers filtering on a threshold must treat it as open-ended.
func (m *Manager) MatchScore(dest *Destination, queries []string, lang Language) float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.matchScoreLocked(dest, queries, lang)
}

func (m *Manager) matchScoreLocked(dest *Destination, queries []string, lang Language) float64 {
	if dest == nil || len(queries) == 0 || len(dest.Tags) == 0 {
		return 0.0
	}

	totalScore := 0.0
	matched := 0

	for _, query := range queries {
		lowered := strings.ToLower(query)
		best := 0.0

		for tagID, relevance := range dest.Tags {
			tag, ok := m.tags[tagID]
			if !ok {
				// Dangling tag references are ignorable, not erroneous.
				continue
			}
			for _, syn := range tag.AllNames(lang) {
				name := strings.ToLower(syn)
				if strings.Contains(name, lowered) {
					score := relevance
					if lowered == name {
						score = relevance * 2.0
					}
					if score > best {
						best = score
					}
					break
				}
			}
		}

		totalScore += best
		if best > 0 {
			matched++
		}
	}

	coverage := float64(matched) / float64(len(queries))
	average := totalScore / float64(len(queries))
	return coverage*0.4 + average*0.6
}

// SearchDestinationsByTags scores every stored destination against the query
// terms, keeps those scoring at least minScore, and returns them ordered by
// descending score, truncated to limit. The full store is scanned on each
// call; there is no inverted index over destinations.
func (m *Manager) SearchDestinationsByTags(queries []string, lang Language, minScore float64, limit int) []Match {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var results []Match
	for _, dest := range m.destinations {
		score := m.matchScoreLocked(dest, queries, lang)
		if score >= minScore {
			results = append(results, Match{Destination: dest, Score: score})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}
