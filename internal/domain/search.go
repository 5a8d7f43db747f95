package domain

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

const (
	// Scoring weights
	ScoreExactMatch     = 100.0
	ScorePrefixMatch    = 75.0
	ScoreSubstringMatch = 50.0
	ScoreFuzzyMatch     = 25.0

	// Earlier labels of the search key weigh more.
	ScorePositionBonus = 10.0

	// Short names get a small boost so "nav" prefers navidrome over navidrome-backup.
	ScoreShortNameBonus = 5.0
	shortNameLen        = 10

	// Minimum share of query characters found in a label for a fuzzy hit.
	fuzzyThreshold = 0.5
)

// Query is a parsed search box input.
type Query struct {
	Raw      string   // lowercased, trimmed input
	Words    []string // space separated words of the first dotted part
	Suffixes []string // words found after the first dot, empty when HasDot is false
	HasDot   bool     // a dot restricts matching to services with that suffix
}

// Candidate is a service together with its match score.
type Candidate struct {
	Service *Service `json:"service"`
	Score   float64  `json:"score"`
}

// ParseQuery splits user input into words.
//
//	"jelly"        -> Words ["jelly"]
//	"kiwix wiki"   -> Words ["kiwix", "wiki"]
//	"drive.lan"    -> Words ["drive"], Suffixes ["lan"]
func ParseQuery(input string) *Query {
	input = strings.TrimSpace(strings.ToLower(input))
	q := &Query{Raw: input, HasDot: strings.Contains(input, ".")}
	if input == "" {
		return q
	}

	parts := strings.Split(input, ".")
	q.Words = strings.Fields(parts[0])
	for _, part := range parts[1:] {
		q.Suffixes = append(q.Suffixes, strings.Fields(part)...)
	}
	return q
}

// Score rates how well service matches query. Zero means no match.
func Score(query *Query, service *Service) float64 {
	if query == nil || service == nil || len(query.Words) == 0 {
		return 0.0
	}

	labels := strings.Split(service.SearchKey(), ".")
	head := labels[0]

	if len(query.Words) == 1 && !query.HasDot && normalize(query.Words[0]) == normalize(head) {
		return ScoreExactMatch + ScorePositionBonus + ScoreShortNameBonus
	}

	var total float64
	for _, word := range query.Words {
		total += scoreLabel(word, head, 0)
	}
	if total == 0 {
		return 0.0
	}

	if query.HasDot {
		if len(query.Suffixes) == 0 || len(labels) < 2 {
			return 0.0
		}
		var suffixScore float64
		for _, word := range query.Suffixes {
			best := 0.0
			for i, label := range labels[1:] {
				best = math.Max(best, scoreLabel(word, label, i+1))
			}
			suffixScore += best
		}
		if suffixScore == 0 {
			return 0.0
		}
		total += suffixScore
	}

	if len(head) < shortNameLen {
		total += ScoreShortNameBonus
	}
	return total
}

// scoreLabel scores one query word against one dotted label of the search key.
func scoreLabel(word, label string, position int) float64 {
	word = normalize(word)
	label = normalize(label)
	if word == "" || label == "" {
		return 0.0
	}

	switch {
	case word == label:
		return ScoreExactMatch + positionBonus(position)
	case strings.HasPrefix(label, word):
		return ScorePrefixMatch + positionBonus(position)
	case strings.Contains(label, word):
		idx := strings.Index(label, word)
		return ScoreSubstringMatch + ScorePositionBonus*(1.0-float64(idx)/float64(len(label)))
	}

	if sim := similarity(word, label); sim > fuzzyThreshold {
		return ScoreFuzzyMatch * sim
	}
	return 0.0
}

func positionBonus(position int) float64 {
	return ScorePositionBonus * math.Exp(-float64(position)*0.3)
}

// similarity is the share of runes of a that also occur in b.
func similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0.0
	}
	matches, total := 0, 0
	for _, r := range a {
		total++
		if strings.ContainsRune(b, r) {
			matches++
		}
	}
	return float64(matches) / float64(total)
}

func normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, s)
}

// RankCandidates returns matching services, best first. Ties are broken by name.
func RankCandidates(query *Query, services []*Service) []*Candidate {
	candidates := make([]*Candidate, 0, len(services))
	for _, svc := range services {
		if score := Score(query, svc); score > 0 {
			candidates = append(candidates, &Candidate{Service: svc, Score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Service.Name < candidates[j].Service.Name
	})
	return candidates
}

// FindBestMatch returns the top ranked service, or nil.
func FindBestMatch(query *Query, services []*Service) *Service {
	candidates := RankCandidates(query, services)
	if len(candidates) == 0 {
		return nil
	}
	return candidates[0].Service
}
