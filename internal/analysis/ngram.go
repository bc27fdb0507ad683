package analysis

import (
	"slices"
	"sort"
	"strings"
)

// maxOccurrences caps the sample positions kept per n-gram.
const maxOccurrences = 10

// NGram is a move sequence that occurs more than once.
type NGram struct {
	N           int               `json:"n"`
	Sequence    []string          `json:"sequence"`
	Count       int               `json:"count"`
	Occurrences []NGramOccurrence `json:"occurrences,omitempty"`
}

// String returns the sequence in notation.
func (g NGram) String() string {
	return strings.Join(g.Sequence, " ")
}

// NGramOccurrence is where an n-gram was found.
type NGramOccurrence struct {
	SessionID  string `json:"session_id,omitempty"`
	StartIndex int    `json:"start_index"`
	TsMs       int64  `json:"ts_ms"`
}

// NGramReport holds the most frequent n-grams keyed by length.
type NGramReport struct {
	TopNGrams map[int][]NGram `json:"top_ngrams"`
}

// Lengths returns the n-gram lengths present, ascending.
func (r *NGramReport) Lengths() []int {
	ns := make([]int, 0, len(r.TopNGrams))
	for n := range r.TopNGrams {
		ns = append(ns, n)
	}
	sort.Ints(ns)
	return ns
}

// RollingHash is a Rabin-Karp hash over a fixed window of tokens.
type RollingHash struct {
	base   uint64
	hash   uint64
	pow    uint64 // base^(n-1)
	window []uint32
	n      int
}

// NewRollingHash creates a rolling hash for window size n.
func NewRollingHash(n int) *RollingHash {
	rh := &RollingHash{
		base:   1_000_003,
		n:      n,
		window: make([]uint32, 0, n),
	}
	rh.pow = 1
	for i := 0; i < n-1; i++ {
		rh.pow *= rh.base
	}
	return rh
}

// Roll appends a token, dropping the oldest once the window is full.
func (rh *RollingHash) Roll(token uint32) {
	if len(rh.window) < rh.n {
		rh.window = append(rh.window, token)
		rh.hash = rh.hash*rh.base + uint64(token)
		return
	}

	old := rh.window[0]
	rh.hash = (rh.hash-uint64(old)*rh.pow)*rh.base + uint64(token)
	copy(rh.window, rh.window[1:])
	rh.window[rh.n-1] = token
}

// Hash returns the current hash value.
func (rh *RollingHash) Hash() uint64 {
	return rh.hash
}

// Window returns a copy of the current window.
func (rh *RollingHash) Window() []uint32 {
	return slices.Clone(rh.window)
}

// Ready reports whether the window is full.
func (rh *RollingHash) Ready() bool {
	return len(rh.window) == rh.n
}

type ngramEntry struct {
	tokens      []uint32
	count       int
	occurrences []NGramOccurrence
}

// tokenize interns the notation of every move. Moves with equal notation
// share a token.
func tokenize(turns []Turn) ([]uint32, []string) {
	ids := make(map[string]uint32)
	var names []string
	tokens := make([]uint32, len(turns))
	for i, t := range turns {
		name := t.Move.Notation()
		id, ok := ids[name]
		if !ok {
			id = uint32(len(names))
			ids[name] = id
			names = append(names, name)
		}
		tokens[i] = id
	}
	return tokens, names
}

// MineNGrams finds the topK most frequent repeated n-grams for each n in
// [minN, maxN]. Ties keep the sequence that occurred first.
func MineNGrams(turns []Turn, minN, maxN, topK int) *NGramReport {
	report := &NGramReport{TopNGrams: make(map[int][]NGram)}
	if minN < 1 || len(turns) < minN {
		return report
	}

	tokens, names := tokenize(turns)
	for n := minN; n <= maxN && n <= len(turns); n++ {
		if ngrams := mineN(tokens, names, turns, n, topK); len(ngrams) > 0 {
			report.TopNGrams[n] = ngrams
		}
	}
	return report
}

func mineN(tokens []uint32, names []string, turns []Turn, n, topK int) []NGram {
	counts := make(map[uint64][]*ngramEntry)
	var order []*ngramEntry
	rh := NewRollingHash(n)

	for i, tok := range tokens {
		rh.Roll(tok)
		if !rh.Ready() {
			continue
		}
		start := i - n + 1
		occ := NGramOccurrence{StartIndex: start, TsMs: turns[start].TsMs}

		hash := rh.Hash()
		var found *ngramEntry
		for _, e := range counts[hash] {
			if slices.Equal(e.tokens, rh.window) {
				found = e
				break
			}
		}
		if found == nil {
			found = &ngramEntry{tokens: rh.Window()}
			counts[hash] = append(counts[hash], found)
			order = append(order, found)
		}
		found.count++
		if len(found.occurrences) < maxOccurrences {
			found.occurrences = append(found.occurrences, occ)
		}
	}

	var repeated []*ngramEntry
	for _, e := range order {
		if e.count >= 2 {
			repeated = append(repeated, e)
		}
	}
	sort.SliceStable(repeated, func(i, j int) bool {
		return repeated[i].count > repeated[j].count
	})
	if len(repeated) > topK {
		repeated = repeated[:topK]
	}

	result := make([]NGram, len(repeated))
	for i, e := range repeated {
		seq := make([]string, len(e.tokens))
		for j, tok := range e.tokens {
			seq[j] = names[tok]
		}
		result[i] = NGram{N: n, Sequence: seq, Count: e.count, Occurrences: e.occurrences}
	}
	return result
}

// MergeReports sums the n-gram counts of several sessions, keyed by session
// ID, and keeps the topK per length.
func MergeReports(reports map[string]*NGramReport, topK int) *NGramReport {
	merged := &NGramReport{TopNGrams: make(map[int][]NGram)}

	ids := make([]string, 0, len(reports))
	for id := range reports {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	byLen := make(map[int]map[string]*NGram)
	keys := make(map[int][]string)
	for _, id := range ids {
		for n, ngrams := range reports[id].TopNGrams {
			if byLen[n] == nil {
				byLen[n] = make(map[string]*NGram)
			}
			for _, g := range ngrams {
				key := g.String()
				agg, ok := byLen[n][key]
				if !ok {
					agg = &NGram{N: n, Sequence: g.Sequence}
					byLen[n][key] = agg
					keys[n] = append(keys[n], key)
				}
				agg.Count += g.Count
				for _, occ := range g.Occurrences {
					if len(agg.Occurrences) < maxOccurrences {
						occ.SessionID = id
						agg.Occurrences = append(agg.Occurrences, occ)
					}
				}
			}
		}
	}

	for n, ks := range keys {
		list := make([]NGram, len(ks))
		for i, k := range ks {
			list[i] = *byLen[n][k]
		}
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Count > list[j].Count
		})
		if len(list) > topK {
			list = list[:topK]
		}
		merged.TopNGrams[n] = list
	}
	return merged
}
