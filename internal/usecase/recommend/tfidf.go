package recommend

import (
	"math"
	"strings"
	"unicode"
)

// tokenize lowercases text and splits it on any run of non-letter,
// non-digit characters.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// scoreDocuments scores every document's relevance to the query using
// term-frequency/inverse-document-frequency weighting over the documents
// themselves as the corpus. The result is index-aligned with docs.
//
// For each query term: tf is the raw term count in the document and
// idf(term) = ln(N / (1 + df(term))) + 1, where df is the number of
// documents containing the term. Per-document scores sum over query
// terms. An empty or whitespace-only query yields all zeros. Pure
// function of (docs, query).
func scoreDocuments(docs []string, query string) []float64 {
	scores := make([]float64, len(docs))

	queryTerms := tokenize(query)
	if len(queryTerms) == 0 || len(docs) == 0 {
		return scores
	}

	// Term counts per document and document frequency per term.
	termCounts := make([]map[string]int, len(docs))
	docFreq := make(map[string]int)
	for i, doc := range docs {
		counts := make(map[string]int)
		for _, term := range tokenize(doc) {
			counts[term]++
		}
		termCounts[i] = counts
		for term := range counts {
			docFreq[term]++
		}
	}

	n := float64(len(docs))
	for _, term := range queryTerms {
		idf := math.Log(n/(1+float64(docFreq[term]))) + 1
		for i, counts := range termCounts {
			if tf := counts[term]; tf > 0 {
				scores[i] += float64(tf) * idf
			}
		}
	}

	return scores
}
