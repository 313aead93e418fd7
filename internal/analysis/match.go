package analysis

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

var nonLetters = regexp.MustCompile(`[^a-z\s]+`)

// tokenize lowercases the text, strips everything but letters, and drops
// stopwords.
func tokenize(text string) []string {
	text = nonLetters.ReplaceAllString(strings.ToLower(text), " ")

	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, word := range fields {
		if stopwords[word] || len(word) < 2 {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}

// termCounts builds a term frequency map from tokens
func termCounts(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, token := range tokens {
		counts[token]++
	}
	return counts
}

// CosineSimilarity computes the cosine similarity between the term frequency
// vectors of two texts. Returns a value in [0.0, 1.0].
func CosineSimilarity(a, b string) float64 {
	countsA := termCounts(tokenize(a))
	countsB := termCounts(tokenize(b))

	var dot, normA, normB float64
	for term, countA := range countsA {
		normA += float64(countA * countA)
		if countB, ok := countsB[term]; ok {
			dot += float64(countA * countB)
		}
	}
	for _, countB := range countsB {
		normB += float64(countB * countB)
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// TopKeywords returns the n most frequent non-stopword terms in the text.
// Ties break alphabetically so the result is deterministic.
func TopKeywords(text string, n int) []string {
	counts := termCounts(tokenize(text))

	keywords := make([]string, 0, len(counts))
	for term := range counts {
		keywords = append(keywords, term)
	}
	sort.Slice(keywords, func(i, j int) bool {
		if counts[keywords[i]] != counts[keywords[j]] {
			return counts[keywords[i]] > counts[keywords[j]]
		}
		return keywords[i] < keywords[j]
	})

	if len(keywords) > n {
		keywords = keywords[:n]
	}
	return keywords
}

// MissingKeywords returns the top job description keywords that do not appear
// among the resume's keywords, in job keyword rank order.
func MissingKeywords(jobText, resumeText string) []string {
	jobKeywords := TopKeywords(jobText, 30)
	resumeKeywords := TopKeywords(resumeText, 50)

	resumeSet := make(map[string]bool, len(resumeKeywords))
	for _, keyword := range resumeKeywords {
		resumeSet[keyword] = true
	}

	missing := make([]string, 0, len(jobKeywords))
	for _, keyword := range jobKeywords {
		if !resumeSet[keyword] {
			missing = append(missing, keyword)
		}
	}
	return missing
}

// BuildMatchReport scores the lexical overlap between the raw resume text and
// the job description and lists job keywords the resume is missing.
func BuildMatchReport(resumeText, jobText string) *types.MatchReport {
	return &types.MatchReport{
		Score:         CosineSimilarity(resumeText, jobText),
		MissingSkills: MissingKeywords(jobText, resumeText),
	}
}
