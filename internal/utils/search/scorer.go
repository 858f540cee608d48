package search

import (
	"strings"
	"unicode/utf8"

	"github.com/SscSPs/budget_query_app/internal/core/domain"
)

// Scoring bands, best match first. A late substring match can score below the
// character-overlap band; that overlap in the bands is intentional.
const (
	exactScore         = 100.0
	substringBase      = 80.0
	substringPenalty   = 0.5
	overlapWeight      = 50.0
	overlapThreshold   = 0.5
	allWordsScore      = 40.0
	partialWordsWeight = 20.0
)

// ScoreField rates how well field matches phrase. Both inputs must already be
// lower-cased and phrase must be non-empty. Strategies are tried in order and
// the first that applies wins:
//
//  1. exact equality scores 100
//  2. a contiguous substring scores 80 minus 0.5 per character of offset,
//     so earlier occurrences rank higher
//  3. if more than half of the phrase's distinct characters occur anywhere in
//     the field, score the overlap ratio times 50
//  4. otherwise phrase words found inside field words score 40 when all match,
//     or 20 weighted by the matched fraction when only some do
//
// A field with nothing in common with the phrase scores 0.
func ScoreField(field, phrase string) float64 {
	if field == phrase {
		return exactScore
	}

	if idx := strings.Index(field, phrase); idx >= 0 {
		position := utf8.RuneCountInString(field[:idx])
		return substringBase - substringPenalty*float64(position)
	}

	if ratio := charOverlapRatio(field, phrase); ratio > overlapThreshold {
		return ratio * overlapWeight
	}

	return wordSubsetScore(field, phrase)
}

// charOverlapRatio returns the fraction of distinct characters in phrase that
// appear anywhere in field.
func charOverlapRatio(field, phrase string) float64 {
	distinct := make(map[rune]struct{})
	for _, r := range phrase {
		distinct[r] = struct{}{}
	}
	if len(distinct) == 0 {
		return 0
	}

	shared := 0
	for r := range distinct {
		if strings.ContainsRune(field, r) {
			shared++
		}
	}
	return float64(shared) / float64(len(distinct))
}

// wordSubsetScore checks each whitespace-separated phrase word against the
// field's words, counting a word as matched when any field word contains it.
func wordSubsetScore(field, phrase string) float64 {
	phraseWords := strings.Fields(phrase)
	if len(phraseWords) == 0 {
		return 0
	}
	fieldWords := strings.Fields(field)

	matched := 0
	for _, pw := range phraseWords {
		for _, fw := range fieldWords {
			if strings.Contains(fw, pw) {
				matched++
				break
			}
		}
	}

	if matched == len(phraseWords) {
		return allWordsScore
	}
	return partialWordsWeight * float64(matched) / float64(len(phraseWords))
}

// ScoreTransaction rates txn's memo and payee against the lower-cased,
// non-empty phrase and combines the two by maximum. Payee text is skipped for
// transfer-linked transactions, whose payee just names the counterpart
// account. The second return is false when the transaction should not appear
// in search results at all.
func ScoreTransaction(txn domain.Transaction, phrase string) (domain.SearchResult, bool) {
	memoScore := ScoreField(strings.ToLower(txn.Memo), phrase)

	var payeeScore float64
	if !txn.IsTransfer() {
		payeeScore = ScoreField(strings.ToLower(txn.PayeeName), phrase)
	}

	best := memoScore
	if payeeScore > best {
		best = payeeScore
	}
	if best <= 0 {
		return domain.SearchResult{}, false
	}

	matched := domain.MatchedFieldMemo
	switch {
	case memoScore > 0 && payeeScore > 0:
		matched = domain.MatchedFieldBoth
	case payeeScore > 0:
		matched = domain.MatchedFieldPayee
	}

	return domain.SearchResult{
		Transaction:  txn,
		MatchedField: matched,
		Score:        best,
	}, true
}
