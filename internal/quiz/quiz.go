package quiz

import (
	"strings"

	"github.com/junhyuk/worddrill/internal/models"
)

// Grade scores one batch against the user's answers, keyed by batch
// index. Comparison lowercases both sides and does not trim whitespace,
// matching the drill's long-standing behavior; a missing answer counts
// as an empty string and therefore as incorrect. The incorrect list
// preserves batch order.
//
// Grade is pure: it mutates neither the batch nor the answers, so
// re-grading the same inputs always yields the same result.
func Grade(batch []models.WordEntry, answers map[int]string) (int, []models.IncorrectAnswer) {
	score := 0
	var incorrect []models.IncorrectAnswer
	for i, entry := range batch {
		answer := answers[i]
		if strings.ToLower(answer) == strings.ToLower(entry.Word) {
			score++
			continue
		}
		incorrect = append(incorrect, models.IncorrectAnswer{
			Meaning:       entry.Meaning,
			UserAnswer:    answer,
			CorrectAnswer: entry.Word,
		})
	}
	return score, incorrect
}
