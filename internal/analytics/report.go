package analytics

import (
	"fmt"
	"time"

	"github.com/pixil98/go-quest/internal/catalog"
	"github.com/pixil98/go-quest/internal/game"
)

// missingAnswer fills report slots for questions that were never answered.
// Only reachable if the catalog changes between commit and report.
const missingAnswer = "N/A"

// NewReport flattens a finished playthrough into the record the reporting
// endpoint expects: player identity, one answer-text slot per catalog
// question, final totals, personality title, and the elapsed time string.
func NewReport(
	cat *catalog.Catalog,
	player *game.Player,
	answers map[string][]game.AnswerRecord,
	stats game.Stats,
	personality string,
	elapsed time.Duration,
) map[string]any {
	record := map[string]any{
		"player": player.Name,
		"age":    player.Age,
		"gender": player.Gender.String(),
	}

	for _, entry := range cat.Regions() {
		regionAnswers := answers[entry.ID]
		for i := 0; i < catalog.QuestionsPerRegion; i++ {
			text := missingAnswer
			if i < len(regionAnswers) {
				text = regionAnswers[i].Answer
			}
			record[fmt.Sprintf("a%d_%s", i+1, entry.ID)] = text
		}
	}

	record["total_happiness"] = stats.Happiness
	record["total_income"] = stats.Income
	record["total_status"] = stats.Status
	record["personality"] = personality
	record["time_spent"] = fmt.Sprintf("%ds", int(elapsed.Seconds()))

	return record
}
