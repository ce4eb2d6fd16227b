package analytics

import (
	"testing"
	"time"

	"github.com/pixil98/go-quest/internal/catalog"
	"github.com/pixil98/go-quest/internal/game"
	"github.com/pixil98/go-quest/internal/storage"
	"github.com/pixil98/go-testutil"
)

type mapStore[T storage.ValidatingSpec] map[string]T

func (m mapStore[T]) Save(id string, o T) error {
	m[id] = o
	return nil
}

func (m mapStore[T]) Get(id string) T {
	return m[id]
}

func (m mapStore[T]) GetAll() map[string]T {
	return m
}

func reportCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	question := catalog.Question{
		NpcName:  "npc",
		Dialogue: "dialogue?",
		Answers: []catalog.Answer{
			{Text: "one", Reward: catalog.Reward{Happiness: 1}, Reason: "r"},
			{Text: "two", Reward: catalog.Reward{Income: 1}, Reason: "r"},
		},
	}
	regions := mapStore[*catalog.Region]{
		"family": {
			Name:        "Дом Начал",
			Description: "d",
			Order:       0,
			Questions:   []catalog.Question{question, question},
		},
		"education": {
			Name:        "Город Знаний",
			Description: "d",
			Order:       1,
			Questions:   []catalog.Question{question, question},
		},
	}
	avatars := mapStore[*catalog.Avatar]{
		"avatar-00": {Category: "Семья", Order: 0},
	}
	personalities := mapStore[*catalog.Personality]{}
	for _, trait := range catalog.Traits {
		personalities[string(trait)] = &catalog.Personality{
			Title:       string(trait),
			Description: "d",
			Color:       "c",
			Gradient:    "g",
		}
	}

	cat, err := catalog.New(regions, avatars, personalities)
	if err != nil {
		t.Fatalf("building test catalog: %v", err)
	}
	return cat
}

func TestNewReport(t *testing.T) {
	cat := reportCatalog(t)
	player := &game.Player{Name: "Вера", Age: 16, Gender: game.GenderFemale, AvatarID: 0}
	answers := map[string][]game.AnswerRecord{
		"family": {
			{Question: "dialogue?", Answer: "Разговором и поддержкой"},
			{Question: "dialogue?", Answer: "Что нравится"},
		},
		"education": {
			{Question: "dialogue?", Answer: "Что перспективно"},
		},
	}
	stats := game.Stats{Happiness: 8, Income: 2, Status: 5}

	record := NewReport(cat, player, answers, stats, "Счастливый Гармонизатор", 95*time.Second)

	testutil.AssertEqual(t, "player", record["player"], any("Вера"))
	testutil.AssertEqual(t, "age", record["age"], any(16))
	testutil.AssertEqual(t, "gender", record["gender"], any("female"))

	testutil.AssertEqual(t, "a1_family", record["a1_family"], any("Разговором и поддержкой"))
	testutil.AssertEqual(t, "a2_family", record["a2_family"], any("Что нравится"))
	testutil.AssertEqual(t, "a1_education", record["a1_education"], any("Что перспективно"))

	// A slot with no committed answer is filled, not omitted
	testutil.AssertEqual(t, "a2_education", record["a2_education"], any("N/A"))

	testutil.AssertEqual(t, "total_happiness", record["total_happiness"], any(8))
	testutil.AssertEqual(t, "total_income", record["total_income"], any(2))
	testutil.AssertEqual(t, "total_status", record["total_status"], any(5))
	testutil.AssertEqual(t, "personality", record["personality"], any("Счастливый Гармонизатор"))
	testutil.AssertEqual(t, "time_spent", record["time_spent"], any("95s"))
}

func TestNewReport_NoAnswers(t *testing.T) {
	cat := reportCatalog(t)
	player := &game.Player{Name: "Вера", Age: 16, Gender: game.GenderFemale, AvatarID: 0}

	record := NewReport(cat, player, nil, game.Stats{}, "Сбалансированный Путник", 0)

	testutil.AssertEqual(t, "a1_family", record["a1_family"], any("N/A"))
	testutil.AssertEqual(t, "a2_family", record["a2_family"], any("N/A"))
	testutil.AssertEqual(t, "a1_education", record["a1_education"], any("N/A"))
	testutil.AssertEqual(t, "a2_education", record["a2_education"], any("N/A"))
	testutil.AssertEqual(t, "time_spent", record["time_spent"], any("0s"))
}
