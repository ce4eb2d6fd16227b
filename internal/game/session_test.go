package game

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pixil98/go-quest/internal/catalog"
	"github.com/pixil98/go-quest/internal/storage"
	"github.com/pixil98/go-testutil"
)

// mapStore is an in-memory Storer for building test catalogs.
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

func testQuestion(n int) catalog.Question {
	return catalog.Question{
		NpcName:  fmt.Sprintf("npc-%d", n),
		Dialogue: fmt.Sprintf("question %d?", n),
		Answers: []catalog.Answer{
			{
				Text:   "kind answer",
				Reward: catalog.Reward{Happiness: 2, Status: 1},
				Reason: "warmth pays off",
			},
			{
				Text:   "ambitious answer",
				Reward: catalog.Reward{Income: 2, Status: 1},
				Reason: "ambition pays off",
			},
		},
	}
}

func testRegion(order int) *catalog.Region {
	return &catalog.Region{
		Name:        fmt.Sprintf("Region %d", order),
		Description: fmt.Sprintf("stage %d of the journey", order),
		Order:       order,
		Questions:   []catalog.Question{testQuestion(0), testQuestion(1)},
	}
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	regions := mapStore[*catalog.Region]{
		"childhood": testRegion(0),
		"school":    testRegion(1),
		"work":      testRegion(2),
	}
	avatars := mapStore[*catalog.Avatar]{
		"avatar-00": {Category: "Семья", Order: 0},
		"avatar-01": {Category: "Наука", Order: 1},
	}
	personalities := mapStore[*catalog.Personality]{}
	for _, trait := range catalog.Traits {
		personalities[string(trait)] = &catalog.Personality{
			Title:       string(trait),
			Description: "profile",
			Color:       "text-slate-600",
			Gradient:    "from-slate-500 to-slate-700",
		}
	}

	cat, err := catalog.New(regions, avatars, personalities)
	if err != nil {
		t.Fatalf("building test catalog: %v", err)
	}
	return cat
}

func testPlayer() *Player {
	return &Player{Name: "Миша", Age: 15, Gender: GenderMale, AvatarID: 1}
}

// playRegion walks a region attempt start to finish, always picking the
// answer at index pick.
func playRegion(t *testing.T, s *Session, id string, pick int) {
	t.Helper()

	if !s.SelectRegion(id) {
		t.Fatalf("selecting region %s", id)
	}
	if !s.ConfirmIntro() {
		t.Fatalf("confirming intro for %s", id)
	}
	for q := 0; q < catalog.QuestionsPerRegion; q++ {
		if !s.ChooseAnswer(pick) {
			t.Fatalf("choosing answer %d on question %d of %s", pick, q, id)
		}
		if !s.AcknowledgeFeedback() {
			t.Fatalf("acknowledging feedback on question %d of %s", q, id)
		}
	}
	if !s.ConfirmSummary() {
		t.Fatalf("confirming summary for %s", id)
	}
}

func TestSession_StartsAtCharacterSetup(t *testing.T) {
	s := NewSession(testCatalog(t))

	testutil.AssertEqual(t, "screen", s.Screen(), ScreenCharacterSetup)
	testutil.AssertEqual(t, "stats", s.Stats(), Stats{})
	testutil.AssertEqual(t, "completed", s.CompletedCount(), 0)
}

func TestSession_SubmitCharacter(t *testing.T) {
	s := NewSession(testCatalog(t))

	err := s.SubmitCharacter(testPlayer())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "screen", s.Screen(), ScreenMap)
	testutil.AssertEqual(t, "player name", s.Player().Name, "Миша")
}

func TestSession_SubmitCharacter_Invalid(t *testing.T) {
	s := NewSession(testCatalog(t))

	err := s.SubmitCharacter(&Player{Name: "", Age: 15, Gender: GenderMale})
	if err == nil {
		t.Fatal("expected validation error")
	}

	testutil.AssertEqual(t, "screen", s.Screen(), ScreenCharacterSetup)
	if s.Player() != nil {
		t.Error("invalid submission must not set the player")
	}
}

func TestSession_SubmitCharacter_WrongScreen(t *testing.T) {
	s := NewSession(testCatalog(t))
	if err := s.SubmitCharacter(testPlayer()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := s.SubmitCharacter(testPlayer())
	testutil.AssertEqual(t, "error", err, ErrWrongScreen, cmpopts.EquateErrors())
}

func TestSession_MapView_LockStates(t *testing.T) {
	s := NewSession(testCatalog(t))
	if err := s.SubmitCharacter(testPlayer()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	views := s.MapView()
	testutil.AssertEqual(t, "region count", len(views), 3)
	testutil.AssertEqual(t, "first next", views[0].Next, true)
	testutil.AssertEqual(t, "second locked", views[1].Locked, true)
	testutil.AssertEqual(t, "third locked", views[2].Locked, true)

	playRegion(t, s, views[0].ID, 0)

	views = s.MapView()
	testutil.AssertEqual(t, "first completed", views[0].Completed, true)
	testutil.AssertEqual(t, "second next", views[1].Next, true)
	testutil.AssertEqual(t, "third still locked", views[2].Locked, true)
}

func TestSession_SelectRegion_Gating(t *testing.T) {
	s := NewSession(testCatalog(t))
	if err := s.SubmitCharacter(testPlayer()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	views := s.MapView()

	testutil.AssertEqual(t, "locked region", s.SelectRegion(views[1].ID), false)
	testutil.AssertEqual(t, "unknown region", s.SelectRegion("nowhere"), false)
	testutil.AssertEqual(t, "screen unchanged", s.Screen(), ScreenMap)

	playRegion(t, s, views[0].ID, 0)

	testutil.AssertEqual(t, "completed region", s.SelectRegion(views[0].ID), false)
	testutil.AssertEqual(t, "newly unlocked", s.SelectRegion(views[1].ID), true)
}

func TestSession_RegionAttempt_CommitsOnSummary(t *testing.T) {
	s := NewSession(testCatalog(t))
	if err := s.SubmitCharacter(testPlayer()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	id := s.MapView()[0].ID

	if !s.SelectRegion(id) {
		t.Fatal("selecting region")
	}
	if !s.ConfirmIntro() {
		t.Fatal("confirming intro")
	}
	if !s.ChooseAnswer(0) {
		t.Fatal("choosing answer")
	}

	// Rewards buffer in the attempt, not the playthrough
	testutil.AssertEqual(t, "stats before commit", s.Stats(), Stats{})
	testutil.AssertEqual(t, "buffered rewards", s.AttemptRewards(), Stats{Happiness: 2, Status: 1})

	if !s.AcknowledgeFeedback() {
		t.Fatal("acknowledging feedback")
	}
	if !s.ChooseAnswer(1) {
		t.Fatal("choosing second answer")
	}
	if !s.AcknowledgeFeedback() {
		t.Fatal("acknowledging second feedback")
	}
	testutil.AssertEqual(t, "stage", s.Stage(), StageSummary)

	if !s.ConfirmSummary() {
		t.Fatal("confirming summary")
	}

	testutil.AssertEqual(t, "screen", s.Screen(), ScreenMap)
	testutil.AssertEqual(t, "stats after commit", s.Stats(), Stats{Happiness: 2, Income: 2, Status: 2})
	testutil.AssertEqual(t, "completed count", s.CompletedCount(), 1)
	testutil.AssertEqual(t, "completed id", s.Completed()[0], id)

	records := s.AnswerLog()[id]
	testutil.AssertEqual(t, "record count", len(records), 2)
	testutil.AssertEqual(t, "first answer", records[0].Answer, "kind answer")
	testutil.AssertEqual(t, "second answer", records[1].Answer, "ambitious answer")
}

func TestSession_LeaveRegion_DiscardsAttempt(t *testing.T) {
	s := NewSession(testCatalog(t))
	if err := s.SubmitCharacter(testPlayer()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	id := s.MapView()[0].ID

	if !s.SelectRegion(id) {
		t.Fatal("selecting region")
	}
	if !s.ConfirmIntro() {
		t.Fatal("confirming intro")
	}
	if !s.ChooseAnswer(0) {
		t.Fatal("choosing answer")
	}
	if !s.AcknowledgeFeedback() {
		t.Fatal("acknowledging feedback")
	}

	if !s.LeaveRegion() {
		t.Fatal("leaving region")
	}

	testutil.AssertEqual(t, "screen", s.Screen(), ScreenMap)
	testutil.AssertEqual(t, "stats untouched", s.Stats(), Stats{})
	testutil.AssertEqual(t, "not completed", s.CompletedCount(), 0)
	testutil.AssertEqual(t, "no answer log", len(s.AnswerLog()), 0)

	// Re-entering starts the region over
	if !s.SelectRegion(id) {
		t.Fatal("re-selecting region")
	}
	testutil.AssertEqual(t, "stage reset", s.Stage(), StageIntro)
	testutil.AssertEqual(t, "rewards reset", s.AttemptRewards(), Stats{})
}

func TestSession_LeaveRegion_BlockedAfterSummary(t *testing.T) {
	s := NewSession(testCatalog(t))
	if err := s.SubmitCharacter(testPlayer()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !s.SelectRegion(s.MapView()[0].ID) {
		t.Fatal("selecting region")
	}
	if !s.ConfirmIntro() {
		t.Fatal("confirming intro")
	}
	for q := 0; q < catalog.QuestionsPerRegion; q++ {
		if !s.ChooseAnswer(0) {
			t.Fatal("choosing answer")
		}
		if !s.AcknowledgeFeedback() {
			t.Fatal("acknowledging feedback")
		}
	}

	testutil.AssertEqual(t, "leave from summary", s.LeaveRegion(), false)
	testutil.AssertEqual(t, "stage", s.Stage(), StageSummary)
}

func TestSession_InvalidTransitionsAreNoOps(t *testing.T) {
	s := NewSession(testCatalog(t))
	if err := s.SubmitCharacter(testPlayer()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Region operations outside a region attempt
	testutil.AssertEqual(t, "intro on map", s.ConfirmIntro(), false)
	testutil.AssertEqual(t, "answer on map", s.ChooseAnswer(0), false)
	testutil.AssertEqual(t, "feedback on map", s.AcknowledgeFeedback(), false)
	testutil.AssertEqual(t, "summary on map", s.ConfirmSummary(), false)
	testutil.AssertEqual(t, "leave on map", s.LeaveRegion(), false)
	testutil.AssertEqual(t, "restart on map", s.Restart(), false)

	if !s.SelectRegion(s.MapView()[0].ID) {
		t.Fatal("selecting region")
	}

	// Stage order is enforced within the attempt
	testutil.AssertEqual(t, "answer before intro", s.ChooseAnswer(0), false)
	testutil.AssertEqual(t, "feedback before intro", s.AcknowledgeFeedback(), false)
	testutil.AssertEqual(t, "summary before intro", s.ConfirmSummary(), false)

	if !s.ConfirmIntro() {
		t.Fatal("confirming intro")
	}
	testutil.AssertEqual(t, "intro twice", s.ConfirmIntro(), false)
	testutil.AssertEqual(t, "answer out of range", s.ChooseAnswer(5), false)
	testutil.AssertEqual(t, "negative answer", s.ChooseAnswer(-1), false)
}

func TestSession_Finish_RequiresAllRegions(t *testing.T) {
	s := NewSession(testCatalog(t))
	if err := s.SubmitCharacter(testPlayer()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "finish at start", s.Finish(), false)

	views := s.MapView()
	playRegion(t, s, views[0].ID, 0)
	playRegion(t, s, views[1].ID, 0)

	testutil.AssertEqual(t, "finish with one left", s.Finish(), false)

	playRegion(t, s, views[2].ID, 0)

	testutil.AssertEqual(t, "all completed", s.AllCompleted(), true)
	testutil.AssertEqual(t, "finish", s.Finish(), true)
	testutil.AssertEqual(t, "screen", s.Screen(), ScreenResults)

	// Only the single transition succeeds
	testutil.AssertEqual(t, "finish twice", s.Finish(), false)
}

func TestSession_Restart(t *testing.T) {
	s := NewSession(testCatalog(t))
	if err := s.SubmitCharacter(testPlayer()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, v := range s.MapView() {
		playRegion(t, s, v.ID, 1)
	}
	if !s.Finish() {
		t.Fatal("finishing")
	}

	if !s.Restart() {
		t.Fatal("restarting")
	}

	testutil.AssertEqual(t, "screen", s.Screen(), ScreenCharacterSetup)
	testutil.AssertEqual(t, "stats", s.Stats(), Stats{})
	testutil.AssertEqual(t, "completed", s.CompletedCount(), 0)
	testutil.AssertEqual(t, "answer log", len(s.AnswerLog()), 0)
	if s.Player() != nil {
		t.Error("restart must discard the player")
	}
}

func TestSession_Elapsed(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	current := base
	s := NewSession(testCatalog(t), WithClock(func() time.Time { return current }))

	current = base.Add(90 * time.Second)
	testutil.AssertEqual(t, "elapsed", s.Elapsed(), 90*time.Second)

	// Restart resets the start time
	if err := s.SubmitCharacter(testPlayer()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, v := range s.MapView() {
		playRegion(t, s, v.ID, 0)
	}
	if !s.Finish() {
		t.Fatal("finishing")
	}
	if !s.Restart() {
		t.Fatal("restarting")
	}
	current = current.Add(30 * time.Second)
	testutil.AssertEqual(t, "elapsed after restart", s.Elapsed(), 30*time.Second)
}

func TestSession_FullPlaythroughClassification(t *testing.T) {
	s := NewSession(testCatalog(t))
	if err := s.SubmitCharacter(testPlayer()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Always picking the second answer yields income 12, status 6, happiness 0
	for _, v := range s.MapView() {
		playRegion(t, s, v.ID, 1)
	}
	if !s.Finish() {
		t.Fatal("finishing")
	}

	testutil.AssertEqual(t, "stats", s.Stats(), Stats{Happiness: 0, Income: 12, Status: 6})
	testutil.AssertEqual(t, "trait", Classify(s.Stats()), catalog.TraitIncome)
}
