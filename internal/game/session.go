package game

import (
	"time"

	"github.com/pixil98/go-quest/internal/catalog"
)

// Screen is the top level of the progression machine.
type Screen int

const (
	ScreenCharacterSetup Screen = iota
	ScreenMap
	ScreenRegion
	ScreenResults
)

func (s Screen) String() string {
	switch s {
	case ScreenCharacterSetup:
		return "character-setup"
	case ScreenMap:
		return "map"
	case ScreenRegion:
		return "region"
	case ScreenResults:
		return "results"
	default:
		return "unknown"
	}
}

// Stage is the sub-machine a region attempt walks through.
type Stage int

const (
	StageIntro Stage = iota
	StageQuestion
	StageFeedback
	StageSummary
)

// AnswerRecord is one answered question, kept for the final report.
type AnswerRecord struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// regionAttempt buffers all state of the region currently being played.
// Nothing in it touches the playthrough until the summary is confirmed;
// abandoning the region throws the whole attempt away.
type regionAttempt struct {
	id       string
	region   *catalog.Region
	stage    Stage
	question int
	last     *catalog.Answer
	rewards  Stats
	records  []AnswerRecord
}

type SessionOpt func(*Session)

// WithClock overrides the session's time source.
func WithClock(now func() time.Time) SessionOpt {
	return func(s *Session) {
		s.now = now
	}
}

// Session is the single mutable aggregate of one playthrough. All
// transitions are synchronous; invalid ones are no-ops, reported through
// the boolean return so callers can re-prompt. Sessions are not safe for
// concurrent use - each connection owns exactly one.
type Session struct {
	catalog *catalog.Catalog
	now     func() time.Time

	screen    Screen
	player    *Player
	stats     Stats
	completed []string
	attempt   *regionAttempt
	answers   map[string][]AnswerRecord
	startedAt time.Time
}

func NewSession(cat *catalog.Catalog, opts ...SessionOpt) *Session {
	s := &Session{
		catalog: cat,
		now:     time.Now,
		answers: map[string][]AnswerRecord{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.startedAt = s.now()
	return s
}

func (s *Session) Screen() Screen {
	return s.screen
}

func (s *Session) Player() *Player {
	return s.player
}

func (s *Session) Stats() Stats {
	return s.stats
}

// Completed returns the region ids completed so far, in completion order.
func (s *Session) Completed() []string {
	out := make([]string, len(s.completed))
	copy(out, s.completed)
	return out
}

func (s *Session) CompletedCount() int {
	return len(s.completed)
}

// AllCompleted reports whether every catalog region has been completed.
func (s *Session) AllCompleted() bool {
	return len(s.completed) == s.catalog.RegionCount()
}

// Elapsed is the wall-clock time since the playthrough started.
func (s *Session) Elapsed() time.Duration {
	return s.now().Sub(s.startedAt)
}

// AnswerLog returns a copy of the per-region answer records committed so
// far.
func (s *Session) AnswerLog() map[string][]AnswerRecord {
	out := make(map[string][]AnswerRecord, len(s.answers))
	for id, records := range s.answers {
		cp := make([]AnswerRecord, len(records))
		copy(cp, records)
		out[id] = cp
	}
	return out
}

// SubmitCharacter validates the persona and moves to the map. An invalid
// submission leaves the session untouched so the caller can re-prompt.
func (s *Session) SubmitCharacter(p *Player) error {
	if s.screen != ScreenCharacterSetup {
		return ErrWrongScreen
	}
	if err := p.Validate(s.catalog.AvatarCount()); err != nil {
		return err
	}

	s.player = p
	s.screen = ScreenMap
	return nil
}

func (s *Session) isCompleted(id string) bool {
	for _, c := range s.completed {
		if c == id {
			return true
		}
	}
	return false
}

// unlocked reports whether every region before idx in catalog order has
// been completed. The first region is always unlocked.
func (s *Session) unlocked(idx int) bool {
	for i, entry := range s.catalog.Regions() {
		if i >= idx {
			break
		}
		if !s.isCompleted(entry.ID) {
			return false
		}
	}
	return true
}

// RegionView is the read-only map slice handed to the presentation layer.
type RegionView struct {
	ID        string
	Region    *catalog.Region
	Completed bool
	Locked    bool
	Next      bool
}

// MapView returns every region with its computed lock state.
func (s *Session) MapView() []RegionView {
	entries := s.catalog.Regions()
	views := make([]RegionView, len(entries))
	for i, entry := range entries {
		completed := s.isCompleted(entry.ID)
		locked := !completed && !s.unlocked(i)
		views[i] = RegionView{
			ID:        entry.ID,
			Region:    entry.Region,
			Completed: completed,
			Locked:    locked,
			Next:      !completed && !locked,
		}
	}
	return views
}

// SelectRegion starts a region attempt. Selecting a locked, completed, or
// unknown region is a no-op.
func (s *Session) SelectRegion(id string) bool {
	if s.screen != ScreenMap {
		return false
	}

	idx := s.catalog.RegionIndex(id)
	if idx < 0 {
		return false
	}
	if s.isCompleted(id) || !s.unlocked(idx) {
		return false
	}

	s.attempt = &regionAttempt{
		id:     id,
		region: s.catalog.Region(id),
		stage:  StageIntro,
	}
	s.screen = ScreenRegion
	return true
}

// ActiveRegion returns the region currently being played, or ("", nil).
func (s *Session) ActiveRegion() (string, *catalog.Region) {
	if s.attempt == nil {
		return "", nil
	}
	return s.attempt.id, s.attempt.region
}

// Stage returns the active region attempt's stage. Only meaningful while
// on the region screen.
func (s *Session) Stage() Stage {
	if s.attempt == nil {
		return StageIntro
	}
	return s.attempt.stage
}

// CurrentQuestion returns the active question and its index.
func (s *Session) CurrentQuestion() (*catalog.Question, int, bool) {
	a := s.attempt
	if a == nil || (a.stage != StageQuestion && a.stage != StageFeedback) {
		return nil, 0, false
	}
	return &a.region.Questions[a.question], a.question, true
}

// LastAnswer returns the answer chosen on the current question, set while
// in the feedback stage.
func (s *Session) LastAnswer() *catalog.Answer {
	if s.attempt == nil {
		return nil
	}
	return s.attempt.last
}

// AttemptRewards returns the rewards buffered by the active attempt.
func (s *Session) AttemptRewards() Stats {
	if s.attempt == nil {
		return Stats{}
	}
	return s.attempt.rewards
}

// ConfirmIntro moves the attempt from the intro to its first question.
func (s *Session) ConfirmIntro() bool {
	if s.screen != ScreenRegion || s.attempt == nil || s.attempt.stage != StageIntro {
		return false
	}
	s.attempt.stage = StageQuestion
	return true
}

// ChooseAnswer records the answer at index i on the current question,
// buffers its reward, and moves to the feedback stage.
func (s *Session) ChooseAnswer(i int) bool {
	a := s.attempt
	if s.screen != ScreenRegion || a == nil || a.stage != StageQuestion {
		return false
	}

	q := &a.region.Questions[a.question]
	if i < 0 || i >= len(q.Answers) {
		return false
	}

	answer := &q.Answers[i]
	a.last = answer
	a.rewards = a.rewards.Add(answer.Reward)
	a.records = append(a.records, AnswerRecord{Question: q.Dialogue, Answer: answer.Text})
	a.stage = StageFeedback
	return true
}

// AcknowledgeFeedback advances to the next question, or to the summary
// after the last one.
func (s *Session) AcknowledgeFeedback() bool {
	a := s.attempt
	if s.screen != ScreenRegion || a == nil || a.stage != StageFeedback {
		return false
	}

	a.last = nil
	if a.question+1 < len(a.region.Questions) {
		a.question++
		a.stage = StageQuestion
	} else {
		a.stage = StageSummary
	}
	return true
}

// ConfirmSummary commits the attempt: rewards fold into the running
// totals, answer records land in the log, and the region is marked
// completed. This is the only point an attempt touches the playthrough.
func (s *Session) ConfirmSummary() bool {
	a := s.attempt
	if s.screen != ScreenRegion || a == nil || a.stage != StageSummary {
		return false
	}

	s.stats = s.stats.Merge(a.rewards)
	s.answers[a.id] = a.records
	s.completed = append(s.completed, a.id)
	s.attempt = nil
	s.screen = ScreenMap
	return true
}

// LeaveRegion abandons the attempt and returns to the map. Permitted from
// the intro and question stages; everything buffered is discarded, so
// re-entering later starts the region over.
func (s *Session) LeaveRegion() bool {
	a := s.attempt
	if s.screen != ScreenRegion || a == nil {
		return false
	}
	if a.stage != StageIntro && a.stage != StageQuestion {
		return false
	}

	s.attempt = nil
	s.screen = ScreenMap
	return true
}

// Finish moves to the results screen. A no-op until every region is
// completed, which also makes the final report a once-per-playthrough
// event for callers acting on the transition.
func (s *Session) Finish() bool {
	if s.screen != ScreenMap || !s.AllCompleted() {
		return false
	}
	s.screen = ScreenResults
	return true
}

// Restart resets the playthrough from the results screen: stats zeroed,
// completions and logs cleared, persona discarded, fresh start timestamp.
func (s *Session) Restart() bool {
	if s.screen != ScreenResults {
		return false
	}

	s.player = nil
	s.stats = Stats{}
	s.completed = nil
	s.attempt = nil
	s.answers = map[string][]AnswerRecord{}
	s.startedAt = s.now()
	s.screen = ScreenCharacterSetup
	return true
}
