package manager

// maxScores caps the per-life score history kept for the HUD.
const maxScores = 50

// SessionStats is a snapshot of the in-memory scoring of one session.
type SessionStats struct {
	Score        int
	HighScore    int
	Deaths       int
	Ticks        int
	ApplesEaten  int
	BadApples    int
	AverageScore float64
}

// StateManager keeps score bookkeeping for the running session. Nothing is
// written to disk.
type StateManager struct {
	score        int
	highScore    int
	deaths       int
	ticks        int
	applesEaten  int
	badApples    int
	scoreHistory []int
}

func NewStateManager() *StateManager {
	return &StateManager{
		scoreHistory: make([]int, 0, maxScores),
	}
}

func (sm *StateManager) Tick() {
	sm.ticks++
}

// AppleEaten adds a point.
func (sm *StateManager) AppleEaten() {
	sm.applesEaten++
	sm.score++
	if sm.score > sm.highScore {
		sm.highScore = sm.score
	}
}

// BadAppleEaten takes a point away, never going below zero.
func (sm *StateManager) BadAppleEaten() {
	sm.badApples++
	if sm.score > 0 {
		sm.score--
	}
}

// Died closes the current life and starts a new one at zero.
func (sm *StateManager) Died() {
	sm.deaths++
	if len(sm.scoreHistory) >= maxScores {
		sm.scoreHistory = sm.scoreHistory[1:]
	}
	sm.scoreHistory = append(sm.scoreHistory, sm.score)
	sm.score = 0
}

func (sm *StateManager) GetScore() int {
	return sm.score
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetScoreHistory() []int {
	return sm.scoreHistory
}

func (sm *StateManager) Stats() SessionStats {
	stats := SessionStats{
		Score:       sm.score,
		HighScore:   sm.highScore,
		Deaths:      sm.deaths,
		Ticks:       sm.ticks,
		ApplesEaten: sm.applesEaten,
		BadApples:   sm.badApples,
	}
	if len(sm.scoreHistory) > 0 {
		sum := 0
		for _, s := range sm.scoreHistory {
			sum += s
		}
		stats.AverageScore = float64(sum) / float64(len(sm.scoreHistory))
	}
	return stats
}
