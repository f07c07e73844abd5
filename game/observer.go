package game

// Observer receives state transitions from Move. Calls are synchronous and
// happen after the state has been updated, so the observer may read it.
type Observer interface {
	ScoreIncreased(score int)
	GameOver(score int)
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	OnScoreIncreased func(score int)
	OnGameOver       func(score int)
}

func (o ObserverFuncs) ScoreIncreased(score int) {
	if o.OnScoreIncreased != nil {
		o.OnScoreIncreased(score)
	}
}

func (o ObserverFuncs) GameOver(score int) {
	if o.OnGameOver != nil {
		o.OnGameOver(score)
	}
}

type nopObserver struct{}

func (nopObserver) ScoreIncreased(int) {}
func (nopObserver) GameOver(int)       {}
