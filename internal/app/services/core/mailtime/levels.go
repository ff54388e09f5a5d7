package mailtime

import "math/rand"

// Level controls the size of a generated input. Thread and response counts
// are ranges resolved per generation.
type Level struct {
	Name           string
	UserCount      int
	UsersPerThread int
	ThreadCountMin int
	ThreadCountMax int
	ResponsesMin   int
	ResponsesMax   int
}

var (
	LevelExample    = Level{Name: "EXAMPLE", UserCount: 2, UsersPerThread: 2, ThreadCountMin: 1, ThreadCountMax: 1, ResponsesMin: 2, ResponsesMax: 2}
	LevelExtraSmall = Level{Name: "EXTRA_SMALL", UserCount: 10, UsersPerThread: 5, ThreadCountMin: 5, ThreadCountMax: 10, ResponsesMin: 5, ResponsesMax: 10}
	LevelSmall      = Level{Name: "SMALL", UserCount: 10, UsersPerThread: 10, ThreadCountMin: 10, ThreadCountMax: 20, ResponsesMin: 10, ResponsesMax: 20}
	LevelDefault    = Level{Name: "DEFAULT", UserCount: 25, UsersPerThread: 10, ThreadCountMin: 20, ThreadCountMax: 30, ResponsesMin: 10, ResponsesMax: 20}
	LevelLarge      = Level{Name: "LARGE", UserCount: 50, UsersPerThread: 20, ThreadCountMin: 25, ThreadCountMax: 50, ResponsesMin: 25, ResponsesMax: 50}
	LevelExtraLarge = Level{Name: "EXTRA_LARGE", UserCount: 50, UsersPerThread: 25, ThreadCountMin: 100, ThreadCountMax: 150, ResponsesMin: 50, ResponsesMax: 100}
)

// EvaluationLevels returns every scored difficulty level in random order.
// The example level is never part of an evaluation.
func EvaluationLevels(r *rand.Rand) []Level {
	levels := []Level{LevelExtraSmall, LevelSmall, LevelDefault, LevelLarge, LevelExtraLarge}
	r.Shuffle(len(levels), func(i, j int) {
		levels[i], levels[j] = levels[j], levels[i]
	})
	return levels
}

func (l Level) threadCount(r *rand.Rand) int {
	return randomBetween(r, l.ThreadCountMin, l.ThreadCountMax)
}

func (l Level) responsesPerThread(r *rand.Rand) int {
	return randomBetween(r, l.ResponsesMin, l.ResponsesMax)
}

func randomBetween(r *rand.Rand, min, max int) int {
	if min >= max {
		return min
	}
	return min + r.Intn(max-min+1)
}
