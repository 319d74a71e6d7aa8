package activity

import (
	"math/rand/v2"
	"time"

	"github.com/Kamar-Folarin/github-analyzer/internal/models"
)

// SyntheticSeries builds a placeholder series over the window with counts drawn
// uniformly from [0, 10). It has the shape of a real series and no meaning.
// A nil intn uses math/rand/v2.
func SyntheticSeries(now time.Time, window models.TimeWindow, intn func(n int) int) []models.CommitDayBucket {
	if intn == nil {
		intn = rand.IntN
	}

	start, end := ResolveWindow(now, window)
	days := Days(start, end)

	series := make([]models.CommitDayBucket, len(days))
	for i, day := range days {
		series[i] = models.CommitDayBucket{Date: day, Count: intn(10)}
	}
	return series
}
