package components

import (
	"strconv"

	"github.com/yohamta/donburi"
)

// StatsData tracks the session score
type StatsData struct {
	Shots   int // shots on the current hole
	Wins    int
	Best    int // fewest shots on a completed hole, valid when HasBest
	HasBest bool
}

// BestLabel is the best score for display, "-" before any hole is completed.
func (s *StatsData) BestLabel() string {
	if !s.HasBest {
		return "-"
	}
	return strconv.Itoa(s.Best)
}

var Stats = donburi.NewComponentType[StatsData]()
