// Package rtt contains tools for calculating stats on how long answers take.
package rtt

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type (
	// CalcMsg holds the response time of the latest answer and stats over all answers.
	CalcMsg struct {
		Latest time.Duration
		Avg    time.Duration
		Min    time.Duration
		Max    time.Duration
	}
)

// CalcStats reports latest together with stats over prev, which should include latest.
func CalcStats(latest time.Duration, prev []time.Duration) tea.Cmd {
	msg := Calc(latest, prev)
	return func() tea.Msg {
		return msg
	}
}

func Calc(latest time.Duration, prev []time.Duration) CalcMsg {
	roundedAvg := math.Round(float64(Avg(prev))/float64(time.Millisecond)) * float64(time.Millisecond)
	return CalcMsg{
		Latest: latest,
		Avg:    time.Duration(roundedAvg),
		Max:    Max(prev),
		Min:    Min(prev),
	}
}

func Min(times []time.Duration) time.Duration {
	if len(times) == 0 {
		return 0
	}
	min := times[0]
	for _, t := range times[1:] {
		if t < min {
			min = t
		}
	}
	return min
}

func Max(times []time.Duration) time.Duration {
	if len(times) == 0 {
		return 0
	}
	max := times[0]
	for _, t := range times[1:] {
		if t > max {
			max = t
		}
	}
	return max
}

func Avg(times []time.Duration) time.Duration {
	if len(times) == 0 {
		return 0
	}
	sum := time.Duration(0)
	for _, t := range times {
		sum = sum + t
	}
	return sum / time.Duration(len(times))
}

// Round trims d to a tenth of a second for display.
func Round(d time.Duration) time.Duration {
	return d.Round(100 * time.Millisecond)
}
