package rtt_test

import (
	"testing"
	"time"

	"github.com/rapidmidiex/rmxchords/rtt"
	"github.com/stretchr/testify/require"
)

func TestCalc(t *testing.T) {
	answerTimes := []time.Duration{
		time.Millisecond * 1900,
		time.Millisecond * 10000,
		time.Millisecond * 1290,
		time.Millisecond * 3400,
		time.Millisecond * 3600,
		time.Millisecond * 4901,
		time.Millisecond * 2340,
	}

	gotCmd := rtt.CalcStats(time.Millisecond*2340, answerTimes)
	want := rtt.CalcMsg{
		Min:    time.Millisecond * 1290,
		Max:    time.Millisecond * 10000,
		Avg:    time.Millisecond * 3919, // 3918.714... rounded to nearest ms
		Latest: time.Millisecond * 2340,
	}
	require.Equal(t, want, gotCmd())
}

func TestCalcEmpty(t *testing.T) {
	require.Equal(t, rtt.CalcMsg{}, rtt.Calc(0, nil))
}

func TestRound(t *testing.T) {
	require.Equal(t, 2300*time.Millisecond, rtt.Round(2340*time.Millisecond))
}
