package ui

import (
	"strings"
	"testing"

	"github.com/philtim/whenisthat/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func faceRunes(t *testing.T, opts faceOptions) [][]rune {
	t.Helper()
	rows := strings.Split(drawFace(opts).String(), "\n")
	require.Len(t, rows, faceRows)

	out := make([][]rune, len(rows))
	for i, row := range rows {
		out[i] = []rune(row)
		require.Len(t, out[i], faceCols)
	}
	return out
}

func TestFaceAtMidnight(t *testing.T) {
	rows := faceRunes(t, faceOptions{angles: clock.HandAngles(0, 0, 0, 0)})

	center := 2 * faceRadius
	assert.Equal(t, '◉', rows[faceRadius][center])
	assert.Equal(t, '1', rows[0][center])
	assert.Equal(t, '2', rows[0][center+1])

	// hour hand is heavy and drawn over the minute hand
	assert.Equal(t, '┃', rows[5][center])
	assert.Equal(t, '│', rows[2][center])
}

func TestFaceAtThree(t *testing.T) {
	rows := faceRunes(t, faceOptions{angles: clock.HandAngles(3, 0, 0, 0)})

	center := 2 * faceRadius
	assert.Equal(t, '3', rows[faceRadius][faceCols-1])
	for col := center + 2; col <= center+7; col++ {
		assert.Equal(t, '━', rows[faceRadius][col], "col %d", col)
	}
	assert.Equal(t, '│', rows[3][center], "minute hand at twelve")
}

func TestSecondHandOnlyWhenShown(t *testing.T) {
	angles := clock.HandAngles(0, 0, 30, 0)
	center := 2 * faceRadius

	hidden := faceRunes(t, faceOptions{angles: angles})
	assert.NotEqual(t, '│', hidden[faceRadius+3][center])

	shown := faceRunes(t, faceOptions{angles: angles, showSecond: true})
	assert.Equal(t, '│', shown[faceRadius+3][center])
}

func TestActiveHandInk(t *testing.T) {
	c := drawFace(faceOptions{angles: clock.HandAngles(0, 0, 0, 0), active: clock.HandMinute})
	assert.Equal(t, inkActive, c[2][2*faceRadius].kind)
	assert.Equal(t, inkHour, c[5][2*faceRadius].kind)

	c = drawFace(faceOptions{angles: clock.HandAngles(0, 0, 0, 0), active: clock.HandHour})
	assert.Equal(t, inkMinute, c[2][2*faceRadius].kind)
	assert.Equal(t, inkActive, c[5][2*faceRadius].kind)
}

func TestStrokeRune(t *testing.T) {
	assert.Equal(t, '│', strokeRune(0, false))
	assert.Equal(t, '┃', strokeRune(180, true))
	assert.Equal(t, '╱', strokeRune(45, false))
	assert.Equal(t, '─', strokeRune(270, false))
	assert.Equal(t, '━', strokeRune(90, true))
	assert.Equal(t, '╲', strokeRune(315, false))
}
