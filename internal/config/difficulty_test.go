package config

import "testing"

func TestObstacleSize(t *testing.T) {
	d := NewDifficulty(Default().Obstacles)

	tests := []struct {
		score, expected int
	}{
		{0, 40},
		{1, 40}, // integer division
		{2, 39},
		{10, 35},
		{39, 21},
		{40, 20},
		{50, 20}, // floor reached
		{1000, 20},
	}

	for _, tc := range tests {
		if got := d.ObstacleSize(tc.score); got != tc.expected {
			t.Errorf("ObstacleSize(%d) = %d, expected %d", tc.score, got, tc.expected)
		}
	}
}

func TestObstacleSizeMonotonic(t *testing.T) {
	d := NewDifficulty(Default().Obstacles)

	prev := d.ObstacleSize(0)
	for score := 1; score <= 500; score++ {
		size := d.ObstacleSize(score)
		if size < 20 {
			t.Fatalf("ObstacleSize(%d) = %d, below the floor of 20", score, size)
		}
		if size > prev {
			t.Fatalf("ObstacleSize(%d) = %d grew from %d", score, size, prev)
		}
		prev = size
	}
}

func TestClampSpacing(t *testing.T) {
	d := NewDifficulty(Default().Obstacles)

	tests := []struct {
		in, expected int
	}{
		{35, 40},
		{40, 40},
		{50, 50},
		{60, 60},
		{65, 60},
	}
	for _, tc := range tests {
		if got := d.ClampSpacing(tc.in); got != tc.expected {
			t.Errorf("ClampSpacing(%d) = %d, expected %d", tc.in, got, tc.expected)
		}
	}
	if d.SpacingStep() != 5 {
		t.Errorf("SpacingStep() = %d, expected 5", d.SpacingStep())
	}
}
