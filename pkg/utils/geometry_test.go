package utils

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestDistance(t *testing.T) {
	if d := Distance(0, 0, 3, 4); math.Abs(d-5) > epsilon {
		t.Errorf("Distance = %v, want 5", d)
	}
}

func TestCirclesOverlap(t *testing.T) {
	tests := []struct {
		name string
		x2   float64
		want bool
	}{
		{"相交", 30, true},
		{"恰好相切不算碰撞", 35, false},
		{"分离", 40, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CirclesOverlap(0, 0, 20, tt.x2, 0, 15); got != tt.want {
				t.Errorf("CirclesOverlap = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStepToward(t *testing.T) {
	x, y := StepToward(0, 0, 30, 40, 5)
	if math.Abs(x-3) > epsilon || math.Abs(y-4) > epsilon {
		t.Errorf("StepToward = (%v, %v), want (3, 4)", x, y)
	}

	// 重合时不移动
	x, y = StepToward(10, 10, 10, 10, 5)
	if x != 10 || y != 10 {
		t.Errorf("StepToward on same point moved to (%v, %v)", x, y)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-5, 0, 10) != 0 || Clamp(15, 0, 10) != 10 || Clamp(5, 0, 10) != 5 {
		t.Error("Clamp returned wrong value")
	}
}
