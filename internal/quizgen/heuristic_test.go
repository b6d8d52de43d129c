package quizgen

import (
	"reflect"
	"testing"
)

func TestAssignPointsNegativeConstruct(t *testing.T) {
	labels := []string{"Never", "Sometimes", "Often", "Always"}
	points := AssignPoints("How often do you feel stressed?", labels)

	want := []int{3, 2, 0, 0}
	if !reflect.DeepEqual(points, want) {
		t.Fatalf("expected %v, got %v", want, points)
	}
}

func TestAssignPointsPositiveConstruct(t *testing.T) {
	labels := []string{"Excellent", "Good", "Poor", "Not much"}
	points := AssignPoints("How would you rate your sleep quality?", labels)

	if points[0] != 3 {
		t.Fatalf("expected 'Excellent' to score 3, got %d", points[0])
	}
	if points[1] != 2 {
		t.Fatalf("expected 'Good' to score 2, got %d", points[1])
	}
	if points[2] != 1 {
		t.Fatalf("expected 'Poor' to score 1, got %d", points[2])
	}
	if points[3] != 1 {
		t.Fatalf("expected 'Not much' to score 1, got %d", points[3])
	}
}

func TestAssignPointsExerciseExemption(t *testing.T) {
	// "never exercise" reads as unhealthy, but "daily exercise" must not.
	points := AssignPoints("How often do you exercise?", []string{"Daily exercise", "Never exercise"})
	if points[0] != 1 {
		t.Fatalf("expected 'Daily exercise' to stay neutral, got %d", points[0])
	}
}

func TestAssignPointsNeutralFallback(t *testing.T) {
	points := AssignPoints("How often do you feel stressed?", []string{"It depends"})
	if points[0] != 1 {
		t.Fatalf("expected neutral 1, got %d", points[0])
	}
}

func TestAssignPointsDeterministic(t *testing.T) {
	labels := []string{"Never", "Rarely", "Sometimes", "Daily"}
	first := AssignPoints("How often do you eat junk food?", labels)
	for range 10 {
		if got := AssignPoints("How often do you eat junk food?", labels); !reflect.DeepEqual(got, first) {
			t.Fatalf("non-deterministic assignment: %v vs %v", first, got)
		}
	}
}

func TestIsNegativeConstruct(t *testing.T) {
	cases := map[string]bool{
		"How often do you feel stressed?":          true,
		"Do you smoke?":                            true,
		"How much Screen time do you get?":         true,
		"How many hours do you sleep?":             false,
		"How often do you eat fruit & vegetables?": false,
	}
	for text, want := range cases {
		if got := isNegativeConstruct(text); got != want {
			t.Fatalf("isNegativeConstruct(%q) = %v, want %v", text, got, want)
		}
	}
}
