package data

import (
	"testing"
)

func TestSearchMatchesTitleCaseInsensitively(t *testing.T) {
	s := setupTestStore(t)

	q := mustInsertQuestion(t, s, "Deploying with Docker", "how do I ship this")
	mustInsertQuestion(t, s, "Unrelated", "nothing to see")

	results, count, err := s.Search("dOcKeR", "submission_time", "desc")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if count != 1 || len(results) != 1 || results[0].ID != q.ID {
		t.Fatalf("Expected exactly the Docker question, got count=%d", count)
	}
}

func TestSearchAnswerMatchSurfacesParentQuestion(t *testing.T) {
	s := setupTestStore(t)

	q := mustInsertQuestion(t, s, "Plain title", "plain body")
	mustInsertAnswer(t, s, q.ID, "try the flux capacitor")

	results, count, err := s.Search("capacitor", "submission_time", "desc")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if count != 1 || results[0].ID != q.ID {
		t.Fatalf("An answer hit must surface its parent question, got count=%d", count)
	}
}

func TestSearchDeduplicates(t *testing.T) {
	s := setupTestStore(t)

	// Matches via title, message AND an answer: must still appear once
	q1 := mustInsertQuestion(t, s, "gopher trouble", "my gopher escapes")
	mustInsertAnswer(t, s, q1.ID, "feed the gopher")
	// Matches via message only
	q2 := mustInsertQuestion(t, s, "Second", "another gopher here")

	results, count, err := s.Search("gopher", "submission_time", "asc")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if count != 2 || len(results) != 2 {
		t.Fatalf("Expected both questions exactly once, got count=%d len=%d", count, len(results))
	}
	if results[0].ID != q1.ID || results[1].ID != q2.ID {
		t.Errorf("Expected ascending submission order, got %d then %d", results[0].ID, results[1].ID)
	}
}

func TestSearchNoMatches(t *testing.T) {
	s := setupTestStore(t)

	mustInsertQuestion(t, s, "present", "but irrelevant")

	results, count, err := s.Search("zzzznothing", "submission_time", "desc")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if count != 0 || len(results) != 0 {
		t.Errorf("Expected an empty result, got count=%d len=%d", count, len(results))
	}
}

func TestSearchCountEqualsLength(t *testing.T) {
	s := setupTestStore(t)

	mustInsertQuestion(t, s, "widget one", "m")
	mustInsertQuestion(t, s, "widget two", "m")
	mustInsertQuestion(t, s, "widget three", "m")

	results, count, err := s.Search("widget", "vote_number", "desc")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if count != len(results) {
		t.Errorf("Count %d drifted from result length %d", count, len(results))
	}
}

func TestSearchRejectsUnknownSortKey(t *testing.T) {
	s := setupTestStore(t)

	if _, _, err := s.Search("x", "id; DROP TABLE question", "desc"); !IsValidation(err) {
		t.Errorf("Expected validation error for a hostile sort key, got %v", err)
	}
}
