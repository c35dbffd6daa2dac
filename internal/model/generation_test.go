package model

import "testing"

func TestNewGeneration(t *testing.T) {
	t.Parallel()

	g := NewGeneration("fr-FR")
	if g.Locale != "fr-FR" {
		t.Errorf("Locale = %q", g.Locale)
	}
	if g.StartedAt.IsZero() {
		t.Error("StartedAt should be set")
	}
	if g.Pages == nil || g.Excluded == nil || g.PerformedSteps == nil {
		t.Error("slices should be initialized")
	}
}

func TestNewSummary(t *testing.T) {
	t.Parallel()

	g := NewGeneration("fr-FR")
	g.Pages = []Page{{URL: "/p/paris"}, {URL: "/p/lyon"}}
	g.AddExclusion(Exclusion{URL: "https://www.clubmed.fr/p/old", Reason: "status 404", StatusCode: 404})
	g.Boosters[0] = BoosterList{Rows: make([]BoosterRow, 3)}
	g.Titles = [BoosterCount]string{"A", "B"}
	g.Document = &Document{
		ID:         "202501010000-Replace_seoBoosters-fr-FR",
		Migrations: make([]Migration, 2),
	}

	s := NewSummary(g)

	if s.InputPages != 3 {
		t.Errorf("InputPages = %d, want 3", s.InputPages)
	}
	if s.Migrations != 2 {
		t.Errorf("Migrations = %d, want 2", s.Migrations)
	}
	if s.DocumentID != g.Document.ID {
		t.Errorf("DocumentID = %q", s.DocumentID)
	}
	if s.LinkCounts != [BoosterCount]int{3, 0} {
		t.Errorf("LinkCounts = %v", s.LinkCounts)
	}
	if len(s.Excluded) != 1 {
		t.Errorf("Excluded = %v", s.Excluded)
	}
}

func TestNewSummaryWithoutDocument(t *testing.T) {
	t.Parallel()

	s := NewSummary(NewGeneration("en-GB"))
	if s.DocumentID != "" || s.Migrations != 0 {
		t.Errorf("unexpected summary %+v", s)
	}
}

func TestSummaryShortBoosters(t *testing.T) {
	t.Parallel()

	s := &Summary{LinkCounts: [BoosterCount]int{RecommendedBoosterLinks, 4}}
	got := s.ShortBoosters()
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("ShortBoosters() = %v, want [1]", got)
	}
}
