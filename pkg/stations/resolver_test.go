package stations

import (
	"context"
	"errors"
	"testing"
)

type fakeSearcher struct {
	candidates []Candidate
	err        error

	calls   int
	queries []string
}

func (s *fakeSearcher) Search(ctx context.Context, name string) ([]Candidate, error) {
	s.calls++
	s.queries = append(s.queries, name)

	return s.candidates, s.err
}

type fakePrompter struct {
	textAnswer  string
	selectIndex int

	textCalls   int
	selectCalls int
}

func (p *fakePrompter) Text(label string) (string, error) {
	p.textCalls++
	return p.textAnswer, nil
}

func (p *fakePrompter) Select(label string, options []string) (int, error) {
	p.selectCalls++
	return p.selectIndex, nil
}

func TestResolveByIDSkipsSearch(t *testing.T) {
	searcher := &fakeSearcher{}
	resolver := &Resolver{Search: searcher, Prompt: &fakePrompter{}}

	station, err := resolver.Resolve(context.Background(), "Saronno", "S01529")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if station.Name != "Saronno" || station.ID != "S01529" {
		t.Errorf("unexpected station %+v", station)
	}
	if searcher.calls != 0 {
		t.Errorf("expected no search calls, got %d", searcher.calls)
	}
}

func TestResolveNoResults(t *testing.T) {
	resolver := &Resolver{Search: &fakeSearcher{}, Prompt: &fakePrompter{}}

	_, err := resolver.Resolve(context.Background(), "atlantide", "")
	if !errors.Is(err, ErrStationNotFound) {
		t.Errorf("expected ErrStationNotFound, got %v", err)
	}
}

func TestResolveSingleResultAccepted(t *testing.T) {
	// A single result wins even when it doesn't textually match the query
	searcher := &fakeSearcher{candidates: []Candidate{{Name: "MILANO CENTRALE", ID: "S01700"}}}
	prompter := &fakePrompter{}
	resolver := &Resolver{Search: searcher, Prompt: prompter}

	station, err := resolver.Resolve(context.Background(), "milano c", "")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if station.ID != "S01700" || station.Name != "MILANO CENTRALE" {
		t.Errorf("unexpected station %+v", station)
	}
	if prompter.selectCalls != 0 {
		t.Errorf("expected no selection prompt, got %d calls", prompter.selectCalls)
	}
}

func TestResolveExactMatchWinsWithoutPrompt(t *testing.T) {
	searcher := &fakeSearcher{candidates: []Candidate{
		{Name: "MILANO CENTRALE", ID: "S01700"},
		{Name: "MILANO LAMBRATE", ID: "S01720"},
	}}
	prompter := &fakePrompter{}
	resolver := &Resolver{Search: searcher, Prompt: prompter}

	station, err := resolver.Resolve(context.Background(), "milano lambrate", "")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if station.ID != "S01720" {
		t.Errorf("expected S01720, got %+v", station)
	}
	if prompter.selectCalls != 0 {
		t.Errorf("expected no selection prompt, got %d calls", prompter.selectCalls)
	}
}

func TestResolveAmbiguousDefersToPrompt(t *testing.T) {
	searcher := &fakeSearcher{candidates: []Candidate{
		{Name: "MILANO CENTRALE", ID: "S01700"},
		{Name: "MILANO LAMBRATE", ID: "S01720"},
		{Name: "MILANO ROGOREDO", ID: "S01820"},
	}}
	prompter := &fakePrompter{selectIndex: 2}
	resolver := &Resolver{Search: searcher, Prompt: prompter}

	station, err := resolver.Resolve(context.Background(), "milano", "")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if station.ID != "S01820" || station.Name != "MILANO ROGOREDO" {
		t.Errorf("unexpected station %+v", station)
	}
	if prompter.selectCalls != 1 {
		t.Errorf("expected 1 selection prompt, got %d calls", prompter.selectCalls)
	}
}

func TestResolveMissingNamePromptsForIt(t *testing.T) {
	searcher := &fakeSearcher{candidates: []Candidate{{Name: "SARONNO", ID: "S01529"}}}
	prompter := &fakePrompter{textAnswer: "saronno"}
	resolver := &Resolver{Search: searcher, Prompt: prompter}

	station, err := resolver.Resolve(context.Background(), "", "")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if prompter.textCalls != 1 {
		t.Errorf("expected 1 text prompt, got %d", prompter.textCalls)
	}
	if len(searcher.queries) != 1 || searcher.queries[0] != "saronno" {
		t.Errorf("expected search for prompted name, got %v", searcher.queries)
	}
	if station.ID != "S01529" {
		t.Errorf("unexpected station %+v", station)
	}
}

func TestResolveSearchError(t *testing.T) {
	searchErr := errors.New("connection refused")
	resolver := &Resolver{Search: &fakeSearcher{err: searchErr}, Prompt: &fakePrompter{}}

	_, err := resolver.Resolve(context.Background(), "milano", "")
	if !errors.Is(err, searchErr) {
		t.Errorf("expected wrapped search error, got %v", err)
	}
}
