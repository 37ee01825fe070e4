// Package stations resolves free-text station names into the canonical
// station identities used by every other provider call.
package stations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// ErrStationNotFound is returned when a search yields no candidates. It is
// recoverable; callers report it and skip the operation.
var ErrStationNotFound = errors.New("no station found")

// Station is a resolved station identity. ID is the canonical key for all
// provider calls; Name is display only and may be empty when the caller
// supplied the ID directly.
type Station struct {
	Name string
	ID   string
}

// Candidate is one station search result.
type Candidate struct {
	Name string
	ID   string
}

// Searcher is the station search collaborator.
type Searcher interface {
	Search(ctx context.Context, name string) ([]Candidate, error)
}

// Prompter asks the user for input when resolution cannot proceed on its
// own. Select returns the index of the chosen option.
type Prompter interface {
	Text(label string) (string, error)
	Select(label string, options []string) (int, error)
}

// Resolver turns a station name (or nothing at all) into a Station.
type Resolver struct {
	Search Searcher
	Prompt Prompter
}

// Resolve resolves a station by name, by ID, or interactively.
//
// An explicit ID is trusted as-is and never triggers a search. With a name,
// a single search result is accepted unconditionally, an exact
// case-insensitive match wins over other candidates, and anything else is
// put to the user.
func (r *Resolver) Resolve(ctx context.Context, name string, id string) (Station, error) {
	if id != "" {
		return Station{Name: name, ID: id}, nil
	}

	if name == "" {
		var err error
		name, err = r.Prompt.Text("Inserisci il nome della stazione")
		if err != nil {
			return Station{}, err
		}
	}

	candidates, err := r.Search.Search(ctx, name)
	if err != nil {
		return Station{}, fmt.Errorf("searching for station %q: %w", name, err)
	}

	log.Debug().Str("name", name).Int("candidates", len(candidates)).Msg("Station search")

	if len(candidates) == 0 {
		return Station{}, fmt.Errorf("%w: %q", ErrStationNotFound, name)
	}

	if len(candidates) == 1 {
		return Station{Name: candidates[0].Name, ID: candidates[0].ID}, nil
	}

	// The provider reports canonical names in uppercase
	upperName := strings.ToUpper(name)
	for _, candidate := range candidates {
		if candidate.Name == upperName {
			return Station{Name: candidate.Name, ID: candidate.ID}, nil
		}
	}

	options := make([]string, len(candidates))
	for i, candidate := range candidates {
		options[i] = candidate.Name
	}

	index, err := r.Prompt.Select("Seleziona la stazione", options)
	if err != nil {
		return Station{}, err
	}
	if index < 0 || index >= len(candidates) {
		return Station{}, fmt.Errorf("station choice out of range: %d", index)
	}

	chosen := candidates[index]

	return Station{Name: chosen.Name, ID: chosen.ID}, nil
}
