package stations

import (
	"context"

	"github.com/binario/binario/pkg/viaggiatreno"
)

// APISearcher backs the resolver with the cercaStazione endpoint.
type APISearcher struct {
	Client *viaggiatreno.Client
}

func (s APISearcher) Search(ctx context.Context, name string) ([]Candidate, error) {
	results, err := s.Client.CercaStazione(ctx, name)
	if err != nil {
		return nil, err
	}

	candidates := make([]Candidate, len(results))
	for i, result := range results {
		candidates[i] = Candidate{
			Name: result.NomeLungo,
			ID:   result.ID,
		}
	}

	return candidates, nil
}
