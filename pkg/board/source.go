package board

import (
	"context"
	"strings"

	"github.com/binario/binario/pkg/stations"
	"github.com/binario/binario/pkg/viaggiatreno"
)

// Source supplies the two provider views the board is built from. It must
// be safe for concurrent use: enrichment calls JourneyStatus once per train,
// all at the same time.
type Source interface {
	// Departures lists the scheduled departures for a station. when must be
	// in the provider's board-time shape.
	Departures(ctx context.Context, station stations.Station, when string) ([]ScheduledTrain, error)

	// JourneyStatus returns the live journey for one scheduled train, or
	// nil when the provider has no live data for it.
	JourneyStatus(ctx context.Context, train ScheduledTrain) (*Journey, error)

	// Arrivals lists the scheduled arrivals for a station.
	Arrivals(ctx context.Context, station stations.Station, when string) ([]ScheduledArrival, error)
}

// APISource backs the board with the ViaggiaTreno partenze and
// andamentoTreno endpoints.
type APISource struct {
	Client *viaggiatreno.Client
}

func (s APISource) Departures(ctx context.Context, station stations.Station, when string) ([]ScheduledTrain, error) {
	departures, err := s.Client.Partenze(ctx, station.ID, when)
	if err != nil {
		return nil, err
	}

	trains := make([]ScheduledTrain, len(departures))
	for i, departure := range departures {
		originID := departure.CodOrigine
		if originID == "" {
			originID = departure.IDOrigine
		}

		trains[i] = ScheduledTrain{
			Departed:      departure.InStazione,
			DepartureDate: departure.DataPartenzaTreno,
			DepartureTime: departure.CompOrarioPartenza,
			OriginID:      originID,
			Destination:   departure.Destinazione,
			Category:      strings.TrimSpace(departure.CategoriaDescrizione),
			Number:        departure.NumeroTreno.String(),
		}
	}

	return trains, nil
}

func (s APISource) JourneyStatus(ctx context.Context, train ScheduledTrain) (*Journey, error) {
	status, err := s.Client.AndamentoTreno(ctx, train.OriginID, train.Number, train.DepartureDate)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return nil, nil
	}

	journey := &Journey{
		LastUpdateStation: status.StazioneUltimoRilevamento,
		Delay:             status.Ritardo,
		TrainNumbers:      train.Number,
		Stops:             make([]Stop, len(status.Fermate)),
	}
	if status.OraUltimoRilevamento != nil {
		journey.LastUpdateTime = *status.OraUltimoRilevamento
	}

	// The board only flags that a number changed; the history itself is
	// reported here
	if status.HaCambiNumero {
		for _, change := range status.CambiNumero {
			journey.TrainNumbers += "/" + change.NuovoNumeroTreno.String()
		}
	}

	for i, fermata := range status.Fermate {
		journey.Stops[i] = Stop{
			StationID: fermata.ID,
			Name:      fermata.Stazione,

			ScheduledDeparturePlatform: stringValue(fermata.BinarioProgrammatoPartenza),
			ActualDeparturePlatform:    stringValue(fermata.BinarioEffettivoPartenza),
			ScheduledArrivalPlatform:   stringValue(fermata.BinarioProgrammatoArrivo),
			ActualArrivalPlatform:      stringValue(fermata.BinarioEffettivoArrivo),

			DepartureDelay: fermata.RitardoPartenza,
			ArrivalDelay:   fermata.RitardoArrivo,
			Delay:          fermata.Ritardo,

			ScheduledDeparture: int64Value(fermata.PartenzaTeorica),
			ActualDeparture:    int64Value(fermata.PartenzaReale),
			ScheduledArrival:   int64Value(fermata.ArrivoTeorico),
			ActualArrival:      int64Value(fermata.ArrivoReale),
		}
	}

	return journey, nil
}

func (s APISource) Arrivals(ctx context.Context, station stations.Station, when string) ([]ScheduledArrival, error) {
	wireArrivals, err := s.Client.Arrivi(ctx, station.ID, when)
	if err != nil {
		return nil, err
	}

	arrivals := make([]ScheduledArrival, len(wireArrivals))
	for i, arrival := range wireArrivals {
		arrivals[i] = ScheduledArrival{
			Arrived:     arrival.InStazione,
			ArrivalTime: arrival.CompOrarioArrivo,
			Origin:      arrival.Origine,
			Category:    strings.TrimSpace(arrival.CategoriaDescrizione),
			Number:      arrival.NumeroTreno.String(),
		}
	}

	return arrivals, nil
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func int64Value(n *int64) int64 {
	if n == nil {
		return 0
	}

	return *n
}
