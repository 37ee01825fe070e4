package viaggiatreno

import "encoding/json"

// StationResult is one entry returned by the cercaStazione endpoint.
type StationResult struct {
	NomeLungo string `json:"nomeLungo"`
	NomeBreve string `json:"nomeBreve"`
	ID        string `json:"id"`
}

// Departure is one raw row of the partenze endpoint.
type Departure struct {
	InStazione           bool        `json:"inStazione"`
	DataPartenzaTreno    int64       `json:"dataPartenzaTreno"`
	CompOrarioPartenza   string      `json:"compOrarioPartenza"`
	CodOrigine           string      `json:"codOrigine"`
	IDOrigine            string      `json:"idOrigine"`
	Destinazione         string      `json:"destinazione"`
	CategoriaDescrizione string      `json:"categoriaDescrizione"`
	NumeroTreno          json.Number `json:"numeroTreno"`
}

// Arrival is one raw row of the arrivi endpoint. Same record family as
// Departure but keyed on the arrival side.
type Arrival struct {
	InStazione           bool        `json:"inStazione"`
	DataPartenzaTreno    int64       `json:"dataPartenzaTreno"`
	CompOrarioArrivo     string      `json:"compOrarioArrivo"`
	Origine              string      `json:"origine"`
	CategoriaDescrizione string      `json:"categoriaDescrizione"`
	NumeroTreno          json.Number `json:"numeroTreno"`
}

// TrainStatus is the live state of one train as returned by the
// andamentoTreno endpoint.
type TrainStatus struct {
	OraUltimoRilevamento      *int64         `json:"oraUltimoRilevamento"`
	StazioneUltimoRilevamento string         `json:"stazioneUltimoRilevamento"`
	// Ritardo is the departure delay when the queried station is the first
	// of the run, otherwise the arrival delay
	Ritardo       int            `json:"ritardo"`
	HaCambiNumero bool           `json:"haCambiNumero"`
	CambiNumero   []NumberChange `json:"cambiNumero"`
	Fermate       []Fermata      `json:"fermate"`
}

// NumberChange records one train number change along a run.
type NumberChange struct {
	NuovoNumeroTreno json.Number `json:"nuovoNumeroTreno"`
	Stazione         string      `json:"stazione"`
}

// Fermata is one stop within a TrainStatus. Platform and time fields are
// null until the provider has recorded an actual value.
type Fermata struct {
	ID       string `json:"id"`
	Stazione string `json:"stazione"`

	BinarioProgrammatoPartenza *string `json:"binarioProgrammatoPartenzaDescrizione"`
	BinarioEffettivoPartenza   *string `json:"binarioEffettivoPartenzaDescrizione"`
	BinarioProgrammatoArrivo   *string `json:"binarioProgrammatoArrivoDescrizione"`
	BinarioEffettivoArrivo     *string `json:"binarioEffettivoArrivoDescrizione"`

	RitardoPartenza int `json:"ritardoPartenza"`
	RitardoArrivo   int `json:"ritardoArrivo"`
	Ritardo         int `json:"ritardo"`

	PartenzaTeorica *int64 `json:"partenza_teorica"`
	PartenzaReale   *int64 `json:"partenzaReale"`
	ArrivoTeorico   *int64 `json:"arrivo_teorico"`
	ArrivoReale     *int64 `json:"arrivoReale"`
}

// Solutions is the response of the soluzioniViaggioNew endpoint.
type Solutions struct {
	Soluzioni []Solution `json:"soluzioni"`
}

type Solution struct {
	Durata   string    `json:"durata"`
	Vehicles []Vehicle `json:"vehicles"`
}

// Vehicle is one leg of a journey solution.
type Vehicle struct {
	CategoriaDescrizione string `json:"categoriaDescrizione"`
	NumeroTreno          string `json:"numeroTreno"`
	OrarioPartenza       string `json:"orarioPartenza"`
	OrarioArrivo         string `json:"orarioArrivo"`
	Origine              string `json:"origine"`
	Destinazione         string `json:"destinazione"`
}

// Stats is the national circulation snapshot from the statistiche endpoint.
type Stats struct {
	TreniGiorno     int   `json:"treniGiorno"`
	TreniCircolanti int   `json:"treniCircolanti"`
	UltimoAggiorno  int64 `json:"ultimoAggiornamento"`
}
