package models

import "time"

// MegaSenaResult is a single published Mega Sena draw. JSON names follow
// the upstream lottery feed so payloads can be posted unchanged.
type MegaSenaResult struct {
	ID                      string            `json:"id"`
	Accumulated             bool              `json:"acumulado"`
	DrawDate                string            `json:"dataApuracao"`
	NextDrawDate            string            `json:"dataProximoConcurso"`
	NumbersInDrawOrder      []string          `json:"dezenasSorteadasOrdemSorteio"`
	ShowCityBreakdown       bool              `json:"exibirDetalhamentoPorCidade"`
	SpecialDrawIndicator    int               `json:"indicadorConcursoEspecial"`
	Numbers                 []string          `json:"listaDezenas"`
	SecondDrawNumbers       *string           `json:"listaDezenasSegundoSorteio"`
	MunicipalWinners        []MunicipalWinner `json:"listaMunicipioUFGanhadores"`
	PrizeTiers              []PrizeTier       `json:"listaRateioPremio"`
	TeamResults             []string          `json:"listaResultadoEquipeEsportiva"`
	DrawLocation            string            `json:"localSorteio"`
	DrawCity                string            `json:"nomeMunicipioUFSorteio"`
	LuckyMonthTeam          *string           `json:"nomeTimeCoracaoMesSorte"`
	DrawNumber              int               `json:"numero"`
	PreviousDrawNumber      *int              `json:"numeroConcursoAnterior"`
	FinalDrawNumber05       int               `json:"numeroConcursoFinal_0_5"`
	NextDrawNumber          int               `json:"numeroConcursoProximo"`
	GameNumber              int               `json:"numeroJogo"`
	Notes                   *string           `json:"observacao"`
	ContingencyPrize        *string           `json:"premiacaoContingencia"`
	GameType                string            `json:"tipoJogo"`
	PublicationType         int               `json:"tipoPublicacao"`
	LatestDraw              bool              `json:"ultimoConcurso"`
	AmountCollected         float64           `json:"valorArrecadado"`
	AccumulatedFinal05      float64           `json:"valorAcumuladoConcurso_0_5"`
	AccumulatedSpecialDraw  float64           `json:"valorAcumuladoConcursoEspecial"`
	AccumulatedNextDraw     float64           `json:"valorAcumuladoProximoConcurso"`
	EstimatedNextDraw       float64           `json:"valorEstimadoProximoConcurso"`
	GuaranteeReserveBalance float64           `json:"valorSaldoReservaGarantidora"`
	TotalFirstTierPrize     float64           `json:"valorTotalPremioFaixaUm"`
	CreatedAt               time.Time         `json:"createdAt"`
}

// MunicipalWinner lists how many winning tickets were sold in one place.
type MunicipalWinner struct {
	ID           string  `json:"id"`
	ResultID     string  `json:"resultadoMegaSenaId"`
	Winners      int     `json:"ganhadores"`
	Municipality *string `json:"municipio"`
	DisplayName  *string `json:"nomeFantasiaUL"`
	Position     int     `json:"posicao"`
	Series       *string `json:"serie"`
	State        string  `json:"uf"`
}

// PrizeTier is one row of the prize breakdown for a draw.
type PrizeTier struct {
	ID          string   `json:"id"`
	ResultID    string   `json:"resultadoMegaSenaId"`
	Description *string  `json:"descricaoFaixa"`
	Tier        int      `json:"faixa"`
	WinnerCount *int     `json:"numeroDeGanhadores"`
	PrizeAmount *float64 `json:"valorPremio"`
}
