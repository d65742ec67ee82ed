package dto

import "github.com/hongminglow/megasena-be/internal/models"

// CreateMegaSenaRequest mirrors the published draw payload. Pointer fields
// let the validator tell a missing key from a zero value; fields without a
// required rule are nullable.
type CreateMegaSenaRequest struct {
	Acumulado                      *bool                    `json:"acumulado" validate:"required"`
	DataApuracao                   *string                  `json:"dataApuracao" validate:"required"`
	DataProximoConcurso            *string                  `json:"dataProximoConcurso" validate:"required"`
	DezenasSorteadasOrdemSorteio   []string                 `json:"dezenasSorteadasOrdemSorteio" validate:"required"`
	ExibirDetalhamentoPorCidade    *bool                    `json:"exibirDetalhamentoPorCidade" validate:"required"`
	IndicadorConcursoEspecial      *int                     `json:"indicadorConcursoEspecial" validate:"required,min=-2147483648,max=2147483647"`
	ListaDezenas                   []string                 `json:"listaDezenas" validate:"required"`
	ListaDezenasSegundoSorteio     *string                  `json:"listaDezenasSegundoSorteio"`
	ListaMunicipioUFGanhadores     []MunicipalWinnerRequest `json:"listaMunicipioUFGanhadores" validate:"required,dive"`
	ListaRateioPremio              []PrizeTierRequest       `json:"listaRateioPremio" validate:"required,dive"`
	ListaResultadoEquipeEsportiva  []string                 `json:"listaResultadoEquipeEsportiva" validate:"required"`
	LocalSorteio                   *string                  `json:"localSorteio" validate:"required"`
	NomeMunicipioUFSorteio         *string                  `json:"nomeMunicipioUFSorteio" validate:"required"`
	NomeTimeCoracaoMesSorte        *string                  `json:"nomeTimeCoracaoMesSorte"`
	Numero                         *int                     `json:"numero" validate:"required,min=-2147483648,max=2147483647"`
	NumeroConcursoAnterior         *int                     `json:"numeroConcursoAnterior" validate:"omitempty,min=-2147483648,max=2147483647"`
	NumeroConcursoFinal05          *int                     `json:"numeroConcursoFinal_0_5" validate:"required,min=-2147483648,max=2147483647"`
	NumeroConcursoProximo          *int                     `json:"numeroConcursoProximo" validate:"required,min=-2147483648,max=2147483647"`
	NumeroJogo                     *int                     `json:"numeroJogo" validate:"required,min=-2147483648,max=2147483647"`
	Observacao                     *string                  `json:"observacao"`
	PremiacaoContingencia          *string                  `json:"premiacaoContingencia"`
	TipoJogo                       *string                  `json:"tipoJogo" validate:"required"`
	TipoPublicacao                 *int                     `json:"tipoPublicacao" validate:"required,min=-2147483648,max=2147483647"`
	UltimoConcurso                 *bool                    `json:"ultimoConcurso" validate:"required"`
	ValorArrecadado                *float64                 `json:"valorArrecadado" validate:"required"`
	ValorAcumuladoConcurso05       *float64                 `json:"valorAcumuladoConcurso_0_5" validate:"required"`
	ValorAcumuladoConcursoEspecial *float64                 `json:"valorAcumuladoConcursoEspecial" validate:"required"`
	ValorAcumuladoProximoConcurso  *float64                 `json:"valorAcumuladoProximoConcurso" validate:"required"`
	ValorEstimadoProximoConcurso   *float64                 `json:"valorEstimadoProximoConcurso" validate:"required"`
	ValorSaldoReservaGarantidora   *float64                 `json:"valorSaldoReservaGarantidora" validate:"required"`
	ValorTotalPremioFaixaUm        *float64                 `json:"valorTotalPremioFaixaUm" validate:"required"`
}

type MunicipalWinnerRequest struct {
	Ganhadores     *int    `json:"ganhadores" validate:"required,min=-2147483648,max=2147483647"`
	Municipio      *string `json:"municipio"`
	NomeFantasiaUL *string `json:"nomeFantasiaUL"`
	Posicao        *int    `json:"posicao" validate:"required,min=-2147483648,max=2147483647"`
	Serie          *string `json:"serie"`
	UF             *string `json:"uf" validate:"required"`
}

type PrizeTierRequest struct {
	DescricaoFaixa     *string  `json:"descricaoFaixa"`
	Faixa              *int     `json:"faixa" validate:"required,min=-2147483648,max=2147483647"`
	NumeroDeGanhadores *int     `json:"numeroDeGanhadores" validate:"omitempty,min=-2147483648,max=2147483647"`
	ValorPremio        *float64 `json:"valorPremio"`
}

type MegaSenaResultResponse struct {
	Result models.MegaSenaResult `json:"resultadoMegaSena"`
}

type MegaSenaResultsResponse struct {
	Results []models.MegaSenaResult `json:"resultadosMegaSena"`
}

type DeleteMegaSenaResponse struct {
	Message string                `json:"mensagem"`
	Deleted models.MegaSenaResult `json:"jogoExcluido"`
}

// ToModel converts a validated request into a result ready to persist.
// Callers must run validation first; required pointers are dereferenced.
func (r CreateMegaSenaRequest) ToModel() models.MegaSenaResult {
	result := models.MegaSenaResult{
		Accumulated:             *r.Acumulado,
		DrawDate:                *r.DataApuracao,
		NextDrawDate:            *r.DataProximoConcurso,
		NumbersInDrawOrder:      r.DezenasSorteadasOrdemSorteio,
		ShowCityBreakdown:       *r.ExibirDetalhamentoPorCidade,
		SpecialDrawIndicator:    *r.IndicadorConcursoEspecial,
		Numbers:                 r.ListaDezenas,
		SecondDrawNumbers:       r.ListaDezenasSegundoSorteio,
		TeamResults:             r.ListaResultadoEquipeEsportiva,
		DrawLocation:            *r.LocalSorteio,
		DrawCity:                *r.NomeMunicipioUFSorteio,
		LuckyMonthTeam:          r.NomeTimeCoracaoMesSorte,
		DrawNumber:              *r.Numero,
		PreviousDrawNumber:      r.NumeroConcursoAnterior,
		FinalDrawNumber05:       *r.NumeroConcursoFinal05,
		NextDrawNumber:          *r.NumeroConcursoProximo,
		GameNumber:              *r.NumeroJogo,
		Notes:                   r.Observacao,
		ContingencyPrize:        r.PremiacaoContingencia,
		GameType:                *r.TipoJogo,
		PublicationType:         *r.TipoPublicacao,
		LatestDraw:              *r.UltimoConcurso,
		AmountCollected:         *r.ValorArrecadado,
		AccumulatedFinal05:      *r.ValorAcumuladoConcurso05,
		AccumulatedSpecialDraw:  *r.ValorAcumuladoConcursoEspecial,
		AccumulatedNextDraw:     *r.ValorAcumuladoProximoConcurso,
		EstimatedNextDraw:       *r.ValorEstimadoProximoConcurso,
		GuaranteeReserveBalance: *r.ValorSaldoReservaGarantidora,
		TotalFirstTierPrize:     *r.ValorTotalPremioFaixaUm,
		MunicipalWinners:        make([]models.MunicipalWinner, 0, len(r.ListaMunicipioUFGanhadores)),
		PrizeTiers:              make([]models.PrizeTier, 0, len(r.ListaRateioPremio)),
	}
	for _, w := range r.ListaMunicipioUFGanhadores {
		result.MunicipalWinners = append(result.MunicipalWinners, models.MunicipalWinner{
			Winners:      *w.Ganhadores,
			Municipality: w.Municipio,
			DisplayName:  w.NomeFantasiaUL,
			Position:     *w.Posicao,
			Series:       w.Serie,
			State:        *w.UF,
		})
	}
	for _, p := range r.ListaRateioPremio {
		result.PrizeTiers = append(result.PrizeTiers, models.PrizeTier{
			Description: p.DescricaoFaixa,
			Tier:        *p.Faixa,
			WinnerCount: p.NumeroDeGanhadores,
			PrizeAmount: p.ValorPremio,
		})
	}
	return result
}
