package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hongminglow/megasena-be/internal/models"
	"github.com/hongminglow/megasena-be/internal/storage"
)

const resultColumns = `id, acumulado, data_apuracao, data_proximo_concurso, dezenas_sorteadas_ordem_sorteio,
	exibir_detalhamento_por_cidade, indicador_concurso_especial, lista_dezenas, lista_dezenas_segundo_sorteio,
	lista_resultado_equipe_esportiva, local_sorteio, nome_municipio_uf_sorteio, nome_time_coracao_mes_sorte,
	numero, numero_concurso_anterior, numero_concurso_final_0_5, numero_concurso_proximo, numero_jogo,
	observacao, premiacao_contingencia, tipo_jogo, tipo_publicacao, ultimo_concurso, valor_arrecadado,
	valor_acumulado_concurso_0_5, valor_acumulado_concurso_especial, valor_acumulado_proximo_concurso,
	valor_estimado_proximo_concurso, valor_saldo_reserva_garantidora, valor_total_premio_faixa_um, created_at`

var (
	winnerColumns = []string{"id", "result_id", "ganhadores", "municipio", "nome_fantasia_ul", "posicao", "serie", "uf"}
	tierColumns   = []string{"id", "result_id", "descricao_faixa", "faixa", "numero_de_ganhadores", "valor_premio"}
)

// CreateResult inserts the parent row, then copies both child collections
// inside the same transaction. Any failure rolls the whole write back.
func (s *Store) CreateResult(ctx context.Context, result models.MegaSenaResult) (models.MegaSenaResult, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return models.MegaSenaResult{}, fmt.Errorf("begin create result: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	result.ID = uuid.NewString()
	result.NumbersInDrawOrder = nonNil(result.NumbersInDrawOrder)
	result.Numbers = nonNil(result.Numbers)
	result.TeamResults = nonNil(result.TeamResults)

	const insertResult = `
		INSERT INTO megasena_results (` + resultColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24, $25, $26, $27, $28, $29, $30, NOW())
		RETURNING created_at;
	`
	err = tx.QueryRow(ctx, insertResult,
		result.ID, result.Accumulated, result.DrawDate, result.NextDrawDate, result.NumbersInDrawOrder,
		result.ShowCityBreakdown, result.SpecialDrawIndicator, result.Numbers, result.SecondDrawNumbers,
		result.TeamResults, result.DrawLocation, result.DrawCity, result.LuckyMonthTeam,
		result.DrawNumber, result.PreviousDrawNumber, result.FinalDrawNumber05, result.NextDrawNumber, result.GameNumber,
		result.Notes, result.ContingencyPrize, result.GameType, result.PublicationType, result.LatestDraw, result.AmountCollected,
		result.AccumulatedFinal05, result.AccumulatedSpecialDraw, result.AccumulatedNextDraw,
		result.EstimatedNextDraw, result.GuaranteeReserveBalance, result.TotalFirstTierPrize,
	).Scan(&result.CreatedAt)
	if err != nil {
		return models.MegaSenaResult{}, fmt.Errorf("insert result: %w", err)
	}

	winners := make([]models.MunicipalWinner, len(result.MunicipalWinners))
	for i, w := range result.MunicipalWinners {
		w.ID = uuid.NewString()
		w.ResultID = result.ID
		winners[i] = w
	}
	_, err = tx.CopyFrom(ctx, pgx.Identifier{"megasena_municipal_winners"}, winnerColumns,
		pgx.CopyFromSlice(len(winners), func(i int) ([]any, error) {
			w := winners[i]
			return []any{w.ID, w.ResultID, w.Winners, w.Municipality, w.DisplayName, w.Position, w.Series, w.State}, nil
		}))
	if err != nil {
		return models.MegaSenaResult{}, fmt.Errorf("insert municipal winners: %w", err)
	}

	tiers := make([]models.PrizeTier, len(result.PrizeTiers))
	for i, p := range result.PrizeTiers {
		p.ID = uuid.NewString()
		p.ResultID = result.ID
		tiers[i] = p
	}
	_, err = tx.CopyFrom(ctx, pgx.Identifier{"megasena_prize_tiers"}, tierColumns,
		pgx.CopyFromSlice(len(tiers), func(i int) ([]any, error) {
			p := tiers[i]
			return []any{p.ID, p.ResultID, p.Description, p.Tier, p.WinnerCount, p.PrizeAmount}, nil
		}))
	if err != nil {
		return models.MegaSenaResult{}, fmt.Errorf("insert prize tiers: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return models.MegaSenaResult{}, fmt.Errorf("commit create result: %w", err)
	}

	result.MunicipalWinners = winners
	result.PrizeTiers = tiers
	return result, nil
}

// ListResults returns every result, newest draw first, with both child collections.
func (s *Store) ListResults(ctx context.Context) ([]models.MegaSenaResult, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+resultColumns+` FROM megasena_results ORDER BY numero DESC, created_at DESC;`)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	results, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.MegaSenaResult, error) {
		return scanResult(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan results: %w", err)
	}
	if err := attachChildren(ctx, s.pool, results); err != nil {
		return nil, err
	}
	return results, nil
}

// DeleteResult loads the result with its children, then deletes it; the
// foreign keys cascade to the child tables.
func (s *Store) DeleteResult(ctx context.Context, id string) (models.MegaSenaResult, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return models.MegaSenaResult{}, fmt.Errorf("begin delete result: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `SELECT `+resultColumns+` FROM megasena_results WHERE id = $1 FOR UPDATE;`, id)
	result, err := scanResult(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.MegaSenaResult{}, storage.ErrNotFound
		}
		return models.MegaSenaResult{}, fmt.Errorf("load result: %w", err)
	}
	results := []models.MegaSenaResult{result}
	if err := attachChildren(ctx, tx, results); err != nil {
		return models.MegaSenaResult{}, err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM megasena_results WHERE id = $1;`, id)
	if err != nil {
		return models.MegaSenaResult{}, fmt.Errorf("delete result: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.MegaSenaResult{}, storage.ErrNotFound
	}
	if err := tx.Commit(ctx); err != nil {
		return models.MegaSenaResult{}, fmt.Errorf("commit delete result: %w", err)
	}
	return results[0], nil
}

func scanResult(row pgx.Row) (models.MegaSenaResult, error) {
	var r models.MegaSenaResult
	err := row.Scan(
		&r.ID, &r.Accumulated, &r.DrawDate, &r.NextDrawDate, &r.NumbersInDrawOrder,
		&r.ShowCityBreakdown, &r.SpecialDrawIndicator, &r.Numbers, &r.SecondDrawNumbers,
		&r.TeamResults, &r.DrawLocation, &r.DrawCity, &r.LuckyMonthTeam,
		&r.DrawNumber, &r.PreviousDrawNumber, &r.FinalDrawNumber05, &r.NextDrawNumber, &r.GameNumber,
		&r.Notes, &r.ContingencyPrize, &r.GameType, &r.PublicationType, &r.LatestDraw, &r.AmountCollected,
		&r.AccumulatedFinal05, &r.AccumulatedSpecialDraw, &r.AccumulatedNextDraw,
		&r.EstimatedNextDraw, &r.GuaranteeReserveBalance, &r.TotalFirstTierPrize, &r.CreatedAt,
	)
	if err != nil {
		return models.MegaSenaResult{}, err
	}
	r.MunicipalWinners = []models.MunicipalWinner{}
	r.PrizeTiers = []models.PrizeTier{}
	return r, nil
}

// attachChildren fills both child collections of results in two queries.
func attachChildren(ctx context.Context, q querier, results []models.MegaSenaResult) error {
	if len(results) == 0 {
		return nil
	}
	ids := make([]string, len(results))
	index := make(map[string]int, len(results))
	for i, r := range results {
		ids[i] = r.ID
		index[r.ID] = i
	}

	rows, err := q.Query(ctx, `
		SELECT id, result_id, ganhadores, municipio, nome_fantasia_ul, posicao, serie, uf
		FROM megasena_municipal_winners
		WHERE result_id = ANY($1)
		ORDER BY posicao, id;`, ids)
	if err != nil {
		return fmt.Errorf("list municipal winners: %w", err)
	}
	winners, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.MunicipalWinner, error) {
		var w models.MunicipalWinner
		err := row.Scan(&w.ID, &w.ResultID, &w.Winners, &w.Municipality, &w.DisplayName, &w.Position, &w.Series, &w.State)
		return w, err
	})
	if err != nil {
		return fmt.Errorf("scan municipal winners: %w", err)
	}
	for _, w := range winners {
		i := index[w.ResultID]
		results[i].MunicipalWinners = append(results[i].MunicipalWinners, w)
	}

	rows, err = q.Query(ctx, `
		SELECT id, result_id, descricao_faixa, faixa, numero_de_ganhadores, valor_premio
		FROM megasena_prize_tiers
		WHERE result_id = ANY($1)
		ORDER BY faixa, id;`, ids)
	if err != nil {
		return fmt.Errorf("list prize tiers: %w", err)
	}
	tiers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.PrizeTier, error) {
		var p models.PrizeTier
		err := row.Scan(&p.ID, &p.ResultID, &p.Description, &p.Tier, &p.WinnerCount, &p.PrizeAmount)
		return p, err
	})
	if err != nil {
		return fmt.Errorf("scan prize tiers: %w", err)
	}
	for _, p := range tiers {
		i := index[p.ResultID]
		results[i].PrizeTiers = append(results[i].PrizeTiers, p)
	}
	return nil
}
