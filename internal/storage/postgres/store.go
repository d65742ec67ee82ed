package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hongminglow/megasena-be/internal/models"
	"github.com/hongminglow/megasena-be/internal/storage"
)

// Ensure Store satisfies the storage.Store interface at compile time.
var _ storage.Store = (*Store)(nil)

// Store provides Postgres-backed persistence for users, saved numbers and draw results.
type Store struct {
	pool *pgxpool.Pool
}

// querier is satisfied by both the pool and an open transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// NewStore creates a new Store and runs migrations.
func NewStore(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	s := &Store{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

// Close releases database resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Ping checks that the database answers.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Store) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS saved_numbers (
			id TEXT PRIMARY KEY,
			user_id TEXT UNIQUE NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			numbers TEXT[] NOT NULL DEFAULT '{}',
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS megasena_results (
			id TEXT PRIMARY KEY,
			acumulado BOOLEAN NOT NULL,
			data_apuracao TEXT NOT NULL,
			data_proximo_concurso TEXT NOT NULL,
			dezenas_sorteadas_ordem_sorteio TEXT[] NOT NULL,
			exibir_detalhamento_por_cidade BOOLEAN NOT NULL,
			indicador_concurso_especial INTEGER NOT NULL,
			lista_dezenas TEXT[] NOT NULL,
			lista_dezenas_segundo_sorteio TEXT,
			lista_resultado_equipe_esportiva TEXT[] NOT NULL,
			local_sorteio TEXT NOT NULL,
			nome_municipio_uf_sorteio TEXT NOT NULL,
			nome_time_coracao_mes_sorte TEXT,
			numero INTEGER NOT NULL,
			numero_concurso_anterior INTEGER,
			numero_concurso_final_0_5 INTEGER NOT NULL,
			numero_concurso_proximo INTEGER NOT NULL,
			numero_jogo INTEGER NOT NULL,
			observacao TEXT,
			premiacao_contingencia TEXT,
			tipo_jogo TEXT NOT NULL,
			tipo_publicacao INTEGER NOT NULL,
			ultimo_concurso BOOLEAN NOT NULL,
			valor_arrecadado DOUBLE PRECISION NOT NULL,
			valor_acumulado_concurso_0_5 DOUBLE PRECISION NOT NULL,
			valor_acumulado_concurso_especial DOUBLE PRECISION NOT NULL,
			valor_acumulado_proximo_concurso DOUBLE PRECISION NOT NULL,
			valor_estimado_proximo_concurso DOUBLE PRECISION NOT NULL,
			valor_saldo_reserva_garantidora DOUBLE PRECISION NOT NULL,
			valor_total_premio_faixa_um DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS megasena_municipal_winners (
			id TEXT PRIMARY KEY,
			result_id TEXT NOT NULL REFERENCES megasena_results(id) ON DELETE CASCADE,
			ganhadores INTEGER NOT NULL,
			municipio TEXT,
			nome_fantasia_ul TEXT,
			posicao INTEGER NOT NULL,
			serie TEXT,
			uf TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS megasena_municipal_winners_result_idx ON megasena_municipal_winners (result_id);`,
		`CREATE TABLE IF NOT EXISTS megasena_prize_tiers (
			id TEXT PRIMARY KEY,
			result_id TEXT NOT NULL REFERENCES megasena_results(id) ON DELETE CASCADE,
			descricao_faixa TEXT,
			faixa INTEGER NOT NULL,
			numero_de_ganhadores INTEGER,
			valor_premio DOUBLE PRECISION
		);`,
		`CREATE INDEX IF NOT EXISTS megasena_prize_tiers_result_idx ON megasena_prize_tiers (result_id);`,
	}
	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}
	return nil
}

// CreateUser inserts a new user row. A duplicate email maps to storage.ErrAlreadyExists.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	const query = `
		INSERT INTO users (id, name, email, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, password_hash, created_at;
	`
	row := s.pool.QueryRow(ctx, query, uuid.NewString(), user.Name, user.Email, user.PasswordHash)
	created, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, storage.ErrAlreadyExists
		}
		return models.User{}, err
	}
	return created, nil
}

// FindByEmail fetches a user by email address.
func (s *Store) FindByEmail(ctx context.Context, email string) (models.User, error) {
	const query = `
	SELECT id, name, email, password_hash, created_at
	FROM users
	WHERE email = $1;
	`
	row := s.pool.QueryRow(ctx, query, email)
	return scanUser(row)
}

// ListUsers returns all users ordered by creation time, each with its saved numbers.
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	const query = `
	SELECT u.id, u.name, u.email, u.password_hash, u.created_at,
		sn.id, sn.numbers, sn.updated_at
	FROM users u
	LEFT JOIN saved_numbers sn ON sn.user_id = u.id
	ORDER BY u.created_at, u.id;
	`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var (
			user      models.User
			savedID   *string
			numbers   []string
			updatedAt *time.Time
		)
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt, &savedID, &numbers, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		if savedID != nil {
			user.SavedNumbers = &models.SavedNumbers{
				ID:        *savedID,
				UserID:    user.ID,
				Numbers:   nonNil(numbers),
				UpdatedAt: *updatedAt,
			}
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func scanUser(row pgx.Row) (models.User, error) {
	var user models.User
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, storage.ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
