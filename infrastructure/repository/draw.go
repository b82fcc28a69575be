// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/creator-leaderboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/creator-leaderboard-api/internal/domain"
)

const (
	drawsTable = "draws d"
)

// DrawRepository persiste o histórico de sorteios. Só o registro de
// auditoria é gravado; os leaderboards em si nunca são persistidos.
type DrawRepository interface {
	SaveDraw(draw *domain.Draw) error
	ListByCompanyID(companyID string) ([]*domain.Draw, error)
}

type drawRepository struct {
	conn *postgres.Connection
}

func NewDrawRepository(conn *postgres.Connection) DrawRepository {
	return &drawRepository{
		conn: conn,
	}
}

func (r *drawRepository) SaveDraw(draw *domain.Draw) error {
	queryBuilder := squirrel.
		Insert("draws").
		Columns(
			"id",
			"company_id",
			"winner_actor_id",
			"winner_name",
			"pool_size",
			"date_range",
			"created_at",
		).
		Values(
			draw.ID,
			draw.CompanyID,
			draw.WinnerActorID,
			draw.WinnerName,
			draw.PoolSize,
			string(draw.Range),
			draw.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao inserir o sorteio: %w", err)
	}

	return nil
}

func (r *drawRepository) ListByCompanyID(companyID string) ([]*domain.Draw, error) {
	queryBuilder := squirrel.
		Select(
			"d.id",
			"d.company_id",
			"d.winner_actor_id",
			"d.winner_name",
			"d.pool_size",
			"d.date_range",
			"d.created_at",
		).
		From(drawsTable).
		Where(squirrel.Eq{"d.company_id": companyID}).
		OrderBy("d.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.Draw{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	draws := make([]*domain.Draw, 0)
	for rows.Next() {
		var (
			draw      domain.Draw
			dateRange string
		)

		err := rows.Scan(
			&draw.ID,
			&draw.CompanyID,
			&draw.WinnerActorID,
			&draw.WinnerName,
			&draw.PoolSize,
			&dateRange,
			&draw.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler o sorteio: %w", err)
		}

		draw.Range = domain.Range(dateRange)
		draws = append(draws, &draw)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return draws, nil
}
