package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/creator-leaderboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/creator-leaderboard-api/internal/domain"
)

const (
	companiesTable = "companies c"
)

// CompanyRepository guarda as instalações registradas do dashboard.
// O registro alimenta o agendador de warmup e o script de seed; a sessão
// do iframe continua sendo a autoridade sobre a empresa da consulta.
type CompanyRepository interface {
	ListCompanies() ([]*domain.Company, error)
	GetByExternalID(externalID string) (*domain.Company, error)
}

type companyRepository struct {
	conn *postgres.Connection
}

func NewCompanyRepository(conn *postgres.Connection) CompanyRepository {
	return &companyRepository{
		conn: conn,
	}
}

func (r *companyRepository) ListCompanies() ([]*domain.Company, error) {
	queryBuilder := companySelect().
		OrderBy("c.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.Company{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	companies := make([]*domain.Company, 0)
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return companies, nil
}

func (r *companyRepository) GetByExternalID(externalID string) (*domain.Company, error) {
	queryBuilder := companySelect().
		Where(squirrel.Eq{"c.external_id": externalID}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	return scanCompany(rows)
}

func companySelect() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"c.id",
			"c.external_id",
			"c.name",
			"c.timezone",
			"c.created_at",
		).
		From(companiesTable)
}

func scanCompany(rows *sql.Rows) (*domain.Company, error) {
	var company domain.Company

	err := rows.Scan(
		&company.ID,
		&company.ExternalID,
		&company.Name,
		&company.Timezone,
		&company.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a empresa: %w", err)
	}

	return &company, nil
}
