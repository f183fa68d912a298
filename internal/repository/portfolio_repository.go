package repository

//go:generate mockgen -source=portfolio_repository.go -destination=mocks/portfolio_repository.go -package=mock_repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	tradebook_errors "tradebook/internal"
	"tradebook/internal/db/models/postgres/public/model"
	. "tradebook/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type PortfolioRepository interface {
	Add(tx *sql.Tx, name string) (*model.Portfolio, error)
	Get(tx *sql.Tx, portfolioID uuid.UUID) (*model.Portfolio, error)
}

type portfolioRepositoryHandler struct{}

func NewPortfolioRepository() PortfolioRepository {
	return portfolioRepositoryHandler{}
}

func addPortfolioQuery(p model.Portfolio) postgres.InsertStatement {
	return Portfolio.INSERT(
		Portfolio.AllColumns,
	).MODEL(
		p,
	).RETURNING(
		Portfolio.AllColumns,
	)
}

func getPortfolioQuery(portfolioID uuid.UUID) postgres.SelectStatement {
	return Portfolio.SELECT(Portfolio.AllColumns).
		WHERE(
			Portfolio.PortfolioID.EQ(postgres.UUID(portfolioID)),
		)
}

func (h portfolioRepositoryHandler) Add(tx *sql.Tx, name string) (*model.Portfolio, error) {
	query := addPortfolioQuery(model.Portfolio{
		PortfolioID: uuid.New(),
		Name:        name,
		CreatedAt:   time.Now().UTC(),
	})

	out := &model.Portfolio{}
	err := query.Query(tx, out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert portfolio %q: %w", name, err)
	}

	return out, nil
}

func (h portfolioRepositoryHandler) Get(tx *sql.Tx, portfolioID uuid.UUID) (*model.Portfolio, error) {
	query := getPortfolioQuery(portfolioID)

	out := &model.Portfolio{}
	err := query.Query(tx, out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, tradebook_errors.ErrUnknownPortfolio{PortfolioID: portfolioID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query portfolio %s: %w", portfolioID.String(), err)
	}

	return out, nil
}
