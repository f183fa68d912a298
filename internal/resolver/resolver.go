package resolver

import (
	"context"
	"database/sql"

	api_types "tradebook/api-types"
	"tradebook/internal/service"

	"github.com/google/uuid"
)

//go:generate mockgen -source=resolver.go -destination=mocks/resolver.go -package=mock_resolver

type Resolver interface {
	// stateless
	Analyze(ctx context.Context, name string, raw []byte) (*api_types.AnalyzeResponse, error)

	// portfolio endpoints
	NewPortfolio(req api_types.NewPortfolioRequest) (*api_types.NewPortfolioResponse, error)
	SyncPortfolio(ctx context.Context, portfolioID uuid.UUID, name string, raw []byte) (*api_types.PortfolioPositionsResponse, error)
	GetPortfolioPositions(portfolioID uuid.UUID) (*api_types.PortfolioPositionsResponse, error)
}

type resolverHandler struct {
	Db               *sql.DB
	PositionsService service.PositionsService
}

func NewResolver(
	db *sql.DB,
	positionsService service.PositionsService,
) Resolver {
	return resolverHandler{
		Db:               db,
		PositionsService: positionsService,
	}
}
