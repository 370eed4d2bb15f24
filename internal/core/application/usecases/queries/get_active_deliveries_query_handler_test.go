package queries_test

import (
	"context"
	"testing"
	"time"

	"pedidos/internal/adapters/out/postgres/deliveryrepo"
	"pedidos/internal/core/application/usecases/queries"
	"pedidos/internal/core/domain/model/delivery"
	"pedidos/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (t *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GetActiveDeliveriesQueryHandlerTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	handler      queries.GetActiveDeliveriesQueryHandler
	deliveryRepo *deliveryrepo.GormDeliveryRepository
}

func (suite *GetActiveDeliveriesQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&deliveryrepo.DeliveryDTO{}, &deliveryrepo.EvidenceDTO{}, &deliveryrepo.IncidentDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetActiveDeliveriesQueryHandler(db)
	suite.deliveryRepo = deliveryrepo.NewGormDeliveryRepository(db, &mockAggregateTracker{})
}

func (suite *GetActiveDeliveriesQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetActiveDeliveriesQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE entregas CASCADE").Error)
}

func (suite *GetActiveDeliveriesQueryHandlerTestSuite) newDelivery(assignedAt time.Time) *delivery.Delivery {
	d, err := delivery.NewDelivery(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), assignedAt,
	)
	suite.Require().NoError(err)
	return d
}

func (suite *GetActiveDeliveriesQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	result, err := suite.handler.Handle(context.Background(), queries.NewGetActiveDeliveriesQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetActiveDeliveriesQueryHandlerTestSuite) TestHandle_ReturnsOnlyActiveDeliveries() {
	ctx := context.Background()
	base := time.Date(2026, 9, 2, 8, 0, 0, 0, time.UTC)

	pending := suite.newDelivery(base)
	enRoute := suite.newDelivery(base.Add(time.Hour))
	suite.Require().NoError(enRoute.StartRoute(base.Add(2 * time.Hour)))
	canceled := suite.newDelivery(base.Add(3 * time.Hour))
	suite.Require().NoError(canceled.Cancel("cliente ausente"))

	suite.Require().NoError(suite.deliveryRepo.Add(ctx, pending))
	suite.Require().NoError(suite.deliveryRepo.Add(ctx, enRoute))
	suite.Require().NoError(suite.deliveryRepo.Add(ctx, canceled))

	result, err := suite.handler.Handle(ctx, queries.NewGetActiveDeliveriesQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.True(result[0].ID.IsEqual(pending.ID()), "oldest assignment first")
	suite.Equal(delivery.Pending.String(), result[0].Estado)
	suite.Nil(result[0].SalidaRutaEn)

	suite.True(result[1].ID.IsEqual(enRoute.ID()))
	suite.Equal(delivery.EnRoute.String(), result[1].Estado)
	suite.NotNil(result[1].SalidaRutaEn)
}

func (suite *GetActiveDeliveriesQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	result, err := suite.handler.Handle(context.Background(), queries.GetActiveDeliveriesQuery{})

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetActiveDeliveriesQuery constructor")
}

func TestGetActiveDeliveriesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetActiveDeliveriesQueryHandlerTestSuite))
}
