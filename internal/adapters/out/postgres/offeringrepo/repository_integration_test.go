package offeringrepo_test

import (
	"context"
	"testing"
	"time"

	"dentallab/internal/adapters/out/postgres/offeringrepo"
	"dentallab/internal/adapters/out/postgres/pgtest"
	"dentallab/internal/core/domain/model/catalog"
	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

var now = time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)

type OfferingRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *offeringrepo.GormOfferingRepository
}

func (suite *OfferingRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.database = database
	suite.Require().NoError(err)
}

func (suite *OfferingRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.repository = offeringrepo.NewGormOfferingRepository(suite.database.DB)
}

func (suite *OfferingRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *OfferingRepositoryIntegrationTestSuite) terms(price string, days int) *catalog.Terms {
	t, err := catalog.NewTerms(kernel.MustNewMoney(price), days)
	suite.Require().NoError(err)
	return &t
}

func (suite *OfferingRepositoryIntegrationTestSuite) save(fulfiller int64, serviceType kernel.ServiceType, spec catalog.Spec) *catalog.Offering {
	o, err := catalog.NewOffering(kernel.MustNewID(fulfiller), serviceType, spec, now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Save(suite.T().Context(), o))
	return o
}

func (suite *OfferingRepositoryIntegrationTestSuite) TestSave_RoundTrip() {
	ctx := suite.T().Context()
	preferred := kernel.MustNewID(201)
	suite.save(200, kernel.ServiceTypeCrown, catalog.Spec{
		Policy:              catalog.PolicyEither,
		SelfTerms:           suite.terms("500", 7),
		DelegateTerms:       suite.terms("400", 10),
		PreferredDelegateID: &preferred,
		Description:         "Monolithic zirconia crown",
	})

	loaded, err := suite.repository.Get(ctx, kernel.MustNewID(200), kernel.ServiceTypeCrown)
	suite.Require().NoError(err)
	suite.Equal(catalog.PolicyEither, loaded.Policy())
	suite.Equal("500.00", loaded.SelfTerms().Price().String())
	suite.Equal(10, loaded.DelegateTerms().LeadTimeDays())
	suite.Require().NotNil(loaded.PreferredDelegateID())
	suite.True(loaded.PreferredDelegateID().IsEqual(preferred))
	suite.Equal("Monolithic zirconia crown", loaded.Description())
	suite.True(loaded.IsActive())
}

func (suite *OfferingRepositoryIntegrationTestSuite) TestSave_ReplacesExistingEntry() {
	ctx := suite.T().Context()
	o := suite.save(200, kernel.ServiceTypeCrown, catalog.Spec{
		Policy:    catalog.PolicySelfOnly,
		SelfTerms: suite.terms("500", 7),
	})

	suite.Require().NoError(o.Revise(catalog.Spec{
		Policy:        catalog.PolicyDelegateOnly,
		DelegateTerms: suite.terms("380", 12),
	}, now.Add(time.Hour)))
	o.SetActive(false, now.Add(time.Hour))
	suite.Require().NoError(suite.repository.Save(ctx, o))

	loaded, err := suite.repository.Get(ctx, kernel.MustNewID(200), kernel.ServiceTypeCrown)
	suite.Require().NoError(err)
	suite.Equal(catalog.PolicyDelegateOnly, loaded.Policy())
	suite.Nil(loaded.SelfTerms())
	suite.False(loaded.IsActive())
	suite.True(now.Add(time.Hour).Equal(loaded.UpdatedAt()))
}

func (suite *OfferingRepositoryIntegrationTestSuite) TestLists() {
	ctx := suite.T().Context()
	suite.save(201, kernel.ServiceTypeCrown, catalog.Spec{Policy: catalog.PolicySelfOnly, SelfTerms: suite.terms("450", 6)})
	suite.save(200, kernel.ServiceTypeResin, catalog.Spec{Policy: catalog.PolicySelfOnly, SelfTerms: suite.terms("90", 2)})
	suite.save(200, kernel.ServiceTypeCrown, catalog.Spec{Policy: catalog.PolicySelfOnly, SelfTerms: suite.terms("500", 7)})

	crowns, err := suite.repository.ListByServiceType(ctx, kernel.ServiceTypeCrown)
	suite.Require().NoError(err)
	suite.Require().Len(crowns, 2)
	suite.True(crowns[0].FulfillerID().IsEqual(kernel.MustNewID(200)))

	mine, err := suite.repository.ListByFulfiller(ctx, kernel.MustNewID(200))
	suite.Require().NoError(err)
	suite.Require().Len(mine, 2)
	suite.Equal(kernel.ServiceTypeCrown, mine[0].ServiceType())
}

func (suite *OfferingRepositoryIntegrationTestSuite) TestDelete() {
	ctx := suite.T().Context()
	suite.save(200, kernel.ServiceTypeCrown, catalog.Spec{Policy: catalog.PolicySelfOnly, SelfTerms: suite.terms("500", 7)})

	suite.Require().NoError(suite.repository.Delete(ctx, kernel.MustNewID(200), kernel.ServiceTypeCrown))

	_, err := suite.repository.Get(ctx, kernel.MustNewID(200), kernel.ServiceTypeCrown)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	err = suite.repository.Delete(ctx, kernel.MustNewID(200), kernel.ServiceTypeCrown)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestOfferingRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OfferingRepositoryIntegrationTestSuite))
}
