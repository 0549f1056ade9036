package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/smart-jordan/internal/domain"
	"github.com/smart-jordan/internal/domain/repository"
	"github.com/smart-jordan/internal/repository/postgres/testhelpers"
)

// StatusRepositoryTestSuite тестирует все методы StatusRepository
type StatusRepositoryTestSuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repo   repository.StatusRepository
	ctx    context.Context
}

// SetupSuite выполняется один раз перед всеми тестами
func (s *StatusRepositoryTestSuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	err := testhelpers.ApplyMigrations(s.testDB.DB.DB)
	s.Require().NoError(err, "Failed to apply migrations")

	s.repo = testhelpers.NewStatusRepositoryForTest(s.testDB.DB, s.testDB.Logger)
}

// TearDownSuite выполняется один раз после всех тестов
func (s *StatusRepositoryTestSuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

// SetupTest выполняется перед каждым тестом
func (s *StatusRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.Require().NoError(s.testDB.Cleanup(s.ctx))

	err := testhelpers.LoadFixtures(s.testDB.DB.DB, "testdata/fixtures", []string{"status_checks.sql"})
	s.Require().NoError(err, "Failed to load fixtures")
}

func (s *StatusRepositoryTestSuite) TestCreate_Success() {
	check := &domain.StatusCheck{
		ID:         uuid.New(),
		ClientName: "test_client",
		Timestamp:  time.Now().UTC(),
	}

	err := s.repo.Create(s.ctx, check)
	s.NoError(err)

	n, err := testhelpers.CountRows(s.testDB.DB.DB, "status_checks")
	s.NoError(err)
	s.Equal(3, n)
}

func (s *StatusRepositoryTestSuite) TestCreate_DuplicateID() {
	check := &domain.StatusCheck{
		ID:         uuid.MustParse("6f1c2d3e-0000-4000-8000-000000000001"),
		ClientName: "duplicate",
		Timestamp:  time.Now().UTC(),
	}

	err := s.repo.Create(s.ctx, check)
	s.Error(err)
}

func (s *StatusRepositoryTestSuite) TestList_NewestFirst() {
	checks, err := s.repo.List(s.ctx, 10)
	s.NoError(err)
	s.Require().Len(checks, 2)
	s.Equal("fixture_client_new", checks[0].ClientName)
	s.Equal("fixture_client_old", checks[1].ClientName)
}

func (s *StatusRepositoryTestSuite) TestList_Limit() {
	checks, err := s.repo.List(s.ctx, 1)
	s.NoError(err)
	s.Len(checks, 1)
}

func TestStatusRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(StatusRepositoryTestSuite))
}
