package gorm

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type CollectionsSuite struct {
	suite.Suite
	DB   *gorm.DB
	mock sqlmock.Sqlmock
}

func (s *CollectionsSuite) SetupTest() {
	var (
		db  *sql.DB
		err error
	)

	db, s.mock, err = sqlmock.New()
	require.NoError(s.T(), err)

	s.DB, err = gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(s.T(), err)
}

func (s *CollectionsSuite) AfterTest(_, _ string) {
	require.NoError(s.T(), s.mock.ExpectationsWereMet())
}

func TestCollectionsStore(t *testing.T) {
	suite.Run(t, new(CollectionsSuite))
}

func collectionRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "organization_id", "name", "created_at"})
}

func (s *CollectionsSuite) TestGetManyByOrganizationID() {
	store := NewCollectionsStore(s.DB)

	s.mock.ExpectQuery(`FROM collections\s+WHERE organization_id =`).
		WithArgs("org1").
		WillReturnRows(collectionRows().
			AddRow("col1", "org1", "Engineering", nil).
			AddRow("col2", "org1", "Finance", nil))

	collections := store.GetManyByOrganizationID("org1")
	s.Len(collections, 2)
	s.Equal("Engineering", collections[0].Name)
}

func (s *CollectionsSuite) TestGetManyByUserIDLegacyHonorsAccessAll() {
	store := NewCollectionsStore(s.DB)

	s.mock.ExpectQuery(`ou\.access_all OR cu\.collection_id IS NOT NULL OR g\.access_all`).
		WithArgs("u1").
		WillReturnRows(collectionRows().AddRow("col1", "org1", "Engineering", nil))

	collections := store.GetManyByUserID("u1", false)
	s.Len(collections, 1)
}

func (s *CollectionsSuite) TestGetManyByUserIDFlexibleGrantsOnly() {
	store := NewCollectionsStore(s.DB)

	s.mock.ExpectQuery(`WHERE cu\.collection_id IS NOT NULL OR cg\.collection_id IS NOT NULL`).
		WithArgs("u1").
		WillReturnRows(collectionRows())

	collections := store.GetManyByUserID("u1", true)
	s.Empty(collections)
}

func (s *CollectionsSuite) TestCountByOrganizationID() {
	store := NewCollectionsStore(s.DB)

	s.mock.ExpectQuery(`SELECT COUNT\(\*\) FROM collections`).
		WithArgs("org1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	s.Equal(4, store.CountByOrganizationID("org1"))
}

func (s *CollectionsSuite) TestDeleteUser() {
	store := NewCollectionsStore(s.DB)

	s.mock.ExpectExec(`DELETE FROM collection_users\s+WHERE collection_id = .+ AND organization_user_id =`).
		WithArgs("col1", "ou1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	s.NoError(store.DeleteUser("col1", "ou1"))
}
