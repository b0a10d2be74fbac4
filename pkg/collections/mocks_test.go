package collections

import (
	"github.com/stretchr/testify/mock"

	"github.com/doodlesbykumbi/vaultorg/pkg/audit"
	"github.com/doodlesbykumbi/vaultorg/pkg/model"
	"github.com/doodlesbykumbi/vaultorg/pkg/reference"
)

// MockOrganizationsStore implements store.OrganizationsStore for testing
// using testify/mock
type MockOrganizationsStore struct {
	mock.Mock
}

func (m *MockOrganizationsStore) GetOrganization(id string) *model.Organization {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*model.Organization)
}

// MockOrgUsersStore implements store.OrgUsersStore for testing using
// testify/mock
type MockOrgUsersStore struct {
	mock.Mock
}

func (m *MockOrgUsersStore) GetOrgUser(id string) *model.OrganizationUser {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*model.OrganizationUser)
}

// MockCollectionsStore implements store.CollectionsStore for testing using
// testify/mock
type MockCollectionsStore struct {
	mock.Mock
}

func (m *MockCollectionsStore) GetCollection(id string) *model.Collection {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*model.Collection)
}

func (m *MockCollectionsStore) GetManyByOrganizationID(organizationID string) []model.Collection {
	args := m.Called(organizationID)
	return args.Get(0).([]model.Collection)
}

func (m *MockCollectionsStore) GetManyByUserID(userID string, flexible bool) []model.Collection {
	args := m.Called(userID, flexible)
	return args.Get(0).([]model.Collection)
}

func (m *MockCollectionsStore) CountByOrganizationID(organizationID string) int {
	args := m.Called(organizationID)
	return args.Int(0)
}

func (m *MockCollectionsStore) Create(collection *model.Collection, groupAccess, userAccess []model.CollectionAccessSelection) error {
	args := m.Called(collection, groupAccess, userAccess)
	return args.Error(0)
}

func (m *MockCollectionsStore) Replace(collection *model.Collection, groupAccess, userAccess []model.CollectionAccessSelection) error {
	args := m.Called(collection, groupAccess, userAccess)
	return args.Error(0)
}

func (m *MockCollectionsStore) DeleteUser(collectionID, organizationUserID string) error {
	args := m.Called(collectionID, organizationUserID)
	return args.Error(0)
}

// MockEventLogger captures audit events emitted by the service
type MockEventLogger struct {
	mock.Mock
}

func (m *MockEventLogger) Log(event audit.Event) {
	m.Called(event)
}

// MockEmitter captures reference events emitted by the service
type MockEmitter struct {
	mock.Mock
}

func (m *MockEmitter) Raise(event reference.Event) error {
	args := m.Called(event)
	return args.Error(0)
}
