package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/vaultorg/pkg/audit"
	"github.com/doodlesbykumbi/vaultorg/pkg/capability"
	"github.com/doodlesbykumbi/vaultorg/pkg/flags"
	"github.com/doodlesbykumbi/vaultorg/pkg/model"
	"github.com/doodlesbykumbi/vaultorg/pkg/reference"
	"github.com/doodlesbykumbi/vaultorg/pkg/server/store"
)

type serviceFixture struct {
	orgs        *MockOrganizationsStore
	orgUsers    *MockOrgUsersStore
	collections *MockCollectionsStore
	events      *MockEventLogger
	emitter     *MockEmitter
	service     *Service
}

func newFixture(oracle flags.Oracle) *serviceFixture {
	f := &serviceFixture{
		orgs:        &MockOrganizationsStore{},
		orgUsers:    &MockOrgUsersStore{},
		collections: &MockCollectionsStore{},
		events:      &MockEventLogger{},
		emitter:     &MockEmitter{},
	}
	f.service = NewService(f.orgs, f.orgUsers, f.collections, oracle, f.events, f.emitter)
	return f
}

func intPtr(n int) *int { return &n }

func enabledOrg(id string) *model.Organization {
	return &model.Organization{ID: id, Enabled: true, UseGroups: true}
}

var _ store.CollectionsStore = (*MockCollectionsStore)(nil)
var _ store.OrganizationsStore = (*MockOrganizationsStore)(nil)
var _ store.OrgUsersStore = (*MockOrgUsersStore)(nil)

func TestSaveOrganizationNotFound(t *testing.T) {
	f := newFixture(flags.Static{})
	f.orgs.On("GetOrganization", "missing").Return(nil)

	err := f.service.Save(&model.Collection{OrganizationID: "missing"}, nil, nil, "u1")

	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "Organization not found")
	f.collections.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestSaveManageInvariant(t *testing.T) {
	tests := []struct {
		name        string
		flagOn      bool
		adminAccess bool
		groupAccess []model.CollectionAccessSelection
		userAccess  []model.CollectionAccessSelection
		wantErr     bool
	}{
		{
			name:       "flag on, nobody manages",
			flagOn:     true,
			userAccess: []model.CollectionAccessSelection{{ID: "ou1", ReadOnly: true}},
			wantErr:    true,
		},
		{
			name:    "flag on, no grants at all",
			flagOn:  true,
			wantErr: true,
		},
		{
			name:       "flag on, user manages",
			flagOn:     true,
			userAccess: []model.CollectionAccessSelection{{ID: "ou1", Manage: true}},
		},
		{
			name:        "flag on, group manages",
			flagOn:      true,
			groupAccess: []model.CollectionAccessSelection{{ID: "g1", Manage: true}},
		},
		{
			name:        "flag on, admin access override",
			flagOn:      true,
			adminAccess: true,
			userAccess:  []model.CollectionAccessSelection{{ID: "ou1", ReadOnly: true}},
		},
		{
			name:       "flag off, nobody manages",
			flagOn:     false,
			userAccess: []model.CollectionAccessSelection{{ID: "ou1", ReadOnly: true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(flags.Static{flags.FlexibleCollectionsV1: tt.flagOn})

			org := enabledOrg("org1")
			org.AllowAdminAccessToAllCollectionItems = tt.adminAccess
			f.orgs.On("GetOrganization", "org1").Return(org)

			if !tt.wantErr {
				f.collections.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil)
				f.events.On("Log", mock.Anything).Return()
				f.emitter.On("Raise", mock.Anything).Return(nil)
			}

			err := f.service.Save(&model.Collection{OrganizationID: "org1"}, tt.groupAccess, tt.userAccess, "u1")

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsValidation(err))
				assert.Contains(t, err.Error(), "can manage permission")
				f.collections.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestSaveCreateQuota(t *testing.T) {
	tests := []struct {
		name    string
		max     *int
		count   int
		wantErr bool
	}{
		{"no quota", nil, 100, false},
		{"under quota", intPtr(3), 2, false},
		{"at quota", intPtr(3), 3, true},
		{"over quota", intPtr(3), 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(flags.Static{})

			org := enabledOrg("org1")
			org.MaxCollections = tt.max
			f.orgs.On("GetOrganization", "org1").Return(org)
			if tt.max != nil {
				f.collections.On("CountByOrganizationID", "org1").Return(tt.count)
			}

			if !tt.wantErr {
				f.collections.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil)
				f.events.On("Log", mock.Anything).Return()
				f.emitter.On("Raise", mock.Anything).Return(nil)
			}

			err := f.service.Save(&model.Collection{OrganizationID: "org1", Name: "Eng"}, nil, nil, "u1")

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsValidation(err))
				assert.Contains(t, err.Error(), "maximum number of collections (3)")
				f.collections.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				f.collections.AssertCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestSaveCreateAssignsIDAndEmitsEvents(t *testing.T) {
	f := newFixture(flags.Static{})

	f.orgs.On("GetOrganization", "org1").Return(enabledOrg("org1"))
	f.collections.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.events.On("Log", mock.MatchedBy(func(e audit.Event) bool {
		ce, ok := e.(audit.CollectionEvent)
		return ok && ce.Type == audit.EventCollectionCreated
	})).Return()
	f.emitter.On("Raise", mock.MatchedBy(func(e reference.Event) bool {
		return e.Type == reference.CollectionCreated && e.OrganizationID == "org1"
	})).Return(nil)

	collection := &model.Collection{OrganizationID: "org1", Name: "Eng"}
	require.NoError(t, f.service.Save(collection, nil, nil, "u1"))

	assert.NotEmpty(t, collection.ID)
	f.events.AssertExpectations(t)
	f.emitter.AssertExpectations(t)
}

func TestSaveReplaceEmitsUpdatedEvent(t *testing.T) {
	f := newFixture(flags.Static{})

	f.orgs.On("GetOrganization", "org1").Return(enabledOrg("org1"))
	f.collections.On("Replace", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.events.On("Log", mock.MatchedBy(func(e audit.Event) bool {
		ce, ok := e.(audit.CollectionEvent)
		return ok && ce.Type == audit.EventCollectionUpdated && ce.CollectionID == "col1"
	})).Return()

	collection := &model.Collection{ID: "col1", OrganizationID: "org1", Name: "Eng"}
	require.NoError(t, f.service.Save(collection, nil, nil, "u1"))

	// No quota check and no reference event on replace.
	f.collections.AssertNotCalled(t, "CountByOrganizationID", mock.Anything)
	f.emitter.AssertNotCalled(t, "Raise", mock.Anything)
	f.events.AssertExpectations(t)
}

func TestSaveDropsGroupAccessWhenGroupsDisabled(t *testing.T) {
	f := newFixture(flags.Static{})

	org := enabledOrg("org1")
	org.UseGroups = false
	f.orgs.On("GetOrganization", "org1").Return(org)

	groupAccess := []model.CollectionAccessSelection{{ID: "g1", Manage: true}}
	userAccess := []model.CollectionAccessSelection{{ID: "ou1"}}

	f.collections.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.events.On("Log", mock.Anything).Return()
	f.emitter.On("Raise", mock.Anything).Return(nil)

	require.NoError(t, f.service.Save(&model.Collection{OrganizationID: "org1"}, groupAccess, userAccess, "u1"))

	f.collections.AssertCalled(t, "Create", mock.Anything,
		[]model.CollectionAccessSelection(nil), userAccess)
}

func TestSaveCreateFailureEmitsNothing(t *testing.T) {
	f := newFixture(flags.Static{})

	f.orgs.On("GetOrganization", "org1").Return(enabledOrg("org1"))
	f.collections.On("Create", mock.Anything, mock.Anything, mock.Anything).
		Return(assert.AnError)

	err := f.service.Save(&model.Collection{OrganizationID: "org1"}, nil, nil, "u1")

	require.Error(t, err)
	f.events.AssertNotCalled(t, "Log", mock.Anything)
	f.emitter.AssertNotCalled(t, "Raise", mock.Anything)
}

func TestDeleteUser(t *testing.T) {
	f := newFixture(flags.Static{})

	orgUser := &model.OrganizationUser{ID: "ou1", OrganizationID: "org1"}
	f.orgUsers.On("GetOrgUser", "ou1").Return(orgUser)
	f.collections.On("DeleteUser", "col1", "ou1").Return(nil)
	f.events.On("Log", mock.MatchedBy(func(e audit.Event) bool {
		oe, ok := e.(audit.OrganizationUserEvent)
		return ok && oe.Type == audit.EventOrganizationUserUpdated && oe.OrganizationUserID == "ou1"
	})).Return()

	collection := &model.Collection{ID: "col1", OrganizationID: "org1"}
	require.NoError(t, f.service.DeleteUser(collection, "ou1", "u1"))

	f.events.AssertExpectations(t)
}

func TestDeleteUserNotFound(t *testing.T) {
	tests := []struct {
		name    string
		orgUser *model.OrganizationUser
	}{
		{"missing org user", nil},
		{"wrong organization", &model.OrganizationUser{ID: "ou1", OrganizationID: "other-org"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(flags.Static{})
			f.orgUsers.On("GetOrgUser", "ou1").Return(tt.orgUser)

			collection := &model.Collection{ID: "col1", OrganizationID: "org1"}
			err := f.service.DeleteUser(collection, "ou1", "u1")

			assert.ErrorIs(t, err, ErrNotFound)
			f.collections.AssertNotCalled(t, "DeleteUser", mock.Anything, mock.Anything)
		})
	}
}

func TestGetOrganizationCollectionsRequiresCapability(t *testing.T) {
	f := newFixture(flags.Static{})

	_, err := f.service.GetOrganizationCollections("org1", capability.NewSet(), "u1")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetOrganizationCollectionsFullView(t *testing.T) {
	all := []model.Collection{
		{ID: "col1", OrganizationID: "org1"},
		{ID: "col2", OrganizationID: "org1"},
	}

	for _, c := range []capability.Capability{capability.ViewAllCollections, capability.AccessImportExport} {
		f := newFixture(flags.Static{})
		f.collections.On("GetManyByOrganizationID", "org1").Return(all)

		got, err := f.service.GetOrganizationCollections("org1", capability.NewSet(c), "u1")

		require.NoError(t, err)
		assert.Equal(t, all, got)
		f.collections.AssertNotCalled(t, "GetManyByUserID", mock.Anything, mock.Anything)
	}
}

func TestGetOrganizationCollectionsAssignedOnly(t *testing.T) {
	f := newFixture(flags.Static{flags.FlexibleCollections: true})

	assigned := []model.Collection{
		{ID: "col1", OrganizationID: "org1"},
		{ID: "col3", OrganizationID: "org2"},
	}
	f.collections.On("GetManyByUserID", "u1", true).Return(assigned)

	got, err := f.service.GetOrganizationCollections("org1",
		capability.NewSet(capability.ViewAssignedCollections), "u1")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "col1", got[0].ID)
}

func TestGetOrganizationCollectionsLegacyListing(t *testing.T) {
	f := newFixture(flags.Static{flags.FlexibleCollections: false})

	f.collections.On("GetManyByUserID", "u1", false).Return([]model.Collection{})

	got, err := f.service.GetOrganizationCollections("org1",
		capability.NewSet(capability.ManageUsers), "u1")

	require.NoError(t, err)
	assert.Empty(t, got)
	f.collections.AssertCalled(t, "GetManyByUserID", "u1", false)
}

func TestGetCollection(t *testing.T) {
	f := newFixture(flags.Static{})

	existing := &model.Collection{ID: "col1", OrganizationID: "org1"}
	f.collections.On("GetCollection", "col1").Return(existing)

	got, err := f.service.GetCollection("org1", "col1")

	require.NoError(t, err)
	assert.Equal(t, existing, got)
}

func TestGetCollectionNotFound(t *testing.T) {
	tests := []struct {
		name     string
		existing *model.Collection
	}{
		{"missing collection", nil},
		{"other organization", &model.Collection{ID: "col1", OrganizationID: "org2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(flags.Static{})
			f.collections.On("GetCollection", "col1").Return(tt.existing)

			_, err := f.service.GetCollection("org1", "col1")

			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}
