package collections

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/doodlesbykumbi/vaultorg/pkg/audit"
	"github.com/doodlesbykumbi/vaultorg/pkg/capability"
	"github.com/doodlesbykumbi/vaultorg/pkg/flags"
	"github.com/doodlesbykumbi/vaultorg/pkg/model"
	"github.com/doodlesbykumbi/vaultorg/pkg/reference"
	"github.com/doodlesbykumbi/vaultorg/pkg/server/store"
)

// EventLogger receives audit events after a successful write.
type EventLogger interface {
	Log(event audit.Event)
}

// AuditEventLogger forwards events to the package-level audit pipeline.
type AuditEventLogger struct{}

func (AuditEventLogger) Log(event audit.Event) {
	audit.Log(event)
}

// Service implements the collection operations.
type Service struct {
	orgs        store.OrganizationsStore
	orgUsers    store.OrgUsersStore
	collections store.CollectionsStore
	flags       flags.Oracle
	events      EventLogger
	reference   reference.Emitter
}

// NewService creates a collection service.
func NewService(
	orgs store.OrganizationsStore,
	orgUsers store.OrgUsersStore,
	collections store.CollectionsStore,
	oracle flags.Oracle,
	events EventLogger,
	emitter reference.Emitter,
) *Service {
	return &Service{
		orgs:        orgs,
		orgUsers:    orgUsers,
		collections: collections,
		flags:       oracle,
		events:      events,
		reference:   emitter,
	}
}

// Save creates a collection (empty id) or replaces an existing collection's
// access lists. Validation runs strictly before any write; events are
// emitted strictly after the write succeeds.
func (s *Service) Save(collection *model.Collection, groupAccess, userAccess []model.CollectionAccessSelection, actingUserID string) error {
	org := s.orgs.GetOrganization(collection.OrganizationID)
	if org == nil {
		return &ValidationError{Message: "Organization not found"}
	}

	// A collection should always have someone with can-manage permission
	// once the flexible model is active for the organization.
	if s.flags.IsEnabled(flags.FlexibleCollectionsV1) {
		if !model.AnyManage(groupAccess) && !model.AnyManage(userAccess) &&
			!org.AllowAdminAccessToAllCollectionItems {
			return &ValidationError{
				Message: "At least one member or group must have can manage permission.",
			}
		}
	}

	if !org.UseGroups {
		groupAccess = nil
	}

	if collection.ID == "" {
		if org.MaxCollections != nil {
			count := s.collections.CountByOrganizationID(org.ID)
			if *org.MaxCollections <= count {
				return &ValidationError{
					Message: fmt.Sprintf(
						"You have reached the maximum number of collections (%d) for this organization.",
						*org.MaxCollections),
				}
			}
		}

		collection.ID = uuid.NewString()
		if err := s.collections.Create(collection, groupAccess, userAccess); err != nil {
			collection.ID = ""
			return err
		}

		s.events.Log(audit.CollectionEvent{
			Type:           audit.EventCollectionCreated,
			CollectionID:   collection.ID,
			OrganizationID: org.ID,
			ActingUserID:   actingUserID,
		})
		_ = s.reference.Raise(reference.Event{
			Type:           reference.CollectionCreated,
			OrganizationID: org.ID,
		})
		return nil
	}

	if err := s.collections.Replace(collection, groupAccess, userAccess); err != nil {
		return err
	}

	s.events.Log(audit.CollectionEvent{
		Type:           audit.EventCollectionUpdated,
		CollectionID:   collection.ID,
		OrganizationID: org.ID,
		ActingUserID:   actingUserID,
	})
	return nil
}

// DeleteUser removes one user's direct grant from a collection. Group
// derived access for the same user is unaffected.
func (s *Service) DeleteUser(collection *model.Collection, organizationUserID, actingUserID string) error {
	orgUser := s.orgUsers.GetOrgUser(organizationUserID)
	if orgUser == nil || orgUser.OrganizationID != collection.OrganizationID {
		return ErrNotFound
	}

	if err := s.collections.DeleteUser(collection.ID, organizationUserID); err != nil {
		return err
	}

	s.events.Log(audit.OrganizationUserEvent{
		Type:               audit.EventOrganizationUserUpdated,
		OrganizationUserID: orgUser.ID,
		OrganizationID:     orgUser.OrganizationID,
		ActingUserID:       actingUserID,
	})
	return nil
}

// GetCollection fetches one collection scoped to an organization. A missing
// collection and a collection owned by another organization are both
// ErrNotFound.
func (s *Service) GetCollection(organizationID, id string) (*model.Collection, error) {
	collection := s.collections.GetCollection(id)
	if collection == nil || collection.OrganizationID != organizationID {
		return nil, ErrNotFound
	}
	return collection, nil
}

// GetOrganizationCollections lists the collections the caller may see in an
// organization. Callers with no qualifying capability get ErrNotFound, the
// same signal as a missing organization.
func (s *Service) GetOrganizationCollections(organizationID string, caps capability.Set, userID string) ([]model.Collection, error) {
	if !caps.HasAny(
		capability.ViewAssignedCollections,
		capability.ViewAllCollections,
		capability.ManageUsers,
		capability.ManageGroups,
		capability.AccessImportExport,
	) {
		return nil, ErrNotFound
	}

	// Admins, owners, and import/export holders see every collection even
	// when not assigned to them.
	if caps.HasAny(capability.ViewAllCollections, capability.AccessImportExport) {
		return s.collections.GetManyByOrganizationID(organizationID), nil
	}

	assigned := s.collections.GetManyByUserID(userID, s.flags.IsEnabled(flags.FlexibleCollections))

	// The lookup spans organizations; filter defensively so the caller
	// never sees a collection outside the requested one.
	var result []model.Collection
	for _, c := range assigned {
		if c.OrganizationID == organizationID {
			result = append(result, c)
		}
	}
	return result, nil
}
