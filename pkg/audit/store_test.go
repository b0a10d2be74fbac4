package audit

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestStoreSave(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	store := NewStoreWithDB(db)

	event := CollectionEvent{
		Type:           EventCollectionCreated,
		CollectionID:   "col-1",
		OrganizationID: "org-1",
		ActingUserID:   "user-1",
	}

	mock.ExpectExec(`INSERT INTO messages`).
		WithArgs(
			FacilityAuthPriv,     // facility
			int(SeverityInfo),    // severity
			sqlmock.AnyArg(),     // timestamp
			sqlmock.AnyArg(),     // hostname
			"vaultorg",           // appname
			sqlmock.AnyArg(),     // procid
			"collection-created", // msgid
			sqlmock.AnyArg(),     // sdata (JSON)
			sqlmock.AnyArg(),     // message
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := store.Save(event); err != nil {
		t.Errorf("Save() error = %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestStoreSaveNilDB(t *testing.T) {
	store := &Store{}
	if err := store.Save(CollectionEvent{Type: EventCollectionDeleted}); err != nil {
		t.Errorf("Save() with nil db should be a no-op, got %v", err)
	}
}
