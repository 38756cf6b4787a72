package fakes

import (
	"github.com/cloudfoundry-community/rds-helper/awsrds"
)

type FakeDBSnapshot struct {
	CreateCalled     bool
	CreateID         string
	CreateSnapshotID string
	CreateError      error

	ListCalled                bool
	ListID                    string
	ListDBSnapshotDetailsList []awsrds.DBSnapshotDetails
	ListError                 error

	DeleteCalled     bool
	DeleteSnapshotID string
	DeleteError      error
}

func (f *FakeDBSnapshot) Create(ID string, snapshotID string) error {
	f.CreateCalled = true
	f.CreateID = ID
	f.CreateSnapshotID = snapshotID

	return f.CreateError
}

func (f *FakeDBSnapshot) List(ID string) ([]awsrds.DBSnapshotDetails, error) {
	f.ListCalled = true
	f.ListID = ID

	return f.ListDBSnapshotDetailsList, f.ListError
}

func (f *FakeDBSnapshot) Delete(snapshotID string) error {
	f.DeleteCalled = true
	f.DeleteSnapshotID = snapshotID

	return f.DeleteError
}
