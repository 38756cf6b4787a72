package fakes

import (
	"github.com/cloudfoundry-community/rds-helper/awsrds"
)

type FakeDBInstance struct {
	DescribeCalled            bool
	DescribeID                string
	DescribeDBInstanceDetails awsrds.DBInstanceDetails
	DescribeError             error

	ListCalled                bool
	ListDBInstanceDetailsList []awsrds.DBInstanceDetails
	ListError                 error

	CreateCalled            bool
	CreateID                string
	CreateDBInstanceDetails awsrds.DBInstanceDetails
	CreateError             error

	ModifyCalled            bool
	ModifyID                string
	ModifyDBInstanceDetails awsrds.DBInstanceDetails
	ModifyApplyImmediately  bool
	ModifyError             error

	DeleteCalled            bool
	DeleteID                string
	DeleteSkipFinalSnapshot bool
	DeleteError             error

	WaitUntilAvailableCalled bool
	WaitUntilAvailableID     string
	WaitUntilAvailableError  error
}

func (f *FakeDBInstance) Describe(ID string) (awsrds.DBInstanceDetails, error) {
	f.DescribeCalled = true
	f.DescribeID = ID

	return f.DescribeDBInstanceDetails, f.DescribeError
}

func (f *FakeDBInstance) List() ([]awsrds.DBInstanceDetails, error) {
	f.ListCalled = true

	return f.ListDBInstanceDetailsList, f.ListError
}

func (f *FakeDBInstance) Create(ID string, dbInstanceDetails awsrds.DBInstanceDetails) error {
	f.CreateCalled = true
	f.CreateID = ID
	f.CreateDBInstanceDetails = dbInstanceDetails

	return f.CreateError
}

func (f *FakeDBInstance) Modify(ID string, dbInstanceDetails awsrds.DBInstanceDetails, applyImmediately bool) error {
	f.ModifyCalled = true
	f.ModifyID = ID
	f.ModifyDBInstanceDetails = dbInstanceDetails
	f.ModifyApplyImmediately = applyImmediately

	return f.ModifyError
}

func (f *FakeDBInstance) Delete(ID string, skipFinalSnapshot bool) error {
	f.DeleteCalled = true
	f.DeleteID = ID
	f.DeleteSkipFinalSnapshot = skipFinalSnapshot

	return f.DeleteError
}

func (f *FakeDBInstance) WaitUntilAvailable(ID string) error {
	f.WaitUntilAvailableCalled = true
	f.WaitUntilAvailableID = ID

	return f.WaitUntilAvailableError
}
