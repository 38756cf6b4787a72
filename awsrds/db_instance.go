package awsrds

import (
	"errors"
)

type DBInstance interface {
	Describe(ID string) (DBInstanceDetails, error)
	List() ([]DBInstanceDetails, error)
	Create(ID string, dbInstanceDetails DBInstanceDetails) error
	Modify(ID string, dbInstanceDetails DBInstanceDetails, applyImmediately bool) error
	Delete(ID string, skipFinalSnapshot bool) error
	WaitUntilAvailable(ID string) error
}

type DBInstanceDetails struct {
	Identifier            string
	Status                string
	DBInstanceClass       string
	Engine                string
	EngineVersion         string
	DBName                string
	Address               string
	Port                  int64
	AllocatedStorage      int64
	AvailabilityZone      string
	BackupRetentionPeriod int64
	MasterUsername        string
	MasterUserPassword    string
	MultiAZ               bool
	PendingModifications  bool
	PubliclyAccessible    bool
	StorageEncrypted      bool
	StorageType           string
	Tags                  map[string]string
	VpcSecurityGroupIds   []string
}

var (
	ErrDBInstanceDoesNotExist = errors.New("rds db instance does not exist")
	ErrWaitTimeout            = errors.New("timed out waiting for rds db instance to become available")
)
