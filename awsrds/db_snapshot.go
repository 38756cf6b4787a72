package awsrds

import (
	"errors"
	"time"
)

type DBSnapshot interface {
	Create(ID string, snapshotID string) error
	List(ID string) ([]DBSnapshotDetails, error)
	Delete(snapshotID string) error
}

type DBSnapshotDetails struct {
	Identifier         string
	InstanceIdentifier string
	Status             string
	Engine             string
	AllocatedStorage   int64
	CreateTime         time.Time
}

var (
	ErrDBSnapshotDoesNotExist = errors.New("rds db snapshot does not exist")
)
