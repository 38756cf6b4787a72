package awsrds

import (
	"errors"

	"code.cloudfoundry.org/lager/v3"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/rds"
)

type RDSDBSnapshot struct {
	region string
	rdssvc *rds.RDS
	logger lager.Logger
}

func NewRDSDBSnapshot(
	region string,
	rdssvc *rds.RDS,
	logger lager.Logger,
) *RDSDBSnapshot {
	return &RDSDBSnapshot{
		region: region,
		rdssvc: rdssvc,
		logger: logger.Session("db-snapshot"),
	}
}

func (r *RDSDBSnapshot) Create(ID string, snapshotID string) error {
	createDBSnapshotInput := &rds.CreateDBSnapshotInput{
		DBInstanceIdentifier: aws.String(ID),
		DBSnapshotIdentifier: aws.String(snapshotID),
	}
	r.logger.Debug("create-db-snapshot", lager.Data{"input": createDBSnapshotInput})

	createDBSnapshotOutput, err := r.rdssvc.CreateDBSnapshot(createDBSnapshotInput)
	if err != nil {
		return r.rdsError(err)
	}
	r.logger.Debug("create-db-snapshot", lager.Data{"output": createDBSnapshotOutput})

	return nil
}

func (r *RDSDBSnapshot) List(ID string) ([]DBSnapshotDetails, error) {
	describeDBSnapshotsInput := &rds.DescribeDBSnapshotsInput{
		DBInstanceIdentifier: aws.String(ID),
	}
	r.logger.Debug("describe-db-snapshots", lager.Data{"input": describeDBSnapshotsInput})

	dbSnapshots, err := r.rdssvc.DescribeDBSnapshots(describeDBSnapshotsInput)
	if err != nil {
		return nil, r.rdsError(err)
	}

	dbSnapshotDetailsList := make([]DBSnapshotDetails, 0, len(dbSnapshots.DBSnapshots))
	for _, dbSnapshot := range dbSnapshots.DBSnapshots {
		dbSnapshotDetailsList = append(dbSnapshotDetailsList, r.buildDBSnapshot(dbSnapshot))
	}

	return dbSnapshotDetailsList, nil
}

func (r *RDSDBSnapshot) Delete(snapshotID string) error {
	deleteDBSnapshotInput := &rds.DeleteDBSnapshotInput{
		DBSnapshotIdentifier: aws.String(snapshotID),
	}
	r.logger.Debug("delete-db-snapshot", lager.Data{"input": deleteDBSnapshotInput})

	deleteDBSnapshotOutput, err := r.rdssvc.DeleteDBSnapshot(deleteDBSnapshotInput)
	if err != nil {
		return r.rdsError(err)
	}
	r.logger.Debug("delete-db-snapshot", lager.Data{"output": deleteDBSnapshotOutput})

	return nil
}

func (r *RDSDBSnapshot) rdsError(err error) error {
	r.logger.Error("aws-rds-error", err)
	if awsErr, ok := err.(awserr.Error); ok {
		if reqErr, ok := err.(awserr.RequestFailure); ok {
			if reqErr.StatusCode() == 404 {
				return ErrDBSnapshotDoesNotExist
			}
		}
		if awsErr.Code() == rds.ErrCodeDBSnapshotNotFoundFault {
			return ErrDBSnapshotDoesNotExist
		}
		return errors.New(awsErr.Code() + ": " + awsErr.Message())
	}
	return err
}

func (r *RDSDBSnapshot) buildDBSnapshot(dbSnapshot *rds.DBSnapshot) DBSnapshotDetails {
	return DBSnapshotDetails{
		Identifier:         aws.StringValue(dbSnapshot.DBSnapshotIdentifier),
		InstanceIdentifier: aws.StringValue(dbSnapshot.DBInstanceIdentifier),
		Status:             aws.StringValue(dbSnapshot.Status),
		Engine:             aws.StringValue(dbSnapshot.Engine),
		AllocatedStorage:   aws.Int64Value(dbSnapshot.AllocatedStorage),
		CreateTime:         aws.TimeValue(dbSnapshot.SnapshotCreateTime),
	}
}
