package awsrds

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/iam"
	"github.com/aws/aws-sdk-go/service/rds"
)

const dbInstanceAvailableStatus = "available"

type RDSDBInstance struct {
	region string
	iamsvc *iam.IAM
	rdssvc *rds.RDS
	logger lager.Logger

	// Availability polling policy. Defaults match the provider's own
	// waiter (30s interval, 60 attempts).
	WaitPollInterval time.Duration
	WaitMaxAttempts  int
}

func NewRDSDBInstance(
	region string,
	iamsvc *iam.IAM,
	rdssvc *rds.RDS,
	logger lager.Logger,
) *RDSDBInstance {
	return &RDSDBInstance{
		region:           region,
		iamsvc:           iamsvc,
		rdssvc:           rdssvc,
		logger:           logger.Session("db-instance"),
		WaitPollInterval: 30 * time.Second,
		WaitMaxAttempts:  60,
	}
}

func (r *RDSDBInstance) Describe(ID string) (DBInstanceDetails, error) {
	dbInstanceDetails := DBInstanceDetails{}

	describeDBInstancesInput := &rds.DescribeDBInstancesInput{
		DBInstanceIdentifier: aws.String(ID),
	}

	r.logger.Debug("describe-db-instances", lager.Data{"input": describeDBInstancesInput})

	dbInstances, err := r.rdssvc.DescribeDBInstances(describeDBInstancesInput)
	if err != nil {
		return dbInstanceDetails, r.rdsError(err)
	}

	for _, dbInstance := range dbInstances.DBInstances {
		if aws.StringValue(dbInstance.DBInstanceIdentifier) == ID {
			r.logger.Debug("describe-db-instances", lager.Data{"db-instance": dbInstance})
			return r.buildDBInstance(dbInstance), nil
		}
	}

	return dbInstanceDetails, ErrDBInstanceDoesNotExist
}

func (r *RDSDBInstance) List() ([]DBInstanceDetails, error) {
	describeDBInstancesInput := &rds.DescribeDBInstancesInput{}

	r.logger.Debug("describe-db-instances", lager.Data{"input": describeDBInstancesInput})

	dbInstances, err := r.rdssvc.DescribeDBInstances(describeDBInstancesInput)
	if err != nil {
		return nil, r.rdsError(err)
	}

	dbInstanceDetailsList := make([]DBInstanceDetails, 0, len(dbInstances.DBInstances))
	for _, dbInstance := range dbInstances.DBInstances {
		dbInstanceDetailsList = append(dbInstanceDetailsList, r.buildDBInstance(dbInstance))
	}

	return dbInstanceDetailsList, nil
}

func (r *RDSDBInstance) Create(ID string, dbInstanceDetails DBInstanceDetails) error {
	createDBInstanceInput := r.buildCreateDBInstanceInput(ID, dbInstanceDetails)
	r.logger.Debug("create-db-instance", lager.Data{"input": createDBInstanceInput})

	createDBInstanceOutput, err := r.rdssvc.CreateDBInstance(createDBInstanceInput)
	if err != nil {
		return r.rdsError(err)
	}
	r.logger.Debug("create-db-instance", lager.Data{"output": createDBInstanceOutput})

	return nil
}

func (r *RDSDBInstance) Modify(ID string, dbInstanceDetails DBInstanceDetails, applyImmediately bool) error {
	modifyDBInstanceInput := r.buildModifyDBInstanceInput(ID, dbInstanceDetails, applyImmediately)
	r.logger.Debug("modify-db-instance", lager.Data{"input": modifyDBInstanceInput})

	modifyDBInstanceOutput, err := r.rdssvc.ModifyDBInstance(modifyDBInstanceInput)
	if err != nil {
		return r.rdsError(err)
	}
	r.logger.Debug("modify-db-instance", lager.Data{"output": modifyDBInstanceOutput})

	if len(dbInstanceDetails.Tags) > 0 {
		dbInstanceARN, err := r.dbInstanceARN(ID)
		if err != nil {
			return nil
		}

		tags := BuildRDSTags(dbInstanceDetails.Tags)
		AddTagsToResource(dbInstanceARN, tags, r.rdssvc, r.logger)
	}

	return nil
}

func (r *RDSDBInstance) Delete(ID string, skipFinalSnapshot bool) error {
	deleteDBInstanceInput := r.buildDeleteDBInstanceInput(ID, skipFinalSnapshot)
	r.logger.Debug("delete-db-instance", lager.Data{"input": deleteDBInstanceInput})

	deleteDBInstanceOutput, err := r.rdssvc.DeleteDBInstance(deleteDBInstanceInput)
	if err != nil {
		return r.rdsError(err)
	}
	r.logger.Debug("delete-db-instance", lager.Data{"output": deleteDBInstanceOutput})

	return nil
}

func (r *RDSDBInstance) WaitUntilAvailable(ID string) error {
	for attempt := 1; attempt <= r.WaitMaxAttempts; attempt++ {
		dbInstanceDetails, err := r.Describe(ID)
		if err != nil {
			return err
		}

		if dbInstanceDetails.Status == dbInstanceAvailableStatus {
			r.logger.Info("wait-until-available", lager.Data{"id": ID, "attempts": attempt})
			return nil
		}

		r.logger.Debug("wait-until-available", lager.Data{"id": ID, "status": dbInstanceDetails.Status, "attempt": attempt})

		if attempt < r.WaitMaxAttempts {
			time.Sleep(r.WaitPollInterval)
		}
	}

	return ErrWaitTimeout
}

func (r *RDSDBInstance) rdsError(err error) error {
	r.logger.Error("aws-rds-error", err)
	if awsErr, ok := err.(awserr.Error); ok {
		if reqErr, ok := err.(awserr.RequestFailure); ok {
			if reqErr.StatusCode() == 404 {
				return ErrDBInstanceDoesNotExist
			}
		}
		if awsErr.Code() == rds.ErrCodeDBInstanceNotFoundFault {
			return ErrDBInstanceDoesNotExist
		}
		return errors.New(awsErr.Code() + ": " + awsErr.Message())
	}
	return err
}

func (r *RDSDBInstance) buildDBInstance(dbInstance *rds.DBInstance) DBInstanceDetails {
	dbInstanceDetails := DBInstanceDetails{
		Identifier:       aws.StringValue(dbInstance.DBInstanceIdentifier),
		Status:           aws.StringValue(dbInstance.DBInstanceStatus),
		DBInstanceClass:  aws.StringValue(dbInstance.DBInstanceClass),
		Engine:           aws.StringValue(dbInstance.Engine),
		EngineVersion:    aws.StringValue(dbInstance.EngineVersion),
		DBName:           aws.StringValue(dbInstance.DBName),
		MasterUsername:   aws.StringValue(dbInstance.MasterUsername),
		AllocatedStorage: aws.Int64Value(dbInstance.AllocatedStorage),
		MultiAZ:          aws.BoolValue(dbInstance.MultiAZ),
	}

	if dbInstance.Endpoint != nil {
		dbInstanceDetails.Address = aws.StringValue(dbInstance.Endpoint.Address)
		dbInstanceDetails.Port = aws.Int64Value(dbInstance.Endpoint.Port)
	}

	if dbInstance.PendingModifiedValues != nil {
		emptyPendingModifiedValues := &rds.PendingModifiedValues{}
		if !reflect.DeepEqual(*dbInstance.PendingModifiedValues, *emptyPendingModifiedValues) {
			dbInstanceDetails.PendingModifications = true
		}
	}

	return dbInstanceDetails
}

func (r *RDSDBInstance) buildCreateDBInstanceInput(ID string, dbInstanceDetails DBInstanceDetails) *rds.CreateDBInstanceInput {
	createDBInstanceInput := &rds.CreateDBInstanceInput{
		DBInstanceIdentifier: aws.String(ID),
		Engine:               aws.String(dbInstanceDetails.Engine),
	}

	if dbInstanceDetails.AllocatedStorage > 0 {
		createDBInstanceInput.AllocatedStorage = aws.Int64(dbInstanceDetails.AllocatedStorage)
	}

	if dbInstanceDetails.AvailabilityZone != "" {
		createDBInstanceInput.AvailabilityZone = aws.String(dbInstanceDetails.AvailabilityZone)
	}

	if dbInstanceDetails.BackupRetentionPeriod > 0 {
		createDBInstanceInput.BackupRetentionPeriod = aws.Int64(dbInstanceDetails.BackupRetentionPeriod)
	}

	if dbInstanceDetails.DBInstanceClass != "" {
		createDBInstanceInput.DBInstanceClass = aws.String(dbInstanceDetails.DBInstanceClass)
	}

	if dbInstanceDetails.DBName != "" {
		createDBInstanceInput.DBName = aws.String(dbInstanceDetails.DBName)
	}

	if dbInstanceDetails.EngineVersion != "" {
		createDBInstanceInput.EngineVersion = aws.String(dbInstanceDetails.EngineVersion)
	}

	if dbInstanceDetails.MasterUsername != "" {
		createDBInstanceInput.MasterUsername = aws.String(dbInstanceDetails.MasterUsername)
	}

	if dbInstanceDetails.MasterUserPassword != "" {
		createDBInstanceInput.MasterUserPassword = aws.String(dbInstanceDetails.MasterUserPassword)
	}

	createDBInstanceInput.MultiAZ = aws.Bool(dbInstanceDetails.MultiAZ)

	if dbInstanceDetails.Port > 0 {
		createDBInstanceInput.Port = aws.Int64(dbInstanceDetails.Port)
	}

	createDBInstanceInput.PubliclyAccessible = aws.Bool(dbInstanceDetails.PubliclyAccessible)

	createDBInstanceInput.StorageEncrypted = aws.Bool(dbInstanceDetails.StorageEncrypted)

	if dbInstanceDetails.StorageType != "" {
		createDBInstanceInput.StorageType = aws.String(dbInstanceDetails.StorageType)
	}

	if len(dbInstanceDetails.VpcSecurityGroupIds) > 0 {
		createDBInstanceInput.VpcSecurityGroupIds = aws.StringSlice(dbInstanceDetails.VpcSecurityGroupIds)
	}

	if len(dbInstanceDetails.Tags) > 0 {
		createDBInstanceInput.Tags = BuildRDSTags(dbInstanceDetails.Tags)
	}

	return createDBInstanceInput
}

func (r *RDSDBInstance) buildModifyDBInstanceInput(ID string, dbInstanceDetails DBInstanceDetails, applyImmediately bool) *rds.ModifyDBInstanceInput {
	modifyDBInstanceInput := &rds.ModifyDBInstanceInput{
		DBInstanceIdentifier: aws.String(ID),
		ApplyImmediately:     aws.Bool(applyImmediately),
	}

	if dbInstanceDetails.AllocatedStorage > 0 {
		modifyDBInstanceInput.AllocatedStorage = aws.Int64(dbInstanceDetails.AllocatedStorage)
	}

	if dbInstanceDetails.BackupRetentionPeriod > 0 {
		modifyDBInstanceInput.BackupRetentionPeriod = aws.Int64(dbInstanceDetails.BackupRetentionPeriod)
	}

	if dbInstanceDetails.DBInstanceClass != "" {
		modifyDBInstanceInput.DBInstanceClass = aws.String(dbInstanceDetails.DBInstanceClass)
	}

	if dbInstanceDetails.MasterUserPassword != "" {
		modifyDBInstanceInput.MasterUserPassword = aws.String(dbInstanceDetails.MasterUserPassword)
	}

	if dbInstanceDetails.StorageType != "" {
		modifyDBInstanceInput.StorageType = aws.String(dbInstanceDetails.StorageType)
	}

	if len(dbInstanceDetails.VpcSecurityGroupIds) > 0 {
		modifyDBInstanceInput.VpcSecurityGroupIds = aws.StringSlice(dbInstanceDetails.VpcSecurityGroupIds)
	}

	return modifyDBInstanceInput
}

func (r *RDSDBInstance) buildDeleteDBInstanceInput(ID string, skipFinalSnapshot bool) *rds.DeleteDBInstanceInput {
	deleteDBInstanceInput := &rds.DeleteDBInstanceInput{
		DBInstanceIdentifier: aws.String(ID),
		SkipFinalSnapshot:    aws.Bool(skipFinalSnapshot),
	}

	if !skipFinalSnapshot {
		deleteDBInstanceInput.FinalDBSnapshotIdentifier = aws.String(r.finalDBSnapshotName(ID))
	}

	return deleteDBInstanceInput
}

func (r *RDSDBInstance) finalDBSnapshotName(ID string) string {
	return fmt.Sprintf("rds-helper-%s-%s", ID, time.Now().Format("2006-01-02-15-04-05"))
}

func (r *RDSDBInstance) dbInstanceARN(ID string) (string, error) {
	userAccount, err := UserAccount(r.iamsvc)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("arn:aws:rds:%s:%s:db:%s", r.region, userAccount, ID), nil
}
