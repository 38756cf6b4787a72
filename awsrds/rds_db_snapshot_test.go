package awsrds_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/cloudfoundry-community/rds-helper/awsrds"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/lager/v3/lagertest"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/rds"
)

var _ = Describe("RDS DB Snapshot", func() {
	var (
		region               string
		dbInstanceIdentifier string
		dbSnapshotIdentifier string

		awsSession *session.Session

		rdssvc  *rds.RDS
		rdsCall func(r *request.Request)

		testSink *lagertest.TestSink
		logger   lager.Logger

		rdsDBSnapshot *RDSDBSnapshot
	)

	BeforeEach(func() {
		region = "rds-region"
		dbInstanceIdentifier = "test-db"
		dbSnapshotIdentifier = "test-db-snapshot"
	})

	JustBeforeEach(func() {
		awsSession = session.New(aws.NewConfig().WithRegion(region))

		rdssvc = rds.New(awsSession)

		logger = lager.NewLogger("rdsdbsnapshot_test")
		testSink = lagertest.NewTestSink()
		logger.RegisterSink(testSink)

		rdsDBSnapshot = NewRDSDBSnapshot(region, rdssvc, logger)
	})

	Describe("Create", func() {
		var (
			createDBSnapshotInput *rds.CreateDBSnapshotInput
			createDBSnapshotError error
		)

		BeforeEach(func() {
			createDBSnapshotInput = &rds.CreateDBSnapshotInput{
				DBInstanceIdentifier: aws.String(dbInstanceIdentifier),
				DBSnapshotIdentifier: aws.String(dbSnapshotIdentifier),
			}
			createDBSnapshotError = nil
		})

		JustBeforeEach(func() {
			rdssvc.Handlers.Clear()

			rdsCall = func(r *request.Request) {
				Expect(r.Operation.Name).To(Equal("CreateDBSnapshot"))
				Expect(r.Params).To(BeAssignableToTypeOf(&rds.CreateDBSnapshotInput{}))
				Expect(r.Params).To(Equal(createDBSnapshotInput))
				r.Error = createDBSnapshotError
			}
			rdssvc.Handlers.Send.PushBack(rdsCall)
		})

		It("creates the DB Snapshot with the proper input", func() {
			err := rdsDBSnapshot.Create(dbInstanceIdentifier, dbSnapshotIdentifier)
			Expect(err).ToNot(HaveOccurred())
		})

		Context("when creating the DB Snapshot fails", func() {
			BeforeEach(func() {
				createDBSnapshotError = awserr.New("code", "message", errors.New("operation failed"))
			})

			It("returns the proper error", func() {
				err := rdsDBSnapshot.Create(dbInstanceIdentifier, dbSnapshotIdentifier)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(Equal("code: message"))
			})
		})
	})

	Describe("List", func() {
		var (
			describeDBSnapshots     []*rds.DBSnapshot
			describeDBSnapshotError error
		)

		BeforeEach(func() {
			describeDBSnapshots = []*rds.DBSnapshot{
				&rds.DBSnapshot{
					DBSnapshotIdentifier: aws.String(dbSnapshotIdentifier),
					DBInstanceIdentifier: aws.String(dbInstanceIdentifier),
					Status:               aws.String("available"),
					Engine:               aws.String("mysql"),
					AllocatedStorage:     aws.Int64(20),
				},
			}
			describeDBSnapshotError = nil
		})

		JustBeforeEach(func() {
			rdssvc.Handlers.Clear()

			rdsCall = func(r *request.Request) {
				Expect(r.Operation.Name).To(Equal("DescribeDBSnapshots"))
				Expect(r.Params).To(Equal(&rds.DescribeDBSnapshotsInput{
					DBInstanceIdentifier: aws.String(dbInstanceIdentifier),
				}))
				data := r.Data.(*rds.DescribeDBSnapshotsOutput)
				data.DBSnapshots = describeDBSnapshots
				r.Error = describeDBSnapshotError
			}
			rdssvc.Handlers.Send.PushBack(rdsCall)
		})

		It("returns the DB Snapshots for the DB Instance", func() {
			dbSnapshotDetailsList, err := rdsDBSnapshot.List(dbInstanceIdentifier)
			Expect(err).ToNot(HaveOccurred())
			Expect(dbSnapshotDetailsList).To(HaveLen(1))
			Expect(dbSnapshotDetailsList[0].Identifier).To(Equal(dbSnapshotIdentifier))
			Expect(dbSnapshotDetailsList[0].InstanceIdentifier).To(Equal(dbInstanceIdentifier))
			Expect(dbSnapshotDetailsList[0].Status).To(Equal("available"))
		})

		Context("when describing the DB Snapshots fails", func() {
			BeforeEach(func() {
				describeDBSnapshotError = errors.New("operation failed")
			})

			It("returns the proper error", func() {
				_, err := rdsDBSnapshot.List(dbInstanceIdentifier)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(Equal("operation failed"))
			})
		})
	})

	Describe("Delete", func() {
		var (
			deleteDBSnapshotError error
		)

		BeforeEach(func() {
			deleteDBSnapshotError = nil
		})

		JustBeforeEach(func() {
			rdssvc.Handlers.Clear()

			rdsCall = func(r *request.Request) {
				Expect(r.Operation.Name).To(Equal("DeleteDBSnapshot"))
				Expect(r.Params).To(Equal(&rds.DeleteDBSnapshotInput{
					DBSnapshotIdentifier: aws.String(dbSnapshotIdentifier),
				}))
				r.Error = deleteDBSnapshotError
			}
			rdssvc.Handlers.Send.PushBack(rdsCall)
		})

		It("deletes the DB Snapshot", func() {
			err := rdsDBSnapshot.Delete(dbSnapshotIdentifier)
			Expect(err).ToNot(HaveOccurred())
		})

		Context("when the DB Snapshot does not exist", func() {
			BeforeEach(func() {
				deleteDBSnapshotError = awserr.New(rds.ErrCodeDBSnapshotNotFoundFault, "message", errors.New("operation failed"))
			})

			It("returns the proper error", func() {
				err := rdsDBSnapshot.Delete(dbSnapshotIdentifier)
				Expect(err).To(HaveOccurred())
				Expect(err).To(Equal(ErrDBSnapshotDoesNotExist))
			})
		})
	})
})
