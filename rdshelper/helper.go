package rdshelper

import (
	"errors"

	"code.cloudfoundry.org/lager/v3"

	"github.com/cloudfoundry-community/rds-helper/awsrds"
	"github.com/cloudfoundry-community/rds-helper/sqlengine"
	"github.com/cloudfoundry-community/rds-helper/utils"
)

const defaultPasswordLength = 32

var (
	ErrEndpointNotAvailable = errors.New("rds db instance endpoint is not available yet")
)

// Helper composes the RDS control plane and the SQL data plane behind
// the operations a caller chains together by hand: create, wait,
// endpoint, connect, execute, close, delete.
type Helper struct {
	config      Config
	dbInstance  awsrds.DBInstance
	dbSnapshot  awsrds.DBSnapshot
	sqlProvider sqlengine.Provider
	logger      lager.Logger
}

func New(
	config Config,
	dbInstance awsrds.DBInstance,
	dbSnapshot awsrds.DBSnapshot,
	sqlProvider sqlengine.Provider,
	logger lager.Logger,
) *Helper {
	return &Helper{
		config:      config,
		dbInstance:  dbInstance,
		dbSnapshot:  dbSnapshot,
		sqlProvider: sqlProvider,
		logger:      logger.Session("helper"),
	}
}

// CreateInstance provisions a DB instance named and tagged after its
// identifier, using the configured defaults for everything the caller
// does not supply. An empty master password is derived from the
// identifier and the configured salt. The applied details are returned.
func (h *Helper) CreateInstance(ID string, masterUsername string, masterPassword string) (awsrds.DBInstanceDetails, error) {
	h.logger.Debug("create-instance", lager.Data{"id": ID})

	if masterPassword == "" {
		masterPassword = h.masterPassword(ID)
	}

	dbInstanceDetails := awsrds.DBInstanceDetails{
		Engine:             h.config.Engine,
		DBInstanceClass:    h.config.DBInstanceClass,
		AllocatedStorage:   h.config.AllocatedStorage,
		MasterUsername:     masterUsername,
		MasterUserPassword: masterPassword,
		PubliclyAccessible: h.config.PubliclyAccessible,
		MultiAZ:            h.config.MultiAZ,
		Tags: map[string]string{
			"Name": ID,
		},
	}

	if err := h.dbInstance.Create(ID, dbInstanceDetails); err != nil {
		return awsrds.DBInstanceDetails{}, err
	}

	return dbInstanceDetails, nil
}

// WaitUntilAvailable blocks until the DB instance reports an available
// status or the polling policy gives up.
func (h *Helper) WaitUntilAvailable(ID string) error {
	h.logger.Debug("wait-until-available", lager.Data{"id": ID})

	return h.dbInstance.WaitUntilAvailable(ID)
}

// Endpoint returns the address the DB instance accepts connections on.
func (h *Helper) Endpoint(ID string) (string, error) {
	h.logger.Debug("endpoint", lager.Data{"id": ID})

	dbInstanceDetails, err := h.dbInstance.Describe(ID)
	if err != nil {
		return "", err
	}

	if dbInstanceDetails.Address == "" {
		return "", ErrEndpointNotAvailable
	}

	return dbInstanceDetails.Address, nil
}

func (h *Helper) ListInstances() ([]awsrds.DBInstanceDetails, error) {
	h.logger.Debug("list-instances")

	return h.dbInstance.List()
}

// ModifyInstance requests a compute class change, applied immediately.
func (h *Helper) ModifyInstance(ID string, newDBInstanceClass string) error {
	h.logger.Debug("modify-instance", lager.Data{"id": ID, "db-instance-class": newDBInstanceClass})

	dbInstanceDetails := awsrds.DBInstanceDetails{
		DBInstanceClass: newDBInstanceClass,
	}

	return h.dbInstance.Modify(ID, dbInstanceDetails, true)
}

// DeleteInstance requests deletion; whether a final snapshot is taken
// is decided by the configuration.
func (h *Helper) DeleteInstance(ID string) error {
	h.logger.Debug("delete-instance", lager.Data{"id": ID, "skip-final-snapshot": h.config.SkipFinalSnapshot})

	return h.dbInstance.Delete(ID, h.config.SkipFinalSnapshot)
}

func (h *Helper) CreateSnapshot(ID string, snapshotID string) error {
	h.logger.Debug("create-snapshot", lager.Data{"id": ID, "snapshot-id": snapshotID})

	return h.dbSnapshot.Create(ID, snapshotID)
}

func (h *Helper) ListSnapshots(ID string) ([]awsrds.DBSnapshotDetails, error) {
	h.logger.Debug("list-snapshots", lager.Data{"id": ID})

	return h.dbSnapshot.List(ID)
}

func (h *Helper) DeleteSnapshot(snapshotID string) error {
	h.logger.Debug("delete-snapshot", lager.Data{"snapshot-id": snapshotID})

	return h.dbSnapshot.Delete(snapshotID)
}

// Connect opens a connection to a logical database on the given
// endpoint, using the configured engine and port. The returned engine
// handle is owned by the caller and must be released with Close.
func (h *Helper) Connect(endpoint string, username string, password string, dbname string) (sqlengine.SQLEngine, error) {
	h.logger.Debug("connect", lager.Data{"endpoint": endpoint, "dbname": dbname})

	sqlEngine, err := h.sqlProvider.GetSQLEngine(h.config.Engine)
	if err != nil {
		return nil, err
	}

	if err := sqlEngine.Open(endpoint, h.config.Port, dbname, username, password); err != nil {
		return nil, err
	}

	return sqlEngine, nil
}

// Execute runs a complete statement on an open connection and returns
// the full result set.
func (h *Helper) Execute(sqlEngine sqlengine.SQLEngine, query string) ([][]interface{}, error) {
	h.logger.Debug("execute", lager.Data{"query": query})

	return sqlEngine.Execute(query)
}

// Close releases a connection obtained from Connect.
func (h *Helper) Close(sqlEngine sqlengine.SQLEngine) error {
	h.logger.Debug("close")

	return sqlEngine.Close()
}

func (h *Helper) masterPassword(ID string) string {
	return utils.GetSHA256B64(ID, defaultPasswordLength, h.config.MasterPasswordSalt)
}
