package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"code.cloudfoundry.org/lager/v3"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/iam"
	"github.com/aws/aws-sdk-go/service/rds"

	"github.com/cloudfoundry-community/rds-helper/awsrds"
	"github.com/cloudfoundry-community/rds-helper/rdshelper"
	"github.com/cloudfoundry-community/rds-helper/sqlengine"
	"github.com/cloudfoundry-community/rds-helper/utils"
)

var (
	configFilePath string

	logLevels = map[string]lager.LogLevel{
		"DEBUG": lager.DEBUG,
		"INFO":  lager.INFO,
		"ERROR": lager.ERROR,
		"FATAL": lager.FATAL,
	}
)

func init() {
	flag.StringVar(&configFilePath, "config", "", "Location of the config file")
}

func buildLogger(logLevel string) lager.Logger {
	lagerLogLevel, ok := logLevels[strings.ToUpper(logLevel)]
	if !ok {
		log.Fatal("Invalid log level: ", logLevel)
	}

	logger := lager.NewLogger("rds-helper")
	logger.RegisterSink(lager.NewWriterSink(os.Stderr, lagerLogLevel))

	return logger
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: rds-helper -config <file> <operation> [arguments]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Operations:")
	fmt.Fprintln(os.Stderr, "  create <identifier> <username> [password]")
	fmt.Fprintln(os.Stderr, "  wait <identifier>")
	fmt.Fprintln(os.Stderr, "  endpoint <identifier>")
	fmt.Fprintln(os.Stderr, "  list")
	fmt.Fprintln(os.Stderr, "  modify <identifier> <db-instance-class>")
	fmt.Fprintln(os.Stderr, "  delete <identifier>")
	fmt.Fprintln(os.Stderr, "  snapshot <identifier> [snapshot-identifier]")
	fmt.Fprintln(os.Stderr, "  exec <endpoint> <username> <password> <dbname> <query>")
	os.Exit(2)
}

func main() {
	flag.Parse()

	config, err := LoadConfig(configFilePath)
	if err != nil {
		log.Fatalf("Error loading config file: %s", err)
	}

	logger := buildLogger(config.LogLevel)

	awsConfig := aws.NewConfig().WithRegion(config.RDSConfig.Region)
	awsSession := session.New(awsConfig)

	iamsvc := iam.New(awsSession)
	rdssvc := rds.New(awsSession)
	dbInstance := awsrds.NewRDSDBInstance(config.RDSConfig.Region, iamsvc, rdssvc, logger)
	dbSnapshot := awsrds.NewRDSDBSnapshot(config.RDSConfig.Region, rdssvc, logger)

	sqlProvider := sqlengine.NewProviderService(logger)

	helper := rdshelper.New(config.RDSConfig, dbInstance, dbSnapshot, sqlProvider, logger)

	args := flag.Args()
	if len(args) == 0 {
		usage()
	}

	if err := run(helper, args); err != nil {
		log.Fatalf("Error: %s", err)
	}
}

func run(helper *rdshelper.Helper, args []string) error {
	switch args[0] {
	case "create":
		if len(args) < 3 {
			usage()
		}
		password := ""
		if len(args) > 3 {
			password = args[3]
		}
		dbInstanceDetails, err := helper.CreateInstance(args[1], args[2], password)
		if err != nil {
			return err
		}
		fmt.Printf("Creating DB instance %s (%s, %s, %d GiB)\n", args[1], dbInstanceDetails.Engine, dbInstanceDetails.DBInstanceClass, dbInstanceDetails.AllocatedStorage)
		if password == "" {
			fmt.Printf("Master password: %s\n", dbInstanceDetails.MasterUserPassword)
		}

	case "wait":
		if len(args) < 2 {
			usage()
		}
		if err := helper.WaitUntilAvailable(args[1]); err != nil {
			return err
		}
		fmt.Printf("DB instance %s is available\n", args[1])

	case "endpoint":
		if len(args) < 2 {
			usage()
		}
		endpoint, err := helper.Endpoint(args[1])
		if err != nil {
			return err
		}
		fmt.Println(endpoint)

	case "list":
		dbInstanceDetailsList, err := helper.ListInstances()
		if err != nil {
			return err
		}
		for _, dbInstanceDetails := range dbInstanceDetailsList {
			fmt.Printf("%s\t%s\t%s\t%s\n", dbInstanceDetails.Identifier, dbInstanceDetails.Engine, dbInstanceDetails.DBInstanceClass, dbInstanceDetails.Status)
		}

	case "modify":
		if len(args) < 3 {
			usage()
		}
		if err := helper.ModifyInstance(args[1], args[2]); err != nil {
			return err
		}
		fmt.Printf("Modifying DB instance %s to %s\n", args[1], args[2])

	case "delete":
		if len(args) < 2 {
			usage()
		}
		if err := helper.DeleteInstance(args[1]); err != nil {
			return err
		}
		fmt.Printf("Deleting DB instance %s\n", args[1])

	case "snapshot":
		if len(args) < 2 {
			usage()
		}
		snapshotID := args[1] + "-" + strings.ToLower(utils.RandomAlphaNum(8))
		if len(args) > 2 {
			snapshotID = args[2]
		}
		if err := helper.CreateSnapshot(args[1], snapshotID); err != nil {
			return err
		}
		fmt.Printf("Creating DB snapshot %s of %s\n", snapshotID, args[1])

	case "exec":
		if len(args) < 6 {
			usage()
		}
		connection, err := helper.Connect(args[1], args[2], args[3], args[4])
		if err != nil {
			return err
		}
		defer helper.Close(connection)

		rows, err := helper.Execute(connection, args[5])
		if err != nil {
			return err
		}
		for _, row := range rows {
			values := make([]string, len(row))
			for i, value := range row {
				if bytes, ok := value.([]byte); ok {
					value = string(bytes)
				}
				values[i] = fmt.Sprintf("%v", value)
			}
			fmt.Println(strings.Join(values, "\t"))
		}

	default:
		usage()
	}

	return nil
}
