package rdshelper

import (
	"errors"
)

// Config representation
type Config struct {
	Region             string `yaml:"region"`
	Engine             string `yaml:"engine"`
	DBInstanceClass    string `yaml:"db_instance_class"`
	AllocatedStorage   int64  `yaml:"allocated_storage"`
	Port               int64  `yaml:"port"`
	PubliclyAccessible bool   `yaml:"publicly_accessible"`
	MultiAZ            bool   `yaml:"multi_az"`
	SkipFinalSnapshot  bool   `yaml:"skip_final_snapshot"`
	MasterPasswordSalt string `yaml:"master_password_salt,omitempty"`
}

// DefaultConfig returns the provider defaults applied when a field is
// not set explicitly.
func DefaultConfig() Config {
	return Config{
		Engine:             "mysql",
		DBInstanceClass:    "db.t2.micro",
		AllocatedStorage:   20,
		Port:               3306,
		PubliclyAccessible: true,
		MultiAZ:            false,
		SkipFinalSnapshot:  true,
	}
}

// Validate config
func (c Config) Validate() error {
	if c.Region == "" {
		return errors.New("Must provide a non-empty Region")
	}

	if c.Engine == "" {
		return errors.New("Must provide a non-empty Engine")
	}

	if c.AllocatedStorage <= 0 {
		return errors.New("Must provide a positive AllocatedStorage")
	}

	if c.Port <= 0 {
		return errors.New("Must provide a positive Port")
	}

	return nil
}
