package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/cloudfoundry-community/rds-helper/rdshelper"
)

type Config struct {
	LogLevel  string           `yaml:"log_level"`
	RDSConfig rdshelper.Config `yaml:"rds"`
}

func LoadConfig(configFile string) (*Config, error) {
	if configFile == "" {
		return nil, errors.New("Must provide a config file")
	}

	file, err := os.ReadFile(configFile)
	if err != nil {
		return nil, err
	}

	config := &Config{
		LogLevel:  "INFO",
		RDSConfig: rdshelper.DefaultConfig(),
	}
	if err := yaml.Unmarshal(file, config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("Validating config contents: %s", err)
	}

	return config, nil
}

func (c Config) Validate() error {
	if c.LogLevel == "" {
		return errors.New("Must provide a non-empty LogLevel")
	}

	if err := c.RDSConfig.Validate(); err != nil {
		return fmt.Errorf("Validating RDS configuration: %s", err)
	}

	return nil
}
