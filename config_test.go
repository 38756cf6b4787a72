package main

import (
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cloudfoundry-community/rds-helper/rdshelper"
)

var _ = Describe("Config", func() {
	var (
		config Config

		validConfig = Config{
			LogLevel: "DEBUG",
			RDSConfig: rdshelper.Config{
				Region:           "rds-region",
				Engine:           "mysql",
				DBInstanceClass:  "db.t2.micro",
				AllocatedStorage: 20,
				Port:             3306,
			},
		}
	)

	Describe("Validate", func() {
		BeforeEach(func() {
			config = validConfig
		})

		It("does not return error if all sections are valid", func() {
			err := config.Validate()
			Expect(err).ToNot(HaveOccurred())
		})

		It("returns error if LogLevel is not valid", func() {
			config.LogLevel = ""

			err := config.Validate()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Must provide a non-empty LogLevel"))
		})

		It("returns error if RDS configuration is not valid", func() {
			config.RDSConfig = rdshelper.Config{}

			err := config.Validate()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Validating RDS configuration"))
		})
	})

	Describe("LoadConfig", func() {
		var configFile *os.File

		writeConfig := func(contents string) string {
			var err error
			configFile, err = os.CreateTemp("", "rds-helper-config")
			Expect(err).ToNot(HaveOccurred())
			_, err = configFile.WriteString(contents)
			Expect(err).ToNot(HaveOccurred())
			Expect(configFile.Close()).To(Succeed())
			return configFile.Name()
		}

		AfterEach(func() {
			if configFile != nil {
				os.Remove(configFile.Name())
				configFile = nil
			}
		})

		It("returns error if no config file is provided", func() {
			_, err := LoadConfig("")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Must provide a config file"))
		})

		It("returns error if the config file does not exist", func() {
			_, err := LoadConfig("does-not-exist.yml")
			Expect(err).To(HaveOccurred())
		})

		It("applies the defaults for anything the file does not set", func() {
			path := writeConfig("rds:\n  region: rds-region\n")

			config, err := LoadConfig(path)
			Expect(err).ToNot(HaveOccurred())
			Expect(config.LogLevel).To(Equal("INFO"))
			Expect(config.RDSConfig.Region).To(Equal("rds-region"))
			Expect(config.RDSConfig.Engine).To(Equal("mysql"))
			Expect(config.RDSConfig.DBInstanceClass).To(Equal("db.t2.micro"))
			Expect(config.RDSConfig.AllocatedStorage).To(Equal(int64(20)))
			Expect(config.RDSConfig.Port).To(Equal(int64(3306)))
			Expect(config.RDSConfig.PubliclyAccessible).To(BeTrue())
			Expect(config.RDSConfig.MultiAZ).To(BeFalse())
			Expect(config.RDSConfig.SkipFinalSnapshot).To(BeTrue())
		})

		It("lets the file override the defaults", func() {
			path := writeConfig("log_level: DEBUG\nrds:\n  region: rds-region\n  engine: postgres\n  port: 5432\n  skip_final_snapshot: false\n")

			config, err := LoadConfig(path)
			Expect(err).ToNot(HaveOccurred())
			Expect(config.LogLevel).To(Equal("DEBUG"))
			Expect(config.RDSConfig.Engine).To(Equal("postgres"))
			Expect(config.RDSConfig.Port).To(Equal(int64(5432)))
			Expect(config.RDSConfig.SkipFinalSnapshot).To(BeFalse())
		})

		It("returns error if the config file contents are not valid", func() {
			path := writeConfig("rds:\n  engine: mysql\n")

			_, err := LoadConfig(path)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Validating config contents"))
		})
	})
})
