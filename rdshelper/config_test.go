package rdshelper_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/cloudfoundry-community/rds-helper/rdshelper"
)

var _ = Describe("Config", func() {
	var (
		config Config

		validConfig = Config{
			Region:           "rds-region",
			Engine:           "mysql",
			DBInstanceClass:  "db.t2.micro",
			AllocatedStorage: 20,
			Port:             3306,
		}
	)

	Describe("DefaultConfig", func() {
		It("carries the provider defaults", func() {
			config = DefaultConfig()
			Expect(config.Engine).To(Equal("mysql"))
			Expect(config.DBInstanceClass).To(Equal("db.t2.micro"))
			Expect(config.AllocatedStorage).To(Equal(int64(20)))
			Expect(config.Port).To(Equal(int64(3306)))
			Expect(config.PubliclyAccessible).To(BeTrue())
			Expect(config.MultiAZ).To(BeFalse())
			Expect(config.SkipFinalSnapshot).To(BeTrue())
		})
	})

	Describe("Validate", func() {
		BeforeEach(func() {
			config = validConfig
		})

		It("does not return error if all sections are valid", func() {
			err := config.Validate()
			Expect(err).ToNot(HaveOccurred())
		})

		It("returns error if Region is not valid", func() {
			config.Region = ""

			err := config.Validate()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Must provide a non-empty Region"))
		})

		It("returns error if Engine is not valid", func() {
			config.Engine = ""

			err := config.Validate()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Must provide a non-empty Engine"))
		})

		It("returns error if AllocatedStorage is not valid", func() {
			config.AllocatedStorage = 0

			err := config.Validate()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Must provide a positive AllocatedStorage"))
		})

		It("returns error if Port is not valid", func() {
			config.Port = 0

			err := config.Validate()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Must provide a positive Port"))
		})
	})
})
