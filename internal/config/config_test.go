package config_test

import (
	"os"
	"path/filepath"

	"tokenledger/internal/config"
	"tokenledger/internal/ledger"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap/zapcore"
)

var envKeys = []string{
	"API_PORT",
	"TOKEN_NAME",
	"TOKEN_SYMBOL",
	"TOKEN_INITIAL_SUPPLY",
	"TOKEN_OWNER",
	"SEED_DEMO_HOLDERS",
	"LOG_LEVEL",
	"RATE_LIMIT",
	"CONFIG_FILE",
}

func writeConfigFile(content string) string {
	path := filepath.Join(GinkgoT().TempDir(), "tokenledger.toml")
	Expect(os.WriteFile(path, []byte(content), 0o600)).To(Succeed())
	return path
}

// clearEnv unsets every config key and restores the previous values afterwards.
func clearEnv() {
	for _, key := range envKeys {
		if prev, ok := os.LookupEnv(key); ok {
			DeferCleanup(os.Setenv, key, prev)
		} else {
			DeferCleanup(os.Unsetenv, key)
		}
		Expect(os.Unsetenv(key)).To(Succeed())
	}
}

var _ = Describe("NewApp", func() {
	var (
		app config.App
		err error
	)

	BeforeEach(func() {
		clearEnv()
		Expect(os.Setenv("API_PORT", "8080")).To(Succeed())
	})

	JustBeforeEach(func() {
		app, err = config.NewApp()
	})

	It("applies defaults", func() {
		Expect(err).NotTo(HaveOccurred())
		Expect(app).To(Equal(config.App{
			Port:            "8080",
			TokenName:       "InternToken",
			TokenSymbol:     "INT",
			InitialSupply:   0,
			Owner:           ledger.DefaultOwner.Hex(),
			SeedDemoHolders: true,
			LogLevel:        zapcore.InfoLevel,
			RateLimit:       50,
		}))
	})

	When("every variable is set", func() {
		BeforeEach(func() {
			Expect(os.Setenv("TOKEN_NAME", "Gold")).To(Succeed())
			Expect(os.Setenv("TOKEN_SYMBOL", "GLD")).To(Succeed())
			Expect(os.Setenv("TOKEN_INITIAL_SUPPLY", "1000")).To(Succeed())
			Expect(os.Setenv("TOKEN_OWNER", "0xabcdefabcdefabcdefabcdefabcdefabcdefabcd")).To(Succeed())
			Expect(os.Setenv("SEED_DEMO_HOLDERS", "false")).To(Succeed())
			Expect(os.Setenv("LOG_LEVEL", "debug")).To(Succeed())
			Expect(os.Setenv("RATE_LIMIT", "7")).To(Succeed())
		})

		It("reads them", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.TokenName).To(Equal("Gold"))
			Expect(app.TokenSymbol).To(Equal("GLD"))
			Expect(app.InitialSupply).To(Equal(int64(1000)))
			Expect(app.Owner).To(Equal("0xabcdefabcdefabcdefabcdefabcdefabcdefabcd"))
			Expect(app.SeedDemoHolders).To(BeFalse())
			Expect(app.LogLevel).To(Equal(zapcore.DebugLevel))
			Expect(app.RateLimit).To(Equal(7))
		})
	})

	When("the port is missing", func() {
		BeforeEach(func() {
			Expect(os.Unsetenv("API_PORT")).To(Succeed())
		})

		It("returns an error", func() {
			Expect(err).To(MatchError(ContainSubstring("environment variable not found: API_PORT")))
		})
	})

	When("a config file is given", func() {
		BeforeEach(func() {
			Expect(os.Unsetenv("API_PORT")).To(Succeed())
			Expect(os.Setenv("CONFIG_FILE", writeConfigFile(`
port = "9090"
log_level = "warn"
rate_limit = 3

[token]
name = "Silver"
symbol = "SLV"
initial_supply = 250
seed_demo_holders = false
`))).To(Succeed())
			Expect(os.Setenv("TOKEN_SYMBOL", "AG")).To(Succeed())
		})

		It("reads it and lets the environment win", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Port).To(Equal("9090"))
			Expect(app.TokenName).To(Equal("Silver"))
			Expect(app.TokenSymbol).To(Equal("AG"))
			Expect(app.InitialSupply).To(Equal(int64(250)))
			Expect(app.Owner).To(Equal(ledger.DefaultOwner.Hex()))
			Expect(app.SeedDemoHolders).To(BeFalse())
			Expect(app.LogLevel).To(Equal(zapcore.WarnLevel))
			Expect(app.RateLimit).To(Equal(3))
		})
	})

	When("the config file is malformed", func() {
		BeforeEach(func() {
			Expect(os.Setenv("CONFIG_FILE", writeConfigFile("port = "))).To(Succeed())
		})

		It("returns an error", func() {
			Expect(err).To(MatchError(ContainSubstring("decode config file")))
		})
	})

	When("the config file does not exist", func() {
		BeforeEach(func() {
			Expect(os.Setenv("CONFIG_FILE", filepath.Join(GinkgoT().TempDir(), "missing.toml"))).To(Succeed())
		})

		It("returns an error", func() {
			Expect(err).To(MatchError(ContainSubstring("decode config file")))
		})
	})

	DescribeTable("rejects bad values",
		func(key, value, message string) {
			Expect(os.Setenv(key, value)).To(Succeed())

			_, err := config.NewApp()
			Expect(err).To(MatchError(ContainSubstring(message)))
		},
		Entry("port", "API_PORT", "http", "validate config"),
		Entry("supply", "TOKEN_INITIAL_SUPPLY", "many", "parse TOKEN_INITIAL_SUPPLY"),
		Entry("negative supply", "TOKEN_INITIAL_SUPPLY", "-5", "validate config"),
		Entry("owner", "TOKEN_OWNER", "0x123", "validate config"),
		Entry("seed flag", "SEED_DEMO_HOLDERS", "maybe", "parse SEED_DEMO_HOLDERS"),
		Entry("log level", "LOG_LEVEL", "loud", "parse LOG_LEVEL"),
		Entry("empty symbol", "TOKEN_SYMBOL", "", "validate config"),
		Entry("rate limit", "RATE_LIMIT", "fast", "parse RATE_LIMIT"),
		Entry("zero rate limit", "RATE_LIMIT", "0", "validate config"),
	)
})
