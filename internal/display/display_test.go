package display_test

import (
	"time"

	"tokenledger/internal/display"
	"tokenledger/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Display", func() {
	DescribeTable("FormatNumber",
		func(n int64, expected string) {
			Expect(display.FormatNumber(n)).To(Equal(expected))
		},
		Entry("small", int64(999), "999"),
		Entry("zero", int64(0), "0"),
		Entry("thousand", int64(1_000), "1.00K"),
		Entry("thousands", int64(75_500), "75.50K"),
		Entry("million", int64(1_000_000), "1.00M"),
		Entry("millions", int64(1_925_000), "1.93M"),
	)

	DescribeTable("FormatAmount",
		func(n int64, expected string) {
			Expect(display.FormatAmount(n, "INT")).To(Equal(expected))
		},
		Entry("zero", int64(0), "0 INT"),
		Entry("small", int64(42), "42 INT"),
		Entry("grouped", int64(1_925_000), "1,925,000 INT"),
	)

	DescribeTable("FormatAddress",
		func(addr, expected string) {
			Expect(display.FormatAddress(addr)).To(Equal(expected))
		},
		Entry("full address", "0x1234567890123456789012345678901234567890", "0x1234...7890"),
		Entry("empty", "", ""),
		Entry("short", "0x12", "0x12"),
	)

	It("formats times as RFC1123", func() {
		t := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
		parsed, err := time.Parse(time.RFC1123, display.FormatTime(t))
		Expect(err).NotTo(HaveOccurred())
		Expect(parsed.Unix()).To(Equal(t.Unix()))
	})

	Describe("Describe", func() {
		var from, to common.Address

		BeforeEach(func() {
			from = common.HexToAddress("0x1234567890123456789012345678901234567890")
			to = common.HexToAddress("0x1111111111111111111111111111111111111111")
		})

		It("describes mints", func() {
			tx := ledger.Transaction{Type: ledger.TxMint, To: &to, Amount: 1500}
			Expect(display.Describe(tx, "INT")).To(Equal("Minted 1.50K INT to 0x1111...1111"))
		})

		It("describes transfers", func() {
			tx := ledger.Transaction{Type: ledger.TxTransfer, From: &from, To: &to, Amount: 12}
			Expect(display.Describe(tx, "INT")).To(Equal("Transferred 12 INT from 0x1234...7890 to 0x1111...1111"))
		})

		It("describes burns", func() {
			tx := ledger.Transaction{Type: ledger.TxBurn, From: &from, Amount: 2_000_000}
			Expect(display.Describe(tx, "INT")).To(Equal("Burned 2.00M INT from 0x1234...7890"))
		})
	})
})
