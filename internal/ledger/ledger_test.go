package ledger_test

import (
	"math"
	"strings"
	"time"

	"tokenledger/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func sumOfBalances(l *ledger.Ledger) int64 {
	var sum int64
	for _, h := range l.AllHolders() {
		sum += h.Balance
	}
	return sum
}

var _ = Describe("Ledger", func() {
	var (
		l     *ledger.Ledger
		err   error
		now   time.Time
		alice string
		bob   string
	)

	BeforeEach(func() {
		now = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
		ledger.TimeNow = func() time.Time { return now }
		DeferCleanup(func() { ledger.TimeNow = time.Now })

		alice = "0x" + strings.Repeat("11", 20)
		bob = "0x" + strings.Repeat("22", 20)

		l, err = ledger.New("InternToken", "INT", 0)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("New", func() {
		It("starts empty", func() {
			Expect(l.TotalSupply()).To(BeZero())
			Expect(l.TotalHolders()).To(BeZero())
			Expect(l.TransactionHistory(0)).To(BeEmpty())
			Expect(l.Name()).To(Equal("InternToken"))
			Expect(l.Symbol()).To(Equal("INT"))
		})

		It("mints the initial supply to the owner", func() {
			owner := common.HexToAddress(bob)
			l, err = ledger.New("InternToken", "INT", 1000, ledger.WithOwner(owner))
			Expect(err).NotTo(HaveOccurred())

			balance, err := l.BalanceOf(bob)
			Expect(err).NotTo(HaveOccurred())
			Expect(balance).To(Equal(int64(1000)))
			Expect(l.TotalSupply()).To(Equal(int64(1000)))

			history := l.TransactionHistory(0)
			Expect(history).To(HaveLen(1))
			Expect(history[0].Type).To(Equal(ledger.TxMint))
			Expect(*history[0].To).To(Equal(owner))
		})

		It("defaults the owner", func() {
			l, err = ledger.New("InternToken", "INT", 10)
			Expect(err).NotTo(HaveOccurred())
			balance, err := l.BalanceOf(ledger.DefaultOwner.Hex())
			Expect(err).NotTo(HaveOccurred())
			Expect(balance).To(Equal(int64(10)))
		})

		It("rejects a negative initial supply", func() {
			_, err = ledger.New("InternToken", "INT", -1)
			Expect(err).To(MatchError(ledger.ErrInvalidAmount))
		})

		When("demo holders are requested", func() {
			BeforeEach(func() {
				l, err = ledger.New("InternToken", "INT", 0, ledger.WithDemoHolders())
				Expect(err).NotTo(HaveOccurred())
			})

			It("seeds five holders with one mint each", func() {
				Expect(l.TotalHolders()).To(Equal(5))
				Expect(l.TotalSupply()).To(Equal(int64(1_925_000)))
				Expect(sumOfBalances(l)).To(Equal(l.TotalSupply()))

				history := l.TransactionHistory(0)
				Expect(history).To(HaveLen(5))
				for _, tx := range history {
					Expect(tx.Type).To(Equal(ledger.TxMint))
					Expect(tx.From).To(BeNil())
					Expect(tx.Timestamp).To(BeTemporally("<=", now))
					Expect(tx.Timestamp).To(BeTemporally(">", now.Add(-7*24*time.Hour)))
				}
			})

			It("lists the seeded log newest first", func() {
				history := l.TransactionHistory(0)
				for i := 1; i < len(history); i++ {
					Expect(history[i-1].Timestamp).To(BeTemporally(">=", history[i].Timestamp))
				}
			})

			It("ranks the largest demo holder first", func() {
				holders := l.AllHolders()
				Expect(holders[0].Address).To(Equal(common.HexToAddress("0x1234567890123456789012345678901234567890")))
				Expect(holders[0].Balance).To(Equal(int64(1_000_000)))
			})
		})
	})

	Describe("Mint", func() {
		var tx ledger.Transaction

		It("credits a fresh address and records the mint", func() {
			tx, err = l.Mint(alice, 500)
			Expect(err).NotTo(HaveOccurred())

			Expect(l.TotalSupply()).To(Equal(int64(500)))
			balance, err := l.BalanceOf(alice)
			Expect(err).NotTo(HaveOccurred())
			Expect(balance).To(Equal(int64(500)))

			Expect(tx.Type).To(Equal(ledger.TxMint))
			Expect(tx.From).To(BeNil())
			Expect(*tx.To).To(Equal(common.HexToAddress(alice)))
			Expect(tx.Amount).To(Equal(int64(500)))
			Expect(tx.Timestamp).To(Equal(now))

			history := l.TransactionHistory(0)
			Expect(history).To(HaveLen(1))
			Expect(history[0]).To(Equal(tx))
		})

		It("accumulates on an existing balance", func() {
			_, err = l.Mint(alice, 100)
			Expect(err).NotTo(HaveOccurred())
			_, err = l.Mint(strings.ToUpper(alice[2:]), 1)
			Expect(err).To(MatchError(ledger.ErrInvalidAddress))
			_, err = l.Mint("0x"+strings.ToUpper(alice[2:]), 50)
			Expect(err).NotTo(HaveOccurred())

			balance, _ := l.BalanceOf(alice)
			Expect(balance).To(Equal(int64(150)))
		})

		DescribeTable("rejects invalid input without side effects",
			func(to string, amount int64, expected error) {
				_, err := l.Mint(to, amount)
				Expect(err).To(MatchError(expected))
				Expect(l.TotalSupply()).To(BeZero())
				Expect(l.TransactionHistory(0)).To(BeEmpty())
			},
			Entry("zero amount", "0x"+strings.Repeat("11", 20), int64(0), ledger.ErrInvalidAmount),
			Entry("negative amount", "0x"+strings.Repeat("11", 20), int64(-5), ledger.ErrInvalidAmount),
			Entry("malformed address", "0x1234", int64(10), ledger.ErrInvalidAddress),
			Entry("display name", "Alice", int64(10), ledger.ErrInvalidAddress),
		)

		It("refuses to overflow the total supply", func() {
			_, err = l.Mint(alice, math.MaxInt64)
			Expect(err).NotTo(HaveOccurred())

			_, err = l.Mint(bob, 1)
			Expect(err).To(MatchError(ledger.ErrSupplyOverflow))
			Expect(l.TotalSupply()).To(Equal(int64(math.MaxInt64)))
			Expect(l.TransactionHistory(0)).To(HaveLen(1))
			balance, _ := l.BalanceOf(bob)
			Expect(balance).To(BeZero())
		})
	})

	Describe("Transfer", func() {
		BeforeEach(func() {
			_, err = l.Mint(alice, 300)
			Expect(err).NotTo(HaveOccurred())
		})

		It("moves tokens and keeps the supply", func() {
			tx, err := l.Transfer(alice, bob, 120)
			Expect(err).NotTo(HaveOccurred())

			aliceBalance, _ := l.BalanceOf(alice)
			bobBalance, _ := l.BalanceOf(bob)
			Expect(aliceBalance).To(Equal(int64(180)))
			Expect(bobBalance).To(Equal(int64(120)))
			Expect(l.TotalSupply()).To(Equal(int64(300)))

			Expect(tx.Type).To(Equal(ledger.TxTransfer))
			Expect(*tx.From).To(Equal(common.HexToAddress(alice)))
			Expect(*tx.To).To(Equal(common.HexToAddress(bob)))
			Expect(l.TransactionHistory(0)[0]).To(Equal(tx))
		})

		It("allows moving the full balance and keeps the zero entry out of the holders", func() {
			_, err = l.Transfer(alice, bob, 300)
			Expect(err).NotTo(HaveOccurred())

			balance, _ := l.BalanceOf(alice)
			Expect(balance).To(BeZero())
			Expect(l.TotalHolders()).To(Equal(1))
		})

		It("records a self transfer without changing the balance", func() {
			tx, err := l.Transfer(alice, alice, 100)
			Expect(err).NotTo(HaveOccurred())

			balance, _ := l.BalanceOf(alice)
			Expect(balance).To(Equal(int64(300)))
			Expect(l.TotalSupply()).To(Equal(int64(300)))
			Expect(tx.Type).To(Equal(ledger.TxTransfer))
			Expect(l.TransactionHistory(0)).To(HaveLen(2))
		})

		It("fails when the sender cannot cover the amount", func() {
			_, err = l.Transfer(bob, alice, 1)
			Expect(err).To(MatchError(ledger.ErrInsufficientBalance))

			_, err = l.Transfer(alice, bob, 301)
			Expect(err).To(MatchError(ledger.ErrInsufficientBalance))

			aliceBalance, _ := l.BalanceOf(alice)
			Expect(aliceBalance).To(Equal(int64(300)))
			Expect(l.TransactionHistory(0)).To(HaveLen(1))
		})

		It("validates both parties", func() {
			_, err = l.Transfer("0xnope", bob, 1)
			Expect(err).To(MatchError(ledger.ErrInvalidAddress))
			_, err = l.Transfer(alice, "Bob", 1)
			Expect(err).To(MatchError(ledger.ErrInvalidAddress))
			Expect(l.TransactionHistory(0)).To(HaveLen(1))
		})

		It("validates the amount", func() {
			_, err = l.Transfer(alice, bob, 0)
			Expect(err).To(MatchError(ledger.ErrInvalidAmount))
		})
	})

	Describe("Burn", func() {
		BeforeEach(func() {
			_, err = l.Mint(alice, 300)
			Expect(err).NotTo(HaveOccurred())
		})

		It("destroys tokens", func() {
			tx, err := l.Burn(alice, 100)
			Expect(err).NotTo(HaveOccurred())

			balance, _ := l.BalanceOf(alice)
			Expect(balance).To(Equal(int64(200)))
			Expect(l.TotalSupply()).To(Equal(int64(200)))

			Expect(tx.Type).To(Equal(ledger.TxBurn))
			Expect(*tx.From).To(Equal(common.HexToAddress(alice)))
			Expect(tx.To).To(BeNil())
		})

		It("cannot burn more than the balance", func() {
			_, err = l.Burn(alice, 301)
			Expect(err).To(MatchError(ledger.ErrInsufficientBalance))
			Expect(l.TotalSupply()).To(Equal(int64(300)))
			Expect(l.TransactionHistory(0)).To(HaveLen(1))
		})

		It("validates its input", func() {
			_, err = l.Burn(alice, -1)
			Expect(err).To(MatchError(ledger.ErrInvalidAmount))
			_, err = l.Burn("", 1)
			Expect(err).To(MatchError(ledger.ErrInvalidAddress))
		})
	})

	Describe("BalanceOf", func() {
		It("returns zero for unseen addresses", func() {
			balance, err := l.BalanceOf(bob)
			Expect(err).NotTo(HaveOccurred())
			Expect(balance).To(BeZero())
		})

		It("rejects malformed addresses", func() {
			_, err = l.BalanceOf("bob")
			Expect(err).To(MatchError(ledger.ErrInvalidAddress))
		})
	})

	Describe("TransactionHistory", func() {
		BeforeEach(func() {
			for i := 1; i <= 60; i++ {
				_, err = l.Mint(alice, int64(i))
				Expect(err).NotTo(HaveOccurred())
			}
		})

		It("defaults to the 50 most recent", func() {
			history := l.TransactionHistory(0)
			Expect(history).To(HaveLen(ledger.DefaultHistoryLimit))
			Expect(history[0].Amount).To(Equal(int64(60)))
			Expect(history[49].Amount).To(Equal(int64(11)))
		})

		It("honours an explicit limit", func() {
			history := l.TransactionHistory(3)
			Expect(history).To(HaveLen(3))
			Expect(history[2].Amount).To(Equal(int64(58)))
		})

		It("caps the limit at the log length", func() {
			Expect(l.TransactionHistory(1000)).To(HaveLen(60))
		})

		It("hands out copies", func() {
			history := l.TransactionHistory(1)
			*history[0].To = common.HexToAddress(bob)
			history[0].Amount = 1

			fresh := l.TransactionHistory(1)
			Expect(*fresh[0].To).To(Equal(common.HexToAddress(alice)))
			Expect(fresh[0].Amount).To(Equal(int64(60)))
		})

		It("assigns unique hashes", func() {
			seen := make(map[common.Hash]struct{})
			for _, tx := range l.TransactionHistory(100) {
				Expect(seen).NotTo(HaveKey(tx.Hash))
				seen[tx.Hash] = struct{}{}
				Expect(tx.Hash.Hex()).To(MatchRegexp(`^0x[0-9a-f]{64}$`))
			}
		})
	})

	Describe("Transaction", func() {
		It("finds a transaction by hash", func() {
			tx, err := l.Mint(alice, 1)
			Expect(err).NotTo(HaveOccurred())

			found, err := l.Transaction(tx.Hash.Hex())
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(Equal(tx))
		})

		It("reports unknown hashes", func() {
			_, err = l.Transaction(common.HexToHash("0xdead").Hex())
			Expect(err).To(MatchError(ledger.ErrTransactionNotFound))
		})

		It("reports malformed hashes", func() {
			_, err = l.Transaction("0xdead")
			Expect(err).To(MatchError(ledger.ErrInvalidHash))
		})
	})

	Describe("TokenInfo", func() {
		It("summarises the token", func() {
			_, err = l.Mint(alice, 700)
			Expect(err).NotTo(HaveOccurred())
			_, err = l.Mint(bob, 300)
			Expect(err).NotTo(HaveOccurred())

			Expect(l.TokenInfo()).To(Equal(ledger.TokenInfo{
				Name:              "InternToken",
				Symbol:            "INT",
				TotalSupply:       1000,
				TotalHolders:      2,
				CirculatingSupply: 1000,
			}))
			Expect(l.CirculatingSupply()).To(Equal(l.TotalSupply()))
		})
	})

	It("keeps the supply equal to the sum of balances across operations", func() {
		carol := "0x" + strings.Repeat("33", 20)
		steps := []func() error{
			func() error { _, err := l.Mint(alice, 1000); return err },
			func() error { _, err := l.Transfer(alice, bob, 400); return err },
			func() error { _, err := l.Burn(bob, 150); return err },
			func() error { _, err := l.Transfer(bob, carol, 250); return err },
			func() error { _, err := l.Burn(carol, 999); return err },
			func() error { _, err := l.Transfer(alice, alice, 600); return err },
			func() error { _, err := l.Mint(carol, 5); return err },
		}
		for _, step := range steps {
			_ = step()
			Expect(sumOfBalances(l)).To(Equal(l.TotalSupply()))
			for _, h := range l.AllHolders() {
				Expect(h.Balance).To(BeNumerically(">", 0))
			}
		}
		Expect(l.TotalSupply()).To(Equal(int64(855)))
	})
})
