// Package seeds loads reference data (bank accounts, payment methods and
// discount codes) from a YAML file into the store.
package seeds

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/vnstore/paycore/internal/domain/banktransfer"
	"github.com/vnstore/paycore/internal/domain/discount"
	vo "github.com/vnstore/paycore/internal/domain/order/valueobjects"
	"github.com/vnstore/paycore/internal/domain/paymentmethod"
	"github.com/vnstore/paycore/internal/shared/biztime"
	"github.com/vnstore/paycore/internal/shared/errors"
	"github.com/vnstore/paycore/internal/shared/logger"
)

// File is the on-disk seed document.
type File struct {
	BankAccounts   []BankAccountSeed `yaml:"bank_accounts"`
	PaymentMethods []MethodSeed      `yaml:"payment_methods"`
	Discounts      []DiscountSeed    `yaml:"discounts"`
}

type BankAccountSeed struct {
	BankName      string `yaml:"bank_name"`
	BankCode      string `yaml:"bank_code"`
	AccountNumber string `yaml:"account_number"`
	AccountName   string `yaml:"account_name"`
	Branch        string `yaml:"branch"`
	QRImageRef    string `yaml:"qr_image_ref"`
}

type MethodSeed struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Fee         string `yaml:"fee"`
	Enabled     *bool  `yaml:"enabled"`
	Default     bool   `yaml:"default"`
}

type DiscountSeed struct {
	Code        string     `yaml:"code"`
	Kind        string     `yaml:"kind"`
	Value       string     `yaml:"value"`
	MaxDiscount string     `yaml:"max_discount"`
	MinSubtotal string     `yaml:"min_subtotal"`
	UsageLimit  *int       `yaml:"usage_limit"`
	StartsAt    *time.Time `yaml:"starts_at"`
	EndsAt      *time.Time `yaml:"ends_at"`
}

// Result counts what a seed run inserted and skipped.
type Result struct {
	BankAccountsCreated int
	MethodsCreated      int
	DiscountsCreated    int
	Skipped             int
}

// Load reads and parses a seed file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &f, nil
}

// Seeder inserts seed rows that are not present yet. Existing rows are never
// modified, so a seed file can be applied repeatedly.
type Seeder struct {
	accounts  banktransfer.BankAccountRepository
	methods   paymentmethod.Repository
	discounts discount.Repository
	logger    logger.Interface
}

func NewSeeder(
	accounts banktransfer.BankAccountRepository,
	methods paymentmethod.Repository,
	discounts discount.Repository,
	log logger.Interface,
) *Seeder {
	return &Seeder{
		accounts:  accounts,
		methods:   methods,
		discounts: discounts,
		logger:    log.With("component", "seeds"),
	}
}

func (s *Seeder) Run(ctx context.Context, f *File) (*Result, error) {
	res := &Result{}
	now := biztime.NowUTC()

	for _, a := range f.BankAccounts {
		created, err := s.seedBankAccount(ctx, a, now)
		if err != nil {
			return res, err
		}
		if created {
			res.BankAccountsCreated++
		} else {
			res.Skipped++
		}
	}

	n, err := s.seedMethods(ctx, f.PaymentMethods, now)
	if err != nil {
		return res, err
	}
	res.MethodsCreated = n
	if n == 0 {
		res.Skipped += len(f.PaymentMethods)
	}

	for _, d := range f.Discounts {
		created, err := s.seedDiscount(ctx, d, now)
		if err != nil {
			return res, err
		}
		if created {
			res.DiscountsCreated++
		} else {
			res.Skipped++
		}
	}

	s.logger.Infow("seed run finished",
		"bank_accounts", res.BankAccountsCreated,
		"methods", res.MethodsCreated,
		"discounts", res.DiscountsCreated,
		"skipped", res.Skipped)
	return res, nil
}

func (s *Seeder) seedBankAccount(ctx context.Context, a BankAccountSeed, now time.Time) (bool, error) {
	_, err := s.accounts.GetByAccountNumber(ctx, a.BankCode, a.AccountNumber)
	if err == nil {
		return false, nil
	}
	if !errors.IsNotFoundError(err) {
		return false, fmt.Errorf("failed to look up bank account %s: %w", a.AccountNumber, err)
	}

	account, err := banktransfer.NewBankAccount(a.BankName, a.BankCode, a.AccountNumber, a.AccountName, a.Branch, a.QRImageRef, now)
	if err != nil {
		return false, fmt.Errorf("invalid bank account seed %s: %w", a.AccountNumber, err)
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return false, fmt.Errorf("failed to create bank account %s: %w", a.AccountNumber, err)
	}
	return true, nil
}

// seedMethods only writes when the registry is empty; an existing registry
// is owned by the admin API.
func (s *Seeder) seedMethods(ctx context.Context, seeds []MethodSeed, now time.Time) (int, error) {
	if len(seeds) == 0 {
		return 0, nil
	}
	existing, err := s.methods.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list payment methods: %w", err)
	}
	if len(existing) > 0 {
		s.logger.Debugw("payment method registry already populated", "count", len(existing))
		return 0, nil
	}

	methods := make([]*paymentmethod.Method, 0, len(seeds))
	defaults := 0
	for i, m := range seeds {
		id, err := vo.NewPaymentMethod(m.ID)
		if err != nil {
			return 0, fmt.Errorf("invalid payment method seed: %w", err)
		}
		fee, err := parseMoney(m.Fee)
		if err != nil {
			return 0, fmt.Errorf("invalid fee for %s: %w", m.ID, err)
		}
		enabled := m.Enabled == nil || *m.Enabled
		if m.Default {
			defaults++
			if !enabled {
				return 0, fmt.Errorf("default payment method %s must be enabled", m.ID)
			}
		}
		methods = append(methods, paymentmethod.ReconstructMethod(id, m.Name, m.Description, enabled, fee, i+1, m.Default, now))
	}
	if defaults != 1 {
		return 0, fmt.Errorf("exactly one payment method must be default, got %d", defaults)
	}

	if err := s.methods.SaveAll(ctx, methods); err != nil {
		return 0, fmt.Errorf("failed to save payment methods: %w", err)
	}
	return len(methods), nil
}

func (s *Seeder) seedDiscount(ctx context.Context, d DiscountSeed, now time.Time) (bool, error) {
	_, err := s.discounts.GetByCode(ctx, d.Code)
	if err == nil {
		return false, nil
	}
	if !errors.IsNotFoundError(err) {
		return false, fmt.Errorf("failed to look up discount %s: %w", d.Code, err)
	}

	value, err := decimal.NewFromString(d.Value)
	if err != nil {
		return false, fmt.Errorf("invalid value for discount %s: %w", d.Code, err)
	}
	minSubtotal, err := parseMoney(d.MinSubtotal)
	if err != nil {
		return false, fmt.Errorf("invalid min_subtotal for discount %s: %w", d.Code, err)
	}
	var maxDiscount *vo.Money
	if d.MaxDiscount != "" {
		m, err := vo.ParseMoney(d.MaxDiscount)
		if err != nil {
			return false, fmt.Errorf("invalid max_discount for discount %s: %w", d.Code, err)
		}
		maxDiscount = &m
	}

	code, err := discount.NewCode(discount.NewCodeParams{
		Code:        d.Code,
		Kind:        discount.Kind(d.Kind),
		Value:       value,
		MaxDiscount: maxDiscount,
		MinSubtotal: minSubtotal,
		UsageLimit:  d.UsageLimit,
		StartsAt:    d.StartsAt,
		EndsAt:      d.EndsAt,
	}, now)
	if err != nil {
		return false, fmt.Errorf("invalid discount seed %s: %w", d.Code, err)
	}
	if err := s.discounts.Create(ctx, code); err != nil {
		return false, fmt.Errorf("failed to create discount %s: %w", d.Code, err)
	}
	return true, nil
}

func parseMoney(s string) (vo.Money, error) {
	if s == "" {
		return vo.NewMoneyFromInt(0), nil
	}
	return vo.ParseMoney(s)
}
