package mission

import (
	"errors"
	"time"

	"missions/internal/core/domain/model/kernel"
	"missions/internal/pkg/errs"
)

// SalaryMode selects how the contract salary is computed over the mission
// duration.
type SalaryMode int

const (
	// SalaryModeUnknown represents an invalid or undefined salary mode.
	SalaryModeUnknown SalaryMode = iota

	// SalaryModeDaily pays the configured amount per mission day.
	SalaryModeDaily

	// SalaryModeMonthly pays the configured amount per month; the daily
	// equivalent is derived with a fixed divisor of 30.
	SalaryModeMonthly

	// SalaryModeLumpSum pays the configured amount once, regardless of the
	// mission duration.
	SalaryModeLumpSum
)

// getSalaryModeStrings returns the wire representation of every salary mode.
func getSalaryModeStrings() map[SalaryMode]string {
	return map[SalaryMode]string{
		SalaryModeUnknown: "unknown",
		SalaryModeDaily:   "daily",
		SalaryModeMonthly: "monthly",
		SalaryModeLumpSum: "lump_sum",
	}
}

// SalaryModeFromString parses a salary mode from its wire representation.
func SalaryModeFromString(s string) (SalaryMode, error) {
	for m, str := range getSalaryModeStrings() {
		if m != SalaryModeUnknown && str == s {
			return m, nil
		}
	}
	return SalaryModeUnknown, errs.NewValueIsInvalidError("salaryMode")
}

// String returns the wire name of the salary mode, e.g. "lump_sum".
func (m SalaryMode) String() string {
	if str, ok := getSalaryModeStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the mode is daily, monthly or lump_sum.
func (m SalaryMode) Validate() error {
	if m != SalaryModeDaily && m != SalaryModeMonthly && m != SalaryModeLumpSum {
		return errs.NewValueIsInvalidError("salaryMode")
	}
	return nil
}

// Salary is the pay configuration of a mission contract. A salary whose
// amount deviates from the rate table is recorded as unlocked and must
// carry a comment explaining the manual override. The comment is a business
// rule, not a security control: it substitutes a written reason for a
// second approval.
type Salary struct {
	amount   float64
	mode     SalaryMode
	currency string
	locked   bool
	comment  string

	isConstructed bool
}

// NewSalary creates a validated salary configuration.
// An unlocked salary requires a non-empty comment.
func NewSalary(amount float64, mode SalaryMode, currency string, locked bool, comment string) (Salary, error) {
	if err := errors.Join(
		mode.Validate(),
		requireText("salaryCurrency", currency),
	); err != nil {
		return Salary{}, err
	}
	if amount < 0 {
		return Salary{}, errs.NewValueIsInvalidError("salaryAmount")
	}
	if !locked && comment == "" {
		return Salary{}, errs.NewValueIsRequiredError("salaryComment")
	}

	return Salary{
		amount:        amount,
		mode:          mode,
		currency:      currency,
		locked:        locked,
		comment:       comment,
		isConstructed: true,
	}, nil
}

// Amount returns the configured pay amount, interpreted per Mode.
func (s Salary) Amount() float64 { return s.amount }

// Mode returns how the amount is applied over the mission duration.
func (s Salary) Mode() SalaryMode { return s.mode }

// Currency returns the ISO currency code of the salary.
func (s Salary) Currency() string { return s.currency }

// Locked reports whether the amount follows the rate table.
func (s Salary) Locked() bool { return s.locked }

// Comment returns the manual-override reason. Non-empty whenever unlocked.
func (s Salary) Comment() string { return s.comment }

// Validate checks that the salary was built through NewSalary.
func (s Salary) Validate() error {
	if !s.isConstructed {
		return errs.NewValueIsRequiredError("salary must be created via NewSalary constructor")
	}
	return nil
}

// PerDiem is the daily-allowance configuration of a mission contract.
// It mirrors the salary's lock/comment override pattern.
type PerDiem struct {
	amount  float64
	enabled bool
	locked  bool
	comment string

	isConstructed bool
}

// NewPerDiem creates a validated per-diem configuration.
// An unlocked per diem requires a non-empty comment.
func NewPerDiem(amount float64, enabled, locked bool, comment string) (PerDiem, error) {
	if amount < 0 {
		return PerDiem{}, errs.NewValueIsInvalidError("perDiemAmount")
	}
	if !locked && comment == "" {
		return PerDiem{}, errs.NewValueIsRequiredError("perDiemComment")
	}

	return PerDiem{
		amount:        amount,
		enabled:       enabled,
		locked:        locked,
		comment:       comment,
		isConstructed: true,
	}, nil
}

// Amount returns the daily allowance amount.
func (p PerDiem) Amount() float64 { return p.amount }

// Enabled reports whether the allowance is paid at all.
func (p PerDiem) Enabled() bool { return p.enabled }

// Locked reports whether the amount follows the rate table.
func (p PerDiem) Locked() bool { return p.locked }

// Comment returns the manual-override reason. Non-empty whenever unlocked.
func (p PerDiem) Comment() string { return p.comment }

// Validate checks that the per diem was built through NewPerDiem.
func (p PerDiem) Validate() error {
	if !p.isConstructed {
		return errs.NewValueIsRequiredError("per diem must be created via NewPerDiem constructor")
	}
	return nil
}

// ErrContractIsNotConstructed is returned when validating a zero-value Contract.
var ErrContractIsNotConstructed = errors.New(
	"Contract must be created via NewContract or NewZeroHourContract constructor")

// Contract carries the dates and pay terms of a mission order.
// Zero-hour contracts are synthesized automatically for freelancers that
// reach crew assignment without a negotiated contract.
type Contract struct {
	period   kernel.DateRange
	salary   Salary
	perDiem  PerDiem
	notes    string
	zeroHour bool

	isConstructed bool
}

// NewContract creates a validated mission contract.
func NewContract(period kernel.DateRange, salary Salary, perDiem PerDiem, notes string) (*Contract, error) {
	if err := errors.Join(
		period.Validate(),
		salary.Validate(),
		perDiem.Validate(),
	); err != nil {
		return nil, err
	}

	return &Contract{
		period:        period,
		salary:        salary,
		perDiem:       perDiem,
		notes:         notes,
		isConstructed: true,
	}, nil
}

// NewZeroHourContract synthesizes the minimal contract generated for a
// freelancer at crew assignment: a single-day period starting on the
// assignment date with no guaranteed pay.
func NewZeroHourContract(assignedAt time.Time, currency string) (*Contract, error) {
	period, err := kernel.NewDateRange(assignedAt, assignedAt)
	if err != nil {
		return nil, err
	}

	salary, err := NewSalary(0, SalaryModeDaily, currency, true, "")
	if err != nil {
		return nil, err
	}

	perDiem, err := NewPerDiem(0, false, true, "")
	if err != nil {
		return nil, err
	}

	return &Contract{
		period:        period,
		salary:        salary,
		perDiem:       perDiem,
		notes:         "zero-hour contract",
		zeroHour:      true,
		isConstructed: true,
	}, nil
}

// RestoreContract rebuilds a contract from persistence, including
// synthesized zero-hour ones. Used by repository implementations only.
func RestoreContract(
	period kernel.DateRange, salary Salary, perDiem PerDiem, notes string, zeroHour bool,
) (*Contract, error) {
	if err := errors.Join(
		period.Validate(),
		salary.Validate(),
		perDiem.Validate(),
	); err != nil {
		return nil, err
	}

	return &Contract{
		period:        period,
		salary:        salary,
		perDiem:       perDiem,
		notes:         notes,
		zeroHour:      zeroHour,
		isConstructed: true,
	}, nil
}

// Period returns the inclusive contract date range.
func (c *Contract) Period() kernel.DateRange { return c.period }

// Salary returns the pay configuration.
func (c *Contract) Salary() Salary { return c.salary }

// PerDiem returns the daily-allowance configuration.
func (c *Contract) PerDiem() PerDiem { return c.perDiem }

// Notes returns the free-text contract notes.
func (c *Contract) Notes() string { return c.notes }

// IsZeroHour reports whether the contract was synthesized at assignment.
func (c *Contract) IsZeroHour() bool { return c.zeroHour }

// DurationDays returns the inclusive day count of the contract period.
func (c *Contract) DurationDays() int { return c.period.DurationDays() }

// Reschedule replaces the contract period. Used when an admin approves a
// date-modification request; the requested dates overwrite the contract.
func (c *Contract) Reschedule(period kernel.DateRange) error {
	if err := period.Validate(); err != nil {
		return err
	}
	c.period = period
	return nil
}

// Validate checks that the contract was built through a constructor.
func (c *Contract) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrContractIsNotConstructed
	}
	return nil
}
