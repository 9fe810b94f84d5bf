package commission

import (
	"fmt"

	"github.com/fieldglass/salesops_backend/internal/apperrors"
	"github.com/fieldglass/salesops_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// StandardPrecision is the minor-unit precision used when the currency's own
// precision is unknown.
const StandardPrecision = 2

// ValidateDeductionSet rejects a deduction set whose combined percentage
// exceeds 100 or contains an out-of-range rule. Validation happens before any
// application so a bad configuration can never produce a negative base.
func ValidateDeductionSet(deductions []domain.Deduction) error {
	total := decimal.Zero
	for _, d := range deductions {
		if d.Percentage.IsNegative() || d.Percentage.GreaterThan(oneHundred) {
			return fmt.Errorf("%w: deduction %q percentage %s is out of range [0, 100]", apperrors.ErrValidation, d.Label, d.Percentage.String())
		}
		total = total.Add(d.Percentage)
	}
	if total.GreaterThan(oneHundred) {
		return fmt.Errorf("%w: deduction percentages sum to %s, exceeding 100", apperrors.ErrValidation, total.String())
	}
	return nil
}

// ApplyDeductions applies the ordered deduction set to a revenue amount.
// Before-commission rules compound sequentially on the remaining base
// (amount_i = remaining_i * pct_i / 100); after-commission rules are carried
// through unevaluated so ComputeCommission can apply them to the commission
// output. The returned trail is the only artifact persisted with a
// conversion; the live rule set may change later without altering it.
//
// No rounding happens here. Amounts are rounded once at the end of the whole
// computation to avoid cumulative drift.
func ApplyDeductions(revenue decimal.Decimal, deductions []domain.Deduction) (commissionable decimal.Decimal, totalDeducted decimal.Decimal, trail []domain.AppliedDeduction, err error) {
	if revenue.IsNegative() {
		return decimal.Zero, decimal.Zero, nil, fmt.Errorf("%w: revenue amount must not be negative", apperrors.ErrValidation)
	}
	if err := ValidateDeductionSet(deductions); err != nil {
		return decimal.Zero, decimal.Zero, nil, err
	}

	commissionable = revenue
	totalDeducted = decimal.Zero
	trail = make([]domain.AppliedDeduction, 0, len(deductions))

	for _, d := range deductions {
		applied := domain.AppliedDeduction{
			Label:            d.Label,
			Percentage:       d.Percentage,
			BeforeCommission: d.AppliesBeforeCommission,
		}
		if d.AppliesBeforeCommission {
			amount := commissionable.Mul(d.Percentage).Div(oneHundred)
			applied.Amount = amount
			commissionable = commissionable.Sub(amount)
			totalDeducted = totalDeducted.Add(amount)
		}
		// After-commission rules get their Amount filled in by ComputeCommission.
		trail = append(trail, applied)
	}

	return commissionable, totalDeducted, trail, nil
}

// ComputeCommission multiplies the commissionable base by the rate and then
// applies any after-commission deductions from the trail, compounding on the
// commission result the same way ApplyDeductions compounds on revenue. The
// trail entries for after-commission rules are updated in place with the
// concrete amounts subtracted. The final amount is rounded half-up to the
// given minor-unit precision, once.
func ComputeCommission(commissionable decimal.Decimal, rate decimal.Decimal, trail []domain.AppliedDeduction, precision int) (decimal.Decimal, error) {
	if rate.IsNegative() || rate.GreaterThan(oneHundred) {
		return decimal.Zero, fmt.Errorf("%w: commission rate %s must be between 0 and 100", apperrors.ErrValidation, rate.String())
	}

	amount := commissionable.Mul(rate).Div(oneHundred)
	for i := range trail {
		if trail[i].BeforeCommission {
			continue
		}
		deducted := amount.Mul(trail[i].Percentage).Div(oneHundred)
		trail[i].Amount = deducted
		amount = amount.Sub(deducted)
	}

	return RoundHalfUp(amount, precision), nil
}

// RoundHalfUp rounds to the given number of minor-unit digits, halves away
// from zero. Commission amounts are non-negative so this matches round-half-up.
func RoundHalfUp(amount decimal.Decimal, precision int) decimal.Decimal {
	return amount.Round(int32(precision))
}
