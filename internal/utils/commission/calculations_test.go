package commission

import (
	"testing"

	"github.com/fieldglass/salesops_backend/internal/apperrors"
	"github.com/fieldglass/salesops_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pct(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func rule(label string, percentage string, before bool) domain.Deduction {
	return domain.Deduction{
		Label:                   label,
		Percentage:              pct(percentage),
		AppliesBeforeCommission: before,
		IsActive:                true,
	}
}

func TestApplyDeductions_EmptySetIsIdentity(t *testing.T) {
	revenue := decimal.NewFromInt(500)

	commissionable, totalDeducted, trail, err := ApplyDeductions(revenue, nil)

	require.NoError(t, err)
	assert.True(t, commissionable.Equal(revenue))
	assert.True(t, totalDeducted.IsZero())
	assert.Empty(t, trail)
}

func TestApplyDeductions_SingleBeforeCommissionRule(t *testing.T) {
	revenue := decimal.NewFromInt(1000)

	commissionable, totalDeducted, trail, err := ApplyDeductions(revenue, []domain.Deduction{
		rule("tax", "10", true),
	})

	require.NoError(t, err)
	assert.True(t, commissionable.Equal(decimal.NewFromInt(900)), "got %s", commissionable)
	assert.True(t, totalDeducted.Equal(decimal.NewFromInt(100)))
	require.Len(t, trail, 1)
	assert.Equal(t, "tax", trail[0].Label)
	assert.True(t, trail[0].Amount.Equal(decimal.NewFromInt(100)))
}

func TestApplyDeductions_ZeroPercentRuleIsNoOp(t *testing.T) {
	revenue := decimal.NewFromInt(1000)

	commissionable, totalDeducted, trail, err := ApplyDeductions(revenue, []domain.Deduction{
		rule("waived levy", "0", true),
		rule("tax", "10", true),
	})

	require.NoError(t, err)
	assert.True(t, commissionable.Equal(decimal.NewFromInt(900)), "got %s", commissionable)
	assert.True(t, totalDeducted.Equal(decimal.NewFromInt(100)))
	require.Len(t, trail, 2)
	assert.True(t, trail[0].Amount.IsZero())
}

func TestApplyDeductions_CompoundsOnRemainingBase(t *testing.T) {
	// 1000 -10% -> 900, then -20% of 900 -> 720 (not -20% of 1000).
	revenue := decimal.NewFromInt(1000)

	commissionable, totalDeducted, trail, err := ApplyDeductions(revenue, []domain.Deduction{
		rule("tax", "10", true),
		rule("platform fee", "20", true),
	})

	require.NoError(t, err)
	assert.True(t, commissionable.Equal(decimal.NewFromInt(720)), "got %s", commissionable)
	assert.True(t, totalDeducted.Equal(decimal.NewFromInt(280)))
	require.Len(t, trail, 2)
	assert.True(t, trail[1].Amount.Equal(decimal.NewFromInt(180)), "second rule applies to remaining base")
}

func TestApplyDeductions_AfterCommissionRulesNotAppliedToRevenue(t *testing.T) {
	revenue := decimal.NewFromInt(1000)

	commissionable, totalDeducted, trail, err := ApplyDeductions(revenue, []domain.Deduction{
		rule("processing", "5", false),
	})

	require.NoError(t, err)
	assert.True(t, commissionable.Equal(revenue), "after-commission rules leave the base untouched")
	assert.True(t, totalDeducted.IsZero())
	require.Len(t, trail, 1)
	assert.False(t, trail[0].BeforeCommission)
	assert.True(t, trail[0].Amount.IsZero(), "amount filled in by ComputeCommission")
}

func TestApplyDeductions_TotalOverHundredRejected(t *testing.T) {
	_, _, _, err := ApplyDeductions(decimal.NewFromInt(100), []domain.Deduction{
		rule("a", "60", true),
		rule("b", "50", false),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestApplyDeductions_OutOfRangePercentageRejected(t *testing.T) {
	for _, p := range []string{"-5", "101"} {
		_, _, _, err := ApplyDeductions(decimal.NewFromInt(100), []domain.Deduction{rule("bad", p, true)})
		assert.ErrorIs(t, err, apperrors.ErrValidation, "percentage %s", p)
	}
}

func TestApplyDeductions_Monotonic(t *testing.T) {
	revenue := decimal.RequireFromString("1234.56")
	sets := [][]domain.Deduction{
		{rule("tax", "10", true)},
		{rule("tax", "10", true), rule("fee", "25", true)},
		{rule("tax", "99.9", true)},
	}

	for _, set := range sets {
		commissionable, _, _, err := ApplyDeductions(revenue, set)
		require.NoError(t, err)
		assert.True(t, commissionable.LessThan(revenue), "any positive percentage strictly reduces the base")
		assert.False(t, commissionable.IsNegative())
	}
}

func TestComputeCommission_KnownScenarios(t *testing.T) {
	t.Run("1000 USD, 10% tax before, 20% rate", func(t *testing.T) {
		commissionable, _, trail, err := ApplyDeductions(decimal.NewFromInt(1000), []domain.Deduction{
			rule("tax", "10", true),
		})
		require.NoError(t, err)

		amount, err := ComputeCommission(commissionable, pct("20"), trail, StandardPrecision)
		require.NoError(t, err)
		assert.Equal(t, "900", commissionable.String())
		assert.Equal(t, "180", amount.String())
	})

	t.Run("500, no deductions, 15% rate", func(t *testing.T) {
		commissionable, _, trail, err := ApplyDeductions(decimal.NewFromInt(500), nil)
		require.NoError(t, err)

		amount, err := ComputeCommission(commissionable, pct("15"), trail, StandardPrecision)
		require.NoError(t, err)
		assert.Equal(t, "500", commissionable.String())
		assert.Equal(t, "75", amount.String())
	})
}

func TestComputeCommission_LinearInRate(t *testing.T) {
	base := decimal.RequireFromString("873.33")

	single, err := ComputeCommission(base, pct("10"), nil, 6)
	require.NoError(t, err)
	double, err := ComputeCommission(base, pct("20"), nil, 6)
	require.NoError(t, err)

	assert.True(t, double.Equal(single.Mul(decimal.NewFromInt(2))), "doubling the rate doubles the commission")
}

func TestComputeCommission_AfterCommissionDeductionsCompound(t *testing.T) {
	// commission = 1000 * 10% = 100; -10% -> 90; -10% of 90 -> 81.
	trail := []domain.AppliedDeduction{
		{Label: "processing", Percentage: pct("10"), BeforeCommission: false},
		{Label: "platform", Percentage: pct("10"), BeforeCommission: false},
	}

	amount, err := ComputeCommission(decimal.NewFromInt(1000), pct("10"), trail, StandardPrecision)

	require.NoError(t, err)
	assert.Equal(t, "81", amount.String())
	assert.True(t, trail[0].Amount.Equal(decimal.NewFromInt(10)))
	assert.True(t, trail[1].Amount.Equal(decimal.NewFromInt(9)))
}

func TestComputeCommission_RoundsOnceAtTheEnd(t *testing.T) {
	// 100.555 * 10% = 10.0555 -> 10.06 when rounded half-up to 2 places.
	amount, err := ComputeCommission(decimal.RequireFromString("100.555"), pct("10"), nil, StandardPrecision)

	require.NoError(t, err)
	assert.Equal(t, "10.06", amount.String())
}

func TestComputeCommission_RateOutOfRange(t *testing.T) {
	for _, r := range []string{"-1", "100.01"} {
		_, err := ComputeCommission(decimal.NewFromInt(100), pct(r), nil, StandardPrecision)
		assert.ErrorIs(t, err, apperrors.ErrValidation, "rate %s", r)
	}
}
