package finmath

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFutureValueZeroRateLinearity(t *testing.T) {
	cases := []struct {
		periods int
		payment int64
		present int64
	}{
		{1, 0, 0},
		{12, 1000, 0},
		{120, 500, 100000},
		{360, -200, 50000},
	}

	for _, tc := range cases {
		pmt := decimal.NewFromInt(tc.payment)
		pv := decimal.NewFromInt(tc.present)

		fv, err := FutureValue(decimal.Zero, tc.periods, pmt, pv)
		require.NoError(t, err)

		expected := pv.Add(pmt.Mul(decimal.NewFromInt(int64(tc.periods))))
		assert.True(t, fv.Equal(expected), "FV(0, %d, %d, %d) should be pv + pmt*n, got %s", tc.periods, tc.payment, tc.present, fv)
	}
}

func TestPresentValueZeroRate(t *testing.T) {
	pmt := decimal.NewFromInt(1000)
	fv := decimal.NewFromInt(50000)

	pv, err := PresentValue(decimal.Zero, 12, pmt, fv)
	require.NoError(t, err)

	expected := pmt.Mul(decimal.NewFromInt(12)).Add(fv).Neg()
	assert.True(t, pv.Equal(expected), "PV(0, n, pmt, fv) should be -(pmt*n + fv), got %s", pv)
}

func TestPaymentZeroRate(t *testing.T) {
	pv := decimal.NewFromInt(10000)
	fv := decimal.NewFromInt(2000)

	pmt, err := Payment(decimal.Zero, 12, pv, fv)
	require.NoError(t, err)

	expected := fv.Add(pv).Div(decimal.NewFromInt(12)).Neg()
	assert.True(t, pmt.Equal(expected), "payment at zero rate should be -(fv+pv)/n, got %s", pmt)
}

func TestAnnuityRoundTrip(t *testing.T) {
	rates := []float64{0.001, 0.0032737, 0.005, 0.01}
	periods := []int{12, 120, 360}

	pv := decimal.NewFromInt(100000)
	target := decimal.NewFromInt(1500000)

	for _, r := range rates {
		for _, n := range periods {
			rate := decimal.NewFromFloat(r)

			pmt, err := Payment(rate, n, pv.Neg(), target)
			require.NoError(t, err)

			back, err := FutureValue(rate, n, pmt, pv)
			require.NoError(t, err)

			assert.InEpsilon(t, target.InexactFloat64(), back.InexactFloat64(), 1e-6,
				"round trip at r=%v n=%d should reproduce the target", r, n)
		}
	}
}

func TestAnnuityGuards(t *testing.T) {
	rate := decimal.NewFromFloat(0.005)
	negOne := decimal.NewFromInt(-1)

	var periodErr *InvalidPeriodCountError
	var rateErr *InvalidRateError

	_, err := PresentValue(rate, 0, decimal.Zero, decimal.Zero)
	assert.ErrorAs(t, err, &periodErr, "zero periods should be rejected before any division")

	_, err = FutureValue(rate, -3, decimal.Zero, decimal.Zero)
	assert.ErrorAs(t, err, &periodErr, "negative periods should be rejected")

	_, err = Payment(negOne, 12, decimal.Zero, decimal.Zero)
	assert.ErrorAs(t, err, &rateErr, "rate of -100%% should be rejected")

	_, err = PresentValue(negOne, 12, decimal.Zero, decimal.Zero)
	assert.ErrorAs(t, err, &rateErr, "rate of -100%% should be rejected")
}

func TestFutureValueKnownValue(t *testing.T) {
	// 100000 at 0.5% monthly over 12 months with 1000/month deposits.
	rate := decimal.NewFromFloat(0.005)

	fv, err := FutureValue(rate, 12, decimal.NewFromInt(1000), decimal.NewFromInt(100000))
	require.NoError(t, err)

	// 100000*1.005^12 + 1000*(1.005^12-1)/0.005
	assert.InDelta(t, 118503.39, fv.InexactFloat64(), 0.25)
}
