package calculation

import (
	"github.com/shopspring/decimal"
)

// MortgageTermYears is the amortization term used by the simulation. It is independent of the
// projection horizon: a 10-year projection still amortizes a 30-year loan.
const MortgageTermYears = 30

// Precision is the number of decimal places kept on balances carried between periods.
const Precision int32 = 10

var (
	one    = decimal.NewFromInt(1)
	twelve = decimal.NewFromInt(12)
)

// MonthlyPayment calculates the fixed monthly payment of a fully amortizing loan.
// A zero rate degenerates to straight-line repayment: principal / (termYears*12).
func MonthlyPayment(principal, annualRate decimal.Decimal, termYears int) decimal.Decimal {
	n := decimal.NewFromInt(int64(termYears * 12))
	if annualRate.IsZero() {
		return principal.Div(n)
	}

	r := annualRate.Div(twelve)
	factor := one.Add(r).Pow(n)

	return principal.Mul(r).Mul(factor).Div(factor.Sub(one))
}

// RemainingBalance calculates the outstanding principal after monthsElapsed payments.
// The result never drops below zero, which absorbs rounding once the loan is paid off.
func RemainingBalance(principal, annualRate decimal.Decimal, monthsElapsed, termYears int) decimal.Decimal {
	payment := MonthlyPayment(principal, annualRate, termYears)
	m := decimal.NewFromInt(int64(monthsElapsed))

	var balance decimal.Decimal
	if annualRate.IsZero() {
		balance = principal.Sub(payment.Mul(m))
	} else {
		r := annualRate.Div(twelve)
		growth := one.Add(r).Pow(m)
		balance = principal.Mul(growth).Sub(payment.Mul(growth.Sub(one)).Div(r))
	}

	if balance.IsNegative() {
		return decimal.Zero
	}
	return balance.Round(Precision)
}
