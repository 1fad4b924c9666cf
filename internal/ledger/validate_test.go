package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libro-dev/libro/internal/apperrors"
	"github.com/libro-dev/libro/internal/model"
)

// mockAccounts implements AccountChecker for testing.
type mockAccounts struct {
	ids map[model.AccountID]bool
}

func (m *mockAccounts) Exists(id model.AccountID) bool {
	return m.ids[id]
}

func newMockAccounts(ids ...model.AccountID) *mockAccounts {
	m := &mockAccounts{ids: make(map[model.AccountID]bool)}
	for _, id := range ids {
		m.ids[id] = true
	}
	return m
}

var defaultAccounts = newMockAccounts(model.AccountCash, model.AccountBank, model.AccountMerchandise, model.AccountVATRecoverable, model.AccountPayables)

func hasRule(errs []ValidationError, rule string) bool {
	for _, e := range errs {
		if e.Rule == rule {
			return true
		}
	}
	return false
}

func TestValidate_Balanced(t *testing.T) {
	d := Draft{
		Debits:  []model.Line{line(model.AccountMerchandise, "1000.00"), line(model.AccountVATRecoverable, "160.00")},
		Credits: []model.Line{line(model.AccountBank, "1160.00")},
	}
	assert.Empty(t, ValidateDraft(d, defaultAccounts))
}

func TestValidate_Unbalanced(t *testing.T) {
	d := Draft{
		Debits:  []model.Line{line(model.AccountMerchandise, "100.00")},
		Credits: []model.Line{line(model.AccountBank, "99.00")},
	}
	errs := ValidateDraft(d, defaultAccounts)
	require.Len(t, errs, 1)
	assert.Equal(t, "balance", errs[0].Rule)
	assert.ErrorIs(t, errs[0], apperrors.ErrUnbalanced)
}

func TestValidate_EmptySide(t *testing.T) {
	d := Draft{Debits: []model.Line{line(model.AccountCash, "10")}}
	errs := ValidateDraft(d, defaultAccounts)
	assert.True(t, hasRule(errs, "sides"))
	assert.True(t, hasRule(errs, "balance"))
}

func TestValidate_UnknownAccount(t *testing.T) {
	d := Draft{
		Debits:  []model.Line{line(model.AccountSales, "50")},
		Credits: []model.Line{line(model.AccountBank, "50")},
	}
	assert.True(t, hasRule(ValidateDraft(d, defaultAccounts), "account"))
}

func TestValidate_NonPositive(t *testing.T) {
	d := Draft{
		Debits:  []model.Line{line(model.AccountCash, "0")},
		Credits: []model.Line{line(model.AccountBank, "0")},
	}
	errs := ValidateDraft(d, defaultAccounts)
	assert.True(t, hasRule(errs, "amount"))
	assert.False(t, hasRule(errs, "balance"))
}

func TestValidate_TooManyDecimals(t *testing.T) {
	d := Draft{
		Debits:  []model.Line{line(model.AccountCash, "10.123")},
		Credits: []model.Line{line(model.AccountBank, "10.123")},
	}
	assert.True(t, hasRule(ValidateDraft(d, defaultAccounts), "precision"))
}

func TestValidate_MultiLegBalanced(t *testing.T) {
	d := Draft{
		Debits:  []model.Line{line(model.AccountMerchandise, "1000"), line(model.AccountVATRecoverable, "64")},
		Credits: []model.Line{line(model.AccountBank, "464"), line(model.AccountPayables, "600")},
	}
	assert.Empty(t, ValidateDraft(d, defaultAccounts))
}

func TestJoinErrors(t *testing.T) {
	assert.NoError(t, JoinErrors(nil))

	d := Draft{
		Debits:  []model.Line{line(model.AccountSales, "10.001")},
		Credits: []model.Line{line(model.AccountBank, "5")},
	}
	err := JoinErrors(ValidateDraft(d, defaultAccounts))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.ErrorIs(t, err, apperrors.ErrUnknownAccount)
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
	assert.ErrorIs(t, err, apperrors.ErrUnbalanced)
}
