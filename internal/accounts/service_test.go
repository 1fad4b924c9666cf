package accounts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libro-dev/libro/internal/apperrors"
	"github.com/libro-dev/libro/internal/model"
)

func TestGetExists(t *testing.T) {
	svc := Default()

	acct, ok := svc.Get(model.AccountBank)
	assert.True(t, ok)
	assert.Equal(t, "Bancos", acct.Name)

	_, ok = svc.Get(9999)
	assert.False(t, ok)

	assert.True(t, svc.Exists(model.AccountReceivables))
	assert.False(t, svc.Exists(9999))
}

func TestLookup(t *testing.T) {
	svc := Default()

	tests := []struct {
		name string
		want model.AccountID
	}{
		{"Caja", model.AccountCash},
		{"bancos", model.AccountBank},
		{" Mercancía ", model.AccountMerchandise},
		{"GASTOS DE ADMINISTRACIÓN", model.AccountAdminExpenses},
	}
	for _, tt := range tests {
		got, err := svc.Lookup(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}

	_, err := svc.Lookup("Caja chica")
	assert.ErrorIs(t, err, apperrors.ErrUnknownAccount)
}

func TestByGroup(t *testing.T) {
	svc := Default()

	current := svc.ByGroup(model.GroupCurrentAsset)
	assert.Len(t, current, 8)
	assert.Equal(t, model.AccountCash, current[0].ID)

	assert.Len(t, svc.ByGroup(model.GroupNonCurrentAsset), 6)
	assert.Len(t, svc.ByGroup(model.GroupShortTermDebt), 4)
	assert.Len(t, svc.ByClass(model.ClassExpense), 4)
}

func TestName(t *testing.T) {
	svc := Default()
	assert.Equal(t, "IVA acreditable", svc.Name(model.AccountVATRecoverable))
	assert.Equal(t, "9999", svc.Name(9999))
}
