package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/libro-dev/libro/internal/model"
)

// DefaultOpening returns the opening balances a new session starts from.
func DefaultOpening() (debits, credits []model.Line) {
	debits = []model.Line{
		{Account: model.AccountCash, Amount: decimal.NewFromInt(30000)},
		{Account: model.AccountBank, Amount: decimal.NewFromInt(100000)},
		{Account: model.AccountMerchandise, Amount: decimal.NewFromInt(10000)},
		{Account: model.AccountBuildings, Amount: decimal.NewFromInt(1500000)},
		{Account: model.AccountLand, Amount: decimal.NewFromInt(2800000)},
		{Account: model.AccountComputerEquipment, Amount: decimal.NewFromInt(20000)},
		{Account: model.AccountFurniture, Amount: decimal.NewFromInt(100000)},
		{Account: model.AccountOfficeEquipment, Amount: decimal.NewFromInt(20000)},
		{Account: model.AccountDeliveryEquipment, Amount: decimal.NewFromInt(400000)},
	}
	credits = []model.Line{
		{Account: model.AccountCapital, Amount: decimal.NewFromInt(4980000)},
	}
	return debits, credits
}
