package model

import "strconv"

// AccountClass classifies accounts in the chart of accounts.
type AccountClass string

const (
	ClassAsset     AccountClass = "asset"
	ClassLiability AccountClass = "liability"
	ClassEquity    AccountClass = "equity"
	ClassIncome    AccountClass = "income"
	ClassExpense   AccountClass = "expense"
)

// Side is one side of a double entry.
type Side string

const (
	Debit  Side = "debit"
	Credit Side = "credit"
)

// Group controls where an account is presented in the financial statements.
type Group string

const (
	GroupCurrentAsset    Group = "current_asset"
	GroupNonCurrentAsset Group = "non_current_asset"
	GroupShortTermDebt   Group = "short_term_liability"
	GroupEquity          Group = "equity"
	GroupIncome          Group = "income"
	GroupCost            Group = "cost"
	GroupExpense         Group = "expense"
)

// AccountID is a chart-of-accounts code. The set of valid IDs is closed.
type AccountID int

const (
	AccountCash              AccountID = 1101
	AccountBank              AccountID = 1102
	AccountReceivables       AccountID = 1103
	AccountMerchandise       AccountID = 1104
	AccountVATRecoverable    AccountID = 1105
	AccountVATToRecover      AccountID = 1106
	AccountSupplies          AccountID = 1107
	AccountPrepaidRent       AccountID = 1108
	AccountBuildings         AccountID = 1201
	AccountLand              AccountID = 1202
	AccountComputerEquipment AccountID = 1203
	AccountFurniture         AccountID = 1204
	AccountOfficeEquipment   AccountID = 1205
	AccountDeliveryEquipment AccountID = 1206
	AccountPayables          AccountID = 2101
	AccountVATCollected      AccountID = 2102
	AccountVATToCollect      AccountID = 2103
	AccountCustomerAdvances  AccountID = 2104
	AccountCapital           AccountID = 3101
	AccountPeriodIncome      AccountID = 3102
	AccountRetainedEarnings  AccountID = 3103
	AccountSales             AccountID = 4101
	AccountFinancialIncome   AccountID = 4102
	AccountOtherIncome       AccountID = 4103
	AccountCostOfSales       AccountID = 5101
	AccountSellingExpenses   AccountID = 6101
	AccountAdminExpenses     AccountID = 6102
	AccountFinancialExpenses AccountID = 6103
)

func (id AccountID) String() string { return strconv.Itoa(int(id)) }

// IsCash reports whether the account is a cash equivalent for the cash-flow statement.
func (id AccountID) IsCash() bool {
	return id == AccountCash || id == AccountBank
}

// Account is one row of the chart of accounts.
type Account struct {
	ID     AccountID
	Name   string
	Class  AccountClass
	Normal Side
	Group  Group
}
