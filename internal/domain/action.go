package domain

import "strings"

// InstrumentClass separates the two position books. Equity and option
// state for the same symbol string are never merged.
type InstrumentClass string

const (
	InstrumentClass_Equity  InstrumentClass = "EQUITY"
	InstrumentClass_Option  InstrumentClass = "OPTION"
	InstrumentClass_Ignored InstrumentClass = "IGNORED"
)

func (c InstrumentClass) String() string { return string(c) }

type Action string

const (
	Action_Buy        Action = "Buy"
	Action_Sell       Action = "Sell"
	Action_SellShort  Action = "Sell Short"
	Action_BuyToCover Action = "Buy to Cover"

	Action_BuyToOpen   Action = "Buy to Open"
	Action_SellToClose Action = "Sell to Close"
	Action_SellToOpen  Action = "Sell to Open"
	Action_BuyToClose  Action = "Buy to Close"

	Action_Unknown Action = ""
)

func (a Action) String() string { return string(a) }

var equityActions = map[string]Action{
	"Buy":          Action_Buy,
	"Sell":         Action_Sell,
	"Sell Short":   Action_SellShort,
	"Buy to Cover": Action_BuyToCover,
}

var optionActions = map[string]Action{
	"buy to open":   Action_BuyToOpen,
	"sell to close": Action_SellToClose,
	"sell to open":  Action_SellToOpen,
	"buy to close":  Action_BuyToClose,
}

// Classify maps a raw broker action onto the closed vocabulary.
//
// Equity actions must match exactly. Anything whose lowercase form
// contains "to open" or "to close" is option-class; if it isn't one of
// the four canonical option actions it comes back as Action_Unknown with
// InstrumentClass_Option, which the option book counts but otherwise
// ignores. Everything else is InstrumentClass_Ignored.
func Classify(action string) (Action, InstrumentClass) {
	lower := strings.ToLower(action)
	if strings.Contains(lower, "to open") || strings.Contains(lower, "to close") {
		if a, ok := optionActions[lower]; ok {
			return a, InstrumentClass_Option
		}
		return Action_Unknown, InstrumentClass_Option
	}
	if a, ok := equityActions[action]; ok {
		return a, InstrumentClass_Equity
	}
	return Action_Unknown, InstrumentClass_Ignored
}

type ActionCategory string

const (
	ActionCategory_Trade   ActionCategory = "trade"
	ActionCategory_Option  ActionCategory = "option"
	ActionCategory_Income  ActionCategory = "income"
	ActionCategory_Expense ActionCategory = "expense"
	ActionCategory_Other   ActionCategory = "other"
)

var incomeActions = []string{"Qualified Dividend", "Non-Qualified Dividend", "Bank Interest", "Credit Interest"}
var expenseActions = []string{"Margin Interest", "Foreign Tax Paid", "ADR Mgmt Fee"}

// Category groups an action for display. Only the exact canonical
// spellings are recognized here.
func Category(action string) ActionCategory {
	if _, ok := equityActions[action]; ok {
		return ActionCategory_Trade
	}
	switch Action(action) {
	case Action_BuyToOpen, Action_SellToOpen, Action_BuyToClose, Action_SellToClose:
		return ActionCategory_Option
	}
	if contains(incomeActions, action) {
		return ActionCategory_Income
	}
	if contains(expenseActions, action) {
		return ActionCategory_Expense
	}
	return ActionCategory_Other
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
