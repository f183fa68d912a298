package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		action     string
		wantAction Action
		wantClass  InstrumentClass
	}{
		{"Buy", Action_Buy, InstrumentClass_Equity},
		{"Sell", Action_Sell, InstrumentClass_Equity},
		{"Sell Short", Action_SellShort, InstrumentClass_Equity},
		{"Buy to Cover", Action_BuyToCover, InstrumentClass_Equity},
		{"Buy to Open", Action_BuyToOpen, InstrumentClass_Option},
		{"Sell to Close", Action_SellToClose, InstrumentClass_Option},
		{"SELL TO OPEN", Action_SellToOpen, InstrumentClass_Option},
		{"Buy To Close", Action_BuyToClose, InstrumentClass_Option},
		{"Exchange to Close", Action_Unknown, InstrumentClass_Option},
		{"buy", Action_Unknown, InstrumentClass_Ignored},
		{"Reinvest Shares", Action_Unknown, InstrumentClass_Ignored},
		{"Qualified Dividend", Action_Unknown, InstrumentClass_Ignored},
		{"", Action_Unknown, InstrumentClass_Ignored},
	}
	for _, c := range cases {
		t.Run(c.action, func(t *testing.T) {
			action, class := Classify(c.action)
			require.Equal(t, c.wantAction, action)
			require.Equal(t, c.wantClass, class)
		})
	}
}

func TestCategory(t *testing.T) {
	require.Equal(t, ActionCategory_Trade, Category("Buy to Cover"))
	require.Equal(t, ActionCategory_Option, Category("Sell to Open"))
	require.Equal(t, ActionCategory_Income, Category("Qualified Dividend"))
	require.Equal(t, ActionCategory_Expense, Category("ADR Mgmt Fee"))
	require.Equal(t, ActionCategory_Other, Category("Journal"))
	require.Equal(t, ActionCategory_Other, Category("sell to open"))
}
