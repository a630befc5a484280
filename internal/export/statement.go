// Package export renders ledger statements for download. Amounts are stored
// in paise; rendering converts them to rupee strings with two decimal places.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"billwise/internal/cycle"
	"billwise/internal/models"
)

var paisePerRupee = decimal.NewFromInt(100)

// Rupees formats an amount in paise as a rupee string, e.g. 123450 -> "1234.50".
func Rupees(paise int64) string {
	return decimal.NewFromInt(paise).Div(paisePerRupee).StringFixed(2)
}

// monthBlock accumulates one calendar month of statement rows.
type monthBlock struct {
	key      string
	rows     []models.Transaction
	income   int64
	expenses int64
}

// WriteStatement writes transactions as a CSV statement to w. Rows are
// grouped by calendar month in input order; each month ends with an
// income/expense/net totals line. Transactions must already be sorted by
// date ascending.
func WriteStatement(w io.Writer, transactions []models.Transaction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"month", "date", "type", "category", "description", "amount"}); err != nil {
		return err
	}

	for _, block := range groupByMonth(transactions) {
		for _, tx := range block.rows {
			record := []string{
				block.key,
				tx.Date.Format("2006-01-02"),
				string(tx.Type),
				string(tx.Category),
				tx.Description,
				Rupees(tx.Amount),
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
		totals := []string{
			block.key, "", "totals", "",
			"entries: " + strconv.Itoa(len(block.rows)) +
				", income: " + Rupees(block.income) +
				", expenses: " + Rupees(block.expenses),
			Rupees(block.income - block.expenses),
		}
		if err := cw.Write(totals); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func groupByMonth(transactions []models.Transaction) []monthBlock {
	var blocks []monthBlock
	for _, tx := range transactions {
		key := cycle.Key(tx.Date)
		if len(blocks) == 0 || blocks[len(blocks)-1].key != key {
			blocks = append(blocks, monthBlock{key: key})
		}
		b := &blocks[len(blocks)-1]
		b.rows = append(b.rows, tx)
		switch tx.Type {
		case models.TransactionTypeIncome:
			b.income += tx.Amount
		default:
			b.expenses += tx.Amount
		}
	}
	return blocks
}
