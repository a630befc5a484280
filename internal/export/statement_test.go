package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"billwise/internal/models"
)

func entry(y int, m time.Month, d int, txType models.TransactionType, amount int64, desc string) models.Transaction {
	category := models.CategoryOther
	if txType == models.TransactionTypeIncome {
		category = models.CategorySalary
	}
	return models.Transaction{
		Type:        txType,
		Amount:      amount,
		Description: desc,
		Category:    category,
		Date:        time.Date(y, m, d, 12, 0, 0, 0, time.UTC),
	}
}

func TestRupees(t *testing.T) {
	cases := []struct {
		paise int64
		want  string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{123450, "1234.50"},
		{100, "1.00"},
		{-2550, "-25.50"},
	}
	for _, c := range cases {
		if got := Rupees(c.paise); got != c.want {
			t.Errorf("Rupees(%d) = %q, want %q", c.paise, got, c.want)
		}
	}
}

func TestWriteStatement(t *testing.T) {
	transactions := []models.Transaction{
		entry(2024, time.February, 5, models.TransactionTypeIncome, 5000000, "Salary"),
		entry(2024, time.February, 10, models.TransactionTypeExpense, 150000, "Rent"),
		entry(2024, time.March, 1, models.TransactionTypeExpense, 25050, "Groceries"),
	}

	var buf bytes.Buffer
	if err := WriteStatement(&buf, transactions); err != nil {
		t.Fatalf("write statement: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}

	// Header + 3 rows + 2 per-month totals lines.
	if len(records) != 6 {
		t.Fatalf("expected 6 records, got %d: %v", len(records), records)
	}
	if records[0][0] != "month" {
		t.Errorf("unexpected header: %v", records[0])
	}

	// February rows then the February totals line.
	if records[1][0] != "2024-02" || records[1][5] != "50000.00" {
		t.Errorf("unexpected first row: %v", records[1])
	}
	febTotals := records[3]
	if febTotals[2] != "totals" || febTotals[5] != "48500.00" {
		t.Errorf("unexpected february totals: %v", febTotals)
	}
	if !strings.Contains(febTotals[4], "entries: 2") {
		t.Errorf("expected entry count in totals, got %q", febTotals[4])
	}

	// March row and totals.
	if records[4][0] != "2024-03" || records[4][5] != "250.50" {
		t.Errorf("unexpected march row: %v", records[4])
	}
	if records[5][5] != "-250.50" {
		t.Errorf("unexpected march net: %v", records[5])
	}
}

func TestWriteStatementEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteStatement(&buf, nil); err != nil {
		t.Fatalf("write statement: %v", err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("expected header only, got %v", records)
	}
}
