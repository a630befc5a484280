package services

import (
	"testing"

	"billwise/internal/models"
	"billwise/internal/pagination"
	"billwise/internal/testutil"
)

func TestCreateTransaction(t *testing.T) {
	t.Run("valid_expense", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		tx, err := svc.CreateTransaction(user.ID, models.TransactionTypeExpense, 25000, "Groceries", models.CategoryGrocery, march15)
		testutil.AssertNoError(t, err)
		if tx.ID == "" {
			t.Fatal("expected non-empty transaction ID")
		}
		if tx.Amount != 25000 || tx.Type != models.TransactionTypeExpense {
			t.Errorf("unexpected transaction: %+v", tx)
		}
	})

	t.Run("valid_income", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateTransaction(user.ID, models.TransactionTypeIncome, 5000000, "March salary", models.CategorySalary, march15)
		testutil.AssertNoError(t, err)
	})

	t.Run("non_positive_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateTransaction(user.ID, models.TransactionTypeExpense, 0, "x", models.CategoryGrocery, march15)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("category_must_match_type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateTransaction(user.ID, models.TransactionTypeIncome, 100, "x", models.CategoryGrocery, march15)
		testutil.AssertAppError(t, err, "INVALID_CATEGORY")

		_, err = svc.CreateTransaction(user.ID, models.TransactionTypeExpense, 100, "x", models.CategorySalary, march15)
		testutil.AssertAppError(t, err, "INVALID_CATEGORY")
	})

	t.Run("unknown_type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateTransaction(user.ID, models.TransactionType("transfer"), 100, "x", models.CategoryGrocery, march15)
		testutil.AssertAppError(t, err, "INVALID_TRANSACTION_TYPE")
	})
}

func TestGetUserTransactions(t *testing.T) {
	t.Run("newest_first_with_pagination", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		for i := 0; i < 5; i++ {
			testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, int64(100+i), march15.AddDate(0, 0, i))
		}

		page, err := svc.GetUserTransactions(user.ID, pagination.PageRequest{Page: 1, PageSize: 3}, TransactionFilter{})
		testutil.AssertNoError(t, err)

		if page.TotalItems != 5 || page.TotalPages != 2 {
			t.Errorf("unexpected pagination metadata: %+v", page)
		}
		if len(page.Data) != 3 {
			t.Fatalf("expected 3 entries, got %d", len(page.Data))
		}
		if !page.Data[0].Date.After(page.Data[1].Date) {
			t.Error("expected newest-first ordering")
		}
	})

	t.Run("filters_by_type_and_window", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeIncome, 1000, march15)
		testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, 2000, march15)
		testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, 3000, march15.AddDate(0, -2, 0))

		expense := models.TransactionTypeExpense
		from := march15.AddDate(0, 0, -7)
		page, err := svc.GetUserTransactions(user.ID, pagination.PageRequest{}, TransactionFilter{
			Type:     &expense,
			FromDate: &from,
		})
		testutil.AssertNoError(t, err)
		if page.TotalItems != 1 {
			t.Errorf("expected 1 filtered entry, got %d", page.TotalItems)
		}
	})

	t.Run("excludes_other_users", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		testutil.CreateTestTransaction(t, db, user1.ID, models.TransactionTypeExpense, 1000, march15)
		testutil.CreateTestTransaction(t, db, user2.ID, models.TransactionTypeExpense, 2000, march15)

		page, err := svc.GetUserTransactions(user1.ID, pagination.PageRequest{}, TransactionFilter{})
		testutil.AssertNoError(t, err)
		if page.TotalItems != 1 {
			t.Errorf("expected 1 entry, got %d", page.TotalItems)
		}
	})
}

func TestDeleteTransaction(t *testing.T) {
	t.Run("deletes_own_entry", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		tx := testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, 1000, march15)

		testutil.AssertNoError(t, svc.DeleteTransaction(user.ID, tx.ID))

		_, err := svc.GetTransactionByID(user.ID, tx.ID)
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})

	t.Run("mandate_link_may_dangle", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		txSvc := NewTransactionService(db)
		mdSvc := NewMandateService(db)
		user := testutil.CreateTestUser(t, db)
		mandate := testutil.CreateTestMandate(t, db, user.ID, 50000)

		paid, err := mdSvc.Pay(user.ID, mandate.ID, 50000, march15)
		testutil.AssertNoError(t, err)

		// Deleting the linked entry directly is allowed; the mandate keeps
		// classifying as paid from its date fact.
		testutil.AssertNoError(t, txSvc.DeleteTransaction(user.ID, *paid.LinkedTransactionID))

		reloaded, err := mdSvc.GetMandateByID(user.ID, mandate.ID)
		testutil.AssertNoError(t, err)
		if reloaded.LinkedTransactionID == nil {
			t.Error("expected the dangling link to remain on the mandate")
		}

		// Reset tolerates the dangling link.
		_, err = mdSvc.Reset(user.ID, mandate.ID)
		testutil.AssertNoError(t, err)
	})

	t.Run("wrong_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		owner := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		tx := testutil.CreateTestTransaction(t, db, owner.ID, models.TransactionTypeExpense, 1000, march15)

		err := svc.DeleteTransaction(other.ID, tx.ID)
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})
}
