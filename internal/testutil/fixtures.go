package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"ledgerbook/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestCustomer creates a customer actor with a unique title.
func CreateTestCustomer(t *testing.T, db *gorm.DB) *models.Actor {
	t.Helper()
	return CreateTestActor(t, db, models.ActorTypeCustomer)
}

// CreateTestSupplier creates a supplier actor with a unique title.
func CreateTestSupplier(t *testing.T, db *gorm.DB) *models.Actor {
	t.Helper()
	return CreateTestActor(t, db, models.ActorTypeSupplier)
}

// CreateTestActor creates an actor of the given type.
func CreateTestActor(t *testing.T, db *gorm.DB, actorType models.ActorType) *models.Actor {
	t.Helper()

	actor := &models.Actor{
		Title: fmt.Sprintf("Test %s %d", actorType, nextID()),
		Type:  actorType,
	}
	if err := db.Create(actor).Error; err != nil {
		t.Fatalf("failed to create test actor: %v", err)
	}
	return actor
}

// CreateTestRevenueAccount creates a revenue account with a unique title.
func CreateTestRevenueAccount(t *testing.T, db *gorm.DB) *models.Account {
	t.Helper()
	return CreateTestAccount(t, db, models.AccountTypeRevenue)
}

// CreateTestExpenseAccount creates an expense account with a unique title.
func CreateTestExpenseAccount(t *testing.T, db *gorm.DB) *models.Account {
	t.Helper()
	return CreateTestAccount(t, db, models.AccountTypeExpense)
}

// CreateTestAccount creates an account of the given type.
func CreateTestAccount(t *testing.T, db *gorm.DB, accountType models.AccountType) *models.Account {
	t.Helper()

	account := &models.Account{
		Title: fmt.Sprintf("Test Account %d", nextID()),
		Type:  accountType,
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}
