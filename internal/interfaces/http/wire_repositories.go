package http

import (
	"gorm.io/gorm"

	"github.com/vnstore/paycore/internal/domain/banktransfer"
	"github.com/vnstore/paycore/internal/domain/discount"
	"github.com/vnstore/paycore/internal/domain/order"
	"github.com/vnstore/paycore/internal/domain/paymentmethod"
	"github.com/vnstore/paycore/internal/infrastructure/repository"
	shareddb "github.com/vnstore/paycore/internal/shared/db"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	orderRepo       order.Repository
	callbackLogRepo order.CallbackLogRepository
	claimRepo       banktransfer.ClaimRepository
	bankAccountRepo banktransfer.BankAccountRepository
	methodRepo      paymentmethod.Repository
	discountRepo    discount.Repository
	txMgr           *shareddb.TransactionManager
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(db *gorm.DB) *repositories {
	return &repositories{
		orderRepo:       repository.NewOrderRepository(db),
		callbackLogRepo: repository.NewCallbackLogRepository(db),
		claimRepo:       repository.NewBankTransferClaimRepository(db),
		bankAccountRepo: repository.NewBankAccountRepository(db),
		methodRepo:      repository.NewPaymentMethodRepository(db),
		discountRepo:    repository.NewDiscountRepository(db),
		txMgr:           shareddb.NewTransactionManager(db),
	}
}
