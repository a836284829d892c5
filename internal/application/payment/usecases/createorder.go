package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vnstore/paycore/internal/application/payment/dto"
	"github.com/vnstore/paycore/internal/domain/banktransfer"
	"github.com/vnstore/paycore/internal/domain/discount"
	"github.com/vnstore/paycore/internal/domain/order"
	vo "github.com/vnstore/paycore/internal/domain/order/valueobjects"
	"github.com/vnstore/paycore/internal/domain/paymentmethod"
	"github.com/vnstore/paycore/internal/shared/biztime"
	apperrors "github.com/vnstore/paycore/internal/shared/errors"
	"github.com/vnstore/paycore/internal/shared/logger"
)

type CreateOrderItem struct {
	SKU       string
	Name      string
	UnitPrice int64
	Quantity  int
}

type CreateOrderCommand struct {
	Items         []CreateOrderItem
	ShippingFee   int64
	PaymentMethod string
	DiscountCode  string
	CustomerName  string
	CustomerEmail string
}

// CreateOrderUseCase is checkout: it prices the cart, redeems the discount
// and persists the order in one transaction.
type CreateOrderUseCase struct {
	orderRepo       order.Repository
	methodRepo      paymentmethod.Repository
	discountRepo    discount.Repository
	bankAccountRepo banktransfer.BankAccountRepository
	txMgr           TransactionManager
	now             func() time.Time
	logger          logger.Interface
}

func NewCreateOrderUseCase(
	orderRepo order.Repository,
	methodRepo paymentmethod.Repository,
	discountRepo discount.Repository,
	bankAccountRepo banktransfer.BankAccountRepository,
	txMgr TransactionManager,
	logger logger.Interface,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo:       orderRepo,
		methodRepo:      methodRepo,
		discountRepo:    discountRepo,
		bankAccountRepo: bankAccountRepo,
		txMgr:           txMgr,
		now:             biztime.NowUTC,
		logger:          logger,
	}
}

func (uc *CreateOrderUseCase) Execute(ctx context.Context, cmd CreateOrderCommand) (*dto.CheckoutDTO, error) {
	method, err := vo.NewPaymentMethod(cmd.PaymentMethod)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid payment method", cmd.PaymentMethod)
	}

	items, subtotal, err := buildLineItems(cmd.Items)
	if err != nil {
		return nil, err
	}

	if cmd.ShippingFee < 0 {
		return nil, apperrors.NewValidationError("shipping fee must not be negative")
	}

	methods, err := uc.methodRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load payment methods", "error", err)
		return nil, fmt.Errorf("failed to load payment methods: %w", err)
	}
	if !paymentmethod.NewRegistry(methods).IsAvailable(method) {
		return nil, apperrors.NewValidationError("payment method is not available", method.String())
	}

	var created *order.Order
	err = uc.txMgr.RunInTransaction(ctx, func(ctx context.Context) error {
		var (
			discountAmount = vo.Zero()
			discountCode   *string
			code           *discount.Code
			err            error
		)

		if normalized := discount.NormalizeCode(cmd.DiscountCode); normalized != "" {
			code, err = uc.discountRepo.GetByCode(ctx, normalized)
			if err != nil {
				if apperrors.IsNotFoundError(err) {
					return apperrors.NewValidationError("discount code not found", normalized)
				}
				return err
			}
			discountAmount, err = code.Evaluate(subtotal, uc.now())
			if err != nil {
				return apperrors.NewValidationError("discount code cannot be applied", err.Error())
			}
			discountCode = &normalized
		}

		o, err := order.NewOrder(order.NewOrderParams{
			Items:          items,
			ShippingFee:    vo.NewMoneyFromInt(cmd.ShippingFee),
			DiscountAmount: discountAmount,
			DiscountCode:   discountCode,
			PaymentMethod:  method,
			CustomerName:   cmd.CustomerName,
			CustomerEmail:  cmd.CustomerEmail,
		})
		if err != nil {
			return apperrors.NewValidationError("invalid order", err.Error())
		}

		if err := uc.orderRepo.Create(ctx, o); err != nil {
			return err
		}

		if code != nil {
			if err := uc.redeem(ctx, code, o); err != nil {
				return err
			}
		}

		created = o
		return nil
	})
	if err != nil {
		if !apperrors.IsValidationError(err) {
			uc.logger.Errorw("failed to create order", "error", err, "payment_method", method)
		}
		return nil, err
	}

	result := &dto.CheckoutDTO{Order: dto.ToOrderDTO(created)}
	if method == vo.PaymentMethodBankTransfer {
		accounts, err := uc.bankAccountRepo.ListActive(ctx)
		if err != nil {
			uc.logger.Warnw("failed to load bank accounts for checkout", "error", err, "order_id", created.ID())
		} else {
			result.BankAccounts = dto.ToBankAccountDTOList(accounts)
		}
		result.TransferNote = created.OrderCode()
	}

	uc.logger.Infow("order created",
		"order_id", created.ID(),
		"order_code", created.OrderCode(),
		"payment_method", method,
		"total_amount", created.TotalAmount().Decimal().String(),
		"discount_code", cmd.DiscountCode,
	)

	return result, nil
}

// redeem consumes one use of the code for o. The usage counter is bumped with
// a conditional update so concurrent checkouts cannot exceed the limit.
func (uc *CreateOrderUseCase) redeem(ctx context.Context, code *discount.Code, o *order.Order) error {
	if err := uc.discountRepo.IncrementUsage(ctx, code.ID()); err != nil {
		if errors.Is(err, discount.ErrUsageLimitReached) {
			return apperrors.NewValidationError("discount code cannot be applied", err.Error())
		}
		return err
	}
	err := uc.discountRepo.CreateRedemption(ctx, &discount.Redemption{
		CodeID:     code.ID(),
		OrderID:    o.ID(),
		Amount:     o.DiscountAmount(),
		RedeemedAt: o.CreatedAt(),
	})
	if errors.Is(err, discount.ErrAlreadyRedeemed) {
		return apperrors.NewConflictError("order already has a discount", o.OrderCode())
	}
	return err
}

func buildLineItems(in []CreateOrderItem) ([]vo.LineItem, vo.Money, error) {
	if len(in) == 0 {
		return nil, vo.Zero(), apperrors.NewValidationError("order must contain at least one item")
	}
	items := make([]vo.LineItem, 0, len(in))
	subtotal := vo.Zero()
	for _, it := range in {
		item, err := vo.NewLineItem(it.SKU, it.Name, vo.NewMoneyFromInt(it.UnitPrice), it.Quantity)
		if err != nil {
			return nil, vo.Zero(), apperrors.NewValidationError("invalid line item", err.Error())
		}
		items = append(items, item)
		subtotal = subtotal.Add(item.Total())
	}
	return items, subtotal, nil
}
