package handlers

import (
	"context"

	"github.com/vnstore/paycore/internal/application/payment/dto"
	"github.com/vnstore/paycore/internal/application/payment/usecases"
)

type mockCreateOrderUC struct {
	result *dto.CheckoutDTO
	err    error
	cmd    usecases.CreateOrderCommand
}

func (m *mockCreateOrderUC) Execute(ctx context.Context, cmd usecases.CreateOrderCommand) (*dto.CheckoutDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockGetPaymentStatusUC struct {
	result    *dto.PaymentStatusDTO
	err       error
	orderID   uint
	orderCode string
}

func (m *mockGetPaymentStatusUC) Execute(ctx context.Context, orderID uint) (*dto.PaymentStatusDTO, error) {
	m.orderID = orderID
	return m.result, m.err
}

func (m *mockGetPaymentStatusUC) ExecuteByCode(ctx context.Context, orderCode string) (*dto.PaymentStatusDTO, error) {
	m.orderCode = orderCode
	return m.result, m.err
}

type mockListCallbackLogsUC struct {
	result  []*dto.CallbackLogDTO
	err     error
	orderID uint
}

func (m *mockListCallbackLogsUC) Execute(ctx context.Context, orderID uint) ([]*dto.CallbackLogDTO, error) {
	m.orderID = orderID
	return m.result, m.err
}

type mockCancelOrderUC struct {
	result *dto.PaymentStatusDTO
	err    error
	cmd    usecases.CancelOrderCommand
}

func (m *mockCancelOrderUC) Execute(ctx context.Context, cmd usecases.CancelOrderCommand) (*dto.PaymentStatusDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockConfirmCashCollectedUC struct {
	result *dto.PaymentStatusDTO
	err    error
	cmd    usecases.ConfirmCashCollectedCommand
}

func (m *mockConfirmCashCollectedUC) Execute(ctx context.Context, cmd usecases.ConfirmCashCollectedCommand) (*dto.PaymentStatusDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockSubmitClaimUC struct {
	result *dto.ClaimDTO
	err    error
	cmd    usecases.SubmitClaimCommand
	called bool
}

func (m *mockSubmitClaimUC) Execute(ctx context.Context, cmd usecases.SubmitClaimCommand) (*dto.ClaimDTO, error) {
	m.called = true
	m.cmd = cmd
	return m.result, m.err
}

type mockDecideClaimUC struct {
	result *dto.ClaimDecisionDTO
	err    error
	cmd    usecases.DecideClaimCommand
	called bool
}

func (m *mockDecideClaimUC) Execute(ctx context.Context, cmd usecases.DecideClaimCommand) (*dto.ClaimDecisionDTO, error) {
	m.called = true
	m.cmd = cmd
	return m.result, m.err
}

type mockAppendClaimNoteUC struct {
	result *dto.ClaimDTO
	err    error
	cmd    usecases.AppendClaimNoteCommand
	called bool
}

func (m *mockAppendClaimNoteUC) Execute(ctx context.Context, cmd usecases.AppendClaimNoteCommand) (*dto.ClaimDTO, error) {
	m.called = true
	m.cmd = cmd
	return m.result, m.err
}

type mockListClaimsUC struct {
	result *usecases.ListClaimsResult
	err    error
	query  usecases.ListClaimsQuery
}

func (m *mockListClaimsUC) Execute(ctx context.Context, query usecases.ListClaimsQuery) (*usecases.ListClaimsResult, error) {
	m.query = query
	return m.result, m.err
}

type mockGenerateQRUC struct {
	result *dto.QRCodeDTO
	err    error
	cmd    usecases.GenerateQRCommand
}

func (m *mockGenerateQRUC) Execute(ctx context.Context, cmd usecases.GenerateQRCommand) (*dto.QRCodeDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockListBankAccountsUC struct {
	result []*dto.BankAccountDTO
	err    error
}

func (m *mockListBankAccountsUC) Execute(ctx context.Context) ([]*dto.BankAccountDTO, error) {
	return m.result, m.err
}

type mockCreateVNPayPaymentUC struct {
	result *dto.VNPayPaymentDTO
	err    error
	cmd    usecases.CreateVNPayPaymentCommand
	called bool
}

func (m *mockCreateVNPayPaymentUC) Execute(ctx context.Context, cmd usecases.CreateVNPayPaymentCommand) (*dto.VNPayPaymentDTO, error) {
	m.called = true
	m.cmd = cmd
	return m.result, m.err
}

type mockHandleVNPayCallbackUC struct {
	result *usecases.VNPayCallbackResult
	cmd    usecases.HandleVNPayCallbackCommand
}

func (m *mockHandleVNPayCallbackUC) Execute(ctx context.Context, cmd usecases.HandleVNPayCallbackCommand) *usecases.VNPayCallbackResult {
	m.cmd = cmd
	return m.result
}

type mockListMethodsUC struct {
	result []*dto.PaymentMethodDTO
	err    error
}

func (m *mockListMethodsUC) Execute(ctx context.Context) ([]*dto.PaymentMethodDTO, error) {
	return m.result, m.err
}

type mockUpdateMethodsUC struct {
	result []*dto.PaymentMethodDTO
	err    error
	cmd    usecases.UpdateMethodsCommand
}

func (m *mockUpdateMethodsUC) Execute(ctx context.Context, cmd usecases.UpdateMethodsCommand) ([]*dto.PaymentMethodDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockToggleMethodUC struct {
	result *dto.PaymentMethodDTO
	err    error
	cmd    usecases.ToggleMethodCommand
}

func (m *mockToggleMethodUC) Execute(ctx context.Context, cmd usecases.ToggleMethodCommand) (*dto.PaymentMethodDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockPinger struct {
	err error
}

func (m *mockPinger) PingContext(ctx context.Context) error {
	return m.err
}
