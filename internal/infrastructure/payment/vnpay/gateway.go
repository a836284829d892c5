// Package vnpay adapts the VNPAY 2.1.0 redirect protocol to the payment
// gateway port.
package vnpay

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/vnstore/paycore/internal/application/payment/paymentgateway"
	"github.com/vnstore/paycore/internal/infrastructure/payment/signature"
	"github.com/vnstore/paycore/internal/shared/biztime"
	sharedConfig "github.com/vnstore/paycore/internal/shared/config"
	"github.com/vnstore/paycore/internal/shared/logger"
	"github.com/vnstore/paycore/internal/shared/utils"
)

const (
	version      = "2.1.0"
	commandPay   = "pay"
	currencyCode = "VND"
	paramPrefix  = "vnp_"

	paramSecureHash     = "vnp_SecureHash"
	paramSecureHashType = "vnp_SecureHashType"

	maxOrderInfoLen = 255
	defaultClientIP = "127.0.0.1"
)

var (
	ErrSignatureInvalid  = paymentgateway.ErrSignatureInvalid
	ErrMalformedCallback = paymentgateway.ErrMalformedCallback
)

type Gateway struct {
	cfg    sharedConfig.VNPayConfig
	signer *signature.Signer
	now    func() time.Time
	logger logger.Interface
}

func NewGateway(cfg sharedConfig.VNPayConfig, logger logger.Interface) (*Gateway, error) {
	if cfg.TmnCode == "" {
		return nil, fmt.Errorf("vnpay tmn_code is required")
	}
	if _, err := url.ParseRequestURI(cfg.PaymentURL); err != nil {
		return nil, fmt.Errorf("vnpay payment_url is invalid: %w", err)
	}
	signer, err := signature.NewSigner(cfg.HashSecret)
	if err != nil {
		return nil, fmt.Errorf("vnpay hash_secret: %w", err)
	}
	if cfg.Locale == "" {
		cfg.Locale = "vn"
	}
	if cfg.OrderType == "" {
		cfg.OrderType = "other"
	}
	if cfg.ExpireMinutes <= 0 {
		cfg.ExpireMinutes = 15
	}
	return &Gateway{
		cfg:    cfg,
		signer: signer,
		now:    biztime.NowUTC,
		logger: logger,
	}, nil
}

// SetClock replaces the time source used for vnp_CreateDate and vnp_ExpireDate.
func (g *Gateway) SetClock(now func() time.Time) {
	g.now = now
}

func (g *Gateway) BuildRedirect(ctx context.Context, req paymentgateway.RedirectRequest) (string, error) {
	amount, err := EncodeAmount(req.Amount)
	if err != nil {
		return "", err
	}
	if req.OrderID == 0 || req.OrderCode == "" {
		return "", fmt.Errorf("order id and code are required")
	}

	returnURL := req.ReturnURL
	if returnURL == "" {
		returnURL = g.cfg.ReturnURL
	}
	clientIP := req.ClientIP
	if clientIP == "" {
		clientIP = defaultClientIP
	}

	created := g.now()
	params := map[string]string{
		"vnp_Version":    version,
		"vnp_Command":    commandPay,
		"vnp_TmnCode":    g.cfg.TmnCode,
		"vnp_Amount":     amount,
		"vnp_CurrCode":   currencyCode,
		"vnp_TxnRef":     FormatTxnRef(req.OrderID, req.OrderCode),
		"vnp_OrderInfo":  g.orderInfo(req),
		"vnp_OrderType":  g.cfg.OrderType,
		"vnp_Locale":     g.cfg.Locale,
		"vnp_ReturnUrl":  returnURL,
		"vnp_IpAddr":     clientIP,
		"vnp_CreateDate": biztime.FormatGateway(created),
		"vnp_ExpireDate": biztime.FormatGateway(created.Add(time.Duration(g.cfg.ExpireMinutes) * time.Minute)),
	}

	query := signature.Canonicalize(params)
	return g.cfg.PaymentURL + "?" + query + "&" + paramSecureHash + "=" + g.signer.Sign(params), nil
}

// orderInfo is free text shown on the gateway page; the gateway only accepts
// unaccented text without special characters.
func (g *Gateway) orderInfo(req paymentgateway.RedirectRequest) string {
	info := utils.KeepChars(req.OrderInfo, func(r rune) bool {
		return utils.IsAlphanumeric(r) || r == '-' || r == '.' || r == ','
	}, maxOrderInfoLen)
	if info == "" {
		info = "Thanh toan don hang " + req.OrderCode
	}
	return info
}

func (g *Gateway) VerifyCallback(values url.Values) (*paymentgateway.CallbackData, error) {
	params := make(map[string]string, len(values))
	for k, v := range values {
		if strings.HasPrefix(k, paramPrefix) && len(v) > 0 {
			params[k] = v[0]
		}
	}

	sig := params[paramSecureHash]
	delete(params, paramSecureHash)
	delete(params, paramSecureHashType)

	if sig == "" || !g.signer.Verify(params, sig) {
		return nil, ErrSignatureInvalid
	}

	if tmn := params["vnp_TmnCode"]; tmn != g.cfg.TmnCode {
		return nil, fmt.Errorf("%w: unexpected merchant code %q", ErrMalformedCallback, tmn)
	}

	txnRef := params["vnp_TxnRef"]
	orderID, orderCode, err := ParseTxnRef(txnRef)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCallback, err)
	}

	amount, err := DecodeAmount(params["vnp_Amount"])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCallback, err)
	}

	responseCode := params["vnp_ResponseCode"]
	txnStatus := params["vnp_TransactionStatus"]
	success, reason := outcome(responseCode, txnStatus)

	data := &paymentgateway.CallbackData{
		OrderID:              orderID,
		OrderCode:            orderCode,
		TxnRef:               txnRef,
		Amount:               amount,
		Success:              success,
		ResponseCode:         responseCode,
		TransactionStatus:    txnStatus,
		FailureReason:        reason,
		GatewayTransactionNo: params["vnp_TransactionNo"],
		BankCode:             params["vnp_BankCode"],
		RawParams:            params,
	}

	if payDate := params["vnp_PayDate"]; payDate != "" {
		if paidAt, err := biztime.ParseGateway(payDate); err == nil {
			data.PaidAt = &paidAt
		} else {
			g.logger.Warnw("unparseable vnp_PayDate", "txn_ref", txnRef, "pay_date", payDate)
		}
	}

	return data, nil
}
