package email

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vnstore/paycore/internal/domain/order"
	vo "github.com/vnstore/paycore/internal/domain/order/valueobjects"
	"github.com/vnstore/paycore/internal/shared/biztime"
	"github.com/vnstore/paycore/internal/shared/logger"
	"github.com/vnstore/paycore/internal/shared/services/markdown"
	"github.com/vnstore/paycore/internal/shared/utils"
)

var methodLabels = map[vo.PaymentMethod]string{
	vo.PaymentMethodCOD:          "Thanh toán khi nhận hàng (COD)",
	vo.PaymentMethodBankTransfer: "Chuyển khoản ngân hàng",
	vo.PaymentMethodVNPay:        "VNPAY",
}

// ReceiptNotifier emails the customer once an order's payment is settled.
type ReceiptNotifier struct {
	sender    Sender
	markdown  markdown.MarkdownService
	storeName string
	printer   *message.Printer
	logger    logger.Interface
}

func NewReceiptNotifier(sender Sender, md markdown.MarkdownService, storeName string, logger logger.Interface) *ReceiptNotifier {
	return &ReceiptNotifier{
		sender:    sender,
		markdown:  md,
		storeName: storeName,
		printer:   message.NewPrinter(language.Vietnamese),
		logger:    logger,
	}
}

// NotifyPaymentSettled sends a receipt or a failure notice. Orders without a
// customer email are skipped.
func (n *ReceiptNotifier) NotifyPaymentSettled(ctx context.Context, event *order.PaymentSettledEvent) error {
	if strings.TrimSpace(event.CustomerEmail) == "" {
		n.logger.Debugw("no customer email, receipt skipped", "order_code", event.OrderCode)
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	subject, body := n.compose(event)
	htmlBody, err := n.markdown.ToHTMLSanitized(body)
	if err != nil {
		return fmt.Errorf("failed to render receipt: %w", err)
	}

	if err := n.sender.Send(event.CustomerEmail, subject, htmlBody, body); err != nil {
		return err
	}

	n.logger.Infow("payment receipt sent",
		"order_code", event.OrderCode,
		"recipient", utils.MaskEmail(event.CustomerEmail),
		"status", event.To,
	)
	return nil
}

func (n *ReceiptNotifier) compose(event *order.PaymentSettledEvent) (string, string) {
	var b strings.Builder
	name := n.markdown.StripTags(event.CustomerName)
	if name == "" {
		name = "Quý khách"
	}
	fmt.Fprintf(&b, "Xin chào %s,\n\n", name)

	var subject string
	if event.Succeeded() {
		subject = fmt.Sprintf("[%s] Xác nhận thanh toán đơn hàng %s", n.storeName, event.OrderCode)
		fmt.Fprintf(&b, "Chúng tôi đã nhận được thanh toán cho đơn hàng **%s**.\n\n", event.OrderCode)
	} else {
		subject = fmt.Sprintf("[%s] Đơn hàng %s chưa được thanh toán", n.storeName, event.OrderCode)
		fmt.Fprintf(&b, "Thanh toán cho đơn hàng **%s** không thành công.\n\n", event.OrderCode)
	}

	b.WriteString("| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| Số tiền | %s |\n", n.FormatVND(event.Amount))
	fmt.Fprintf(&b, "| Phương thức | %s |\n", methodLabel(event.Method))
	fmt.Fprintf(&b, "| Thời gian | %s |\n", biztime.FormatDisplay(event.OccurredAt))
	if !event.Succeeded() && event.Reason != "" {
		fmt.Fprintf(&b, "| Lý do | %s |\n", n.markdown.StripTags(event.Reason))
	}

	fmt.Fprintf(&b, "\nCảm ơn quý khách đã mua sắm tại %s.\n", n.storeName)
	return subject, b.String()
}

// FormatVND renders an amount as "30.000 ₫".
func (n *ReceiptNotifier) FormatVND(amount vo.Money) string {
	return n.printer.Sprintf("%d", amount.Decimal().IntPart()) + " ₫"
}

func methodLabel(m vo.PaymentMethod) string {
	if label, ok := methodLabels[m]; ok {
		return label
	}
	return m.String()
}
