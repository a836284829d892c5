package qrcode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/vnstore/paycore/internal/application/payment/paymentgateway"
	sharedConfig "github.com/vnstore/paycore/internal/shared/config"
	"github.com/vnstore/paycore/internal/shared/logger"
)

const (
	generatePath         = "/v2/generate"
	rendererSuccessCode  = "00"
	maxRendererRespSize  = 512 << 10
	retryBaseDelay       = 100 * time.Millisecond
	defaultQuickTemplate = "compact2"
)

type generateRequest struct {
	AccountNo   string `json:"accountNo"`
	AccountName string `json:"accountName"`
	AcqID       string `json:"acqId"`
	Amount      int64  `json:"amount,omitempty"`
	AddInfo     string `json:"addInfo,omitempty"`
	Format      string `json:"format"`
	Template    string `json:"template"`
}

type generateResponse struct {
	Code string `json:"code"`
	Desc string `json:"desc"`
	Data *struct {
		QRCode    string `json:"qrCode"`
		QRDataURL string `json:"qrDataURL"`
	} `json:"data"`
}

// Generator renders QR images through the VietQR API and degrades to a
// static image when the renderer is slow or unavailable.
type Generator struct {
	cfg        sharedConfig.QRConfig
	httpClient *http.Client
	logger     logger.Interface
}

var _ paymentgateway.QRGenerator = (*Generator)(nil)

func NewGenerator(cfg sharedConfig.QRConfig, logger logger.Interface) *Generator {
	if cfg.Template == "" {
		cfg.Template = defaultQuickTemplate
	}
	return &Generator{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout()},
		logger:     logger,
	}
}

func (g *Generator) Generate(ctx context.Context, req paymentgateway.QRRequest) (*paymentgateway.QRResult, error) {
	payload, err := BuildPayload(PayloadParams{
		BankBIN:       req.BankCode,
		AccountNumber: req.AccountNumber,
		Amount:        req.Amount,
		Description:   req.Description,
	})
	if err != nil {
		return nil, err
	}

	if g.cfg.RendererURL != "" {
		imageURL, err := g.render(ctx, req)
		if err == nil {
			return &paymentgateway.QRResult{URL: imageURL, Payload: payload}, nil
		}
		g.logger.Warnw("QR renderer unavailable, serving static QR",
			"bank_code", req.BankCode,
			"error", err,
		)
	}

	return &paymentgateway.QRResult{
		URL:      g.fallbackURL(req),
		Payload:  payload,
		Degraded: true,
	}, nil
}

// render calls the renderer within one overall timeout, retrying transport
// errors and 5xx/429 responses with exponential backoff.
func (g *Generator) render(ctx context.Context, req paymentgateway.QRRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout())
	defer cancel()

	body, err := json.Marshal(generateRequest{
		AccountNo:   req.AccountNumber,
		AccountName: strings.ToUpper(req.AccountName),
		AcqID:       req.BankCode,
		Amount:      req.Amount.Decimal().IntPart(),
		AddInfo:     SanitizeDescription(req.Description),
		Format:      "text",
		Template:    g.cfg.Template,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode renderer request: %w", err)
	}

	retries := g.cfg.MaxRetries
	if retries < 0 {
		retries = 0
	}
	backoff := retry.WithMaxRetries(uint64(retries), retry.NewExponential(retryBaseDelay))

	var imageURL string
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		u, err := g.post(ctx, body)
		if err != nil {
			return err
		}
		imageURL = u
		return nil
	})
	return imageURL, err
}

func (g *Generator) post(ctx context.Context, body []byte) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(g.cfg.RendererURL, "/")+generatePath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if g.cfg.ClientID != "" {
		httpReq.Header.Set("x-client-id", g.cfg.ClientID)
		httpReq.Header.Set("x-api-key", g.cfg.APIKey)
	}

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return "", retry.RetryableError(fmt.Errorf("renderer request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
		return "", retry.RetryableError(fmt.Errorf("renderer returned status %d", resp.StatusCode))
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("renderer returned status %d", resp.StatusCode)
	}

	var data generateResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxRendererRespSize)).Decode(&data); err != nil {
		return "", fmt.Errorf("failed to decode renderer response: %w", err)
	}
	if data.Code != rendererSuccessCode || data.Data == nil || data.Data.QRDataURL == "" {
		return "", fmt.Errorf("renderer rejected request: code=%s desc=%s", data.Code, data.Desc)
	}
	return data.Data.QRDataURL, nil
}

// fallbackURL prefers the account's pre-rendered image; otherwise it builds
// the renderer's amount-less quick link, which is a static image URL the
// client can load later.
func (g *Generator) fallbackURL(req paymentgateway.QRRequest) string {
	if req.FallbackImageRef != "" {
		return req.FallbackImageRef
	}
	q := url.Values{}
	q.Set("accountName", strings.ToUpper(req.AccountName))
	if desc := SanitizeDescription(req.Description); desc != "" {
		q.Set("addInfo", desc)
	}
	return fmt.Sprintf("%s/%s-%s-%s.png?%s",
		strings.TrimRight(g.cfg.QuickLinkURL, "/"), req.BankCode, req.AccountNumber, g.cfg.Template, q.Encode())
}
