package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/bookswap/exchange-service/config"
	"github.com/bookswap/exchange-service/internal/errs"
	"github.com/bookswap/exchange-service/internal/model"
	cb "github.com/bookswap/exchange-service/pkg/circuit_breaker"
)

// Service reads payment metadata (method, mobile number) from the external
// payment store. Settlement never happens here.
type Service struct {
	log    *zap.Logger
	client *http.Client
	cfg    config.PaymentsHTTPServer
	cb     cb.CircuitBreaker
}

func NewService(log *zap.Logger, cfg *config.Config) *Service { //nolint:gocritic
	return &Service{
		log:    log.Named("payments"),
		client: &http.Client{Timeout: time.Minute},
		cfg:    cfg.Payments,
		cb:     cb.New(10, time.Second*5, 0.5, 3),
	}
}

func (s *Service) CB() cb.CircuitBreaker {
	return s.cb
}

func (s *Service) GetPaymentInfo(ctx context.Context, username string) (model.PaymentInfo, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("http://%s/api/v1/payment-methods/%s", net.JoinHostPort(s.cfg.Host, s.cfg.Port), username), http.NoBody)
	if err != nil {
		return model.PaymentInfo{}, http.StatusBadRequest, err
	}
	req.Header.Set("Content-Type", echo.MIMEApplicationJSONCharsetUTF8)
	resp, err := s.client.Do(req)
	if err != nil {
		return model.PaymentInfo{}, http.StatusBadRequest, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return model.PaymentInfo{}, resp.StatusCode, errs.ErrNotFound
	}

	var info model.PaymentInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return model.PaymentInfo{}, http.StatusBadRequest, err
	}
	return info, resp.StatusCode, nil
}
