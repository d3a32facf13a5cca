// Package apiclient é o cliente HTTP que o bot usa para falar com a API de vendas
package apiclient

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	DefaultTimeout = 30 * time.Second
	serviceName    = "bot"
)

type Client interface {
	CreateDemo(ctx context.Context, telegramID int64, username, firstName string) (*domain.DemoResponse, error)
	GetStats(ctx context.Context, telegramID int64) (*domain.SalesStats, error)
	GetUpcomingHolidays(ctx context.Context, daysAhead int) (*domain.HolidaysResponse, error)
	DownloadReport(ctx context.Context, telegramID int64, format domain.ReportFormat) (*domain.Report, error)
}

// StatusError é a resposta da API com status diferente de 200
type StatusError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api respondeu %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("api respondeu %d", e.StatusCode)
}

// IsNotFound indica usuário inexistente ou relatório sem vendas
func IsNotFound(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound
}

type APIClient struct {
	httpClient *http.Client
	baseURL    string
	auth       authenticating.Authenticator
}

// NewClient cria o cliente. Com auth desligado as requisições seguem sem Authorization.
func NewClient(baseURL string, timeout time.Duration, auth authenticating.Authenticator) *APIClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &APIClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		auth:    auth,
	}
}

func (c *APIClient) CreateDemo(ctx context.Context, telegramID int64, username, firstName string) (*domain.DemoResponse, error) {
	query := url.Values{}
	if username != "" {
		query.Set("username", username)
	}
	if firstName != "" {
		query.Set("first_name", firstName)
	}

	var response domain.DemoResponse
	if err := c.doJSON(ctx, http.MethodPost, userPath("/api/demo", telegramID), query, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

func (c *APIClient) GetStats(ctx context.Context, telegramID int64) (*domain.SalesStats, error) {
	var response domain.SalesStats
	if err := c.doJSON(ctx, http.MethodGet, userPath("/api/stats", telegramID), nil, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

func (c *APIClient) GetUpcomingHolidays(ctx context.Context, daysAhead int) (*domain.HolidaysResponse, error) {
	query := url.Values{}
	if daysAhead > 0 {
		query.Set("days_ahead", strconv.Itoa(daysAhead))
	}

	var response domain.HolidaysResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/holidays/upcoming", query, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

// DownloadReport baixa o arquivo inteiro para a memória
func (c *APIClient) DownloadReport(ctx context.Context, telegramID int64, format domain.ReportFormat) (*domain.Report, error) {
	resp, err := c.do(ctx, http.MethodGet, path.Join(userPath("/api/reports", telegramID), string(format)), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler o relatório")
	}

	return &domain.Report{
		Filename:    reportFilename(resp.Header.Get("Content-Disposition"), telegramID, format),
		ContentType: resp.Header.Get("Content-Type"),
		Content:     content,
	}, nil
}

func (c *APIClient) doJSON(ctx context.Context, method, endpointPath string, query url.Values, out any) error {
	resp, err := c.do(ctx, method, endpointPath, query)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "erro ao decodificar a resposta")
	}

	return nil
}

// do executa a requisição e devolve o corpo só quando o status é 200
func (c *APIClient) do(ctx context.Context, method, endpointPath string, query url.Values) (*http.Response, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL base")
	}
	endpoint.Path = path.Join(endpoint.Path, endpointPath)
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	if c.auth != nil && c.auth.Enabled() {
		token, err := c.auth.IssueToken(serviceName)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao emitir token de serviço")
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		return nil, decodeStatusError(resp)
	}

	return resp, nil
}

func decodeStatusError(resp *http.Response) error {
	statusErr := &StatusError{StatusCode: resp.StatusCode}

	var body apiErrors.APIError
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		statusErr.Code = body.Code
		statusErr.Message = body.Message
	}

	return statusErr
}

func userPath(prefix string, telegramID int64) string {
	return path.Join(prefix, strconv.FormatInt(telegramID, 10))
}

// reportFilename usa o nome enviado pela API e cai para report_<id>.<ext>
func reportFilename(disposition string, telegramID int64, format domain.ReportFormat) string {
	if _, params, err := mime.ParseMediaType(disposition); err == nil && params["filename"] != "" {
		return params["filename"]
	}

	ext := "pdf"
	if format == domain.ReportFormatExcel {
		ext = "xlsx"
	}
	return fmt.Sprintf("report_%d.%s", telegramID, ext)
}
