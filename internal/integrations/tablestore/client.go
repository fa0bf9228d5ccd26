package tablestore

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

	"github.com/ndemina/Salon-AdminService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент внешнего табличного хранилища (Airtable-совместимый REST API)
// Каталог услуг, справочник сотрудников, карточки клиентов, сообщения и
// пред-агрегированная аналитика живут в таблицах хранилища
type Client struct {
	baseURL    string
	apiKey     string
	tables     Tables
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента хранилища
func NewClient(baseURL, apiKey string, tables Tables, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		tables:  tables,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ============================================================
// Каталог услуг
// ============================================================

// ListServices возвращает все услуги каталога
func (c *Client) ListServices(ctx context.Context) ([]domain.Service, error) {
	records, err := c.listAll(ctx, c.tables.Services, nil)
	if err != nil {
		return nil, err
	}

	services := make([]domain.Service, 0, len(records))
	for _, rec := range records {
		services = append(services, rec.toService())
	}
	return services, nil
}

// GetServiceByName ищет услугу по точному названию
// Возвращает ErrServiceNotFound, если услуги нет в каталоге
func (c *Client) GetServiceByName(ctx context.Context, name string) (*domain.Service, error) {
	query := url.Values{}
	query.Set("filterByFormula", fmt.Sprintf("{Name}=%s", quoteFormulaValue(name)))

	records, err := c.listAll(ctx, c.tables.Services, query)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, ErrServiceNotFound
	}

	service := records[0].toService()
	return &service, nil
}

// ============================================================
// Справочник сотрудников
// ============================================================

// ListStaff возвращает всех сотрудников
func (c *Client) ListStaff(ctx context.Context) ([]domain.StaffMember, error) {
	records, err := c.listAll(ctx, c.tables.Staff, nil)
	if err != nil {
		return nil, err
	}

	staff := make([]domain.StaffMember, 0, len(records))
	for _, rec := range records {
		member, unknownDays := rec.toStaffMember()
		if len(unknownDays) > 0 {
			// Опечатка в данных хранилища: день пропущен, но сотрудник остаётся
			c.log.Warn("tablestore: staff %s (%s) has unknown availability days %v",
				member.ID, member.FullName, unknownDays)
		}
		staff = append(staff, member)
	}
	return staff, nil
}

// GetQualifiedStaff возвращает сотрудников, выполняющих указанную услугу
// Фильтрация по expertise выполняется на стороне клиента
// Пустой список - нормальный результат
func (c *Client) GetQualifiedStaff(ctx context.Context, serviceName string) ([]domain.StaffMember, error) {
	staff, err := c.ListStaff(ctx)
	if err != nil {
		return nil, err
	}

	qualified := make([]domain.StaffMember, 0)
	for _, member := range staff {
		if member.IsQualifiedFor(serviceName) {
			qualified = append(qualified, member)
		}
	}
	return qualified, nil
}

// CreateStaff создает запись сотрудника
func (c *Client) CreateStaff(ctx context.Context, update domain.StaffUpdate) (*domain.StaffMember, error) {
	body := createRequest{Fields: staffFields(update)}

	var rec record
	if err := c.doJSON(ctx, http.MethodPost, c.tablePath(c.tables.Staff), body, &rec); err != nil {
		return nil, err
	}

	member, _ := rec.toStaffMember()
	return &member, nil
}

// UpdateStaff частично обновляет запись сотрудника (nil-поля не изменяются)
func (c *Client) UpdateStaff(ctx context.Context, id string, update domain.StaffUpdate) (*domain.StaffMember, error) {
	body := createRequest{Fields: staffFields(update)}

	var rec record
	if err := c.doJSON(ctx, http.MethodPatch, c.recordPath(c.tables.Staff, id), body, &rec); err != nil {
		return nil, err
	}

	member, _ := rec.toStaffMember()
	return &member, nil
}

// DeleteStaff удаляет запись сотрудника
func (c *Client) DeleteStaff(ctx context.Context, id string) error {
	var resp struct {
		Deleted bool   `json:"deleted"`
		ID      string `json:"id"`
	}
	return c.doJSON(ctx, http.MethodDelete, c.recordPath(c.tables.Staff, id), nil, &resp)
}

// ============================================================
// Карточки клиентов
// ============================================================

// ListClients возвращает все карточки клиентов
func (c *Client) ListClients(ctx context.Context) ([]domain.Client, error) {
	records, err := c.listAll(ctx, c.tables.Clients, nil)
	if err != nil {
		return nil, err
	}

	clients := make([]domain.Client, 0, len(records))
	for _, rec := range records {
		clients = append(clients, rec.toClient())
	}
	return clients, nil
}

// GetClient возвращает карточку клиента по ID записи
func (c *Client) GetClient(ctx context.Context, id string) (*domain.Client, error) {
	var rec record
	if err := c.doJSON(ctx, http.MethodGet, c.recordPath(c.tables.Clients, id), nil, &rec); err != nil {
		return nil, err
	}

	client := rec.toClient()
	return &client, nil
}

// CreateClient создает карточку клиента
func (c *Client) CreateClient(ctx context.Context, update domain.ClientUpdate) (*domain.Client, error) {
	body := createRequest{Fields: clientFields(update)}

	var rec record
	if err := c.doJSON(ctx, http.MethodPost, c.tablePath(c.tables.Clients), body, &rec); err != nil {
		return nil, err
	}

	client := rec.toClient()
	return &client, nil
}

// UpdateClient частично обновляет карточку клиента (nil-поля не изменяются)
func (c *Client) UpdateClient(ctx context.Context, id string, update domain.ClientUpdate) (*domain.Client, error) {
	body := createRequest{Fields: clientFields(update)}

	var rec record
	if err := c.doJSON(ctx, http.MethodPatch, c.recordPath(c.tables.Clients, id), body, &rec); err != nil {
		return nil, err
	}

	client := rec.toClient()
	return &client, nil
}

// DeleteClient удаляет карточку клиента
func (c *Client) DeleteClient(ctx context.Context, id string) error {
	var resp struct {
		Deleted bool   `json:"deleted"`
		ID      string `json:"id"`
	}
	return c.doJSON(ctx, http.MethodDelete, c.recordPath(c.tables.Clients, id), nil, &resp)
}

// ============================================================
// Сообщения диалогов
// ============================================================

// ListMessages возвращает сообщения диалога в порядке отправки
func (c *Client) ListMessages(ctx context.Context, conversationID string) ([]domain.Message, error) {
	query := url.Values{}
	query.Set("filterByFormula", fmt.Sprintf("{Conversation ID}=%s", quoteFormulaValue(conversationID)))
	query.Set("sort[0][field]", "Sent At")
	query.Set("sort[0][direction]", "asc")

	records, err := c.listAll(ctx, c.tables.Messages, query)
	if err != nil {
		return nil, err
	}

	messages := make([]domain.Message, 0, len(records))
	for _, rec := range records {
		messages = append(messages, rec.toMessage())
	}
	return messages, nil
}

// AppendMessage добавляет сообщение в таблицу диалогов
func (c *Client) AppendMessage(ctx context.Context, msg domain.Message) (*domain.Message, error) {
	body := createRequest{Fields: messageFields(msg)}

	var rec record
	if err := c.doJSON(ctx, http.MethodPost, c.tablePath(c.tables.Messages), body, &rec); err != nil {
		return nil, err
	}

	created := rec.toMessage()
	return &created, nil
}

// ============================================================
// Аналитика
// ============================================================

// ListRevenueRows возвращает пред-агрегированные строки аналитики
func (c *Client) ListRevenueRows(ctx context.Context) ([]RevenueRow, error) {
	records, err := c.listAll(ctx, c.tables.Revenue, nil)
	if err != nil {
		return nil, err
	}

	rows := make([]RevenueRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, rec.toRevenueRow())
	}
	return rows, nil
}

// ============================================================
// Внутренние помощники
// ============================================================

func (c *Client) tablePath(table string) string {
	return c.baseURL + "/" + url.PathEscape(table)
}

func (c *Client) recordPath(table, id string) string {
	return c.tablePath(table) + "/" + url.PathEscape(id)
}

// listAll выкачивает все страницы списка с учётом offset-пагинации
func (c *Client) listAll(ctx context.Context, table string, query url.Values) ([]record, error) {
	records := make([]record, 0)
	offset := ""

	for {
		pageQuery := url.Values{}
		for key, values := range query {
			pageQuery[key] = values
		}
		if offset != "" {
			pageQuery.Set("offset", offset)
		}

		path := c.tablePath(table)
		if len(pageQuery) > 0 {
			path += "?" + pageQuery.Encode()
		}

		var page listResponse
		if err := c.doJSON(ctx, http.MethodGet, path, nil, &page); err != nil {
			return nil, err
		}

		records = append(records, page.Records...)

		if page.Offset == "" {
			return records, nil
		}
		offset = page.Offset
	}
}

// doJSON выполняет запрос к хранилищу и декодирует JSON ответа в out
func (c *Client) doJSON(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request body: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, path, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrRecordNotFound
	default:
		var errResp errorResponse
		raw, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Error.Message != "" {
			return fmt.Errorf("%w: status %d: %s", ErrInvalidResponse, resp.StatusCode, errResp.Error.Message)
		}
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

// quoteFormulaValue экранирует строку для подстановки в filterByFormula
func quoteFormulaValue(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "\\'") + "'"
}
