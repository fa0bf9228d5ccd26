package tablestore

import (
	"time"

	"github.com/ndemina/Salon-AdminService/internal/domain"
)

// Tables имена таблиц во внешнем хранилище
type Tables struct {
	Services string
	Staff    string
	Clients  string
	Messages string
	Revenue  string
}

// record запись хранилища: идентификатор плюс произвольный набор полей
type record struct {
	ID          string                 `json:"id"`
	Fields      map[string]interface{} `json:"fields"`
	CreatedTime string                 `json:"createdTime"`
}

// listResponse страница списка записей
type listResponse struct {
	Records []record `json:"records"`
	Offset  string   `json:"offset,omitempty"`
}

// createRequest тело запроса на создание/обновление записи
type createRequest struct {
	Fields map[string]interface{} `json:"fields"`
}

// errorResponse тело ошибки хранилища
type errorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Доступ к полям записи: хранилище отдаёт нетипизированный JSON,
// поэтому каждое поле приводится к нужному типу с нулевым значением по умолчанию

func (r record) stringField(name string) string {
	if v, ok := r.Fields[name].(string); ok {
		return v
	}
	return ""
}

func (r record) intField(name string) int {
	// JSON числа приходят как float64
	if v, ok := r.Fields[name].(float64); ok {
		return int(v)
	}
	return 0
}

func (r record) floatField(name string) float64 {
	if v, ok := r.Fields[name].(float64); ok {
		return v
	}
	return 0
}

func (r record) stringSliceField(name string) []string {
	raw, ok := r.Fields[name].([]interface{})
	if !ok {
		return nil
	}
	values := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			values = append(values, s)
		}
	}
	return values
}

// toService конвертирует запись каталога в доменную модель
func (r record) toService() domain.Service {
	return domain.Service{
		ID:              r.ID,
		Name:            r.stringField("Name"),
		Description:     r.stringField("Description"),
		Category:        r.stringField("Category"),
		DurationMinutes: r.intField("Duration"),
		Price:           r.floatField("Price"),
	}
}

// toStaffMember конвертирует запись справочника в доменную модель
// Неизвестные названия дней недели пропускаются, об этом сообщает второй результат
func (r record) toStaffMember() (domain.StaffMember, []string) {
	member := domain.StaffMember{
		ID:                r.ID,
		FullName:          r.stringField("Full Name"),
		EmployeeNumber:    r.stringField("Employee Number"),
		ContactNumber:     r.stringField("Contact Number"),
		AvailableWeekdays: make(map[time.Weekday]bool),
		QualifiedServices: r.stringSliceField("Expertise"),
	}

	var unknown []string
	for _, dayName := range r.stringSliceField("Availability Days") {
		weekday, ok := domain.ParseWeekday(dayName)
		if !ok {
			unknown = append(unknown, dayName)
			continue
		}
		member.AvailableWeekdays[weekday] = true
	}

	return member, unknown
}

// toClient конвертирует запись клиента в доменную модель
func (r record) toClient() domain.Client {
	createdAt := r.stringField("Created At")
	if createdAt == "" {
		createdAt = r.CreatedTime
	}

	return domain.Client{
		ID:               r.ID,
		Name:             r.stringField("Name"),
		Email:            r.stringField("Email"),
		Phone:            r.stringField("Phone"),
		LastVisit:        r.stringField("Last Visit"),
		NextAppointment:  r.stringField("Next Appointment"),
		PreferredService: r.stringField("Preferred Service"),
		TotalVisits:      r.intField("Total Visits"),
		TotalSpent:       r.floatField("Total Spent"),
		Tags:             r.stringSliceField("Tags"),
		Notes:            r.stringField("Notes"),
		CreatedAt:        createdAt,
	}
}

// toMessage конвертирует запись диалога в доменную модель
func (r record) toMessage() domain.Message {
	sentAt, err := time.Parse(time.RFC3339, r.stringField("Sent At"))
	if err != nil {
		sentAt = time.Time{}
	}

	return domain.Message{
		ID:             r.ID,
		ConversationID: r.stringField("Conversation ID"),
		Direction:      domain.MessageDirection(r.stringField("Direction")),
		Sender:         r.stringField("Sender"),
		Body:           r.stringField("Body"),
		SentAt:         sentAt,
	}
}

// RevenueRow пред-агрегированная строка аналитики из таблицы Revenue
// Значения считаются на стороне хранилища, сервис их не пересчитывает
type RevenueRow struct {
	ID           string
	Month        string
	Revenue      float64
	Appointments int
	NewClients   int
}

func (r record) toRevenueRow() RevenueRow {
	return RevenueRow{
		ID:           r.ID,
		Month:        r.stringField("Month"),
		Revenue:      r.floatField("Revenue"),
		Appointments: r.intField("Appointments"),
		NewClients:   r.intField("New Clients"),
	}
}

// clientFields собирает поля записи из доменного частичного обновления
func clientFields(update domain.ClientUpdate) map[string]interface{} {
	fields := make(map[string]interface{})

	if update.Name != nil {
		fields["Name"] = *update.Name
	}
	if update.Email != nil {
		fields["Email"] = *update.Email
	}
	if update.Phone != nil {
		fields["Phone"] = *update.Phone
	}
	if update.LastVisit != nil {
		fields["Last Visit"] = *update.LastVisit
	}
	if update.NextAppointment != nil {
		fields["Next Appointment"] = *update.NextAppointment
	}
	if update.PreferredService != nil {
		fields["Preferred Service"] = *update.PreferredService
	}
	if update.TotalVisits != nil {
		fields["Total Visits"] = *update.TotalVisits
	}
	if update.TotalSpent != nil {
		fields["Total Spent"] = *update.TotalSpent
	}
	if update.Tags != nil {
		fields["Tags"] = *update.Tags
	}
	if update.Notes != nil {
		fields["Notes"] = *update.Notes
	}

	return fields
}

// staffFields собирает поля записи из доменного частичного обновления
// Дни недели сериализуются в английские названия, которые разбирает toStaffMember
func staffFields(update domain.StaffUpdate) map[string]interface{} {
	fields := make(map[string]interface{})

	if update.FullName != nil {
		fields["Full Name"] = *update.FullName
	}
	if update.EmployeeNumber != nil {
		fields["Employee Number"] = *update.EmployeeNumber
	}
	if update.ContactNumber != nil {
		fields["Contact Number"] = *update.ContactNumber
	}
	if update.AvailableWeekdays != nil {
		names := make([]string, 0, len(*update.AvailableWeekdays))
		for _, day := range *update.AvailableWeekdays {
			names = append(names, day.String())
		}
		fields["Availability Days"] = names
	}
	if update.QualifiedServices != nil {
		fields["Expertise"] = *update.QualifiedServices
	}

	return fields
}

func messageFields(msg domain.Message) map[string]interface{} {
	return map[string]interface{}{
		"Conversation ID": msg.ConversationID,
		"Direction":       string(msg.Direction),
		"Sender":          msg.Sender,
		"Body":            msg.Body,
		"Sent At":         msg.SentAt.Format(time.RFC3339),
	}
}
