package domain

// Client карточка клиента из внешнего табличного хранилища
// Агрегаты (TotalVisits, TotalSpent) считаются на стороне хранилища
type Client struct {
	ID               string
	Name             string
	Email            string
	Phone            string
	LastVisit        string // YYYY-MM-DD, пустая строка если визитов не было
	NextAppointment  string
	PreferredService string
	TotalVisits      int
	TotalSpent       float64
	Tags             []string
	Notes            string
	CreatedAt        string
}

// ClientUpdate частичное обновление карточки клиента
// nil-поля не изменяются
type ClientUpdate struct {
	Name             *string
	Email            *string
	Phone            *string
	LastVisit        *string
	NextAppointment  *string
	PreferredService *string
	TotalVisits      *int
	TotalSpent       *float64
	Tags             *[]string
	Notes            *string
}
