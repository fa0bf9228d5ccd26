package domain

import "time"

// StaffMember сотрудник салона из штатного справочника
// AvailableWeekdays - закрытое множество дней недели (time.Weekday),
// имена дней из внешнего хранилища разбираются на границе интеграции
type StaffMember struct {
	ID                string
	FullName          string
	EmployeeNumber    string
	ContactNumber     string
	AvailableWeekdays map[time.Weekday]bool
	QualifiedServices []string
}

// StaffUpdate частичное обновление записи сотрудника
// nil-поля не изменяются
type StaffUpdate struct {
	FullName          *string
	EmployeeNumber    *string
	ContactNumber     *string
	AvailableWeekdays *[]time.Weekday
	QualifiedServices *[]string
}

// IsAvailableOn проверяет доступность сотрудника в указанный день недели
func (s *StaffMember) IsAvailableOn(weekday time.Weekday) bool {
	return s.AvailableWeekdays[weekday]
}

// IsQualifiedFor проверяет, что сотрудник выполняет указанную услугу
func (s *StaffMember) IsQualifiedFor(serviceName string) bool {
	for _, name := range s.QualifiedServices {
		if name == serviceName {
			return true
		}
	}
	return false
}

// ParseWeekday разбирает английское название дня недели в time.Weekday
// Возвращает false для неизвестных значений - опечатки в данных внешнего
// хранилища не должны молча превращаться в "недоступен"
func ParseWeekday(name string) (time.Weekday, bool) {
	switch name {
	case "Sunday":
		return time.Sunday, true
	case "Monday":
		return time.Monday, true
	case "Tuesday":
		return time.Tuesday, true
	case "Wednesday":
		return time.Wednesday, true
	case "Thursday":
		return time.Thursday, true
	case "Friday":
		return time.Friday, true
	case "Saturday":
		return time.Saturday, true
	default:
		return 0, false
	}
}
