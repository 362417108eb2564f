package model

// TimestampLayout is the format registrations are stamped with when persisted.
const TimestampLayout = "2006-01-02 15:04:05"

// Registration is one confirmed form submission, in workbook column order.
type Registration struct {
	Timestamp        string
	FullName         string
	Phone            string
	Email            string
	Route            string
	DepartureDate    string
	Package          string
	TotalPrice       int64
	Deposit          float64
	DepositConfirmed string
}

// RegistrationView is a registration prepared for display: every field is a
// string and the two money columns carry thousands separators.
type RegistrationView struct {
	Timestamp        string
	FullName         string
	Phone            string
	Email            string
	Route            string
	DepartureDate    string
	Package          string
	TotalPrice       string
	Deposit          string
	DepositConfirmed string
}
