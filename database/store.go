package database

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/xuri/excelize/v2"

	"travel-registration/errors"
	"travel-registration/model"
)

const sheetName = "Sheet1"

// Header is the fixed first row of the workbook. Data rows start at row 2
// and follow this column order exactly.
var Header = []string{
	"Timestamp",
	"Full Name",
	"Phone",
	"Email",
	"Route",
	"Departure Date",
	"Package",
	"Total Price",
	"50% Deposit",
	"Deposit Confirmed",
}

// Store is an append-only registration log backed by a single xlsx workbook.
//
// Every append reopens and rewrites the whole file, and there is no locking:
// two simultaneous submissions can race and one row can be lost. Accepted
// for the low-volume manual form this backs.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file location, so the workbook can be served
// whole for download.
func (s *Store) Path() string {
	return s.path
}

// Init creates the workbook with only the header row when it does not exist
// yet. An existing file, rows included, is left untouched.
func (s *Store) Init() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return errors.Wrap(errors.Persistence, err, "stat workbook %v", s.path)
	}

	f := excelize.NewFile()
	defer f.Close()

	header := make([]interface{}, len(Header))
	for i, col := range Header {
		header[i] = col
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return errors.Wrap(errors.Persistence, err, "write workbook header")
	}
	if err := f.SaveAs(s.path); err != nil {
		return errors.Wrap(errors.Persistence, err, "create workbook %v", s.path)
	}
	return nil
}

// Append adds one registration after the last row and saves the workbook.
// Prior rows are carried over untouched.
func (s *Store) Append(reg model.Registration) error {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return errors.Wrap(errors.Persistence, err, "open workbook %v", s.path)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return errors.Wrap(errors.Persistence, err, "read workbook rows")
	}

	cell := fmt.Sprintf("A%d", len(rows)+1)
	row := []interface{}{
		reg.Timestamp,
		reg.FullName,
		reg.Phone,
		reg.Email,
		reg.Route,
		reg.DepartureDate,
		reg.Package,
		reg.TotalPrice,
		reg.Deposit,
		reg.DepositConfirmed,
	}
	if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
		return errors.Wrap(errors.Persistence, err, "write registration row")
	}
	if err := f.Save(); err != nil {
		return errors.Wrap(errors.Persistence, err, "save workbook %v", s.path)
	}
	return nil
}

// ReadAll returns every data row in file order, oldest first. The header and
// rows with an empty first cell are skipped. The two money columns are
// formatted with thousands separators; everything else passes through. A
// missing workbook yields an empty list, not an error.
func (s *Store) ReadAll() ([]model.RegistrationView, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return []model.RegistrationView{}, nil
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, errors.Wrap(errors.Persistence, err, "open workbook %v", s.path)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, errors.Wrap(errors.Persistence, err, "read workbook rows")
	}

	views := []model.RegistrationView{}
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) == 0 || row[0] == "" {
			continue
		}
		views = append(views, model.RegistrationView{
			Timestamp:        get(row, 0),
			FullName:         get(row, 1),
			Phone:            get(row, 2),
			Email:            get(row, 3),
			Route:            get(row, 4),
			DepartureDate:    get(row, 5),
			Package:          get(row, 6),
			TotalPrice:       formatAmount(get(row, 7)),
			Deposit:          formatAmount(get(row, 8)),
			DepositConfirmed: get(row, 9),
		})
	}
	return views, nil
}

func get(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// formatAmount adds thousands separators to a numeric cell value; anything
// that does not parse passes through as-is.
func formatAmount(raw string) string {
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return raw
	}
	return humanize.Commaf(val)
}
