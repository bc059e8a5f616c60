package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"chainstay/internal/domain"
)

// ---- hotel chains ----

func (r *Repo) CreateChain(ctx context.Context, c domain.HotelChain) error {
	_, err := r.db.ExecContext(ctx, insertChainSQL,
		c.ChainName, c.Address, c.NumberOfHotels, c.ContactEmail, c.PhoneNumber)
	return storeErr(err)
}

func (r *Repo) ListChains(ctx context.Context, pg domain.Page) ([]domain.HotelChain, error) {
	rows, err := r.db.QueryContext(ctx, listChainsSQL, pg.Limit, pg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.HotelChain
	for rows.Next() {
		var c domain.HotelChain
		if err := rows.Scan(&c.ChainName, &c.Address, &c.NumberOfHotels, &c.ContactEmail, &c.PhoneNumber); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *Repo) getChain(ctx context.Context, name string) (domain.HotelChain, error) {
	var c domain.HotelChain
	err := r.db.QueryRowContext(ctx, getChainSQL, name).
		Scan(&c.ChainName, &c.Address, &c.NumberOfHotels, &c.ContactEmail, &c.PhoneNumber)
	if err == sql.ErrNoRows {
		return domain.HotelChain{}, fmt.Errorf("%w: hotel chain %q", domain.ErrNotFound, name)
	}
	return c, err
}

func (r *Repo) UpdateChain(ctx context.Context, name string, p domain.ChainPatch) (domain.HotelChain, error) {
	if _, err := r.getChain(ctx, name); err != nil {
		return domain.HotelChain{}, err
	}
	sets, args := make([]string, 0, 4), make([]any, 0, 5)
	if p.Address != nil {
		sets, args = append(sets, "address = ?"), append(args, *p.Address)
	}
	if p.NumberOfHotels != nil {
		sets, args = append(sets, "number_of_hotels = ?"), append(args, *p.NumberOfHotels)
	}
	if p.ContactEmail != nil {
		sets, args = append(sets, "contact_email = ?"), append(args, *p.ContactEmail)
	}
	if p.PhoneNumber != nil {
		sets, args = append(sets, "phone_number = ?"), append(args, *p.PhoneNumber)
	}
	if len(sets) > 0 {
		q := "UPDATE hotel_chain SET " + strings.Join(sets, ", ") + " WHERE chain_name = ?"
		if _, err := r.db.ExecContext(ctx, q, append(args, name)...); err != nil {
			return domain.HotelChain{}, storeErr(err)
		}
	}
	return r.getChain(ctx, name)
}

func (r *Repo) DeleteChain(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx, deleteChainSQL, name)
	if err != nil {
		return storeErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: hotel chain %q", domain.ErrNotFound, name)
	}
	return nil
}

// ---- hotels ----

func (r *Repo) CreateHotel(ctx context.Context, h domain.Hotel) error {
	_, err := r.db.ExecContext(ctx, insertHotelSQL,
		h.Address, h.ContactEmail, h.PhoneNumber, h.NumberOfRooms, h.Rating, h.ChainName, valStr(h.ManagerID))
	return storeErr(err)
}

func scanHotel(row interface{ Scan(...any) error }) (domain.Hotel, error) {
	var h domain.Hotel
	var manager sql.NullString
	err := row.Scan(&h.Address, &h.ContactEmail, &h.PhoneNumber, &h.NumberOfRooms, &h.Rating, &h.ChainName, &manager)
	h.ManagerID = strPtr(manager)
	return h, err
}

func (r *Repo) ListHotels(ctx context.Context, pg domain.Page) ([]domain.Hotel, error) {
	rows, err := r.db.QueryContext(ctx, listHotelsSQL, pg.Limit, pg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Hotel
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *Repo) GetHotel(ctx context.Context, address string) (domain.Hotel, error) {
	h, err := scanHotel(r.db.QueryRowContext(ctx, getHotelSQL, address))
	if err == sql.ErrNoRows {
		return domain.Hotel{}, fmt.Errorf("%w: hotel %q", domain.ErrNotFound, address)
	}
	return h, err
}

func (r *Repo) UpdateHotel(ctx context.Context, address string, p domain.HotelPatch) (domain.Hotel, error) {
	if _, err := r.GetHotel(ctx, address); err != nil {
		return domain.Hotel{}, err
	}
	sets, args := make([]string, 0, 6), make([]any, 0, 7)
	if p.ContactEmail != nil {
		sets, args = append(sets, "contact_email = ?"), append(args, *p.ContactEmail)
	}
	if p.PhoneNumber != nil {
		sets, args = append(sets, "phone_number = ?"), append(args, *p.PhoneNumber)
	}
	if p.NumberOfRooms != nil {
		sets, args = append(sets, "number_of_rooms = ?"), append(args, *p.NumberOfRooms)
	}
	if p.Rating != nil {
		sets, args = append(sets, "rating = ?"), append(args, *p.Rating)
	}
	if p.ChainName != nil {
		sets, args = append(sets, "chain_name = ?"), append(args, *p.ChainName)
	}
	if p.ManagerID != nil {
		sets, args = append(sets, "manager_id = ?"), append(args, *p.ManagerID)
	}
	if len(sets) > 0 {
		q := "UPDATE hotel SET " + strings.Join(sets, ", ") + " WHERE address = ?"
		if _, err := r.db.ExecContext(ctx, q, append(args, address)...); err != nil {
			return domain.Hotel{}, storeErr(err)
		}
	}
	return r.GetHotel(ctx, address)
}

func (r *Repo) DeleteHotel(ctx context.Context, address string) error {
	res, err := r.db.ExecContext(ctx, deleteHotelSQL, address)
	if err != nil {
		return storeErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: hotel %q", domain.ErrNotFound, address)
	}
	return nil
}

// ---- employees ----

func (r *Repo) CreateEmployee(ctx context.Context, e domain.Employee) error {
	_, err := r.db.ExecContext(ctx, insertEmployeeSQL,
		e.SSN, e.FullName, e.Address, e.JobPosition, valStr(e.HotelID))
	return storeErr(err)
}

func scanEmployee(row interface{ Scan(...any) error }) (domain.Employee, error) {
	var e domain.Employee
	var hotel sql.NullString
	err := row.Scan(&e.SSN, &e.FullName, &e.Address, &e.JobPosition, &hotel)
	e.HotelID = strPtr(hotel)
	return e, err
}

func (r *Repo) ListEmployees(ctx context.Context, pg domain.Page) ([]domain.Employee, error) {
	rows, err := r.db.QueryContext(ctx, listEmployeesSQL, pg.Limit, pg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *Repo) GetEmployee(ctx context.Context, ssn string) (domain.Employee, error) {
	e, err := scanEmployee(r.db.QueryRowContext(ctx, getEmployeeSQL, ssn))
	if err == sql.ErrNoRows {
		return domain.Employee{}, fmt.Errorf("%w: employee %s", domain.ErrNotFound, ssn)
	}
	return e, err
}

func (r *Repo) UpdateEmployee(ctx context.Context, ssn string, p domain.EmployeePatch) (domain.Employee, error) {
	if _, err := r.GetEmployee(ctx, ssn); err != nil {
		return domain.Employee{}, err
	}
	sets, args := make([]string, 0, 4), make([]any, 0, 5)
	if p.FullName != nil {
		sets, args = append(sets, "full_name = ?"), append(args, *p.FullName)
	}
	if p.Address != nil {
		sets, args = append(sets, "address = ?"), append(args, *p.Address)
	}
	if p.JobPosition != nil {
		sets, args = append(sets, "job_position = ?"), append(args, *p.JobPosition)
	}
	if p.HotelID != nil {
		sets, args = append(sets, "hotel_id = ?"), append(args, *p.HotelID)
	}
	if len(sets) > 0 {
		q := "UPDATE employee SET " + strings.Join(sets, ", ") + " WHERE ssn = ?"
		if _, err := r.db.ExecContext(ctx, q, append(args, ssn)...); err != nil {
			return domain.Employee{}, storeErr(err)
		}
	}
	return r.GetEmployee(ctx, ssn)
}

func (r *Repo) DeleteEmployee(ctx context.Context, ssn string) error {
	res, err := r.db.ExecContext(ctx, deleteEmployeeSQL, ssn)
	if err != nil {
		return storeErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: employee %s", domain.ErrNotFound, ssn)
	}
	return nil
}

// ---- customers ----

func (r *Repo) CreateCustomer(ctx context.Context, c domain.Customer) error {
	var reg any
	if c.DateOfRegistration != nil {
		reg = c.DateOfRegistration.UTC()
	}
	_, err := r.db.ExecContext(ctx, insertCustomerSQL, c.CustomerID, c.FullName, c.Address, reg)
	return storeErr(err)
}

func scanCustomer(row interface{ Scan(...any) error }) (domain.Customer, error) {
	var c domain.Customer
	var reg sql.NullTime
	err := row.Scan(&c.CustomerID, &c.FullName, &c.Address, &reg)
	if reg.Valid {
		t := reg.Time
		c.DateOfRegistration = &t
	}
	return c, err
}

func (r *Repo) ListCustomers(ctx context.Context, pg domain.Page) ([]domain.Customer, error) {
	rows, err := r.db.QueryContext(ctx, listCustomersSQL, pg.Limit, pg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *Repo) getCustomer(ctx context.Context, id string) (domain.Customer, error) {
	c, err := scanCustomer(r.db.QueryRowContext(ctx, getCustomerSQL, id))
	if err == sql.ErrNoRows {
		return domain.Customer{}, fmt.Errorf("%w: customer %q", domain.ErrNotFound, id)
	}
	return c, err
}

func (r *Repo) UpdateCustomer(ctx context.Context, id string, p domain.CustomerPatch) (domain.Customer, error) {
	if _, err := r.getCustomer(ctx, id); err != nil {
		return domain.Customer{}, err
	}
	sets, args := make([]string, 0, 2), make([]any, 0, 3)
	if p.FullName != nil {
		sets, args = append(sets, "full_name = ?"), append(args, *p.FullName)
	}
	if p.Address != nil {
		sets, args = append(sets, "address = ?"), append(args, *p.Address)
	}
	if len(sets) > 0 {
		q := "UPDATE customer SET " + strings.Join(sets, ", ") + " WHERE customer_id = ?"
		if _, err := r.db.ExecContext(ctx, q, append(args, id)...); err != nil {
			return domain.Customer{}, storeErr(err)
		}
	}
	return r.getCustomer(ctx, id)
}

func (r *Repo) DeleteCustomer(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteCustomerSQL, id)
	if err != nil {
		return storeErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: customer %q", domain.ErrNotFound, id)
	}
	return nil
}
