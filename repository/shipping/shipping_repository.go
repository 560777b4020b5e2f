package shipping

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/rizkyfachril/backoffice/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ShippingRepository interface {
	ListCarriers(ctx context.Context) ([]model.ShippingCarrier, error)
	GetCarrierByID(ctx context.Context, id uint64) (*model.ShippingCarrier, error)
	GetCarrierByCode(ctx context.Context, code string) (*model.ShippingCarrier, error)
	CreateCarrier(ctx context.Context, data *model.ShippingCarrier) (*model.ShippingCarrier, error)
	UpdateCarrier(ctx context.Context, data *model.ShippingCarrier) error
	DeleteCarrier(ctx context.Context, id uint64) error

	ListMethods(ctx context.Context) ([]model.ShippingMethod, error)
	GetMethodByID(ctx context.Context, id uint64) (*model.ShippingMethod, error)
	GetMethodByCode(ctx context.Context, code string) (*model.ShippingMethod, error)
	CreateMethod(ctx context.Context, data *model.ShippingMethod) (*model.ShippingMethod, error)
	UpdateMethod(ctx context.Context, data *model.ShippingMethod) error
	DeleteMethod(ctx context.Context, id uint64) error

	ListServiceTypes(ctx context.Context) ([]model.ShippingServiceType, error)
	GetServiceTypeByID(ctx context.Context, id uint64) (*model.ShippingServiceType, error)
	GetServiceTypeByCode(ctx context.Context, code string) (*model.ShippingServiceType, error)
	CreateServiceType(ctx context.Context, data *model.ShippingServiceType) (*model.ShippingServiceType, error)
	UpdateServiceType(ctx context.Context, data *model.ShippingServiceType) error
	DeleteServiceType(ctx context.Context, id uint64) error
}

func NewShippingRepository(conn *sqlx.DB) ShippingRepository {
	return &SQL{conn: conn}
}

const (
	carrierColumns = `id, name, code, tracking_url, status, created_at, updated_at`

	insertCarrierQuery = `INSERT INTO shipping_carrier (name, code, tracking_url, status, created_at) VALUES (?, ?, ?, ?, NOW())`
	updateCarrierQuery = `UPDATE shipping_carrier SET name = ?, code = ?, tracking_url = ?, status = ?, updated_at = NOW() WHERE id = ?`
	deleteCarrierQuery = `DELETE FROM shipping_carrier WHERE id = ?`

	methodColumns = `id, carrier_id, name, code, price, estimated_days, status, created_at, updated_at`

	insertMethodQuery = `INSERT INTO shipping_method (carrier_id, name, code, price, estimated_days, status, created_at) VALUES (?, ?, ?, ?, ?, ?, NOW())`
	updateMethodQuery = `UPDATE shipping_method SET carrier_id = ?, name = ?, code = ?, price = ?, estimated_days = ?, status = ?, updated_at = NOW() WHERE id = ?`
	deleteMethodQuery = `DELETE FROM shipping_method WHERE id = ?`

	serviceTypeColumns = `id, name, code, description, created_at, updated_at`

	insertServiceTypeQuery = `INSERT INTO shipping_service_type (name, code, description, created_at) VALUES (?, ?, ?, NOW())`
	updateServiceTypeQuery = `UPDATE shipping_service_type SET name = ?, code = ?, description = ?, updated_at = NOW() WHERE id = ?`
	deleteServiceTypeQuery = `DELETE FROM shipping_service_type WHERE id = ?`
)

func (s *SQL) ListCarriers(ctx context.Context) ([]model.ShippingCarrier, error) {
	query := `SELECT ` + carrierColumns + ` FROM shipping_carrier ORDER BY id`

	rows, err := s.conn.QueryxContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	carriers := make([]model.ShippingCarrier, 0)
	for rows.Next() {
		var c model.ShippingCarrier
		if err := rows.StructScan(&c); err != nil {
			return nil, err
		}
		carriers = append(carriers, c)
	}
	return carriers, rows.Err()
}

func (s *SQL) GetCarrierByID(ctx context.Context, id uint64) (*model.ShippingCarrier, error) {
	query := `SELECT ` + carrierColumns + ` FROM shipping_carrier WHERE id = ?`

	var c model.ShippingCarrier
	if err := s.conn.QueryRowxContext(ctx, query, id).StructScan(&c); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (s *SQL) GetCarrierByCode(ctx context.Context, code string) (*model.ShippingCarrier, error) {
	query := `SELECT ` + carrierColumns + ` FROM shipping_carrier WHERE code = ?`

	var c model.ShippingCarrier
	if err := s.conn.QueryRowxContext(ctx, query, code).StructScan(&c); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (s *SQL) CreateCarrier(ctx context.Context, data *model.ShippingCarrier) (*model.ShippingCarrier, error) {
	result, err := s.conn.ExecContext(ctx, insertCarrierQuery, data.Name, data.Code, data.TrackingURL, data.Status)
	if err != nil {
		return nil, err
	}
	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) UpdateCarrier(ctx context.Context, data *model.ShippingCarrier) error {
	_, err := s.conn.ExecContext(ctx, updateCarrierQuery, data.Name, data.Code, data.TrackingURL, data.Status, data.ID)
	return err
}

func (s *SQL) DeleteCarrier(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, deleteCarrierQuery, id)
	return err
}

func (s *SQL) ListMethods(ctx context.Context) ([]model.ShippingMethod, error) {
	query := `SELECT ` + methodColumns + ` FROM shipping_method ORDER BY id`

	rows, err := s.conn.QueryxContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	methods := make([]model.ShippingMethod, 0)
	for rows.Next() {
		var m model.ShippingMethod
		if err := rows.StructScan(&m); err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	return methods, rows.Err()
}

func (s *SQL) GetMethodByID(ctx context.Context, id uint64) (*model.ShippingMethod, error) {
	query := `SELECT ` + methodColumns + ` FROM shipping_method WHERE id = ?`

	var m model.ShippingMethod
	if err := s.conn.QueryRowxContext(ctx, query, id).StructScan(&m); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (s *SQL) GetMethodByCode(ctx context.Context, code string) (*model.ShippingMethod, error) {
	query := `SELECT ` + methodColumns + ` FROM shipping_method WHERE code = ?`

	var m model.ShippingMethod
	if err := s.conn.QueryRowxContext(ctx, query, code).StructScan(&m); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (s *SQL) CreateMethod(ctx context.Context, data *model.ShippingMethod) (*model.ShippingMethod, error) {
	result, err := s.conn.ExecContext(ctx, insertMethodQuery,
		data.CarrierID, data.Name, data.Code, data.Price, data.EstimatedDays, data.Status)
	if err != nil {
		return nil, err
	}
	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) UpdateMethod(ctx context.Context, data *model.ShippingMethod) error {
	_, err := s.conn.ExecContext(ctx, updateMethodQuery,
		data.CarrierID, data.Name, data.Code, data.Price, data.EstimatedDays, data.Status, data.ID)
	return err
}

func (s *SQL) DeleteMethod(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, deleteMethodQuery, id)
	return err
}

func (s *SQL) ListServiceTypes(ctx context.Context) ([]model.ShippingServiceType, error) {
	query := `SELECT ` + serviceTypeColumns + ` FROM shipping_service_type ORDER BY id`

	rows, err := s.conn.QueryxContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := make([]model.ShippingServiceType, 0)
	for rows.Next() {
		var t model.ShippingServiceType
		if err := rows.StructScan(&t); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func (s *SQL) GetServiceTypeByID(ctx context.Context, id uint64) (*model.ShippingServiceType, error) {
	query := `SELECT ` + serviceTypeColumns + ` FROM shipping_service_type WHERE id = ?`

	var t model.ShippingServiceType
	if err := s.conn.QueryRowxContext(ctx, query, id).StructScan(&t); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (s *SQL) GetServiceTypeByCode(ctx context.Context, code string) (*model.ShippingServiceType, error) {
	query := `SELECT ` + serviceTypeColumns + ` FROM shipping_service_type WHERE code = ?`

	var t model.ShippingServiceType
	if err := s.conn.QueryRowxContext(ctx, query, code).StructScan(&t); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (s *SQL) CreateServiceType(ctx context.Context, data *model.ShippingServiceType) (*model.ShippingServiceType, error) {
	result, err := s.conn.ExecContext(ctx, insertServiceTypeQuery, data.Name, data.Code, data.Description)
	if err != nil {
		return nil, err
	}
	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) UpdateServiceType(ctx context.Context, data *model.ShippingServiceType) error {
	_, err := s.conn.ExecContext(ctx, updateServiceTypeQuery, data.Name, data.Code, data.Description, data.ID)
	return err
}

func (s *SQL) DeleteServiceType(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, deleteServiceTypeQuery, id)
	return err
}
