package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/realtyhub/export-api/internal/domain/entity"
	"github.com/realtyhub/export-api/internal/domain/repository"
)

type ExportRepository struct {
	db *sql.DB
}

func NewExportRepository(db *sql.DB) *ExportRepository {
	return &ExportRepository{db: db}
}

// GetPropertyByID assembles the property aggregate with a sequence of narrow
// queries: property core, address+coordinates, images, then the optional
// broker with its sub-collections. The price is masked at the SQL level so a
// non-public price never leaves the database.
func (r *ExportRepository) GetPropertyByID(ctx context.Context, officeID, propertyID uuid.UUID) (*entity.Property, error) {
	p := &entity.Property{ID: propertyID}

	var (
		price    sql.NullInt64
		isPublic bool
		brokerID uuid.NullUUID
	)
	row := r.db.QueryRowContext(ctx, `
		SELECT CASE WHEN is_public_price THEN price END,
		       is_public_price, broker_id, address_id
		FROM property
		WHERE id = $1 AND office_id = $2
	`, propertyID, officeID)
	if err := row.Scan(&price, &isPublic, &brokerID, &p.AddressID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if price.Valid {
		v := int(price.Int64)
		p.Price = &v
	}
	p.IsPublicPrice = &isPublic
	if brokerID.Valid {
		id := brokerID.UUID
		p.BrokerID = &id
	}

	addr, err := r.getAddress(ctx, p.AddressID)
	if err != nil {
		return nil, err
	}
	p.Address = addr

	images, err := r.getImageURLs(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	p.Images = images

	if p.BrokerID != nil {
		broker, err := r.getBroker(ctx, *p.BrokerID)
		if err != nil {
			return nil, err
		}
		p.Broker = broker
	}

	return p, nil
}

func (r *ExportRepository) getAddress(ctx context.Context, addressID uuid.UUID) (*entity.Address, error) {
	var (
		country, city, street sql.NullString
		number                sql.NullInt64
		lat, lng              sql.NullFloat64
	)
	row := r.db.QueryRowContext(ctx, `
		SELECT a.country, a.city, a.street, a.number, g.latitude, g.longitude
		FROM address a
		LEFT JOIN gis g ON g.id = a.gis_id
		WHERE a.id = $1
	`, addressID)
	if err := row.Scan(&country, &city, &street, &number, &lat, &lng); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	addr := &entity.Address{
		Country: country.String,
		City:    city.String,
		Street:  street.String,
		ID:      addressID,
	}
	if number.Valid {
		n := int(number.Int64)
		addr.Number = &n
	}
	if lat.Valid && lng.Valid {
		addr.Coordinates = &entity.Gis{Latitude: lat.Float64, Longitude: lng.Float64}
	}
	return addr, nil
}

func (r *ExportRepository) getImageURLs(ctx context.Context, propertyID uuid.UUID) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT image_url FROM image WHERE property_id = $1
	`, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var urls []string
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, err
		}
		urls = append(urls, u)
	}
	return urls, rows.Err()
}

// getBroker fetches the broker core row plus degrees, emails and phone
// numbers. A broker deleted between the property fetch and this call yields
// nil rather than an error; the aggregate read is not a snapshot.
func (r *ExportRepository) getBroker(ctx context.Context, brokerID uuid.UUID) (*entity.Broker, error) {
	b := &entity.Broker{ID: brokerID}

	var isPaid bool
	row := r.db.QueryRowContext(ctx, `
		SELECT first_name, last_name, is_mls FROM broker WHERE id = $1
	`, brokerID)
	if err := row.Scan(&b.FirstName, &b.LastName, &isPaid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	b.IsPaidUser = &isPaid

	degrees, err := r.getBrokerDegrees(ctx, brokerID)
	if err != nil {
		return nil, err
	}
	b.DegreeBefore = degrees

	emails, err := r.getBrokerEmails(ctx, brokerID)
	if err != nil {
		return nil, err
	}
	b.Emails = emails

	phones, err := r.getBrokerPhoneNumbers(ctx, brokerID)
	if err != nil {
		return nil, err
	}
	b.PhoneNumbers = phones

	return b, nil
}

func (r *ExportRepository) getBrokerDegrees(ctx context.Context, brokerID uuid.UUID) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT degree_name FROM broker_degree WHERE broker_id = $1
	`, brokerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var degrees []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		degrees = append(degrees, d)
	}
	return degrees, rows.Err()
}

func (r *ExportRepository) getBrokerEmails(ctx context.Context, brokerID uuid.UUID) ([]entity.Email, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT email, type FROM email WHERE broker_id = $1
	`, brokerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var emails []entity.Email
	for rows.Next() {
		var (
			e   entity.Email
			typ sql.NullString
		)
		if err := rows.Scan(&e.Email, &typ); err != nil {
			return nil, err
		}
		e.Type = typ.String
		emails = append(emails, e)
	}
	return emails, rows.Err()
}

func (r *ExportRepository) getBrokerPhoneNumbers(ctx context.Context, brokerID uuid.UUID) ([]entity.PhoneNumber, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT number, type FROM phone_number WHERE broker_id = $1
	`, brokerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var phones []entity.PhoneNumber
	for rows.Next() {
		var (
			p   entity.PhoneNumber
			typ sql.NullString
		)
		if err := rows.Scan(&p.Number, &typ); err != nil {
			return nil, err
		}
		p.Type = typ.String
		phones = append(phones, p)
	}
	return phones, rows.Err()
}

// GetPropertiesShortInfoForBroker pages through a broker's properties. The
// inner join intentionally drops properties without an address, and the count
// runs as a separate query over the same filter so the page metadata is
// exact. Ordering is by city with the property id as tiebreak so pages are
// reproducible.
func (r *ExportRepository) GetPropertiesShortInfoForBroker(ctx context.Context, officeID, brokerID uuid.UUID, pageSize, pageNumber int) (entity.Page[entity.Property], error) {
	var empty entity.Page[entity.Property]

	var total int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM property p
		JOIN address a ON a.id = p.address_id
		WHERE p.office_id = $1 AND p.broker_id = $2
	`, officeID, brokerID).Scan(&total)
	if err != nil {
		return empty, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT p.price, a.country, a.city, a.street, a.number
		FROM property p
		JOIN address a ON a.id = p.address_id
		WHERE p.office_id = $1 AND p.broker_id = $2
		ORDER BY a.city ASC, p.id ASC
		LIMIT $3 OFFSET $4
	`, officeID, brokerID, pageSize, pageNumber*pageSize)
	if err != nil {
		return empty, err
	}
	defer rows.Close()

	var properties []entity.Property
	for rows.Next() {
		var (
			price                 sql.NullInt64
			country, city, street sql.NullString
			number                sql.NullInt64
		)
		if err := rows.Scan(&price, &country, &city, &street, &number); err != nil {
			return empty, err
		}

		p := entity.Property{
			Address: &entity.Address{
				Country: country.String,
				City:    city.String,
				Street:  street.String,
			},
		}
		if price.Valid {
			v := int(price.Int64)
			p.Price = &v
		}
		if number.Valid {
			n := int(number.Int64)
			p.Address.Number = &n
		}
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		return empty, err
	}

	return entity.NewPage(properties, pageNumber, pageSize, total), nil
}

// officeContacts mirrors the json_agg sub-select payloads.
type officeContactRow struct {
	Email  string `json:"email"`
	Number string `json:"number"`
	Type   string `json:"type"`
}

// GetAllOffices lists every office with its address and contact collections.
// Emails and phone numbers are aggregated as correlated json_agg sub-selects
// so the whole listing costs a single round trip regardless of office count.
func (r *ExportRepository) GetAllOffices(ctx context.Context) ([]entity.Office, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT o.id, o.name, o.date_opening, o.tags,
		       a.id, a.country, a.city, a.street, a.number,
		       COALESCE((
		           SELECT json_agg(json_build_object('email', e.email, 'type', e.type))
		           FROM email e WHERE e.office_id = o.id
		       ), '[]'),
		       COALESCE((
		           SELECT json_agg(json_build_object('number', pn.number, 'type', pn.type))
		           FROM phone_number pn WHERE pn.office_id = o.id
		       ), '[]')
		FROM office o
		LEFT JOIN address a ON a.id = o.address_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offices []entity.Office
	for rows.Next() {
		var (
			o                     entity.Office
			dateOpening           sql.NullTime
			tags                  pq.StringArray
			addressID             uuid.NullUUID
			country, city, street sql.NullString
			number                sql.NullInt64
			emailsJSON            []byte
			phonesJSON            []byte
		)
		if err := rows.Scan(&o.ID, &o.OfficeName, &dateOpening, &tags,
			&addressID, &country, &city, &street, &number,
			&emailsJSON, &phonesJSON); err != nil {
			return nil, err
		}

		if dateOpening.Valid {
			d := entity.Date{Time: dateOpening.Time}
			o.DateOpening = &d
		}
		o.Tags = []string(tags)

		if addressID.Valid {
			addr := &entity.Address{
				Country: country.String,
				City:    city.String,
				Street:  street.String,
				ID:      addressID.UUID,
			}
			if number.Valid {
				n := int(number.Int64)
				addr.Number = &n
			}
			o.Address = addr
			o.CookedAddress = addr.Cooked()
		}

		emails, phones, err := decodeOfficeContacts(emailsJSON, phonesJSON)
		if err != nil {
			return nil, err
		}
		o.Emails = emails
		o.PhoneNumbers = phones

		offices = append(offices, o)
	}
	return offices, rows.Err()
}

func decodeOfficeContacts(emailsJSON, phonesJSON []byte) ([]entity.Email, []entity.PhoneNumber, error) {
	var emailRows []officeContactRow
	if err := json.Unmarshal(emailsJSON, &emailRows); err != nil {
		return nil, nil, err
	}
	var phoneRows []officeContactRow
	if err := json.Unmarshal(phonesJSON, &phoneRows); err != nil {
		return nil, nil, err
	}

	var emails []entity.Email
	for _, er := range emailRows {
		emails = append(emails, entity.Email{Email: er.Email, Type: er.Type})
	}
	var phones []entity.PhoneNumber
	for _, pr := range phoneRows {
		phones = append(phones, entity.PhoneNumber{Number: pr.Number, Type: pr.Type})
	}
	return emails, phones, nil
}

var _ repository.ExportRepository = (*ExportRepository)(nil)
