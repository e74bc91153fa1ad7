package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"inmolista/server/internal/models"
)

var (
	ErrNotFound      = errors.New("property not found")
	ErrInvalidRecord = errors.New("invalid property record")
)

// Database is the entity store backing the listing API. It owns record
// identity and creation time; callers never supply either.
type Database struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewDatabase(dbPath string, logger *logrus.Logger) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return &Database{db: db, logger: logger}, nil
}

func (d *Database) GetDB() *gorm.DB {
	return d.db
}

func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// List returns every property ordered by reverse creation time, the
// ordering the listing pages render.
func (d *Database) List(ctx context.Context) ([]models.Property, error) {
	properties := make([]models.Property, 0)
	err := d.db.WithContext(ctx).
		Order("created_date DESC").
		Find(&properties).Error
	if err != nil {
		return nil, err
	}
	return properties, nil
}

func (d *Database) GetByID(ctx context.Context, id string) (*models.Property, error) {
	var property models.Property
	err := d.db.WithContext(ctx).First(&property, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// Create validates and stores a new property, assigning its id and creation
// time. The caller's ID and CreatedDate fields are ignored.
func (d *Database) Create(ctx context.Context, property *models.Property) error {
	normalize(property)
	if err := validate(property); err != nil {
		return err
	}

	property.ID = uuid.NewString()
	property.CreatedDate = time.Now().UTC()

	if err := d.db.WithContext(ctx).Create(property).Error; err != nil {
		return err
	}

	d.logger.WithFields(logrus.Fields{
		"property_id": property.ID,
		"city":        property.City,
	}).Info("Created property")
	return nil
}

// Update replaces the whole record while keeping id and creation time
// immutable.
func (d *Database) Update(ctx context.Context, id string, property *models.Property) (*models.Property, error) {
	existing, err := d.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	normalize(property)
	if err := validate(property); err != nil {
		return nil, err
	}

	property.ID = existing.ID
	property.CreatedDate = existing.CreatedDate

	if err := d.db.WithContext(ctx).Save(property).Error; err != nil {
		return nil, err
	}

	d.logger.WithField("property_id", property.ID).Info("Updated property")
	return property, nil
}

func (d *Database) Delete(ctx context.Context, id string) error {
	result := d.db.WithContext(ctx).Delete(&models.Property{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	d.logger.WithField("property_id", id).Info("Deleted property")
	return nil
}

// normalize coerces optional fields to their storage defaults so records
// leave the store already well-formed: absent currency becomes USD, negative
// counters become 0, absent status becomes available.
func normalize(p *models.Property) {
	if p.Currency == "" {
		p.Currency = models.CurrencyUSD
	}
	if p.Status == "" {
		p.Status = models.StatusAvailable
	}
	if p.Area < 0 {
		p.Area = 0
	}
	if p.Bedrooms < 0 {
		p.Bedrooms = 0
	}
	if p.Bathrooms < 0 {
		p.Bathrooms = 0
	}
	if p.Parking < 0 {
		p.Parking = 0
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Features == nil {
		p.Features = []string{}
	}
}

func validate(p *models.Property) error {
	if !p.Valid() {
		return fmt.Errorf("%w: title and city are required", ErrInvalidRecord)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: price must be non-negative", ErrInvalidRecord)
	}
	if !p.Type.Known() {
		return fmt.Errorf("%w: unknown property type %q", ErrInvalidRecord, p.Type)
	}
	if !p.Operation.Known() {
		return fmt.Errorf("%w: unknown operation %q", ErrInvalidRecord, p.Operation)
	}
	if !p.Status.Known() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidRecord, p.Status)
	}
	if !p.Currency.Known() {
		return fmt.Errorf("%w: unknown currency %q", ErrInvalidRecord, p.Currency)
	}
	return nil
}
