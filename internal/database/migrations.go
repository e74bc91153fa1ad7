package database

import "inmolista/server/internal/models"

func (d *Database) RunMigrations() error {
	if err := d.db.AutoMigrate(&models.Property{}); err != nil {
		return err
	}

	// Listing pages always read in reverse creation order.
	return d.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_properties_created_date
		ON properties(created_date);
	`).Error
}
