package repo

import "gorm.io/gorm"

// GormRepo is the persistence gateway. Every method round-trips to the store;
// nothing is cached in process.
type GormRepo struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *GormRepo {
	return &GormRepo{DB: db}
}
