package records

import (
	"context"
	"errors"
	"time"

	domain "aurora-app-go/internal/domain/records"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ domain.Store = (*PostgresRepository)(nil)

type collectionRow struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Value     []byte    `gorm:"column:value;type:jsonb"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (collectionRow) TableName() string {
	return "record_collections"
}

// PostgresRepository stores each namespaced document as one jsonb row of
// record_collections.
type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var row collectionRow
	err := r.db.WithContext(ctx).Where("key = ?", key).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return row.Value, true, nil
}

func (r *PostgresRepository) Put(ctx context.Context, key string, value []byte) error {
	row := collectionRow{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Where("key = ?", key).Delete(&collectionRow{}).Error
}

// List matches the prefix with left() so that LIKE wildcards in keys need
// no escaping.
func (r *PostgresRepository) List(ctx context.Context, prefix string) (map[string][]byte, error) {
	var rows []collectionRow
	err := r.db.WithContext(ctx).
		Where("left(key, ?) = ?", len([]rune(prefix)), prefix).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make(map[string][]byte, len(rows))
	for _, row := range rows {
		result[row.Key] = row.Value
	}
	return result, nil
}

func (r *PostgresRepository) DeletePrefix(ctx context.Context, prefix string) (int, error) {
	result := r.db.WithContext(ctx).
		Where("left(key, ?) = ?", len([]rune(prefix)), prefix).
		Delete(&collectionRow{})
	if result.Error != nil {
		return 0, result.Error
	}
	return int(result.RowsAffected), nil
}
