package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"maxhelp/contexts/identity-access/auth-service/domain/entities"
	domainerrors "maxhelp/contexts/identity-access/auth-service/domain/errors"
	"maxhelp/internal/shared/identity"
)

const uniqueViolationCode = "23505"

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

// AutoMigrate creates the users and business_units tables when absent.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&unitModel{}, &userModel{})
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (entities.User, error) {
	var row userModel
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.User{}, domainerrors.ErrUserNotFound
		}
		return entities.User{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) FindByName(ctx context.Context, name string) (entities.User, error) {
	var row userModel
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.User{}, domainerrors.ErrUserNotFound
		}
		return entities.User{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) FindEmployeeByID(ctx context.Context, id int) (entities.User, error) {
	var row userModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND role = ?", id, string(identity.RoleEmployee)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.User{}, domainerrors.ErrEmployeeNotFound
		}
		return entities.User{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListEmployees(ctx context.Context) ([]entities.User, error) {
	var rows []userModel
	if err := r.db.WithContext(ctx).
		Where("role = ?", string(identity.RoleEmployee)).
		Order("id").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]entities.User, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) CreateUser(ctx context.Context, user entities.User) (entities.User, error) {
	row := userModelFrom(user)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return entities.User{}, domainerrors.ErrEmailTaken
		}
		return entities.User{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) UpdateUser(ctx context.Context, user entities.User) (entities.User, error) {
	row := userModelFrom(user)
	if err := r.db.WithContext(ctx).Save(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return entities.User{}, domainerrors.ErrEmailTaken
		}
		return entities.User{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) DeleteUser(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&userModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrEmployeeNotFound
	}
	return nil
}

func (r *Repository) CountEmployees(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("role = ?", string(identity.RoleEmployee)).
		Count(&count).
		Error
	return count, err
}

func (r *Repository) FindUnitByID(ctx context.Context, id int) (entities.BusinessUnit, error) {
	var row unitModel
	err := r.db.WithContext(ctx).First(&row, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.BusinessUnit{}, domainerrors.ErrUnitNotFound
		}
		return entities.BusinessUnit{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) CreateUnit(ctx context.Context, unit entities.BusinessUnit) (entities.BusinessUnit, error) {
	row := unitModel{
		Name:      unit.Name,
		Location:  unit.Location,
		CreatedAt: unit.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return entities.BusinessUnit{}, domainerrors.ErrUnitNameTaken
		}
		return entities.BusinessUnit{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) CountUnits(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&unitModel{}).Count(&count).Error
	return count, err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

type userModel struct {
	ID           int       `gorm:"column:id;primaryKey"`
	Name         string    `gorm:"column:name;size:100;not null"`
	Email        string    `gorm:"column:email;size:150;uniqueIndex;not null"`
	Role         string    `gorm:"column:role;size:50;not null"`
	Gender       string    `gorm:"column:gender;size:10"`
	UnitID       *int      `gorm:"column:unit_id"`
	PasswordHash string    `gorm:"column:password_hash;size:255;not null"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (userModel) TableName() string { return "users" }

func userModelFrom(user entities.User) userModel {
	return userModel{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Role:         string(user.Role),
		Gender:       user.Gender,
		UnitID:       user.UnitID,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
	}
}

func (m userModel) toEntity() entities.User {
	return entities.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		Role:         identity.Role(m.Role),
		Gender:       m.Gender,
		UnitID:       m.UnitID,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
	}
}

type unitModel struct {
	ID        int       `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;size:100;uniqueIndex;not null"`
	Location  string    `gorm:"column:location;size:50;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (unitModel) TableName() string { return "business_units" }

func (m unitModel) toEntity() entities.BusinessUnit {
	return entities.BusinessUnit{
		ID:        m.ID,
		Name:      m.Name,
		Location:  m.Location,
		CreatedAt: m.CreatedAt,
	}
}
