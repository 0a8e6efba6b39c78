package postgres

import (
	"context"
	"strconv"

	"dirbot/internal/domain/entity"
	domainerrors "dirbot/internal/domain/errors"
	"dirbot/internal/domain/repository"
	"dirbot/internal/infra/persistence/model"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// businessRepository implements repository.BusinessRepository using GORM.
type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{
		db: db,
	}
}

// Insert persists a new business record. The insert is a single statement, so
// it either fully commits or leaves no partial row.
func (repo *businessRepository) Insert(ctx context.Context, business *entity.Business) (string, error) {
	businessM := fromBusinessDomain(business)

	if err := repo.db.WithContext(ctx).Create(businessM).Error; err != nil {
		return "", domainerrors.NewDatabaseExecuteError(err, "failed to insert business")
	}

	business.ID = strconv.FormatUint(uint64(businessM.ID), 10)
	business.RegisteredAt = businessM.RegisteredAt

	return business.ID, nil
}

// Count returns the number of active businesses.
func (repo *businessRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("status = ?", entity.StatusActive.String()).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count businesses")
	}

	return count, nil
}

// Recent returns up to n most recently registered active businesses.
func (repo *businessRepository) Recent(ctx context.Context, n int) ([]repository.RecentBusiness, error) {
	var rows []repository.RecentBusiness
	if err := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Select("name", "registered_at").
		Where("status = ?", entity.StatusActive.String()).
		Order("registered_at DESC").
		Limit(n).
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load recent businesses")
	}

	return rows, nil
}

// PopularKeywords unnests the keyword arrays of active records and returns
// the n most frequent ones, ties broken alphabetically.
func (repo *businessRepository) PopularKeywords(ctx context.Context, n int) ([]repository.KeywordCount, error) {
	var rows []repository.KeywordCount
	if err := repo.db.WithContext(ctx).Raw(`
		SELECT keyword, COUNT(*) AS count
		FROM businesses, unnest(keywords) AS keyword
		WHERE status = ?
		GROUP BY keyword
		ORDER BY count DESC, keyword
		LIMIT ?`,
		entity.StatusActive.String(), n,
	).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load popular keywords")
	}

	return rows, nil
}

// SearchByKeywordOrName matches the query by exact keyword, name substring or
// full-text over name+address. Ordering beyond recency is left to the
// presenter, which ranks and de-duplicates across backends uniformly.
func (repo *businessRepository) SearchByKeywordOrName(ctx context.Context, query string, limit int) ([]*entity.Business, error) {
	var models []*model.BusinessModel
	if err := repo.db.WithContext(ctx).Raw(`
		SELECT * FROM businesses
		WHERE (
			? = ANY(keywords) OR
			name_lower LIKE ? OR
			to_tsvector('english', name || ' ' || address) @@ plainto_tsquery('english', ?)
		)
		AND status = ?
		ORDER BY registered_at DESC
		LIMIT ?`,
		query, "%"+query+"%", query, entity.StatusActive.String(), limit,
	).Scan(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search businesses")
	}

	return toBusinessDomainList(models), nil
}

// SearchByLocation matches the whole address field case-insensitively.
func (repo *businessRepository) SearchByLocation(ctx context.Context, text string, limit int) ([]*entity.Business, error) {
	var models []*model.BusinessModel
	if err := repo.db.WithContext(ctx).
		Where("address ILIKE ? AND status = ?", "%"+text+"%", entity.StatusActive.String()).
		Order("registered_at DESC").
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search businesses by location")
	}

	return toBusinessDomainList(models), nil
}

func fromBusinessDomain(business *entity.Business) *model.BusinessModel {
	return &model.BusinessModel{
		Name:         business.Name,
		NameLower:    business.NameLower,
		Address:      business.Address,
		Phone:        business.Phone,
		Email:        business.Email,
		Keywords:     pq.StringArray(business.Keywords),
		RegisteredBy: business.RegisteredBy,
		Status:       business.Status.String(),
	}
}

func toBusinessDomain(businessM *model.BusinessModel) *entity.Business {
	return &entity.Business{
		ID:           strconv.FormatUint(uint64(businessM.ID), 10),
		Name:         businessM.Name,
		NameLower:    businessM.NameLower,
		Address:      businessM.Address,
		Phone:        businessM.Phone,
		Email:        businessM.Email,
		Keywords:     []string(businessM.Keywords),
		RegisteredBy: businessM.RegisteredBy,
		RegisteredAt: businessM.RegisteredAt,
		Status:       entity.BusinessStatus(businessM.Status),
	}
}

func toBusinessDomainList(models []*model.BusinessModel) []*entity.Business {
	businesses := make([]*entity.Business, 0, len(models))
	for _, businessM := range models {
		businesses = append(businesses, toBusinessDomain(businessM))
	}

	return businesses
}
