package firestore

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"

	"dirbot/internal/domain/entity"
	"dirbot/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"github.com/pkg/errors"
)

// scanCap bounds the document fetches behind operations Firestore has no
// native query for (address substring, keyword frequency).
const scanCap = 500

// namePrefixLimit caps the secondary name-prefix query; the presenter merges
// and de-duplicates both result sets.
const namePrefixLimit = 5

// businessDoc mirrors a document in the businesses collection.
type businessDoc struct {
	Name         string    `firestore:"name"`
	NameLower    string    `firestore:"name_lower"`
	Address      string    `firestore:"address"`
	Phone        string    `firestore:"phone"`
	Email        string    `firestore:"email"`
	Keywords     []string  `firestore:"keywords"`
	RegisteredBy string    `firestore:"registered_by"`
	RegisteredAt time.Time `firestore:"registered_at,serverTimestamp"`
	Status       string    `firestore:"status"`
}

// businessRepository implements repository.BusinessRepository on Firestore.
type businessRepository struct {
	client     *firestore.Client
	collection string
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(client *firestore.Client, collection string) repository.BusinessRepository {
	return &businessRepository{
		client:     client,
		collection: collection,
	}
}

func (repo *businessRepository) businesses() *firestore.CollectionRef {
	return repo.client.Collection(repo.collection)
}

func (repo *businessRepository) activeQuery() firestore.Query {
	return repo.businesses().Where("status", "==", entity.StatusActive.String())
}

// Insert adds a new document; the registered_at field is a server timestamp,
// so the write either fully commits or not at all.
func (repo *businessRepository) Insert(ctx context.Context, business *entity.Business) (string, error) {
	ref, _, err := repo.businesses().Add(ctx, fromBusinessDomain(business))
	if err != nil {
		return "", errors.Wrap(err, "failed to insert business")
	}

	business.ID = ref.ID

	return ref.ID, nil
}

// Count runs a server-side count aggregation over active documents.
func (repo *businessRepository) Count(ctx context.Context) (int64, error) {
	query := repo.activeQuery()
	result, err := query.NewAggregationQuery().WithCount("count").Get(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count businesses")
	}

	value, ok := result["count"].(*firestorepb.Value)
	if !ok {
		return 0, errors.New("unexpected count aggregation result")
	}

	return value.GetIntegerValue(), nil
}

// Recent returns up to n most recently registered active businesses.
func (repo *businessRepository) Recent(ctx context.Context, n int) ([]repository.RecentBusiness, error) {
	snaps, err := repo.activeQuery().
		OrderBy("registered_at", firestore.Desc).
		Limit(n).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load recent businesses")
	}

	recent := make([]repository.RecentBusiness, 0, len(snaps))
	for _, snap := range snaps {
		var doc businessDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode business document")
		}
		recent = append(recent, repository.RecentBusiness{
			Name:         doc.Name,
			RegisteredAt: doc.RegisteredAt,
		})
	}

	return recent, nil
}

// PopularKeywords counts keyword occurrences client-side over a bounded
// fetch; Firestore has no unnest/group aggregation.
func (repo *businessRepository) PopularKeywords(ctx context.Context, n int) ([]repository.KeywordCount, error) {
	snaps, err := repo.activeQuery().Limit(scanCap).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan businesses for keywords")
	}

	counts := make(map[string]int64)
	for _, snap := range snaps {
		var doc businessDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode business document")
		}
		for _, keyword := range doc.Keywords {
			counts[keyword]++
		}
	}

	keywords := make([]repository.KeywordCount, 0, len(counts))
	for keyword, count := range counts {
		keywords = append(keywords, repository.KeywordCount{Keyword: keyword, Count: count})
	}
	sortKeywordCounts(keywords)

	if len(keywords) > n {
		keywords = keywords[:n]
	}

	return keywords, nil
}

// SearchByKeywordOrName unions an array-contains query with a name_lower
// prefix range query. The presenter de-duplicates and ranks the union.
func (repo *businessRepository) SearchByKeywordOrName(ctx context.Context, query string, limit int) ([]*entity.Business, error) {
	keywordSnaps, err := repo.activeQuery().
		Where("keywords", "array-contains", query).
		Limit(limit).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to search businesses by keyword")
	}

	nameSnaps, err := repo.activeQuery().
		Where("name_lower", ">=", query).
		Where("name_lower", "<=", query+"\uf8ff").
		Limit(namePrefixLimit).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to search businesses by name")
	}

	businesses := make([]*entity.Business, 0, len(keywordSnaps)+len(nameSnaps))
	for _, snap := range append(keywordSnaps, nameSnaps...) {
		business, err := toBusinessDomain(snap)
		if err != nil {
			return nil, err
		}
		businesses = append(businesses, business)
	}

	if len(businesses) > limit {
		businesses = businesses[:limit]
	}

	return businesses, nil
}

// SearchByLocation filters a bounded, recency-ordered fetch by address
// substring; Firestore cannot express substring matches as a query.
func (repo *businessRepository) SearchByLocation(ctx context.Context, text string, limit int) ([]*entity.Business, error) {
	snaps, err := repo.activeQuery().
		OrderBy("registered_at", firestore.Desc).
		Limit(scanCap).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan businesses by location")
	}

	needle := strings.ToLower(text)
	businesses := make([]*entity.Business, 0, limit)
	for _, snap := range snaps {
		business, err := toBusinessDomain(snap)
		if err != nil {
			return nil, err
		}
		if !strings.Contains(strings.ToLower(business.Address), needle) {
			continue
		}
		businesses = append(businesses, business)
		if len(businesses) == limit {
			break
		}
	}

	return businesses, nil
}

// sortKeywordCounts orders by count descending, keyword ascending on ties.
func sortKeywordCounts(keywords []repository.KeywordCount) {
	slices.SortFunc(keywords, func(a, b repository.KeywordCount) int {
		if a.Count != b.Count {
			return cmp.Compare(b.Count, a.Count)
		}

		return cmp.Compare(a.Keyword, b.Keyword)
	})
}

func fromBusinessDomain(business *entity.Business) *businessDoc {
	return &businessDoc{
		Name:         business.Name,
		NameLower:    business.NameLower,
		Address:      business.Address,
		Phone:        business.Phone,
		Email:        business.Email,
		Keywords:     business.Keywords,
		RegisteredBy: business.RegisteredBy,
		Status:       business.Status.String(),
	}
}

func toBusinessDomain(snap *firestore.DocumentSnapshot) (*entity.Business, error) {
	var doc businessDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode business document")
	}

	return &entity.Business{
		ID:           snap.Ref.ID,
		Name:         doc.Name,
		NameLower:    doc.NameLower,
		Address:      doc.Address,
		Phone:        doc.Phone,
		Email:        doc.Email,
		Keywords:     doc.Keywords,
		RegisteredBy: doc.RegisteredBy,
		RegisteredAt: doc.RegisteredAt,
		Status:       entity.BusinessStatus(doc.Status),
	}, nil
}
