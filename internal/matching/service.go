package matching

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MrJamesThe3rd/roommapper/internal/fuzzy"
)

var ErrNotFound = errors.New("property not found")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=matching
type ReferenceRepository interface {
	// RoomsForProperty returns the reference rows of a property, normalized.
	// Unknown properties yield ErrNotFound.
	RoomsForProperty(ctx context.Context, propertyID string) ([]PropertyRoom, error)
}

type Config struct {
	Threshold       int
	Scorer          fuzzy.Scorer
	BulkConcurrency int
}

func DefaultConfig() Config {
	return Config{
		Threshold:       fuzzy.DefaultThreshold,
		Scorer:          fuzzy.TokenSortRatio,
		BulkConcurrency: 4,
	}
}

type Service struct {
	repo       ReferenceRepository
	normalizer Normalizer
	cfg        Config
}

func NewService(repo ReferenceRepository, normalizer Normalizer, cfg Config) *Service {
	if cfg.Scorer == nil {
		cfg.Scorer = fuzzy.TokenSortRatio
	}

	if cfg.BulkConcurrency < 1 {
		cfg.BulkConcurrency = 1
	}

	return &Service{repo: repo, normalizer: normalizer, cfg: cfg}
}

// SupplierMatch is a supplier room attached to a reference room.
type SupplierMatch struct {
	Supplier SupplierRoom
	Score    int
}

// Group is a reference room with every supplier room mapped onto it.
type Group[R Record] struct {
	Reference R
	Matches   []SupplierMatch
}

type CatalogResult struct {
	PropertyID         string
	Groups             []Group[ReferenceRoom]
	UnmatchedReference []ReferenceRoom
	UnmatchedSupplier  []SupplierRoom
}

type PropertyResult struct {
	PropertyID        string
	Groups            []Group[PropertyRoom]
	UnmatchedSupplier []SupplierRoom
}

// BulkItem holds the outcome of one bulk entry. Exactly one field is set.
type BulkItem struct {
	Result *CatalogResult
	Err    error
}

// MatchFullCatalog maps every supplier room of data onto the reference catalog
// sent with it.
func (s *Service) MatchFullCatalog(ctx context.Context, data RoomData) (*CatalogResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	refs, err := s.referenceRooms(data.Reference)
	if err != nil {
		return nil, err
	}

	sups, err := s.supplierRooms(data.Suppliers)
	if err != nil {
		return nil, err
	}

	p := PairRooms(refs, sups, s.cfg.Threshold, s.cfg.Scorer)

	return &CatalogResult{
		PropertyID:         data.Reference.PropertyID,
		Groups:             groupPairs(p.Matched),
		UnmatchedReference: p.UnmatchedReference,
		UnmatchedSupplier:  p.UnmatchedSupplier,
	}, nil
}

// MatchForProperty maps supplier rooms onto the stored reference rows of one
// property. Only supplier rooms are reported as unmatched.
func (s *Service) MatchForProperty(ctx context.Context, propertyID string, suppliers []SupplierCatalog) (*PropertyResult, error) {
	rows, err := s.repo.RoomsForProperty(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("loading reference rooms for %s: %w", propertyID, err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("loading reference rooms for %s: %w", propertyID, ErrNotFound)
	}

	sups, err := s.supplierRooms(suppliers)
	if err != nil {
		return nil, err
	}

	p := PairRooms(rows, sups, s.cfg.Threshold, s.cfg.Scorer)

	return &PropertyResult{
		PropertyID:        propertyID,
		Groups:            groupPairs(p.Matched),
		UnmatchedSupplier: p.UnmatchedSupplier,
	}, nil
}

// MatchBulk runs MatchFullCatalog for every entry of batch. The returned slice
// lines up with batch; a failing entry only carries its own error.
func (s *Service) MatchBulk(ctx context.Context, batch []RoomData) []BulkItem {
	items := make([]BulkItem, len(batch))

	var g errgroup.Group

	g.SetLimit(s.cfg.BulkConcurrency)

	for i, data := range batch {
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					items[i] = BulkItem{Err: fmt.Errorf("matching entry %d: %v", i, r)}
				}
			}()

			res, err := s.MatchFullCatalog(ctx, data)
			if err != nil {
				items[i] = BulkItem{Err: fmt.Errorf("matching entry %d: %w", i, err)}
				return nil
			}

			items[i] = BulkItem{Result: res}

			return nil
		})
	}

	_ = g.Wait()

	return items
}

func (s *Service) referenceRooms(catalog ReferenceCatalog) ([]ReferenceRoom, error) {
	normalized, err := s.normalize(catalog.Rooms)
	if err != nil {
		return nil, fmt.Errorf("normalizing reference rooms: %w", err)
	}

	rooms := make([]ReferenceRoom, len(catalog.Rooms))
	for i, room := range catalog.Rooms {
		rooms[i] = ReferenceRoom{
			PropertyID:     catalog.PropertyID,
			PropertyName:   catalog.PropertyName,
			RoomID:         room.ID,
			RoomName:       room.Name,
			NormalizedName: normalized[i],
		}
	}

	return rooms, nil
}

func (s *Service) supplierRooms(catalogs []SupplierCatalog) ([]SupplierRoom, error) {
	var (
		rooms []SupplierRoom
		infos []RoomInfo
	)

	for _, catalog := range catalogs {
		for _, room := range catalog.Rooms {
			rooms = append(rooms, SupplierRoom{
				SupplierID: catalog.SupplierID,
				RoomID:     room.ID,
				RoomName:   room.Name,
			})
			infos = append(infos, room)
		}
	}

	normalized, err := s.normalize(infos)
	if err != nil {
		return nil, fmt.Errorf("normalizing supplier rooms: %w", err)
	}

	for i := range rooms {
		rooms[i].NormalizedName = normalized[i]
	}

	return rooms, nil
}

func (s *Service) normalize(rooms []RoomInfo) ([]string, error) {
	names := make([]string, len(rooms))
	for i, room := range rooms {
		names[i] = room.Name
	}

	return s.normalizer.NormalizeAll(names)
}

// groupPairs collects pairs by reference room, keeping the order in which
// reference rooms first appear.
func groupPairs[R Record](pairs []Pair[R, SupplierRoom]) []Group[R] {
	index := make(map[Key]int)

	var groups []Group[R]

	for _, p := range pairs {
		key := p.Reference.Key()

		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group[R]{Reference: p.Reference})
		}

		groups[i].Matches = append(groups[i].Matches, SupplierMatch{Supplier: p.Supplier, Score: p.Score})
	}

	return groups
}
