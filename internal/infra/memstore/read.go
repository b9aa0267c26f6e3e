package memstore

import (
	"bytes"
	"cmp"
	"context"
	"slices"
	"strings"
	"time"

	"lending-ledger/internal/domain/lending"
	"lending-ledger/internal/domain/user"
	"lending-ledger/internal/infra"
	"lending-ledger/internal/usecase/queries"
	"lending-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

// ItemReader, RequestReader and UserReader are the read-side views of a
// Store. They see the last committed state.
type ItemReader struct{ store *Store }
type RequestReader struct{ store *Store }
type UserReader struct{ store *Store }

func (s *Store) Items() *ItemReader       { return &ItemReader{store: s} }
func (s *Store) Requests() *RequestReader { return &RequestReader{store: s} }
func (s *Store) Users() *UserReader       { return &UserReader{store: s} }

func (r *ItemReader) FindByID(_ context.Context, id uuid.UUID) (*queries.ItemView, error) {
	rec, ok := r.store.read().items[id]
	if !ok {
		return nil, infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return rec.toView(), nil
}

func (r *ItemReader) List(_ context.Context, filter queries.ItemFilter) ([]*queries.ItemView, error) {
	search := strings.ToLower(filter.Search)
	views := make([]*queries.ItemView, 0)
	for _, rec := range r.store.read().items {
		if filter.Category != "" && rec.Category != filter.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(rec.Name), search) &&
			!strings.Contains(strings.ToLower(rec.Category), search) {
			continue
		}
		views = append(views, rec.toView())
	}
	slices.SortFunc(views, func(a, b *queries.ItemView) int {
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return bytes.Compare(a.ID[:], b.ID[:])
	})
	return views, nil
}

func (r *ItemReader) Totals(_ context.Context) (*queries.InventoryTotals, error) {
	totals := &queries.InventoryTotals{}
	for _, rec := range r.store.read().items {
		totals.ItemCount++
		totals.TotalQuantity += rec.Quantity
		totals.TotalAvailable += rec.Available
	}
	return totals, nil
}

func (r *RequestReader) FindByID(_ context.Context, id uuid.UUID) (*queries.RequestView, error) {
	rec, ok := r.store.read().requests[id]
	if !ok {
		return nil, infra.WrapRepoErr("lending request not found", nil, infra.KindNotFound)
	}
	return rec.toView(), nil
}

func (r *RequestReader) List(_ context.Context, filter queries.RequestFilter, after *queries.Keyset, limit int) ([]*queries.RequestView, error) {
	views := make([]*queries.RequestView, 0)
	for _, rec := range r.store.read().requests {
		if filter.RequesterID != nil && rec.RequesterID != *filter.RequesterID {
			continue
		}
		if filter.ItemID != nil && rec.ItemID != *filter.ItemID {
			continue
		}
		if filter.Status != nil && rec.Status != filter.Status.String() {
			continue
		}
		if after != nil && compareNewestFirst(rec.CreatedAt, rec.ID, after.CreatedAt, after.ID) <= 0 {
			continue
		}
		views = append(views, rec.toView())
	}
	slices.SortFunc(views, func(a, b *queries.RequestView) int {
		return compareNewestFirst(a.CreatedAt, a.ID, b.CreatedAt, b.ID)
	})
	if limit > 0 && len(views) > limit {
		views = views[:limit]
	}
	return views, nil
}

func (r *RequestReader) CountByStatus(_ context.Context) (map[lending.Status]int, error) {
	counts := make(map[lending.Status]int)
	for _, rec := range r.store.read().requests {
		counts[lending.Status(rec.Status)]++
	}
	return counts, nil
}

func (r *RequestReader) CountOverdue(_ context.Context, now time.Time) (int, error) {
	n := 0
	for _, rec := range r.store.read().requests {
		if rec.Status == lending.StatusApproved.String() && rec.DueAt != nil && rec.DueAt.Before(now) {
			n++
		}
	}
	return n, nil
}

func (r *UserReader) FindByID(_ context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	rec, ok := r.store.read().users[id]
	if !ok {
		return nil, infra.NotFound("user not found", nil, user.ErrNotFound)
	}
	return rec.toView(), nil
}

func (r *UserReader) FindByEmail(_ context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	for _, rec := range r.store.read().users {
		if strings.EqualFold(rec.Email, email) {
			return rec.toView(), rec.PasswordHash, nil
		}
	}
	return nil, "", infra.NotFound("user not found", nil, user.ErrNotFound)
}

func (r *UserReader) Resolve(ctx context.Context, id uuid.UUID) (*shared.Actor, error) {
	view, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !view.IsActive {
		return nil, infra.NotFound("user is inactive", nil, user.ErrNotFound)
	}
	return &shared.Actor{
		ID:          view.ID,
		DisplayName: view.DisplayName(),
		Group:       view.Group,
		Role:        user.Role(view.Role),
	}, nil
}

// compareNewestFirst orders by created_at DESC, id DESC at microsecond
// precision, matching the Postgres keyset.
func compareNewestFirst(aAt time.Time, aID uuid.UUID, bAt time.Time, bID uuid.UUID) int {
	aAt, bAt = aAt.Truncate(time.Microsecond), bAt.Truncate(time.Microsecond)
	if c := bAt.Compare(aAt); c != 0 {
		return c
	}
	return bytes.Compare(bID[:], aID[:])
}

func (r ItemRecord) toView() *queries.ItemView {
	var imageURL *string
	if r.ImageURL != "" {
		u := r.ImageURL
		imageURL = &u
	}
	return &queries.ItemView{
		ID:        r.ID,
		Name:      r.Name,
		Category:  r.Category,
		ImageURL:  imageURL,
		Quantity:  r.Quantity,
		Available: r.Available,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (r RequestRecord) toView() *queries.RequestView {
	return &queries.RequestView{
		ID:             r.ID,
		RequesterID:    r.RequesterID,
		RequesterName:  r.RequesterName,
		RequesterGroup: r.RequesterGroup,
		ItemID:         r.ItemID,
		ItemName:       r.ItemName,
		Justification:  r.Justification,
		Status:         r.Status,
		DueAt:          r.DueAt,
		ApprovedBy:     r.ApprovedBy,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func (r UserRecord) toView() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:        r.ID,
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Group:     r.Group,
		Role:      r.Role,
		IsActive:  r.IsActive,
	}
}
