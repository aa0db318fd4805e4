package service

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/model"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/repository"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/table"
)

// LookupSet which reference lists a table needs to resolve ids into names
type LookupSet uint8

const (
	NeedRegions LookupSet = 1 << iota
	NeedSubdistricts
	NeedEmployees
	NeedPartners
	NeedWalis
)

// Lookups id → display name maps, joined into table rows
type Lookups struct {
	Regions      map[int64]string
	Subdistricts map[int64]string
	Employees    map[int64]string
	Partners     map[int64]string
	Walis        map[int64]string
}

// Name resolves id in m, empty for a nil id or an unknown one
func Name(m map[int64]string, id *int64) string {
	if id == nil || m == nil {
		return ""
	}
	return m[*id]
}

// Options turns m into filter options sorted by label
func Options(m map[int64]string) []table.FilterOption {
	out := make([]table.FilterOption, 0, len(m))
	for _, name := range m {
		out = append(out, table.FilterOption{Label: name, Value: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	// names can repeat across ids
	dedup := out[:0]
	for i, o := range out {
		if i > 0 && o.Value == out[i-1].Value {
			continue
		}
		dedup = append(dedup, o)
	}
	return dedup
}

// LoadLookups fetches every list in need concurrently. Any failure fails the whole load.
func LoadLookups(ctx context.Context, repo *repository.Repository, need LookupSet) (*Lookups, error) {
	l := &Lookups{}
	g, ctx := errgroup.WithContext(ctx)

	if need&NeedRegions != 0 {
		g.Go(func() error {
			rows, err := repo.Region.List(ctx)
			if err != nil {
				return fmt.Errorf("load regions: %w", err)
			}
			l.Regions = index(rows, func(r model.Region) (int64, string) { return r.RegionID, r.RegionName })
			return nil
		})
	}
	if need&NeedSubdistricts != 0 {
		g.Go(func() error {
			rows, err := repo.Subdistrict.List(ctx)
			if err != nil {
				return fmt.Errorf("load subdistricts: %w", err)
			}
			l.Subdistricts = index(rows, func(s model.Subdistrict) (int64, string) { return s.SubdistrictID, s.SubdistrictName })
			return nil
		})
	}
	if need&NeedEmployees != 0 {
		g.Go(func() error {
			rows, err := repo.Employee.List(ctx)
			if err != nil {
				return fmt.Errorf("load employees: %w", err)
			}
			l.Employees = index(rows, func(e model.Employee) (int64, string) { return e.EmployeeID, e.EmployeeName })
			return nil
		})
	}
	if need&NeedPartners != 0 {
		g.Go(func() error {
			rows, err := repo.Partner.List(ctx)
			if err != nil {
				return fmt.Errorf("load partners: %w", err)
			}
			l.Partners = index(rows, func(p model.Partner) (int64, string) { return p.PartnerID, p.PartnerName })
			return nil
		})
	}
	if need&NeedWalis != 0 {
		g.Go(func() error {
			rows, err := repo.Wali.List(ctx)
			if err != nil {
				return fmt.Errorf("load walis: %w", err)
			}
			l.Walis = index(rows, func(w model.Wali) (int64, string) { return w.WaliID, w.WaliName })
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return l, nil
}

func index[T any](rows []T, kv func(T) (int64, string)) map[int64]string {
	m := make(map[int64]string, len(rows))
	for _, r := range rows {
		k, v := kv(r)
		m[k] = v
	}
	return m
}
