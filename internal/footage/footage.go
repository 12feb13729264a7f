// Package footage derives per-formation footage mappings from a TRS feature
// collection.
package footage

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/energyinsights-ai/minai-demo/internal/model"
)

// DefaultSelectedTRS is the section the dashboard opens on.
const DefaultSelectedTRS = "14-04N-65W"

// FormationFootage maps an interval to its footage, in gateway order.
type FormationFootage = model.OrderedMap[float64]

// SectionFootage maps an interval to its footage and well count for one
// section, in gateway order.
type SectionFootage = model.OrderedMap[model.IntervalStat]

// EmptyDataError reports a collection with no features.
type EmptyDataError struct{}

func (e *EmptyDataError) Error() string { return "footage: no features in data" }

// LookupMissError reports a selected section that is not in the collection.
type LookupMissError struct {
	TRS string
}

func (e *LookupMissError) Error() string {
	return fmt.Sprintf("footage: section %q not found", e.TRS)
}

// AverageFormationFootage reads the basin-wide averages. Every feature
// carries the same pre-aggregated avg_interval_footages, so only the first
// one is consulted.
func AverageFormationFootage(fc *model.TRSCollection) (FormationFootage, error) {
	var out FormationFootage
	if fc.Len() == 0 {
		return out, &EmptyDataError{}
	}
	fc.Features[0].Properties.AvgIntervalFootages.Each(func(interval string, s model.IntervalStat) {
		out.Set(interval, s.Footage)
	})
	return out, nil
}

// SelectedTRSFootage returns the footage per interval of section trs.
func SelectedTRSFootage(fc *model.TRSCollection, trs string) (FormationFootage, error) {
	var out FormationFootage
	f, err := findSection(fc, trs)
	if err != nil {
		return out, err
	}
	f.Properties.IntervalFootages.Each(func(interval string, s model.IntervalStat) {
		out.Set(interval, s.Footage)
	})
	return out, nil
}

// SelectedSectionFootage returns footage and well count per interval of
// section trs.
func SelectedSectionFootage(fc *model.TRSCollection, trs string) (SectionFootage, error) {
	f, err := findSection(fc, trs)
	if err != nil {
		return SectionFootage{}, err
	}
	return f.Properties.IntervalFootages.Clone(), nil
}

func findSection(fc *model.TRSCollection, trs string) (*model.TRSFeature, error) {
	if fc.Len() == 0 {
		return nil, &EmptyDataError{}
	}
	for i := range fc.Features {
		if fc.Features[i].Properties.TRS.String() == trs {
			return &fc.Features[i], nil
		}
	}
	return nil, &LookupMissError{TRS: trs}
}

// Result holds the three footage mappings derived from one TRS collection.
type Result struct {
	Average         FormationFootage `json:"average" yaml:"average"`
	SelectedTRS     FormationFootage `json:"selected_trs" yaml:"selected_trs"`
	SelectedSection SectionFootage   `json:"selected_section" yaml:"selected_section"`
}

// Compute derives all three mappings. Soft failures leave the affected
// mapping empty, are logged, and are returned joined for callers that count
// them; the Result is always usable.
func Compute(fc *model.TRSCollection, trs string) (Result, error) {
	var (
		res  Result
		errs []error
		err  error
	)

	if res.Average, err = AverageFormationFootage(fc); err != nil {
		zap.L().Warn("footage: average unavailable", zap.Error(err))
		errs = append(errs, err)
	}
	if res.SelectedTRS, err = SelectedTRSFootage(fc, trs); err != nil {
		zap.L().Warn("footage: selected section unavailable",
			zap.String("trs", trs),
			zap.Error(err),
		)
		errs = append(errs, err)
	}
	// Same lookup as SelectedTRS; its failure is already logged.
	res.SelectedSection, _ = SelectedSectionFootage(fc, trs)

	return res, errors.Join(errs...)
}

// Clone returns a copy sharing no storage with r.
func (r Result) Clone() Result {
	return Result{
		Average:         r.Average.Clone(),
		SelectedTRS:     r.SelectedTRS.Clone(),
		SelectedSection: r.SelectedSection.Clone(),
	}
}

// IsEmptyData reports whether err carries an *EmptyDataError.
func IsEmptyData(err error) bool {
	var e *EmptyDataError
	return errors.As(err, &e)
}

// IsLookupMiss reports whether err carries a *LookupMissError.
func IsLookupMiss(err error) bool {
	var e *LookupMissError
	return errors.As(err, &e)
}
