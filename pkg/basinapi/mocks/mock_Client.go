// Package mocks provides test doubles for the basinapi client.
package mocks

import (
	"context"

	"github.com/paulmach/orb/geojson"
	mock "github.com/stretchr/testify/mock"

	"github.com/energyinsights-ai/minai-demo/internal/model"
)

// MockClient is a mock type for the Client interface.
type MockClient struct {
	mock.Mock
}

// TRS provides a mock function with given fields: ctx, radius
func (_m *MockClient) TRS(ctx context.Context, radius float64) (*model.TRSCollection, error) {
	ret := _m.Called(ctx, radius)

	if len(ret) == 0 {
		panic("no return value specified for TRS")
	}

	var r0 *model.TRSCollection
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, float64) (*model.TRSCollection, error)); ok {
		return rf(ctx, radius)
	}
	if rf, ok := ret.Get(0).(func(context.Context, float64) *model.TRSCollection); ok {
		r0 = rf(ctx, radius)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.TRSCollection)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, float64) error); ok {
		r1 = rf(ctx, radius)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Wells provides a mock function with given fields: ctx, radius
func (_m *MockClient) Wells(ctx context.Context, radius float64) (*model.WellCollection, error) {
	ret := _m.Called(ctx, radius)

	if len(ret) == 0 {
		panic("no return value specified for Wells")
	}

	var r0 *model.WellCollection
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, float64) (*model.WellCollection, error)); ok {
		return rf(ctx, radius)
	}
	if rf, ok := ret.Get(0).(func(context.Context, float64) *model.WellCollection); ok {
		r0 = rf(ctx, radius)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.WellCollection)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, float64) error); ok {
		r1 = rf(ctx, radius)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GeoJSON provides a mock function with given fields: ctx
func (_m *MockClient) GeoJSON(ctx context.Context) (*geojson.FeatureCollection, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for GeoJSON")
	}

	var r0 *geojson.FeatureCollection
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) (*geojson.FeatureCollection, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) *geojson.FeatureCollection); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*geojson.FeatureCollection)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Rigs provides a mock function with given fields: ctx
func (_m *MockClient) Rigs(ctx context.Context) ([]model.RigRecord, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Rigs")
	}

	var r0 []model.RigRecord
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]model.RigRecord, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []model.RigRecord); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]model.RigRecord)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// AllWells provides a mock function with given fields: ctx
func (_m *MockClient) AllWells(ctx context.Context) (*model.WellCollection, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for AllWells")
	}

	var r0 *model.WellCollection
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) (*model.WellCollection, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) *model.WellCollection); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.WellCollection)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// AllData provides a mock function with given fields: ctx
func (_m *MockClient) AllData(ctx context.Context) ([]model.DataRecord, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for AllData")
	}

	var r0 []model.DataRecord
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]model.DataRecord, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []model.DataRecord); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]model.DataRecord)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockClient creates a new instance of MockClient.
func NewMockClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockClient {
	mock := &MockClient{}
	mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
