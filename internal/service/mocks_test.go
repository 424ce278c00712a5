package service

import (
	"context"
	"io"
	"strings"

	"github.com/stretchr/testify/mock"

	"formcraft/internal/model"
)

// MockFormRepo is a mock implementation of repository.FormRepo
type MockFormRepo struct {
	mock.Mock
}

func (m *MockFormRepo) Create(ctx context.Context, form *model.Form) (string, error) {
	args := m.Called(ctx, form)
	return args.String(0), args.Error(1)
}

func (m *MockFormRepo) GetByID(ctx context.Context, id string) (*model.Form, error) {
	args := m.Called(ctx, id)
	form, _ := args.Get(0).(*model.Form)
	return form, args.Error(1)
}

func (m *MockFormRepo) List(ctx context.Context, limit int64) ([]*model.Form, error) {
	args := m.Called(ctx, limit)
	forms, _ := args.Get(0).([]*model.Form)
	return forms, args.Error(1)
}

// MockResponseRepo is a mock implementation of repository.ResponseRepo
type MockResponseRepo struct {
	mock.Mock
}

func (m *MockResponseRepo) Create(ctx context.Context, response *model.Response) error {
	args := m.Called(ctx, response)
	return args.Error(0)
}

func (m *MockResponseRepo) GetByFormID(ctx context.Context, formID string) ([]*model.Response, error) {
	args := m.Called(ctx, formID)
	responses, _ := args.Get(0).([]*model.Response)
	return responses, args.Error(1)
}

func (m *MockResponseRepo) CountByFormID(ctx context.Context, formID string) (int64, error) {
	args := m.Called(ctx, formID)
	return args.Get(0).(int64), args.Error(1)
}

// MockFormCache is a mock implementation of cache.FormCache
type MockFormCache struct {
	mock.Mock
}

func (m *MockFormCache) Get(ctx context.Context, id string) (*model.Form, error) {
	args := m.Called(ctx, id)
	form, _ := args.Get(0).(*model.Form)
	return form, args.Error(1)
}

func (m *MockFormCache) Set(ctx context.Context, form *model.Form) error {
	args := m.Called(ctx, form)
	return args.Error(0)
}

// MockBroadcaster records live events
type MockBroadcaster struct {
	mock.Mock
}

func (m *MockBroadcaster) BroadcastToForm(formID string, msgType string, payload interface{}) {
	m.Called(formID, msgType, payload)
}

// memStore is an in-memory storage.BlobStore
type memStore struct {
	blobs map[string]string
}

func newMemStore() *memStore {
	return &memStore{blobs: map[string]string{}}
}

func (s *memStore) Put(key string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.blobs[key] = string(data)
	return key, nil
}

func (s *memStore) Get(key string) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(s.blobs[key])), nil
}
