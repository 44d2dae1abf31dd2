package app

import (
	"context"
	"fmt"
	"time"

	"github.com/erwinjamescodes/sinotoriables/internal/domain"
)

// --- Mock implementations ---

type mockCandidateRepo struct {
	listFn    func(ctx context.Context) ([]domain.Candidate, error)
	getByIDFn func(ctx context.Context, candidateID int64) (*domain.Candidate, error)
	createFn  func(ctx context.Context, c domain.NewCandidate) (*domain.Candidate, error)
	updateFn  func(ctx context.Context, candidateID int64, c domain.NewCandidate) (*domain.Candidate, error)
	deleteFn  func(ctx context.Context, candidateID int64) error
}

func (m *mockCandidateRepo) List(ctx context.Context) ([]domain.Candidate, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockCandidateRepo) GetByID(ctx context.Context, candidateID int64) (*domain.Candidate, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, candidateID)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockCandidateRepo) Create(ctx context.Context, c domain.NewCandidate) (*domain.Candidate, error) {
	if m.createFn != nil {
		return m.createFn(ctx, c)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockCandidateRepo) Update(ctx context.Context, candidateID int64, c domain.NewCandidate) (*domain.Candidate, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, candidateID, c)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockCandidateRepo) Delete(ctx context.Context, candidateID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, candidateID)
	}
	return nil
}

type mockLikeRepo struct {
	toggleFn            func(ctx context.Context, candidateID int64, browserID domain.BrowserID) (*domain.ToggleResult, error)
	likedCandidateIDsFn func(ctx context.Context, browserID domain.BrowserID, candidateIDs []int64) ([]int64, error)
}

func (m *mockLikeRepo) Toggle(ctx context.Context, candidateID int64, browserID domain.BrowserID) (*domain.ToggleResult, error) {
	if m.toggleFn != nil {
		return m.toggleFn(ctx, candidateID, browserID)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockLikeRepo) LikedCandidateIDs(ctx context.Context, browserID domain.BrowserID, candidateIDs []int64) ([]int64, error) {
	if m.likedCandidateIDsFn != nil {
		return m.likedCandidateIDsFn(ctx, browserID, candidateIDs)
	}
	return nil, nil
}

type mockAnalyticsRepo struct {
	candidatesByLikesFn   func(ctx context.Context) ([]domain.Candidate, error)
	likeTimestampsSinceFn func(ctx context.Context, since time.Time) ([]time.Time, error)
}

func (m *mockAnalyticsRepo) CandidatesByLikes(ctx context.Context) ([]domain.Candidate, error) {
	if m.candidatesByLikesFn != nil {
		return m.candidatesByLikesFn(ctx)
	}
	return nil, nil
}

func (m *mockAnalyticsRepo) LikeTimestampsSince(ctx context.Context, since time.Time) ([]time.Time, error) {
	if m.likeTimestampsSinceFn != nil {
		return m.likeTimestampsSinceFn(ctx, since)
	}
	return nil, nil
}

type mockAnalyticsCache struct {
	getFn func(ctx context.Context) (*domain.Analytics, error)
	setFn func(ctx context.Context, a *domain.Analytics) error
}

func (m *mockAnalyticsCache) Get(ctx context.Context) (*domain.Analytics, error) {
	if m.getFn != nil {
		return m.getFn(ctx)
	}
	return nil, nil
}

func (m *mockAnalyticsCache) Set(ctx context.Context, a *domain.Analytics) error {
	if m.setFn != nil {
		return m.setFn(ctx, a)
	}
	return nil
}

type mockRateLimiter struct {
	allowFn func(ctx context.Context, browserID domain.BrowserID) (bool, error)
}

func (m *mockRateLimiter) Allow(ctx context.Context, browserID domain.BrowserID) (bool, error) {
	if m.allowFn != nil {
		return m.allowFn(ctx, browserID)
	}
	return true, nil
}
