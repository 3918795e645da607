// Package mocks provides mock implementations for testing service orchestration.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our repository interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockUserRepository(ctrl)
//	mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(user, nil)
package mocks

// Generate mock for UserRepository interface from internal/core package.
// This creates MockUserRepository with methods for all UserRepository interface methods:
// Insert, FindByEmail, FindByID, PrincipalExists
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=user_repository_mock.go github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/core UserRepository

// Generate mock for TrackRepository interface from internal/core package.
// This creates MockTrackRepository with methods for all TrackRepository interface methods:
// Create, GetByID, List, GetAudio
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=track_repository_mock.go github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/core TrackRepository

// Generate mock for PlaybackRepository interface from internal/core package.
// This creates MockPlaybackRepository with methods for all PlaybackRepository interface methods:
// Insert, ListByUser
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=playback_repository_mock.go github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/core PlaybackRepository

// Generate mock for CacheRepository interface from internal/core package.
// This creates MockCacheRepository with methods for all CacheRepository interface methods:
// Set, Get, Delete, Health
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=cache_repository_mock.go github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/core CacheRepository

// Generate mock for EventPublisher interface from internal/core package.
// This creates MockEventPublisher with methods for all EventPublisher interface methods:
// Publish
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=event_publisher_mock.go github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/core EventPublisher
