package router

import (
	"sync"

	"dsr-service/internal/usecase"
	"dsr-service/pkg/logger"
)

// ProfileRouter resolves job list names to their profiles
type ProfileRouter struct {
	mu       sync.RWMutex
	profiles map[string]*usecase.ListProfile
	logger   logger.Logger
}

// NewProfileRouter creates a new profile router
func NewProfileRouter(logger logger.Logger) *ProfileRouter {
	return &ProfileRouter{
		profiles: make(map[string]*usecase.ListProfile),
		logger:   logger,
	}
}

// Register registers a profile under its name. A later registration with
// the same name replaces the earlier one.
func (r *ProfileRouter) Register(profile usecase.ListProfile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[profile.Name] = &profile
	r.logger.Info("Registered job list", "list", profile.Name)
}

// GetProfile returns the profile for name, or nil
func (r *ProfileRouter) GetProfile(name string) *usecase.ListProfile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.profiles[name]
}

// Names returns the registered list names
func (r *ProfileRouter) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}
	return names
}
