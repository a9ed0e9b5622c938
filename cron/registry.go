package cron

import (
	"sync"

	"menu.GO/core/registry"
)

// Job pairs a cron schedule with its run function.
type Job struct {
	Schedule string
	Run      func(...string)
}

var mu sync.Mutex

func registered() map[string]Job {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryCron); ok && v != nil {
		return v.(map[string]Job)
	}
	return make(map[string]Job)
}

// Register adds a named job. Call from init() in custom packages or at wiring
// time; duplicate names and post-lock registration both panic.
func Register(name, schedule string, run func(...string)) {
	mu.Lock()
	defer mu.Unlock()
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryCron) {
		panic("cron/registry: locked (register only during init before StartCron)")
	}
	jobs := registered()
	if _, ok := jobs[name]; ok {
		panic("cron/registry: duplicate job " + name)
	}
	jobs[name] = Job{Schedule: schedule, Run: run}
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryCron, jobs)
}

// Unregister removes a job and clears the lock. Tests only.
func Unregister(name string) {
	mu.Lock()
	defer mu.Unlock()
	registry.GlobalRegistry.UnlockForTesting(registry.KeyRegistryCron)
	jobs := registered()
	delete(jobs, name)
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryCron, jobs)
}

// Jobs returns a copy of the registered jobs, locking the registry on first
// call so the scheduler sees a stable set.
func Jobs() map[string]Job {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]Job, len(registered()))
	for name, j := range registered() {
		out[name] = j
	}
	if !registry.GlobalRegistry.IsLocked(registry.KeyRegistryCron) {
		registry.GlobalRegistry.Lock(registry.KeyRegistryCron)
	}
	return out
}
