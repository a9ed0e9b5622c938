package cron

import (
	"testing"

	"menu.GO/core/registry"
)

func TestRegister_Jobs(t *testing.T) {
	registry.GlobalRegistry.UnlockForTesting(registry.KeyRegistryCron)
	defer Unregister("testjob1")

	ran := false
	Register("testjob1", "@every 1m", func(args ...string) { ran = true })

	jobs := Jobs()
	j, ok := jobs["testjob1"]
	if !ok {
		t.Fatal("Jobs should contain testjob1")
	}
	if j.Schedule != "@every 1m" {
		t.Errorf("Schedule = %q, want @every 1m", j.Schedule)
	}
	j.Run()
	if !ran {
		t.Error("job func should run")
	}
}

func TestRegister_Duplicate_Panics(t *testing.T) {
	registry.GlobalRegistry.UnlockForTesting(registry.KeyRegistryCron)
	Register("dupjob", "@hourly", func(args ...string) {})
	defer Unregister("dupjob")

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register: want panic")
		}
	}()
	Register("dupjob", "@hourly", func(args ...string) {})
}

func TestRegister_AfterLock_Panics(t *testing.T) {
	registry.GlobalRegistry.UnlockForTesting(registry.KeyRegistryCron)
	Jobs() // locks
	defer registry.GlobalRegistry.UnlockForTesting(registry.KeyRegistryCron)

	defer func() {
		if recover() == nil {
			t.Error("Register after lock: want panic")
		}
	}()
	Register("latejob", "@hourly", func(args ...string) {})
}
