package app

import (
	"flag"

	"github.com/pkg/profile"
)

type nopStop struct{}

func (nopStop) Stop() {}

type profileFlags struct {
	profPath string
	prof     string
}

func (f *profileFlags) setFlags(fs *flag.FlagSet) {
	fs.StringVar(&f.profPath, "profiledir", "", "turn profiling on and write profiles to this directory")
	fs.StringVar(&f.prof, "profile", "cpu", "resource to profile (possible values: cpu, mem, mutex, block)")
}

func (f *profileFlags) setupProfiling() interface {
	Stop()
} {
	if f.profPath == "" {
		return nopStop{}
	}
	opts := []func(*profile.Profile){profile.ProfilePath(f.profPath), profile.NoShutdownHook}
	switch f.prof {
	case "cpu":
		opts = append(opts, profile.CPUProfile)
	case "mem":
		opts = append(opts, profile.MemProfile)
	case "mutex":
		opts = append(opts, profile.MutexProfile)
	case "block":
		opts = append(opts, profile.BlockProfile)
	default:
		// ignore
	}
	return profile.Start(opts...)
}
