package controller

import (
	"net/http"
	"net/http/pprof"
)

// profiles are the runtime profiles served by name.
//
//nolint: gochecknoglobals
var profiles = []string{"allocs", "block", "goroutine", "heap", "mutex", "threadcreate"}

// PprofMux returns an http.ServeMux with net/http/pprof handlers registered
// at the root. Mount it with http.StripPrefix under a debug path.
func PprofMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/", pprof.Index)
	mux.HandleFunc("/cmdline", pprof.Cmdline)
	mux.HandleFunc("/profile", pprof.Profile)
	mux.HandleFunc("/symbol", pprof.Symbol)
	mux.HandleFunc("/trace", pprof.Trace)
	for _, name := range profiles {
		mux.Handle("/"+name, pprof.Handler(name))
	}

	return mux
}
