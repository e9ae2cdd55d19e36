package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofPath is where PprofMux serves its handlers. pprof.Index resolves named
// profiles relative to this exact prefix, so the mux must be mounted unstripped.
const PprofPath = "/debug/pprof/"

// PprofMux returns an http.ServeMux with net/http/pprof handlers registered
// under PprofPath.
func PprofMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc(PprofPath, pprof.Index)
	mux.HandleFunc(PprofPath+"cmdline", pprof.Cmdline)
	mux.HandleFunc(PprofPath+"profile", pprof.Profile)
	mux.HandleFunc(PprofPath+"symbol", pprof.Symbol)
	mux.HandleFunc(PprofPath+"trace", pprof.Trace)

	return mux
}
