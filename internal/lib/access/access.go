// Package access decides which cross-origin annotations a response carries.
//
// The gate never rejects a request. A denied origin only means the response
// goes out without Access-Control-* headers and the browser refuses to expose it.
package access

import (
	"net/http"
	"slices"
	"strings"
)

const (
	HeaderOrigin       = "Origin"
	HeaderAllowOrigin  = "Access-Control-Allow-Origin"
	HeaderAllowMethods = "Access-Control-Allow-Methods"
)

// PreflightMethods are advertised on an allowed preflight for a single movie.
var PreflightMethods = []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete}

type AccessDecision struct {
	Allowed bool
	// Origin is echoed verbatim in Access-Control-Allow-Origin when Allowed.
	Origin string
	// Methods is non-empty only for an allowed preflight.
	Methods []string
}

// Decide allows an absent origin (same-origin or non-browser clients) and any
// origin present in allowlist. Matching is exact.
func Decide(origin string, allowlist []string) AccessDecision {
	if origin == "" || slices.Contains(allowlist, origin) {
		return AccessDecision{Allowed: true, Origin: origin}
	}
	return AccessDecision{}
}

// Preflight is Decide plus the advertised methods.
func Preflight(origin string, allowlist []string) AccessDecision {
	d := Decide(origin, allowlist)
	if d.Allowed {
		d.Methods = slices.Clone(PreflightMethods)
	}
	return d
}

// Apply writes the decision's headers to h. A denied decision writes nothing.
func (d AccessDecision) Apply(h http.Header) {
	if !d.Allowed {
		return
	}
	h.Set(HeaderAllowOrigin, d.Origin)
	if len(d.Methods) > 0 {
		h.Set(HeaderAllowMethods, strings.Join(d.Methods, ", "))
	}
	h.Add("Vary", HeaderOrigin)
}

type Gate struct {
	allowlist []string
}

func NewGate(allowlist []string) *Gate {
	return &Gate{allowlist: slices.Clone(allowlist)}
}

func (g *Gate) Allowlist() []string {
	return slices.Clone(g.allowlist)
}

// Simple annotates responses to GET/DELETE requests.
func (g *Gate) Simple(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		Decide(r.Header.Get(HeaderOrigin), g.allowlist).Apply(w.Header())
		next.ServeHTTP(w, r)
	})
}

// PreflightHandler answers a preflight probe with 200 and an empty body.
func (g *Gate) PreflightHandler(w http.ResponseWriter, r *http.Request) {
	Preflight(r.Header.Get(HeaderOrigin), g.allowlist).Apply(w.Header())
	w.WriteHeader(http.StatusOK)
}
