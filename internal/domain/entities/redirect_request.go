package entities

import (
	"net/url"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

type HTTPMethod string

const (
	MethodGet  HTTPMethod = "GET"
	MethodPost HTTPMethod = "POST"
)

// ExtraContext carries per-checkout values supplied by the caller.
// CancelURL and CaptureImmediately are part of the contract but do not
// influence the 2Checkout payload.
type ExtraContext struct {
	ReturnURL          string
	CancelURL          string
	CaptureImmediately bool
}

// Parameters is a string map that remembers insertion order. Setting an
// existing key replaces its value in place.
type Parameters struct {
	pairs *orderedmap.OrderedMap[string, string]
}

func NewParameters() *Parameters {
	return &Parameters{pairs: orderedmap.New[string, string]()}
}

func (p *Parameters) Set(key, value string) {
	if p.pairs == nil {
		p.pairs = orderedmap.New[string, string]()
	}
	p.pairs.Set(key, value)
}

func (p *Parameters) Get(key string) (string, bool) {
	if p.pairs == nil {
		return "", false
	}
	return p.pairs.Get(key)
}

func (p *Parameters) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

func (p *Parameters) Len() int {
	if p.pairs == nil {
		return 0
	}
	return p.pairs.Len()
}

// Keys returns the keys in insertion order.
func (p *Parameters) Keys() []string {
	out := make([]string, 0, p.Len())
	if p.pairs == nil {
		return out
	}
	for pair := p.pairs.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

// Encode renders the parameters as a query string in insertion order.
func (p *Parameters) Encode() string {
	if p.pairs == nil {
		return ""
	}
	var b strings.Builder
	for pair := p.pairs.Oldest(); pair != nil; pair = pair.Next() {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(pair.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(pair.Value))
	}
	return b.String()
}

// MarshalJSON writes a JSON object whose members follow insertion order.
func (p *Parameters) MarshalJSON() ([]byte, error) {
	if p.pairs == nil {
		return []byte("{}"), nil
	}
	return p.pairs.MarshalJSON()
}

// RedirectRequest describes the request the payer's browser must make to reach
// the hosted checkout page.
type RedirectRequest struct {
	TargetURL  string
	Method     HTTPMethod
	Parameters *Parameters
}

// URL returns the full GET url (target plus encoded parameters).
func (r RedirectRequest) URL() string {
	if r.Parameters == nil || r.Parameters.Len() == 0 {
		return r.TargetURL
	}
	sep := "?"
	if strings.Contains(r.TargetURL, "?") {
		sep = "&"
	}
	return r.TargetURL + sep + r.Parameters.Encode()
}
