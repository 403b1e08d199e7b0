package decoder

import (
	"net/url"

	"github.com/gorilla/schema"
)

type URLDecoder struct {
	dec *schema.Decoder
}

// New returns a decoder for query strings. Unknown keys are ignored so that
// clients may send parameters the endpoint does not use.
func New() *URLDecoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return &URLDecoder{dec: dec}
}

func (d *URLDecoder) Decode(dst any, src url.Values) error {
	return d.dec.Decode(dst, src)
}
