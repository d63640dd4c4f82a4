package resolve

import "errors"

// ErrUnsupportedScheme is returned by NewContext when the URI's scheme is
// neither "sip" nor "sips".
var ErrUnsupportedScheme = errors.New("resolve: URI scheme must be sip or sips")

// ErrSecureTransportMismatch is returned by NewContext when a sips: URI
// names an explicitly insecure transport — that combination can never be
// satisfied and is rejected synchronously, at construction time, rather
// than discovered deep inside a resolve_next call (spec §4.6, §9).
var ErrSecureTransportMismatch = errors.New("resolve: sips URI cannot declare an insecure transport")
