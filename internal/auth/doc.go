// Package auth provides the security core of the service: bcrypt password
// hashing, HS256 session-token issuance and validation, and the request
// guard that ties a token's subject to the resource owner it acts on.
//
// All components are stateless over their inputs plus the process-wide
// signing secret; tokens are self-contained and there is no server-side
// session store or revocation list.
//
// Error collapsing is deliberate: expired, forged, and malformed tokens
// all surface as ErrInvalidToken, and unknown identifiers are
// indistinguishable from wrong passwords (ErrInvalidCredentials). The
// true cause is logged server-side only, so responses cannot be used as
// an oracle.
package auth
