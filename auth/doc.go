// Package auth provides JWT token issuance/verification and password
// hashing for strata services. The TokenService signs HS256 tokens with a
// shared secret; Hasher abstracts password hashing with a bcrypt
// implementation.
package auth
