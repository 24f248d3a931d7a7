// Package printforge is the client SDK for the PrintForge 3D-printing order
// service. It wraps the backend HTTP API with typed calls (orders, order
// history, file uploads, profiles) and manages the bearer-token session the
// backend issues on login and registration.
//
// Session model:
//   - Tokens are stored in a single TokenStore slot (memory, file, or Redis)
//     shared by every component of the embedding application. The stored
//     token is the only source of truth: the Session view is always derived
//     from it, never mutated field by field.
//   - Token claims are decoded without signature or expiry verification.
//     The backend is the only party that validates tokens; the client reads
//     claims as advisory display data (role, name, email, active flag).
//   - SessionController owns the reactive session state. Login, Register and
//     Logout persist or clear the token, re-derive the view, and notify
//     subscribers synchronously so no observer reads a stale session after
//     a broadcast it received.
//
// Transport:
//   - AuthTransport injects "Authorization: Bearer <token>" into every
//     outgoing request and clears the token on 401 responses, except for
//     order-detail and order-history endpoints, which return 401 for
//     per-order authorization reasons that do not end the session.
package printforge
