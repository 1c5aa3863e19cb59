package httpx

// SessionCookieName is the cookie that carries the opaque session identifier.
const SessionCookieName = "session_id"
