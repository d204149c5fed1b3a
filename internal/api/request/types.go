package request

// Session is the request body for POST /session. An "auth" action carries
// the signed challenge message and signature; "hit"/"stand" carry only
// the action and player and authenticate via the bearer token header.
type Session struct {
	Action    string `json:"action"`
	Player    string `json:"player"`
	Message   string `json:"message,omitempty"`
	Signature string `json:"signature,omitempty"`
}
