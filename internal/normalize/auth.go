// Package normalize extracts canonical values from the API's loosely
// structured responses. Payload shapes have drifted across server versions,
// so every probe order lives here, implemented once.
package normalize

import (
	"encoding/json"

	"followup_tracker/internal/model"
)

// tokenKeys are probed in order on the top level of an auth response.
var tokenKeys = []string{"token", "accessToken", "access_token"}

// identityKeys mark a top-level object that is itself the user record.
var identityKeys = []string{"name", "email", "_id", "id"}

// ExtractAuth pulls a user and bearer token out of an arbitrary auth
// response. The token is looked for at token, data.token, result.token,
// accessToken and access_token; the user at user, data.user and
// result.user, falling back to the whole top-level object (minus token)
// when it carries identity-like fields. ok is true only when both were
// found; a partial result must never become a session.
func ExtractAuth(payload any) (user *model.User, token string, ok bool) {
	root, isMap := payload.(map[string]any)
	if !isMap {
		return nil, "", false
	}

	token = findToken(root)
	userVal := findUser(root)
	if userVal == nil || token == "" {
		return nil, "", false
	}

	var u model.User
	if err := Rebind(userVal, &u); err != nil || u.IsZero() {
		return nil, "", false
	}
	u.NormalizeID()
	return &u, token, true
}

func findToken(root map[string]any) string {
	if tok := stringField(root, "token"); tok != "" {
		return tok
	}
	for _, nested := range []string{"data", "result"} {
		if inner, ok := root[nested].(map[string]any); ok {
			if tok := stringField(inner, "token"); tok != "" {
				return tok
			}
		}
	}
	for _, key := range tokenKeys[1:] {
		if tok := stringField(root, key); tok != "" {
			return tok
		}
	}
	return ""
}

func findUser(root map[string]any) any {
	if u, ok := root["user"].(map[string]any); ok {
		return u
	}
	for _, nested := range []string{"data", "result"} {
		if inner, ok := root[nested].(map[string]any); ok {
			if u, ok := inner["user"].(map[string]any); ok {
				return u
			}
		}
	}

	// Some endpoints return the user record at the top level with the
	// token alongside it.
	for _, key := range identityKeys {
		if _, ok := root[key]; ok {
			stripped := make(map[string]any, len(root))
			for k, v := range root {
				if k == "token" {
					continue
				}
				stripped[k] = v
			}
			return stripped
		}
	}
	return nil
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// Rebind re-encodes a loosely decoded JSON value into a typed destination.
func Rebind(src, dst any) error {
	raw, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}
