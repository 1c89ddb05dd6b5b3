package models

import "strings"

// ProfileKind discriminates the specialization a stored profile carries.
type ProfileKind string

const (
	ProfileKindBase ProfileKind = "Base"
	ProfileKindHttp ProfileKind = "Http"
)

// ParseProfileKind matches a kind name case-insensitively.
func ParseProfileKind(s string) (ProfileKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "base":
		return ProfileKindBase, true
	case "http":
		return ProfileKindHttp, true
	}
	return "", false
}

// HttpHeader is a request header name paired with a value template.
type HttpHeader struct {
	Name  string `json:"name" example:"User-Agent"`
	Value string `json:"value" example:"Mozilla/5.0 (Windows NT 6.1)"`
}

// HttpCookie is a cookie name paired with a value template.
type HttpCookie struct {
	Name  string `json:"name" example:"ASPSESSIONID"`
	Value string `json:"value" example:"{GUID}"`
}

// HttpSettings holds the fields only present on Http profiles. The template
// strings are opaque here; the listener renders and parses them.
type HttpSettings struct {
	RequestHeaders       []HttpHeader `json:"request_headers"`
	Urls                 []string     `json:"urls" example:"/en-us/index.html"`
	Cookies              []HttpCookie `json:"cookies"`
	GetResponseTemplate  string       `json:"get_response_template"`
	PostRequestTemplate  string       `json:"post_request_template"`
	PostResponseTemplate string       `json:"post_response_template"`
}

// Clone returns a copy that shares no slices with s. Nil slices come back
// empty so both store implementations hand out the same shape.
func (s HttpSettings) Clone() HttpSettings {
	c := s
	c.RequestHeaders = append([]HttpHeader{}, s.RequestHeaders...)
	c.Urls = append([]string{}, s.Urls...)
	c.Cookies = append([]HttpCookie{}, s.Cookies...)
	return c
}

// IsZero reports whether s carries no Http content at all.
func (s HttpSettings) IsZero() bool {
	return len(s.RequestHeaders) == 0 && len(s.Urls) == 0 && len(s.Cookies) == 0 &&
		s.GetResponseTemplate == "" && s.PostRequestTemplate == "" && s.PostResponseTemplate == ""
}

// Profile is the stored record. HttpSettings is non-nil only when Kind is
// ProfileKindHttp; its fields are flattened into the JSON form.
type Profile struct {
	ID            int64       `json:"id" example:"1" format:"int64" readOnly:"true"`
	Name          string      `json:"name" example:"DefaultHttpProfile" binding:"required"`
	Description   string      `json:"description" example:"A default profile."`
	Enabled       bool        `json:"enabled" example:"true"`
	Kind          ProfileKind `json:"kind" example:"Http" enums:"Base,Http"`
	*HttpSettings `swaggerignore:"true"`
}

// Clone returns a deep copy of p.
func (p Profile) Clone() Profile {
	c := p
	if p.HttpSettings != nil {
		s := p.HttpSettings.Clone()
		c.HttpSettings = &s
	}
	return c
}

// AsHttp narrows p to its Http view. It reports false when p is not an Http
// profile; no partially filled view is ever returned.
func (p Profile) AsHttp() (HttpProfile, bool) {
	if p.Kind != ProfileKindHttp {
		return HttpProfile{}, false
	}
	h := HttpProfile{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Enabled:     p.Enabled,
		Kind:        ProfileKindHttp,
	}
	if p.HttpSettings != nil {
		h.HttpSettings = p.HttpSettings.Clone()
	}
	return h, true
}

// HttpProfile is the Http-specialized view of a Profile.
type HttpProfile struct {
	ID          int64       `json:"id" example:"1" format:"int64" readOnly:"true"`
	Name        string      `json:"name" example:"DefaultHttpProfile" binding:"required"`
	Description string      `json:"description" example:"A default profile."`
	Enabled     bool        `json:"enabled" example:"true"`
	Kind        ProfileKind `json:"kind" example:"Http" readOnly:"true"`
	HttpSettings
}

// Profile widens h back into the stored representation.
func (h HttpProfile) Profile() Profile {
	s := h.HttpSettings.Clone()
	return Profile{
		ID:           h.ID,
		Name:         h.Name,
		Description:  h.Description,
		Enabled:      h.Enabled,
		Kind:         ProfileKindHttp,
		HttpSettings: &s,
	}
}
