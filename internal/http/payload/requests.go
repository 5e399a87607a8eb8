package payload

import (
	"errors"
	"net/url"
	"strings"
	"warbler/internal/core"

	"github.com/jellydator/validation"
	"github.com/jellydator/validation/is"
)

// urlOrRootPath accepts an empty value, an app-relative path starting with
// "/", or an absolute http(s) URL.
var urlOrRootPath = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "/") {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return errors.New("must be a valid http(s) URL or a path starting with '/'")
	}
	return nil
})

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	ImageURL string `json:"image_url"`
}

func (s SignupRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Username, validation.Required, validation.Length(1, 50)),
		validation.Field(&s.Email, validation.Required, is.Email, validation.Length(0, 120)),
		validation.Field(&s.Password, validation.Required, validation.Length(6, 0)),
		validation.Field(&s.ImageURL, urlOrRootPath),
	)
}

func (s SignupRequest) ToMessage() core.SignupMessage {
	return core.SignupMessage{
		Username: s.Username,
		Email:    s.Email,
		Password: s.Password,
		ImageURL: s.ImageURL,
	}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (l LoginRequest) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Username, validation.Required),
		validation.Field(&l.Password, validation.Required, validation.Length(6, 0)),
	)
}

func (l LoginRequest) ToMessage() core.AuthMessage {
	return core.AuthMessage{
		Username: l.Username,
		Password: l.Password,
	}
}

type WarbleRequest struct {
	Text string `json:"text"`
}

func (m WarbleRequest) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Text, validation.Required, validation.Length(1, 140)),
	)
}

type ProfileRequest struct {
	Username       string `json:"username"`
	Email          string `json:"email"`
	ImageURL       string `json:"image_url"`
	HeaderImageURL string `json:"header_image_url"`
	Bio            string `json:"bio"`
	Location       string `json:"location"`
	Password       string `json:"password"`
}

func (p ProfileRequest) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Username, validation.Required, validation.Length(1, 50)),
		validation.Field(&p.Email, validation.Required, is.Email, validation.Length(0, 120)),
		validation.Field(&p.ImageURL, urlOrRootPath),
		validation.Field(&p.HeaderImageURL, urlOrRootPath),
		validation.Field(&p.Bio, validation.Length(0, 500)),
		validation.Field(&p.Location, validation.Length(0, 100)),
		validation.Field(&p.Password, validation.Required),
	)
}

func (p ProfileRequest) ToUpdate() core.ProfileUpdate {
	return core.ProfileUpdate{
		Username:       p.Username,
		Email:          p.Email,
		ImageURL:       p.ImageURL,
		HeaderImageURL: p.HeaderImageURL,
		Bio:            p.Bio,
		Location:       p.Location,
		Password:       p.Password,
	}
}
